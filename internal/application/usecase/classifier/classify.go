package classifier

import (
	"strings"

	"github.com/fintracker/insights/internal/domain/entity"
)

// significanceThreshold is the minimum score a category must exceed for the
// keyword match to count. Scores at or below it fall through to the
// income/expense default.
const significanceThreshold = 3

// Classify predicts a category for a transaction description using keyword
// scoring. It never fails: any input, including the empty string, maps to a
// valid category.
//
// Each matched keyword scores its own length, doubled when the description
// starts with it. The strictly highest-scoring category wins; ties keep the
// earlier entry in the fixed table order.
func Classify(description string) entity.CategoryID {
	lowered := strings.ToLower(description)

	var best entity.CategoryID
	highest := 0

	for _, ck := range categoryKeywordTable {
		score := 0
		for _, keyword := range ck.keywords {
			idx := strings.Index(lowered, keyword)
			if idx < 0 {
				continue
			}
			weight := 1
			if idx == 0 {
				weight = 2
			}
			score += len(keyword) * weight
		}
		if score > highest {
			highest = score
			best = ck.category
		}
	}

	if highest > significanceThreshold {
		return best
	}

	if containsIncomeIndicator(lowered) {
		return entity.CategoryOtherIncome
	}
	return entity.CategoryOtherExpense
}

// containsIncomeIndicator reports whether the lowered description carries
// one of the income-indicating keywords.
func containsIncomeIndicator(lowered string) bool {
	for _, indicator := range incomeIndicators {
		if strings.Contains(lowered, indicator) {
			return true
		}
	}
	return false
}
