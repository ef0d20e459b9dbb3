package classifier

import (
	"strings"

	"github.com/fintracker/insights/internal/domain/entity"
)

// Enrich maps a transaction description to a canonical merchant label with
// category and icon. The first rule in the fixed list with any keyword
// match wins; unlike Classify there is no scoring. When no rule matches,
// the merchant label is empty and the category defaults through the same
// income-indicator heuristic the classifier uses.
func Enrich(description string) *entity.MerchantInfo {
	lowered := strings.ToLower(description)

	for _, rule := range merchantRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return &entity.MerchantInfo{
					Name:     rule.name,
					Category: rule.category,
					Icon:     rule.icon,
				}
			}
		}
	}

	if containsIncomeIndicator(lowered) {
		return &entity.MerchantInfo{
			Name:     "",
			Category: entity.CategoryOtherIncome,
			Icon:     "💵",
		}
	}
	return &entity.MerchantInfo{
		Name:     "",
		Category: entity.CategoryOtherExpense,
		Icon:     "📋",
	}
}
