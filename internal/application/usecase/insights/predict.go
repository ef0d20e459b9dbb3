package insights

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fintracker/insights/internal/application/usecase/analytics"
	"github.com/fintracker/insights/internal/domain/entity"
)

// growthFactor is the flat growth assumption applied to per-category
// averages when projecting next month's spend.
var growthFactor = decimal.NewFromFloat(1.05)

// PredictExpenses projects next month's spend per category as the average
// expense amount in that category scaled by the growth factor. Categories
// are sorted by predicted amount, highest first.
func PredictExpenses(transactions []*entity.Transaction) *entity.PredictionBundle {
	bundle := &entity.PredictionBundle{
		TotalPredicted: decimal.Zero,
		Categories:     []entity.ExpensePrediction{},
	}
	if len(transactions) == 0 {
		return bundle
	}

	expenses := analytics.ExpensesOnly(transactions)
	counts := make(map[entity.CategoryID]int64)
	for _, t := range expenses {
		counts[t.Category]++
	}

	for _, ct := range analytics.CategoryTotals(expenses) {
		count := counts[ct.Category]
		if count == 0 {
			continue
		}

		average := ct.Amount.Div(decimal.NewFromInt(count))
		predicted := average.Mul(growthFactor)
		if !predicted.IsPositive() {
			continue
		}

		bundle.Categories = append(bundle.Categories, entity.ExpensePrediction{
			Category: ct.Category,
			Amount:   predicted,
			Icon:     ct.Category.Icon(),
		})
		bundle.TotalPredicted = bundle.TotalPredicted.Add(predicted)
	}

	sort.SliceStable(bundle.Categories, func(a, b int) bool {
		return bundle.Categories[a].Amount.GreaterThan(bundle.Categories[b].Amount)
	})

	return bundle
}
