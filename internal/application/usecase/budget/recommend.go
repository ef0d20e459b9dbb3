// Package budget implements the rule-based budget recommendation engine.
package budget

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fintracker/insights/internal/application/usecase/analytics"
	"github.com/fintracker/insights/internal/domain/entity"
)

// DefaultMonthsOfHistory is the assumed observation window when deriving a
// monthly average from category totals. The window is an engine parameter
// because the snapshot itself carries no period information.
const DefaultMonthsOfHistory = 3

// topCategoryCount limits recommendations to the biggest spending categories.
const topCategoryCount = 5

// Engine derives per-category budget recommendations from spending history.
type Engine struct {
	monthsOfHistory int
}

// NewEngine creates a recommendation engine with the given observation
// window in months. Non-positive values fall back to the default.
func NewEngine(monthsOfHistory int) *Engine {
	if monthsOfHistory <= 0 {
		monthsOfHistory = DefaultMonthsOfHistory
	}
	return &Engine{monthsOfHistory: monthsOfHistory}
}

// guideline percentage-of-income ceilings per category.
var (
	housingCap = decimal.NewFromInt(30)
	foodCap    = decimal.NewFromInt(15)
	transitCap = decimal.NewFromInt(10)
	defaultCap = decimal.NewFromInt(5)

	ninetyPercent     = decimal.NewFromFloat(0.9)
	seventyPercent    = decimal.NewFromFloat(0.7)
	hundredTenPercent = decimal.NewFromFloat(1.1)
	oneHundred        = decimal.NewFromInt(100)
)

// Recommend produces budget recommendations for the top spending categories.
// An empty transaction set yields an empty slice. Recommendations are never
// negative; with zero income and no existing budget the recommended amount
// is zero and the reasoning notes the missing income data.
func (e *Engine) Recommend(transactions []*entity.Transaction, existingBudgets []*entity.Budget) []*entity.BudgetRecommendation {
	if len(transactions) == 0 {
		return []*entity.BudgetRecommendation{}
	}

	budgetByCategory := make(map[entity.CategoryID]decimal.Decimal, len(existingBudgets))
	for _, b := range existingBudgets {
		budgetByCategory[b.Category] = b.Amount
	}

	expenseTotals := analytics.CategoryTotals(analytics.ExpensesOnly(transactions))
	income := analytics.Totals(transactions).Income

	top := topCategories(expenseTotals, topCategoryCount)
	months := decimal.NewFromInt(int64(e.monthsOfHistory))

	recommendations := make([]*entity.BudgetRecommendation, 0, len(top))
	for _, ct := range top {
		monthlyAverage := ct.Amount.Div(months)

		rec := &entity.BudgetRecommendation{
			Category: ct.Category,
			Icon:     ct.Category.Icon(),
		}

		if current, ok := budgetByCategory[ct.Category]; ok {
			currentCopy := current
			rec.CurrentBudget = &currentCopy
			rec.RecommendedBudget, rec.Reasoning = adjustExisting(monthlyAverage, current)
		} else {
			rec.RecommendedBudget, rec.Reasoning = fromIncomeGuideline(ct.Category, monthlyAverage, income)
		}

		recommendations = append(recommendations, rec)
	}

	return recommendations
}

// topCategories sorts category totals by amount descending and keeps the
// first n. Equal amounts are ordered by category identifier so the
// selection is deterministic.
func topCategories(totals []entity.CategoryTotal, n int) []entity.CategoryTotal {
	sorted := make([]entity.CategoryTotal, len(totals))
	copy(sorted, totals)

	sort.Slice(sorted, func(a, b int) bool {
		cmp := sorted[a].Amount.Cmp(sorted[b].Amount)
		if cmp != 0 {
			return cmp > 0
		}
		return sorted[a].Category < sorted[b].Category
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// adjustExisting applies the over/under-spend rules against a current budget.
func adjustExisting(monthlyAverage, current decimal.Decimal) (decimal.Decimal, string) {
	if monthlyAverage.GreaterThan(current) {
		recommended := monthlyAverage.Mul(ninetyPercent).Ceil()
		return recommended, "Your average spending is higher than your current budget. Consider adjusting it to be more realistic while aiming for some reduction."
	}
	if monthlyAverage.LessThan(current.Mul(seventyPercent)) {
		recommended := monthlyAverage.Mul(hundredTenPercent).Ceil()
		return recommended, "Your spending is well below budget. You could reduce this budget and allocate funds elsewhere."
	}
	return current, "Your current budget aligns well with your spending patterns."
}

// fromIncomeGuideline derives a first budget from income share, capped by
// the per-category guideline ceiling.
func fromIncomeGuideline(category entity.CategoryID, monthlyAverage, income decimal.Decimal) (decimal.Decimal, string) {
	if !income.IsPositive() {
		return decimal.Zero, "Not enough income data to size this budget. Record your income to get a recommendation."
	}

	actualPercent := monthlyAverage.Div(income).Mul(oneHundred)
	recommendedPercent := decimal.Min(actualPercent, guidelineCap(category))

	recommended := recommendedPercent.Div(oneHundred).Mul(income).Ceil()
	reasoning := fmt.Sprintf(
		"Based on your income and typical financial guidelines, consider allocating about %s%% of your income to this category.",
		recommendedPercent.StringFixed(1),
	)
	return recommended, reasoning
}

// guidelineCap returns the percentage-of-income ceiling for a category.
func guidelineCap(category entity.CategoryID) decimal.Decimal {
	switch category {
	case entity.CategoryHousing:
		return housingCap
	case entity.CategoryFood, entity.CategoryGrocery:
		return foodCap
	case entity.CategoryTransport:
		return transitCap
	default:
		return defaultCap
	}
}
