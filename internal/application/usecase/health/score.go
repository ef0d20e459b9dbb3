// Package health implements the composite financial health scorer.
package health

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/fintracker/insights/internal/application/usecase/analytics"
	"github.com/fintracker/insights/internal/domain/entity"
)

// Stability thresholds for the bonus points. Income is stable when two
// adjacent months differ by no more than 25%; expenses are stable when the
// latest month stays within 110% of the previous one.
var (
	incomeStabilityTolerance = decimal.NewFromFloat(0.25)
	expenseStabilityCeiling  = decimal.NewFromFloat(1.1)
)

// Score computes the 0-100 financial health score from a transaction and
// budget snapshot. It returns nil for an empty transaction set: absence of
// data is not a zero score and the caller must present it as such.
func Score(transactions []*entity.Transaction, budgets []*entity.Budget) *entity.HealthScore {
	if len(transactions) == 0 {
		return nil
	}

	totals := analytics.Totals(transactions)

	savingsRate := 0.0
	expenseRatio := 0.0
	if totals.Income.IsPositive() {
		savingsRate = totals.Net().Div(totals.Income).InexactFloat64() * 100
		expenseRatio = totals.Expenses.Div(totals.Income).InexactFloat64() * 100
	}

	adherence := budgetAdherence(transactions, budgets)

	score := savingsPoints(savingsRate) + adherencePoints(adherence)

	trend := analytics.MonthlyTrend(transactions)
	if incomeStable(trend) {
		score += 20
	}
	if expensesStable(trend) {
		score += 10
	}

	return &entity.HealthScore{
		Score:    score,
		Category: categorize(score),
		Metrics: entity.HealthMetrics{
			SavingsRate:          roundRate(savingsRate),
			BudgetAdherence:      roundRate(adherence),
			ExpenseToIncomeRatio: roundRate(expenseRatio),
		},
	}
}

// budgetAdherence returns the percentage of budgeted categories whose spend
// stayed at or under the limit. No budgets means 0, not undefined.
func budgetAdherence(transactions []*entity.Transaction, budgets []*entity.Budget) float64 {
	if len(budgets) == 0 {
		return 0
	}

	spendByCategory := make(map[entity.CategoryID]decimal.Decimal)
	for _, ct := range analytics.CategoryTotals(analytics.ExpensesOnly(transactions)) {
		spendByCategory[ct.Category] = ct.Amount
	}

	met := 0
	for _, b := range budgets {
		spent, ok := spendByCategory[b.Category]
		if !ok || spent.LessThanOrEqual(b.Amount) {
			met++
		}
	}

	return float64(met) / float64(len(budgets)) * 100
}

// savingsPoints maps the savings rate onto its 40-point step function.
func savingsPoints(savingsRate float64) int {
	switch {
	case savingsRate >= 20:
		return 40
	case savingsRate >= 10:
		return 30
	case savingsRate >= 5:
		return 20
	case savingsRate > 0:
		return 10
	default:
		return 0
	}
}

// adherencePoints maps budget adherence onto its 30-point step function.
func adherencePoints(adherence float64) int {
	switch {
	case adherence >= 80:
		return 30
	case adherence >= 60:
		return 20
	case adherence >= 40:
		return 10
	default:
		return 0
	}
}

// incomeStable awards the 20-point bonus when the two most recent months
// both have income and the month-over-month change stays within tolerance.
// Fewer than two months of history earns no bonus.
func incomeStable(trend []entity.TrendPoint) bool {
	if len(trend) < 2 {
		return false
	}

	previous := trend[len(trend)-2].Income
	latest := trend[len(trend)-1].Income
	if !previous.IsPositive() || !latest.IsPositive() {
		return false
	}

	change := latest.Sub(previous).Abs().Div(previous)
	return change.LessThanOrEqual(incomeStabilityTolerance)
}

// expensesStable awards the 10-point bonus when the latest month's expenses
// are not meaningfully above the previous month's.
func expensesStable(trend []entity.TrendPoint) bool {
	if len(trend) < 2 {
		return false
	}

	previous := trend[len(trend)-2].Expenses
	latest := trend[len(trend)-1].Expenses
	if previous.IsZero() {
		return latest.IsZero()
	}

	return latest.LessThanOrEqual(previous.Mul(expenseStabilityCeiling))
}

// categorize maps a score to its label.
func categorize(score int) entity.HealthCategory {
	switch {
	case score >= 80:
		return entity.HealthExcellent
	case score >= 60:
		return entity.HealthGood
	case score >= 40:
		return entity.HealthFair
	default:
		return entity.HealthPoor
	}
}

// roundRate trims a percentage to one decimal place for display parity
// across the heuristic and AI paths.
func roundRate(rate float64) float64 {
	return math.Round(rate*10) / 10
}
