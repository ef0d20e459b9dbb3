// Package insights implements the heuristic generation of spending
// insights, future expense predictions, and action recommendations. These
// are the deterministic counterparts of the AI delegate's operations.
package insights

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fintracker/insights/internal/application/usecase/analytics"
	"github.com/fintracker/insights/internal/domain/entity"
)

// incomeTrendMinTransactions gates the income-trend insight: it needs
// enough history to compare two windows of five income records.
const incomeTrendMinTransactions = 10

// Generate derives up to three insights from the snapshot: the savings
// rate, the top spending category, and (given enough history) the income
// trend across the five most recent income records versus the prior five.
func Generate(transactions []*entity.Transaction) []*entity.Insight {
	if len(transactions) == 0 {
		return []*entity.Insight{}
	}

	totals := analytics.Totals(transactions)
	result := make([]*entity.Insight, 0, 3)

	result = append(result, savingsRateInsight(totals))

	if top := topSpendingInsight(transactions, totals.Expenses); top != nil {
		result = append(result, top)
	}

	if len(transactions) > incomeTrendMinTransactions {
		if trend := incomeTrendInsight(transactions); trend != nil {
			result = append(result, trend)
		}
	}

	return result
}

// savingsRateInsight reports the savings rate with a target-based action.
func savingsRateInsight(totals entity.Totals) *entity.Insight {
	savingsRate := 0.0
	if totals.Income.IsPositive() {
		savingsRate = totals.Net().Div(totals.Income).InexactFloat64() * 100
	}

	action := "Great job! Keep maintaining this savings rate."
	if savingsRate < 20 {
		action = "Try to increase your savings rate to at least 20% for financial security."
	}

	return entity.NewInsight(
		"Monthly Savings Rate",
		fmt.Sprintf("Your savings rate is %.1f%% of your income.", savingsRate),
		action,
		totals.Net(),
	)
}

// topSpendingInsight reports the category with the highest expense total.
// Returns nil when there are no expenses.
func topSpendingInsight(transactions []*entity.Transaction, totalExpenses decimal.Decimal) *entity.Insight {
	expenseTotals := analytics.CategoryTotals(analytics.ExpensesOnly(transactions))

	var topCategory entity.CategoryID
	topAmount := decimal.Zero
	for _, ct := range expenseTotals {
		if ct.Amount.GreaterThan(topAmount) {
			topAmount = ct.Amount
			topCategory = ct.Category
		}
	}

	if topCategory == "" || !totalExpenses.IsPositive() {
		return nil
	}

	share := topAmount.Div(totalExpenses).InexactFloat64() * 100
	return entity.NewInsight(
		"Top Spending Category",
		fmt.Sprintf("Your highest spending is in %s at %.1f%% of total expenses.", topCategory, share),
		"Review if you can optimize spending in this category.",
		topAmount,
	)
}

// incomeTrendInsight compares the five most recent income records against
// the five before them. Returns nil when either window is empty or sums to
// zero.
func incomeTrendInsight(transactions []*entity.Transaction) *entity.Insight {
	incomes := make([]*entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.IsIncome() {
			incomes = append(incomes, t)
		}
	}
	if len(incomes) < 10 {
		return nil
	}

	// Most recent first; input order is not guaranteed.
	sort.SliceStable(incomes, func(a, b int) bool {
		return incomes[a].Date.After(incomes[b].Date)
	})

	recent := sumAmounts(incomes[:5])
	older := sumAmounts(incomes[5:10])
	if !recent.IsPositive() || !older.IsPositive() {
		return nil
	}

	change := recent.Sub(older).Div(older).InexactFloat64() * 100
	direction := "increased"
	action := "Consider investing the extra income for future growth."
	if change < 0 {
		direction = "decreased"
		action = "Look for additional income sources to stabilize your finances."
	}

	return entity.NewInsight(
		"Income Trend",
		fmt.Sprintf("Your recent income has %s by %.1f%%.", direction, absFloat(change)),
		action,
		recent.Sub(older).Abs(),
	)
}

func sumAmounts(transactions []*entity.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		sum = sum.Add(t.Amount)
	}
	return sum
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
