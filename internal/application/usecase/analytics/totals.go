// Package analytics implements the pure aggregation engine: totals,
// category grouping, and monthly trend bucketing over transaction snapshots.
// Every operation is deterministic, side-effect free, and safe for
// concurrent callers.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/fintracker/insights/internal/domain/entity"
)

// Totals sums income (positive amounts) and expenses (absolute value of
// negative amounts) over the snapshot. Zero-amount transactions contribute
// to neither bucket.
func Totals(transactions []*entity.Transaction) entity.Totals {
	totals := entity.Totals{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}

	for _, t := range transactions {
		switch {
		case t.IsIncome():
			totals.Income = totals.Income.Add(t.Amount)
		case t.IsExpense():
			totals.Expenses = totals.Expenses.Add(t.Amount.Abs())
		}
	}

	return totals
}
