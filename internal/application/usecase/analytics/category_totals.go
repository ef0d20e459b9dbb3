package analytics

import (
	"github.com/fintracker/insights/internal/domain/entity"
)

// CategoryTotals groups transactions by category using absolute amounts.
// Income and expense categories are deliberately mixed when both occur: the
// output is an "all activity by category" view, and callers wanting an
// expense-only breakdown must pre-filter with ExpensesOnly.
// Output order is the insertion order of each category's first occurrence.
func CategoryTotals(transactions []*entity.Transaction) []entity.CategoryTotal {
	index := make(map[entity.CategoryID]int)
	totals := make([]entity.CategoryTotal, 0)

	for _, t := range transactions {
		amount := t.Amount.Abs()
		if i, ok := index[t.Category]; ok {
			totals[i].Amount = totals[i].Amount.Add(amount)
			continue
		}
		index[t.Category] = len(totals)
		totals = append(totals, entity.CategoryTotal{
			Category: t.Category,
			Amount:   amount,
		})
	}

	return totals
}

// ExpensesOnly filters the snapshot down to expense records. Transactions
// without a category are reported under the generic other_expense bucket.
func ExpensesOnly(transactions []*entity.Transaction) []*entity.Transaction {
	expenses := make([]*entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		if t.Category == "" {
			withDefault := *t
			withDefault.Category = entity.CategoryOtherExpense
			expenses = append(expenses, &withDefault)
			continue
		}
		expenses = append(expenses, t)
	}
	return expenses
}
