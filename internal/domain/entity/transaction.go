package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a financial fact record. The analytics core only
// ever reads snapshots of transactions; creation and mutation belong to the
// storage layer of the consuming application.
type Transaction struct {
	ID       string          // Opaque identifier assigned by the caller's storage layer
	Title    string          // Free-text description
	Amount   decimal.Decimal // Positive for income, negative for expenses
	Category CategoryID
	Date     time.Time
	Notes    string
	Merchant string // Optional enrichment label, may be empty
}

// IsIncome reports whether the transaction is an income record.
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense reports whether the transaction is an expense record.
// Zero-amount transactions are neither income nor expense.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// Totals holds the income/expense sums for a transaction set.
// Expenses are reported as a positive magnitude.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Net returns income minus expenses.
func (t Totals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expenses)
}

// CategoryTotal is the absolute amount grouped under one category.
type CategoryTotal struct {
	Category CategoryID
	Amount   decimal.Decimal
}

// TrendPoint is one calendar-month bucket of a monthly trend series.
type TrendPoint struct {
	Month    time.Time // First instant of the bucket's calendar month, UTC
	Label    string    // Display label, e.g. "Jan 2024"
	Income   decimal.Decimal
	Expenses decimal.Decimal
}
