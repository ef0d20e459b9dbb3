package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a monthly spending ceiling for one category. At most one budget
// exists per category; callers supply the deduplicated snapshot.
type Budget struct {
	Category  CategoryID
	Amount    decimal.Decimal // Positive monthly ceiling
	CreatedAt time.Time       // Last set/update time
}

// BudgetRecommendation is a derived suggestion for one category's monthly
// budget, produced by the recommendation engine or the AI delegate.
type BudgetRecommendation struct {
	Category          CategoryID
	CurrentBudget     *decimal.Decimal // nil when no budget exists for the category
	RecommendedBudget decimal.Decimal
	Reasoning         string
	Icon              string
}
