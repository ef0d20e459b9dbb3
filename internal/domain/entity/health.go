package entity

// HealthCategory labels an overall financial health score.
type HealthCategory string

const (
	HealthExcellent HealthCategory = "excellent"
	HealthGood      HealthCategory = "good"
	HealthFair      HealthCategory = "fair"
	HealthPoor      HealthCategory = "poor"
)

// HealthMetrics holds the inputs that feed the composite health score.
// Rates are percentages.
type HealthMetrics struct {
	SavingsRate          float64
	BudgetAdherence      float64
	ExpenseToIncomeRatio float64
}

// HealthScore is the composite 0-100 financial health assessment.
// No score exists for an empty transaction set; the scorer returns nil in
// that case rather than a zero score.
type HealthScore struct {
	Score    int
	Category HealthCategory
	Metrics  HealthMetrics
}
