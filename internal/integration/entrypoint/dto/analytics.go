package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintracker/insights/internal/domain/entity"
)

// dateLayouts are the accepted transaction date formats, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// TransactionRequest represents a single transaction in a request body.
// Positive amounts are income, negative amounts are expenses. Records are
// not field-validated: zero amounts and blank titles are legal inputs, and
// records with unusable dates are skipped and reported by ToTransactions
// rather than rejected up front.
type TransactionRequest struct {
	ID       string  `json:"id,omitempty"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category,omitempty"`
	Date     string  `json:"date"`
	Notes    string  `json:"notes,omitempty"`
	Merchant string  `json:"merchant,omitempty"`
}

// BudgetRequest represents a monthly budget limit in a request body.
type BudgetRequest struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

// AnalyticsRequest is the shared request body for the analytics endpoints.
// Budgets are optional; endpoints that do not use them ignore the field.
type AnalyticsRequest struct {
	Transactions []TransactionRequest `json:"transactions" binding:"required"`
	Budgets      []BudgetRequest      `json:"budgets,omitempty" binding:"omitempty,dive"`
}

// ToTransactions converts request transactions into domain entities.
// Records with unparseable dates are skipped and reported back so callers
// can see what was excluded rather than receive silently wrong aggregates.
func (r *AnalyticsRequest) ToTransactions() ([]*entity.Transaction, []string) {
	transactions := make([]*entity.Transaction, 0, len(r.Transactions))
	var skipped []string

	for i, t := range r.Transactions {
		date, err := parseDate(t.Date)
		if err != nil {
			label := t.ID
			if label == "" {
				label = fmt.Sprintf("index %d", i)
			}
			skipped = append(skipped, fmt.Sprintf("transaction %s: unparseable date %q", label, t.Date))
			continue
		}

		transactions = append(transactions, &entity.Transaction{
			ID:       t.ID,
			Title:    t.Title,
			Amount:   decimal.NewFromFloat(t.Amount),
			Category: entity.CategoryID(t.Category),
			Date:     date,
			Notes:    t.Notes,
			Merchant: t.Merchant,
		})
	}

	return transactions, skipped
}

// ToBudgets converts request budgets into domain entities.
func (r *AnalyticsRequest) ToBudgets() []*entity.Budget {
	budgets := make([]*entity.Budget, 0, len(r.Budgets))
	for _, b := range r.Budgets {
		budgets = append(budgets, &entity.Budget{
			Category: entity.CategoryID(b.Category),
			Amount:   decimal.NewFromFloat(b.Amount),
		})
	}
	return budgets
}

// parseDate tries the accepted date layouts in order.
func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		date, err := time.Parse(layout, value)
		if err == nil {
			return date, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// TotalsResponse represents aggregated income and expense totals.
type TotalsResponse struct {
	Income   string   `json:"income"`
	Expenses string   `json:"expenses"`
	Net      string   `json:"net"`
	Skipped  []string `json:"skipped,omitempty"`
}

// CategoryTotalResponse represents the absolute total for one category.
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Icon     string `json:"icon"`
	Total    string `json:"total"`
}

// CategoryBreakdownResponse represents per-category totals.
type CategoryBreakdownResponse struct {
	Categories []CategoryTotalResponse `json:"categories"`
	Skipped    []string                `json:"skipped,omitempty"`
}

// TrendPointResponse represents one month in the trend series.
type TrendPointResponse struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

// MonthlyTrendResponse represents the month-by-month trend series.
type MonthlyTrendResponse struct {
	Trend   []TrendPointResponse `json:"trend"`
	Skipped []string             `json:"skipped,omitempty"`
}

// BudgetRecommendationResponse represents one budget recommendation.
type BudgetRecommendationResponse struct {
	Category          string  `json:"category"`
	CurrentBudget     *string `json:"currentBudget"`
	RecommendedBudget string  `json:"recommendedBudget"`
	Reasoning         string  `json:"reasoning"`
	Icon              string  `json:"icon"`
}

// BudgetRecommendationsResponse represents the recommendation list.
type BudgetRecommendationsResponse struct {
	Recommendations []BudgetRecommendationResponse `json:"recommendations"`
	Skipped         []string                       `json:"skipped,omitempty"`
}

// HealthMetricsResponse represents the component metrics of a health score.
type HealthMetricsResponse struct {
	SavingsRate          float64 `json:"savingsRate"`
	BudgetAdherence      float64 `json:"budgetAdherence"`
	ExpenseToIncomeRatio float64 `json:"expenseToIncomeRatio"`
}

// HealthScoreResponse represents a financial health assessment. Score and
// the nested fields are null when no transactions were provided.
type HealthScoreResponse struct {
	Score    *int                   `json:"score"`
	Category string                 `json:"category,omitempty"`
	Metrics  *HealthMetricsResponse `json:"metrics,omitempty"`
	Skipped  []string               `json:"skipped,omitempty"`
}

// OverviewResponse bundles the dashboard aggregates in one payload.
type OverviewResponse struct {
	Totals      TotalsResponse          `json:"totals"`
	Categories  []CategoryTotalResponse `json:"categories"`
	Trend       []TrendPointResponse    `json:"trend"`
	HealthScore *HealthScoreResponse    `json:"healthScore"`
	Skipped     []string                `json:"skipped,omitempty"`
}

// ToTotalsResponse converts domain totals to the response DTO.
func ToTotalsResponse(totals entity.Totals, skipped []string) TotalsResponse {
	return TotalsResponse{
		Income:   totals.Income.String(),
		Expenses: totals.Expenses.String(),
		Net:      totals.Net().String(),
		Skipped:  skipped,
	}
}

// ToCategoryTotalResponses converts domain category totals to response DTOs.
func ToCategoryTotalResponses(totals []entity.CategoryTotal) []CategoryTotalResponse {
	result := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		result[i] = CategoryTotalResponse{
			Category: string(t.Category),
			Icon:     t.Category.Icon(),
			Total:    t.Amount.String(),
		}
	}
	return result
}

// ToTrendPointResponses converts domain trend points to response DTOs.
func ToTrendPointResponses(trend []entity.TrendPoint) []TrendPointResponse {
	result := make([]TrendPointResponse, len(trend))
	for i, p := range trend {
		result[i] = TrendPointResponse{
			Month:    p.Label,
			Income:   p.Income.String(),
			Expenses: p.Expenses.String(),
		}
	}
	return result
}

// ToBudgetRecommendationResponses converts domain recommendations to DTOs.
func ToBudgetRecommendationResponses(recommendations []*entity.BudgetRecommendation) []BudgetRecommendationResponse {
	result := make([]BudgetRecommendationResponse, len(recommendations))
	for i, r := range recommendations {
		response := BudgetRecommendationResponse{
			Category:          string(r.Category),
			RecommendedBudget: r.RecommendedBudget.String(),
			Reasoning:         r.Reasoning,
			Icon:              r.Icon,
		}
		if r.CurrentBudget != nil {
			current := r.CurrentBudget.String()
			response.CurrentBudget = &current
		}
		result[i] = response
	}
	return result
}

// ToHealthScoreResponse converts a domain health score to the response DTO.
// A nil score produces a response with null score and no metrics.
func ToHealthScoreResponse(score *entity.HealthScore, skipped []string) HealthScoreResponse {
	if score == nil {
		return HealthScoreResponse{Skipped: skipped}
	}

	value := score.Score
	return HealthScoreResponse{
		Score:    &value,
		Category: string(score.Category),
		Metrics: &HealthMetricsResponse{
			SavingsRate:          score.Metrics.SavingsRate,
			BudgetAdherence:      score.Metrics.BudgetAdherence,
			ExpenseToIncomeRatio: score.Metrics.ExpenseToIncomeRatio,
		},
		Skipped: skipped,
	}
}
