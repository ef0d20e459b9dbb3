package dto

import (
	"github.com/fintracker/insights/internal/domain/entity"
)

// ClassifyRequest represents the request body for category prediction.
type ClassifyRequest struct {
	Description string `json:"description" binding:"required,min=1,max=255"`
}

// ClassifyResponse represents a category prediction.
type ClassifyResponse struct {
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

// EnrichRequest represents the request body for merchant enrichment.
type EnrichRequest struct {
	Description string `json:"description" binding:"required,min=1,max=255"`
}

// EnrichResponse represents merchant enrichment for a description.
type EnrichResponse struct {
	MerchantName string `json:"merchantName"`
	Category     string `json:"category"`
	Icon         string `json:"icon"`
}

// InsightResponse represents one generated insight.
type InsightResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action,omitempty"`
	Amount      string `json:"amount"`
}

// InsightsResponse represents the generated insight list.
type InsightsResponse struct {
	Insights []InsightResponse `json:"insights"`
	Skipped  []string          `json:"skipped,omitempty"`
}

// ExpensePredictionResponse represents one predicted category spend.
type ExpensePredictionResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Icon     string `json:"icon"`
}

// PredictionsResponse represents next month's predicted expenses.
type PredictionsResponse struct {
	TotalPredicted string                      `json:"totalPredicted"`
	Categories     []ExpensePredictionResponse `json:"categories"`
	Skipped        []string                    `json:"skipped,omitempty"`
}

// ActionRecommendationResponse represents one recommended financial action.
type ActionRecommendationResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Timeframe   string `json:"timeframe"`
}

// ActionsResponse represents the recommended action list.
type ActionsResponse struct {
	Actions []ActionRecommendationResponse `json:"actions"`
	Skipped []string                       `json:"skipped,omitempty"`
}

// ToInsightResponses converts domain insights to response DTOs.
func ToInsightResponses(insights []*entity.Insight) []InsightResponse {
	result := make([]InsightResponse, len(insights))
	for i, insight := range insights {
		result[i] = InsightResponse{
			ID:          insight.ID.String(),
			Title:       insight.Title,
			Description: insight.Description,
			Action:      insight.Action,
			Amount:      insight.Amount.String(),
		}
	}
	return result
}

// ToPredictionsResponse converts a domain prediction bundle to the response DTO.
func ToPredictionsResponse(bundle *entity.PredictionBundle, skipped []string) PredictionsResponse {
	categories := make([]ExpensePredictionResponse, len(bundle.Categories))
	for i, c := range bundle.Categories {
		categories[i] = ExpensePredictionResponse{
			Category: string(c.Category),
			Amount:   c.Amount.String(),
			Icon:     c.Icon,
		}
	}
	return PredictionsResponse{
		TotalPredicted: bundle.TotalPredicted.String(),
		Categories:     categories,
		Skipped:        skipped,
	}
}

// ToActionResponses converts domain action recommendations to response DTOs.
func ToActionResponses(actions []*entity.ActionRecommendation) []ActionRecommendationResponse {
	result := make([]ActionRecommendationResponse, len(actions))
	for i, a := range actions {
		result[i] = ActionRecommendationResponse{
			Title:       a.Title,
			Description: a.Description,
			Impact:      string(a.Impact),
			Timeframe:   string(a.Timeframe),
		}
	}
	return result
}
