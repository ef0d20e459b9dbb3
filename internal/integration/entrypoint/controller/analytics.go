// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintracker/insights/internal/application/usecase/analytics"
	"github.com/fintracker/insights/internal/application/usecase/budget"
	"github.com/fintracker/insights/internal/application/usecase/health"
	"github.com/fintracker/insights/internal/application/usecase/report"
	domainerror "github.com/fintracker/insights/internal/domain/error"
	"github.com/fintracker/insights/internal/integration/entrypoint/dto"
)

// AnalyticsController handles the deterministic analytics endpoints. The
// service is stateless; every request carries its own transaction snapshot.
type AnalyticsController struct {
	budgetEngine *budget.Engine
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(budgetEngine *budget.Engine) *AnalyticsController {
	if budgetEngine == nil {
		budgetEngine = budget.NewEngine(budget.DefaultMonthsOfHistory)
	}
	return &AnalyticsController{budgetEngine: budgetEngine}
}

// bindAnalyticsRequest parses and validates the shared request body. It
// returns false after writing the error response when binding fails.
func bindAnalyticsRequest(ctx *gin.Context) (*dto.AnalyticsRequest, bool) {
	var req dto.AnalyticsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRequestBody),
		})
		return nil, false
	}
	return &req, true
}

// Totals handles POST /analytics/totals requests.
func (c *AnalyticsController) Totals(ctx *gin.Context) {
	req, ok := bindAnalyticsRequest(ctx)
	if !ok {
		return
	}

	transactions, skipped := req.ToTransactions()
	logSkipped(ctx, "totals", skipped)

	totals := analytics.Totals(transactions)
	ctx.JSON(http.StatusOK, dto.ToTotalsResponse(totals, skipped))
}

// CategoryBreakdown handles POST /analytics/category-breakdown requests.
func (c *AnalyticsController) CategoryBreakdown(ctx *gin.Context) {
	req, ok := bindAnalyticsRequest(ctx)
	if !ok {
		return
	}

	transactions, skipped := req.ToTransactions()
	logSkipped(ctx, "category_breakdown", skipped)

	totals := analytics.CategoryTotals(transactions)
	ctx.JSON(http.StatusOK, dto.CategoryBreakdownResponse{
		Categories: dto.ToCategoryTotalResponses(totals),
		Skipped:    skipped,
	})
}

// MonthlyTrend handles POST /analytics/monthly-trend requests.
func (c *AnalyticsController) MonthlyTrend(ctx *gin.Context) {
	req, ok := bindAnalyticsRequest(ctx)
	if !ok {
		return
	}

	transactions, skipped := req.ToTransactions()
	logSkipped(ctx, "monthly_trend", skipped)

	trend := analytics.MonthlyTrend(transactions)
	ctx.JSON(http.StatusOK, dto.MonthlyTrendResponse{
		Trend:   dto.ToTrendPointResponses(trend),
		Skipped: skipped,
	})
}

// BudgetRecommendations handles POST /analytics/budget-recommendations requests.
func (c *AnalyticsController) BudgetRecommendations(ctx *gin.Context) {
	req, ok := bindAnalyticsRequest(ctx)
	if !ok {
		return
	}

	transactions, skipped := req.ToTransactions()
	logSkipped(ctx, "budget_recommendations", skipped)

	recommendations := c.budgetEngine.Recommend(transactions, req.ToBudgets())
	ctx.JSON(http.StatusOK, dto.BudgetRecommendationsResponse{
		Recommendations: dto.ToBudgetRecommendationResponses(recommendations),
		Skipped:         skipped,
	})
}

// HealthScore handles POST /analytics/health-score requests.
func (c *AnalyticsController) HealthScore(ctx *gin.Context) {
	req, ok := bindAnalyticsRequest(ctx)
	if !ok {
		return
	}

	transactions, skipped := req.ToTransactions()
	logSkipped(ctx, "health_score", skipped)

	score := health.Score(transactions, req.ToBudgets())
	ctx.JSON(http.StatusOK, dto.ToHealthScoreResponse(score, skipped))
}

// Overview handles POST /analytics/overview requests.
func (c *AnalyticsController) Overview(ctx *gin.Context) {
	req, ok := bindAnalyticsRequest(ctx)
	if !ok {
		return
	}

	transactions, skipped := req.ToTransactions()
	logSkipped(ctx, "overview", skipped)

	overview, err := report.BuildOverview(ctx.Request.Context(), transactions, req.ToBudgets())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build overview",
		})
		return
	}

	response := dto.OverviewResponse{
		Totals:     dto.ToTotalsResponse(overview.Totals, nil),
		Categories: dto.ToCategoryTotalResponses(overview.Categories),
		Trend:      dto.ToTrendPointResponses(overview.Trend),
		Skipped:    skipped,
	}
	if overview.HealthScore != nil {
		score := dto.ToHealthScoreResponse(overview.HealthScore, nil)
		response.HealthScore = &score
	}

	ctx.JSON(http.StatusOK, response)
}
