package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintracker/insights/internal/application/usecase/advisor"
	domainerror "github.com/fintracker/insights/internal/domain/error"
	"github.com/fintracker/insights/internal/integration/entrypoint/dto"
)

// AIController handles the AI-assisted endpoints. Every operation goes
// through the advisor, which serves the heuristic fallback whenever the
// delegate is absent or fails, so these handlers never return AI errors.
type AIController struct {
	advisor *advisor.Advisor
}

// NewAIController creates a new AI controller instance.
func NewAIController(adv *advisor.Advisor) *AIController {
	return &AIController{advisor: adv}
}

// Classify handles POST /ai/classify requests.
func (c *AIController) Classify(ctx *gin.Context) {
	var req dto.ClassifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRequestBody),
		})
		return
	}

	category := c.advisor.PredictCategory(ctx.Request.Context(), req.Description)
	ctx.JSON(http.StatusOK, dto.ClassifyResponse{
		Category: string(category),
		Icon:     category.Icon(),
	})
}

// Enrich handles POST /ai/enrich requests.
func (c *AIController) Enrich(ctx *gin.Context) {
	var req dto.EnrichRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRequestBody),
		})
		return
	}

	info := c.advisor.EnrichTransaction(ctx.Request.Context(), req.Description)
	ctx.JSON(http.StatusOK, dto.EnrichResponse{
		MerchantName: info.Name,
		Category:     string(info.Category),
		Icon:         info.Icon,
	})
}

// Insights handles POST /ai/insights requests.
func (c *AIController) Insights(ctx *gin.Context) {
	req, ok := bindAnalyticsRequest(ctx)
	if !ok {
		return
	}

	transactions, skipped := req.ToTransactions()
	logSkipped(ctx, "insights", skipped)

	insights := c.advisor.GenerateInsights(ctx.Request.Context(), transactions)
	ctx.JSON(http.StatusOK, dto.InsightsResponse{
		Insights: dto.ToInsightResponses(insights),
		Skipped:  skipped,
	})
}

// Predictions handles POST /ai/predictions requests.
func (c *AIController) Predictions(ctx *gin.Context) {
	req, ok := bindAnalyticsRequest(ctx)
	if !ok {
		return
	}

	transactions, skipped := req.ToTransactions()
	logSkipped(ctx, "predictions", skipped)

	bundle := c.advisor.PredictFutureExpenses(ctx.Request.Context(), transactions)
	ctx.JSON(http.StatusOK, dto.ToPredictionsResponse(bundle, skipped))
}

// Actions handles POST /ai/actions requests.
func (c *AIController) Actions(ctx *gin.Context) {
	req, ok := bindAnalyticsRequest(ctx)
	if !ok {
		return
	}

	transactions, skipped := req.ToTransactions()
	logSkipped(ctx, "actions", skipped)

	actions := c.advisor.RecommendActions(ctx.Request.Context(), transactions)
	ctx.JSON(http.StatusOK, dto.ActionsResponse{
		Actions: dto.ToActionResponses(actions),
		Skipped: skipped,
	})
}

// Recommendations handles POST /ai/budget-recommendations requests.
func (c *AIController) Recommendations(ctx *gin.Context) {
	req, ok := bindAnalyticsRequest(ctx)
	if !ok {
		return
	}

	transactions, skipped := req.ToTransactions()
	logSkipped(ctx, "ai_budget_recommendations", skipped)

	recommendations := c.advisor.RecommendBudgets(ctx.Request.Context(), transactions, req.ToBudgets())
	ctx.JSON(http.StatusOK, dto.BudgetRecommendationsResponse{
		Recommendations: dto.ToBudgetRecommendationResponses(recommendations),
		Skipped:         skipped,
	})
}
