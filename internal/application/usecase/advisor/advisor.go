// Package advisor orchestrates the AI delegate and the deterministic
// heuristic engines. Every operation tries the delegate when one is
// configured and demotes any failure to the heuristic fallback, so callers
// always receive a valid result and never observe external-service errors.
package advisor

import (
	"context"
	"log/slog"

	"github.com/fintracker/insights/internal/application/adapter"
	"github.com/fintracker/insights/internal/application/usecase/budget"
	"github.com/fintracker/insights/internal/application/usecase/classifier"
	"github.com/fintracker/insights/internal/application/usecase/insights"
	"github.com/fintracker/insights/internal/domain/entity"
)

// Advisor is the delegate-with-fallback orchestrator. The AI service and
// the result cache are both optional; a nil AI service puts every operation
// permanently on the heuristic path, which is a fully supported mode.
type Advisor struct {
	ai           adapter.AIService
	cache        adapter.ResultCache
	budgetEngine *budget.Engine
}

// New creates an Advisor. Pass nil for ai and cache to run pure fallback.
func New(ai adapter.AIService, cache adapter.ResultCache, budgetEngine *budget.Engine) *Advisor {
	if budgetEngine == nil {
		budgetEngine = budget.NewEngine(budget.DefaultMonthsOfHistory)
	}
	return &Advisor{
		ai:           ai,
		cache:        cache,
		budgetEngine: budgetEngine,
	}
}

// AIEnabled reports whether a configured delegate is present.
func (a *Advisor) AIEnabled() bool {
	return a.ai != nil && a.ai.IsAvailable()
}

// PredictCategory classifies a description, preferring the cached or
// AI-provided answer and falling back to keyword scoring.
func (a *Advisor) PredictCategory(ctx context.Context, description string) entity.CategoryID {
	if !a.AIEnabled() {
		return classifier.Classify(description)
	}

	if a.cache != nil {
		if category, ok, err := a.cache.GetCategory(ctx, description); err == nil && ok {
			return category
		}
	}

	category, err := a.ai.PredictCategory(ctx, description)
	if err != nil {
		a.logFallback(ctx, "predict_category", err)
		return classifier.Classify(description)
	}

	if a.cache != nil {
		if err := a.cache.SetCategory(ctx, description, category); err != nil {
			slog.WarnContext(ctx, "Failed to cache category prediction", "error", err)
		}
	}

	return category
}

// EnrichTransaction resolves merchant info for a description.
func (a *Advisor) EnrichTransaction(ctx context.Context, description string) *entity.MerchantInfo {
	if !a.AIEnabled() {
		return classifier.Enrich(description)
	}

	if a.cache != nil {
		if info, ok, err := a.cache.GetMerchant(ctx, description); err == nil && ok {
			return info
		}
	}

	info, err := a.ai.EnrichTransaction(ctx, description)
	if err != nil {
		a.logFallback(ctx, "enrich_transaction", err)
		return classifier.Enrich(description)
	}

	if a.cache != nil {
		if err := a.cache.SetMerchant(ctx, description, info); err != nil {
			slog.WarnContext(ctx, "Failed to cache merchant enrichment", "error", err)
		}
	}

	return info
}

// GenerateInsights produces insights for the snapshot.
func (a *Advisor) GenerateInsights(ctx context.Context, transactions []*entity.Transaction) []*entity.Insight {
	if a.AIEnabled() {
		result, err := a.ai.GenerateInsights(ctx, transactions)
		if err == nil {
			return result
		}
		a.logFallback(ctx, "generate_insights", err)
	}
	return insights.Generate(transactions)
}

// RecommendBudgets produces budget recommendations for the snapshot.
func (a *Advisor) RecommendBudgets(ctx context.Context, transactions []*entity.Transaction, budgets []*entity.Budget) []*entity.BudgetRecommendation {
	if a.AIEnabled() {
		result, err := a.ai.RecommendBudgets(ctx, transactions, budgets)
		if err == nil {
			return result
		}
		a.logFallback(ctx, "recommend_budgets", err)
	}
	return a.budgetEngine.Recommend(transactions, budgets)
}

// PredictFutureExpenses projects next month's spend per category.
func (a *Advisor) PredictFutureExpenses(ctx context.Context, transactions []*entity.Transaction) *entity.PredictionBundle {
	if a.AIEnabled() {
		result, err := a.ai.PredictFutureExpenses(ctx, transactions)
		if err == nil {
			return result
		}
		a.logFallback(ctx, "predict_future_expenses", err)
	}
	return insights.PredictExpenses(transactions)
}

// RecommendActions produces financial action recommendations.
func (a *Advisor) RecommendActions(ctx context.Context, transactions []*entity.Transaction) []*entity.ActionRecommendation {
	if a.AIEnabled() {
		result, err := a.ai.RecommendActions(ctx, transactions)
		if err == nil {
			return result
		}
		a.logFallback(ctx, "recommend_actions", err)
	}
	return insights.RecommendActions(transactions)
}

// logFallback records a demoted delegate failure with its classification.
// The failure never propagates to the caller.
func (a *Advisor) logFallback(ctx context.Context, operation string, err error) {
	classified := classifyError(err)
	slog.WarnContext(ctx, "AI delegate failed, serving heuristic result",
		"operation", operation,
		"code", classified.Code,
		"retryable", classified.Retryable,
		"error", err,
	)
}
