// Package adapter defines interfaces that are implemented in the
// integration layer.
package adapter

import (
	"context"

	"github.com/fintracker/insights/internal/domain/entity"
)

// AIService is the generative-AI delegate. It mirrors the deterministic
// heuristic engine operation-for-operation so that the advisor can demote
// any failure to the fallback path with an identical result shape.
//
// Implementations must fail loudly with *domainerror.ExternalServiceError
// and never substitute fallback data themselves; that decision belongs to
// the orchestration layer.
type AIService interface {
	// PredictCategory classifies a transaction description into the closed
	// category enumeration.
	PredictCategory(ctx context.Context, description string) (entity.CategoryID, error)

	// EnrichTransaction resolves a description to merchant label, category,
	// and icon.
	EnrichTransaction(ctx context.Context, description string) (*entity.MerchantInfo, error)

	// GenerateInsights produces 3-5 insights from the transaction snapshot.
	GenerateInsights(ctx context.Context, transactions []*entity.Transaction) ([]*entity.Insight, error)

	// RecommendBudgets produces per-category budget recommendations.
	RecommendBudgets(ctx context.Context, transactions []*entity.Transaction, budgets []*entity.Budget) ([]*entity.BudgetRecommendation, error)

	// PredictFutureExpenses projects next month's spend per category.
	PredictFutureExpenses(ctx context.Context, transactions []*entity.Transaction) (*entity.PredictionBundle, error)

	// RecommendActions produces financial action recommendations.
	RecommendActions(ctx context.Context, transactions []*entity.Transaction) ([]*entity.ActionRecommendation, error)

	// IsAvailable reports whether the service is configured with a credential.
	IsAvailable() bool
}
