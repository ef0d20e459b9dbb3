// Package mock provides test doubles for integration tests.
package mock

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintracker/insights/internal/domain/entity"
)

// AIService is a scripted stand-in for the generative AI delegate. When Err
// is set every operation fails with it; otherwise the scripted values are
// returned.
type AIService struct {
	Err      error
	Category entity.CategoryID
	Merchant *entity.MerchantInfo
	Calls    int
}

// NewFailingAIService returns a delegate that fails every call.
func NewFailingAIService(err error) *AIService {
	return &AIService{Err: err}
}

// NewScriptedAIService returns a delegate that answers every classification
// with the given category.
func NewScriptedAIService(category entity.CategoryID) *AIService {
	return &AIService{
		Category: category,
		Merchant: &entity.MerchantInfo{
			Name:     "Scripted Merchant",
			Category: category,
			Icon:     category.Icon(),
		},
	}
}

func (m *AIService) PredictCategory(ctx context.Context, description string) (entity.CategoryID, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Category, nil
}

func (m *AIService) EnrichTransaction(ctx context.Context, description string) (*entity.MerchantInfo, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Merchant, nil
}

func (m *AIService) GenerateInsights(ctx context.Context, transactions []*entity.Transaction) ([]*entity.Insight, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return []*entity.Insight{
		entity.NewInsight("Scripted Insight", "A scripted model observation.", "", decimal.Zero),
	}, nil
}

func (m *AIService) RecommendBudgets(ctx context.Context, transactions []*entity.Transaction, budgets []*entity.Budget) ([]*entity.BudgetRecommendation, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return []*entity.BudgetRecommendation{}, nil
}

func (m *AIService) PredictFutureExpenses(ctx context.Context, transactions []*entity.Transaction) (*entity.PredictionBundle, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return &entity.PredictionBundle{TotalPredicted: decimal.Zero, Categories: []entity.ExpensePrediction{}}, nil
}

func (m *AIService) RecommendActions(ctx context.Context, transactions []*entity.Transaction) ([]*entity.ActionRecommendation, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return []*entity.ActionRecommendation{}, nil
}

func (m *AIService) IsAvailable() bool { return true }
