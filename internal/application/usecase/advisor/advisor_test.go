package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintracker/insights/internal/application/usecase/budget"
	"github.com/fintracker/insights/internal/application/usecase/classifier"
	"github.com/fintracker/insights/internal/application/usecase/insights"
	"github.com/fintracker/insights/internal/domain/entity"
)

// failingAIService fails every operation and records how often it was hit.
type failingAIService struct {
	err   error
	calls int
}

func (f *failingAIService) PredictCategory(ctx context.Context, description string) (entity.CategoryID, error) {
	f.calls++
	return "", f.err
}

func (f *failingAIService) EnrichTransaction(ctx context.Context, description string) (*entity.MerchantInfo, error) {
	f.calls++
	return nil, f.err
}

func (f *failingAIService) GenerateInsights(ctx context.Context, transactions []*entity.Transaction) ([]*entity.Insight, error) {
	f.calls++
	return nil, f.err
}

func (f *failingAIService) RecommendBudgets(ctx context.Context, transactions []*entity.Transaction, budgets []*entity.Budget) ([]*entity.BudgetRecommendation, error) {
	f.calls++
	return nil, f.err
}

func (f *failingAIService) PredictFutureExpenses(ctx context.Context, transactions []*entity.Transaction) (*entity.PredictionBundle, error) {
	f.calls++
	return nil, f.err
}

func (f *failingAIService) RecommendActions(ctx context.Context, transactions []*entity.Transaction) ([]*entity.ActionRecommendation, error) {
	f.calls++
	return nil, f.err
}

func (f *failingAIService) IsAvailable() bool { return true }

// stubCache is an in-memory ResultCache for advisor tests.
type stubCache struct {
	categories map[string]entity.CategoryID
	merchants  map[string]*entity.MerchantInfo
}

func newStubCache() *stubCache {
	return &stubCache{
		categories: make(map[string]entity.CategoryID),
		merchants:  make(map[string]*entity.MerchantInfo),
	}
}

func (c *stubCache) GetCategory(ctx context.Context, description string) (entity.CategoryID, bool, error) {
	category, ok := c.categories[description]
	return category, ok, nil
}

func (c *stubCache) SetCategory(ctx context.Context, description string, category entity.CategoryID) error {
	c.categories[description] = category
	return nil
}

func (c *stubCache) GetMerchant(ctx context.Context, description string) (*entity.MerchantInfo, bool, error) {
	info, ok := c.merchants[description]
	return info, ok, nil
}

func (c *stubCache) SetMerchant(ctx context.Context, description string, info *entity.MerchantInfo) error {
	c.merchants[description] = info
	return nil
}

func sampleTransactions() []*entity.Transaction {
	return []*entity.Transaction{
		{
			Title:    "Salary",
			Amount:   decimal.NewFromInt(1000),
			Category: entity.CategorySalary,
			Date:     time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:    "Dinner",
			Amount:   decimal.NewFromInt(-300),
			Category: entity.CategoryFood,
			Date:     time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestAdvisorWithoutDelegate(t *testing.T) {
	adv := New(nil, nil, nil)
	if adv.AIEnabled() {
		t.Error("AIEnabled() = true without a delegate")
	}

	got := adv.PredictCategory(context.Background(), "Starbucks coffee")
	want := classifier.Classify("Starbucks coffee")
	if got != want {
		t.Errorf("PredictCategory = %q, want heuristic result %q", got, want)
	}
}

func TestAdvisorDemotesFailuresToFallback(t *testing.T) {
	ctx := context.Background()
	ai := &failingAIService{err: errors.New("503 service unavailable")}
	adv := New(ai, nil, nil)
	transactions := sampleTransactions()

	t.Run("predict category", func(t *testing.T) {
		got := adv.PredictCategory(ctx, "Uber ride")
		if want := classifier.Classify("Uber ride"); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("enrich transaction", func(t *testing.T) {
		got := adv.EnrichTransaction(ctx, "Netflix monthly")
		want := classifier.Enrich("Netflix monthly")
		if got.Name != want.Name || got.Category != want.Category {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("generate insights", func(t *testing.T) {
		got := adv.GenerateInsights(ctx, transactions)
		want := insights.Generate(transactions)
		if len(got) != len(want) {
			t.Fatalf("got %d insights, want %d", len(got), len(want))
		}
		for i := range got {
			if got[i].Title != want[i].Title {
				t.Errorf("insight[%d].Title = %q, want %q", i, got[i].Title, want[i].Title)
			}
		}
	})

	t.Run("recommend budgets", func(t *testing.T) {
		engine := budget.NewEngine(budget.DefaultMonthsOfHistory)
		got := adv.RecommendBudgets(ctx, transactions, nil)
		want := engine.Recommend(transactions, nil)
		if len(got) != len(want) {
			t.Fatalf("got %d recommendations, want %d", len(got), len(want))
		}
		for i := range got {
			if got[i].Category != want[i].Category || !got[i].RecommendedBudget.Equal(want[i].RecommendedBudget) {
				t.Errorf("recommendation[%d] = %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("predict future expenses", func(t *testing.T) {
		got := adv.PredictFutureExpenses(ctx, transactions)
		want := insights.PredictExpenses(transactions)
		if !got.TotalPredicted.Equal(want.TotalPredicted) {
			t.Errorf("TotalPredicted = %s, want %s", got.TotalPredicted, want.TotalPredicted)
		}
	})

	t.Run("recommend actions", func(t *testing.T) {
		got := adv.RecommendActions(ctx, transactions)
		want := insights.RecommendActions(transactions)
		if len(got) != len(want) {
			t.Fatalf("got %d actions, want %d", len(got), len(want))
		}
		for i := range got {
			if got[i].Title != want[i].Title {
				t.Errorf("action[%d].Title = %q, want %q", i, got[i].Title, want[i].Title)
			}
		}
	})

	if ai.calls != 6 {
		t.Errorf("delegate was called %d times, want 6", ai.calls)
	}
}

func TestAdvisorServesCachedCategory(t *testing.T) {
	ctx := context.Background()
	ai := &failingAIService{err: errors.New("boom")}
	cache := newStubCache()
	cache.categories["starbucks coffee"] = entity.CategoryFood

	adv := New(ai, cache, nil)

	got := adv.PredictCategory(ctx, "starbucks coffee")
	if got != entity.CategoryFood {
		t.Errorf("PredictCategory = %q, want cached %q", got, entity.CategoryFood)
	}
	if ai.calls != 0 {
		t.Errorf("delegate was called %d times on a cache hit, want 0", ai.calls)
	}
}

func TestAdvisorServesCachedMerchant(t *testing.T) {
	ctx := context.Background()
	ai := &failingAIService{err: errors.New("boom")}
	cache := newStubCache()
	cache.merchants["amzn marketplace"] = &entity.MerchantInfo{
		Name:     "Amazon",
		Category: entity.CategoryShopping,
		Icon:     "🛍️",
	}

	adv := New(ai, cache, nil)

	got := adv.EnrichTransaction(ctx, "amzn marketplace")
	if got.Name != "Amazon" {
		t.Errorf("EnrichTransaction.Name = %q, want cached Amazon", got.Name)
	}
	if ai.calls != 0 {
		t.Errorf("delegate was called %d times on a cache hit, want 0", ai.calls)
	}
}

// succeedingAIService returns a fixed category and counts cache writes
// through the advisor.
type succeedingAIService struct {
	failingAIService
	category entity.CategoryID
}

func (s *succeedingAIService) PredictCategory(ctx context.Context, description string) (entity.CategoryID, error) {
	s.calls++
	return s.category, nil
}

func TestAdvisorCachesDelegateResults(t *testing.T) {
	ctx := context.Background()
	ai := &succeedingAIService{category: entity.CategoryTravel}
	cache := newStubCache()
	adv := New(ai, cache, nil)

	if got := adv.PredictCategory(ctx, "Flight to Lisbon"); got != entity.CategoryTravel {
		t.Fatalf("PredictCategory = %q, want %q", got, entity.CategoryTravel)
	}
	if cached, ok := cache.categories["Flight to Lisbon"]; !ok || cached != entity.CategoryTravel {
		t.Errorf("cache entry = %q (present: %v), want %q", cached, ok, entity.CategoryTravel)
	}

	// Second lookup is served from the cache.
	if got := adv.PredictCategory(ctx, "Flight to Lisbon"); got != entity.CategoryTravel {
		t.Fatalf("second PredictCategory = %q, want %q", got, entity.CategoryTravel)
	}
	if ai.calls != 1 {
		t.Errorf("delegate was called %d times, want 1", ai.calls)
	}
}
