package budget

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintracker/insights/internal/domain/entity"
)

func txn(title string, amount float64, category entity.CategoryID) *entity.Transaction {
	return &entity.Transaction{
		Title:    title,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Date:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

func budgetFor(category entity.CategoryID, amount int64) *entity.Budget {
	return &entity.Budget{
		Category: category,
		Amount:   decimal.NewFromInt(amount),
	}
}

func TestRecommendEmptySnapshot(t *testing.T) {
	engine := NewEngine(DefaultMonthsOfHistory)

	recommendations := engine.Recommend(nil, nil)
	if recommendations == nil {
		t.Fatal("Recommend(nil, nil) returned nil, want empty slice")
	}
	if len(recommendations) != 0 {
		t.Errorf("got %d recommendations, want 0", len(recommendations))
	}
}

func TestRecommendAdjustsExistingBudgets(t *testing.T) {
	// One month of history keeps the monthly average equal to the totals.
	engine := NewEngine(1)

	tests := []struct {
		name              string
		currentBudget     int64
		expected          string
		reasoningContains string
	}{
		{
			name:              "overspending trims the average by ten percent",
			currentBudget:     200,
			expected:          "270",
			reasoningContains: "higher than your current budget",
		},
		{
			name:              "well under budget adds ten percent headroom",
			currentBudget:     1000,
			expected:          "330",
			reasoningContains: "well below budget",
		},
		{
			name:              "aligned budget is kept",
			currentBudget:     350,
			expected:          "350",
			reasoningContains: "aligns well",
		},
	}

	transactions := []*entity.Transaction{
		txn("Salary", 1000, entity.CategorySalary),
		txn("Dinner", -300, entity.CategoryFood),
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recommendations := engine.Recommend(transactions, []*entity.Budget{
				budgetFor(entity.CategoryFood, tt.currentBudget),
			})
			if len(recommendations) != 1 {
				t.Fatalf("got %d recommendations, want 1", len(recommendations))
			}

			rec := recommendations[0]
			if rec.Category != entity.CategoryFood {
				t.Errorf("Category = %q, want %q", rec.Category, entity.CategoryFood)
			}
			if rec.CurrentBudget == nil || !rec.CurrentBudget.Equal(decimal.NewFromInt(tt.currentBudget)) {
				t.Errorf("CurrentBudget = %v, want %d", rec.CurrentBudget, tt.currentBudget)
			}
			if !rec.RecommendedBudget.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("RecommendedBudget = %s, want %s", rec.RecommendedBudget, tt.expected)
			}
			if !strings.Contains(rec.Reasoning, tt.reasoningContains) {
				t.Errorf("Reasoning = %q, want substring %q", rec.Reasoning, tt.reasoningContains)
			}
		})
	}
}

func TestRecommendFromIncomeGuideline(t *testing.T) {
	engine := NewEngine(1)

	transactions := []*entity.Transaction{
		txn("Salary", 1000, entity.CategorySalary),
		txn("Dinner", -300, entity.CategoryFood),
	}

	recommendations := engine.Recommend(transactions, nil)
	if len(recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recommendations))
	}

	// Actual spend is 30% of income, capped by the 15% food guideline.
	rec := recommendations[0]
	if rec.CurrentBudget != nil {
		t.Errorf("CurrentBudget = %v, want nil", rec.CurrentBudget)
	}
	if !rec.RecommendedBudget.Equal(decimal.NewFromInt(150)) {
		t.Errorf("RecommendedBudget = %s, want 150", rec.RecommendedBudget)
	}
	if !strings.Contains(rec.Reasoning, "15.0%") {
		t.Errorf("Reasoning = %q, want the capped percentage", rec.Reasoning)
	}
}

func TestRecommendWithoutIncome(t *testing.T) {
	engine := NewEngine(1)

	transactions := []*entity.Transaction{
		txn("Dinner", -300, entity.CategoryFood),
	}

	recommendations := engine.Recommend(transactions, nil)
	if len(recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recommendations))
	}

	rec := recommendations[0]
	if !rec.RecommendedBudget.IsZero() {
		t.Errorf("RecommendedBudget = %s, want 0", rec.RecommendedBudget)
	}
	if !strings.Contains(rec.Reasoning, "Not enough income data") {
		t.Errorf("Reasoning = %q, want the missing income note", rec.Reasoning)
	}
}

func TestRecommendNeverNegative(t *testing.T) {
	engine := NewEngine(DefaultMonthsOfHistory)

	transactions := []*entity.Transaction{
		txn("Salary", 10, entity.CategorySalary),
		txn("Rent", -5000, entity.CategoryHousing),
		txn("Dinner", -300, entity.CategoryFood),
	}

	recommendations := engine.Recommend(transactions, []*entity.Budget{
		budgetFor(entity.CategoryHousing, 1),
	})
	for _, rec := range recommendations {
		if rec.RecommendedBudget.IsNegative() {
			t.Errorf("recommendation for %q is negative: %s", rec.Category, rec.RecommendedBudget)
		}
	}
}

func TestRecommendKeepsTopFiveCategories(t *testing.T) {
	engine := NewEngine(1)

	transactions := []*entity.Transaction{
		txn("Salary", 10000, entity.CategorySalary),
		txn("Rent", -600, entity.CategoryHousing),
		txn("Dinner", -500, entity.CategoryFood),
		txn("Gas", -400, entity.CategoryTransport),
		txn("Movies", -300, entity.CategoryEntertainment),
		txn("Clothes", -200, entity.CategoryShopping),
		txn("Vitamins", -100, entity.CategoryHealthcare),
	}

	recommendations := engine.Recommend(transactions, nil)
	if len(recommendations) != 5 {
		t.Fatalf("got %d recommendations, want 5", len(recommendations))
	}
	for _, rec := range recommendations {
		if rec.Category == entity.CategoryHealthcare {
			t.Error("smallest category should not be recommended")
		}
	}
}

func TestNewEngineDefaultsOnInvalidWindow(t *testing.T) {
	engine := NewEngine(0)
	if engine.monthsOfHistory != DefaultMonthsOfHistory {
		t.Errorf("monthsOfHistory = %d, want %d", engine.monthsOfHistory, DefaultMonthsOfHistory)
	}
}
