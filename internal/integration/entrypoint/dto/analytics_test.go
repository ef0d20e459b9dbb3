package dto

import (
	"strings"
	"testing"

	"github.com/fintracker/insights/internal/domain/entity"
)

func TestToTransactionsParsesBothDateLayouts(t *testing.T) {
	req := &AnalyticsRequest{
		Transactions: []TransactionRequest{
			{ID: "a", Title: "Salary", Amount: 1000, Date: "2024-01-05T10:30:00Z"},
			{ID: "b", Title: "Dinner", Amount: -300, Date: "2024-01-10"},
		},
	}

	transactions, skipped := req.ToTransactions()
	if len(skipped) != 0 {
		t.Fatalf("skipped = %v, want none", skipped)
	}
	if len(transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(transactions))
	}
	if transactions[0].Date.Day() != 5 || transactions[1].Date.Day() != 10 {
		t.Errorf("parsed days = %d and %d, want 5 and 10",
			transactions[0].Date.Day(), transactions[1].Date.Day())
	}
	if !transactions[1].Amount.IsNegative() {
		t.Error("expense amount lost its sign")
	}
}

func TestToTransactionsKeepsZeroAmountsAndBlankTitles(t *testing.T) {
	req := &AnalyticsRequest{
		Transactions: []TransactionRequest{
			{ID: "a", Title: "Salary", Amount: 1000, Date: "2024-01-05"},
			{ID: "b", Title: "", Amount: 0, Category: "food", Date: "2024-01-10"},
		},
	}

	transactions, skipped := req.ToTransactions()
	if len(skipped) != 0 {
		t.Fatalf("skipped = %v, want none", skipped)
	}
	if len(transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(transactions))
	}
	if !transactions[1].Amount.IsZero() {
		t.Errorf("Amount = %s, want 0", transactions[1].Amount)
	}
	if transactions[1].Title != "" {
		t.Errorf("Title = %q, want empty", transactions[1].Title)
	}
}

func TestToTransactionsSkipsUnparseableDates(t *testing.T) {
	req := &AnalyticsRequest{
		Transactions: []TransactionRequest{
			{ID: "good", Title: "Salary", Amount: 1000, Date: "2024-01-05"},
			{ID: "bad", Title: "Dinner", Amount: -300, Date: "not-a-date"},
			{Title: "Also bad", Amount: -10, Date: "01/10/2024"},
		},
	}

	transactions, skipped := req.ToTransactions()
	if len(transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(transactions))
	}
	if transactions[0].ID != "good" {
		t.Errorf("kept transaction %q, want %q", transactions[0].ID, "good")
	}

	if len(skipped) != 2 {
		t.Fatalf("got %d skipped entries, want 2", len(skipped))
	}
	if !strings.Contains(skipped[0], "bad") || !strings.Contains(skipped[0], "not-a-date") {
		t.Errorf("skipped[0] = %q, want the record id and raw date", skipped[0])
	}
	// Records without an id are reported by index.
	if !strings.Contains(skipped[1], "index 2") {
		t.Errorf("skipped[1] = %q, want an index reference", skipped[1])
	}
}

func TestToBudgets(t *testing.T) {
	req := &AnalyticsRequest{
		Budgets: []BudgetRequest{
			{Category: "food", Amount: 300},
		},
	}

	budgets := req.ToBudgets()
	if len(budgets) != 1 {
		t.Fatalf("got %d budgets, want 1", len(budgets))
	}
	if budgets[0].Category != entity.CategoryFood {
		t.Errorf("Category = %q, want food", budgets[0].Category)
	}
	if budgets[0].Amount.String() != "300" {
		t.Errorf("Amount = %s, want 300", budgets[0].Amount)
	}
}

func TestToHealthScoreResponseNilScore(t *testing.T) {
	response := ToHealthScoreResponse(nil, []string{"transaction x: unparseable date"})
	if response.Score != nil {
		t.Errorf("Score = %v, want nil", response.Score)
	}
	if response.Metrics != nil {
		t.Errorf("Metrics = %+v, want nil", response.Metrics)
	}
	if len(response.Skipped) != 1 {
		t.Errorf("Skipped = %v, want the warning preserved", response.Skipped)
	}
}

func TestToHealthScoreResponse(t *testing.T) {
	score := &entity.HealthScore{
		Score:    72,
		Category: entity.HealthGood,
		Metrics: entity.HealthMetrics{
			SavingsRate:          21.5,
			BudgetAdherence:      80,
			ExpenseToIncomeRatio: 78.5,
		},
	}

	response := ToHealthScoreResponse(score, nil)
	if response.Score == nil || *response.Score != 72 {
		t.Fatalf("Score = %v, want 72", response.Score)
	}
	if response.Category != "good" {
		t.Errorf("Category = %q, want good", response.Category)
	}
	if response.Metrics == nil || response.Metrics.SavingsRate != 21.5 {
		t.Errorf("Metrics = %+v, want savings rate 21.5", response.Metrics)
	}
}
