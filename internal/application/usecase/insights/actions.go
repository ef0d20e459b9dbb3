package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fintracker/insights/internal/application/usecase/analytics"
	"github.com/fintracker/insights/internal/domain/entity"
)

// debtSignals mark a transaction as debt-related when found in its category
// or title.
var debtSignals = []string{"loan", "debt", "mortgage", "credit"}

// topCategoryShareThreshold is the expense share above which the top
// category gets its own optimization action.
const topCategoryShareThreshold = 30.0

// RecommendActions produces a rule-based list of financial actions. An
// empty snapshot yields the starter actions for a new user rather than an
// empty list.
func RecommendActions(transactions []*entity.Transaction) []*entity.ActionRecommendation {
	if len(transactions) == 0 {
		return starterActions()
	}

	totals := analytics.Totals(transactions)
	savingsRate := 0.0
	if totals.Income.IsPositive() {
		savingsRate = totals.Net().Div(totals.Income).InexactFloat64() * 100
	}

	actions := make([]*entity.ActionRecommendation, 0, 4)
	actions = append(actions, savingsRateAction(savingsRate))

	if top := topCategoryAction(transactions, totals.Expenses); top != nil {
		actions = append(actions, top)
	}

	actions = append(actions, &entity.ActionRecommendation{
		Title:       "Build or Strengthen Emergency Fund",
		Description: "Ensure you have 3-6 months of essential expenses saved in an easily accessible account.",
		Impact:      entity.ImpactHigh,
		Timeframe:   entity.TimeframeMediumTerm,
	})

	if hasDebtSignals(transactions) {
		actions = append(actions, &entity.ActionRecommendation{
			Title:       "Create a Debt Repayment Plan",
			Description: "Focus on paying off high-interest debt first, then work on other debts.",
			Impact:      entity.ImpactHigh,
			Timeframe:   entity.TimeframeMediumTerm,
		})
	}

	return actions
}

// starterActions is the fixed onboarding list for users with no history.
func starterActions() []*entity.ActionRecommendation {
	return []*entity.ActionRecommendation{
		{
			Title:       "Start Tracking Your Expenses",
			Description: "Begin by recording all your expenses to get a clear picture of your spending habits.",
			Impact:      entity.ImpactHigh,
			Timeframe:   entity.TimeframeShortTerm,
		},
		{
			Title:       "Create a Basic Budget",
			Description: "Set up a simple budget for essential categories like housing, food, and transportation.",
			Impact:      entity.ImpactHigh,
			Timeframe:   entity.TimeframeShortTerm,
		},
		{
			Title:       "Build an Emergency Fund",
			Description: "Start saving for an emergency fund to cover 3-6 months of expenses.",
			Impact:      entity.ImpactHigh,
			Timeframe:   entity.TimeframeMediumTerm,
		},
	}
}

func savingsRateAction(savingsRate float64) *entity.ActionRecommendation {
	if savingsRate < 20 {
		return &entity.ActionRecommendation{
			Title:       "Increase Your Savings Rate",
			Description: fmt.Sprintf("Your current savings rate is %.1f%%. Aim to save at least 20%% of your income.", savingsRate),
			Impact:      entity.ImpactHigh,
			Timeframe:   entity.TimeframeMediumTerm,
		}
	}
	return &entity.ActionRecommendation{
		Title:       "Maintain Your Savings Rate",
		Description: fmt.Sprintf("Great job! Your savings rate is %.1f%%. Consider investing your savings for long-term growth.", savingsRate),
		Impact:      entity.ImpactMedium,
		Timeframe:   entity.TimeframeLongTerm,
	}
}

// topCategoryAction flags the biggest expense category when it dominates
// total spending. Returns nil when expenses are empty or no category
// crosses the threshold.
func topCategoryAction(transactions []*entity.Transaction, totalExpenses decimal.Decimal) *entity.ActionRecommendation {
	if !totalExpenses.IsPositive() {
		return nil
	}

	expenseTotals := analytics.CategoryTotals(analytics.ExpensesOnly(transactions))
	if len(expenseTotals) == 0 {
		return nil
	}

	sorted := make([]entity.CategoryTotal, len(expenseTotals))
	copy(sorted, expenseTotals)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Amount.GreaterThan(sorted[b].Amount)
	})

	top := sorted[0]
	share := top.Amount.Div(totalExpenses).InexactFloat64() * 100
	if share <= topCategoryShareThreshold {
		return nil
	}

	return &entity.ActionRecommendation{
		Title:       fmt.Sprintf("Optimize %s Spending", top.Category),
		Description: fmt.Sprintf("This category accounts for %.1f%% of your expenses. Look for ways to reduce costs here.", share),
		Impact:      entity.ImpactHigh,
		Timeframe:   entity.TimeframeShortTerm,
	}
}

// hasDebtSignals scans expense categories and titles for debt keywords.
func hasDebtSignals(transactions []*entity.Transaction) bool {
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		category := strings.ToLower(string(t.Category))
		title := strings.ToLower(t.Title)
		for _, signal := range debtSignals {
			if strings.Contains(category, signal) || strings.Contains(title, signal) {
				return true
			}
		}
	}
	return false
}
