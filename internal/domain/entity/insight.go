package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Insight is a derived observation about spending or income behavior.
type Insight struct {
	ID          uuid.UUID
	Title       string
	Description string
	Action      string          // Suggested follow-up, may be empty
	Amount      decimal.Decimal // Monetary figure the insight refers to
}

// NewInsight creates an Insight with a fresh identifier.
func NewInsight(title, description, action string, amount decimal.Decimal) *Insight {
	return &Insight{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Action:      action,
		Amount:      amount,
	}
}

// ActionImpact rates how much an action recommendation matters.
type ActionImpact string

const (
	ImpactHigh   ActionImpact = "High"
	ImpactMedium ActionImpact = "Medium"
	ImpactLow    ActionImpact = "Low"
)

// ActionTimeframe is the horizon over which an action pays off.
type ActionTimeframe string

const (
	TimeframeShortTerm  ActionTimeframe = "Short-term"
	TimeframeMediumTerm ActionTimeframe = "Medium-term"
	TimeframeLongTerm   ActionTimeframe = "Long-term"
)

// ActionRecommendation is a concrete financial action suggested to the user.
type ActionRecommendation struct {
	Title       string
	Description string
	Impact      ActionImpact
	Timeframe   ActionTimeframe
}

// ExpensePrediction is the predicted next-month spend for one category.
type ExpensePrediction struct {
	Category CategoryID
	Amount   decimal.Decimal
	Icon     string
}

// PredictionBundle aggregates per-category expense predictions.
type PredictionBundle struct {
	TotalPredicted decimal.Decimal
	Categories     []ExpensePrediction // Sorted by amount, highest first
}

// MerchantInfo is the result of enriching a transaction description.
type MerchantInfo struct {
	Name     string // Canonical merchant label, empty when unrecognized
	Category CategoryID
	Icon     string
}
