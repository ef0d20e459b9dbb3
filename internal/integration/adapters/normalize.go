package adapters

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fintracker/insights/internal/domain/entity"
)

// decimalFromFloat converts a model-provided number to a decimal amount.
func decimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// normalizeImpact maps free-form model output onto the impact enumeration,
// defaulting to Medium for anything unrecognized.
func normalizeImpact(raw string) entity.ActionImpact {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return entity.ImpactHigh
	case "low":
		return entity.ImpactLow
	default:
		return entity.ImpactMedium
	}
}

// normalizeTimeframe maps free-form model output onto the timeframe
// enumeration, defaulting to Medium-term for anything unrecognized.
func normalizeTimeframe(raw string) entity.ActionTimeframe {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "short-term", "short term", "short":
		return entity.TimeframeShortTerm
	case "long-term", "long term", "long":
		return entity.TimeframeLongTerm
	default:
		return entity.TimeframeMediumTerm
	}
}
