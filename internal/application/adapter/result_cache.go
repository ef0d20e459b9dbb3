package adapter

import (
	"context"

	"github.com/fintracker/insights/internal/domain/entity"
)

// ResultCache memoizes per-description AI results so repeated lookups for
// the same description skip the external call. Cache failures are advisory:
// the advisor treats any error as a miss and proceeds.
type ResultCache interface {
	// GetCategory returns a cached category prediction for the description.
	GetCategory(ctx context.Context, description string) (entity.CategoryID, bool, error)

	// SetCategory stores a category prediction for the description.
	SetCategory(ctx context.Context, description string, category entity.CategoryID) error

	// GetMerchant returns cached merchant enrichment for the description.
	GetMerchant(ctx context.Context, description string) (*entity.MerchantInfo, bool, error)

	// SetMerchant stores merchant enrichment for the description.
	SetMerchant(ctx context.Context, description string, info *entity.MerchantInfo) error
}
