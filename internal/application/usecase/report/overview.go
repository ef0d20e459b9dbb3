// Package report composes the independent analytics computations into a
// single dashboard overview.
package report

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/fintracker/insights/internal/application/usecase/analytics"
	"github.com/fintracker/insights/internal/application/usecase/health"
	"github.com/fintracker/insights/internal/domain/entity"
)

// Overview bundles the derived values a dashboard renders in one shot.
type Overview struct {
	Totals      entity.Totals
	Categories  []entity.CategoryTotal
	Trend       []entity.TrendPoint
	HealthScore *entity.HealthScore // nil when there are no transactions
}

// BuildOverview computes totals, category breakdown, monthly trend, and the
// health score concurrently. The computations are pure and independent, so
// the only failure mode is context cancellation.
func BuildOverview(ctx context.Context, transactions []*entity.Transaction, budgets []*entity.Budget) (*Overview, error) {
	overview := &Overview{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		overview.Totals = analytics.Totals(transactions)
		return ctx.Err()
	})
	g.Go(func() error {
		overview.Categories = analytics.CategoryTotals(transactions)
		return ctx.Err()
	})
	g.Go(func() error {
		overview.Trend = analytics.MonthlyTrend(transactions)
		return ctx.Err()
	})
	g.Go(func() error {
		overview.HealthScore = health.Score(transactions, budgets)
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}
