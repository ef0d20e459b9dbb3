package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintracker/insights/internal/domain/entity"
)

// monthLabelLayout renders bucket labels like "Jan 2024".
const monthLabelLayout = "Jan 2006"

// MonthlyTrend buckets the snapshot by calendar month and returns one point
// per month that has activity, sorted ascending by the underlying month
// date. The label is display-only; sorting always uses the date so that
// month-name ordering bugs cannot occur.
//
// Transactions with a zero date are skipped: the service parses dates at
// the request boundary and never hands a zero date to the engine, so a zero
// here means the caller bypassed parsing.
func MonthlyTrend(transactions []*entity.Transaction) []entity.TrendPoint {
	buckets := make(map[time.Time]int)
	points := make([]entity.TrendPoint, 0)

	for _, t := range transactions {
		if t.Date.IsZero() {
			continue
		}

		month := startOfMonth(t.Date)
		i, ok := buckets[month]
		if !ok {
			i = len(points)
			buckets[month] = i
			points = append(points, entity.TrendPoint{
				Month:    month,
				Label:    month.Format(monthLabelLayout),
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			})
		}

		switch {
		case t.IsIncome():
			points[i].Income = points[i].Income.Add(t.Amount)
		case t.IsExpense():
			points[i].Expenses = points[i].Expenses.Add(t.Amount.Abs())
		}
	}

	sort.Slice(points, func(a, b int) bool {
		return points[a].Month.Before(points[b].Month)
	})

	return points
}

// startOfMonth truncates a timestamp to the first instant of its calendar
// month, preserving the timestamp's location. Timezone choice is the
// caller's responsibility.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
