package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportingRepository defines the aggregation reads behind statistics.
// Implementations must observe committed state only, never a transaction
// whose balance delta has not been applied yet.
type ReportingRepository interface {
	// SumExpensesBetween returns the sum of expense magnitudes with created_at
	// in [from, to). An expense is a negative amount on an asset account;
	// debt repayments do not count.
	SumExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// DailyExpenseTotals returns expense magnitudes summed per calendar day in
	// loc for created_at in [from, to), keyed by midnight of the day in loc.
	// Days without expenses are absent from the map.
	DailyExpenseTotals(ctx context.Context, from, to time.Time, loc *time.Location) (map[time.Time]decimal.Decimal, error)
}
