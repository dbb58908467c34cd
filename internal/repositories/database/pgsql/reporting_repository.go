package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	portsrepo "github.com/moneytrack/money_tracker_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// NewPgxReportingRepository creates a new repository for aggregation reads.
func NewPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// SumExpensesBetween sums expense magnitudes over created_at in [from, to).
// Only asset-account outflows count; debt repayments are not spending.
func (r *PgxReportingRepository) SumExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(-t.amount), 0)
		FROM transactions t
		JOIN accounts a ON t.account_id = a.id
		WHERE t.created_at >= $1 AND t.created_at < $2
		  AND t.amount < 0 AND NOT a.is_debt;`

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses between %s and %s: %w",
			from.Format(time.RFC3339), to.Format(time.RFC3339), err)
	}
	return total, nil
}

// DailyExpenseTotals sums expense magnitudes per calendar day in loc for
// created_at in [from, to). The day boundary is taken in the ledger timezone,
// matching the grouping keys used everywhere else.
func (r *PgxReportingRepository) DailyExpenseTotals(ctx context.Context, from, to time.Time, loc *time.Location) (map[time.Time]decimal.Decimal, error) {
	query := `
		SELECT (t.created_at AT TIME ZONE $3)::date AS day, COALESCE(SUM(-t.amount), 0)
		FROM transactions t
		JOIN accounts a ON t.account_id = a.id
		WHERE t.created_at >= $1 AND t.created_at < $2
		  AND t.amount < 0 AND NOT a.is_debt
		GROUP BY day;`

	rows, err := r.Pool.Query(ctx, query, from, to, loc.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query daily expense totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[time.Time]decimal.Decimal)
	for rows.Next() {
		var day time.Time
		var total decimal.Decimal
		if err := rows.Scan(&day, &total); err != nil {
			return nil, fmt.Errorf("failed to scan daily expense row: %w", err)
		}
		// The ::date scans as midnight UTC; rebuild the key as midnight in loc.
		key := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
		totals[key] = total
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating daily expense rows: %w", rows.Err())
	}

	return totals, nil
}
