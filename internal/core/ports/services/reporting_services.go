package services

import (
	"context"
	"time"

	"github.com/moneytrack/money_tracker_app/internal/core/domain"
)

// ReportingService defines windowed expense statistics reads.
type ReportingService interface {
	// Statistics computes the daily/weekly/monthly expense windows anchored at
	// ref, each compared against its immediately preceding window.
	Statistics(ctx context.Context, ref time.Time) (*domain.StatisticsSnapshot, error)

	// ChartSeries returns daily expense totals for the trailing days calendar
	// days including the day of ref, oldest first, zero-filled.
	ChartSeries(ctx context.Context, days int, ref time.Time) ([]domain.ChartPoint, error)
}

// SummaryService composes the account snapshot into the net-worth read model.
type SummaryService interface {
	GetSummary(ctx context.Context) (*domain.Summary, error)
}
