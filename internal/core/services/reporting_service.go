package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/moneytrack/money_tracker_app/internal/apperrors"
	"github.com/moneytrack/money_tracker_app/internal/core/domain"
	portsrepo "github.com/moneytrack/money_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/moneytrack/money_tracker_app/internal/core/ports/services"
	"github.com/moneytrack/money_tracker_app/internal/middleware"
	"github.com/moneytrack/money_tracker_app/internal/utils/timewindow"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// reportingService implements the ReportingService interface. It is stateless
// over its inputs; every call recomputes from the repository.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	loc           *time.Location
}

// NewReportingService creates a new reporting service. loc is the fixed
// timezone all window boundaries are taken in.
func NewReportingService(repo portsrepo.ReportingRepository, loc *time.Location) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: repo,
		loc:           loc,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// Statistics computes expense totals for the day, Monday-start week and
// calendar month containing ref, each against its immediately preceding
// window. Only asset-account outflows count; income, debt increases and debt
// repayments are excluded.
func (s *reportingService) Statistics(ctx context.Context, ref time.Time) (*domain.StatisticsSnapshot, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	daily, err := s.periodStat(ctx, timewindow.Day(ref, s.loc), timewindow.PreviousDay(ref, s.loc))
	if err != nil {
		logger.Error("Failed to compute daily statistics", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to compute daily statistics: %w", err)
	}

	weekly, err := s.periodStat(ctx, timewindow.Week(ref, s.loc), timewindow.PreviousWeek(ref, s.loc))
	if err != nil {
		logger.Error("Failed to compute weekly statistics", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to compute weekly statistics: %w", err)
	}

	monthly, err := s.periodStat(ctx, timewindow.Month(ref, s.loc), timewindow.PreviousMonth(ref, s.loc))
	if err != nil {
		logger.Error("Failed to compute monthly statistics", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to compute monthly statistics: %w", err)
	}

	return &domain.StatisticsSnapshot{
		Daily:   daily,
		Weekly:  weekly,
		Monthly: monthly,
	}, nil
}

// periodStat sums expenses over the current and previous windows and derives
// the comparison fields.
func (s *reportingService) periodStat(ctx context.Context, current, previous timewindow.Window) (domain.PeriodStat, error) {
	currentTotal, err := s.reportingRepo.SumExpensesBetween(ctx, current.Start, current.End)
	if err != nil {
		return domain.PeriodStat{}, err
	}

	previousTotal, err := s.reportingRepo.SumExpensesBetween(ctx, previous.Start, previous.End)
	if err != nil {
		return domain.PeriodStat{}, err
	}

	change := currentTotal.Sub(previousTotal)
	changePercent := decimal.Zero
	if previousTotal.IsPositive() {
		changePercent = change.Abs().Div(previousTotal).Mul(oneHundred).Round(2)
	}

	return domain.PeriodStat{
		Current:       currentTotal,
		Previous:      previousTotal,
		Change:        change,
		ChangePercent: changePercent,
	}, nil
}

// ChartSeries returns daily expense totals for the trailing days calendar
// days ending with the day of ref, oldest first. Days with no expenses are
// zero-filled.
func (s *reportingService) ChartSeries(ctx context.Context, days int, ref time.Time) ([]domain.ChartPoint, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive, got %d", apperrors.ErrValidation, days)
	}

	windows := timewindow.TrailingDays(ref, days, s.loc)
	from := windows[0].Start
	to := windows[len(windows)-1].End

	totals, err := s.reportingRepo.DailyExpenseTotals(ctx, from, to, s.loc)
	if err != nil {
		logger.Error("Failed to compute daily expense totals", slog.String("error", err.Error()),
			slog.Int("days", days))
		return nil, fmt.Errorf("failed to compute chart series: %w", err)
	}

	points := make([]domain.ChartPoint, 0, len(windows))
	for _, w := range windows {
		total, ok := totals[w.Start]
		if !ok {
			total = decimal.Zero
		}
		points = append(points, domain.ChartPoint{Date: w.Start, Total: total})
	}

	return points, nil
}
