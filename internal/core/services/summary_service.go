package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/moneytrack/money_tracker_app/internal/core/domain"
	portsrepo "github.com/moneytrack/money_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/moneytrack/money_tracker_app/internal/core/ports/services"
	"github.com/moneytrack/money_tracker_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// summaryService composes the account snapshot into the net-worth summary.
// Pure read composition; no mutation.
type summaryService struct {
	accountRepo portsrepo.AccountRepository
}

// NewSummaryService creates a new summary service.
func NewSummaryService(repo portsrepo.AccountRepository) portssvc.SummaryService {
	return &summaryService{accountRepo: repo}
}

// Ensure summaryService implements the SummaryService interface
var _ portssvc.SummaryService = (*summaryService)(nil)

// GetSummary recomputes the summary from the current account snapshot.
// Debt balances are stored as non-negative magnitudes, so
// net_worth = total_assets - total_debt.
func (s *summaryService) GetSummary(ctx context.Context) (*domain.Summary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts for summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load accounts for summary: %w", err)
	}

	totalAssets := decimal.Zero
	totalDebt := decimal.Zero
	for _, acc := range accounts {
		if acc.IsDebt {
			totalDebt = totalDebt.Add(acc.Balance)
		} else {
			totalAssets = totalAssets.Add(acc.Balance)
		}
	}

	if accounts == nil {
		accounts = []domain.Account{}
	}

	return &domain.Summary{
		TotalAssets: totalAssets,
		TotalDebt:   totalDebt,
		NetWorth:    totalAssets.Sub(totalDebt),
		Accounts:    accounts,
	}, nil
}
