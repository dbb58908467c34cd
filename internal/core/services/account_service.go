package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/moneytrack/money_tracker_app/internal/apperrors"
	"github.com/moneytrack/money_tracker_app/internal/core/domain"
	portsrepo "github.com/moneytrack/money_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/moneytrack/money_tracker_app/internal/core/ports/services"
	"github.com/moneytrack/money_tracker_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// AccountService provides read access to accounts and the direct balance
// override used for corrections. Regular balance changes never come through
// here; they go through the ledger.
type AccountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(repo portsrepo.AccountRepository) *AccountService {
	return &AccountService{accountRepo: repo}
}

// Ensure AccountService implements the facade interface
var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

func (s *AccountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID in repository", slog.String("error", err.Error()), slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	logger.Debug("Account retrieved successfully from service", slog.Int64("account_id", account.AccountID))
	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if accounts == nil {
		return []domain.Account{}, nil
	}

	logger.Debug("Accounts listed successfully from service", slog.Int("count", len(accounts)))
	return accounts, nil
}

// OverrideBalance sets the account balance to an absolute value. It bypasses
// the ledger and writes no transaction, so it can break the
// balance-equals-sum-of-deltas invariant on purpose.
func (s *AccountService) OverrideBalance(ctx context.Context, accountID int64, balance decimal.Decimal) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.OverrideBalance(ctx, accountID, balance, time.Now().UTC())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to override account balance in repository", slog.String("error", err.Error()), slog.Int64("account_id", accountID))
		}
		return nil, err
	}

	logger.Info("Account balance overridden",
		slog.Int64("account_id", accountID),
		slog.String("balance", balance.String()))
	return account, nil
}
