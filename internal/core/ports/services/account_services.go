package services

import (
	"context"

	"github.com/moneytrack/money_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for accounts.
type AccountReaderSvc interface {
	// GetAccountByID returns the account or apperrors.ErrNotFound.
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts returns all accounts in stable id order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines mutating operations for accounts.
type AccountWriterSvc interface {
	// OverrideBalance sets an account balance to an absolute value. This is
	// the correction path: it bypasses the ledger and writes no transaction.
	OverrideBalance(ctx context.Context, accountID int64, balance decimal.Decimal) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
// for consumers that need full account functionality.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
