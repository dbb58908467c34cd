package services

import (
	"context"

	"github.com/moneytrack/money_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerWriterSvc defines the single mutation path for balances.
type LedgerWriterSvc interface {
	// Record validates and appends a transaction, applying its signed delta to
	// the owning account atomically. amount is the positive magnitude as
	// entered by the user. Fails with apperrors.ErrInvalidAmount,
	// apperrors.ErrInvalidType or apperrors.ErrNotFound before any mutation.
	Record(ctx context.Context, accountID int64, txnType domain.TransactionType, amount decimal.Decimal, note string) (*domain.Transaction, error)
}

// TransactionReaderSvc defines read operations over the ledger.
type TransactionReaderSvc interface {
	// ListTransactions returns one page, newest first, plus the ledger total.
	ListTransactions(ctx context.Context, page, perPage int) ([]domain.Transaction, int64, error)

	// ListGroupedByDate returns all transactions bucketed by calendar date in
	// the ledger timezone; groups newest-date first, transactions newest first
	// within each group.
	ListGroupedByDate(ctx context.Context) ([]domain.DayGroup, error)
}

// LedgerSvcFacade combines the ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerWriterSvc
	TransactionReaderSvc
}
