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
	"github.com/moneytrack/money_tracker_app/internal/utils/timewindow"
	"github.com/shopspring/decimal"
)

const defaultPerPage = 50

// LedgerService owns the append-only transaction ledger. Record is the only
// path that changes account balances.
type LedgerService struct {
	accountRepo portsrepo.AccountRepository
	txnRepo     portsrepo.TransactionRepository
	loc         *time.Location
}

// NewLedgerService creates a new LedgerService. loc is the fixed timezone
// used for calendar-date grouping keys.
func NewLedgerService(accountRepo portsrepo.AccountRepository, txnRepo portsrepo.TransactionRepository, loc *time.Location) *LedgerService {
	return &LedgerService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		loc:         loc,
	}
}

// Ensure LedgerService implements the facade interface
var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// Record validates the submission, derives the signed delta and persists the
// transaction together with the balance change as one atomic unit. All
// validation happens before any mutation; a failed Record leaves the ledger
// and balances exactly as they were.
func (s *LedgerService) Record(ctx context.Context, accountID int64, txnType domain.TransactionType, amount decimal.Decimal, note string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, amount.String())
	}
	if !txnType.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidType, txnType)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account for transaction", slog.String("error", err.Error()), slog.Int64("account_id", accountID))
		}
		return nil, err
	}

	signedAmount, err := domain.EffectiveDelta(account.IsDebt, txnType, amount)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		AccountID: accountID,
		Amount:    signedAmount,
		Type:      txnType,
		Note:      note,
		CreatedAt: time.Now().In(s.loc),
	}

	saved, err := s.txnRepo.SaveTransaction(ctx, txn)
	if err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.Int64("account_id", accountID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	if saved.AccountName == "" {
		saved.AccountName = account.NameCN
		saved.AccountColor = account.Color
		saved.AccountIsDebt = account.IsDebt
	}

	logger.Info("Transaction recorded",
		slog.Int64("transaction_id", saved.TransactionID),
		slog.Int64("account_id", accountID),
		slog.String("amount", saved.Amount.String()))
	return saved, nil
}

// ListTransactions returns one page of the ledger, newest first, plus the
// total number of transactions.
func (s *LedgerService) ListTransactions(ctx context.Context, page, perPage int) ([]domain.Transaction, int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	offset := (page - 1) * perPage

	txns, total, err := s.txnRepo.ListTransactions(ctx, perPage, offset)
	if err != nil {
		logger.Error("Failed to list transactions from repository", slog.String("error", err.Error()),
			slog.Int("page", page), slog.Int("per_page", perPage))
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, total, nil
}

// ListGroupedByDate buckets the full ledger by calendar date in the ledger
// timezone. Groups come newest-date first; inside a group the repository's
// newest-first order is preserved, so every transaction lands in exactly one
// group.
func (s *LedgerService) ListGroupedByDate(ctx context.Context) ([]domain.DayGroup, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txns, err := s.txnRepo.ListAllTransactions(ctx)
	if err != nil {
		logger.Error("Failed to list transactions for grouping", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	groups := []domain.DayGroup{}
	index := make(map[time.Time]int)
	for _, txn := range txns {
		date := timewindow.DateOf(txn.CreatedAt, s.loc)
		i, ok := index[date]
		if !ok {
			i = len(groups)
			index[date] = i
			groups = append(groups, domain.DayGroup{Date: date})
		}
		groups[i].Transactions = append(groups[i].Transactions, txn)
	}

	return groups, nil
}
