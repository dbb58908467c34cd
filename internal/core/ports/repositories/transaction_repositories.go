package repositories

import (
	"context"

	"github.com/moneytrack/money_tracker_app/internal/core/domain"
)

// TransactionRepository defines persistence operations for the append-only
// transaction ledger.
type TransactionRepository interface {
	// SaveTransaction persists txn and applies its signed amount to the owning
	// account's balance as one atomic unit. The read-modify-write of the
	// balance is serialized per account; if any step fails nothing is
	// persisted. The returned transaction carries the assigned monotonic id
	// and the denormalized account display fields.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// ListTransactions returns one page ordered newest first (created_at desc,
	// id desc) along with the total number of transactions in the ledger.
	ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, int64, error)

	// ListAllTransactions returns the full ledger ordered newest first.
	ListAllTransactions(ctx context.Context) ([]domain.Transaction, error)
}
