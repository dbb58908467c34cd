package repositories

import (
	"context"
	"time"

	"github.com/moneytrack/money_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository defines persistence operations for accounts.
// Balance changes driven by transactions do NOT go through this interface;
// they are applied by TransactionRepository.SaveTransaction so that the
// ledger row and the balance move as one unit.
type AccountRepository interface {
	// FindAccountByID returns the account or apperrors.ErrNotFound.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts returns all accounts in stable id order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// OverrideBalance sets the balance to an absolute value, atomically with
	// respect to concurrent transaction recording on the same account.
	// Returns the updated account or apperrors.ErrNotFound.
	OverrideBalance(ctx context.Context, accountID int64, balance decimal.Decimal, now time.Time) (*domain.Account, error)
}
