package domain

import (
	"fmt"
	"time"

	"github.com/moneytrack/money_tracker_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType indicates the user-facing direction of a transaction.
type TransactionType string

const (
	Increase TransactionType = "increase"
	Decrease TransactionType = "decrease"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Increase || t == Decrease
}

// Transaction is an immutable ledger entry. Amount is the signed balance
// delta already derived from the entered magnitude and the transaction type;
// a negative amount is an outflow. TransactionID is monotonically assigned
// and used as the tie-break in newest-first orderings.
type Transaction struct {
	TransactionID int64
	AccountID     int64
	Amount        decimal.Decimal // signed
	Type          TransactionType
	Note          string
	CreatedAt     time.Time

	// Denormalized account fields carried on read views.
	AccountName   string
	AccountColor  string
	AccountIsDebt bool
}

// IsExpense reports whether the transaction counts toward expense statistics.
// Only outflows from asset accounts qualify; a negative amount on a debt
// account is a repayment, not spending.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative() && !t.AccountIsDebt
}

// EffectiveDelta derives the signed balance delta for a transaction from the
// account kind and the transaction type. The arithmetic is the same for asset
// and debt accounts (increase adds, decrease subtracts); only the
// interpretation of the result differs, so isDebt is accepted to keep the
// rule in one place should the conventions ever diverge.
func EffectiveDelta(isDebt bool, txnType TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	if !txnType.IsValid() {
		return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrInvalidType, txnType)
	}
	if txnType == Decrease {
		return amount.Neg(), nil
	}
	return amount, nil
}
