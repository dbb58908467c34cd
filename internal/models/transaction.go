package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted shape of a ledger entry. Amount is stored
// signed (negative = outflow); the id is a bigserial and doubles as the
// creation-order tie-break.
type Transaction struct {
	TransactionID int64           `db:"id"`
	AccountID     int64           `db:"account_id"`
	Amount        decimal.Decimal `db:"amount"`
	Type          string          `db:"transaction_type"`
	Note          string          `db:"note"`
	CreatedAt     time.Time       `db:"created_at"`
}
