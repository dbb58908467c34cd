package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a single balance-bearing account in the ledger.
// IsDebt distinguishes liabilities (balance = amount owed, stored as a
// non-negative magnitude) from assets (balance = amount held).
type Account struct {
	AccountID int64
	Name      string // stable machine key, e.g. a payment-provider slug
	NameCN    string // human-readable display label
	Balance   decimal.Decimal
	IsDebt    bool
	Icon      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
