package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the persisted shape of a ledger account.
// Balance uses a precise decimal type; money never touches binary floats.
type Account struct {
	AccountID int64           `db:"id"`
	Name      string          `db:"name"` // unique machine key
	NameCN    string          `db:"name_cn"`
	Balance   decimal.Decimal `db:"balance"`
	IsDebt    bool            `db:"is_debt"`
	Icon      string          `db:"icon"`
	Color     string          `db:"color"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}
