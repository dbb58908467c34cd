package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the net-worth read model. It is recomputed on every read and
// never cached beyond a single request.
type Summary struct {
	TotalAssets decimal.Decimal
	TotalDebt   decimal.Decimal
	NetWorth    decimal.Decimal
	Accounts    []Account
}

// PeriodKind selects the statistics window size.
type PeriodKind string

const (
	Daily   PeriodKind = "daily"
	Weekly  PeriodKind = "weekly"
	Monthly PeriodKind = "monthly"
)

// PeriodStat compares expense totals of a window against the immediately
// preceding window of equal kind. ChangePercent is |Change|/Previous*100,
// or 0 when Previous is zero.
type PeriodStat struct {
	Current       decimal.Decimal
	Previous      decimal.Decimal
	Change        decimal.Decimal
	ChangePercent decimal.Decimal
}

// StatisticsSnapshot holds the three standard comparison windows.
type StatisticsSnapshot struct {
	Daily   PeriodStat
	Weekly  PeriodStat
	Monthly PeriodStat
}

// ChartPoint is one day of the trailing expense chart.
type ChartPoint struct {
	Date  time.Time // midnight in the ledger timezone
	Total decimal.Decimal
}

// DayGroup holds the transactions of one calendar date, newest first.
type DayGroup struct {
	Date         time.Time // midnight in the ledger timezone
	Transactions []Transaction
}
