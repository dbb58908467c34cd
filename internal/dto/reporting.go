package dto

import (
	"github.com/moneytrack/money_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryResponse represents the net-worth summary response.
type SummaryResponse struct {
	NetWorth    decimal.Decimal   `json:"net_worth"`
	TotalAssets decimal.Decimal   `json:"total_assets"`
	TotalDebt   decimal.Decimal   `json:"total_debt"`
	Accounts    []AccountResponse `json:"accounts"`
}

// PeriodStatResponse represents one comparison window.
type PeriodStatResponse struct {
	Current       decimal.Decimal `json:"current"`
	Previous      decimal.Decimal `json:"previous"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"change_percent"`
}

// StatisticsResponse represents the statistics endpoint payload.
type StatisticsResponse struct {
	Daily   PeriodStatResponse `json:"daily"`
	Weekly  PeriodStatResponse `json:"weekly"`
	Monthly PeriodStatResponse `json:"monthly"`
}

// ChartPointResponse is one day of the trailing expense chart.
type ChartPointResponse struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// ChartParams defines query parameters for the chart endpoint. A zero
// Days means the caller did not ask for a window and the configured
// default applies.
type ChartParams struct {
	Days int `form:"days"`
}

// ToSummaryResponse converts the domain summary to its DTO.
func ToSummaryResponse(summary *domain.Summary) SummaryResponse {
	return SummaryResponse{
		NetWorth:    summary.NetWorth,
		TotalAssets: summary.TotalAssets,
		TotalDebt:   summary.TotalDebt,
		Accounts:    ToListAccountResponse(summary.Accounts),
	}
}

func toPeriodStatResponse(stat domain.PeriodStat) PeriodStatResponse {
	return PeriodStatResponse{
		Current:       stat.Current,
		Previous:      stat.Previous,
		Change:        stat.Change,
		ChangePercent: stat.ChangePercent,
	}
}

// ToStatisticsResponse converts the domain snapshot to its DTO.
func ToStatisticsResponse(snapshot *domain.StatisticsSnapshot) StatisticsResponse {
	return StatisticsResponse{
		Daily:   toPeriodStatResponse(snapshot.Daily),
		Weekly:  toPeriodStatResponse(snapshot.Weekly),
		Monthly: toPeriodStatResponse(snapshot.Monthly),
	}
}

// ToChartResponse converts chart points to DTOs; dates are calendar dates.
func ToChartResponse(points []domain.ChartPoint) []ChartPointResponse {
	res := make([]ChartPointResponse, len(points))
	for i, p := range points {
		res[i] = ChartPointResponse{
			Date:  p.Date.Format("2006-01-02"),
			Total: p.Total,
		}
	}
	return res
}
