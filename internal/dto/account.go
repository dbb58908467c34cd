package dto

import (
	"time"

	"github.com/moneytrack/money_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	NameCN    string          `json:"name_cn"`
	Balance   decimal.Decimal `json:"balance"`
	IsDebt    bool            `json:"is_debt"`
	Icon      string          `json:"icon"`
	Color     string          `json:"color"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// UpdateBalanceRequest carries the absolute balance for the correction
// endpoint. No binding:"required" here: zero is a legitimate override value.
type UpdateBalanceRequest struct {
	Balance decimal.Decimal `json:"balance"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        acc.AccountID,
		Name:      acc.Name,
		NameCN:    acc.NameCN,
		Balance:   acc.Balance,
		IsDebt:    acc.IsDebt,
		Icon:      acc.Icon,
		Color:     acc.Color,
		CreatedAt: acc.CreatedAt.Format(time.RFC3339),
		UpdatedAt: acc.UpdatedAt.Format(time.RFC3339),
	}
}

// ToListAccountResponse converts a slice of domain.Account to DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
