package dto

import (
	"time"

	"github.com/moneytrack/money_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount is the positive magnitude as entered by the user; the engine derives
// the sign.
type CreateTransactionRequest struct {
	AccountID       int64           `json:"account_id" binding:"required"`
	TransactionType string          `json:"transaction_type" binding:"required,oneof=increase decrease"`
	Amount          decimal.Decimal `json:"amount" binding:"decimalgtzero"`
	Note            string          `json:"note"`
}

// TransactionResponse defines the data returned for a ledger entry.
// Amount is the signed delta; a negative value is an outflow.
type TransactionResponse struct {
	ID              int64           `json:"id"`
	AccountID       int64           `json:"account_id"`
	AccountName     string          `json:"account_name"`
	AccountColor    string          `json:"account_color"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transaction_type"`
	Note            string          `json:"note"`
	CreatedAt       string          `json:"created_at"`
}

// Pagination mirrors the list metadata the frontend paginates with.
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int64 `json:"pages"`
}

// TransactionListResponse is the envelope for the paginated ledger view;
// pagination rides alongside data rather than inside it.
type TransactionListResponse struct {
	Success    bool                  `json:"success"`
	Data       []TransactionResponse `json:"data"`
	Pagination Pagination            `json:"pagination"`
}

// DayGroupResponse holds one calendar date's transactions, newest first.
type DayGroupResponse struct {
	Date         string                `json:"date"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ListTransactionsParams defines query parameters for the paginated list.
type ListTransactionsParams struct {
	Page    int `form:"page,default=1"`
	PerPage int `form:"per_page,default=50"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              txn.TransactionID,
		AccountID:       txn.AccountID,
		AccountName:     txn.AccountName,
		AccountColor:    txn.AccountColor,
		Amount:          txn.Amount,
		TransactionType: string(txn.Type),
		Note:            txn.Note,
		CreatedAt:       txn.CreatedAt.Format(time.RFC3339),
	}
}

// ToTransactionListResponse converts a slice of transactions to DTOs.
func ToTransactionListResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}

// NewPagination derives the page metadata from a total row count.
func NewPagination(page, perPage int, total int64) Pagination {
	pages := int64(0)
	if perPage > 0 {
		pages = (total + int64(perPage) - 1) / int64(perPage)
	}
	return Pagination{Page: page, PerPage: perPage, Total: total, Pages: pages}
}

// ToDayGroupResponse converts a domain.DayGroup to its DTO. The grouping key
// is a calendar date, not an instant.
func ToDayGroupResponse(group domain.DayGroup) DayGroupResponse {
	return DayGroupResponse{
		Date:         group.Date.Format("2006-01-02"),
		Transactions: ToTransactionListResponse(group.Transactions),
	}
}
