package dto

import "github.com/shopspring/decimal"

// Monetary values go over the wire as JSON numbers, not quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Response is the envelope every endpoint answers with; the frontend keys
// off the success flag.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail wraps an error message in a failed envelope.
func Fail(msg string) Response {
	return Response{Success: false, Error: msg}
}
