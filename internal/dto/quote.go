package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/printkit/pricelist_backend/internal/core/domain"
)

// QuoteResponse is the resolved price of a product in the requested currency
// at the requested time.
type QuoteResponse struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Symbol       string          `json:"symbol"`
	At           time.Time       `json:"at"`
}

// ToQuoteResponse converts a domain.Quote to QuoteResponse DTO
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		Amount:       q.Amount,
		CurrencyCode: q.CurrencyCode,
		Symbol:       q.Symbol,
		At:           q.At,
	}
}
