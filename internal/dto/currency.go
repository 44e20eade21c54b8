package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/printkit/pricelist_backend/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to define a currency on a
// price list. Rate seeds the first rate record; when omitted the currency has
// no rate until one is recorded.
type CreateCurrencyRequest struct {
	Title  string           `json:"title" binding:"required,max=32"`
	Code   string           `json:"code" binding:"required,currencycode"`
	Symbol string           `json:"symbol" binding:"required,max=3"`
	IsBase bool             `json:"isBase"`
	Rate   *decimal.Decimal `json:"rate"`
}

// UpdateCurrencyRequest defines the mutable currency fields. A supplied Rate
// that differs from the current one appends a new rate record (non-base only).
type UpdateCurrencyRequest struct {
	Title  *string          `json:"title" binding:"omitempty,max=32"`
	Symbol *string          `json:"symbol" binding:"omitempty,max=3"`
	Rate   *decimal.Decimal `json:"rate"`
}

// RecordRateRequest appends one rate record.
type RecordRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID  string    `json:"currencyID"`
	PriceListID string    `json:"priceListID"`
	Title       string    `json:"title"`
	Code        string    `json:"code"`
	Symbol      string    `json:"symbol"`
	IsBase      bool      `json:"isBase"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RateResponse defines the data returned for one rate record.
type RateResponse struct {
	RateID        string          `json:"rateID"`
	CurrencyID    string          `json:"currencyID"`
	Rate          decimal.Decimal `json:"rate"`
	DateEffective time.Time       `json:"dateEffective"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:  c.CurrencyID,
		PriceListID: c.PriceListID,
		Title:       c.Title,
		Code:        c.Code,
		Symbol:      c.Symbol,
		IsBase:      c.IsBase,
		CreatedAt:   c.CreatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}

// ToRateResponse converts a domain.CurrencyRate to RateResponse DTO
func ToRateResponse(r *domain.CurrencyRate) RateResponse {
	return RateResponse{
		RateID:        r.RateID,
		CurrencyID:    r.CurrencyID,
		Rate:          r.Rate,
		DateEffective: r.DateEffective,
	}
}

// ToListRateResponse converts a slice of domain.CurrencyRate to DTOs
func ToListRateResponse(rates []domain.CurrencyRate) []RateResponse {
	res := make([]RateResponse, len(rates))
	for i := range rates {
		res[i] = ToRateResponse(&rates[i])
	}
	return res
}
