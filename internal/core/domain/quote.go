package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is the resolved, converted price for a product in a requested
// currency at a requested point in time.
type Quote struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Symbol       string          `json:"symbol"`
	At           time.Time       `json:"at"`
}
