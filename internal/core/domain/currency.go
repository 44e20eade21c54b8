package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is a currency defined on one price list. Exactly one currency per
// list carries IsBase; all prices on the list are recorded in that currency.
type Currency struct {
	CurrencyID  string `json:"currencyID"`
	PriceListID string `json:"priceListID"`
	Title       string `json:"title"`
	Code        string `json:"code"`   // 3-letter, stored uppercase
	Symbol      string `json:"symbol"` // e.g. "$"
	IsBase      bool   `json:"isBase"`
	AuditFields
}

// CurrencyRate is one record of a currency's append-only rate-to-base history.
// Rates are never updated or deleted; a change is a new record. Seq is the
// storage-assigned insertion sequence used to break ties between records that
// share an effective timestamp.
type CurrencyRate struct {
	RateID        string          `json:"rateID"`
	CurrencyID    string          `json:"currencyID"`
	Rate          decimal.Decimal `json:"rate"` // 16 digits, 8 fractional
	DateEffective time.Time       `json:"dateEffective"`
	Seq           int64           `json:"seq"`
	CreatedBy     string          `json:"createdBy"`
}
