package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the currencies row. (price_list_id, code) is unique and at most
// one row per list carries is_base, both enforced by indexes.
type Currency struct {
	CurrencyID  string `json:"currencyID"`
	PriceListID string `json:"priceListID"`
	Title       string `json:"title"`
	Code        string `json:"code"`
	Symbol      string `json:"symbol"`
	IsBase      bool   `json:"isBase"`
	AuditFields
}

// CurrencyRate is the currency_rates row. NUMERIC(16,8); seq is a BIGSERIAL
// allocated by the database at insert time.
type CurrencyRate struct {
	RateID        string          `json:"rateID"`
	CurrencyID    string          `json:"currencyID"`
	Rate          decimal.Decimal `json:"rate"`
	DateEffective time.Time       `json:"dateEffective"`
	Seq           int64           `json:"seq"`
	CreatedBy     string          `json:"createdBy"`
}
