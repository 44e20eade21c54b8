package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is owned by the external product catalog; this service only ever
// reads it by reference.
type Product struct {
	ProductID   string `json:"productID"`
	Title       string `json:"title"`
	OwnerUserID string `json:"ownerUserID"`
}

// CatalogAssignment associates one product with one price list. A product
// appears at most once per list; deleting the assignment removes its price
// history with it.
type CatalogAssignment struct {
	AssignmentID string `json:"assignmentID"`
	PriceListID  string `json:"priceListID"`
	ProductID    string `json:"productID"`
	AuditFields
}

// PriceRecord is one record of an assignment's append-only price history,
// always denominated in the price list's base currency. Seq breaks ties
// between records sharing an effective timestamp.
type PriceRecord struct {
	PriceID       string          `json:"priceID"`
	AssignmentID  string          `json:"assignmentID"`
	Price         decimal.Decimal `json:"price"` // 8 digits, 2 fractional
	DateEffective time.Time       `json:"dateEffective"`
	Seq           int64           `json:"seq"`
	CreatedBy     string          `json:"createdBy"`
}
