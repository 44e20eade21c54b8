package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product mirrors the external catalog's products row. Read-only here.
type Product struct {
	ProductID   string `json:"productID"`
	Title       string `json:"title"`
	OwnerUserID string `json:"ownerUserID"`
}

// CatalogAssignment is the price_list_products row, unique per
// (price_list_id, product_id).
type CatalogAssignment struct {
	AssignmentID string `json:"assignmentID"`
	PriceListID  string `json:"priceListID"`
	ProductID    string `json:"productID"`
	AuditFields
}

// PriceRecord is the price_list_product_prices row. NUMERIC(8,2); seq is a
// BIGSERIAL allocated by the database at insert time.
type PriceRecord struct {
	PriceID       string          `json:"priceID"`
	AssignmentID  string          `json:"assignmentID"`
	Price         decimal.Decimal `json:"price"`
	DateEffective time.Time       `json:"dateEffective"`
	Seq           int64           `json:"seq"`
	CreatedBy     string          `json:"createdBy"`
}
