package models

// PriceList is the price_lists row.
type PriceList struct {
	PriceListID string  `json:"priceListID"`
	Title       string  `json:"title"` // unique
	Description string  `json:"description"`
	Active      bool    `json:"active"`
	OwnerUserID *string `json:"ownerUserID"` // NULL once the owning account is removed
	AuditFields
}
