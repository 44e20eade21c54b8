package domain

// PriceList is the header under which currencies, product assignments and
// their price histories live. OwnerUserID is nil when the owning account has
// been removed; the list itself is never deleted implicitly.
type PriceList struct {
	PriceListID string  `json:"priceListID"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Active      bool    `json:"active"`
	OwnerUserID *string `json:"ownerUserID,omitempty"`
	AuditFields
}

// IsOwnedBy reports whether userID is the current owner of the list.
func (p *PriceList) IsOwnedBy(userID string) bool {
	return p.OwnerUserID != nil && *p.OwnerUserID == userID
}
