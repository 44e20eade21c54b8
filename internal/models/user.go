package models

import "time"

// User is the users row.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Username     string `json:"username"` // unique
	IsStaff      bool   `json:"isStaff"`
	PasswordHash string `json:"-"`
	AuditFields
}

// Membership is the price_list_memberships row.
type Membership struct {
	PriceListID string    `json:"priceListID"`
	UserID      string    `json:"userID"`
	Role        string    `json:"role"`
	Active      bool      `json:"active"`
	JoinedAt    time.Time `json:"joinedAt"`
}
