package domain

import "time"

// MembershipRole is the role a principal holds on a price list.
type MembershipRole string

const (
	// RoleAdmin members are treated as owners by the authorizer.
	RoleAdmin MembershipRole = "ADMIN"
	// RoleMember members may read the list but not mutate it.
	RoleMember MembershipRole = "MEMBER"
)

// Membership attaches a principal with a role to a price list. Inactive
// memberships are kept for history but grant nothing.
type Membership struct {
	PriceListID string         `json:"priceListID"`
	UserID      string         `json:"userID"`
	Role        MembershipRole `json:"role"`
	Active      bool           `json:"active"`
	JoinedAt    time.Time      `json:"joinedAt"`
}
