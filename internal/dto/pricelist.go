package dto

import (
	"time"

	"github.com/printkit/pricelist_backend/internal/core/domain"
)

// CreatePriceListRequest defines the data needed to create a new price list.
type CreatePriceListRequest struct {
	Title       string `json:"title" binding:"required,max=64"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// UpdatePriceListRequest defines the mutable price list header fields. Nil
// fields are left unchanged.
type UpdatePriceListRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=64"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

// AddMemberRequest attaches a principal to a price list.
type AddMemberRequest struct {
	UserID string `json:"userID" binding:"required,uuid"`
	Role   string `json:"role" binding:"required,oneof=ADMIN MEMBER"`
}

// PriceListResponse defines the data returned for a price list.
type PriceListResponse struct {
	PriceListID string    `json:"priceListID"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	OwnerUserID *string   `json:"ownerUserID,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MembershipResponse defines the data returned for a membership.
type MembershipResponse struct {
	PriceListID string    `json:"priceListID"`
	UserID      string    `json:"userID"`
	Role        string    `json:"role"`
	Active      bool      `json:"active"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// ToPriceListResponse converts a domain.PriceList to PriceListResponse DTO
func ToPriceListResponse(p *domain.PriceList) PriceListResponse {
	return PriceListResponse{
		PriceListID: p.PriceListID,
		Title:       p.Title,
		Description: p.Description,
		Active:      p.Active,
		OwnerUserID: p.OwnerUserID,
		CreatedAt:   p.CreatedAt,
	}
}

// ToListPriceListResponse converts a slice of domain.PriceList to DTOs
func ToListPriceListResponse(lists []domain.PriceList) []PriceListResponse {
	res := make([]PriceListResponse, len(lists))
	for i := range lists {
		res[i] = ToPriceListResponse(&lists[i])
	}
	return res
}

// ToMembershipResponse converts a domain.Membership to MembershipResponse DTO
func ToMembershipResponse(m *domain.Membership) MembershipResponse {
	return MembershipResponse{
		PriceListID: m.PriceListID,
		UserID:      m.UserID,
		Role:        string(m.Role),
		Active:      m.Active,
		JoinedAt:    m.JoinedAt,
	}
}
