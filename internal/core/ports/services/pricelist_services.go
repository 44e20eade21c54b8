package services

import (
	"context"

	"github.com/printkit/pricelist_backend/internal/core/domain"
	"github.com/printkit/pricelist_backend/internal/dto"
)

// PriceListReaderSvc defines read operations for price lists
type PriceListReaderSvc interface {
	// GetPriceListByID retrieves a price list by its ID.
	GetPriceListByID(ctx context.Context, priceListID string) (*domain.PriceList, error)

	// ListPriceLists retrieves the lists visible to the requestor: all of them
	// for staff, owned lists otherwise.
	ListPriceLists(ctx context.Context, requestorUserID string) ([]domain.PriceList, error)
}

// PriceListWriterSvc defines write operations for price lists
type PriceListWriterSvc interface {
	// CreatePriceList creates a list owned by the creator, together with its
	// synthetic base currency seeded at rate 1.00.
	CreatePriceList(ctx context.Context, req dto.CreatePriceListRequest, creatorUserID string) (*domain.PriceList, error)

	// UpdatePriceList updates title, description and active flag.
	UpdatePriceList(ctx context.Context, priceListID string, req dto.UpdatePriceListRequest, requestorUserID string) (*domain.PriceList, error)

	// DeletePriceList removes the list and everything it owns.
	DeletePriceList(ctx context.Context, priceListID string, requestorUserID string) error
}

// MembershipSvc defines membership administration on a price list
type MembershipSvc interface {
	// AddMember attaches a principal to the list with a role.
	AddMember(ctx context.Context, priceListID string, req dto.AddMemberRequest, requestorUserID string) (*domain.Membership, error)

	// ListMembers retrieves the list's memberships.
	ListMembers(ctx context.Context, priceListID string, requestorUserID string) ([]domain.Membership, error)

	// RemoveMember deactivates a membership.
	RemoveMember(ctx context.Context, priceListID, memberUserID string, requestorUserID string) error
}

// PriceListAuthorizerSvc is the access-control decision the pricing components
// consume before any mutation: owner, staff, or active admin member.
type PriceListAuthorizerSvc interface {
	// AuthorizePriceListMutation returns nil when requestorUserID may mutate
	// the list, apperrors.ErrUnauthorized when no principal was supplied, and
	// a uniform apperrors.ErrForbidden otherwise.
	AuthorizePriceListMutation(ctx context.Context, priceListID, requestorUserID string) error
}

// PriceListSvcFacade combines all price-list-related service interfaces
type PriceListSvcFacade interface {
	PriceListReaderSvc
	PriceListWriterSvc
	MembershipSvc
	PriceListAuthorizerSvc
}
