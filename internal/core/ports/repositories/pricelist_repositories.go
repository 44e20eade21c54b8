package repositories

import (
	"context"

	"github.com/printkit/pricelist_backend/internal/core/domain"
)

// PriceListReader defines read operations for price list headers
type PriceListReader interface {
	// FindPriceListByID retrieves a price list by its ID.
	FindPriceListByID(ctx context.Context, priceListID string) (*domain.PriceList, error)

	// ListPriceLists retrieves all price lists.
	ListPriceLists(ctx context.Context) ([]domain.PriceList, error)

	// ListPriceListsByOwner retrieves the price lists owned by one user.
	ListPriceListsByOwner(ctx context.Context, ownerUserID string) ([]domain.PriceList, error)
}

// PriceListWriter defines write operations for price list headers
type PriceListWriter interface {
	// CreatePriceList persists a new price list together with its synthetic
	// base currency and the seed 1.00 rate in a single transaction.
	CreatePriceList(ctx context.Context, list domain.PriceList, base domain.Currency, seed domain.CurrencyRate) error

	// UpdatePriceList persists changes to title, description and active flag.
	UpdatePriceList(ctx context.Context, list domain.PriceList) error

	// DeletePriceList removes the list; currencies, rates, assignments and
	// price records go with it via ON DELETE CASCADE.
	DeletePriceList(ctx context.Context, priceListID string) error
}

// MembershipRepository defines operations on price list memberships
type MembershipRepository interface {
	// SaveMembership inserts a membership row.
	SaveMembership(ctx context.Context, membership domain.Membership) error

	// FindMembership retrieves one membership, active or not.
	FindMembership(ctx context.Context, priceListID, userID string) (*domain.Membership, error)

	// ListMemberships retrieves all memberships of a price list.
	ListMemberships(ctx context.Context, priceListID string) ([]domain.Membership, error)

	// DeactivateMembership marks a membership inactive without removing it.
	DeactivateMembership(ctx context.Context, priceListID, userID string) error
}

// PriceListRepositoryFacade combines all price-list-related repository interfaces
type PriceListRepositoryFacade interface {
	PriceListReader
	PriceListWriter
	MembershipRepository
}
