package repositories

import (
	"context"

	"github.com/printkit/pricelist_backend/internal/core/domain"
)

// ProductReader is the contract with the external product catalog. Products
// are referenced, never mutated, by this service.
type ProductReader interface {
	// FindProductByID retrieves a product by its ID.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListAssignableProducts retrieves products owned by ownerUserID that are
	// not yet assigned to the price list, ordered by title then ID. The
	// afterTitle/afterProductID pair is the keyset cursor of the previous
	// page; both empty means start from the beginning.
	ListAssignableProducts(ctx context.Context, priceListID, ownerUserID, afterTitle, afterProductID string, limit int) ([]domain.Product, error)
}
