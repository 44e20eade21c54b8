package repositories

import (
	"context"
	"time"

	"github.com/printkit/pricelist_backend/internal/core/domain"
)

// AssignmentReader defines read operations for catalog assignments
type AssignmentReader interface {
	// FindAssignmentByID retrieves an assignment by its ID.
	FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.CatalogAssignment, error)

	// FindAssignment retrieves the assignment of a product on a price list.
	FindAssignment(ctx context.Context, priceListID, productID string) (*domain.CatalogAssignment, error)

	// ListAssignments retrieves all assignments of a price list.
	ListAssignments(ctx context.Context, priceListID string) ([]domain.CatalogAssignment, error)
}

// AssignmentWriter defines write operations for catalog assignments
type AssignmentWriter interface {
	// SaveAssignment persists a new assignment together with an optional seed
	// price record in one transaction. The (price list, product) uniqueness is
	// enforced by a storage constraint; a violation surfaces as
	// apperrors.ErrProductAlreadyAssigned.
	SaveAssignment(ctx context.Context, assignment domain.CatalogAssignment, seed *domain.PriceRecord) error

	// DeleteAssignment removes an assignment and its price history.
	DeleteAssignment(ctx context.Context, assignmentID string) error
}

// PriceLedger defines the append-only price history operations
type PriceLedger interface {
	// AppendPrice inserts a price record and returns it with the
	// storage-assigned insertion sequence.
	AppendPrice(ctx context.Context, record domain.PriceRecord) (*domain.PriceRecord, error)

	// PriceAt retrieves the price in force strictly before at, ties broken by
	// insertion sequence. Returns apperrors.ErrNoPriceDefined when no record
	// predates at.
	PriceAt(ctx context.Context, assignmentID string, at time.Time) (*domain.PriceRecord, error)

	// ListPrices retrieves an assignment's full price history, oldest first.
	ListPrices(ctx context.Context, assignmentID string) ([]domain.PriceRecord, error)
}

// CatalogRepositoryFacade combines all assignment-related repository interfaces
type CatalogRepositoryFacade interface {
	AssignmentReader
	AssignmentWriter
	PriceLedger
}
