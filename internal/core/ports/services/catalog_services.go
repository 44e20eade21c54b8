package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/printkit/pricelist_backend/internal/core/domain"
	"github.com/printkit/pricelist_backend/internal/dto"
)

// PriceLedgerReaderSvc defines read operations over assignments and their
// price histories.
type PriceLedgerReaderSvc interface {
	// GetAssignmentByID retrieves an assignment by its ID.
	GetAssignmentByID(ctx context.Context, assignmentID string) (*domain.CatalogAssignment, error)

	// ListAssignments retrieves all assignments of a price list.
	ListAssignments(ctx context.Context, priceListID string) ([]domain.CatalogAssignment, error)

	// ListPrices retrieves an assignment's price history, oldest first.
	ListPrices(ctx context.Context, assignmentID string) ([]domain.PriceRecord, error)

	// PriceAt returns the base price in force strictly before at.
	PriceAt(ctx context.Context, assignmentID string, at time.Time) (decimal.Decimal, error)

	// ListAssignableProducts pages through the requestor-owned products not yet
	// assigned to the price list, ordered by title. nextToken restarts the
	// sequence where the previous page stopped; empty means start over.
	ListAssignableProducts(ctx context.Context, priceListID, ownerUserID string, nextToken string, limit int, requestorUserID string) ([]domain.Product, string, error)
}

// PriceLedgerWriterSvc defines mutations of the price ledger. All of them are
// gated on the price list authorization decision.
type PriceLedgerWriterSvc interface {
	// AssignProduct attaches a product to a price list, optionally seeding its
	// first price record.
	AssignProduct(ctx context.Context, priceListID string, req dto.AssignProductRequest, requestorUserID string) (*domain.CatalogAssignment, error)

	// RecordPrice appends a base-currency price record to an assignment.
	RecordPrice(ctx context.Context, assignmentID string, req dto.RecordPriceRequest, requestorUserID string) (*domain.PriceRecord, error)

	// UnassignProduct removes an assignment and its price history.
	UnassignProduct(ctx context.Context, assignmentID string, requestorUserID string) error
}

// PriceLedgerSvcFacade combines the price ledger service interfaces
type PriceLedgerSvcFacade interface {
	PriceLedgerReaderSvc
	PriceLedgerWriterSvc
}

// QuoteSvc composes the two ledgers into an externally meaningful quote.
type QuoteSvc interface {
	// Quote resolves what a product costs on a price list in targetCode at
	// time at. Empty targetCode means the list's base currency; zero at means
	// now. Conversion rounds half-even to 2 fractional digits.
	Quote(ctx context.Context, priceListID, productID, targetCode string, at time.Time) (*domain.Quote, error)
}
