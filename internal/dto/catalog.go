package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/printkit/pricelist_backend/internal/core/domain"
)

// AssignProductRequest attaches a product to a price list. BasePrice seeds the
// first price record; when omitted the assignment has no price until one is
// recorded.
type AssignProductRequest struct {
	ProductID string           `json:"productID" binding:"required,uuid"`
	BasePrice *decimal.Decimal `json:"basePrice"`
}

// RecordPriceRequest appends one base-currency price record.
type RecordPriceRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

// AssignmentResponse defines the data returned for a catalog assignment.
// CurrentPrice is the base-currency price in force now; it is omitted when no
// price record precedes the current instant.
type AssignmentResponse struct {
	AssignmentID string           `json:"assignmentID"`
	PriceListID  string           `json:"priceListID"`
	ProductID    string           `json:"productID"`
	CurrentPrice *decimal.Decimal `json:"currentPrice,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// PriceRecordResponse defines the data returned for one price record.
type PriceRecordResponse struct {
	PriceID       string          `json:"priceID"`
	AssignmentID  string          `json:"assignmentID"`
	Price         decimal.Decimal `json:"price"`
	DateEffective time.Time       `json:"dateEffective"`
}

// ProductResponse defines the data returned for a catalog product reference.
type ProductResponse struct {
	ProductID string `json:"productID"`
	Title     string `json:"title"`
}

// AssignableProductsResponse is one page of products that can still be
// assigned to the list. NextToken restarts the listing after the last item;
// empty means the sequence is exhausted.
type AssignableProductsResponse struct {
	Products  []ProductResponse `json:"products"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToAssignmentResponse converts a domain.CatalogAssignment to AssignmentResponse DTO
func ToAssignmentResponse(a *domain.CatalogAssignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: a.AssignmentID,
		PriceListID:  a.PriceListID,
		ProductID:    a.ProductID,
		CreatedAt:    a.CreatedAt,
	}
}

// ToListAssignmentResponse converts a slice of domain.CatalogAssignment to DTOs
func ToListAssignmentResponse(assignments []domain.CatalogAssignment) []AssignmentResponse {
	res := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		res[i] = ToAssignmentResponse(&assignments[i])
	}
	return res
}

// ToPriceRecordResponse converts a domain.PriceRecord to PriceRecordResponse DTO
func ToPriceRecordResponse(p *domain.PriceRecord) PriceRecordResponse {
	return PriceRecordResponse{
		PriceID:       p.PriceID,
		AssignmentID:  p.AssignmentID,
		Price:         p.Price,
		DateEffective: p.DateEffective,
	}
}

// ToListPriceRecordResponse converts a slice of domain.PriceRecord to DTOs
func ToListPriceRecordResponse(records []domain.PriceRecord) []PriceRecordResponse {
	res := make([]PriceRecordResponse, len(records))
	for i := range records {
		res[i] = ToPriceRecordResponse(&records[i])
	}
	return res
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ProductID,
		Title:     p.Title,
	}
}
