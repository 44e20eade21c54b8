package mapping

import (
	"github.com/printkit/pricelist_backend/internal/core/domain"
	"github.com/printkit/pricelist_backend/internal/models"
)

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		Title:       m.Title,
		OwnerUserID: m.OwnerUserID,
	}
}

// ToDomainProductSlice converts a slice of model Products to domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}

// ToModelAssignment converts a domain CatalogAssignment to a model CatalogAssignment
func ToModelAssignment(d domain.CatalogAssignment) models.CatalogAssignment {
	return models.CatalogAssignment{
		AssignmentID: d.AssignmentID,
		PriceListID:  d.PriceListID,
		ProductID:    d.ProductID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainAssignment converts a model CatalogAssignment to a domain CatalogAssignment
func ToDomainAssignment(m models.CatalogAssignment) domain.CatalogAssignment {
	return domain.CatalogAssignment{
		AssignmentID: m.AssignmentID,
		PriceListID:  m.PriceListID,
		ProductID:    m.ProductID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainPriceRecord converts a model PriceRecord to a domain PriceRecord
func ToDomainPriceRecord(m models.PriceRecord) domain.PriceRecord {
	return domain.PriceRecord{
		PriceID:       m.PriceID,
		AssignmentID:  m.AssignmentID,
		Price:         m.Price,
		DateEffective: m.DateEffective,
		Seq:           m.Seq,
		CreatedBy:     m.CreatedBy,
	}
}
