package mapping

import (
	"github.com/printkit/pricelist_backend/internal/core/domain"
	"github.com/printkit/pricelist_backend/internal/models"
)

// ToModelPriceList converts a domain PriceList to a model PriceList
func ToModelPriceList(d domain.PriceList) models.PriceList {
	return models.PriceList{
		PriceListID: d.PriceListID,
		Title:       d.Title,
		Description: d.Description,
		Active:      d.Active,
		OwnerUserID: d.OwnerUserID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainPriceList converts a model PriceList to a domain PriceList
func ToDomainPriceList(m models.PriceList) domain.PriceList {
	return domain.PriceList{
		PriceListID: m.PriceListID,
		Title:       m.Title,
		Description: m.Description,
		Active:      m.Active,
		OwnerUserID: m.OwnerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainPriceListSlice converts a slice of model PriceLists to domain PriceLists
func ToDomainPriceListSlice(ms []models.PriceList) []domain.PriceList {
	ds := make([]domain.PriceList, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPriceList(m)
	}
	return ds
}

// ToDomainMembership converts a model Membership to a domain Membership
func ToDomainMembership(m models.Membership) domain.Membership {
	return domain.Membership{
		PriceListID: m.PriceListID,
		UserID:      m.UserID,
		Role:        domain.MembershipRole(m.Role),
		Active:      m.Active,
		JoinedAt:    m.JoinedAt,
	}
}

// ToModelMembership converts a domain Membership to a model Membership
func ToModelMembership(d domain.Membership) models.Membership {
	return models.Membership{
		PriceListID: d.PriceListID,
		UserID:      d.UserID,
		Role:        string(d.Role),
		Active:      d.Active,
		JoinedAt:    d.JoinedAt,
	}
}
