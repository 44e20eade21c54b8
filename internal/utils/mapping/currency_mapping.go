package mapping

import (
	"github.com/printkit/pricelist_backend/internal/core/domain"
	"github.com/printkit/pricelist_backend/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyID:  d.CurrencyID,
		PriceListID: d.PriceListID,
		Title:       d.Title,
		Code:        d.Code,
		Symbol:      d.Symbol,
		IsBase:      d.IsBase,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID:  m.CurrencyID,
		PriceListID: m.PriceListID,
		Title:       m.Title,
		Code:        m.Code,
		Symbol:      m.Symbol,
		IsBase:      m.IsBase,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}

// ToDomainCurrencyRate converts a model CurrencyRate to a domain CurrencyRate
func ToDomainCurrencyRate(m models.CurrencyRate) domain.CurrencyRate {
	return domain.CurrencyRate{
		RateID:        m.RateID,
		CurrencyID:    m.CurrencyID,
		Rate:          m.Rate,
		DateEffective: m.DateEffective,
		Seq:           m.Seq,
		CreatedBy:     m.CreatedBy,
	}
}

// ToModelCurrencyRate converts a domain CurrencyRate to a model CurrencyRate
func ToModelCurrencyRate(d domain.CurrencyRate) models.CurrencyRate {
	return models.CurrencyRate{
		RateID:        d.RateID,
		CurrencyID:    d.CurrencyID,
		Rate:          d.Rate,
		DateEffective: d.DateEffective,
		Seq:           d.Seq,
		CreatedBy:     d.CreatedBy,
	}
}
