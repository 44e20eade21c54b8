package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/printkit/pricelist_backend/internal/apperrors"
	"github.com/printkit/pricelist_backend/internal/core/domain"
	portsrepo "github.com/printkit/pricelist_backend/internal/core/ports/repositories"
	portssvc "github.com/printkit/pricelist_backend/internal/core/ports/services"
)

type priceResolverService struct {
	catalogRepo  portsrepo.CatalogRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	BaseService
}

// NewPriceResolverService creates the quote resolver over the two ledgers.
func NewPriceResolverService(catalogRepo portsrepo.CatalogRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.QuoteSvc {
	return &priceResolverService{catalogRepo: catalogRepo, currencyRepo: currencyRepo}
}

// Quote resolves the base price in force strictly before at, converts it into
// the target currency at the rate in force at the same instant, and rounds
// half-even to two fractional digits. The resolution is read-only and
// idempotent: the same arguments always produce the same quote.
func (s *priceResolverService) Quote(ctx context.Context, priceListID, productID, targetCode string, at time.Time) (*domain.Quote, error) {
	if at.IsZero() {
		at = time.Now()
	}

	assignment, err := s.catalogRepo.FindAssignment(ctx, priceListID, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrProductNotInPriceList
		}
		return nil, err
	}

	priceRecord, err := s.catalogRepo.PriceAt(ctx, assignment.AssignmentID, at)
	if err != nil {
		return nil, err
	}

	var currency *domain.Currency
	if targetCode == "" {
		currency, err = s.currencyRepo.FindBaseCurrency(ctx, priceListID)
	} else {
		currency, err = s.currencyRepo.FindCurrencyByCode(ctx, priceListID, strings.ToUpper(targetCode))
	}
	if err != nil {
		return nil, err
	}

	amount := priceRecord.Price
	if !currency.IsBase {
		rate, err := s.currencyRepo.RateAt(ctx, currency.CurrencyID, at)
		if err != nil {
			return nil, err
		}
		amount = priceRecord.Price.Mul(rate.Rate).RoundBank(2)
	}

	return &domain.Quote{
		Amount:       amount,
		CurrencyCode: currency.Code,
		Symbol:       currency.Symbol,
		At:           at,
	}, nil
}

var _ portssvc.QuoteSvc = (*priceResolverService)(nil)
