package services

import (
	"github.com/printkit/pricelist_backend/internal/core/events"
	portsrepo "github.com/printkit/pricelist_backend/internal/core/ports/repositories"
	portssvc "github.com/printkit/pricelist_backend/internal/core/ports/services"
	"github.com/printkit/pricelist_backend/internal/platform/config"
)

// NewServiceContainer wires the repositories and the event emitter into the
// full set of application services. The price list service doubles as the
// authorizer consumed by both ledgers.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, emitter events.Emitter) *portssvc.ServiceContainer {
	priceListSvc := NewPriceListService(repos.PriceListRepo, repos.UserRepo, emitter)

	return &portssvc.ServiceContainer{
		PriceList:      priceListSvc,
		CurrencyLedger: NewCurrencyLedgerService(repos.CurrencyRepo, priceListSvc, emitter),
		PriceLedger:    NewPriceLedgerService(repos.CatalogRepo, repos.ProductRepo, priceListSvc, emitter),
		Quote:          NewPriceResolverService(repos.CatalogRepo, repos.CurrencyRepo),
		User:           NewUserService(repos.UserRepo),
		Token:          NewTokenService(cfg),
	}
}
