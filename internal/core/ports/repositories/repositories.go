package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service container at startup.
type RepositoryProvider struct {
	PriceListRepo PriceListRepositoryFacade
	CurrencyRepo  CurrencyRepositoryFacade
	CatalogRepo   CatalogRepositoryFacade
	ProductRepo   ProductReader
	UserRepo      UserRepositoryFacade
}
