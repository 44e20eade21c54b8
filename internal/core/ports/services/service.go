package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what the
// handlers receive at route registration.
type ServiceContainer struct {
	PriceList      PriceListSvcFacade
	CurrencyLedger CurrencyLedgerSvcFacade
	PriceLedger    PriceLedgerSvcFacade
	Quote          QuoteSvc
	User           UserSvcFacade
	Token          TokenSvcFacade
}
