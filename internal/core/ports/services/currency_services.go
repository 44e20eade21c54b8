package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/printkit/pricelist_backend/internal/core/domain"
	"github.com/printkit/pricelist_backend/internal/dto"
)

// CurrencyLedgerReaderSvc defines read operations over a price list's
// currencies and their rate histories.
type CurrencyLedgerReaderSvc interface {
	// GetCurrencyByID retrieves a currency by its ID.
	GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)

	// ListCurrencies retrieves a price list's currencies ordered by code.
	ListCurrencies(ctx context.Context, priceListID string) ([]domain.Currency, error)

	// ListRates retrieves a currency's rate history, oldest first.
	ListRates(ctx context.Context, currencyID string) ([]domain.CurrencyRate, error)

	// RateAt returns the rate-to-base in force strictly before at. A base
	// currency always resolves to 1.
	RateAt(ctx context.Context, currencyID string, at time.Time) (decimal.Decimal, error)
}

// CurrencyLedgerWriterSvc defines mutations of the currency ledger. All of
// them are gated on the price list authorization decision.
type CurrencyLedgerWriterSvc interface {
	// AddCurrency defines a currency on a price list, optionally seeding its
	// first rate record.
	AddCurrency(ctx context.Context, priceListID string, req dto.CreateCurrencyRequest, requestorUserID string) (*domain.Currency, error)

	// UpdateCurrency changes title/symbol and, when the supplied rate differs
	// from the current one and the currency is not base, appends a rate record.
	UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest, requestorUserID string) (*domain.Currency, error)

	// RecordRate appends a rate record to a non-base currency's history.
	RecordRate(ctx context.Context, currencyID string, req dto.RecordRateRequest, requestorUserID string) (*domain.CurrencyRate, error)

	// RemoveCurrency deletes a non-base currency and its rate history.
	RemoveCurrency(ctx context.Context, currencyID string, requestorUserID string) error
}

// CurrencyLedgerSvcFacade combines all currency ledger service interfaces
type CurrencyLedgerSvcFacade interface {
	CurrencyLedgerReaderSvc
	CurrencyLedgerWriterSvc
}
