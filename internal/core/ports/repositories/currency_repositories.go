package repositories

import (
	"context"
	"time"

	"github.com/printkit/pricelist_backend/internal/core/domain"
)

// CurrencyReader defines read operations for a price list's currencies
type CurrencyReader interface {
	// FindCurrencyByID retrieves a currency by its ID.
	FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)

	// FindCurrencyByCode retrieves a currency by (price list, uppercased code).
	FindCurrencyByCode(ctx context.Context, priceListID, code string) (*domain.Currency, error)

	// FindBaseCurrency retrieves the base currency of a price list.
	FindBaseCurrency(ctx context.Context, priceListID string) (*domain.Currency, error)

	// ListCurrencies retrieves a price list's currencies ordered by code.
	ListCurrencies(ctx context.Context, priceListID string) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currencies
type CurrencyWriter interface {
	// SaveCurrency persists a new currency together with an optional seed rate
	// in one transaction. The (price list, code) uniqueness and the single-base
	// invariant are enforced by storage constraints; violations surface as
	// apperrors.ErrDuplicateCurrencyCode / apperrors.ErrMultipleBaseCurrency.
	SaveCurrency(ctx context.Context, currency domain.Currency, seed *domain.CurrencyRate) error

	// UpdateCurrency persists changes to title and symbol only.
	UpdateCurrency(ctx context.Context, currency domain.Currency) error

	// DeleteCurrency removes a currency and its rate history.
	DeleteCurrency(ctx context.Context, currencyID string) error
}

// RateLedger defines the append-only rate history operations
type RateLedger interface {
	// AppendRate inserts a rate record and returns it with the
	// storage-assigned insertion sequence.
	AppendRate(ctx context.Context, rate domain.CurrencyRate) (*domain.CurrencyRate, error)

	// RateAt retrieves the rate in force strictly before at: the record with
	// the greatest effective timestamp below at, ties broken by insertion
	// sequence. Returns apperrors.ErrNoRateDefined when no record predates at.
	RateAt(ctx context.Context, currencyID string, at time.Time) (*domain.CurrencyRate, error)

	// ListRates retrieves a currency's full rate history, oldest first.
	ListRates(ctx context.Context, currencyID string) ([]domain.CurrencyRate, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
	RateLedger
}
