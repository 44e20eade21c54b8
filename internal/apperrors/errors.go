package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the authenticated principal is not permitted to
// perform the operation. The message is deliberately uniform so that callers
// cannot tell a denied resource from a missing one.
var ErrForbidden = errors.New("not permitted")

// ErrUnauthorized indicates that no authenticated principal was supplied.
var ErrUnauthorized = errors.New("unauthorized")

// Pricing-specific rejections. Each wraps one of the base kinds above so
// callers can match either the precise condition or the broad category with
// errors.Is.
var (
	// ErrDuplicateCurrencyCode is returned when a currency code (case
	// insensitive) is already defined on the same price list.
	ErrDuplicateCurrencyCode = fmt.Errorf("%w: currency code already defined for this price list", ErrDuplicate)

	// ErrMultipleBaseCurrency is returned when a second base currency would be
	// created for a price list.
	ErrMultipleBaseCurrency = fmt.Errorf("%w: price list already has a base currency", ErrDuplicate)

	// ErrProductAlreadyAssigned is returned when a product is assigned to a
	// price list it already belongs to.
	ErrProductAlreadyAssigned = fmt.Errorf("%w: product already assigned to this price list", ErrDuplicate)

	// ErrInvalidRate is returned for a non-positive rate or one with more than
	// eight fractional digits.
	ErrInvalidRate = fmt.Errorf("%w: rate must be a positive decimal with at most 8 fractional digits", ErrValidation)

	// ErrInvalidPrice is returned for a negative price or one with more than
	// two fractional digits.
	ErrInvalidPrice = fmt.Errorf("%w: price must be a non-negative decimal with at most 2 fractional digits", ErrValidation)

	// ErrImmutableBaseRate rejects rate records on a base currency; its rate is
	// fixed at 1.00 for the life of the price list.
	ErrImmutableBaseRate = fmt.Errorf("%w: base currency rate is fixed at 1.00", ErrValidation)

	// ErrCannotDeleteBaseCurrency rejects deletion of a price list's base currency.
	ErrCannotDeleteBaseCurrency = fmt.Errorf("%w: base currency cannot be deleted", ErrValidation)

	// ErrNoRateDefined distinguishes "no rate configured before this instant"
	// from a zero rate.
	ErrNoRateDefined = fmt.Errorf("%w: no exchange rate defined before the requested time", ErrNotFound)

	// ErrNoPriceDefined distinguishes "no price configured before this instant"
	// from a zero price.
	ErrNoPriceDefined = fmt.Errorf("%w: no price defined before the requested time", ErrNotFound)

	// ErrProductNotInPriceList is returned when quoting a product that has no
	// assignment on the price list.
	ErrProductNotInPriceList = fmt.Errorf("%w: product is not assigned to this price list", ErrNotFound)
)
