package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/printkit/pricelist_backend/internal/apperrors"
	"github.com/printkit/pricelist_backend/internal/core/domain"
	"github.com/printkit/pricelist_backend/internal/core/events"
	portsrepo "github.com/printkit/pricelist_backend/internal/core/ports/repositories"
	portssvc "github.com/printkit/pricelist_backend/internal/core/ports/services"
	"github.com/printkit/pricelist_backend/internal/dto"
)

type currencyLedgerService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	authorizer   portssvc.PriceListAuthorizerSvc
	emitter      events.Emitter
	BaseService
}

// NewCurrencyLedgerService creates a new currency ledger service.
func NewCurrencyLedgerService(currencyRepo portsrepo.CurrencyRepositoryFacade, authorizer portssvc.PriceListAuthorizerSvc, emitter events.Emitter) portssvc.CurrencyLedgerSvcFacade {
	return &currencyLedgerService{currencyRepo: currencyRepo, authorizer: authorizer, emitter: emitter}
}

func (s *currencyLedgerService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	return s.currencyRepo.FindCurrencyByID(ctx, currencyID)
}

func (s *currencyLedgerService) ListCurrencies(ctx context.Context, priceListID string) ([]domain.Currency, error) {
	return s.currencyRepo.ListCurrencies(ctx, priceListID)
}

func (s *currencyLedgerService) ListRates(ctx context.Context, currencyID string) ([]domain.CurrencyRate, error) {
	return s.currencyRepo.ListRates(ctx, currencyID)
}

// RateAt resolves the rate in force strictly before at. The base currency
// never consults the ledger; its rate is 1 by definition.
func (s *currencyLedgerService) RateAt(ctx context.Context, currencyID string, at time.Time) (decimal.Decimal, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if currency.IsBase {
		return decimal.New(1, 0), nil
	}
	if at.IsZero() {
		at = time.Now()
	}
	record, err := s.currencyRepo.RateAt(ctx, currencyID, at)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return record.Rate, nil
}

func (s *currencyLedgerService) AddCurrency(ctx context.Context, priceListID string, req dto.CreateCurrencyRequest, requestorUserID string) (*domain.Currency, error) {
	if err := s.authorizer.AuthorizePriceListMutation(ctx, priceListID, requestorUserID); err != nil {
		return nil, err
	}

	code := strings.ToUpper(req.Code)
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, priceListID, code); err == nil {
		return nil, apperrors.ErrDuplicateCurrencyCode
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if req.IsBase {
		if _, err := s.currencyRepo.FindBaseCurrency(ctx, priceListID); err == nil {
			return nil, apperrors.ErrMultipleBaseCurrency
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	now := time.Now()
	currency := domain.Currency{
		CurrencyID:  uuid.New().String(),
		PriceListID: priceListID,
		Title:       req.Title,
		Code:        code,
		Symbol:      req.Symbol,
		IsBase:      req.IsBase,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestorUserID,
		},
	}

	var seed *domain.CurrencyRate
	switch {
	case req.IsBase:
		// The base rate is fixed at 1.00 for the life of the list.
		if req.Rate != nil && !req.Rate.Equal(decimal.New(1, 0)) {
			return nil, apperrors.ErrImmutableBaseRate
		}
		seed = &domain.CurrencyRate{
			RateID:        uuid.New().String(),
			CurrencyID:    currency.CurrencyID,
			Rate:          decimal.New(1, 0),
			DateEffective: now,
			CreatedBy:     requestorUserID,
		}
	case req.Rate != nil:
		if !isValidRate(*req.Rate) {
			return nil, apperrors.ErrInvalidRate
		}
		seed = &domain.CurrencyRate{
			RateID:        uuid.New().String(),
			CurrencyID:    currency.CurrencyID,
			Rate:          *req.Rate,
			DateEffective: now,
			CreatedBy:     requestorUserID,
		}
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency, seed); err != nil {
		s.LogError(ctx, err, "failed to add currency", "price_list_id", priceListID, "code", code)
		return nil, err
	}

	s.emitter.Emit(ctx, events.Event{
		Kind:        events.CurrencyAdded,
		PriceListID: priceListID,
		EntityID:    currency.CurrencyID,
		ActorUserID: requestorUserID,
		OccurredAt:  now,
	})
	return &currency, nil
}

// UpdateCurrency changes title/symbol. A supplied rate that differs from the
// one in force appends a new record rather than editing history; the base
// currency's rate cannot be moved off 1.00.
func (s *currencyLedgerService) UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest, requestorUserID string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.AuthorizePriceListMutation(ctx, currency.PriceListID, requestorUserID); err != nil {
		return nil, err
	}

	// The rate is checked before anything is written; a rejected request
	// must not commit the rename.
	appendNewRate := false
	if req.Rate != nil {
		if currency.IsBase {
			if !req.Rate.Equal(decimal.New(1, 0)) {
				return nil, apperrors.ErrImmutableBaseRate
			}
		} else {
			if !isValidRate(*req.Rate) {
				return nil, apperrors.ErrInvalidRate
			}
			current, err := s.currencyRepo.RateAt(ctx, currencyID, time.Now())
			if err != nil && !errors.Is(err, apperrors.ErrNoRateDefined) {
				return nil, err
			}
			appendNewRate = err != nil || !current.Rate.Equal(*req.Rate)
		}
	}

	if req.Title != nil {
		currency.Title = *req.Title
	}
	if req.Symbol != nil {
		currency.Symbol = *req.Symbol
	}
	currency.LastUpdatedAt = time.Now()
	currency.LastUpdatedBy = requestorUserID

	if err := s.currencyRepo.UpdateCurrency(ctx, *currency); err != nil {
		s.LogError(ctx, err, "failed to update currency", "currency_id", currencyID)
		return nil, err
	}

	if appendNewRate {
		if _, err := s.appendRate(ctx, currency, *req.Rate, requestorUserID); err != nil {
			return nil, err
		}
	}
	return currency, nil
}

func (s *currencyLedgerService) RecordRate(ctx context.Context, currencyID string, req dto.RecordRateRequest, requestorUserID string) (*domain.CurrencyRate, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.AuthorizePriceListMutation(ctx, currency.PriceListID, requestorUserID); err != nil {
		return nil, err
	}
	if currency.IsBase {
		return nil, apperrors.ErrImmutableBaseRate
	}
	if !isValidRate(req.Rate) {
		return nil, apperrors.ErrInvalidRate
	}
	return s.appendRate(ctx, currency, req.Rate, requestorUserID)
}

// appendRate writes one history record with an effective timestamp of now.
// Records are never backdated; history only ever grows forward.
func (s *currencyLedgerService) appendRate(ctx context.Context, currency *domain.Currency, rate decimal.Decimal, requestorUserID string) (*domain.CurrencyRate, error) {
	now := time.Now()
	record, err := s.currencyRepo.AppendRate(ctx, domain.CurrencyRate{
		RateID:        uuid.New().String(),
		CurrencyID:    currency.CurrencyID,
		Rate:          rate,
		DateEffective: now,
		CreatedBy:     requestorUserID,
	})
	if err != nil {
		s.LogError(ctx, err, "failed to record rate", "currency_id", currency.CurrencyID)
		return nil, fmt.Errorf("failed to record rate for currency %s: %w", currency.CurrencyID, err)
	}
	s.emitter.Emit(ctx, events.Event{
		Kind:        events.RateRecorded,
		PriceListID: currency.PriceListID,
		EntityID:    record.RateID,
		ActorUserID: requestorUserID,
		OccurredAt:  now,
	})
	return record, nil
}

func (s *currencyLedgerService) RemoveCurrency(ctx context.Context, currencyID string, requestorUserID string) error {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return err
	}
	if err := s.authorizer.AuthorizePriceListMutation(ctx, currency.PriceListID, requestorUserID); err != nil {
		return err
	}
	if currency.IsBase {
		return apperrors.ErrCannotDeleteBaseCurrency
	}
	if err := s.currencyRepo.DeleteCurrency(ctx, currencyID); err != nil {
		s.LogError(ctx, err, "failed to remove currency", "currency_id", currencyID)
		return err
	}
	s.emitter.Emit(ctx, events.Event{
		Kind:        events.CurrencyRemoved,
		PriceListID: currency.PriceListID,
		EntityID:    currencyID,
		ActorUserID: requestorUserID,
		OccurredAt:  time.Now(),
	})
	return nil
}

var _ portssvc.CurrencyLedgerSvcFacade = (*currencyLedgerService)(nil)
