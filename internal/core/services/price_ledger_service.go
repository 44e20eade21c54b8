package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/printkit/pricelist_backend/internal/apperrors"
	"github.com/printkit/pricelist_backend/internal/core/domain"
	"github.com/printkit/pricelist_backend/internal/core/events"
	portsrepo "github.com/printkit/pricelist_backend/internal/core/ports/repositories"
	portssvc "github.com/printkit/pricelist_backend/internal/core/ports/services"
	"github.com/printkit/pricelist_backend/internal/dto"
	"github.com/printkit/pricelist_backend/internal/utils/pagination"
)

const defaultAssignablePageSize = 50

type priceLedgerService struct {
	catalogRepo portsrepo.CatalogRepositoryFacade
	productRepo portsrepo.ProductReader
	authorizer  portssvc.PriceListAuthorizerSvc
	emitter     events.Emitter
	BaseService
}

// NewPriceLedgerService creates a new price ledger service.
func NewPriceLedgerService(catalogRepo portsrepo.CatalogRepositoryFacade, productRepo portsrepo.ProductReader, authorizer portssvc.PriceListAuthorizerSvc, emitter events.Emitter) portssvc.PriceLedgerSvcFacade {
	return &priceLedgerService{catalogRepo: catalogRepo, productRepo: productRepo, authorizer: authorizer, emitter: emitter}
}

func (s *priceLedgerService) GetAssignmentByID(ctx context.Context, assignmentID string) (*domain.CatalogAssignment, error) {
	return s.catalogRepo.FindAssignmentByID(ctx, assignmentID)
}

func (s *priceLedgerService) ListAssignments(ctx context.Context, priceListID string) ([]domain.CatalogAssignment, error) {
	return s.catalogRepo.ListAssignments(ctx, priceListID)
}

func (s *priceLedgerService) ListPrices(ctx context.Context, assignmentID string) ([]domain.PriceRecord, error) {
	return s.catalogRepo.ListPrices(ctx, assignmentID)
}

func (s *priceLedgerService) PriceAt(ctx context.Context, assignmentID string, at time.Time) (decimal.Decimal, error) {
	if at.IsZero() {
		at = time.Now()
	}
	record, err := s.catalogRepo.PriceAt(ctx, assignmentID, at)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return record.Price, nil
}

func (s *priceLedgerService) ListAssignableProducts(ctx context.Context, priceListID, ownerUserID string, nextToken string, limit int, requestorUserID string) ([]domain.Product, string, error) {
	if err := s.authorizer.AuthorizePriceListMutation(ctx, priceListID, requestorUserID); err != nil {
		return nil, "", err
	}
	if limit <= 0 {
		limit = defaultAssignablePageSize
	}

	var afterTitle, afterProductID string
	if nextToken != "" {
		fields, err := pagination.DecodeMultiFieldToken(nextToken)
		if err != nil || len(fields) != 2 {
			return nil, "", fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		afterTitle, afterProductID = fields[0], fields[1]
	}

	// Fetch one extra row so an exactly-full final page does not emit a
	// token for an empty follow-up page.
	products, err := s.productRepo.ListAssignableProducts(ctx, priceListID, ownerUserID, afterTitle, afterProductID, limit+1)
	if err != nil {
		s.LogError(ctx, err, "failed to list assignable products", "price_list_id", priceListID)
		return nil, "", err
	}

	var token string
	if len(products) > limit {
		products = products[:limit]
		last := products[len(products)-1]
		token = pagination.EncodeMultiFieldToken(last.Title, last.ProductID)
	}
	return products, token, nil
}

func (s *priceLedgerService) AssignProduct(ctx context.Context, priceListID string, req dto.AssignProductRequest, requestorUserID string) (*domain.CatalogAssignment, error) {
	if err := s.authorizer.AuthorizePriceListMutation(ctx, priceListID, requestorUserID); err != nil {
		return nil, err
	}

	if _, err := s.productRepo.FindProductByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %s does not exist", apperrors.ErrValidation, req.ProductID)
		}
		return nil, err
	}
	if _, err := s.catalogRepo.FindAssignment(ctx, priceListID, req.ProductID); err == nil {
		return nil, apperrors.ErrProductAlreadyAssigned
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	assignment := domain.CatalogAssignment{
		AssignmentID: uuid.New().String(),
		PriceListID:  priceListID,
		ProductID:    req.ProductID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestorUserID,
		},
	}

	var seed *domain.PriceRecord
	if req.BasePrice != nil {
		if !isValidPrice(*req.BasePrice) {
			return nil, apperrors.ErrInvalidPrice
		}
		seed = &domain.PriceRecord{
			PriceID:       uuid.New().String(),
			AssignmentID:  assignment.AssignmentID,
			Price:         *req.BasePrice,
			DateEffective: now,
			CreatedBy:     requestorUserID,
		}
	}

	if err := s.catalogRepo.SaveAssignment(ctx, assignment, seed); err != nil {
		s.LogError(ctx, err, "failed to assign product", "price_list_id", priceListID, "product_id", req.ProductID)
		return nil, err
	}

	s.emitter.Emit(ctx, events.Event{
		Kind:        events.ProductAssigned,
		PriceListID: priceListID,
		EntityID:    assignment.AssignmentID,
		ActorUserID: requestorUserID,
		OccurredAt:  now,
	})
	return &assignment, nil
}

func (s *priceLedgerService) RecordPrice(ctx context.Context, assignmentID string, req dto.RecordPriceRequest, requestorUserID string) (*domain.PriceRecord, error) {
	assignment, err := s.catalogRepo.FindAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.AuthorizePriceListMutation(ctx, assignment.PriceListID, requestorUserID); err != nil {
		return nil, err
	}
	if !isValidPrice(req.Price) {
		return nil, apperrors.ErrInvalidPrice
	}

	now := time.Now()
	record, err := s.catalogRepo.AppendPrice(ctx, domain.PriceRecord{
		PriceID:       uuid.New().String(),
		AssignmentID:  assignmentID,
		Price:         req.Price,
		DateEffective: now,
		CreatedBy:     requestorUserID,
	})
	if err != nil {
		s.LogError(ctx, err, "failed to record price", "assignment_id", assignmentID)
		return nil, fmt.Errorf("failed to record price for assignment %s: %w", assignmentID, err)
	}

	s.emitter.Emit(ctx, events.Event{
		Kind:        events.PriceRecorded,
		PriceListID: assignment.PriceListID,
		EntityID:    record.PriceID,
		ActorUserID: requestorUserID,
		OccurredAt:  now,
	})
	return record, nil
}

func (s *priceLedgerService) UnassignProduct(ctx context.Context, assignmentID string, requestorUserID string) error {
	assignment, err := s.catalogRepo.FindAssignmentByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if err := s.authorizer.AuthorizePriceListMutation(ctx, assignment.PriceListID, requestorUserID); err != nil {
		return err
	}
	if err := s.catalogRepo.DeleteAssignment(ctx, assignmentID); err != nil {
		s.LogError(ctx, err, "failed to unassign product", "assignment_id", assignmentID)
		return err
	}
	s.emitter.Emit(ctx, events.Event{
		Kind:        events.ProductUnassigned,
		PriceListID: assignment.PriceListID,
		EntityID:    assignmentID,
		ActorUserID: requestorUserID,
		OccurredAt:  time.Now(),
	})
	return nil
}

var _ portssvc.PriceLedgerSvcFacade = (*priceLedgerService)(nil)
