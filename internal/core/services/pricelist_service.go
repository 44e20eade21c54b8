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
)

// Every new price list gets a synthetic base currency so that prices always
// have a denomination from the first moment.
const (
	baseCurrencyTitle  = "BASE"
	baseCurrencyCode   = "BAS"
	baseCurrencySymbol = "$"
)

type priceListService struct {
	listRepo portsrepo.PriceListRepositoryFacade
	userRepo portsrepo.UserReader
	emitter  events.Emitter
	BaseService
}

// NewPriceListService creates a new price list service.
func NewPriceListService(listRepo portsrepo.PriceListRepositoryFacade, userRepo portsrepo.UserReader, emitter events.Emitter) portssvc.PriceListSvcFacade {
	return &priceListService{listRepo: listRepo, userRepo: userRepo, emitter: emitter}
}

// AuthorizePriceListMutation decides whether requestorUserID may mutate the
// list: owner, staff, or active admin member. Non-staff callers get the same
// uniform denial whether the list exists or not.
func (s *priceListService) AuthorizePriceListMutation(ctx context.Context, priceListID, requestorUserID string) error {
	if requestorUserID == "" {
		return apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByID(ctx, requestorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		return fmt.Errorf("failed to load requestor %s: %w", requestorUserID, err)
	}

	list, err := s.listRepo.FindPriceListByID(ctx, priceListID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if user.IsStaff {
				return err
			}
			return apperrors.ErrForbidden
		}
		return fmt.Errorf("failed to load price list %s: %w", priceListID, err)
	}

	if user.IsStaff || list.IsOwnedBy(requestorUserID) {
		return nil
	}

	membership, err := s.listRepo.FindMembership(ctx, priceListID, requestorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		return fmt.Errorf("failed to load membership: %w", err)
	}
	if membership.Active && membership.Role == domain.RoleAdmin {
		return nil
	}
	return apperrors.ErrForbidden
}

func (s *priceListService) GetPriceListByID(ctx context.Context, priceListID string) (*domain.PriceList, error) {
	return s.listRepo.FindPriceListByID(ctx, priceListID)
}

func (s *priceListService) ListPriceLists(ctx context.Context, requestorUserID string) ([]domain.PriceList, error) {
	if requestorUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	user, err := s.userRepo.FindUserByID(ctx, requestorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requestor %s: %w", requestorUserID, err)
	}
	if user.IsStaff {
		return s.listRepo.ListPriceLists(ctx)
	}
	return s.listRepo.ListPriceListsByOwner(ctx, requestorUserID)
}

func (s *priceListService) CreatePriceList(ctx context.Context, req dto.CreatePriceListRequest, creatorUserID string) (*domain.PriceList, error) {
	if creatorUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	now := time.Now()
	owner := creatorUserID
	list := domain.PriceList{
		PriceListID: uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Active:      req.Active,
		OwnerUserID: &owner,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	base := domain.Currency{
		CurrencyID:  uuid.New().String(),
		PriceListID: list.PriceListID,
		Title:       baseCurrencyTitle,
		Code:        baseCurrencyCode,
		Symbol:      baseCurrencySymbol,
		IsBase:      true,
		AuditFields: list.AuditFields,
	}
	seed := domain.CurrencyRate{
		RateID:        uuid.New().String(),
		CurrencyID:    base.CurrencyID,
		Rate:          decimal.New(1, 0),
		DateEffective: now,
		CreatedBy:     creatorUserID,
	}

	if err := s.listRepo.CreatePriceList(ctx, list, base, seed); err != nil {
		s.LogError(ctx, err, "failed to create price list", "title", req.Title)
		return nil, err
	}

	s.emitter.Emit(ctx, events.Event{
		Kind:        events.PriceListCreated,
		PriceListID: list.PriceListID,
		EntityID:    list.PriceListID,
		ActorUserID: creatorUserID,
		OccurredAt:  now,
	})
	return &list, nil
}

func (s *priceListService) UpdatePriceList(ctx context.Context, priceListID string, req dto.UpdatePriceListRequest, requestorUserID string) (*domain.PriceList, error) {
	if err := s.AuthorizePriceListMutation(ctx, priceListID, requestorUserID); err != nil {
		return nil, err
	}

	list, err := s.listRepo.FindPriceListByID(ctx, priceListID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		list.Title = *req.Title
	}
	if req.Description != nil {
		list.Description = *req.Description
	}
	if req.Active != nil {
		list.Active = *req.Active
	}
	list.LastUpdatedAt = time.Now()
	list.LastUpdatedBy = requestorUserID

	if err := s.listRepo.UpdatePriceList(ctx, *list); err != nil {
		s.LogError(ctx, err, "failed to update price list", "price_list_id", priceListID)
		return nil, err
	}
	return list, nil
}

func (s *priceListService) DeletePriceList(ctx context.Context, priceListID string, requestorUserID string) error {
	if err := s.AuthorizePriceListMutation(ctx, priceListID, requestorUserID); err != nil {
		return err
	}
	if err := s.listRepo.DeletePriceList(ctx, priceListID); err != nil {
		s.LogError(ctx, err, "failed to delete price list", "price_list_id", priceListID)
		return err
	}
	s.emitter.Emit(ctx, events.Event{
		Kind:        events.PriceListDeleted,
		PriceListID: priceListID,
		EntityID:    priceListID,
		ActorUserID: requestorUserID,
		OccurredAt:  time.Now(),
	})
	return nil
}

func (s *priceListService) AddMember(ctx context.Context, priceListID string, req dto.AddMemberRequest, requestorUserID string) (*domain.Membership, error) {
	if err := s.AuthorizePriceListMutation(ctx, priceListID, requestorUserID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: member user %s does not exist", apperrors.ErrValidation, req.UserID)
		}
		return nil, err
	}

	membership := domain.Membership{
		PriceListID: priceListID,
		UserID:      req.UserID,
		Role:        domain.MembershipRole(req.Role),
		Active:      true,
		JoinedAt:    time.Now(),
	}
	if err := s.listRepo.SaveMembership(ctx, membership); err != nil {
		s.LogError(ctx, err, "failed to add member", "price_list_id", priceListID, "user_id", req.UserID)
		return nil, err
	}
	return &membership, nil
}

func (s *priceListService) ListMembers(ctx context.Context, priceListID string, requestorUserID string) ([]domain.Membership, error) {
	if err := s.AuthorizePriceListMutation(ctx, priceListID, requestorUserID); err != nil {
		return nil, err
	}
	return s.listRepo.ListMemberships(ctx, priceListID)
}

func (s *priceListService) RemoveMember(ctx context.Context, priceListID, memberUserID string, requestorUserID string) error {
	if err := s.AuthorizePriceListMutation(ctx, priceListID, requestorUserID); err != nil {
		return err
	}
	return s.listRepo.DeactivateMembership(ctx, priceListID, memberUserID)
}

var _ portssvc.PriceListSvcFacade = (*priceListService)(nil)
