package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/printkit/pricelist_backend/internal/apperrors"
	"github.com/printkit/pricelist_backend/internal/core/domain"
	"github.com/printkit/pricelist_backend/internal/core/events"
	portssvc "github.com/printkit/pricelist_backend/internal/core/ports/services"
	"github.com/printkit/pricelist_backend/internal/core/services"
	"github.com/printkit/pricelist_backend/internal/dto"
)

type PriceListServiceTestSuite struct {
	suite.Suite
	mockListRepo *MockPriceListRepository
	mockUserRepo *MockUserRepository
	emitter      *recordingEmitter
	service      portssvc.PriceListSvcFacade
}

func (suite *PriceListServiceTestSuite) SetupTest() {
	suite.mockListRepo = new(MockPriceListRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.emitter = &recordingEmitter{}
	suite.service = services.NewPriceListService(suite.mockListRepo, suite.mockUserRepo, suite.emitter)
}

// --- CreatePriceList ---

func (suite *PriceListServiceTestSuite) TestCreatePriceList_SeedsBaseCurrency() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreatePriceListRequest{Title: "Retail", Description: "Retail pricing", Active: true}

	suite.mockListRepo.On("CreatePriceList", ctx,
		mock.AnythingOfType("domain.PriceList"),
		mock.AnythingOfType("domain.Currency"),
		mock.AnythingOfType("domain.CurrencyRate"),
	).Run(func(args mock.Arguments) {
		list := args.Get(1).(domain.PriceList)
		base := args.Get(2).(domain.Currency)
		seed := args.Get(3).(domain.CurrencyRate)
		suite.Equal("Retail", list.Title)
		suite.Require().NotNil(list.OwnerUserID)
		suite.Equal(creatorID, *list.OwnerUserID)
		suite.Equal(list.PriceListID, base.PriceListID)
		suite.True(base.IsBase)
		suite.Equal("BAS", base.Code)
		suite.Equal(base.CurrencyID, seed.CurrencyID)
		suite.True(seed.Rate.Equal(decimal.New(1, 0)))
	}).Return(nil).Once()

	list, err := suite.service.CreatePriceList(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(list)
	suite.NotEmpty(list.PriceListID)
	suite.Require().Len(suite.emitter.emitted, 1)
	suite.Equal(events.PriceListCreated, suite.emitter.emitted[0].Kind)
	suite.mockListRepo.AssertExpectations(suite.T())
}

func (suite *PriceListServiceTestSuite) TestCreatePriceList_NoPrincipal() {
	ctx := context.Background()

	list, err := suite.service.CreatePriceList(ctx, dto.CreatePriceListRequest{Title: "Retail"}, "")

	suite.Require().Error(err)
	suite.Nil(list)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockListRepo.AssertNotCalled(suite.T(), "CreatePriceList")
}

// --- AuthorizePriceListMutation ---

func (suite *PriceListServiceTestSuite) TestAuthorize_OwnerAllowed() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	priceListID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, ownerID).
		Return(&domain.User{UserID: ownerID}, nil).Once()
	suite.mockListRepo.On("FindPriceListByID", ctx, priceListID).
		Return(&domain.PriceList{PriceListID: priceListID, OwnerUserID: &ownerID}, nil).Once()

	err := suite.service.AuthorizePriceListMutation(ctx, priceListID, ownerID)

	suite.Require().NoError(err)
	suite.mockListRepo.AssertNotCalled(suite.T(), "FindMembership")
}

func (suite *PriceListServiceTestSuite) TestAuthorize_StaffAllowed() {
	ctx := context.Background()
	staffID := uuid.NewString()
	ownerID := uuid.NewString()
	priceListID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, staffID).
		Return(&domain.User{UserID: staffID, IsStaff: true}, nil).Once()
	suite.mockListRepo.On("FindPriceListByID", ctx, priceListID).
		Return(&domain.PriceList{PriceListID: priceListID, OwnerUserID: &ownerID}, nil).Once()

	err := suite.service.AuthorizePriceListMutation(ctx, priceListID, staffID)

	suite.Require().NoError(err)
}

func (suite *PriceListServiceTestSuite) TestAuthorize_ActiveAdminMemberAllowed() {
	ctx := context.Background()
	memberID := uuid.NewString()
	ownerID := uuid.NewString()
	priceListID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, memberID).
		Return(&domain.User{UserID: memberID}, nil).Once()
	suite.mockListRepo.On("FindPriceListByID", ctx, priceListID).
		Return(&domain.PriceList{PriceListID: priceListID, OwnerUserID: &ownerID}, nil).Once()
	suite.mockListRepo.On("FindMembership", ctx, priceListID, memberID).
		Return(&domain.Membership{PriceListID: priceListID, UserID: memberID, Role: domain.RoleAdmin, Active: true}, nil).Once()

	err := suite.service.AuthorizePriceListMutation(ctx, priceListID, memberID)

	suite.Require().NoError(err)
}

func (suite *PriceListServiceTestSuite) TestAuthorize_PlainMemberDenied() {
	ctx := context.Background()
	memberID := uuid.NewString()
	ownerID := uuid.NewString()
	priceListID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, memberID).
		Return(&domain.User{UserID: memberID}, nil).Once()
	suite.mockListRepo.On("FindPriceListByID", ctx, priceListID).
		Return(&domain.PriceList{PriceListID: priceListID, OwnerUserID: &ownerID}, nil).Once()
	suite.mockListRepo.On("FindMembership", ctx, priceListID, memberID).
		Return(&domain.Membership{PriceListID: priceListID, UserID: memberID, Role: domain.RoleMember, Active: true}, nil).Once()

	err := suite.service.AuthorizePriceListMutation(ctx, priceListID, memberID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PriceListServiceTestSuite) TestAuthorize_InactiveAdminDenied() {
	ctx := context.Background()
	memberID := uuid.NewString()
	ownerID := uuid.NewString()
	priceListID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, memberID).
		Return(&domain.User{UserID: memberID}, nil).Once()
	suite.mockListRepo.On("FindPriceListByID", ctx, priceListID).
		Return(&domain.PriceList{PriceListID: priceListID, OwnerUserID: &ownerID}, nil).Once()
	suite.mockListRepo.On("FindMembership", ctx, priceListID, memberID).
		Return(&domain.Membership{PriceListID: priceListID, UserID: memberID, Role: domain.RoleAdmin, Active: false}, nil).Once()

	err := suite.service.AuthorizePriceListMutation(ctx, priceListID, memberID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PriceListServiceTestSuite) TestAuthorize_MissingListUniformDenialForNonStaff() {
	ctx := context.Background()
	userID := uuid.NewString()
	priceListID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockListRepo.On("FindPriceListByID", ctx, priceListID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AuthorizePriceListMutation(ctx, priceListID, userID)

	// A non-staff caller cannot tell a missing list from a denied one.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PriceListServiceTestSuite) TestAuthorize_MissingListIsNotFoundForStaff() {
	ctx := context.Background()
	staffID := uuid.NewString()
	priceListID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, staffID).
		Return(&domain.User{UserID: staffID, IsStaff: true}, nil).Once()
	suite.mockListRepo.On("FindPriceListByID", ctx, priceListID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AuthorizePriceListMutation(ctx, priceListID, staffID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PriceListServiceTestSuite) TestAuthorize_NoPrincipal() {
	err := suite.service.AuthorizePriceListMutation(context.Background(), uuid.NewString(), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID")
}

// --- ListPriceLists ---

func (suite *PriceListServiceTestSuite) TestListPriceLists_StaffSeesAll() {
	ctx := context.Background()
	staffID := uuid.NewString()
	all := []domain.PriceList{{PriceListID: uuid.NewString()}, {PriceListID: uuid.NewString()}}

	suite.mockUserRepo.On("FindUserByID", ctx, staffID).
		Return(&domain.User{UserID: staffID, IsStaff: true}, nil).Once()
	suite.mockListRepo.On("ListPriceLists", ctx).Return(all, nil).Once()

	lists, err := suite.service.ListPriceLists(ctx, staffID)

	suite.Require().NoError(err)
	suite.Len(lists, 2)
	suite.mockListRepo.AssertNotCalled(suite.T(), "ListPriceListsByOwner")
}

func (suite *PriceListServiceTestSuite) TestListPriceLists_OwnerSeesOwn() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	own := []domain.PriceList{{PriceListID: uuid.NewString(), OwnerUserID: &ownerID}}

	suite.mockUserRepo.On("FindUserByID", ctx, ownerID).
		Return(&domain.User{UserID: ownerID}, nil).Once()
	suite.mockListRepo.On("ListPriceListsByOwner", ctx, ownerID).Return(own, nil).Once()

	lists, err := suite.service.ListPriceLists(ctx, ownerID)

	suite.Require().NoError(err)
	suite.Len(lists, 1)
	suite.mockListRepo.AssertNotCalled(suite.T(), "ListPriceLists")
}

// --- UpdatePriceList ---

func (suite *PriceListServiceTestSuite) TestUpdatePriceList_AppliesPartialFields() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	priceListID := uuid.NewString()
	newTitle := "Wholesale"
	inactive := false

	existing := &domain.PriceList{PriceListID: priceListID, Title: "Retail", Description: "keep me", Active: true, OwnerUserID: &ownerID}
	suite.mockUserRepo.On("FindUserByID", ctx, ownerID).
		Return(&domain.User{UserID: ownerID}, nil).Once()
	suite.mockListRepo.On("FindPriceListByID", ctx, priceListID).Return(existing, nil).Twice()
	suite.mockListRepo.On("UpdatePriceList", ctx, mock.AnythingOfType("domain.PriceList")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(domain.PriceList)
			suite.Equal("Wholesale", updated.Title)
			suite.Equal("keep me", updated.Description)
			suite.False(updated.Active)
			suite.Equal(ownerID, updated.LastUpdatedBy)
		}).Return(nil).Once()

	list, err := suite.service.UpdatePriceList(ctx, priceListID, dto.UpdatePriceListRequest{Title: &newTitle, Active: &inactive}, ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(list)
	suite.Equal("Wholesale", list.Title)
}

// --- DeletePriceList ---

func (suite *PriceListServiceTestSuite) TestDeletePriceList_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	priceListID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, ownerID).
		Return(&domain.User{UserID: ownerID}, nil).Once()
	suite.mockListRepo.On("FindPriceListByID", ctx, priceListID).
		Return(&domain.PriceList{PriceListID: priceListID, OwnerUserID: &ownerID}, nil).Once()
	suite.mockListRepo.On("DeletePriceList", ctx, priceListID).Return(nil).Once()

	err := suite.service.DeletePriceList(ctx, priceListID, ownerID)

	suite.Require().NoError(err)
	suite.Require().Len(suite.emitter.emitted, 1)
	suite.Equal(events.PriceListDeleted, suite.emitter.emitted[0].Kind)
}

// --- Memberships ---

func (suite *PriceListServiceTestSuite) TestAddMember_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	memberID := uuid.NewString()
	priceListID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, ownerID).
		Return(&domain.User{UserID: ownerID}, nil).Once()
	suite.mockListRepo.On("FindPriceListByID", ctx, priceListID).
		Return(&domain.PriceList{PriceListID: priceListID, OwnerUserID: &ownerID}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, memberID).
		Return(&domain.User{UserID: memberID}, nil).Once()
	suite.mockListRepo.On("SaveMembership", ctx, mock.AnythingOfType("domain.Membership")).
		Run(func(args mock.Arguments) {
			membership := args.Get(1).(domain.Membership)
			suite.Equal(memberID, membership.UserID)
			suite.Equal(domain.RoleAdmin, membership.Role)
			suite.True(membership.Active)
		}).Return(nil).Once()

	membership, err := suite.service.AddMember(ctx, priceListID, dto.AddMemberRequest{UserID: memberID, Role: "ADMIN"}, ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(membership)
	suite.Equal(domain.RoleAdmin, membership.Role)
}

func (suite *PriceListServiceTestSuite) TestAddMember_UnknownUser() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	memberID := uuid.NewString()
	priceListID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, ownerID).
		Return(&domain.User{UserID: ownerID}, nil).Once()
	suite.mockListRepo.On("FindPriceListByID", ctx, priceListID).
		Return(&domain.PriceList{PriceListID: priceListID, OwnerUserID: &ownerID}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, memberID).Return(nil, apperrors.ErrNotFound).Once()

	membership, err := suite.service.AddMember(ctx, priceListID, dto.AddMemberRequest{UserID: memberID, Role: "MEMBER"}, ownerID)

	suite.Require().Error(err)
	suite.Nil(membership)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockListRepo.AssertNotCalled(suite.T(), "SaveMembership")
}

// --- Run Suite ---
func TestPriceListService(t *testing.T) {
	suite.Run(t, new(PriceListServiceTestSuite))
}
