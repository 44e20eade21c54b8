package services_test

import (
	"context"
	"testing"
	"time"

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

type CurrencyLedgerServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	mockAuthorizer   *MockAuthorizer
	emitter          *recordingEmitter
	service          portssvc.CurrencyLedgerSvcFacade
}

func (suite *CurrencyLedgerServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockAuthorizer = new(MockAuthorizer)
	suite.emitter = &recordingEmitter{}
	suite.service = services.NewCurrencyLedgerService(suite.mockCurrencyRepo, suite.mockAuthorizer, suite.emitter)
}

// --- AddCurrency ---

func (suite *CurrencyLedgerServiceTestSuite) TestAddCurrency_SuccessWithSeedRate() {
	ctx := context.Background()
	priceListID := uuid.NewString()
	requestorID := uuid.NewString()
	rate := decimal.RequireFromString("0.80")
	req := dto.CreateCurrencyRequest{Title: "Euro", Code: "eur", Symbol: "€", Rate: &rate}

	suite.mockAuthorizer.On("AuthorizePriceListMutation", ctx, priceListID, requestorID).Return(nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, priceListID, "EUR").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCurrencyRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency"), mock.AnythingOfType("*domain.CurrencyRate")).
		Run(func(args mock.Arguments) {
			currency := args.Get(1).(domain.Currency)
			seed := args.Get(2).(*domain.CurrencyRate)
			suite.Equal("EUR", currency.Code)
			suite.False(currency.IsBase)
			suite.Require().NotNil(seed)
			suite.True(seed.Rate.Equal(rate))
			suite.Equal(currency.CurrencyID, seed.CurrencyID)
		}).Return(nil).Once()

	currency, err := suite.service.AddCurrency(ctx, priceListID, req, requestorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal("EUR", currency.Code)
	suite.Equal(requestorID, currency.CreatedBy)
	suite.Require().Len(suite.emitter.emitted, 1)
	suite.Equal(events.CurrencyAdded, suite.emitter.emitted[0].Kind)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
	suite.mockAuthorizer.AssertExpectations(suite.T())
}

func (suite *CurrencyLedgerServiceTestSuite) TestAddCurrency_DuplicateCode() {
	ctx := context.Background()
	priceListID := uuid.NewString()
	requestorID := uuid.NewString()
	req := dto.CreateCurrencyRequest{Title: "Euro", Code: "EUR", Symbol: "€"}

	suite.mockAuthorizer.On("AuthorizePriceListMutation", ctx, priceListID, requestorID).Return(nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, priceListID, "EUR").
		Return(&domain.Currency{CurrencyID: uuid.NewString(), Code: "EUR"}, nil).Once()

	currency, err := suite.service.AddCurrency(ctx, priceListID, req, requestorID)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrDuplicateCurrencyCode)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "SaveCurrency")
}

func (suite *CurrencyLedgerServiceTestSuite) TestAddCurrency_SecondBase() {
	ctx := context.Background()
	priceListID := uuid.NewString()
	requestorID := uuid.NewString()
	req := dto.CreateCurrencyRequest{Title: "Another Base", Code: "USD", Symbol: "$", IsBase: true}

	suite.mockAuthorizer.On("AuthorizePriceListMutation", ctx, priceListID, requestorID).Return(nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, priceListID, "USD").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCurrencyRepo.On("FindBaseCurrency", ctx, priceListID).
		Return(&domain.Currency{CurrencyID: uuid.NewString(), IsBase: true}, nil).Once()

	currency, err := suite.service.AddCurrency(ctx, priceListID, req, requestorID)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrMultipleBaseCurrency)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "SaveCurrency")
}

func (suite *CurrencyLedgerServiceTestSuite) TestAddCurrency_InvalidSeedRate() {
	ctx := context.Background()
	priceListID := uuid.NewString()
	requestorID := uuid.NewString()
	zero := decimal.Zero
	req := dto.CreateCurrencyRequest{Title: "Euro", Code: "EUR", Symbol: "€", Rate: &zero}

	suite.mockAuthorizer.On("AuthorizePriceListMutation", ctx, priceListID, requestorID).Return(nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, priceListID, "EUR").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.AddCurrency(ctx, priceListID, req, requestorID)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrInvalidRate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CurrencyLedgerServiceTestSuite) TestAddCurrency_Forbidden() {
	ctx := context.Background()
	priceListID := uuid.NewString()
	requestorID := uuid.NewString()
	req := dto.CreateCurrencyRequest{Title: "Euro", Code: "EUR", Symbol: "€"}

	suite.mockAuthorizer.On("AuthorizePriceListMutation", ctx, priceListID, requestorID).
		Return(apperrors.ErrForbidden).Once()

	currency, err := suite.service.AddCurrency(ctx, priceListID, req, requestorID)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode")
	suite.Empty(suite.emitter.emitted)
}

// --- RecordRate ---

func (suite *CurrencyLedgerServiceTestSuite) TestRecordRate_Success() {
	ctx := context.Background()
	priceListID := uuid.NewString()
	currencyID := uuid.NewString()
	requestorID := uuid.NewString()
	rate := decimal.RequireFromString("0.85000000")

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).
		Return(&domain.Currency{CurrencyID: currencyID, PriceListID: priceListID, Code: "EUR"}, nil).Once()
	suite.mockAuthorizer.On("AuthorizePriceListMutation", ctx, priceListID, requestorID).Return(nil).Once()
	suite.mockCurrencyRepo.On("AppendRate", ctx, mock.AnythingOfType("domain.CurrencyRate")).
		Run(func(args mock.Arguments) {
			record := args.Get(1).(domain.CurrencyRate)
			suite.Equal(currencyID, record.CurrencyID)
			suite.True(record.Rate.Equal(rate))
			suite.False(record.DateEffective.IsZero())
		}).
		Return(&domain.CurrencyRate{RateID: uuid.NewString(), CurrencyID: currencyID, Rate: rate, Seq: 7}, nil).Once()

	record, err := suite.service.RecordRate(ctx, currencyID, dto.RecordRateRequest{Rate: rate}, requestorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.EqualValues(7, record.Seq)
	suite.Require().Len(suite.emitter.emitted, 1)
	suite.Equal(events.RateRecorded, suite.emitter.emitted[0].Kind)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyLedgerServiceTestSuite) TestRecordRate_BaseCurrencyRejected() {
	ctx := context.Background()
	priceListID := uuid.NewString()
	currencyID := uuid.NewString()
	requestorID := uuid.NewString()

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).
		Return(&domain.Currency{CurrencyID: currencyID, PriceListID: priceListID, Code: "BAS", IsBase: true}, nil).Once()
	suite.mockAuthorizer.On("AuthorizePriceListMutation", ctx, priceListID, requestorID).Return(nil).Once()

	record, err := suite.service.RecordRate(ctx, currencyID, dto.RecordRateRequest{Rate: decimal.RequireFromString("1.25")}, requestorID)

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrImmutableBaseRate)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "AppendRate")
	suite.Empty(suite.emitter.emitted)
}

func (suite *CurrencyLedgerServiceTestSuite) TestRecordRate_InvalidRate() {
	ctx := context.Background()
	priceListID := uuid.NewString()
	currencyID := uuid.NewString()
	requestorID := uuid.NewString()

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).
		Return(&domain.Currency{CurrencyID: currencyID, PriceListID: priceListID, Code: "EUR"}, nil).Twice()
	suite.mockAuthorizer.On("AuthorizePriceListMutation", ctx, priceListID, requestorID).Return(nil).Twice()

	record, err := suite.service.RecordRate(ctx, currencyID, dto.RecordRateRequest{Rate: decimal.RequireFromString("-0.5")}, requestorID)
	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrInvalidRate)

	// more than 8 fractional digits
	record, err = suite.service.RecordRate(ctx, currencyID, dto.RecordRateRequest{Rate: decimal.RequireFromString("0.123456789")}, requestorID)
	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrInvalidRate)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "AppendRate")
}

// --- RateAt ---

func (suite *CurrencyLedgerServiceTestSuite) TestRateAt_BaseCurrencyIsAlwaysOne() {
	ctx := context.Background()
	currencyID := uuid.NewString()

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).
		Return(&domain.Currency{CurrencyID: currencyID, Code: "BAS", IsBase: true}, nil).Once()

	rate, err := suite.service.RateAt(ctx, currencyID, time.Now())

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.New(1, 0)))
	// The ledger must not be consulted for a base currency.
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "RateAt")
}

func (suite *CurrencyLedgerServiceTestSuite) TestRateAt_ResolvesLedger() {
	ctx := context.Background()
	currencyID := uuid.NewString()
	at := time.Now()
	expected := decimal.RequireFromString("0.80")

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).
		Return(&domain.Currency{CurrencyID: currencyID, Code: "EUR"}, nil).Once()
	suite.mockCurrencyRepo.On("RateAt", ctx, currencyID, at).
		Return(&domain.CurrencyRate{CurrencyID: currencyID, Rate: expected}, nil).Once()

	rate, err := suite.service.RateAt(ctx, currencyID, at)

	suite.Require().NoError(err)
	suite.True(rate.Equal(expected))
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyLedgerServiceTestSuite) TestRateAt_NoRateDefined() {
	ctx := context.Background()
	currencyID := uuid.NewString()
	at := time.Now()

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).
		Return(&domain.Currency{CurrencyID: currencyID, Code: "EUR"}, nil).Once()
	suite.mockCurrencyRepo.On("RateAt", ctx, currencyID, at).
		Return(nil, apperrors.ErrNoRateDefined).Once()

	_, err := suite.service.RateAt(ctx, currencyID, at)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNoRateDefined)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- UpdateCurrency ---

func (suite *CurrencyLedgerServiceTestSuite) TestUpdateCurrency_AppendsRateOnChange() {
	ctx := context.Background()
	priceListID := uuid.NewString()
	currencyID := uuid.NewString()
	requestorID := uuid.NewString()
	newRate := decimal.RequireFromString("0.90")

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).
		Return(&domain.Currency{CurrencyID: currencyID, PriceListID: priceListID, Title: "Euro", Code: "EUR"}, nil).Once()
	suite.mockAuthorizer.On("AuthorizePriceListMutation", ctx, priceListID, requestorID).Return(nil).Once()
	suite.mockCurrencyRepo.On("UpdateCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()
	suite.mockCurrencyRepo.On("RateAt", ctx, currencyID, mock.AnythingOfType("time.Time")).
		Return(&domain.CurrencyRate{CurrencyID: currencyID, Rate: decimal.RequireFromString("0.80")}, nil).Once()
	suite.mockCurrencyRepo.On("AppendRate", ctx, mock.AnythingOfType("domain.CurrencyRate")).
		Return(&domain.CurrencyRate{RateID: uuid.NewString(), CurrencyID: currencyID, Rate: newRate}, nil).Once()

	currency, err := suite.service.UpdateCurrency(ctx, currencyID, dto.UpdateCurrencyRequest{Rate: &newRate}, requestorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyLedgerServiceTestSuite) TestUpdateCurrency_UnchangedRateAppendsNothing() {
	ctx := context.Background()
	priceListID := uuid.NewString()
	currencyID := uuid.NewString()
	requestorID := uuid.NewString()
	sameRate := decimal.RequireFromString("0.80")

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).
		Return(&domain.Currency{CurrencyID: currencyID, PriceListID: priceListID, Title: "Euro", Code: "EUR"}, nil).Once()
	suite.mockAuthorizer.On("AuthorizePriceListMutation", ctx, priceListID, requestorID).Return(nil).Once()
	suite.mockCurrencyRepo.On("UpdateCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()
	suite.mockCurrencyRepo.On("RateAt", ctx, currencyID, mock.AnythingOfType("time.Time")).
		Return(&domain.CurrencyRate{CurrencyID: currencyID, Rate: sameRate}, nil).Once()

	currency, err := suite.service.UpdateCurrency(ctx, currencyID, dto.UpdateCurrencyRequest{Rate: &sameRate}, requestorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "AppendRate")
}

func (suite *CurrencyLedgerServiceTestSuite) TestUpdateCurrency_BaseRateCannotMove() {
	ctx := context.Background()
	priceListID := uuid.NewString()
	currencyID := uuid.NewString()
	requestorID := uuid.NewString()
	newRate := decimal.RequireFromString("2.00")

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).
		Return(&domain.Currency{CurrencyID: currencyID, PriceListID: priceListID, Title: "BASE", Code: "BAS", IsBase: true}, nil).Once()
	suite.mockAuthorizer.On("AuthorizePriceListMutation", ctx, priceListID, requestorID).Return(nil).Once()

	currency, err := suite.service.UpdateCurrency(ctx, currencyID, dto.UpdateCurrencyRequest{Rate: &newRate}, requestorID)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrImmutableBaseRate)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "UpdateCurrency")
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "AppendRate")
}

func (suite *CurrencyLedgerServiceTestSuite) TestUpdateCurrency_InvalidRateCommitsNothing() {
	ctx := context.Background()
	priceListID := uuid.NewString()
	currencyID := uuid.NewString()
	requestorID := uuid.NewString()
	newTitle := "Renamed"
	badRate := decimal.RequireFromString("-2")

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).
		Return(&domain.Currency{CurrencyID: currencyID, PriceListID: priceListID, Title: "Euro", Code: "EUR"}, nil).Once()
	suite.mockAuthorizer.On("AuthorizePriceListMutation", ctx, priceListID, requestorID).Return(nil).Once()

	currency, err := suite.service.UpdateCurrency(ctx, currencyID, dto.UpdateCurrencyRequest{Title: &newTitle, Rate: &badRate}, requestorID)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrInvalidRate)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "UpdateCurrency")
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "AppendRate")
}

func (suite *CurrencyLedgerServiceTestSuite) TestUpdateCurrency_BaseRateChangeCommitsNoRename() {
	ctx := context.Background()
	priceListID := uuid.NewString()
	currencyID := uuid.NewString()
	requestorID := uuid.NewString()
	newTitle := "Renamed"
	newRate := decimal.RequireFromString("2.00")

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).
		Return(&domain.Currency{CurrencyID: currencyID, PriceListID: priceListID, Title: "BASE", Code: "BAS", IsBase: true}, nil).Once()
	suite.mockAuthorizer.On("AuthorizePriceListMutation", ctx, priceListID, requestorID).Return(nil).Once()

	currency, err := suite.service.UpdateCurrency(ctx, currencyID, dto.UpdateCurrencyRequest{Title: &newTitle, Rate: &newRate}, requestorID)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrImmutableBaseRate)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "UpdateCurrency")
}

// --- RemoveCurrency ---

func (suite *CurrencyLedgerServiceTestSuite) TestRemoveCurrency_Success() {
	ctx := context.Background()
	priceListID := uuid.NewString()
	currencyID := uuid.NewString()
	requestorID := uuid.NewString()

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).
		Return(&domain.Currency{CurrencyID: currencyID, PriceListID: priceListID, Code: "EUR"}, nil).Once()
	suite.mockAuthorizer.On("AuthorizePriceListMutation", ctx, priceListID, requestorID).Return(nil).Once()
	suite.mockCurrencyRepo.On("DeleteCurrency", ctx, currencyID).Return(nil).Once()

	err := suite.service.RemoveCurrency(ctx, currencyID, requestorID)

	suite.Require().NoError(err)
	suite.Require().Len(suite.emitter.emitted, 1)
	suite.Equal(events.CurrencyRemoved, suite.emitter.emitted[0].Kind)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyLedgerServiceTestSuite) TestRemoveCurrency_BaseRejected() {
	ctx := context.Background()
	priceListID := uuid.NewString()
	currencyID := uuid.NewString()
	requestorID := uuid.NewString()

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).
		Return(&domain.Currency{CurrencyID: currencyID, PriceListID: priceListID, Code: "BAS", IsBase: true}, nil).Once()
	suite.mockAuthorizer.On("AuthorizePriceListMutation", ctx, priceListID, requestorID).Return(nil).Once()

	err := suite.service.RemoveCurrency(ctx, currencyID, requestorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCannotDeleteBaseCurrency)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "DeleteCurrency")
	suite.Empty(suite.emitter.emitted)
}

// --- Run Suite ---
func TestCurrencyLedgerService(t *testing.T) {
	suite.Run(t, new(CurrencyLedgerServiceTestSuite))
}
