package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/printkit/pricelist_backend/internal/core/domain"
	"github.com/printkit/pricelist_backend/internal/core/events"
)

// --- Mock PriceListRepository ---

type MockPriceListRepository struct {
	mock.Mock
}

func (m *MockPriceListRepository) FindPriceListByID(ctx context.Context, priceListID string) (*domain.PriceList, error) {
	args := m.Called(ctx, priceListID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceList), args.Error(1)
}

func (m *MockPriceListRepository) ListPriceLists(ctx context.Context) ([]domain.PriceList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceList), args.Error(1)
}

func (m *MockPriceListRepository) ListPriceListsByOwner(ctx context.Context, ownerUserID string) ([]domain.PriceList, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceList), args.Error(1)
}

func (m *MockPriceListRepository) CreatePriceList(ctx context.Context, list domain.PriceList, base domain.Currency, seed domain.CurrencyRate) error {
	args := m.Called(ctx, list, base, seed)
	return args.Error(0)
}

func (m *MockPriceListRepository) UpdatePriceList(ctx context.Context, list domain.PriceList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockPriceListRepository) DeletePriceList(ctx context.Context, priceListID string) error {
	args := m.Called(ctx, priceListID)
	return args.Error(0)
}

func (m *MockPriceListRepository) SaveMembership(ctx context.Context, membership domain.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockPriceListRepository) FindMembership(ctx context.Context, priceListID, userID string) (*domain.Membership, error) {
	args := m.Called(ctx, priceListID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}

func (m *MockPriceListRepository) ListMemberships(ctx context.Context, priceListID string) ([]domain.Membership, error) {
	args := m.Called(ctx, priceListID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Membership), args.Error(1)
}

func (m *MockPriceListRepository) DeactivateMembership(ctx context.Context, priceListID, userID string) error {
	args := m.Called(ctx, priceListID, userID)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock CurrencyRepository ---

type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, priceListID, code string) (*domain.Currency, error) {
	args := m.Called(ctx, priceListID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindBaseCurrency(ctx context.Context, priceListID string) (*domain.Currency, error) {
	args := m.Called(ctx, priceListID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context, priceListID string) ([]domain.Currency, error) {
	args := m.Called(ctx, priceListID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency, seed *domain.CurrencyRate) error {
	args := m.Called(ctx, currency, seed)
	return args.Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID string) error {
	args := m.Called(ctx, currencyID)
	return args.Error(0)
}

func (m *MockCurrencyRepository) AppendRate(ctx context.Context, rate domain.CurrencyRate) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRepository) RateAt(ctx context.Context, currencyID string, at time.Time) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, currencyID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRepository) ListRates(ctx context.Context, currencyID string) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

// --- Mock CatalogRepository ---

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.CatalogAssignment, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogAssignment), args.Error(1)
}

func (m *MockCatalogRepository) FindAssignment(ctx context.Context, priceListID, productID string) (*domain.CatalogAssignment, error) {
	args := m.Called(ctx, priceListID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogAssignment), args.Error(1)
}

func (m *MockCatalogRepository) ListAssignments(ctx context.Context, priceListID string) ([]domain.CatalogAssignment, error) {
	args := m.Called(ctx, priceListID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogAssignment), args.Error(1)
}

func (m *MockCatalogRepository) SaveAssignment(ctx context.Context, assignment domain.CatalogAssignment, seed *domain.PriceRecord) error {
	args := m.Called(ctx, assignment, seed)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteAssignment(ctx context.Context, assignmentID string) error {
	args := m.Called(ctx, assignmentID)
	return args.Error(0)
}

func (m *MockCatalogRepository) AppendPrice(ctx context.Context, record domain.PriceRecord) (*domain.PriceRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceRecord), args.Error(1)
}

func (m *MockCatalogRepository) PriceAt(ctx context.Context, assignmentID string, at time.Time) (*domain.PriceRecord, error) {
	args := m.Called(ctx, assignmentID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceRecord), args.Error(1)
}

func (m *MockCatalogRepository) ListPrices(ctx context.Context, assignmentID string) ([]domain.PriceRecord, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceRecord), args.Error(1)
}

// --- Mock ProductRepository ---

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListAssignableProducts(ctx context.Context, priceListID, ownerUserID, afterTitle, afterProductID string, limit int) ([]domain.Product, error) {
	args := m.Called(ctx, priceListID, ownerUserID, afterTitle, afterProductID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

// --- Mock Authorizer ---

type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) AuthorizePriceListMutation(ctx context.Context, priceListID, requestorUserID string) error {
	args := m.Called(ctx, priceListID, requestorUserID)
	return args.Error(0)
}

// --- Recording Emitter ---

// recordingEmitter captures emitted events so tests can assert on them.
type recordingEmitter struct {
	emitted []events.Event
}

func (e *recordingEmitter) Emit(_ context.Context, ev events.Event) {
	e.emitted = append(e.emitted, ev)
}
