package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WVG-BookingService/internal/domain"
	discountstore "github.com/m04kA/WVG-BookingService/internal/infra/storage/discount"
	"github.com/m04kA/WVG-BookingService/internal/integrations/clientservice"
	"github.com/m04kA/WVG-BookingService/pkg/ptr"
)

type mockCatalogRepo struct {
	catalog *domain.Catalog
	err     error
}

func (m *mockCatalogRepo) GetCatalog(_ context.Context) (*domain.Catalog, error) {
	return m.catalog, m.err
}

type mockBookingRepo struct {
	created *domain.Booking
	err     error
}

func (m *mockBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	stored := *booking
	stored.ID = 42
	stored.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	m.created = &stored
	return &stored, nil
}

type mockDiscountValidator struct {
	discount *domain.Discount
	err      error
}

func (m *mockDiscountValidator) Validate(_ context.Context, _ string) (*domain.Discount, error) {
	return m.discount, m.err
}

type mockDiscountRepo struct {
	incremented []string
	err         error
}

func (m *mockDiscountRepo) IncrementUsage(_ context.Context, code string) error {
	if m.err != nil {
		return m.err
	}
	m.incremented = append(m.incremented, code)
	return nil
}

type mockClientService struct {
	client *clientservice.Client
	err    error
}

func (m *mockClientService) RegisterClientWithGracefulDegradation(_ context.Context, _ *clientservice.RegisterClientRequest) (*clientservice.Client, error) {
	return m.client, m.err
}

type mockTxManager struct{}

func (mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Packages: []*domain.Package{
			{
				ID:            10,
				Name:          "Pakiet Standard",
				BasePrice:     decimal.NewFromInt(4500),
				DepositAmount: decimal.NewFromInt(500),
				Included: []domain.PackageAddon{
					{AddonID: 3, Locked: true},
				},
			},
		},
		Addons: []*domain.Addon{
			{ID: 3, Name: "Dojazd", Kind: domain.AddonRange, Config: &domain.AddonConfig{
				UnitName:       "km",
				IncludedAmount: 10,
				BlockSize:      5,
				PricePerBlock:  decimal.NewFromInt(100),
				MaxAmount:      100,
			}},
			{ID: 5, Name: "Teledysk ślubny", Kind: domain.AddonStatic, BasePrice: decimal.NewFromInt(400)},
		},
	}
}

type fixture struct {
	catalogRepo       *mockCatalogRepo
	bookingRepo       *mockBookingRepo
	discountValidator *mockDiscountValidator
	discountRepo      *mockDiscountRepo
	clientService     *mockClientService
	timeProvider      *fixedTimeProvider
}

func newFixture() *fixture {
	return &fixture{
		catalogRepo:       &mockCatalogRepo{catalog: testCatalog()},
		bookingRepo:       &mockBookingRepo{},
		discountValidator: &mockDiscountValidator{},
		discountRepo:      &mockDiscountRepo{},
		clientService:     &mockClientService{client: &clientservice.Client{ID: "client-123"}},
		timeProvider:      &fixedTimeProvider{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
	}
}

func (f *fixture) useCase() *UseCase {
	return NewUseCase(
		f.catalogRepo,
		f.bookingRepo,
		f.discountValidator,
		f.discountRepo,
		f.clientService,
		mockTxManager{},
		f.timeProvider,
		nopLogger{},
	)
}

func validRequest() *Request {
	return &Request{
		PackageID:    10,
		EventDate:    time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
		ContactName:  "Anna Kowalska",
		ContactEmail: "anna@example.com",
		ContactPhone: "+48 600 100 200",
	}
}

func TestExecute_CreatesBookingWithServerPrice(t *testing.T) {
	f := newFixture()
	uc := f.useCase()

	req := validRequest()
	req.StaticAddonIDs = []int64{5}
	req.DynamicValues = map[int64]int64{3: 23}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.EqualValues(t, 42, resp.ID)
	assert.Equal(t, "client-123", resp.ClientID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	// 4500 + 400 (teledysk) + 3 блока дороги по 100
	assert.Equal(t, "5200.00", resp.TotalPrice.StringFixed(2))
	assert.Equal(t, "5200.00", resp.FinalPrice.StringFixed(2))
	assert.NotEmpty(t, resp.SelectionSummary)
	assert.Empty(t, f.discountRepo.incremented)
}

func TestExecute_DiscountAppliedAndCounted(t *testing.T) {
	f := newFixture()
	f.discountValidator.discount = &domain.Discount{
		Code:   "WIOSNA10",
		Kind:   domain.DiscountPercentage,
		Value:  decimal.NewFromInt(10),
		Active: true,
	}
	uc := f.useCase()

	req := validRequest()
	req.DiscountCode = ptr.Ptr("WIOSNA10")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "4500.00", resp.TotalPrice.StringFixed(2))
	assert.Equal(t, "4050.00", resp.FinalPrice.StringFixed(2))
	require.NotNil(t, resp.DiscountCode)
	assert.Equal(t, "WIOSNA10", *resp.DiscountCode)
	assert.Equal(t, []string{"WIOSNA10"}, f.discountRepo.incremented)
}

func TestExecute_DiscountExhaustedDuringCheckout(t *testing.T) {
	f := newFixture()
	f.discountValidator.discount = &domain.Discount{
		Code:   "LIMIT1",
		Kind:   domain.DiscountFixed,
		Value:  decimal.NewFromInt(500),
		Active: true,
	}
	// Конкурентное оформление съело последний слот между Validate и транзакцией
	f.discountRepo.err = discountstore.ErrUsageLimitReached
	uc := f.useCase()

	req := validRequest()
	req.DiscountCode = ptr.Ptr("LIMIT1")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrDiscountNotUsable)
	assert.Nil(t, f.bookingRepo.created)
}

func TestExecute_GracefulDegradationGeneratesLocalClientID(t *testing.T) {
	f := newFixture()
	f.clientService.client = nil
	f.clientService.err = clientservice.ErrServiceDegraded
	uc := f.useCase()

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ClientID)
	assert.NotEqual(t, "client-123", resp.ClientID)
}

func TestExecute_EventDateInPast(t *testing.T) {
	f := newFixture()
	uc := f.useCase()

	req := validRequest()
	req.EventDate = time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_EventDateToday(t *testing.T) {
	f := newFixture()
	uc := f.useCase()

	req := validRequest()
	req.EventDate = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestExecute_MissingContactName(t *testing.T) {
	f := newFixture()
	uc := f.useCase()

	req := validRequest()
	req.ContactName = "   "

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MalformedEmail(t *testing.T) {
	f := newFixture()
	uc := f.useCase()

	req := validRequest()
	req.ContactEmail = "not-an-email"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PackageNotFound(t *testing.T) {
	f := newFixture()
	uc := f.useCase()

	req := validRequest()
	req.PackageID = 777

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrPackageNotFound)
}
