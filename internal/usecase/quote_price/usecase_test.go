package quote_price

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WVG-BookingService/internal/domain"
	discountsSvc "github.com/m04kA/WVG-BookingService/internal/service/discounts"
	"github.com/m04kA/WVG-BookingService/pkg/ptr"
)

type mockCatalogRepo struct {
	catalog *domain.Catalog
	err     error
}

func (m *mockCatalogRepo) GetCatalog(_ context.Context) (*domain.Catalog, error) {
	return m.catalog, m.err
}

type mockDiscountValidator struct {
	discount *domain.Discount
	err      error
}

func (m *mockDiscountValidator) Validate(_ context.Context, _ string) (*domain.Discount, error) {
	return m.discount, m.err
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
					{AddonID: 1, Locked: true},
					{AddonID: 3, Locked: true},
				},
			},
		},
		Addons: []*domain.Addon{
			{ID: 1, Name: "Montaż filmu", Kind: domain.AddonStatic, BasePrice: decimal.Zero},
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

func TestExecute_BasePackage(t *testing.T) {
	uc := NewUseCase(&mockCatalogRepo{catalog: testCatalog()}, &mockDiscountValidator{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PackageID: 10})

	require.NoError(t, err)
	assert.Equal(t, "4500.00", resp.TotalPrice.StringFixed(2))
	assert.Equal(t, "4500.00", resp.FinalPrice.StringFixed(2))
	assert.Equal(t, "500.00", resp.DepositAmount.StringFixed(2))
	assert.Nil(t, resp.Discount)
	assert.NotEmpty(t, resp.LineItems)
}

func TestExecute_SelectionRecomputedOnServer(t *testing.T) {
	uc := NewUseCase(&mockCatalogRepo{catalog: testCatalog()}, &mockDiscountValidator{}, nopLogger{})

	// 23 км: 13 сверх лимита, 3 блока по 100; плюс опциональный teledysk
	resp, err := uc.Execute(context.Background(), &Request{
		PackageID:      10,
		StaticAddonIDs: []int64{5},
		DynamicValues:  map[int64]int64{3: 23},
	})

	require.NoError(t, err)
	assert.Equal(t, "5200.00", resp.TotalPrice.StringFixed(2))
}

func TestExecute_WithPercentageDiscount(t *testing.T) {
	discount := &domain.Discount{Code: "WIOSNA10", Kind: domain.DiscountPercentage, Value: decimal.NewFromInt(10), Active: true}
	uc := NewUseCase(&mockCatalogRepo{catalog: testCatalog()}, &mockDiscountValidator{discount: discount}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PackageID: 10, DiscountCode: ptr.Ptr("WIOSNA10")})

	require.NoError(t, err)
	assert.Equal(t, "4500.00", resp.TotalPrice.StringFixed(2))
	assert.Equal(t, "4050.00", resp.FinalPrice.StringFixed(2))
	require.NotNil(t, resp.Discount)
	assert.Equal(t, "WIOSNA10", resp.Discount.Code)
}

func TestExecute_PackageNotFound(t *testing.T) {
	uc := NewUseCase(&mockCatalogRepo{catalog: testCatalog()}, &mockDiscountValidator{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{PackageID: 777})

	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestExecute_InvalidPackageID(t *testing.T) {
	uc := NewUseCase(&mockCatalogRepo{catalog: testCatalog()}, &mockDiscountValidator{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{PackageID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DiscountNotFound(t *testing.T) {
	uc := NewUseCase(
		&mockCatalogRepo{catalog: testCatalog()},
		&mockDiscountValidator{err: discountsSvc.ErrDiscountNotFound},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{PackageID: 10, DiscountCode: ptr.Ptr("NIEMA")})

	assert.ErrorIs(t, err, ErrDiscountNotFound)
}

func TestExecute_DiscountExpired(t *testing.T) {
	uc := NewUseCase(
		&mockCatalogRepo{catalog: testCatalog()},
		&mockDiscountValidator{err: discountsSvc.ErrDiscountExpired},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{PackageID: 10, DiscountCode: ptr.Ptr("ZIMA23")})

	assert.ErrorIs(t, err, ErrDiscountNotUsable)
}

func TestExecute_CatalogLoadFailure(t *testing.T) {
	uc := NewUseCase(&mockCatalogRepo{err: errors.New("connection refused")}, &mockDiscountValidator{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{PackageID: 10})

	assert.ErrorIs(t, err, ErrInternal)
}
