package discounts

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WVG-BookingService/internal/domain"
	discountRepo "github.com/m04kA/WVG-BookingService/internal/infra/storage/discount"
	"github.com/m04kA/WVG-BookingService/pkg/ptr"
)

type mockDiscountRepo struct {
	discount *domain.Discount
	err      error
}

func (m *mockDiscountRepo) GetByCode(_ context.Context, _ string) (*domain.Discount, error) {
	return m.discount, m.err
}

type stubTimeProvider struct {
	now time.Time
}

func (p *stubTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(repo *mockDiscountRepo, now time.Time) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &stubTimeProvider{now: now}
	return svc
}

func activeDiscount() *domain.Discount {
	return &domain.Discount{
		Code:   "WIOSNA10",
		Kind:   domain.DiscountPercentage,
		Value:  decimal.NewFromInt(10),
		Active: true,
	}
}

func TestValidate_ActiveDiscount(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newService(&mockDiscountRepo{discount: activeDiscount()}, now)

	d, err := svc.Validate(context.Background(), "WIOSNA10")

	require.NoError(t, err)
	assert.Equal(t, "WIOSNA10", d.Code)
	assert.Equal(t, domain.DiscountPercentage, d.Kind)
}

func TestValidate_EmptyCode(t *testing.T) {
	svc := newService(&mockDiscountRepo{}, time.Now())

	_, err := svc.Validate(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidate_TooLongCode(t *testing.T) {
	svc := newService(&mockDiscountRepo{}, time.Now())

	_, err := svc.Validate(context.Background(), strings.Repeat("X", domain.MaxDiscountCodeLength+1))

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidate_NotFound(t *testing.T) {
	svc := newService(&mockDiscountRepo{err: discountRepo.ErrDiscountNotFound}, time.Now())

	_, err := svc.Validate(context.Background(), "NIEMA")

	assert.ErrorIs(t, err, ErrDiscountNotFound)
}

func TestValidate_Inactive(t *testing.T) {
	d := activeDiscount()
	d.Active = false
	svc := newService(&mockDiscountRepo{discount: d}, time.Now())

	_, err := svc.Validate(context.Background(), "WIOSNA10")

	assert.ErrorIs(t, err, ErrDiscountInactive)
}

func TestValidate_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	expiresAt := now.Add(-24 * time.Hour)
	d := activeDiscount()
	d.ExpiresAt = &expiresAt
	svc := newService(&mockDiscountRepo{discount: d}, now)

	_, err := svc.Validate(context.Background(), "WIOSNA10")

	assert.ErrorIs(t, err, ErrDiscountExpired)
}

func TestValidate_NotYetExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	expiresAt := now.Add(24 * time.Hour)
	d := activeDiscount()
	d.ExpiresAt = &expiresAt
	svc := newService(&mockDiscountRepo{discount: d}, now)

	_, err := svc.Validate(context.Background(), "WIOSNA10")

	assert.NoError(t, err)
}

func TestValidate_Exhausted(t *testing.T) {
	d := activeDiscount()
	d.MaxUses = ptr.Ptr(int64(50))
	d.UsedCount = 50
	svc := newService(&mockDiscountRepo{discount: d}, time.Now())

	_, err := svc.Validate(context.Background(), "WIOSNA10")

	assert.ErrorIs(t, err, ErrDiscountExhausted)
}

func TestValidate_RepositoryError(t *testing.T) {
	svc := newService(&mockDiscountRepo{err: errors.New("connection refused")}, time.Now())

	_, err := svc.Validate(context.Background(), "WIOSNA10")

	assert.ErrorIs(t, err, ErrInternal)
}
