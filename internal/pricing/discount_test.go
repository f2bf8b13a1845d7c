package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/WVG-BookingService/internal/domain"
)

func TestApplyDiscount_Nil(t *testing.T) {
	total := decimal.NewFromInt(4500)
	assert.True(t, total.Equal(ApplyDiscount(total, nil)))
}

func TestApplyDiscount_Percentage(t *testing.T) {
	discount := &domain.Discount{
		Code:  "WESELE10",
		Kind:  domain.DiscountPercentage,
		Value: decimal.NewFromInt(10),
	}

	result := ApplyDiscount(decimal.NewFromInt(4500), discount)
	assert.Equal(t, "4050.00", result.StringFixed(2))
}

func TestApplyDiscount_PercentageRounding(t *testing.T) {
	discount := &domain.Discount{
		Code:  "TRZY",
		Kind:  domain.DiscountPercentage,
		Value: decimal.NewFromInt(3),
	}

	// 3333 * 0.97 = 3233.01
	result := ApplyDiscount(decimal.NewFromInt(3333), discount)
	assert.Equal(t, "3233.01", result.StringFixed(2))
}

func TestApplyDiscount_Fixed(t *testing.T) {
	discount := &domain.Discount{
		Code:  "MINUS500",
		Kind:  domain.DiscountFixed,
		Value: decimal.NewFromInt(500),
	}

	result := ApplyDiscount(decimal.NewFromInt(4500), discount)
	assert.Equal(t, "4000.00", result.StringFixed(2))
}

func TestApplyDiscount_FixedNeverNegative(t *testing.T) {
	discount := &domain.Discount{
		Code:  "MINUS500",
		Kind:  domain.DiscountFixed,
		Value: decimal.NewFromInt(500),
	}

	// Скидка больше итога - цена клампится в ноль
	result := ApplyDiscount(decimal.NewFromInt(300), discount)
	assert.Equal(t, "0.00", result.StringFixed(2))
}

func TestApplyDiscount_UnknownKindIgnored(t *testing.T) {
	discount := &domain.Discount{
		Code:  "DZIWNY",
		Kind:  domain.DiscountKind("loyalty"),
		Value: decimal.NewFromInt(100),
	}

	total := decimal.NewFromInt(4500)
	assert.True(t, total.Equal(ApplyDiscount(total, discount)))
}
