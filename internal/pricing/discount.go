package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/WVG-BookingService/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// ApplyDiscount применяет подтвержденную скидку к посчитанной цене
// Отдельный композируемый шаг после ComputeTotal. Валидность промокода
// проверяет сервис скидок; сюда попадает только подтвержденный Kind/Value
// или nil, если скидки нет.
//
// percentage: total * (1 - value/100)
// fixed: total - value
// Результат не опускается ниже нуля и округляется до минорной единицы.
func ApplyDiscount(total decimal.Decimal, discount *domain.Discount) decimal.Decimal {
	if discount == nil {
		return total
	}

	var result decimal.Decimal
	switch discount.Kind {
	case domain.DiscountPercentage:
		result = total.Mul(hundred.Sub(discount.Value)).Div(hundred)
	case domain.DiscountFixed:
		result = total.Sub(discount.Value)
	default:
		// Неизвестный вид скидки - не применяем
		return total
	}

	if result.IsNegative() {
		result = decimal.Zero
	}
	return result.Round(domain.CurrencyScale)
}
