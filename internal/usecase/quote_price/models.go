package quote_price

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/WVG-BookingService/internal/domain"
	"github.com/m04kA/WVG-BookingService/internal/pricing"
)

// Request модель запроса на расчет цены
// Выбор приходит сырым состоянием калькулятора; сервер клампит значения
// и пересчитывает итог от авторитетного снапшота каталога
type Request struct {
	PackageID      int64           // ID пакета
	StaticAddonIDs []int64         // Включенные static-дополнения
	DynamicValues  map[int64]int64 // Значения quantity/range дополнений
	DiscountCode   *string         // Промокод (опционально)
}

// Response модель ответа с расчетом
type Response struct {
	PackageID     int64
	PackageName   string
	TotalPrice    decimal.Decimal    // до скидки
	FinalPrice    decimal.Decimal    // после скидки
	DepositAmount decimal.Decimal    // информационно
	Discount      *domain.Discount   // примененная скидка (nil, если нет)
	LineItems     []pricing.LineItem // расшифровка расчета
}
