package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/WVG-BookingService/internal/domain"
)

// ComputeTotal считает итоговую цену пакета с учетом выбора клиента
//
// Алгоритм:
//  1. total = базовая цена пакета
//  2. выбранные static-дополнения вне состава пакета добавляют BasePrice;
//     позиции состава ничего не добавляют - они уже оплачены базовой ценой
//  3. снятая позиция базового состава (не locked, с ненулевой ценой)
//     вычитается из базовой цены
//  4. quantity: value * PricePerUnit
//     range: сверх бесплатного лимита доплата полными блоками,
//     ceil(extra / BlockSize) * PricePerBlock; неполный блок = полный
//     locked не ограничивает доплату сверх лимита, он запрещает только снятие
//  5. результат >= 0, округление до минорной единицы валюты (half-up)
//
// Функция чистая: никакого состояния вне аргументов, одинаковые входы
// дают побитово одинаковый результат. Неизвестные ID пропускаются,
// отсутствующий Config у динамического дополнения дает нулевой вклад -
// ошибка наполнения каталога не должна ронять расчет цены.
func ComputeTotal(pkg *domain.Package, sel Selection, catalog map[int64]*domain.Addon) decimal.Decimal {
	total := pkg.BasePrice

	// Static-дополнения вне состава пакета
	for id := range sel.StaticAddonIDs {
		addon, ok := catalog[id]
		if !ok || addon.Kind != domain.AddonStatic {
			continue
		}
		if pkg.Includes(id) {
			continue
		}
		total = total.Add(addon.BasePrice)
	}

	// Отказ от позиций базового состава
	for _, pa := range pkg.Included {
		if pa.Locked {
			continue
		}
		addon, ok := catalog[pa.AddonID]
		if !ok || addon.BasePrice.IsZero() {
			continue
		}
		if !isIncludedItemActive(addon, sel) {
			total = total.Sub(addon.BasePrice)
		}
	}

	// Динамические дополнения
	for id, value := range sel.DynamicValues {
		addon, ok := catalog[id]
		if !ok {
			continue
		}
		total = total.Add(dynamicContribution(addon, value))
	}

	if total.IsNegative() {
		total = decimal.Zero
	}
	return total.Round(domain.CurrencyScale)
}

// dynamicContribution считает вклад одного динамического дополнения
func dynamicContribution(addon *domain.Addon, value int64) decimal.Decimal {
	if addon.Config == nil {
		// Каталог без конфигурации динамического дополнения - вклад нулевой
		return decimal.Zero
	}

	switch addon.Kind {
	case domain.AddonQuantity:
		if value <= 0 {
			return decimal.Zero
		}
		return addon.Config.PricePerUnit.Mul(decimal.NewFromInt(value))

	case domain.AddonRange:
		extra := value - addon.Config.IncludedAmount
		if extra <= 0 || addon.Config.BlockSize <= 0 {
			return decimal.Zero
		}
		blocks := (extra + addon.Config.BlockSize - 1) / addon.Config.BlockSize
		return addon.Config.PricePerBlock.Mul(decimal.NewFromInt(blocks))

	case domain.AddonStatic:
		return decimal.Zero
	}

	return decimal.Zero
}

// isIncludedItemActive проверяет, оставил ли клиент позицию базового состава
func isIncludedItemActive(addon *domain.Addon, sel Selection) bool {
	switch addon.Kind {
	case domain.AddonStatic:
		_, ok := sel.StaticAddonIDs[addon.ID]
		return ok
	case domain.AddonQuantity, domain.AddonRange:
		_, ok := sel.DynamicValues[addon.ID]
		return ok
	}
	return true
}
