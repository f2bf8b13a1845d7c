package domain

import "github.com/shopspring/decimal"

// AddonKind вид ценообразования дополнения
type AddonKind string

const (
	// AddonStatic фиксированная цена за позицию
	AddonStatic AddonKind = "static"
	// AddonQuantity цена за единицу (например, за километр дороги)
	AddonQuantity AddonKind = "quantity"
	// AddonRange бесплатный лимит + доплата блоками сверх лимита
	AddonRange AddonKind = "range"
)

// IsValid проверяет, что вид дополнения известен
func (k AddonKind) IsValid() bool {
	switch k {
	case AddonStatic, AddonQuantity, AddonRange:
		return true
	}
	return false
}

// AddonConfig параметры динамических дополнений
// Заполняется только для quantity и range; для static всегда nil
type AddonConfig struct {
	UnitName string // подпись единицы измерения ("km", "godz.")

	// quantity
	PricePerUnit decimal.Decimal

	// range
	IncludedAmount int64 // бесплатный базовый объем
	BlockSize      int64 // размер блока доплаты, > 0
	PricePerBlock  decimal.Decimal
	MaxAmount      int64 // верхняя граница значения, >= IncludedAmount
}

// Addon позиция каталога дополнений
type Addon struct {
	ID        int64
	Name      string
	BasePrice decimal.Decimal
	Kind      AddonKind
	Config    *AddonConfig
	SortOrder int
}

// IsDynamic возвращает true для дополнений с числовым значением
func (a *Addon) IsDynamic() bool {
	return a.Kind == AddonQuantity || a.Kind == AddonRange
}

// ClampValue приводит сырое значение к допустимому диапазону дополнения
// range: [IncludedAmount, MaxAmount]; quantity: >= 0
// Для static и дополнений без конфигурации возвращает 0
func (a *Addon) ClampValue(raw int64) int64 {
	switch a.Kind {
	case AddonQuantity:
		if raw < 0 {
			return 0
		}
		return raw
	case AddonRange:
		if a.Config == nil {
			return 0
		}
		if raw < a.Config.IncludedAmount {
			return a.Config.IncludedAmount
		}
		if a.Config.MaxAmount > 0 && raw > a.Config.MaxAmount {
			return a.Config.MaxAmount
		}
		return raw
	}
	return 0
}
