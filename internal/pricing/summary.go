package pricing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/m04kA/WVG-BookingService/internal/domain"
)

// LineItem строка расшифровки расчета для отображения и заявки
type LineItem struct {
	AddonID  int64           // 0 для строки самого пакета
	Name     string
	Value    *int64          // значение динамического дополнения
	UnitName string          // подпись единицы для динамических дополнений
	Locked   bool
	Amount   decimal.Decimal // вклад строки в итог (может быть отрицательным)
}

// String человекочитаемое представление строки: "Dojazd: 120 km (+500.00)"
func (li LineItem) String() string {
	label := li.Name
	if li.Value != nil {
		label = fmt.Sprintf("%s: %d", li.Name, *li.Value)
		if li.UnitName != "" {
			label += " " + li.UnitName
		}
	}
	switch {
	case li.Amount.IsZero():
		return label
	case li.Amount.IsNegative():
		return fmt.Sprintf("%s (%s)", label, li.Amount.StringFixed(domain.CurrencyScale))
	default:
		return fmt.Sprintf("%s (+%s)", label, li.Amount.StringFixed(domain.CurrencyScale))
	}
}

// BuildLineItems строит расшифровку расчета: строка пакета, затем позиции
// состава в порядке пакета, затем опциональные дополнения по ID
// Суммы строк сходятся с ComputeTotal на тех же входах
func BuildLineItems(pkg *domain.Package, sel Selection, catalog map[int64]*domain.Addon) []LineItem {
	items := make([]LineItem, 0, 1+len(pkg.Included)+len(sel.StaticAddonIDs)+len(sel.DynamicValues))

	items = append(items, LineItem{
		Name:   pkg.Name,
		Amount: pkg.BasePrice.Round(domain.CurrencyScale),
	})

	// Позиции базового состава
	for _, pa := range pkg.Included {
		addon, ok := catalog[pa.AddonID]
		if !ok {
			continue
		}

		item := LineItem{
			AddonID: addon.ID,
			Name:    addon.Name,
			Locked:  pa.Locked,
			Amount:  decimal.Zero,
		}

		if addon.IsDynamic() {
			value, active := sel.DynamicValues[addon.ID]
			if !active {
				if pa.Locked {
					continue
				}
				// Снятая позиция состава с ценой - вычет
				if !addon.BasePrice.IsZero() {
					item.Name = addon.Name + " (rezygnacja)"
					item.Amount = addon.BasePrice.Neg().Round(domain.CurrencyScale)
					items = append(items, item)
				}
				continue
			}
			item.Value = &value
			if addon.Config != nil {
				item.UnitName = addon.Config.UnitName
			}
			item.Amount = dynamicContribution(addon, value).Round(domain.CurrencyScale)
			items = append(items, item)
			continue
		}

		if _, active := sel.StaticAddonIDs[addon.ID]; !active && !pa.Locked {
			if !addon.BasePrice.IsZero() {
				item.Name = addon.Name + " (rezygnacja)"
				item.Amount = addon.BasePrice.Neg().Round(domain.CurrencyScale)
				items = append(items, item)
			}
			continue
		}
		items = append(items, item)
	}

	// Опциональные static-дополнения, отсортированные по ID для детерминизма
	optionalStatic := make([]int64, 0, len(sel.StaticAddonIDs))
	for id := range sel.StaticAddonIDs {
		if !pkg.Includes(id) {
			optionalStatic = append(optionalStatic, id)
		}
	}
	sort.Slice(optionalStatic, func(i, j int) bool { return optionalStatic[i] < optionalStatic[j] })

	for _, id := range optionalStatic {
		addon, ok := catalog[id]
		if !ok || addon.Kind != domain.AddonStatic {
			continue
		}
		items = append(items, LineItem{
			AddonID: addon.ID,
			Name:    addon.Name,
			Amount:  addon.BasePrice.Round(domain.CurrencyScale),
		})
	}

	// Опциональные динамические дополнения
	optionalDynamic := make([]int64, 0, len(sel.DynamicValues))
	for id := range sel.DynamicValues {
		if !pkg.Includes(id) {
			optionalDynamic = append(optionalDynamic, id)
		}
	}
	sort.Slice(optionalDynamic, func(i, j int) bool { return optionalDynamic[i] < optionalDynamic[j] })

	for _, id := range optionalDynamic {
		addon, ok := catalog[id]
		if !ok || !addon.IsDynamic() {
			continue
		}
		value := sel.DynamicValues[id]
		item := LineItem{
			AddonID: addon.ID,
			Name:    addon.Name,
			Value:   &value,
			Amount:  dynamicContribution(addon, value).Round(domain.CurrencyScale),
		}
		if addon.Config != nil {
			item.UnitName = addon.Config.UnitName
		}
		items = append(items, item)
	}

	return items
}

// SummaryStrings сериализует расшифровку в строки для заявки на бронирование
func SummaryStrings(items []LineItem) []string {
	result := make([]string, len(items))
	for i, item := range items {
		result[i] = item.String()
	}
	return result
}
