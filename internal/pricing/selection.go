package pricing

import "github.com/m04kA/WVG-BookingService/internal/domain"

// Selection состояние выбора клиента в калькуляторе пакета
// Принадлежит вызывающей стороне (сессии), движок его не хранит
//
// StaticAddonIDs: включенные static-дополнения. Базовые позиции пакета
// (не locked) изначально присутствуют в наборе; их снятие означает отказ
// от позиции базового состава.
// DynamicValues: значения активных quantity/range дополнений.
type Selection struct {
	StaticAddonIDs map[int64]struct{}
	DynamicValues  map[int64]int64
}

// NewSelection строит стартовое состояние выбора для пакета:
// - все static-позиции базового состава отмечены выбранными
// - range-позиции состава получают значение IncludedAmount
// - quantity-позиции состава получают значение 0
func NewSelection(pkg *domain.Package, catalog map[int64]*domain.Addon) Selection {
	sel := Selection{
		StaticAddonIDs: make(map[int64]struct{}),
		DynamicValues:  make(map[int64]int64),
	}

	for _, pa := range pkg.Included {
		addon, ok := catalog[pa.AddonID]
		if !ok {
			// Ошибка наполнения каталога: состав ссылается на несуществующее
			// дополнение. Пропускаем, расчет не должен падать.
			continue
		}

		switch addon.Kind {
		case domain.AddonStatic:
			sel.StaticAddonIDs[addon.ID] = struct{}{}
		case domain.AddonQuantity, domain.AddonRange:
			sel.DynamicValues[addon.ID] = addon.ClampValue(0)
		}
	}

	return sel
}

// ToggleStatic переключает static-дополнение
// Для locked-позиций, динамических и неизвестных дополнений - no-op
func (s Selection) ToggleStatic(addonID int64, pkg *domain.Package, catalog map[int64]*domain.Addon) {
	addon, ok := catalog[addonID]
	if !ok || addon.Kind != domain.AddonStatic {
		return
	}
	if pkg.IsLocked(addonID) {
		return
	}

	if _, selected := s.StaticAddonIDs[addonID]; selected {
		delete(s.StaticAddonIDs, addonID)
	} else {
		s.StaticAddonIDs[addonID] = struct{}{}
	}
}

// SetDynamicValue записывает значение quantity/range дополнения
// Значение клампится при каждой записи: range в [IncludedAmount, MaxAmount],
// quantity в >= 0. Для static и неизвестных дополнений - no-op.
func (s Selection) SetDynamicValue(addonID int64, raw int64, catalog map[int64]*domain.Addon) {
	addon, ok := catalog[addonID]
	if !ok || !addon.IsDynamic() {
		return
	}
	s.DynamicValues[addonID] = addon.ClampValue(raw)
}

// RemoveDynamic убирает опциональное динамическое дополнение из выбора
// Позиции базового состава пакета убрать нельзя (их отказ - отдельная
// операция, locked-позиции не убираются никогда)
func (s Selection) RemoveDynamic(addonID int64, pkg *domain.Package) {
	if pkg.Includes(addonID) {
		return
	}
	delete(s.DynamicValues, addonID)
}

// NewSelectionFromRaw восстанавливает состояние выбора из сырых данных запроса
// Все значения клампятся, неизвестные ID пропускаются, locked-позиции
// добавляются принудительно. Используется на сервере: клиентскому состоянию
// не доверяем, пересчитываем от авторитетного снапшота.
func NewSelectionFromRaw(
	pkg *domain.Package,
	staticIDs []int64,
	dynamicValues map[int64]int64,
	catalog map[int64]*domain.Addon,
) Selection {
	sel := Selection{
		StaticAddonIDs: make(map[int64]struct{}),
		DynamicValues:  make(map[int64]int64),
	}

	for _, id := range staticIDs {
		addon, ok := catalog[id]
		if !ok || addon.Kind != domain.AddonStatic {
			continue
		}
		sel.StaticAddonIDs[id] = struct{}{}
	}

	for id, raw := range dynamicValues {
		sel.SetDynamicValue(id, raw, catalog)
	}

	// Locked-позиции состава всегда выбраны, что бы ни прислал клиент
	for _, pa := range pkg.Included {
		if !pa.Locked {
			continue
		}
		addon, ok := catalog[pa.AddonID]
		if !ok {
			continue
		}
		switch addon.Kind {
		case domain.AddonStatic:
			sel.StaticAddonIDs[addon.ID] = struct{}{}
		case domain.AddonQuantity, domain.AddonRange:
			if _, present := sel.DynamicValues[addon.ID]; !present {
				sel.DynamicValues[addon.ID] = addon.ClampValue(0)
			}
		}
	}

	return sel
}
