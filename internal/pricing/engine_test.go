package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WVG-BookingService/internal/domain"
)

// Тестовый каталог:
//  1 - locked static в составе пакета (монтаж)
//  2 - static в составе пакета, не locked, цена 400 (можно снять)
//  3 - locked range в составе (дорога: 10 бесплатно, блок 5 по 100, максимум 100)
//  4 - опциональный quantity (доп. часы по 50)
//  5 - опциональный static за 400
//  6 - опциональный quantity без конфигурации (ошибка каталога)
func testCatalog() map[int64]*domain.Addon {
	addons := []*domain.Addon{
		{ID: 1, Name: "Montaż filmu", Kind: domain.AddonStatic, BasePrice: decimal.Zero},
		{ID: 2, Name: "Drugi operator", Kind: domain.AddonStatic, BasePrice: decimal.NewFromInt(400)},
		{ID: 3, Name: "Dojazd", Kind: domain.AddonRange, BasePrice: decimal.Zero, Config: &domain.AddonConfig{
			UnitName:       "km",
			IncludedAmount: 10,
			BlockSize:      5,
			PricePerBlock:  decimal.NewFromInt(100),
			MaxAmount:      100,
		}},
		{ID: 4, Name: "Dodatkowe godziny", Kind: domain.AddonQuantity, BasePrice: decimal.Zero, Config: &domain.AddonConfig{
			UnitName:     "godz.",
			PricePerUnit: decimal.NewFromInt(50),
		}},
		{ID: 5, Name: "Teledysk ślubny", Kind: domain.AddonStatic, BasePrice: decimal.NewFromInt(400)},
		{ID: 6, Name: "Uszkodzony dodatek", Kind: domain.AddonQuantity, BasePrice: decimal.Zero, Config: nil},
	}

	index := make(map[int64]*domain.Addon, len(addons))
	for _, a := range addons {
		index[a.ID] = a
	}
	return index
}

func testPackage(basePrice int64) *domain.Package {
	return &domain.Package{
		ID:        10,
		Name:      "Pakiet Standard",
		BasePrice: decimal.NewFromInt(basePrice),
		Included: []domain.PackageAddon{
			{AddonID: 1, Locked: true},
			{AddonID: 2, Locked: false},
			{AddonID: 3, Locked: true},
		},
	}
}

func TestComputeTotal_BaseCase(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(3200)
	sel := NewSelection(pkg, catalog)

	total := ComputeTotal(pkg, sel, catalog)

	assert.Equal(t, "3200.00", total.StringFixed(2))
}

func TestComputeTotal_StaticAddonAdditive(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(4500)
	sel := NewSelection(pkg, catalog)

	// Дополнение вне состава добавляет свою цену
	sel.ToggleStatic(5, pkg, catalog)
	assert.Equal(t, "4900.00", ComputeTotal(pkg, sel, catalog).StringFixed(2))

	// Снятие возвращает базовую цену
	sel.ToggleStatic(5, pkg, catalog)
	assert.Equal(t, "4500.00", ComputeTotal(pkg, sel, catalog).StringFixed(2))
}

func TestComputeTotal_IncludedStaticAddsNothing(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(4500)
	sel := NewSelection(pkg, catalog)

	// Позиция состава уже оплачена базовой ценой
	require.Contains(t, sel.StaticAddonIDs, int64(2))
	assert.Equal(t, "4500.00", ComputeTotal(pkg, sel, catalog).StringFixed(2))
}

func TestComputeTotal_DeselectedIncludedItemDeducted(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(4500)
	sel := NewSelection(pkg, catalog)

	// Отказ от не-locked позиции состава с ценой 400
	sel.ToggleStatic(2, pkg, catalog)
	assert.Equal(t, "4100.00", ComputeTotal(pkg, sel, catalog).StringFixed(2))
}

func TestComputeTotal_QuantityAddon(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(3000)
	sel := NewSelection(pkg, catalog)

	sel.SetDynamicValue(4, 3, catalog)
	assert.Equal(t, "3150.00", ComputeTotal(pkg, sel, catalog).StringFixed(2))

	sel.SetDynamicValue(4, 0, catalog)
	assert.Equal(t, "3000.00", ComputeTotal(pkg, sel, catalog).StringFixed(2))
}

func TestComputeTotal_RangeWithinAllowance(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(3000)
	sel := NewSelection(pkg, catalog)

	// 8 клампится вверх до бесплатного лимита 10 - вклада нет
	sel.SetDynamicValue(3, 8, catalog)
	assert.EqualValues(t, 10, sel.DynamicValues[3])
	assert.Equal(t, "3000.00", ComputeTotal(pkg, sel, catalog).StringFixed(2))

	sel.SetDynamicValue(3, 10, catalog)
	assert.Equal(t, "3000.00", ComputeTotal(pkg, sel, catalog).StringFixed(2))
}

func TestComputeTotal_RangeOverAllowance(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(3000)
	sel := NewSelection(pkg, catalog)

	// extra = 13, блоки по 5 -> ceil(13/5) = 3 блока по 100
	sel.SetDynamicValue(3, 23, catalog)
	assert.Equal(t, "3300.00", ComputeTotal(pkg, sel, catalog).StringFixed(2))
}

func TestComputeTotal_LockedRangeStillBillsOverage(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(3000)
	sel := NewSelection(pkg, catalog)

	// Дополнение 3 locked: снять нельзя, но доплата сверх лимита считается
	require.True(t, pkg.IsLocked(3))
	sel.SetDynamicValue(3, 15, catalog)
	assert.Equal(t, "3100.00", ComputeTotal(pkg, sel, catalog).StringFixed(2))
}

func TestComputeTotal_UnknownAddonSkipped(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(3000)
	sel := NewSelection(pkg, catalog)

	// Неизвестные ID в выборе не роняют расчет
	sel.StaticAddonIDs[999] = struct{}{}
	sel.DynamicValues[998] = 50
	assert.Equal(t, "3000.00", ComputeTotal(pkg, sel, catalog).StringFixed(2))
}

func TestComputeTotal_MissingConfigContributesZero(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(3000)
	sel := NewSelection(pkg, catalog)

	// Динамическое дополнение без конфигурации - нулевой вклад
	sel.DynamicValues[6] = 7
	assert.Equal(t, "3000.00", ComputeTotal(pkg, sel, catalog).StringFixed(2))
}

func TestComputeTotal_NeverNegative(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(0)
	// Пакет с нулевой базой и снятой платной позицией состава
	sel := NewSelection(pkg, catalog)
	sel.ToggleStatic(2, pkg, catalog)

	total := ComputeTotal(pkg, sel, catalog)
	assert.False(t, total.IsNegative())
	assert.Equal(t, "0.00", total.StringFixed(2))
}

func TestComputeTotal_Deterministic(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(4500)
	sel := NewSelection(pkg, catalog)
	sel.ToggleStatic(5, pkg, catalog)
	sel.SetDynamicValue(3, 37, catalog)
	sel.SetDynamicValue(4, 2, catalog)

	first := ComputeTotal(pkg, sel, catalog)
	second := ComputeTotal(pkg, sel, catalog)

	// Побитово одинаковый результат на одинаковых входах
	assert.True(t, first.Equal(second))
	assert.Equal(t, first.String(), second.String())
}

func TestComputeTotal_Rounding(t *testing.T) {
	catalog := map[int64]*domain.Addon{
		7: {ID: 7, Name: "Konsultacja", Kind: domain.AddonQuantity, Config: &domain.AddonConfig{
			UnitName:     "godz.",
			PricePerUnit: decimal.RequireFromString("33.335"),
		}},
	}
	pkg := &domain.Package{ID: 1, Name: "Mini", BasePrice: decimal.Zero}
	sel := Selection{StaticAddonIDs: map[int64]struct{}{}, DynamicValues: map[int64]int64{7: 1}}

	// 33.335 округляется half-up до 33.34
	assert.Equal(t, "33.34", ComputeTotal(pkg, sel, catalog).StringFixed(2))
}
