package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelection_PrepopulatesIncludedItems(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(3000)

	sel := NewSelection(pkg, catalog)

	assert.Contains(t, sel.StaticAddonIDs, int64(1))
	assert.Contains(t, sel.StaticAddonIDs, int64(2))
	// Range-позиция состава стартует с бесплатного лимита
	assert.EqualValues(t, 10, sel.DynamicValues[3])
	assert.NotContains(t, sel.DynamicValues, int64(4))
}

func TestToggleStatic_LockedIsNoop(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(3000)
	sel := NewSelection(pkg, catalog)
	before := ComputeTotal(pkg, sel, catalog)

	// Locked-позицию снять нельзя: ни выбор, ни итог не меняются
	sel.ToggleStatic(1, pkg, catalog)

	assert.Contains(t, sel.StaticAddonIDs, int64(1))
	assert.True(t, before.Equal(ComputeTotal(pkg, sel, catalog)))
}

func TestToggleStatic_DynamicAndUnknownAreNoop(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(3000)
	sel := NewSelection(pkg, catalog)

	sel.ToggleStatic(4, pkg, catalog)   // quantity
	sel.ToggleStatic(777, pkg, catalog) // неизвестный ID

	assert.NotContains(t, sel.StaticAddonIDs, int64(4))
	assert.NotContains(t, sel.StaticAddonIDs, int64(777))
}

func TestSetDynamicValue_ClampInvariant(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(3000)
	sel := NewSelection(pkg, catalog)

	// После каждой записи range-значение в [IncludedAmount, MaxAmount]
	for _, raw := range []int64{-50, 0, 3, 10, 55, 100, 5000} {
		sel.SetDynamicValue(3, raw, catalog)
		value := sel.DynamicValues[3]
		require.GreaterOrEqual(t, value, int64(10), "raw=%d", raw)
		require.LessOrEqual(t, value, int64(100), "raw=%d", raw)
	}

	// Quantity не опускается ниже нуля
	sel.SetDynamicValue(4, -7, catalog)
	assert.EqualValues(t, 0, sel.DynamicValues[4])
}

func TestRemoveDynamic_IncludedItemStays(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(3000)
	sel := NewSelection(pkg, catalog)

	sel.SetDynamicValue(4, 2, catalog)
	sel.RemoveDynamic(4, pkg)
	assert.NotContains(t, sel.DynamicValues, int64(4))

	// Позиция базового состава не убирается
	sel.RemoveDynamic(3, pkg)
	assert.Contains(t, sel.DynamicValues, int64(3))
}

func TestNewSelectionFromRaw_ForcesLockedAndClamps(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(3000)

	sel := NewSelectionFromRaw(
		pkg,
		[]int64{5, 4, 999}, // 4 - динамический, 999 - неизвестный
		map[int64]int64{3: -20, 4: -1, 998: 5},
		catalog,
	)

	// Мусор отфильтрован
	assert.Contains(t, sel.StaticAddonIDs, int64(5))
	assert.NotContains(t, sel.StaticAddonIDs, int64(4))
	assert.NotContains(t, sel.StaticAddonIDs, int64(999))
	assert.NotContains(t, sel.DynamicValues, int64(998))

	// Значения клампированы, locked-позиции добавлены принудительно
	assert.EqualValues(t, 10, sel.DynamicValues[3])
	assert.EqualValues(t, 0, sel.DynamicValues[4])
	assert.Contains(t, sel.StaticAddonIDs, int64(1))
}
