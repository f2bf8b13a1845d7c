package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLineItems_MatchesComputeTotal(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(4500)
	sel := NewSelection(pkg, catalog)
	sel.ToggleStatic(5, pkg, catalog)
	sel.SetDynamicValue(3, 23, catalog)
	sel.SetDynamicValue(4, 2, catalog)

	items := BuildLineItems(pkg, sel, catalog)

	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Amount)
	}
	assert.True(t, sum.Equal(ComputeTotal(pkg, sel, catalog)),
		"сумма строк %s должна сходиться с итогом %s", sum, ComputeTotal(pkg, sel, catalog))
}

func TestBuildLineItems_DeselectedIncludedShownAsDeduction(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(4500)
	sel := NewSelection(pkg, catalog)
	sel.ToggleStatic(2, pkg, catalog)

	items := BuildLineItems(pkg, sel, catalog)

	var found bool
	for _, item := range items {
		if item.AddonID == 2 {
			found = true
			assert.True(t, item.Amount.IsNegative())
		}
	}
	require.True(t, found, "снятая позиция состава должна попасть в расшифровку вычетом")
}

func TestSummaryStrings_Format(t *testing.T) {
	catalog := testCatalog()
	pkg := testPackage(4500)
	sel := NewSelection(pkg, catalog)
	sel.SetDynamicValue(3, 23, catalog)

	lines := SummaryStrings(BuildLineItems(pkg, sel, catalog))

	require.NotEmpty(t, lines)
	assert.Equal(t, "Pakiet Standard (+4500.00)", lines[0])
	assert.Contains(t, lines, "Dojazd: 23 km (+300.00)")
}
