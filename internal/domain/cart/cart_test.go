package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/spud-shack/internal/domain/catalog"
)

// --- Helpers ---

func newTestItem(id, name string, price string) catalog.MenuItem {
	return catalog.MenuItem{
		ID:        id,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Category:  "Loaded Fries",
		Available: true,
	}
}

func customizations(selected ...string) []catalog.Customization {
	all := []catalog.Customization{
		{Name: "Extra Cheese", Price: decimal.RequireFromString("1.50")},
		{Name: "Bacon Bits", Price: decimal.RequireFromString("2.00")},
		{Name: "Jalapeños", Price: decimal.RequireFromString("0.75")},
	}
	for i := range all {
		for _, name := range selected {
			if all[i].Name == name {
				all[i].Selected = true
			}
		}
	}
	return all
}

// --- Tests ---

func TestSelectionKey_SortedAndSelectedOnly(t *testing.T) {
	key := SelectionKey(customizations("Jalapeños", "Extra Cheese"))
	assert.Equal(t, "Extra Cheese,Jalapeños", key)

	assert.Equal(t, "", SelectionKey(customizations()))
	assert.Equal(t, "", SelectionKey(nil))
}

func TestCart_AddMergesSameSelection(t *testing.T) {
	item := newTestItem("lf-01", "Classic Cheesy Fries", "8.99")

	var c Cart
	c.Add(item, 1, customizations("Extra Cheese"))
	c.Add(item, 2, customizations("Extra Cheese"))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 3, c.Lines[0].Quantity)
	assert.Equal(t, 3, c.Count())
}

func TestCart_AddDifferentSelectionNewLine(t *testing.T) {
	item := newTestItem("lf-01", "Classic Cheesy Fries", "8.99")

	var c Cart
	c.Add(item, 1, customizations("Extra Cheese"))
	c.Add(item, 1, customizations("Bacon Bits"))
	c.Add(item, 1, customizations())

	require.Len(t, c.Lines, 3)
	assert.Equal(t, 3, c.Count())
}

func TestLine_UnitPrice(t *testing.T) {
	item := newTestItem("lf-01", "Classic Cheesy Fries", "8.99")
	l := Line{Item: item, Quantity: 1, Customizations: customizations("Extra Cheese", "Bacon Bits")}

	// 8.99 + 1.50 + 2.00
	assert.True(t, l.UnitPrice().Equal(decimal.RequireFromString("12.49")),
		"got %s", l.UnitPrice())
}

func TestCart_TotalComputedFresh(t *testing.T) {
	item := newTestItem("lf-01", "Classic Cheesy Fries", "8.99")

	var c Cart
	c.Add(item, 2, customizations("Extra Cheese"))
	first := c.Total()
	assert.True(t, first.Equal(decimal.RequireFromString("20.98")), "got %s", first)

	// Mutating the cart changes the next Total; nothing is cached.
	c.Lines[0].Quantity = 3
	assert.True(t, c.Total().Equal(decimal.RequireFromString("31.47")), "got %s", c.Total())
}

func TestCart_SetQuantityZeroRemoves(t *testing.T) {
	item := newTestItem("lf-01", "Classic Cheesy Fries", "8.99")

	var c Cart
	c.Add(item, 2, customizations("Extra Cheese"))
	c.SetQuantity("lf-01", customizations("Extra Cheese"), 0)

	assert.Empty(t, c.Lines)
}

func TestCart_SetQuantityOverwrites(t *testing.T) {
	item := newTestItem("lf-01", "Classic Cheesy Fries", "8.99")

	var c Cart
	c.Add(item, 2, customizations())
	c.SetQuantity("lf-01", customizations(), 5)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 5, c.Lines[0].Quantity)
}

func TestCart_RemoveMatchesSelectionKey(t *testing.T) {
	item := newTestItem("lf-01", "Classic Cheesy Fries", "8.99")

	var c Cart
	c.Add(item, 1, customizations("Extra Cheese"))
	c.Add(item, 1, customizations("Bacon Bits"))
	c.Remove("lf-01", customizations("Extra Cheese"))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, "Bacon Bits", SelectionKey(c.Lines[0].Customizations))
}

func TestCart_Clear(t *testing.T) {
	item := newTestItem("lf-01", "Classic Cheesy Fries", "8.99")

	var c Cart
	c.Add(item, 2, nil)
	c.Clear()

	assert.Empty(t, c.Lines)
	assert.Equal(t, 0, c.Count())
	assert.True(t, c.Total().IsZero())
}
