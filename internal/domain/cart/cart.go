package cart

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xenking/spud-shack/internal/domain/catalog"
)

// Line is a single cart entry: a snapshot of the menu item at add time, the
// quantity, and the customization set with per-line Selected flags.
type Line struct {
	Item           catalog.MenuItem        `json:"menuItem"`
	Quantity       int                     `json:"quantity"`
	Customizations []catalog.Customization `json:"customizations"`
}

// UnitPrice returns the price of one unit of this line: base price plus the
// selected customizations.
func (l Line) UnitPrice() decimal.Decimal {
	price := l.Item.Price
	for _, c := range l.Customizations {
		if c.Selected {
			price = price.Add(c.Price)
		}
	}
	return price
}

// SelectionKey identifies a customization choice: the sorted, comma-joined
// names of the selected customizations. Two lines for the same item merge
// exactly when their selection keys match.
func SelectionKey(customizations []catalog.Customization) string {
	names := make([]string, 0, len(customizations))
	for _, c := range customizations {
		if c.Selected {
			names = append(names, c.Name)
		}
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// Cart aggregates lines. The zero value is an empty cart.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add merges qty into an existing line with the same item and selection key,
// or appends a new line snapshotting the given customizations.
func (c *Cart) Add(item catalog.MenuItem, qty int, customizations []catalog.Customization) {
	key := SelectionKey(customizations)
	for i := range c.Lines {
		if c.Lines[i].Item.ID == item.ID && SelectionKey(c.Lines[i].Customizations) == key {
			c.Lines[i].Quantity += qty
			return
		}
	}
	snapshot := make([]catalog.Customization, len(customizations))
	copy(snapshot, customizations)
	c.Lines = append(c.Lines, Line{Item: item, Quantity: qty, Customizations: snapshot})
}

// Remove drops every line matching the item id and selection key.
func (c *Cart) Remove(itemID string, customizations []catalog.Customization) {
	key := SelectionKey(customizations)
	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if l.Item.ID == itemID && SelectionKey(l.Customizations) == key {
			continue
		}
		kept = append(kept, l)
	}
	c.Lines = kept
}

// SetQuantity overwrites the quantity of the first matching line. A quantity
// of zero or less removes the line instead.
func (c *Cart) SetQuantity(itemID string, customizations []catalog.Customization, qty int) {
	if qty <= 0 {
		c.Remove(itemID, customizations)
		return
	}
	key := SelectionKey(customizations)
	for i := range c.Lines {
		if c.Lines[i].Item.ID == itemID && SelectionKey(c.Lines[i].Customizations) == key {
			c.Lines[i].Quantity = qty
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Count is the sum of line quantities. Computed fresh on every call.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// Total is the cart subtotal: Σ unit price × quantity. Computed fresh on
// every call, never cached.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}
