package domain

import (
	"fmt"
	"slices"
)

// CartItem pins the product attributes at the time of first add plus a
// mutable quantity. At most one item per product id exists in a cart.
type CartItem struct {
	Product
	Quantity int
}

func (i CartItem) LineTotal() float64 {
	return i.EffectivePrice() * float64(i.Quantity)
}

type Cart struct {
	items []CartItem
}

// Add increments the quantity of the existing item with the same id or
// appends a new item with quantity 1. Stock is not checked here, that
// guard belongs to the presentation layer.
func (c *Cart) Add(p Product) {
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: 1})
}

// Remove deletes the item with the given product id. Removing an
// absent id is a no-op, not an error.
func (c *Cart) Remove(id int) {
	c.items = slices.DeleteFunc(c.items, func(i CartItem) bool {
		return i.ID == id
	})
}

// UpdateQuantity sets the item quantity. Zero removes the item so the
// cart never retains zero-quantity entries. Negative values are
// rejected.
func (c *Cart) UpdateQuantity(id, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeQuantity, quantity)
	}
	if quantity == 0 {
		c.Remove(id)
		return nil
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

// Total sums effective price times quantity over the items. The result
// is exact, rounding and currency display belong to pkg/money.
func (c Cart) Total() float64 {
	var sum float64
	for _, i := range c.items {
		sum += i.LineTotal()
	}
	return sum
}

// ItemsCount sums the quantities, as opposed to Len which counts
// distinct products.
func (c Cart) ItemsCount() int {
	var n int
	for _, i := range c.items {
		n += i.Quantity
	}
	return n
}

func (c Cart) Len() int {
	return len(c.items)
}

func (c Cart) Items() []CartItem {
	return slices.Clone(c.items)
}
