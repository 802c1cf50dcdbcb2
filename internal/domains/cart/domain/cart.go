package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxQuantity is the most units a single line may hold.
const MaxQuantity = 999

var (
	ErrInvalidQuantity = errors.New("quantity must be at least one")
	ErrQuantityLimit   = errors.New("line quantity would exceed the limit")
	ErrEmptyProductID  = errors.New("product id is required")
	ErrEmptyColor      = errors.New("color is required")
	ErrEmptySize       = errors.New("size is required")
)

// Product is the catalog snapshot a line item carries.
type Product struct {
	ID               string
	Name             string
	Category         string
	Description      string
	Price            float64
	Colors           []string
	Sizes            []string
	Image            string
	AdditionalImages []string
	Weight           string
	Dimensions       string
}

func (p Product) clone() Product {
	p.Colors = append([]string(nil), p.Colors...)
	p.Sizes = append([]string(nil), p.Sizes...)
	p.AdditionalImages = append([]string(nil), p.AdditionalImages...)
	return p
}

// LineItem is one product variant in the cart.
type LineItem struct {
	Product
	CartID        string
	Quantity      int
	SelectedColor string
	SelectedSize  string
}

// LineTotal is price times quantity.
func (l LineItem) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l LineItem) clone() LineItem {
	l.Product = l.Product.clone()
	return l
}

// Key builds the composite line identity of a product variant.
func Key(productID, color, size string) string {
	return productID + ":" + color + ":" + size
}

// Cart is an ordered sequence of line items with unique keys.
type Cart struct {
	items []LineItem
}

// NewCart restores a cart from stored items, repairing invariants: missing
// keys are rebuilt, quantities are clamped to [1, MaxQuantity] and duplicate
// keys are merged into the first occurrence.
func NewCart(items []LineItem) *Cart {
	c := &Cart{}
	for _, item := range items {
		item = item.clone()
		if item.CartID == "" {
			item.CartID = Key(item.ID, item.SelectedColor, item.SelectedSize)
		}
		item.Quantity = clampQuantity(item.Quantity)
		if i := c.indexOf(item.CartID); i >= 0 {
			c.items[i].Quantity = shiftQuantity(c.items[i].Quantity, item.Quantity)
			continue
		}
		c.items = append(c.items, item)
	}
	return c
}

// Add merges the variant into an existing line or appends a new one.
// It returns the resulting line item. A line never grows past MaxQuantity;
// such an add is rejected and leaves the cart untouched.
func (c *Cart) Add(product Product, quantity int, color, size string) (LineItem, error) {
	if strings.TrimSpace(product.ID) == "" {
		return LineItem{}, ErrEmptyProductID
	}
	if quantity < 1 {
		return LineItem{}, ErrInvalidQuantity
	}
	if quantity > MaxQuantity {
		return LineItem{}, ErrQuantityLimit
	}
	if strings.TrimSpace(color) == "" {
		return LineItem{}, ErrEmptyColor
	}
	if strings.TrimSpace(size) == "" {
		return LineItem{}, ErrEmptySize
	}
	key := Key(product.ID, color, size)
	if i := c.indexOf(key); i >= 0 {
		if c.items[i].Quantity > MaxQuantity-quantity {
			return LineItem{}, ErrQuantityLimit
		}
		c.items[i].Quantity += quantity
		return c.items[i].clone(), nil
	}
	item := LineItem{
		Product:       product.clone(),
		CartID:        key,
		Quantity:      quantity,
		SelectedColor: color,
		SelectedSize:  size,
	}
	c.items = append(c.items, item)
	return item.clone(), nil
}

// Remove deletes the line with the key. It reports whether a line existed.
func (c *Cart) Remove(cartID string) (LineItem, bool) {
	i := c.indexOf(cartID)
	if i < 0 {
		return LineItem{}, false
	}
	removed := c.items[i]
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	return removed, true
}

// UpdateQuantity shifts the line quantity by delta, clamped to
// [1, MaxQuantity]. It reports whether the line existed.
func (c *Cart) UpdateQuantity(cartID string, delta int) (LineItem, bool) {
	i := c.indexOf(cartID)
	if i < 0 {
		return LineItem{}, false
	}
	c.items[i].Quantity = shiftQuantity(c.items[i].Quantity, delta)
	return c.items[i].clone(), true
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item.clone())
	}
	return out
}

// Totals summarises the cart.
func (c *Cart) Totals() Totals {
	t := Totals{UniqueItems: len(c.items), Subtotal: decimal.Zero}
	for _, item := range c.items {
		t.Quantity += item.Quantity
		t.Subtotal = t.Subtotal.Add(item.LineTotal())
	}
	t.Total = t.Subtotal
	return t
}

// shiftQuantity adds delta to a quantity already in range without
// overflowing int.
func shiftQuantity(q, delta int) int {
	switch {
	case delta > 0 && delta > MaxQuantity-q:
		return MaxQuantity
	case delta < 0 && delta < 1-q:
		return 1
	}
	return q + delta
}

func clampQuantity(q int) int {
	return min(max(q, 1), MaxQuantity)
}

func (c *Cart) indexOf(cartID string) int {
	for i := range c.items {
		if c.items[i].CartID == cartID {
			return i
		}
	}
	return -1
}

// Totals are the derived cart figures. Shipping and taxes are not charged,
// so Total equals Subtotal.
type Totals struct {
	Quantity    int
	UniqueItems int
	Subtotal    decimal.Decimal
	Total       decimal.Decimal
}
