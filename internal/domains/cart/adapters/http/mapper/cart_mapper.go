package mapper

import (
	"time"

	"github.com/shopspring/decimal"

	cartdomain "github.com/Apurer/go-gin-storefront/internal/domains/cart/domain"
	cartports "github.com/Apurer/go-gin-storefront/internal/domains/cart/ports"
)

// LineItem mirrors the stored line layout.
type LineItem struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Price            float64         `json:"price"`
	Image            string          `json:"image"`
	Description      string          `json:"description"`
	Colors           []string        `json:"colors"`
	Sizes            []string        `json:"sizes"`
	AdditionalImages []string        `json:"additionalImages,omitempty"`
	Weight           string          `json:"weight,omitempty"`
	Dimensions       string          `json:"dimensions,omitempty"`
	CartID           string          `json:"cartId"`
	Quantity         int             `json:"quantity"`
	SelectedColor    string          `json:"selectedColor"`
	SelectedSize     string          `json:"selectedSize"`
	LineTotal        decimal.Decimal `json:"lineTotal"`
}

// Totals carries money as decimal strings.
type Totals struct {
	ItemCount   int             `json:"itemCount"`
	UniqueItems int             `json:"uniqueItems"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Total       decimal.Decimal `json:"total"`
}

// Display is the total in the secondary currency.
type Display struct {
	Currency string          `json:"currency"`
	Total    decimal.Decimal `json:"total"`
}

// Cart is the transport shape of a cart snapshot.
type Cart struct {
	Items   []LineItem `json:"items"`
	Totals  Totals     `json:"totals"`
	Display Display    `json:"display"`
}

// AddItem is the request body for adding a variant.
type AddItem struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"min=0,max=999"`
	Color     string `json:"color" binding:"required"`
	Size      string `json:"size" binding:"required"`
}

// QuantityChange is the request body for a relative quantity change.
type QuantityChange struct {
	Delta *int `json:"delta" binding:"required,min=-999,max=999"`
}

// Notification is the visible confirmation.
type Notification struct {
	Message   string    `json:"message"`
	ShownAt   time.Time `json:"shownAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ToAddItem converts the request; a zero quantity defaults to one.
func ToAddItem(req AddItem) cartports.AddItem {
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	return cartports.AddItem{ProductID: req.ProductID, Quantity: qty, Color: req.Color, Size: req.Size}
}

// FromSnapshot converts a snapshot to the transport representation.
func FromSnapshot(s *cartports.Snapshot) Cart {
	if s == nil {
		return Cart{Items: []LineItem{}}
	}
	items := make([]LineItem, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, fromLineItem(item))
	}
	return Cart{
		Items: items,
		Totals: Totals{
			ItemCount:   s.Totals.Quantity,
			UniqueItems: s.Totals.UniqueItems,
			Subtotal:    s.Totals.Subtotal,
			Total:       s.Totals.Total,
		},
		Display: Display{Currency: s.Display.Currency, Total: s.Display.Amount},
	}
}

// FromNotification converts the notification.
func FromNotification(n cartdomain.Notification) Notification {
	return Notification{Message: n.Message, ShownAt: n.ShownAt, ExpiresAt: n.ExpiresAt}
}

func fromLineItem(item cartdomain.LineItem) LineItem {
	return LineItem{
		ID:               item.ID,
		Name:             item.Name,
		Category:         item.Category,
		Price:            item.Price,
		Image:            item.Image,
		Description:      item.Description,
		Colors:           append([]string{}, item.Colors...),
		Sizes:            append([]string{}, item.Sizes...),
		AdditionalImages: item.AdditionalImages,
		Weight:           item.Weight,
		Dimensions:       item.Dimensions,
		CartID:           item.CartID,
		Quantity:         item.Quantity,
		SelectedColor:    item.SelectedColor,
		SelectedSize:     item.SelectedSize,
		LineTotal:        item.LineTotal(),
	}
}
