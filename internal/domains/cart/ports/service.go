package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Apurer/go-gin-storefront/internal/domains/cart/domain"
)

// AddItem requests a product variant to be added to the cart.
type AddItem struct {
	ProductID string
	Quantity  int
	Color     string
	Size      string
}

// DisplayAmount is a total converted into the secondary display currency.
type DisplayAmount struct {
	Currency string
	Amount   decimal.Decimal
}

// Snapshot is a read view of a session cart.
type Snapshot struct {
	SessionID string
	Items     []domain.LineItem
	Totals    domain.Totals
	Display   DisplayAmount
}

// Service exposes cart use cases to adapters.
type Service interface {
	AddToCart(ctx context.Context, sessionID string, req AddItem) (*Snapshot, error)
	RemoveFromCart(ctx context.Context, sessionID, cartID string) (*Snapshot, error)
	UpdateQuantity(ctx context.Context, sessionID, cartID string, delta int) (*Snapshot, error)
	Cart(ctx context.Context, sessionID string) (*Snapshot, error)
	Notification(ctx context.Context, sessionID string) (domain.Notification, bool)
}
