package application

import (
	"context"
	"fmt"

	"github.com/Apurer/go-gin-storefront/internal/domains/cart/domain"
	"github.com/Apurer/go-gin-storefront/internal/domains/cart/ports"
)

// PersistTo writes the whole cart under key in the session namespace after
// every mutation.
func PersistTo(kv ports.KeyValueStore, key string) Observer {
	return func(ctx context.Context, change domain.Change) error {
		data, err := domain.Encode(change.Items)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		if err := kv.Set(ctx, change.SessionID, key, data); err != nil {
			return fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		return nil
	}
}

// NotifyAdds shows "<name> added to cart" for every successful add.
func NotifyAdds(notifier ports.Notifier) Observer {
	return func(_ context.Context, change domain.Change) error {
		if change.Kind != domain.ChangeAdded {
			return nil
		}
		notifier.Show(change.SessionID, AddedMessage(change.Item.Name))
		return nil
	}
}

// AddedMessage is the confirmation text for an added product.
func AddedMessage(productName string) string {
	return productName + " added to cart"
}
