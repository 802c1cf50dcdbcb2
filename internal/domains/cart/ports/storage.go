package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get for absent keys.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is a durable string-keyed blob store partitioned by
// namespace. Each shopper session owns one namespace.
type KeyValueStore interface {
	Get(ctx context.Context, namespace, key string) ([]byte, error)
	Set(ctx context.Context, namespace, key string, value []byte) error
}
