package memory

import (
	"context"
	"sync"

	"github.com/Apurer/go-gin-storefront/internal/domains/cart/ports"
)

var _ ports.KeyValueStore = (*KeyValueStore)(nil)

// KeyValueStore is an in-memory KeyValueStore for development and tests.
type KeyValueStore struct {
	mu     sync.RWMutex
	values map[string]map[string][]byte
}

func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{values: map[string]map[string][]byte{}}
}

func (s *KeyValueStore) Get(_ context.Context, namespace, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[namespace][key]
	if !ok {
		return nil, ports.ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *KeyValueStore) Set(_ context.Context, namespace, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns, ok := s.values[namespace]
	if !ok {
		ns = map[string][]byte{}
		s.values[namespace] = ns
	}
	ns[key] = append([]byte(nil), value...)
	return nil
}
