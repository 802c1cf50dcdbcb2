package memory

import (
	"context"
	"sync"

	"github.com/Apurer/go-gin-storefront/internal/domains/accounts/ports"
)

// SessionStore is an in-memory SessionStore implementation.
type SessionStore struct {
	sessions sync.Map
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Save(_ context.Context, sessionID, subject string) error {
	s.sessions.Store(sessionID, subject)
	return nil
}

func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.sessions.Delete(sessionID)
	return nil
}

func (s *SessionStore) Lookup(_ context.Context, sessionID string) (string, error) {
	v, ok := s.sessions.Load(sessionID)
	if !ok {
		return "", ports.ErrSessionNotFound
	}
	return v.(string), nil
}

var _ ports.SessionStore = (*SessionStore)(nil)
