package ports

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned when a session carries no login.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore records which shopper sessions are logged in.
type SessionStore interface {
	Save(ctx context.Context, sessionID, subject string) error
	Delete(ctx context.Context, sessionID string) error
	Lookup(ctx context.Context, sessionID string) (string, error)
}

// NoopSessionStore keeps nothing; every lookup misses.
var NoopSessionStore SessionStore = noopSessionStore{}

type noopSessionStore struct{}

func (noopSessionStore) Save(_ context.Context, _, _ string) error { return nil }
func (noopSessionStore) Delete(_ context.Context, _ string) error  { return nil }
func (noopSessionStore) Lookup(_ context.Context, _ string) (string, error) {
	return "", ErrSessionNotFound
}
