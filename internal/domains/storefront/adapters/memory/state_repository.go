package memory

import (
	"context"
	"sync"

	"github.com/Apurer/go-gin-storefront/internal/domains/storefront/domain"
	"github.com/Apurer/go-gin-storefront/internal/domains/storefront/ports"
)

// StateRepository keeps shell states in process memory.
type StateRepository struct {
	mu     sync.RWMutex
	states map[string]domain.State
}

func NewStateRepository() *StateRepository {
	return &StateRepository{states: make(map[string]domain.State)}
}

func (r *StateRepository) Load(_ context.Context, sessionID string) (domain.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.states[sessionID]
	if !ok {
		return domain.State{}, ports.ErrNotFound
	}
	return state.Clone(), nil
}

func (r *StateRepository) Save(_ context.Context, state domain.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[state.SessionID] = state.Clone()
	return nil
}

var _ ports.StateRepository = (*StateRepository)(nil)
