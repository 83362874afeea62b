package progression

import (
	"context"
	"sync"

	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.ProgressState
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.ProgressState),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get returns a copy of the stored snapshot
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.store[input.PlayerID]
	if !ok {
		return nil, errors.NotFound("progress not found").WithMeta("player_id", input.PlayerID)
	}

	return &GetOutput{State: state.Clone()}, nil
}

// Save stores a copy of the snapshot
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.State == nil {
		return errors.InvalidArgument(errStateNil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.PlayerID] = input.State.Clone()
	return nil
}

// Delete removes the snapshot
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, input.PlayerID)
	return nil
}
