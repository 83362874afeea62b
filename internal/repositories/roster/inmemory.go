package roster

import (
	"context"
	"sync"

	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Roster
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.Roster),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get returns a copy of the stored roster
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	roster, ok := r.store[input.PlayerID]
	if !ok {
		return nil, errors.NotFound("roster not found").WithMeta("player_id", input.PlayerID)
	}
	return &GetOutput{Roster: cloneRoster(roster)}, nil
}

// Save stores a copy of the roster
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) error {
	if input.Roster == nil {
		return errors.InvalidArgument(errRosterNil)
	}
	if input.Roster.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Roster.PlayerID] = cloneRoster(input.Roster)
	return nil
}
