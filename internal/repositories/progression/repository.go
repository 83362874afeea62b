// Package progression provides storage for player progress snapshots
package progression

//go:generate mockgen -destination=mock/mock_repository.go -package=progressionrepomock github.com/pokearena/tactics-arena/internal/repositories/progression Repository

import (
	"context"

	"github.com/pokearena/tactics-arena/internal/entities"
)

// GetInput contains parameters for loading a progress snapshot
type GetInput struct {
	PlayerID string
}

// GetOutput contains the stored snapshot
type GetOutput struct {
	State *entities.ProgressState
}

// SaveInput contains parameters for storing a progress snapshot
type SaveInput struct {
	PlayerID string
	State    *entities.ProgressState
}

// DeleteInput contains parameters for removing a progress snapshot
type DeleteInput struct {
	PlayerID string
}

// Repository is a flat key-value store of progress snapshots, one per
// player. Writes are last-write-wins.
type Repository interface {
	// Get returns NotFound when nothing is stored and DataLoss when the
	// stored blob cannot be decoded
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces the stored snapshot
	Save(ctx context.Context, input SaveInput) error

	// Delete removes the stored snapshot; deleting a missing key is not an error
	Delete(ctx context.Context, input DeleteInput) error
}

const (
	errPlayerIDEmpty = "player ID cannot be empty"
	errStateNil      = "state cannot be nil"
)
