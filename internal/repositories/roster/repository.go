// Package roster provides storage for the Pokémon a player has unlocked
package roster

//go:generate mockgen -destination=mock/mock_repository.go -package=rosterrepomock github.com/pokearena/tactics-arena/internal/repositories/roster Repository

import (
	"context"

	"github.com/pokearena/tactics-arena/internal/entities"
)

// GetInput contains parameters for loading a roster
type GetInput struct {
	PlayerID string
}

// GetOutput contains the stored roster
type GetOutput struct {
	Roster *entities.Roster
}

// SaveInput contains the roster to store
type SaveInput struct {
	Roster *entities.Roster
}

// Repository stores one roster per player
type Repository interface {
	// Get returns NotFound when the player has no roster yet
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces the stored roster
	Save(ctx context.Context, input SaveInput) error
}

const (
	errPlayerIDEmpty = "player ID cannot be empty"
	errRosterNil     = "roster cannot be nil"
)

func cloneRoster(r *entities.Roster) *entities.Roster {
	c := *r
	c.PokemonIDs = append([]int(nil), r.PokemonIDs...)
	return &c
}
