// Package evolution detects which party members may evolve after a
// victory and applies accepted evolutions
package evolution

//go:generate mockgen -destination=mock/mock_service.go -package=evolutionmock github.com/pokearena/tactics-arena/internal/services/evolution Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pokearena/tactics-arena/internal/clients/dex"
	"github.com/pokearena/tactics-arena/internal/engine/battle"
	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
)

// Service gathers and applies evolutions
type Service interface {
	// GatherCandidates lists the evolutions the party may accept. Members
	// whose target cannot be fetched are skipped.
	GatherCandidates(ctx context.Context, input *GatherCandidatesInput) (*GatherCandidatesOutput, error)

	// Apply evolves the candidate's party member in place. It returns nil
	// when the candidate no longer matches the party.
	Apply(input *ApplyInput) *ApplyOutput
}

// Identity is the display identity of one form
type Identity struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Candidate is an evolution offered for one party slot
type Candidate struct {
	Slot      int               `json:"slot"`
	Previous  Identity          `json:"previous"`
	Next      Identity          `json:"next"`
	Evolved   *entities.Pokemon `json:"evolved"`
	StatDelta map[string]int    `json:"stat_delta"`
	Key       string            `json:"key"`
}

// CandidateKey builds the dedup key of an evolution
func CandidateKey(previousID, nextID int) string {
	return fmt.Sprintf("%d-%d", previousID, nextID)
}

// GatherCandidatesInput contains the party and the player's progress
type GatherCandidatesInput struct {
	Team  []*battle.Combatant
	State *entities.ProgressState
}

// GatherCandidatesOutput lists candidates in party order
type GatherCandidatesOutput struct {
	Candidates []*Candidate
}

// ApplyInput contains the party to mutate and the accepted candidate
type ApplyInput struct {
	Team      []*battle.Combatant
	Candidate *Candidate
}

// ApplyOutput describes an applied evolution
type ApplyOutput struct {
	PreviousID int
	NewID      int
	Message    string
}

// Config holds the dependencies for the evolution service
type Config struct {
	DexClient dex.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DexClient == nil {
		vb.RequiredField("DexClient")
	}

	return vb.Build()
}

type service struct {
	dexClient dex.Client
}

// NewService creates a new evolution service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{dexClient: cfg.DexClient}, nil
}

// GatherCandidates implements Service
func (s *service) GatherCandidates(ctx context.Context, input *GatherCandidatesInput) (*GatherCandidatesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state := input.State
	if state == nil {
		state = &entities.ProgressState{}
	}

	out := &GatherCandidatesOutput{}
	seen := make(map[string]bool)

	for slot, member := range input.Team {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "gather candidates")
		}
		if member == nil || member.Pokemon == nil || !member.Pokemon.CanEvolve() {
			continue
		}

		current := member.Pokemon
		target := current.Evolutions[0]
		if state.HasEvolved(current.ID) || (target.ID > 0 && state.HasEvolved(target.ID)) {
			continue
		}

		evolved, err := s.dexClient.GetPokemon(ctx, target.Ref())
		if err != nil {
			slog.Warn("Skipping evolution candidate",
				"slot", slot,
				"pokemon", current.Name,
				"target", target.Ref(),
				"error", err)
			continue
		}
		// name-only refs only reveal the target id after the lookup
		if state.HasEvolved(evolved.ID) {
			continue
		}

		key := CandidateKey(current.ID, evolved.ID)
		if seen[key] {
			continue
		}
		seen[key] = true

		out.Candidates = append(out.Candidates, &Candidate{
			Slot:      slot,
			Previous:  identityOf(current),
			Next:      identityOf(evolved),
			Evolved:   evolved,
			StatDelta: current.Stats.Delta(evolved.Stats),
			Key:       key,
		})
	}

	return out, nil
}

// Apply implements Service
func (s *service) Apply(input *ApplyInput) *ApplyOutput {
	if input == nil || input.Candidate == nil || input.Candidate.Evolved == nil {
		return nil
	}

	c := input.Candidate
	if c.Slot < 0 || c.Slot >= len(input.Team) {
		return nil
	}
	member := input.Team[c.Slot]
	if member == nil || member.Pokemon == nil || member.Pokemon.ID != c.Previous.ID {
		return nil
	}

	previous := member.Pokemon
	member.Pokemon = c.Evolved.Clone()
	member.MaxHP = max(0, member.Pokemon.Stats.HP)
	member.Heal()

	slog.Info("Pokemon evolved",
		"slot", c.Slot,
		"from", previous.Name,
		"to", member.Pokemon.Name)

	return &ApplyOutput{
		PreviousID: previous.ID,
		NewID:      member.Pokemon.ID,
		Message:    fmt.Sprintf("%s evolved into %s!", previous.Name, member.Pokemon.Name),
	}
}

func identityOf(p *entities.Pokemon) Identity {
	return Identity{ID: p.ID, Name: p.Name, Image: p.Image}
}
