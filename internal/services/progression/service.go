// Package progression tracks experience, levels, streaks and milestone
// unlocks for arena players
package progression

//go:generate mockgen -destination=mock/mock_service.go -package=progressionmock github.com/pokearena/tactics-arena/internal/services/progression Service

import (
	"context"
	"log/slog"

	"github.com/pokearena/tactics-arena/internal/engine/battle"
	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
	"github.com/pokearena/tactics-arena/internal/pkg/clock"
	"github.com/pokearena/tactics-arena/internal/pkg/metrics"
	progressionrepo "github.com/pokearena/tactics-arena/internal/repositories/progression"
)

// Service reads and mutates the progression of a player. Every mutation
// is persisted before it returns.
type Service interface {
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
	RecordBattle(ctx context.Context, input *RecordBattleInput) (*RecordOutput, error)
	RecordEvolution(ctx context.Context, input *RecordEvolutionInput) (*RecordOutput, error)
	GrantBonusXP(ctx context.Context, input *GrantBonusXPInput) (*RecordOutput, error)
	Reset(ctx context.Context, input *ResetInput) (*RecordOutput, error)
}

// LoadInput identifies the player to load
type LoadInput struct {
	PlayerID string
}

// LoadOutput contains the loaded state
type LoadOutput struct {
	State *entities.ProgressState
	// Created is set when the player had no saved state
	Created bool
	// Recovered is set when the saved state was unreadable and was replaced
	Recovered bool
	// Repaired is set when unlocks were re-derived from the level
	Repaired bool
}

// RecordBattleInput describes a finished battle
type RecordBattleInput struct {
	PlayerID  string
	Outcome   battle.Outcome
	Turns     int
	Mode      string
	Opponents []*entities.Pokemon
}

// RecordEvolutionInput describes an accepted evolution
type RecordEvolutionInput struct {
	PlayerID   string
	PreviousID int
	NewID      int
}

// GrantBonusXPInput awards flat experience, e.g. for completing a mode
type GrantBonusXPInput struct {
	PlayerID string
	Amount   int
	Message  string
}

// ResetInput identifies the player to reset
type ResetInput struct {
	PlayerID string
}

// RecordOutput is returned by every mutation
type RecordOutput struct {
	State    *entities.ProgressState
	XPGained int
	Events   []string
}

// Config holds the dependencies for the progression service
type Config struct {
	Repository progressionrepo.Repository
	// Clock stamps UpdatedAt (optional, defaults to the real clock)
	Clock clock.Clock
	// Metrics is optional
	Metrics *metrics.ArenaMetrics
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}

	return vb.Build()
}

type service struct {
	repo    progressionrepo.Repository
	clock   clock.Clock
	metrics *metrics.ArenaMetrics
}

// NewService creates a new progression service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		repo:    cfg.Repository,
		clock:   cfg.Clock,
		metrics: cfg.Metrics,
	}, nil
}

// Load returns the state of a player, creating, recovering or repairing
// it as needed
func (s *service) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := s.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	out.State = out.State.Clone()
	return out, nil
}

func (s *service) load(ctx context.Context, playerID string) (*LoadOutput, error) {
	out := &LoadOutput{}

	got, err := s.repo.Get(ctx, progressionrepo.GetInput{PlayerID: playerID})
	switch {
	case err == nil:
		out.State = got.State
	case errors.IsNotFound(err):
		out.State = DefaultState()
		out.Created = true
	case errors.IsDataLoss(err):
		slog.Warn("Saved progress is corrupted, starting over",
			"player_id", playerID,
			"error", err)
		out.State = DefaultState()
		out.Recovered = true
	default:
		return nil, errors.Wrapf(err, "failed to load progress for player %s", playerID)
	}

	out.Repaired = heal(out.State)
	if out.Repaired && !out.Created && !out.Recovered {
		slog.Info("Progress unlocks repaired",
			"player_id", playerID,
			"level", out.State.Level)
	}

	if out.Created || out.Recovered || out.Repaired {
		if err := s.save(ctx, playerID, out.State); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *service) save(ctx context.Context, playerID string, state *entities.ProgressState) error {
	state.UpdatedAt = s.clock.Now()
	if err := s.repo.Save(ctx, progressionrepo.SaveInput{PlayerID: playerID, State: state}); err != nil {
		return errors.Wrapf(err, "failed to save progress for player %s", playerID)
	}
	return nil
}

// mutate loads the player, applies fn, persists and reports the result
func (s *service) mutate(
	ctx context.Context,
	playerID, source string,
	fn func(state *entities.ProgressState) (int, []string),
) (*RecordOutput, error) {
	if playerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	loaded, err := s.load(ctx, playerID)
	if err != nil {
		return nil, err
	}

	state := loaded.State
	before := state.Clone()
	gained, events := fn(state)

	if err := s.save(ctx, playerID, state); err != nil {
		return nil, err
	}

	s.metrics.RecordXP(source, gained)
	s.metrics.RecordUnlocks(metrics.UnlockGeneration, len(state.UnlockedGenerations)-len(before.UnlockedGenerations))
	s.metrics.RecordUnlocks(metrics.UnlockMode, countModes(state)-countModes(before))

	return &RecordOutput{
		State:    state.Clone(),
		XPGained: gained,
		Events:   events,
	}, nil
}

// RecordBattle applies the outcome of a battle
func (s *service) RecordBattle(ctx context.Context, input *RecordBattleInput) (*RecordOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	switch input.Outcome {
	case battle.OutcomePlayer, battle.OutcomeOpponent, battle.OutcomeDraw:
	default:
		return nil, errors.InvalidArgumentf("unknown outcome %q", input.Outcome)
	}

	return s.mutate(ctx, input.PlayerID, metrics.SourceBattle, func(state *entities.ProgressState) (int, []string) {
		state.Battles++
		switch input.Outcome {
		case battle.OutcomePlayer:
			state.Victories++
			state.Streak++
			state.BestStreak = max(state.BestStreak, state.Streak)
		case battle.OutcomeOpponent:
			state.Defeats++
			state.Streak = 0
		default:
			state.Draws++
			state.Streak = 0
		}

		signature := OpponentSignature(input.Opponents)
		switch {
		case signature == "":
			state.LastOpponentSignature = ""
			state.RepeatCount = 0
		case signature == state.LastOpponentSignature:
			state.RepeatCount++
		default:
			state.LastOpponentSignature = signature
			state.RepeatCount = 1
		}

		xp := BattleXP(input.Outcome, input.Turns, input.Mode, state.RepeatCount)
		return xp, applyXP(state, xp).events
	})
}

// RecordEvolution marks both forms as evolved and awards the evolution XP
func (s *service) RecordEvolution(ctx context.Context, input *RecordEvolutionInput) (*RecordOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PreviousID <= 0 || input.NewID <= 0 {
		return nil, errors.InvalidArgumentf("evolution ids must be positive, got %d -> %d", input.PreviousID, input.NewID)
	}

	return s.mutate(ctx, input.PlayerID, metrics.SourceEvolution, func(state *entities.ProgressState) (int, []string) {
		state.MarkEvolved(input.PreviousID, input.NewID)
		state.Evolutions++
		return XPEvolution, applyXP(state, XPEvolution).events
	})
}

// GrantBonusXP awards flat experience. The message, when set, leads the
// returned events.
func (s *service) GrantBonusXP(ctx context.Context, input *GrantBonusXPInput) (*RecordOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgumentf("bonus must not be negative, got %d", input.Amount)
	}

	return s.mutate(ctx, input.PlayerID, metrics.SourceBonus, func(state *entities.ProgressState) (int, []string) {
		var events []string
		if input.Message != "" {
			events = append(events, input.Message)
		}
		return input.Amount, append(events, applyXP(state, input.Amount).events...)
	})
}

// Reset restores and persists the default state
func (s *service) Reset(ctx context.Context, input *ResetInput) (*RecordOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	state := DefaultState()
	if err := s.save(ctx, input.PlayerID, state); err != nil {
		return nil, err
	}

	slog.Info("Progress reset", "player_id", input.PlayerID)
	return &RecordOutput{State: state.Clone(), Events: []string{"Progress reset"}}, nil
}

func countModes(state *entities.ProgressState) int {
	n := 0
	for _, on := range state.UnlockedModes {
		if on {
			n++
		}
	}
	return n
}
