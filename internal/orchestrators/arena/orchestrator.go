// Package arena sequences battles into game modes: free battles, survival
// runs and tournaments
package arena

//go:generate mockgen -destination=mock/mock_service.go -package=arenamock github.com/pokearena/tactics-arena/internal/orchestrators/arena Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/pokearena/tactics-arena/internal/clients/dex"
	"github.com/pokearena/tactics-arena/internal/engine/battle"
	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
	"github.com/pokearena/tactics-arena/internal/pkg/clock"
	"github.com/pokearena/tactics-arena/internal/pkg/idgen"
	"github.com/pokearena/tactics-arena/internal/pkg/metrics"
	"github.com/pokearena/tactics-arena/internal/repositories/roster"
	"github.com/pokearena/tactics-arena/internal/services/evolution"
	"github.com/pokearena/tactics-arena/internal/services/progression"
)

// Service defines the game modes
type Service interface {
	FreeBattle(ctx context.Context, input *FreeBattleInput) (*FreeBattleOutput, error)
	Survival(ctx context.Context, input *SurvivalInput) (*SurvivalOutput, error)
	Tournament(ctx context.Context, input *TournamentInput) (*TournamentOutput, error)

	// AcceptEvolution applies an offered evolution to the party
	AcceptEvolution(ctx context.Context, input *AcceptEvolutionInput) (*AcceptEvolutionOutput, error)
}

// Config holds the dependencies for the arena orchestrator
type Config struct {
	DexClient   dex.Client
	Simulator   battle.Simulator
	Progression progression.Service
	Evolution   evolution.Service
	RosterRepo  roster.Repository

	// Roller drives roster unlock draws (optional, defaults to dice.DefaultRoller)
	Roller dice.Roller
	// EventBus receives outbound notifications (optional, defaults to a private bus)
	EventBus events.EventBus
	// IDGenerator names battles (optional, defaults to prefixed UUIDs)
	IDGenerator idgen.Generator
	// Clock stamps roster updates (optional, defaults to the real clock)
	Clock clock.Clock
	// Metrics is optional
	Metrics *metrics.ArenaMetrics
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DexClient == nil {
		vb.RequiredField("DexClient")
	}
	if c.Simulator == nil {
		vb.RequiredField("Simulator")
	}
	if c.Progression == nil {
		vb.RequiredField("Progression")
	}
	if c.Evolution == nil {
		vb.RequiredField("Evolution")
	}
	if c.RosterRepo == nil {
		vb.RequiredField("RosterRepo")
	}

	if c.Roller == nil {
		c.Roller = dice.DefaultRoller
	}
	if c.EventBus == nil {
		c.EventBus = events.NewBus()
	}
	if c.IDGenerator == nil {
		c.IDGenerator = idgen.NewUUID("battle")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}

	return vb.Build()
}

type orchestrator struct {
	dexClient   dex.Client
	simulator   battle.Simulator
	progression progression.Service
	evolution   evolution.Service
	rosterRepo  roster.Repository
	roller      dice.Roller
	eventBus    events.EventBus
	idGen       idgen.Generator
	clock       clock.Clock
	metrics     *metrics.ArenaMetrics
}

// NewOrchestrator creates a new arena orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		dexClient:   cfg.DexClient,
		simulator:   cfg.Simulator,
		progression: cfg.Progression,
		evolution:   cfg.Evolution,
		rosterRepo:  cfg.RosterRepo,
		roller:      cfg.Roller,
		eventBus:    cfg.EventBus,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		metrics:     cfg.Metrics,
	}, nil
}

// NewParty turns records into a full-health player party
func NewParty(records []*entities.Pokemon) []*battle.Combatant {
	return battle.NewTeam(records, battle.SidePlayer)
}

func validateParty(playerID string, team []*battle.Combatant) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("PlayerID", playerID, vb)
	if len(team) == 0 {
		vb.RequiredField("Team")
	}
	for i, c := range team {
		if c == nil || c.Pokemon == nil {
			vb.Fieldf("Team", "member %d is empty", i)
		}
	}

	return vb.Build()
}

// checkpoint is called between stages; a running battle is never interrupted
func checkpoint(ctx context.Context, stage string) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeCanceled, "run abandoned before "+stage)
	}
	return nil
}

// loadUnlocked loads the player's progress and checks the mode is open
func (o *orchestrator) loadUnlocked(ctx context.Context, playerID, mode string) (*entities.ProgressState, error) {
	loaded, err := o.progression.Load(ctx, &progression.LoadInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load progress")
	}
	if !loaded.State.ModeUnlocked(mode) {
		return nil, errors.FailedPreconditionf("%s mode is locked", mode).
			WithMeta("player_id", playerID).
			WithMeta("level", loaded.State.Level)
	}
	return loaded.State, nil
}

// stageInput describes one battle of a mode
type stageInput struct {
	playerID string
	mode     string
	stage    string
	party    []*battle.Combatant
	opponent []*entities.Pokemon
}

// fight simulates one battle, records it, heals the party and gathers
// evolution candidates after a win
func (o *orchestrator) fight(ctx context.Context, in stageInput) (*StageResult, error) {
	stage := &StageResult{
		BattleID:       o.idGen.Generate(),
		Mode:           in.mode,
		Stage:          in.stage,
		PlayerBefore:   battle.CloneTeam(in.party),
		OpponentBefore: battle.NewTeam(in.opponent, battle.SideOpponent),
	}

	result := o.simulator.Simulate(battle.Records(in.party), in.opponent)
	stage.Result = result

	slog.Info("Battle simulated",
		"battle_id", stage.BattleID,
		"player_id", in.playerID,
		"mode", in.mode,
		"stage", in.stage,
		"outcome", result.Outcome,
		"turns", result.Turns)

	o.metrics.RecordBattle(string(result.Outcome), in.mode, result.Turns)
	o.publish(ctx, EventBattleCompleted, in.playerID, map[string]any{
		"battle_id": stage.BattleID,
		"mode":      in.mode,
		"stage":     in.stage,
		"outcome":   string(result.Outcome),
		"turns":     result.Turns,
		"result":    result,
	})

	progress, err := o.progression.RecordBattle(ctx, &progression.RecordBattleInput{
		PlayerID:  in.playerID,
		Outcome:   result.Outcome,
		Turns:     result.Turns,
		Mode:      in.mode,
		Opponents: in.opponent,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to record battle %s", stage.BattleID)
	}
	stage.Progress = progress
	o.publishProgress(ctx, in.playerID, progress)

	battle.HealTeam(in.party)

	if result.Outcome != battle.OutcomePlayer {
		return stage, nil
	}

	gathered, err := o.evolution.GatherCandidates(ctx, &evolution.GatherCandidatesInput{
		Team:  in.party,
		State: progress.State,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to gather evolution candidates")
	}
	stage.Candidates = gathered.Candidates

	if len(stage.Candidates) > 0 {
		o.publish(ctx, EventEvolutionOffered, in.playerID, map[string]any{
			"battle_id":  stage.BattleID,
			"candidates": stage.Candidates,
		})
	}
	return stage, nil
}

// FreeBattle runs a single battle
func (o *orchestrator) FreeBattle(ctx context.Context, input *FreeBattleInput) (*FreeBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateParty(input.PlayerID, input.Team); err != nil {
		return nil, err
	}

	state, err := o.loadUnlocked(ctx, input.PlayerID, entities.ModeFree)
	if err != nil {
		return nil, err
	}

	opponent := entities.CloneTeam(input.Opponent)
	if len(opponent) == 0 {
		opponent, err = o.dexClient.RandomTeam(ctx, &dex.TeamInput{
			Size:        len(input.Team),
			Generations: state.UnlockedGenerations,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to draw an opponent")
		}
	}

	stage, err := o.fight(ctx, stageInput{
		playerID: input.PlayerID,
		mode:     entities.ModeFree,
		stage:    "battle",
		party:    input.Team,
		opponent: opponent,
	})
	if err != nil {
		return nil, err
	}

	return &FreeBattleOutput{Stage: stage, Team: input.Team}, nil
}

// AcceptEvolution applies a candidate and records it in progression
func (o *orchestrator) AcceptEvolution(ctx context.Context, input *AcceptEvolutionInput) (*AcceptEvolutionOutput, error) {
	if input == nil || input.Candidate == nil {
		return nil, errors.InvalidArgument("candidate is required")
	}
	if err := validateParty(input.PlayerID, input.Team); err != nil {
		return nil, err
	}

	applied := o.evolution.Apply(&evolution.ApplyInput{
		Team:      input.Team,
		Candidate: input.Candidate,
	})
	if applied == nil {
		return nil, errors.FailedPrecondition("evolution candidate is stale").
			WithMeta("key", input.Candidate.Key).
			WithMeta("slot", input.Candidate.Slot)
	}

	progress, err := o.progression.RecordEvolution(ctx, &progression.RecordEvolutionInput{
		PlayerID:   input.PlayerID,
		PreviousID: applied.PreviousID,
		NewID:      applied.NewID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record evolution")
	}

	o.metrics.RecordEvolution()
	progress.Events = append([]string{applied.Message}, progress.Events...)
	o.publishProgress(ctx, input.PlayerID, progress)

	return &AcceptEvolutionOutput{
		Evolution: applied,
		Progress:  progress,
		Team:      input.Team,
	}, nil
}
