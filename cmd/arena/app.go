package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pokearena/tactics-arena/internal/clients/dex"
	"github.com/pokearena/tactics-arena/internal/engine/battle"
	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
	"github.com/pokearena/tactics-arena/internal/orchestrators/arena"
	"github.com/pokearena/tactics-arena/internal/pkg/metrics"
	redisclient "github.com/pokearena/tactics-arena/internal/redis"
	progressionrepo "github.com/pokearena/tactics-arena/internal/repositories/progression"
	"github.com/pokearena/tactics-arena/internal/repositories/roster"
	"github.com/pokearena/tactics-arena/internal/services/evolution"
	"github.com/pokearena/tactics-arena/internal/services/progression"
)

// DefaultTeamSize is used when no team is given
const DefaultTeamSize = 3

// appConfig describes how the CLI wires its dependencies
type appConfig struct {
	DexPath   string
	RedisAddr string
	Out       io.Writer
}

// Validate ensures the required settings are present
func (c *appConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("dex", c.DexPath, vb)
	if c.Out == nil {
		vb.RequiredField("Out")
	}

	return vb.Build()
}

// app is the wired object graph behind every command
type app struct {
	dex         dex.Client
	progression progression.Service
	arena       arena.Service
	rosterRepo  roster.Repository
	registry    *prometheus.Registry
	out         io.Writer

	redis redisclient.Client
}

func newApp(ctx context.Context, cfg *appConfig) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	catalog, err := dex.LoadCatalog(cfg.DexPath)
	if err != nil {
		return nil, err
	}
	dexClient, err := dex.NewCatalogClient(&dex.CatalogConfig{Entries: catalog})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dex client")
	}

	a := &app{
		dex:      dexClient,
		registry: prometheus.NewRegistry(),
		out:      cfg.Out,
	}

	progressRepo, rosterRepo, err := a.repositories(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, err
	}
	a.rosterRepo = rosterRepo

	arenaMetrics := metrics.NewArenaMetricsWithRegistry("arena", a.registry)

	a.progression, err = progression.NewService(&progression.Config{
		Repository: progressRepo,
		Metrics:    arenaMetrics,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create progression service")
	}

	evolutionService, err := evolution.NewService(&evolution.Config{DexClient: dexClient})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create evolution service")
	}

	bus := events.NewBus()
	bus.SubscribeFunc(arena.EventProgressionUpdated, 0, a.printMessages)

	a.arena, err = arena.NewOrchestrator(&arena.Config{
		DexClient:   dexClient,
		Simulator:   battle.NewSimulator(),
		Progression: a.progression,
		Evolution:   evolutionService,
		RosterRepo:  rosterRepo,
		EventBus:    bus,
		Metrics:     arenaMetrics,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create arena orchestrator")
	}

	return a, nil
}

// repositories picks Redis storage when an address is given, memory otherwise
func (a *app) repositories(ctx context.Context, addr string) (progressionrepo.Repository, roster.Repository, error) {
	if addr == "" {
		return progressionrepo.NewInMemory(), roster.NewInMemory(), nil
	}

	client, err := redisclient.NewClient(addr, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create redis client")
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is not reachable").
			WithMeta("addr", addr)
	}
	a.redis = client

	progressRepo, err := progressionrepo.NewRedisRepository(&progressionrepo.Config{Client: client})
	if err != nil {
		return nil, nil, err
	}
	rosterRepo, err := roster.NewRedisRepository(&roster.Config{Client: client})
	if err != nil {
		return nil, nil, err
	}
	return progressRepo, rosterRepo, nil
}

// Close releases the Redis connection, if any
func (a *app) Close() {
	if a.redis != nil {
		_ = a.redis.Close() // nolint:errcheck // safe to ignore on exit
	}
}

// printMessages echoes progression messages as they are published
func (a *app) printMessages(_ context.Context, event events.Event) error {
	raw, ok := event.Context().Get("messages")
	if !ok {
		return nil
	}
	messages, ok := raw.([]string)
	if !ok {
		return nil
	}
	for _, m := range messages {
		fmt.Fprintf(a.out, "  ✨ %s\n", m)
	}
	return nil
}

// resolveTeam looks up every comma separated reference, or draws a random
// team from the player's unlocked generations
func (a *app) resolveTeam(ctx context.Context, playerID string, refs []string) ([]*battle.Combatant, error) {
	var records []*entities.Pokemon

	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		p, err := a.dex.GetPokemon(ctx, ref)
		if err != nil {
			return nil, errors.Wrapf(err, "unknown team member %q", ref)
		}
		records = append(records, p)
	}

	if len(records) == 0 {
		loaded, err := a.progression.Load(ctx, &progression.LoadInput{PlayerID: playerID})
		if err != nil {
			return nil, err
		}
		records, err = a.dex.RandomTeam(ctx, &dex.TeamInput{
			Size:        DefaultTeamSize,
			Generations: loaded.State.UnlockedGenerations,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to draw a team")
		}
	}

	return arena.NewParty(records), nil
}

// acceptAll applies every offered evolution once, skipping stale offers
func (a *app) acceptAll(ctx context.Context, playerID string, team []*battle.Combatant, stages []*arena.StageResult) error {
	seen := make(map[string]bool)
	for _, stage := range stages {
		for _, c := range stage.Candidates {
			if seen[c.Key] {
				continue
			}
			seen[c.Key] = true

			_, err := a.arena.AcceptEvolution(ctx, &arena.AcceptEvolutionInput{
				PlayerID:  playerID,
				Team:      team,
				Candidate: c,
			})
			if errors.IsFailedPrecondition(err) {
				continue
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
