// Package dex is the Pokémon data source used to build player and
// opponent teams
package dex

//go:generate mockgen -destination=mock/mock_client.go -package=dexmock github.com/pokearena/tactics-arena/internal/clients/dex Client

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/pokearena/tactics-arena/internal/engine/effectiveness"
	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
)

// ListInput filters catalog listings
type ListInput struct {
	// Generations restricts the listing; empty means every generation
	Generations []int
}

// TeamInput describes a generated team
type TeamInput struct {
	Size        int
	Generations []int
}

// Client defines the data source operations the arena needs
type Client interface {
	// GetPokemon fetches one record by id or by name
	GetPokemon(ctx context.Context, ref string) (*entities.Pokemon, error)

	// ListPokemon returns every record of the requested generations, ordered by id
	ListPokemon(ctx context.Context, input *ListInput) ([]*entities.Pokemon, error)

	// RandomTeam draws distinct records uniformly
	RandomTeam(ctx context.Context, input *TeamInput) ([]*entities.Pokemon, error)

	// BalancedTeam draws distinct records from the middle third of the
	// catalog ordered by base stat total
	BalancedTeam(ctx context.Context, input *TeamInput) ([]*entities.Pokemon, error)

	// EvolutionReadyTeam draws distinct records that can still evolve
	EvolutionReadyTeam(ctx context.Context, input *TeamInput) ([]*entities.Pokemon, error)
}

// ErrEvolutionReadyShortfall is the message returned when the catalog holds
// too few evolvable records
const ErrEvolutionReadyShortfall = "could not generate an evolution-ready team"

// CatalogConfig holds the dependencies of the catalog client
type CatalogConfig struct {
	Entries []*entities.Pokemon
	// Roller is the random source (optional, defaults to dice.DefaultRoller)
	Roller dice.Roller
}

// Validate validates the config and sets defaults
func (cfg *CatalogConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(cfg.Entries) == 0 {
		vb.RequiredField("Entries")
	}

	seen := make(map[int]bool, len(cfg.Entries))
	for i, p := range cfg.Entries {
		if p == nil {
			vb.Fieldf("Entries", "entry %d is nil", i)
			continue
		}
		if err := p.Validate(); err != nil {
			vb.Fieldf("Entries", "entry %d (%s): %v", i, p.Name, err)
		}
		if seen[p.ID] {
			vb.Fieldf("Entries", "duplicate id %d", p.ID)
		}
		seen[p.ID] = true
	}

	if cfg.Roller == nil {
		cfg.Roller = dice.DefaultRoller
	}

	return vb.Build()
}

type catalogClient struct {
	mu      sync.Mutex
	roller  dice.Roller
	entries []*entities.Pokemon
	byID    map[int]*entities.Pokemon
}

// NewCatalogClient creates a client backed by an in-process catalog
func NewCatalogClient(cfg *CatalogConfig) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	entries := entities.CloneTeam(cfg.Entries)
	slices.SortFunc(entries, func(a, b *entities.Pokemon) int { return a.ID - b.ID })

	byID := make(map[int]*entities.Pokemon, len(entries))
	for _, p := range entries {
		byID[p.ID] = p
	}

	return &catalogClient{
		roller:  cfg.Roller,
		entries: entries,
		byID:    byID,
	}, nil
}

// GetPokemon implements Client
func (c *catalogClient) GetPokemon(ctx context.Context, ref string) (*entities.Pokemon, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "get pokemon")
	}
	if ref == "" {
		return nil, errors.InvalidArgument("pokemon reference is required")
	}

	if id, err := strconv.Atoi(ref); err == nil {
		if p, ok := c.byID[id]; ok {
			return p.Clone(), nil
		}
		return nil, errors.NotFoundf("pokemon %d not found", id)
	}

	for _, p := range c.entries {
		if effectiveness.SameType(p.Name, ref) {
			return p.Clone(), nil
		}
	}
	return nil, errors.NotFoundf("pokemon %q not found", ref)
}

// ListPokemon implements Client
func (c *catalogClient) ListPokemon(ctx context.Context, input *ListInput) ([]*entities.Pokemon, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "list pokemon")
	}

	var generations []int
	if input != nil {
		generations = input.Generations
	}
	return entities.CloneTeam(c.filter(generations, nil)), nil
}

// RandomTeam implements Client
func (c *catalogClient) RandomTeam(ctx context.Context, input *TeamInput) ([]*entities.Pokemon, error) {
	pool, err := c.pool(ctx, input, nil)
	if err != nil {
		return nil, err
	}
	return c.sample(pool, input.Size)
}

// BalancedTeam implements Client
func (c *catalogClient) BalancedTeam(ctx context.Context, input *TeamInput) ([]*entities.Pokemon, error) {
	pool, err := c.pool(ctx, input, nil)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(pool, func(a, b *entities.Pokemon) int {
		return a.Stats.Total() - b.Stats.Total()
	})

	third := len(pool) / 3
	middle := pool[third : len(pool)-third]
	if len(middle) < input.Size {
		middle = pool
	}
	return c.sample(middle, input.Size)
}

// EvolutionReadyTeam implements Client
func (c *catalogClient) EvolutionReadyTeam(ctx context.Context, input *TeamInput) ([]*entities.Pokemon, error) {
	pool, err := c.pool(ctx, input, (*entities.Pokemon).CanEvolve)
	if err != nil {
		return nil, err
	}
	if len(pool) < input.Size {
		return nil, errors.FailedPrecondition(ErrEvolutionReadyShortfall).
			WithMeta("available", len(pool)).
			WithMeta("requested", input.Size)
	}
	return c.sample(pool, input.Size)
}

func (c *catalogClient) pool(ctx context.Context, input *TeamInput, keep func(*entities.Pokemon) bool) ([]*entities.Pokemon, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "build team")
	}
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Size <= 0 {
		return nil, errors.InvalidArgumentf("team size must be positive, got %d", input.Size)
	}

	pool := c.filter(input.Generations, keep)
	if len(pool) == 0 {
		return nil, errors.FailedPrecondition("no pokemon available for the requested generations")
	}
	return pool, nil
}

func (c *catalogClient) filter(generations []int, keep func(*entities.Pokemon) bool) []*entities.Pokemon {
	var out []*entities.Pokemon
	for _, p := range c.entries {
		if len(generations) > 0 && !slices.Contains(generations, p.Generation) {
			continue
		}
		if keep != nil && !keep(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// sample draws up to n distinct records with a partial Fisher-Yates shuffle
func (c *catalogClient) sample(pool []*entities.Pokemon, n int) ([]*entities.Pokemon, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	work := slices.Clone(pool)
	n = min(n, len(work))
	team := make([]*entities.Pokemon, 0, n)
	for i := 0; i < n; i++ {
		remaining := len(work) - i
		roll, err := c.roller.Roll(remaining)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll team member")
		}
		j := i + roll - 1
		work[i], work[j] = work[j], work[i]
		team = append(team, work[i].Clone())
	}
	return team, nil
}
