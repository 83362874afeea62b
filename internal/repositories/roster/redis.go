package roster

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
	redisclient "github.com/pokearena/tactics-arena/internal/redis"
)

// Key pattern: arena:roster:{player_id}
const rosterKeyPrefix = "arena:roster:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for rosters
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get loads the roster of a player
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	raw, err := r.client.Get(ctx, rosterKeyPrefix+input.PlayerID).Bytes()
	if err != nil {
		if stderrors.Is(err, redisclient.Nil) {
			return nil, errors.NotFound("roster not found").WithMeta("player_id", input.PlayerID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get roster from Redis")
	}

	var roster entities.Roster
	if err := json.Unmarshal(raw, &roster); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored roster is corrupted").
			WithMeta("player_id", input.PlayerID)
	}

	return &GetOutput{Roster: &roster}, nil
}

// Save stores the roster without expiry
func (r *redisRepository) Save(ctx context.Context, input SaveInput) error {
	if input.Roster == nil {
		return errors.InvalidArgument(errRosterNil)
	}
	if input.Roster.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}

	raw, err := json.Marshal(input.Roster)
	if err != nil {
		return errors.Wrap(err, "failed to marshal roster")
	}

	if err := r.client.Set(ctx, rosterKeyPrefix+input.Roster.PlayerID, raw, 0).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store roster in Redis")
	}
	return nil
}
