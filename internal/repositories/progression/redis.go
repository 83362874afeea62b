package progression

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
	redisclient "github.com/pokearena/tactics-arena/internal/redis"
)

// KeyPrefix starts every progress key: arena:progress:{player_id}
const KeyPrefix = "arena:progress:"

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

// NewRedisRepository creates a new Redis repository for progress snapshots
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get loads the snapshot of a player
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	raw, err := r.client.Get(ctx, r.buildKey(input.PlayerID)).Bytes()
	if err != nil {
		if stderrors.Is(err, redisclient.Nil) {
			return nil, errors.NotFound("progress not found").WithMeta("player_id", input.PlayerID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get progress from Redis")
	}

	var state entities.ProgressState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored progress is corrupted").
			WithMeta("player_id", input.PlayerID)
	}

	return &GetOutput{State: &state}, nil
}

// Save stores the snapshot of a player without expiry
func (r *redisRepository) Save(ctx context.Context, input SaveInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.State == nil {
		return errors.InvalidArgument(errStateNil)
	}

	raw, err := json.Marshal(input.State)
	if err != nil {
		return errors.Wrap(err, "failed to marshal progress")
	}

	if err := r.client.Set(ctx, r.buildKey(input.PlayerID), raw, 0).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store progress in Redis")
	}
	return nil
}

// Delete removes the snapshot of a player
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}

	if err := r.client.Del(ctx, r.buildKey(input.PlayerID)).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete progress from Redis")
	}
	return nil
}

func (r *redisRepository) buildKey(playerID string) string {
	return fmt.Sprintf("%s%s", KeyPrefix, playerID)
}
