package character

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/questforge/quest-api/internal/entities"
	"github.com/questforge/quest-api/internal/errors"
	redisclient "github.com/questforge/quest-api/internal/redis"
)

const (
	// Key pattern: character:{user_id}
	characterKeyPrefix = "character:"

	errProgressNil  = "progress cannot be nil"
	errUserIDEmpty  = "user ID cannot be empty"
)

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

// NewRedisRepository creates a new Redis repository for character progress
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get retrieves a character's progress by user ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	key := r.buildKey(input.UserID)

	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character progress not found for user %q", input.UserID)
		}
		return nil, errors.Wrapf(err, "failed to get character progress from Redis")
	}

	var progress entities.CharacterProgress
	if err := json.Unmarshal([]byte(data), &progress); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character progress")
	}

	return &GetOutput{
		Progress: &progress,
	}, nil
}

// Create stores a new progress record; fails if one already exists
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Progress == nil {
		return nil, errors.InvalidArgument(errProgressNil)
	}
	if input.Progress.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	data, err := json.Marshal(input.Progress)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character progress")
	}

	key := r.buildKey(input.Progress.UserID)
	set, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store character progress in Redis")
	}
	if !set {
		return nil, errors.AlreadyExistsf("character progress already exists for user %q", input.Progress.UserID)
	}

	return &CreateOutput{
		Progress: input.Progress,
	}, nil
}

// Update replaces an existing progress record
func (r *redisRepository) Update(ctx context.Context, progress *entities.CharacterProgress) error {
	if progress == nil {
		return errors.InvalidArgument(errProgressNil)
	}
	if progress.UserID == "" {
		return errors.InvalidArgument(errUserIDEmpty)
	}

	data, err := json.Marshal(progress)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal character progress")
	}

	key := r.buildKey(progress.UserID)
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to update character progress in Redis")
	}

	return nil
}

// buildKey creates the Redis key for a character progress record
func (r *redisRepository) buildKey(userID string) string {
	return fmt.Sprintf("%s%s", characterKeyPrefix, userID)
}
