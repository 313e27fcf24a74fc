package achievement

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/questforge/quest-api/internal/entities"
	"github.com/questforge/quest-api/internal/errors"
	redisclient "github.com/questforge/quest-api/internal/redis"
)

// Key pattern: achievements:{user_id}, hash field per achievement id.
// HSetNX gives us the exactly-once unlock guarantee without a lock.
const achievementKeyPrefix = "achievements:"

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

// NewRedisRepository creates a new Redis repository for achievement unlocks
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

// Unlock records an unlock exactly once per (user, achievement) pair
func (r *redisRepository) Unlock(ctx context.Context, input UnlockInput) (*UnlockOutput, error) {
	if input.Unlock == nil {
		return nil, errors.InvalidArgument("unlock cannot be nil")
	}
	if input.Unlock.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if input.Unlock.AchievementID == "" {
		return nil, errors.InvalidArgument("achievement ID cannot be empty")
	}

	data, err := json.Marshal(input.Unlock)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal unlock record")
	}

	key := r.buildKey(input.Unlock.UserID)
	set, err := r.client.HSetNX(ctx, key, input.Unlock.AchievementID, data).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store unlock record in Redis")
	}
	if !set {
		return nil, errors.AlreadyExistsf("achievement %q already unlocked for user %q",
			input.Unlock.AchievementID, input.Unlock.UserID)
	}

	return &UnlockOutput{
		Unlock: input.Unlock,
	}, nil
}

// List returns every unlock recorded for a user
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	key := r.buildKey(input.UserID)
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list unlock records from Redis")
	}

	unlocks := make([]*entities.UserAchievement, 0, len(fields))
	for id, data := range fields {
		var unlock entities.UserAchievement
		if err := json.Unmarshal([]byte(data), &unlock); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal unlock record %q", id)
		}
		unlocks = append(unlocks, &unlock)
	}

	return &ListOutput{
		Unlocks: unlocks,
	}, nil
}

// buildKey creates the Redis key for a user's unlock hash
func (r *redisRepository) buildKey(userID string) string {
	return fmt.Sprintf("%s%s", achievementKeyPrefix, userID)
}
