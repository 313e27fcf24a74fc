package gamesession

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/questforge/quest-api/internal/entities"
	"github.com/questforge/quest-api/internal/errors"
	redisclient "github.com/questforge/quest-api/internal/redis"
)

// Key pattern: game_session:{session_id}
const sessionKeyPrefix = "game_session:"

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

// NewRedisRepository creates a new Redis repository for game sessions
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

// Create stores a new session; fails if the id already exists
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument("session cannot be nil")
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument("session ID cannot be empty")
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	key := r.buildKey(input.Session.ID)
	set, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store session in Redis")
	}
	if !set {
		return nil, errors.AlreadyExistsf("session %q already exists", input.Session.ID)
	}

	return &CreateOutput{
		Session: input.Session,
	}, nil
}

// Get retrieves a session by id
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID cannot be empty")
	}

	data, err := r.client.Get(ctx, r.buildKey(input.SessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("session %q not found", input.SessionID)
		}
		return nil, errors.Wrapf(err, "failed to get session from Redis")
	}

	var session entities.GameSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	return &GetOutput{
		Session: &session,
	}, nil
}

// Update persists the session if its Version still matches the stored
// record. The WATCH/MULTI round trip guarantees concurrent writers for
// the same session are serialized without a lock.
func (r *redisRepository) Update(ctx context.Context, session *entities.GameSession) error {
	if session == nil {
		return errors.InvalidArgument("session cannot be nil")
	}
	if session.ID == "" {
		return errors.InvalidArgument("session ID cannot be empty")
	}

	key := r.buildKey(session.ID)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("session %q not found", session.ID)
			}
			return errors.Wrapf(err, "failed to read session for update")
		}

		var stored entities.GameSession
		if err := json.Unmarshal([]byte(data), &stored); err != nil {
			return errors.Wrapf(err, "failed to unmarshal stored session")
		}

		if stored.Version != session.Version {
			return errors.FailedPreconditionf("session %q was modified concurrently (version %d, expected %d)",
				session.ID, stored.Version, session.Version)
		}

		next := *session
		next.Version = session.Version + 1

		payload, err := json.Marshal(&next)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal session")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		return err
	}, key)

	if err == redis.TxFailedErr {
		return errors.FailedPreconditionf("session %q was modified concurrently", session.ID)
	}
	if err != nil {
		return errors.Wrap(err, "failed to update session")
	}

	session.Version++
	return nil
}

// buildKey creates the Redis key for a session record
func (r *redisRepository) buildKey(sessionID string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, sessionID)
}
