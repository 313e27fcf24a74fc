package quest

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
	// Key pattern: quest_def:{quest_id}
	definitionKeyPrefix = "quest_def:"

	// Key pattern: user_quests:{user_id}, hash field per quest id
	userQuestKeyPrefix = "user_quests:"
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

// NewRedisRepository creates a new Redis repository for quests
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

// GetDefinition retrieves a quest definition by id
func (r *redisRepository) GetDefinition(ctx context.Context, input GetDefinitionInput) (*GetDefinitionOutput, error) {
	if input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID cannot be empty")
	}

	data, err := r.client.Get(ctx, r.definitionKey(input.QuestID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("quest %q not found", input.QuestID)
		}
		return nil, errors.Wrapf(err, "failed to get quest definition from Redis")
	}

	var q entities.Quest
	if err := json.Unmarshal([]byte(data), &q); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal quest definition")
	}

	return &GetDefinitionOutput{
		Quest: &q,
	}, nil
}

// SaveDefinition stores a quest definition
func (r *redisRepository) SaveDefinition(ctx context.Context, input SaveDefinitionInput) error {
	if input.Quest == nil {
		return errors.InvalidArgument("quest cannot be nil")
	}
	if input.Quest.ID == "" {
		return errors.InvalidArgument("quest ID cannot be empty")
	}

	data, err := json.Marshal(input.Quest)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal quest definition")
	}

	if err := r.client.Set(ctx, r.definitionKey(input.Quest.ID), data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store quest definition in Redis")
	}

	return nil
}

// GetUserQuest retrieves a user's progress for one quest
func (r *redisRepository) GetUserQuest(ctx context.Context, input GetUserQuestInput) (*GetUserQuestOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID cannot be empty")
	}

	data, err := r.client.HGet(ctx, r.userQuestKey(input.UserID), input.QuestID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no quest record for user %q and quest %q", input.UserID, input.QuestID)
		}
		return nil, errors.Wrapf(err, "failed to get user quest from Redis")
	}

	var uq entities.UserQuest
	if err := json.Unmarshal([]byte(data), &uq); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal user quest")
	}

	return &GetUserQuestOutput{
		UserQuest: &uq,
	}, nil
}

// SaveUserQuest stores a user's quest progress
func (r *redisRepository) SaveUserQuest(ctx context.Context, userQuest *entities.UserQuest) error {
	if userQuest == nil {
		return errors.InvalidArgument("user quest cannot be nil")
	}
	if userQuest.UserID == "" {
		return errors.InvalidArgument("user ID cannot be empty")
	}
	if userQuest.QuestID == "" {
		return errors.InvalidArgument("quest ID cannot be empty")
	}

	data, err := json.Marshal(userQuest)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal user quest")
	}

	if err := r.client.HSet(ctx, r.userQuestKey(userQuest.UserID), userQuest.QuestID, data).Err(); err != nil {
		return errors.Wrapf(err, "failed to store user quest in Redis")
	}

	return nil
}

// ListUserQuests returns every quest record for a user
func (r *redisRepository) ListUserQuests(ctx context.Context, input ListUserQuestsInput) (*ListUserQuestsOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, r.userQuestKey(input.UserID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list user quests from Redis")
	}

	userQuests := make([]*entities.UserQuest, 0, len(fields))
	for id, data := range fields {
		var uq entities.UserQuest
		if err := json.Unmarshal([]byte(data), &uq); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal user quest %q", id)
		}
		userQuests = append(userQuests, &uq)
	}

	return &ListUserQuestsOutput{
		UserQuests: userQuests,
	}, nil
}

func (r *redisRepository) definitionKey(questID string) string {
	return fmt.Sprintf("%s%s", definitionKeyPrefix, questID)
}

func (r *redisRepository) userQuestKey(userID string) string {
	return fmt.Sprintf("%s%s", userQuestKeyPrefix, userID)
}
