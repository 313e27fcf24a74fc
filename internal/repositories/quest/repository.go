// Package quest provides repository interface and types for quest
// definitions and per-user quest progress.
package quest

import (
	"context"

	"github.com/questforge/quest-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=questmock github.com/questforge/quest-api/internal/repositories/quest Repository

// GetDefinitionInput contains parameters for retrieving a quest definition
type GetDefinitionInput struct {
	QuestID string
}

// GetDefinitionOutput contains the retrieved quest definition
type GetDefinitionOutput struct {
	Quest *entities.Quest
}

// SaveDefinitionInput contains a quest definition to store
type SaveDefinitionInput struct {
	Quest *entities.Quest
}

// GetUserQuestInput contains parameters for retrieving a user's quest progress
type GetUserQuestInput struct {
	UserID  string
	QuestID string
}

// GetUserQuestOutput contains the retrieved user quest record
type GetUserQuestOutput struct {
	UserQuest *entities.UserQuest
}

// ListUserQuestsInput contains parameters for listing a user's quest records
type ListUserQuestsInput struct {
	UserID string
}

// ListUserQuestsOutput contains a user's quest records
type ListUserQuestsOutput struct {
	UserQuests []*entities.UserQuest
}

// Repository defines the interface for quest storage
type Repository interface {
	// GetDefinition retrieves a quest definition by id
	GetDefinition(ctx context.Context, input GetDefinitionInput) (*GetDefinitionOutput, error)

	// SaveDefinition stores a quest definition, overwriting any
	// previous version
	SaveDefinition(ctx context.Context, input SaveDefinitionInput) error

	// GetUserQuest retrieves a user's progress for one quest
	GetUserQuest(ctx context.Context, input GetUserQuestInput) (*GetUserQuestOutput, error)

	// SaveUserQuest stores a user's quest progress, overwriting any
	// previous record
	SaveUserQuest(ctx context.Context, userQuest *entities.UserQuest) error

	// ListUserQuests returns every quest record for a user
	ListUserQuests(ctx context.Context, input ListUserQuestsInput) (*ListUserQuestsOutput, error)
}
