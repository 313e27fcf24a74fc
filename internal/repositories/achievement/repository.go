// Package achievement provides repository interface and types for
// achievement unlock records.
package achievement

import (
	"context"

	"github.com/questforge/quest-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=achievementmock github.com/questforge/quest-api/internal/repositories/achievement Repository

// UnlockInput contains parameters for recording an unlock
type UnlockInput struct {
	Unlock *entities.UserAchievement
}

// UnlockOutput contains the result of recording an unlock
type UnlockOutput struct {
	Unlock *entities.UserAchievement
}

// ListInput contains parameters for listing a user's unlocks
type ListInput struct {
	UserID string
}

// ListOutput contains a user's unlock records
type ListOutput struct {
	Unlocks []*entities.UserAchievement
}

// Repository defines the interface for achievement unlock storage
type Repository interface {
	// Unlock records an unlock exactly once per (user, achievement)
	// pair. A repeated unlock returns an already exists error.
	Unlock(ctx context.Context, input UnlockInput) (*UnlockOutput, error)

	// List returns every unlock recorded for a user
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
