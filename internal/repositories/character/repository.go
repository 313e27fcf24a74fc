// Package character provides repository interface and types for
// character progression records.
package character

import (
	"context"

	"github.com/questforge/quest-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/questforge/quest-api/internal/repositories/character Repository

// GetInput contains parameters for retrieving a character's progress
type GetInput struct {
	UserID string
}

// GetOutput contains the result of retrieving a character's progress
type GetOutput struct {
	Progress *entities.CharacterProgress
}

// CreateInput contains parameters for creating a progress record
type CreateInput struct {
	Progress *entities.CharacterProgress
}

// CreateOutput contains the result of creating a progress record
type CreateOutput struct {
	Progress *entities.CharacterProgress
}

// Repository defines the interface for character progress storage
type Repository interface {
	// Get retrieves a character's progress by user ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Create stores a new progress record; fails if one already exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Update replaces an existing progress record
	Update(ctx context.Context, progress *entities.CharacterProgress) error
}
