// Package gamesession provides repository interface and types for game
// session storage.
package gamesession

import (
	"context"

	"github.com/questforge/quest-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=gamesessionmock github.com/questforge/quest-api/internal/repositories/gamesession Repository

// CreateInput contains parameters for creating a session
type CreateInput struct {
	Session *entities.GameSession
}

// CreateOutput contains the result of creating a session
type CreateOutput struct {
	Session *entities.GameSession
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	SessionID string
}

// GetOutput contains the retrieved session
type GetOutput struct {
	Session *entities.GameSession
}

// Repository defines the interface for game session storage.
//
// Update is a compare-and-swap on the session's Version: a caller must
// pass a session read through Get, and the write fails with a failed
// precondition error when another writer got there first.
type Repository interface {
	// Create stores a new session; fails if the id already exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by id
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update persists the session if its Version still matches the
	// stored record, then bumps the version
	Update(ctx context.Context, session *entities.GameSession) error
}
