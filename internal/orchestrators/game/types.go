package game

import (
	"github.com/questforge/quest-api/internal/entities"
)

// CreateSessionInput contains parameters for creating a game session
type CreateSessionInput struct {
	HostID string
	ModeID string
}

// CreateSessionOutput contains the created session
type CreateSessionOutput struct {
	Session *entities.GameSession
	Mode    *entities.GameMode
}

// JoinSessionInput contains parameters for joining a waiting session
type JoinSessionInput struct {
	SessionID string
	UserID    string
}

// JoinSessionOutput contains the session after joining
type JoinSessionOutput struct {
	Session *entities.GameSession
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	SessionID string
	UserID    string
}

// StartSessionOutput contains the session after starting
type StartSessionOutput struct {
	Session *entities.GameSession
}

// SubmitAnswerInput contains one participant's answer event.
//
// AdvanceRound marks this answer as closing the current round; the
// round counter only matters for competitive modes. TimerExpired is the
// external expiry signal for timed modes.
type SubmitAnswerInput struct {
	SessionID        string
	UserID           string
	Correct          bool
	TimeSpentSeconds float64
	AdvanceRound     bool
	TimerExpired     bool
}

// ParticipantResult is one participant's final standing
type ParticipantResult struct {
	UserID  string
	Rank    int
	Score   int
	Rewards []entities.Reward

	// XP granted from reward tiers at completion
	XPAwarded int
}

// SubmitAnswerOutput contains the scoring result and, when this answer
// ended the session, the final standings
type SubmitAnswerOutput struct {
	Session  *entities.GameSession
	Points   int
	NewTotal int

	SessionCompleted bool
	Results          []ParticipantResult
}

// CancelSessionInput contains parameters for cancelling a session
type CancelSessionInput struct {
	SessionID string
	UserID    string
}

// CancelSessionOutput contains the cancelled session
type CancelSessionOutput struct {
	Session *entities.GameSession
}

// GetSessionInput contains parameters for fetching a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the session and its mode ruleset
type GetSessionOutput struct {
	Session *entities.GameSession
	Mode    *entities.GameMode
}
