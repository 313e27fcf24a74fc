package gamemode

import (
	"github.com/questforge/quest-api/internal/entities"
	"github.com/questforge/quest-api/internal/errors"
)

// Allowed session transitions: waiting -> active -> completed, with
// waiting|active -> cancelled.
var transitions = map[entities.SessionStatus][]entities.SessionStatus{
	entities.SessionWaiting: {entities.SessionActive, entities.SessionCancelled},
	entities.SessionActive:  {entities.SessionCompleted, entities.SessionCancelled},
}

// CanTransition reports whether a session may move from one status to
// another.
func CanTransition(from, to entities.SessionStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// MinParticipants returns the participant count required before a
// session of the given mode may start: 1 for practice, 2 otherwise.
func MinParticipants(mode entities.GameMode) int {
	if mode.Type == entities.GameModePractice {
		return 1
	}
	return 2
}

// IsSolo reports whether the mode runs single-player sessions, which
// self-activate on creation.
func IsSolo(mode entities.GameMode) bool {
	return mode.Type == entities.GameModePractice
}

// ValidateJoin checks that a participant may join the session.
func ValidateJoin(mode entities.GameMode, session *entities.GameSession, userID string) error {
	if session.Status != entities.SessionWaiting {
		return errors.InvalidSessionStatef("cannot join session in state %q", session.Status)
	}
	if session.Participant(userID) != nil {
		return errors.AlreadyExistsf("user %q already joined session %q", userID, session.ID)
	}
	if mode.MaxParticipants > 0 && len(session.Participants) >= mode.MaxParticipants {
		return errors.SessionFullf("session %q is at capacity (%d)", session.ID, mode.MaxParticipants)
	}
	return nil
}

// ValidateStart checks that a session may move to active. Only the host
// may start a multiplayer session; the participant count must reach the
// mode minimum.
func ValidateStart(mode entities.GameMode, session *entities.GameSession, requesterID string) error {
	if session.Status != entities.SessionWaiting {
		return errors.InvalidSessionStatef("cannot start session in state %q", session.Status)
	}
	if !IsSolo(mode) && requesterID != session.HostID {
		return errors.PermissionDeniedf("only the host may start session %q", session.ID)
	}
	if len(session.Participants) < MinParticipants(mode) {
		return errors.FailedPreconditionf(
			"session %q needs at least %d participants, has %d",
			session.ID, MinParticipants(mode), len(session.Participants))
	}
	return nil
}

// ValidateScoring checks that a session accepts answer scoring. Scoring
// against anything but an active session is an error, never a silent
// no-op.
func ValidateScoring(session *entities.GameSession, userID string) error {
	if session.Status != entities.SessionActive {
		return errors.InvalidSessionStatef("cannot score answers for session in state %q", session.Status)
	}
	p := session.Participant(userID)
	if p == nil {
		return errors.NotFoundf("user %q is not a participant of session %q", userID, session.ID)
	}
	if !p.Active {
		return errors.InvalidSessionStatef("user %q has been eliminated from session %q", userID, session.ID)
	}
	return nil
}

// ValidateCancel checks that a session may be cancelled.
func ValidateCancel(session *entities.GameSession, requesterID string) error {
	if !CanTransition(session.Status, entities.SessionCancelled) {
		return errors.InvalidSessionStatef("cannot cancel session in state %q", session.Status)
	}
	if requesterID != session.HostID {
		return errors.PermissionDeniedf("only the host may cancel session %q", session.ID)
	}
	return nil
}

// EndConditionMet reports whether the mode-specific end condition holds.
// This is checked after every scored answer; nothing polls. For timed
// and practice modes the expiry signal comes from the caller.
func EndConditionMet(mode entities.GameMode, session *entities.GameSession, timerExpired bool) bool {
	switch mode.Type {
	case entities.GameModeSurvival:
		return session.ActiveParticipants() <= 1
	case entities.GameModeCompetitive:
		return mode.TotalRounds > 0 && session.CurrentRound >= mode.TotalRounds
	case entities.GameModeTimed, entities.GameModePractice:
		return timerExpired
	default:
		return false
	}
}
