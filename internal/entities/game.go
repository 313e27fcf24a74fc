package entities

import "time"

// GameModeType selects a mode's end condition and scoring rules.
type GameModeType string

// Known game mode types
const (
	// Practice is the single-player mode; sessions activate on creation.
	GameModePractice GameModeType = "practice"

	// Survival ends when at most one active participant remains.
	GameModeSurvival GameModeType = "survival"

	// Competitive ends when the configured round count is reached.
	GameModeCompetitive GameModeType = "competitive"

	// Timed ends when the caller signals timer expiry. Wrong answers
	// carry a penalty.
	GameModeTimed GameModeType = "timed"
)

// RewardTier describes which final ranks qualify for a reward.
type RewardTier string

// Reward tiers
const (
	RewardTierWinner      RewardTier = "winner"
	RewardTierTop3        RewardTier = "top_3"
	RewardTierTop10       RewardTier = "top_10"
	RewardTierParticipant RewardTier = "participant"
)

// Reward is granted at session completion to participants whose final
// rank qualifies for its tier.
type Reward struct {
	ID   string     `json:"id"`
	Tier RewardTier `json:"tier"`
	Name string     `json:"name"`
	XP   int        `json:"xp"`
}

// GameMode is an immutable ruleset for game sessions.
type GameMode struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type GameModeType `json:"type"`

	// Difficulty 1-5, scales base points
	Difficulty int `json:"difficulty"`

	MaxParticipants int `json:"max_participants"`

	// Rounds before a competitive session completes
	TotalRounds int `json:"total_rounds,omitempty"`

	// Answer time window used for the speed bonus, seconds
	MaxTimeSeconds int `json:"max_time_seconds"`

	// Points deducted for a wrong answer in timed mode
	WrongAnswerPenalty int `json:"wrong_answer_penalty,omitempty"`

	Rewards []Reward `json:"rewards,omitempty"`
}

// SessionStatus is the game session lifecycle state.
type SessionStatus string

// Session statuses. Transitions: waiting -> active -> completed, with
// waiting|active -> cancelled.
const (
	SessionWaiting   SessionStatus = "waiting"
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// GameParticipant tracks one user's run inside a session.
type GameParticipant struct {
	UserID string `json:"user_id"`

	// Running score, floored at 0
	Score int `json:"score"`

	// Final rank, assigned at completion (1 = winner)
	Rank int `json:"rank,omitempty"`

	// Consecutive correct answers
	Streak int `json:"streak"`

	// False once eliminated in survival mode
	Active bool `json:"active"`

	PowerUpsUsed int       `json:"power_ups_used"`
	JoinedAt     time.Time `json:"joined_at"`
}

// GameSession is a mutable run instance of a game mode.
//
// Version supports compare-and-swap persistence: concurrent writers for
// the same session id are serialized by the repository, not by locks in
// the rules core.
type GameSession struct {
	ID     string        `json:"id"`
	ModeID string        `json:"mode_id"`
	HostID string        `json:"host_id"`
	Status SessionStatus `json:"status"`

	Participants []GameParticipant `json:"participants"`
	CurrentRound int               `json:"current_round"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Version int64 `json:"version"`
}

// Participant returns the participant entry for userID, or nil.
func (s *GameSession) Participant(userID string) *GameParticipant {
	for i := range s.Participants {
		if s.Participants[i].UserID == userID {
			return &s.Participants[i]
		}
	}
	return nil
}

// ActiveParticipants counts participants still in play.
func (s *GameSession) ActiveParticipants() int {
	n := 0
	for i := range s.Participants {
		if s.Participants[i].Active {
			n++
		}
	}
	return n
}
