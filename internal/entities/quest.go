package entities

import "time"

// QuestObjective is a single target within a quest definition.
type QuestObjective struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	TargetValue int    `json:"target_value"`
}

// Quest is an immutable quest definition with ordered objectives.
// Quests expire at a fixed timestamp; expired incomplete quests are
// not retried.
type Quest struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Objectives  []QuestObjective `json:"objectives"`
	RewardXP    int              `json:"reward_xp"`
	ExpiresAt   time.Time        `json:"expires_at"`
}

// ObjectiveProgress tracks a user's current value for one objective.
type ObjectiveProgress struct {
	ObjectiveID  string `json:"objective_id"`
	CurrentValue int    `json:"current_value"`
}

// UserQuest tracks a user's progress through a quest. Completed is
// derived: true iff every objective's current value has reached its
// target.
type UserQuest struct {
	UserID     string              `json:"user_id"`
	QuestID    string              `json:"quest_id"`
	Objectives []ObjectiveProgress `json:"objectives"`
	Completed  bool                `json:"completed"`

	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
