package entities

import "time"

// CriterionType tags an achievement's unlock criterion. Unknown types
// fail closed: the achievement stays locked.
type CriterionType string

// Known criterion types
const (
	CriterionLessonsCompleted      CriterionType = "lessons_completed"
	CriterionSubjectCorrectAnswers CriterionType = "subject_correct_answers"
	CriterionCharacterLevel        CriterionType = "character_level"
	CriterionStreakDays            CriterionType = "streak_days"
	CriterionTotalXP               CriterionType = "total_xp"
	CriterionQuestsCompleted       CriterionType = "quests_completed"
	CriterionGamesWon              CriterionType = "games_won"
)

// Criterion is a declarative unlock predicate descriptor.
type Criterion struct {
	Type CriterionType `json:"type"`

	// Subject scopes subject_correct_answers criteria
	Subject string `json:"subject,omitempty"`

	Target int `json:"target"`
}

// Achievement is an immutable achievement definition.
type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Criterion   Criterion `json:"criterion"`

	// Rarity tier, 1 (common) through 5 (legendary)
	Rarity int `json:"rarity"`
}

// UserAchievement records a single unlock. Created exactly once per
// (user, achievement) pair.
type UserAchievement struct {
	UserID        string    `json:"user_id"`
	AchievementID string    `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`

	// Optional progress percentage at unlock time
	Progress float64 `json:"progress,omitempty"`
}
