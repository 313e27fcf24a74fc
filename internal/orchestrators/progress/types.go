package progress

import (
	"time"

	"github.com/questforge/quest-api/internal/entities"
)

// AnswerQuestionInput contains parameters for recording an answered
// question. TimeBonus is the caller-computed time bonus term; negative
// values are treated as zero.
type AnswerQuestionInput struct {
	UserID     string
	Subject    string
	Difficulty int
	Correct    bool
	Accuracy   float64
	TimeBonus  float64
}

// AnswerQuestionOutput contains the result of recording an answer
type AnswerQuestionOutput struct {
	Progress     *entities.CharacterProgress
	XPAwarded    int
	LevelsGained []int

	// Achievements whose criteria newly hold after this answer
	UnlockedAchievements []entities.Achievement
}

// CompleteLessonInput contains parameters for recording a completed
// lesson. QuestID and ObjectiveID optionally advance a quest objective
// by one alongside the lesson counter.
type CompleteLessonInput struct {
	UserID      string
	XPAward     int
	QuestID     string
	ObjectiveID string
}

// CompleteLessonOutput contains the result of completing a lesson
type CompleteLessonOutput struct {
	Progress     *entities.CharacterProgress
	XPAwarded    int
	LevelsGained []int

	// Set when the input named a quest objective
	UserQuest      *entities.UserQuest
	QuestCompleted bool

	UnlockedAchievements []entities.Achievement
}

// GetProgressInput contains parameters for fetching a user's progress
type GetProgressInput struct {
	UserID string
}

// GetProgressOutput contains a user's progress and derived stats
type GetProgressOutput struct {
	Progress *entities.CharacterProgress

	// Stats after specialization bonuses; a derived view, never stored
	EffectiveStats entities.StatBlock
}

// AllocateStatPointsInput contains parameters for spending stat points
type AllocateStatPointsInput struct {
	UserID string
	Stat   string
	Points int
}

// AllocateStatPointsOutput contains the updated progress
type AllocateStatPointsOutput struct {
	Progress *entities.CharacterProgress
}

// UpdateQuestProgressInput contains parameters for advancing a quest
// objective
type UpdateQuestProgressInput struct {
	UserID      string
	QuestID     string
	ObjectiveID string
	Delta       int
}

// UpdateQuestProgressOutput contains the result of advancing an
// objective
type UpdateQuestProgressOutput struct {
	UserQuest *entities.UserQuest

	// True only when this call completed the quest
	QuestCompleted bool
	XPAwarded      int
	LevelsGained   []int

	UnlockedAchievements []entities.Achievement
}

// ListAchievementsInput contains parameters for listing achievement
// status
type ListAchievementsInput struct {
	UserID string
}

// AchievementStatus pairs a definition with a user's unlock state
type AchievementStatus struct {
	Achievement entities.Achievement
	Unlocked    bool
	UnlockedAt  *time.Time

	// Percentage toward the criterion, 100 once unlocked
	Progress float64
}

// ListAchievementsOutput contains every definition with unlock status
type ListAchievementsOutput struct {
	Achievements []AchievementStatus
}
