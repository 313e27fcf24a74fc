// Package entities contains the domain data types shared across rules,
// orchestrators, and repositories.
package entities

// Specialization identifies a character's learning specialization.
// Specializations grant bonuses to two of the six stats when computing
// effective stats; base stats are never mutated.
type Specialization string

// Known specializations
const (
	SpecializationNone       Specialization = ""
	SpecializationScholar    Specialization = "scholar"
	SpecializationExplorer   Specialization = "explorer"
	SpecializationStrategist Specialization = "strategist"
	SpecializationMentor     Specialization = "mentor"
)

// StatBlock holds a character's six attributes plus unspent points.
type StatBlock struct {
	Intellect int `json:"intellect"`
	Focus     int `json:"focus"`
	Memory    int `json:"memory"`
	Speed     int `json:"speed"`
	Curiosity int `json:"curiosity"`
	Grit      int `json:"grit"`

	// Points earned from level-ups, not yet assigned to a stat
	AvailablePoints int `json:"available_points"`
}

// ProgressCounters are the accumulated activity counters unlock criteria
// are evaluated against.
type ProgressCounters struct {
	LessonsCompleted int `json:"lessons_completed"`
	StreakDays       int `json:"streak_days"`
	QuestsCompleted  int `json:"quests_completed"`
	GamesWon         int `json:"games_won"`

	// Correct answers per subject id
	SubjectCorrectAnswers map[string]int `json:"subject_correct_answers,omitempty"`
}

// CharacterProgress is a user's progression state.
//
// Invariant: TotalXP equals the XP required to reach Level from level 1
// plus CurrentXP, and 0 <= CurrentXP < XPRequiredForLevel(Level).
type CharacterProgress struct {
	UserID string `json:"user_id"`

	Level     int `json:"level"`
	TotalXP   int `json:"total_xp"`
	CurrentXP int `json:"current_xp"`

	Specialization Specialization   `json:"specialization,omitempty"`
	Stats          StatBlock        `json:"stats"`
	Counters       ProgressCounters `json:"counters"`
}
