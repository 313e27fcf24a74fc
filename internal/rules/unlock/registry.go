package unlock

import "github.com/questforge/quest-api/internal/entities"

// DefaultRegistry returns the built-in achievement set. Definitions are
// immutable; callers get a fresh slice on every call.
func DefaultRegistry() []entities.Achievement {
	return []entities.Achievement{

		// Lesson milestones

		{
			ID: "first_steps", Name: "First Steps",
			Description: "Complete your first lesson",
			Criterion:   entities.Criterion{Type: entities.CriterionLessonsCompleted, Target: 1},
			Rarity:      1,
		},
		{
			ID: "dedicated_student", Name: "Dedicated Student",
			Description: "Complete 10 lessons",
			Criterion:   entities.Criterion{Type: entities.CriterionLessonsCompleted, Target: 10},
			Rarity:      2,
		},
		{
			ID: "scholar_supreme", Name: "Scholar Supreme",
			Description: "Complete 100 lessons",
			Criterion:   entities.Criterion{Type: entities.CriterionLessonsCompleted, Target: 100},
			Rarity:      4,
		},

		// Subject mastery

		{
			ID: "math_whiz", Name: "Math Whiz",
			Description: "Answer 50 math questions correctly",
			Criterion:   entities.Criterion{Type: entities.CriterionSubjectCorrectAnswers, Subject: "math", Target: 50},
			Rarity:      3,
		},
		{
			ID: "word_smith", Name: "Word Smith",
			Description: "Answer 50 language questions correctly",
			Criterion:   entities.Criterion{Type: entities.CriterionSubjectCorrectAnswers, Subject: "language", Target: 50},
			Rarity:      3,
		},
		{
			ID: "lab_rat", Name: "Lab Rat",
			Description: "Answer 50 science questions correctly",
			Criterion:   entities.Criterion{Type: entities.CriterionSubjectCorrectAnswers, Subject: "science", Target: 50},
			Rarity:      3,
		},

		// Levels and XP

		{
			ID: "level_five", Name: "Apprentice",
			Description: "Reach character level 5",
			Criterion:   entities.Criterion{Type: entities.CriterionCharacterLevel, Target: 5},
			Rarity:      1,
		},
		{
			ID: "level_fifteen", Name: "Adept",
			Description: "Reach character level 15",
			Criterion:   entities.Criterion{Type: entities.CriterionCharacterLevel, Target: 15},
			Rarity:      3,
		},
		{
			ID: "level_thirty", Name: "Grandmaster",
			Description: "Reach character level 30",
			Criterion:   entities.Criterion{Type: entities.CriterionCharacterLevel, Target: 30},
			Rarity:      5,
		},
		{
			ID: "xp_hoarder", Name: "XP Hoarder",
			Description: "Accumulate 10,000 total XP",
			Criterion:   entities.Criterion{Type: entities.CriterionTotalXP, Target: 10000},
			Rarity:      4,
		},

		// Streaks

		{
			ID: "on_fire", Name: "On Fire",
			Description: "Keep a 3-day learning streak",
			Criterion:   entities.Criterion{Type: entities.CriterionStreakDays, Target: 3},
			Rarity:      1,
		},
		{
			ID: "unstoppable", Name: "Unstoppable",
			Description: "Keep a 30-day learning streak",
			Criterion:   entities.Criterion{Type: entities.CriterionStreakDays, Target: 30},
			Rarity:      5,
		},

		// Quests and games

		{
			ID: "quest_taker", Name: "Quest Taker",
			Description: "Complete 5 quests",
			Criterion:   entities.Criterion{Type: entities.CriterionQuestsCompleted, Target: 5},
			Rarity:      2,
		},
		{
			ID: "arena_champion", Name: "Arena Champion",
			Description: "Win 10 game sessions",
			Criterion:   entities.Criterion{Type: entities.CriterionGamesWon, Target: 10},
			Rarity:      4,
		},
	}
}
