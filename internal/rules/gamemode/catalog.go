package gamemode

import "github.com/questforge/quest-api/internal/entities"

// DefaultCatalog returns the built-in game mode rulesets, keyed by mode
// id. Modes are immutable; callers get a fresh map on every call.
func DefaultCatalog() map[string]entities.GameMode {
	modes := []entities.GameMode{
		{
			ID:              "practice_drill",
			Name:            "Practice Drill",
			Type:            entities.GameModePractice,
			Difficulty:      1,
			MaxParticipants: 1,
			MaxTimeSeconds:  60,
			Rewards: []entities.Reward{
				{ID: "practice_xp", Tier: entities.RewardTierParticipant, Name: "Practice XP", XP: 25},
			},
		},
		{
			ID:                 "quiz_rush",
			Name:               "Quiz Rush",
			Type:               entities.GameModeTimed,
			Difficulty:         3,
			MaxParticipants:    8,
			MaxTimeSeconds:     15,
			WrongAnswerPenalty: 2,
			Rewards: []entities.Reward{
				{ID: "rush_winner", Tier: entities.RewardTierWinner, Name: "Rush Champion", XP: 200},
				{ID: "rush_podium", Tier: entities.RewardTierTop3, Name: "Podium Finish", XP: 100},
				{ID: "rush_entry", Tier: entities.RewardTierParticipant, Name: "Rush Entry", XP: 20},
			},
		},
		{
			ID:              "scholars_duel",
			Name:            "Scholar's Duel",
			Type:            entities.GameModeCompetitive,
			Difficulty:      4,
			MaxParticipants: 2,
			TotalRounds:     10,
			MaxTimeSeconds:  30,
			Rewards: []entities.Reward{
				{ID: "duel_winner", Tier: entities.RewardTierWinner, Name: "Duel Victor", XP: 150},
				{ID: "duel_entry", Tier: entities.RewardTierParticipant, Name: "Duel Entry", XP: 30},
			},
		},
		{
			ID:              "last_scholar_standing",
			Name:            "Last Scholar Standing",
			Type:            entities.GameModeSurvival,
			Difficulty:      5,
			MaxParticipants: 20,
			MaxTimeSeconds:  20,
			Rewards: []entities.Reward{
				{ID: "survival_winner", Tier: entities.RewardTierWinner, Name: "Sole Survivor", XP: 300},
				{ID: "survival_top3", Tier: entities.RewardTierTop3, Name: "Final Three", XP: 120},
				{ID: "survival_top10", Tier: entities.RewardTierTop10, Name: "Top Ten", XP: 60},
				{ID: "survival_entry", Tier: entities.RewardTierParticipant, Name: "Survivor Entry", XP: 25},
			},
		},
	}

	out := make(map[string]entities.GameMode, len(modes))
	for _, m := range modes {
		out[m.ID] = m
	}
	return out
}
