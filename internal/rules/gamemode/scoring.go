// Package gamemode implements scoring rules and the session lifecycle
// state machine for game modes. Like the other rules packages it is
// pure: session ownership and write serialization belong to the
// persistence layer.
package gamemode

import (
	"math"
	"sort"

	"github.com/questforge/quest-api/internal/entities"
	"github.com/questforge/quest-api/internal/errors"
)

// Scoring coefficients
const (
	basePointsPerDifficulty = 10

	// Consecutive correct answers needed before the streak bonus kicks in
	streakBonusThreshold = 3

	// Flat percentage added once the streak threshold is reached
	streakBonusPct = 0.25

	defaultMaxTimeSeconds = 30
)

// ScoreResult is the outcome of scoring a single answer.
type ScoreResult struct {
	// Points awarded for this answer; negative for a timed-mode penalty
	Points int

	// Participant total after applying Points, floored at 0
	NewTotal int
}

// ScoreAnswer computes the points for one answer event.
//
// Wrong answers score 0, except in timed mode where a fixed penalty
// applies; the resulting total is clamped at the session floor of 0.
// Correct answers earn base points scaled by mode difficulty, a speed
// bonus in timed and competitive modes, and a flat streak bonus once
// the participant's consecutive-correct streak (tracked by the caller,
// including this answer) reaches the threshold.
func ScoreAnswer(mode entities.GameMode, isCorrect bool, timeSpentSeconds float64, participant entities.GameParticipant) (ScoreResult, error) {
	if mode.Difficulty < 1 || mode.Difficulty > 5 {
		return ScoreResult{}, errors.InvalidArgumentf("mode difficulty must be between 1 and 5, got %d", mode.Difficulty)
	}
	if timeSpentSeconds < 0 {
		return ScoreResult{}, errors.InvalidArgumentf("time spent must be >= 0, got %f", timeSpentSeconds)
	}

	if !isCorrect {
		points := 0
		if mode.Type == entities.GameModeTimed {
			points = -mode.WrongAnswerPenalty
		}
		total := participant.Score + points
		if total < 0 {
			total = 0
		}
		return ScoreResult{Points: points, NewTotal: total}, nil
	}

	points := basePointsPerDifficulty * mode.Difficulty

	if mode.Type == entities.GameModeTimed || mode.Type == entities.GameModeCompetitive {
		points += speedBonus(mode, timeSpentSeconds)
	}

	if participant.Streak+1 >= streakBonusThreshold {
		points += int(math.Round(float64(points) * streakBonusPct))
	}

	return ScoreResult{Points: points, NewTotal: participant.Score + points}, nil
}

// speedBonus scales the base points by the unused fraction of the
// answer window, floored at 0.
func speedBonus(mode entities.GameMode, timeSpentSeconds float64) int {
	maxTime := float64(mode.MaxTimeSeconds)
	if maxTime <= 0 {
		maxTime = defaultMaxTimeSeconds
	}

	fraction := (maxTime - timeSpentSeconds) / maxTime
	if fraction <= 0 {
		return 0
	}
	base := float64(basePointsPerDifficulty * mode.Difficulty)
	return int(math.Round(base * fraction))
}

// RewardsForRank returns the union of reward tiers a final rank
// qualifies for, deduplicated by reward identity. Rank 1 earns winner,
// top-3 and top-10 tiers on top of the participation tier.
func RewardsForRank(mode entities.GameMode, rank int) []entities.Reward {
	if rank < 1 {
		return nil
	}

	qualifies := map[entities.RewardTier]bool{
		entities.RewardTierParticipant: true,
		entities.RewardTierTop10:       rank <= 10,
		entities.RewardTierTop3:        rank <= 3,
		entities.RewardTierWinner:      rank == 1,
	}

	seen := make(map[string]struct{})
	var out []entities.Reward
	for _, reward := range mode.Rewards {
		if !qualifies[reward.Tier] {
			continue
		}
		if _, dup := seen[reward.ID]; dup {
			continue
		}
		seen[reward.ID] = struct{}{}
		out = append(out, reward)
	}
	return out
}

// RankParticipants returns a copy of the participants ordered by score
// descending with ranks assigned from 1. Ties keep their relative order
// and share the higher rank.
func RankParticipants(participants []entities.GameParticipant) []entities.GameParticipant {
	out := make([]entities.GameParticipant, len(participants))
	copy(out, participants)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	for i := range out {
		if i > 0 && out[i].Score == out[i-1].Score {
			out[i].Rank = out[i-1].Rank
			continue
		}
		out[i].Rank = i + 1
	}
	return out
}
