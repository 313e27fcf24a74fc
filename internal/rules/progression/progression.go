// Package progression implements the pure XP and leveling calculations.
// Nothing in this package performs I/O; every function is a bounded-time
// transform over its inputs.
package progression

import (
	"math"

	"github.com/questforge/quest-api/internal/entities"
	"github.com/questforge/quest-api/internal/errors"
)

// XP curve tiers. A level's cost is the cost of the highest tier whose
// floor it reaches; costs never decrease across tier boundaries.
var curveTiers = []struct {
	minLevel int
	cost     int
}{
	{30, 200},
	{15, 150},
	{5, 100},
	{1, 100},
}

// XP reward coefficients. Tunable constants, not contractual values.
const (
	basePointsPerDifficulty = 10

	// Diminishing stat multiplier weights
	primaryStatWeight   = 0.5
	secondaryStatWeight = 0.25
	statSoftCap         = 100.0
)

// Specialization bonuses applied when deriving effective stats.
const (
	primarySpecBonus   = 0.20
	secondarySpecBonus = 0.10
)

// Stat points granted per level gained.
const statPointsPerLevel = 2

// XPRequiredForLevel returns the XP needed to advance from the given
// level to the next one.
func XPRequiredForLevel(level int) (int, error) {
	if level < 1 {
		return 0, errors.InvalidArgumentf("level must be >= 1, got %d", level)
	}

	for _, tier := range curveTiers {
		if level >= tier.minLevel {
			return tier.cost, nil
		}
	}
	// Unreachable: the last tier floor is 1
	return 0, errors.Internalf("no curve tier for level %d", level)
}

// LevelFromTotalXP returns the highest level reachable with totalXP,
// starting from level 1 and consuming each level's requirement in turn.
func LevelFromTotalXP(totalXP int) (int, error) {
	if totalXP < 0 {
		return 0, errors.InvalidArgumentf("total XP must be >= 0, got %d", totalXP)
	}

	level := 1
	remaining := totalXP
	for {
		cost, err := XPRequiredForLevel(level)
		if err != nil {
			return 0, err
		}
		if remaining < cost {
			return level, nil
		}
		remaining -= cost
		level++
	}
}

// CurrentXPWithinLevel returns the XP accumulated inside the given
// level, i.e. totalXP minus the full cost of all prior levels. The
// level must match LevelFromTotalXP(totalXP); a mismatch means the
// caller's state is inconsistent.
func CurrentXPWithinLevel(totalXP, level int) (int, error) {
	actual, err := LevelFromTotalXP(totalXP)
	if err != nil {
		return 0, err
	}
	if level != actual {
		return 0, errors.InvalidStatef(
			"level %d does not match total XP %d (expected level %d)", level, totalXP, actual)
	}

	remaining := totalXP
	for l := 1; l < level; l++ {
		cost, err := XPRequiredForLevel(l)
		if err != nil {
			return 0, err
		}
		remaining -= cost
	}
	return remaining, nil
}

// AwardXP applies an XP gain to a character's progress, cascading as
// many level-ups as the amount covers. It returns the new progress and
// the levels gained, and grants stat points per level gained. The input
// is not mutated.
func AwardXP(p entities.CharacterProgress, amount int) (entities.CharacterProgress, []int, error) {
	if amount < 0 {
		return entities.CharacterProgress{}, nil, errors.InvalidArgumentf("XP amount must be >= 0, got %d", amount)
	}

	// The input must already satisfy the totalXP partition invariant
	current, err := CurrentXPWithinLevel(p.TotalXP, p.Level)
	if err != nil {
		return entities.CharacterProgress{}, nil, err
	}
	if current != p.CurrentXP {
		return entities.CharacterProgress{}, nil, errors.InvalidStatef(
			"current XP %d does not match total XP %d at level %d", p.CurrentXP, p.TotalXP, p.Level)
	}

	newTotal := p.TotalXP + amount
	newLevel, err := LevelFromTotalXP(newTotal)
	if err != nil {
		return entities.CharacterProgress{}, nil, err
	}
	newCurrent, err := CurrentXPWithinLevel(newTotal, newLevel)
	if err != nil {
		return entities.CharacterProgress{}, nil, err
	}

	var gained []int
	for l := p.Level + 1; l <= newLevel; l++ {
		gained = append(gained, l)
	}

	out := p
	out.TotalXP = newTotal
	out.Level = newLevel
	out.CurrentXP = newCurrent
	out.Stats.AvailablePoints += statPointsPerLevel * len(gained)
	return out, gained, nil
}

// RelevantStats carries the effective stat values feeding the XP reward
// multiplier. Secondary is optional; zero contributes nothing.
type RelevantStats struct {
	Primary   int
	Secondary int
}

// XPReward computes the XP awarded for an answered question.
//
// The reward combines a base value scaled by difficulty and accuracy, a
// time bonus (clamped at zero), and a diminishing stat multiplier. The
// result is never negative.
func XPReward(difficulty int, accuracy float64, timeBonus float64, stats RelevantStats) (int, error) {
	if difficulty < 1 || difficulty > 5 {
		return 0, errors.InvalidArgumentf("difficulty must be between 1 and 5, got %d", difficulty)
	}
	if accuracy < 0 || accuracy > 1 {
		return 0, errors.InvalidArgumentf("accuracy must be between 0 and 1, got %f", accuracy)
	}
	if stats.Primary < 0 || stats.Secondary < 0 {
		return 0, errors.InvalidArgument("stat values must be >= 0")
	}

	base := float64(basePointsPerDifficulty * difficulty)
	scaled := base * accuracy

	if timeBonus < 0 {
		timeBonus = 0
	}

	multiplier := 1.0 +
		primaryStatWeight*float64(stats.Primary)/(float64(stats.Primary)+statSoftCap) +
		secondaryStatWeight*float64(stats.Secondary)/(float64(stats.Secondary)+statSoftCap)

	reward := int(math.Round((scaled + timeBonus) * multiplier))
	if reward < 0 {
		reward = 0
	}
	return reward, nil
}

// Specialization bonus table: each specialization boosts a primary and a
// secondary stat when deriving effective stats.
var specializationBonuses = map[entities.Specialization]func(*entities.StatBlock){
	entities.SpecializationScholar: func(s *entities.StatBlock) {
		s.Intellect = boost(s.Intellect, primarySpecBonus)
		s.Memory = boost(s.Memory, secondarySpecBonus)
	},
	entities.SpecializationExplorer: func(s *entities.StatBlock) {
		s.Curiosity = boost(s.Curiosity, primarySpecBonus)
		s.Speed = boost(s.Speed, secondarySpecBonus)
	},
	entities.SpecializationStrategist: func(s *entities.StatBlock) {
		s.Focus = boost(s.Focus, primarySpecBonus)
		s.Grit = boost(s.Grit, secondarySpecBonus)
	},
	entities.SpecializationMentor: func(s *entities.StatBlock) {
		s.Memory = boost(s.Memory, primarySpecBonus)
		s.Curiosity = boost(s.Curiosity, secondarySpecBonus)
	},
}

func boost(value int, pct float64) int {
	return value + int(float64(value)*pct)
}

// RelevantStatsFor picks the stat pair feeding the XP reward multiplier
// from a character's effective stats. A character without a
// specialization gets no stat multiplier.
func RelevantStatsFor(base entities.StatBlock, specialization entities.Specialization) RelevantStats {
	eff := EffectiveStats(base, specialization)
	switch specialization {
	case entities.SpecializationScholar:
		return RelevantStats{Primary: eff.Intellect, Secondary: eff.Memory}
	case entities.SpecializationExplorer:
		return RelevantStats{Primary: eff.Curiosity, Secondary: eff.Speed}
	case entities.SpecializationStrategist:
		return RelevantStats{Primary: eff.Focus, Secondary: eff.Grit}
	case entities.SpecializationMentor:
		return RelevantStats{Primary: eff.Memory, Secondary: eff.Curiosity}
	default:
		return RelevantStats{}
	}
}

// EffectiveStats returns the stats a character plays with after
// specialization bonuses. The base block is never mutated. An
// unrecognized specialization returns the base unchanged; specialization
// is cosmetic, so unknown values are treated as "no bonus" rather than
// an error.
func EffectiveStats(base entities.StatBlock, specialization entities.Specialization) entities.StatBlock {
	apply, ok := specializationBonuses[specialization]
	if !ok {
		return base
	}

	out := base
	apply(&out)
	return out
}
