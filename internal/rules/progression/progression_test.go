package progression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questforge/quest-api/internal/entities"
	"github.com/questforge/quest-api/internal/errors"
	"github.com/questforge/quest-api/internal/rules/progression"
)

func TestXPRequiredForLevel(t *testing.T) {
	testCases := []struct {
		level    int
		expected int
	}{
		{1, 100},
		{4, 100},
		{5, 100},
		{14, 100},
		{15, 150},
		{29, 150},
		{30, 200},
		{50, 200},
	}

	for _, tc := range testCases {
		got, err := progression.XPRequiredForLevel(tc.level)
		require.NoError(t, err, "level %d", tc.level)
		assert.Equal(t, tc.expected, got, "level %d", tc.level)
	}
}

func TestXPRequiredForLevel_Invalid(t *testing.T) {
	for _, level := range []int{0, -1, -100} {
		_, err := progression.XPRequiredForLevel(level)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	}
}

func TestXPRequiredForLevel_Monotonic(t *testing.T) {
	prev := 0
	for level := 1; level <= 60; level++ {
		cost, err := progression.XPRequiredForLevel(level)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cost, prev, "cost decreased at level %d", level)
		prev = cost
	}
}

// totalXPToReach sums the per-level costs up to (but not including) level.
func totalXPToReach(t *testing.T, level int) int {
	t.Helper()
	total := 0
	for l := 1; l < level; l++ {
		cost, err := progression.XPRequiredForLevel(l)
		require.NoError(t, err)
		total += cost
	}
	return total
}

func TestLevelFromTotalXP_BoundaryExactness(t *testing.T) {
	for level := 1; level <= 40; level++ {
		boundary := totalXPToReach(t, level)

		got, err := progression.LevelFromTotalXP(boundary)
		require.NoError(t, err)
		assert.Equal(t, level, got, "at exact boundary of level %d", level)

		current, err := progression.CurrentXPWithinLevel(boundary, level)
		require.NoError(t, err)
		assert.Equal(t, 0, current, "current XP at boundary of level %d", level)
	}
}

func TestLevelFromTotalXP_RoundTrip(t *testing.T) {
	// Reconstructing level and currentXP and resumming must equal the
	// original total.
	for totalXP := 0; totalXP <= 5000; totalXP += 37 {
		level, err := progression.LevelFromTotalXP(totalXP)
		require.NoError(t, err)

		current, err := progression.CurrentXPWithinLevel(totalXP, level)
		require.NoError(t, err)

		assert.Equal(t, totalXP, totalXPToReach(t, level)+current, "round trip for totalXP=%d", totalXP)

		required, err := progression.XPRequiredForLevel(level)
		require.NoError(t, err)
		assert.Less(t, current, required, "current XP within bounds for totalXP=%d", totalXP)
		assert.GreaterOrEqual(t, current, 0)
	}
}

func TestLevelFromTotalXP_Invalid(t *testing.T) {
	_, err := progression.LevelFromTotalXP(-1)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestCurrentXPWithinLevel_Mismatch(t *testing.T) {
	_, err := progression.CurrentXPWithinLevel(250, 1)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidState(err))
}

func TestAwardXP_SingleLevel(t *testing.T) {
	p := entities.CharacterProgress{
		UserID:    "user_1",
		Level:     1,
		TotalXP:   40,
		CurrentXP: 40,
	}

	out, gained, err := progression.AwardXP(p, 60)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Level)
	assert.Equal(t, 100, out.TotalXP)
	assert.Equal(t, 0, out.CurrentXP)
	assert.Equal(t, []int{2}, gained)
}

func TestAwardXP_CascadesMultipleLevels(t *testing.T) {
	// Level 5 with 50 XP into the level; awarding 300 covers the rest of
	// level 5 (50), all of levels 6 and 7 (100 each), leaving 50 inside
	// level 8.
	p := entities.CharacterProgress{
		UserID:    "user_1",
		Level:     5,
		TotalXP:   450,
		CurrentXP: 50,
	}

	out, gained, err := progression.AwardXP(p, 300)
	require.NoError(t, err)
	assert.Equal(t, 8, out.Level)
	assert.Equal(t, 750, out.TotalXP)
	assert.Equal(t, 50, out.CurrentXP)
	assert.Equal(t, []int{6, 7, 8}, gained)

	// Round-trip law holds on the output
	level, err := progression.LevelFromTotalXP(out.TotalXP)
	require.NoError(t, err)
	assert.Equal(t, out.Level, level)
	current, err := progression.CurrentXPWithinLevel(out.TotalXP, out.Level)
	require.NoError(t, err)
	assert.Equal(t, out.CurrentXP, current)
}

func TestAwardXP_GrantsStatPoints(t *testing.T) {
	p := entities.CharacterProgress{
		UserID:    "user_1",
		Level:     1,
		TotalXP:   0,
		CurrentXP: 0,
		Stats:     entities.StatBlock{AvailablePoints: 1},
	}

	out, gained, err := progression.AwardXP(p, 200)
	require.NoError(t, err)
	require.Len(t, gained, 2)
	assert.Equal(t, 1+2*2, out.Stats.AvailablePoints)
	// Input untouched
	assert.Equal(t, 1, p.Stats.AvailablePoints)
}

func TestAwardXP_InconsistentState(t *testing.T) {
	p := entities.CharacterProgress{
		Level:     5,
		TotalXP:   450,
		CurrentXP: 250, // exceeds the level requirement
	}

	_, _, err := progression.AwardXP(p, 10)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidState(err))
}

func TestAwardXP_NegativeAmount(t *testing.T) {
	p := entities.CharacterProgress{Level: 1}
	_, _, err := progression.AwardXP(p, -5)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestXPReward(t *testing.T) {
	t.Run("scales with difficulty and accuracy", func(t *testing.T) {
		low, err := progression.XPReward(1, 1.0, 0, progression.RelevantStats{})
		require.NoError(t, err)
		high, err := progression.XPReward(5, 1.0, 0, progression.RelevantStats{})
		require.NoError(t, err)
		assert.Equal(t, 10, low)
		assert.Equal(t, 50, high)

		half, err := progression.XPReward(5, 0.5, 0, progression.RelevantStats{})
		require.NoError(t, err)
		assert.Equal(t, 25, half)
	})

	t.Run("stat multiplier diminishes", func(t *testing.T) {
		none, err := progression.XPReward(3, 1.0, 0, progression.RelevantStats{})
		require.NoError(t, err)
		some, err := progression.XPReward(3, 1.0, 0, progression.RelevantStats{Primary: 50})
		require.NoError(t, err)
		lots, err := progression.XPReward(3, 1.0, 0, progression.RelevantStats{Primary: 500})
		require.NoError(t, err)

		assert.Greater(t, some, none)
		assert.Greater(t, lots, some)
		// Bounded: the primary weight caps the multiplier below 1.5x
		assert.Less(t, lots, none*3/2+1)
	})

	t.Run("negative time bonus is clamped", func(t *testing.T) {
		got, err := progression.XPReward(1, 1.0, -100, progression.RelevantStats{})
		require.NoError(t, err)
		assert.Equal(t, 10, got)
	})

	t.Run("never negative", func(t *testing.T) {
		got, err := progression.XPReward(1, 0, 0, progression.RelevantStats{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 0)
	})

	t.Run("rejects out of range accuracy", func(t *testing.T) {
		for _, accuracy := range []float64{-0.1, 1.1, 2.0} {
			_, err := progression.XPReward(3, accuracy, 0, progression.RelevantStats{})
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		}
	})

	t.Run("rejects out of range difficulty", func(t *testing.T) {
		for _, difficulty := range []int{0, 6, -1} {
			_, err := progression.XPReward(difficulty, 1.0, 0, progression.RelevantStats{})
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		}
	})
}

func TestEffectiveStats(t *testing.T) {
	base := entities.StatBlock{
		Intellect: 50,
		Focus:     40,
		Memory:    30,
		Speed:     20,
		Curiosity: 10,
		Grit:      5,
	}

	t.Run("scholar boosts intellect and memory", func(t *testing.T) {
		got := progression.EffectiveStats(base, entities.SpecializationScholar)
		assert.Equal(t, 60, got.Intellect)
		assert.Equal(t, 33, got.Memory)
		assert.Equal(t, base.Focus, got.Focus)
		assert.Equal(t, base.Speed, got.Speed)
	})

	t.Run("base is never mutated", func(t *testing.T) {
		before := base
		_ = progression.EffectiveStats(base, entities.SpecializationStrategist)
		assert.Equal(t, before, base)
	})

	t.Run("unknown specialization is a no-op", func(t *testing.T) {
		got := progression.EffectiveStats(base, entities.Specialization("time_wizard"))
		assert.Equal(t, base, got)
	})

	t.Run("none specialization is a no-op", func(t *testing.T) {
		got := progression.EffectiveStats(base, entities.SpecializationNone)
		assert.Equal(t, base, got)
	})
}

func TestRelevantStatsFor(t *testing.T) {
	base := entities.StatBlock{
		Intellect: 50,
		Focus:     40,
		Memory:    30,
		Speed:     20,
		Curiosity: 10,
		Grit:      5,
	}

	t.Run("scholar uses boosted intellect and memory", func(t *testing.T) {
		got := progression.RelevantStatsFor(base, entities.SpecializationScholar)
		assert.Equal(t, 60, got.Primary)
		assert.Equal(t, 33, got.Secondary)
	})

	t.Run("strategist uses focus and grit", func(t *testing.T) {
		got := progression.RelevantStatsFor(base, entities.SpecializationStrategist)
		assert.Equal(t, 48, got.Primary)
		assert.Equal(t, 5, got.Secondary)
	})

	t.Run("no specialization means no multiplier", func(t *testing.T) {
		got := progression.RelevantStatsFor(base, entities.SpecializationNone)
		assert.Equal(t, progression.RelevantStats{}, got)
	})
}
