// Package unlock decides achievement and quest satisfaction from
// progress counters. All functions are pure; persistence of the results
// belongs to the caller.
package unlock

import (
	"time"

	"github.com/questforge/quest-api/internal/entities"
	"github.com/questforge/quest-api/internal/errors"
)

// ProgressSnapshot is a read-only view of a user's counters at
// evaluation time.
type ProgressSnapshot struct {
	LessonsCompleted      int
	StreakDays            int
	CharacterLevel        int
	TotalXP               int
	QuestsCompleted       int
	GamesWon              int
	SubjectCorrectAnswers map[string]int
}

// SnapshotFor builds a snapshot from a character's progress record.
func SnapshotFor(p entities.CharacterProgress) ProgressSnapshot {
	return ProgressSnapshot{
		LessonsCompleted:      p.Counters.LessonsCompleted,
		StreakDays:            p.Counters.StreakDays,
		CharacterLevel:        p.Level,
		TotalXP:               p.TotalXP,
		QuestsCompleted:       p.Counters.QuestsCompleted,
		GamesWon:              p.Counters.GamesWon,
		SubjectCorrectAnswers: p.Counters.SubjectCorrectAnswers,
	}
}

// criterionValue resolves the snapshot counter a criterion compares
// against. The second return is false for unrecognized criterion types,
// which must fail closed: a malformed criterion never unlocks anything.
func criterionValue(c entities.Criterion, snap ProgressSnapshot) (int, bool) {
	switch c.Type {
	case entities.CriterionLessonsCompleted:
		return snap.LessonsCompleted, true
	case entities.CriterionSubjectCorrectAnswers:
		return snap.SubjectCorrectAnswers[c.Subject], true
	case entities.CriterionCharacterLevel:
		return snap.CharacterLevel, true
	case entities.CriterionStreakDays:
		return snap.StreakDays, true
	case entities.CriterionTotalXP:
		return snap.TotalXP, true
	case entities.CriterionQuestsCompleted:
		return snap.QuestsCompleted, true
	case entities.CriterionGamesWon:
		return snap.GamesWon, true
	default:
		return 0, false
	}
}

// Satisfied reports whether a criterion holds against the snapshot.
func Satisfied(c entities.Criterion, snap ProgressSnapshot) bool {
	value, ok := criterionValue(c, snap)
	if !ok {
		return false
	}
	return value >= c.Target
}

// CriterionProgress returns how far along a criterion is, as a
// percentage clamped to [0, 100]. Unknown criterion types report 0.
func CriterionProgress(c entities.Criterion, snap ProgressSnapshot) float64 {
	value, ok := criterionValue(c, snap)
	if !ok || c.Target <= 0 {
		return 0
	}
	pct := float64(value) / float64(c.Target) * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// CheckAchievements evaluates every definition not already unlocked and
// returns exactly those whose criterion newly holds. The alreadyUnlocked
// set is never mutated; persisting the returned achievements is the
// caller's job. Calling twice with the same inputs returns the same
// result, so a caller that persists between calls sees an empty second
// result.
func CheckAchievements(defs []entities.Achievement, snap ProgressSnapshot, alreadyUnlocked map[string]struct{}) []entities.Achievement {
	var newlyUnlocked []entities.Achievement
	for _, def := range defs {
		if _, done := alreadyUnlocked[def.ID]; done {
			continue
		}
		if Satisfied(def.Criterion, snap) {
			newlyUnlocked = append(newlyUnlocked, def)
		}
	}
	return newlyUnlocked
}

// UpdateQuestProgress advances one objective of a user quest by delta,
// clamped to the objective's target, and recomputes the quest's
// completion as the conjunction of all objectives. Progress never
// decreases. The inputs are not mutated.
//
// An expired quest is rejected with Expired rather than silently
// ignored, so callers can distinguish "nothing to do" from "too late".
func UpdateQuestProgress(quest *entities.Quest, userQuest entities.UserQuest, objectiveID string, delta int, now time.Time) (entities.UserQuest, error) {
	if quest == nil {
		return entities.UserQuest{}, errors.InvalidArgument("quest cannot be nil")
	}
	if delta < 0 {
		return entities.UserQuest{}, errors.InvalidArgumentf("delta must be >= 0, got %d", delta)
	}
	if !now.Before(quest.ExpiresAt) {
		return entities.UserQuest{}, errors.Expiredf("quest %q expired at %s", quest.ID, quest.ExpiresAt.Format(time.RFC3339))
	}

	var target *entities.QuestObjective
	for i := range quest.Objectives {
		if quest.Objectives[i].ID == objectiveID {
			target = &quest.Objectives[i]
			break
		}
	}
	if target == nil {
		return entities.UserQuest{}, errors.NotFoundf("objective %q not found on quest %q", objectiveID, quest.ID)
	}

	out := userQuest
	out.Objectives = make([]entities.ObjectiveProgress, len(userQuest.Objectives))
	copy(out.Objectives, userQuest.Objectives)

	updated := false
	for i := range out.Objectives {
		if out.Objectives[i].ObjectiveID == objectiveID {
			value := out.Objectives[i].CurrentValue + delta
			if value > target.TargetValue {
				value = target.TargetValue
			}
			out.Objectives[i].CurrentValue = value
			updated = true
			break
		}
	}
	if !updated {
		value := delta
		if value > target.TargetValue {
			value = target.TargetValue
		}
		out.Objectives = append(out.Objectives, entities.ObjectiveProgress{
			ObjectiveID:  objectiveID,
			CurrentValue: value,
		})
	}

	wasCompleted := out.Completed
	out.Completed = allObjectivesMet(quest, out)
	if out.Completed && !wasCompleted {
		completedAt := now
		out.CompletedAt = &completedAt
	}

	return out, nil
}

func allObjectivesMet(quest *entities.Quest, userQuest entities.UserQuest) bool {
	current := make(map[string]int, len(userQuest.Objectives))
	for _, o := range userQuest.Objectives {
		current[o.ObjectiveID] = o.CurrentValue
	}

	for _, def := range quest.Objectives {
		if current[def.ID] < def.TargetValue {
			return false
		}
	}
	return true
}
