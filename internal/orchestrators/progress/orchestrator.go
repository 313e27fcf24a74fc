// Package progress implements the progress orchestrator coordinating XP
// awards, stat allocation, quest advancement, and achievement unlocks.
package progress

//go:generate mockgen -destination=mock/mock_service.go -package=progressmock github.com/questforge/quest-api/internal/orchestrators/progress Service

import (
	"context"
	"log/slog"

	"github.com/questforge/quest-api/internal/entities"
	"github.com/questforge/quest-api/internal/errors"
	"github.com/questforge/quest-api/internal/pkg/clock"
	"github.com/questforge/quest-api/internal/repositories/achievement"
	"github.com/questforge/quest-api/internal/repositories/character"
	"github.com/questforge/quest-api/internal/repositories/quest"
	"github.com/questforge/quest-api/internal/rules/progression"
	"github.com/questforge/quest-api/internal/rules/unlock"
)

// Service defines the interface for progression operations
type Service interface {
	// AnswerQuestion scores an answered question, awards XP, and
	// evaluates achievement unlocks
	AnswerQuestion(ctx context.Context, input *AnswerQuestionInput) (*AnswerQuestionOutput, error)

	// CompleteLesson records a finished lesson, optionally advancing a
	// quest objective
	CompleteLesson(ctx context.Context, input *CompleteLessonInput) (*CompleteLessonOutput, error)

	// GetProgress returns a user's progress with derived effective stats
	GetProgress(ctx context.Context, input *GetProgressInput) (*GetProgressOutput, error)

	// AllocateStatPoints spends available points on one stat
	AllocateStatPoints(ctx context.Context, input *AllocateStatPointsInput) (*AllocateStatPointsOutput, error)

	// UpdateQuestProgress advances one quest objective by a delta
	UpdateQuestProgress(ctx context.Context, input *UpdateQuestProgressInput) (*UpdateQuestProgressOutput, error)

	// ListAchievements returns every achievement definition with the
	// user's unlock state and criterion progress
	ListAchievements(ctx context.Context, input *ListAchievementsInput) (*ListAchievementsOutput, error)
}

// Config holds the dependencies for the progress orchestrator
type Config struct {
	CharacterRepo   character.Repository
	AchievementRepo achievement.Repository
	QuestRepo       quest.Repository

	// Achievement definitions evaluated on every progress change
	Registry []entities.Achievement

	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.AchievementRepo == nil {
		vb.RequiredField("AchievementRepo")
	}
	if c.QuestRepo == nil {
		vb.RequiredField("QuestRepo")
	}
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo   character.Repository
	achievementRepo achievement.Repository
	questRepo       quest.Repository
	registry        []entities.Achievement
	clock           clock.Clock
}

// NewOrchestrator creates a new progress orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo:   cfg.CharacterRepo,
		achievementRepo: cfg.AchievementRepo,
		questRepo:       cfg.QuestRepo,
		registry:        cfg.Registry,
		clock:           cfg.Clock,
	}, nil
}

// AnswerQuestion scores an answered question, awards XP, and evaluates
// achievement unlocks
func (o *orchestrator) AnswerQuestion(ctx context.Context, input *AnswerQuestionInput) (*AnswerQuestionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if input.Subject == "" {
		return nil, errors.InvalidArgument("subject cannot be empty")
	}

	progress, err := o.getOrCreateProgress(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	out := &AnswerQuestionOutput{}

	if input.Correct {
		stats := progression.RelevantStatsFor(progress.Stats, progress.Specialization)
		reward, err := progression.XPReward(input.Difficulty, input.Accuracy, input.TimeBonus, stats)
		if err != nil {
			return nil, err
		}

		updated, gained, err := progression.AwardXP(*progress, reward)
		if err != nil {
			return nil, err
		}
		if updated.Counters.SubjectCorrectAnswers == nil {
			updated.Counters.SubjectCorrectAnswers = make(map[string]int)
		}
		updated.Counters.SubjectCorrectAnswers[input.Subject]++

		progress = &updated
		out.XPAwarded = reward
		out.LevelsGained = gained

		if err := o.characterRepo.Update(ctx, progress); err != nil {
			return nil, err
		}

		unlocked, err := o.evaluateAchievements(ctx, progress)
		if err != nil {
			return nil, err
		}
		out.UnlockedAchievements = unlocked
	}

	out.Progress = progress

	if len(out.LevelsGained) > 0 {
		slog.InfoContext(ctx, "character leveled up",
			"user_id", input.UserID,
			"new_level", progress.Level,
			"levels_gained", len(out.LevelsGained))
	}

	return out, nil
}

// CompleteLesson records a finished lesson, optionally advancing a quest
// objective
func (o *orchestrator) CompleteLesson(ctx context.Context, input *CompleteLessonInput) (*CompleteLessonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if input.XPAward < 0 {
		return nil, errors.InvalidArgumentf("XP award must be >= 0, got %d", input.XPAward)
	}

	progress, err := o.getOrCreateProgress(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	out := &CompleteLessonOutput{}

	xp := input.XPAward

	if input.QuestID != "" {
		userQuest, completed, rewardXP, err := o.advanceQuest(ctx, input.UserID, input.QuestID, input.ObjectiveID, 1)
		if err != nil {
			return nil, err
		}
		out.UserQuest = userQuest
		out.QuestCompleted = completed
		if completed {
			xp += rewardXP
			progress.Counters.QuestsCompleted++
		}
	}

	updated, gained, err := progression.AwardXP(*progress, xp)
	if err != nil {
		return nil, err
	}
	updated.Counters.LessonsCompleted++
	progress = &updated

	out.XPAwarded = xp
	out.LevelsGained = gained

	if err := o.characterRepo.Update(ctx, progress); err != nil {
		return nil, err
	}

	unlocked, err := o.evaluateAchievements(ctx, progress)
	if err != nil {
		return nil, err
	}
	out.UnlockedAchievements = unlocked
	out.Progress = progress

	return out, nil
}

// GetProgress returns a user's progress with derived effective stats
func (o *orchestrator) GetProgress(ctx context.Context, input *GetProgressInput) (*GetProgressOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	got, err := o.characterRepo.Get(ctx, character.GetInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	return &GetProgressOutput{
		Progress:       got.Progress,
		EffectiveStats: progression.EffectiveStats(got.Progress.Stats, got.Progress.Specialization),
	}, nil
}

// AllocateStatPoints spends available points on one stat
func (o *orchestrator) AllocateStatPoints(ctx context.Context, input *AllocateStatPointsInput) (*AllocateStatPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if input.Points <= 0 {
		return nil, errors.InvalidArgumentf("points must be > 0, got %d", input.Points)
	}

	got, err := o.characterRepo.Get(ctx, character.GetInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	progress := got.Progress
	if progress.Stats.AvailablePoints < input.Points {
		return nil, errors.FailedPreconditionf("only %d stat points available, requested %d",
			progress.Stats.AvailablePoints, input.Points)
	}

	if err := applyStatPoints(&progress.Stats, input.Stat, input.Points); err != nil {
		return nil, err
	}
	progress.Stats.AvailablePoints -= input.Points

	if err := o.characterRepo.Update(ctx, progress); err != nil {
		return nil, err
	}

	return &AllocateStatPointsOutput{
		Progress: progress,
	}, nil
}

// UpdateQuestProgress advances one quest objective by a delta
func (o *orchestrator) UpdateQuestProgress(ctx context.Context, input *UpdateQuestProgressInput) (*UpdateQuestProgressOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID cannot be empty")
	}

	userQuest, completed, rewardXP, err := o.advanceQuest(ctx, input.UserID, input.QuestID, input.ObjectiveID, input.Delta)
	if err != nil {
		return nil, err
	}

	out := &UpdateQuestProgressOutput{
		UserQuest:      userQuest,
		QuestCompleted: completed,
	}

	if completed {
		progress, err := o.getOrCreateProgress(ctx, input.UserID)
		if err != nil {
			return nil, err
		}

		updated, gained, err := progression.AwardXP(*progress, rewardXP)
		if err != nil {
			return nil, err
		}
		updated.Counters.QuestsCompleted++
		progress = &updated

		if err := o.characterRepo.Update(ctx, progress); err != nil {
			return nil, err
		}

		unlocked, err := o.evaluateAchievements(ctx, progress)
		if err != nil {
			return nil, err
		}

		out.XPAwarded = rewardXP
		out.LevelsGained = gained
		out.UnlockedAchievements = unlocked

		slog.InfoContext(ctx, "quest completed",
			"user_id", input.UserID,
			"quest_id", input.QuestID,
			"reward_xp", rewardXP)
	}

	return out, nil
}

// ListAchievements returns every achievement definition with the user's
// unlock state and criterion progress
func (o *orchestrator) ListAchievements(ctx context.Context, input *ListAchievementsInput) (*ListAchievementsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	unlocks, err := o.achievementRepo.List(ctx, achievement.ListInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	unlockedAt := make(map[string]*entities.UserAchievement, len(unlocks.Unlocks))
	for _, u := range unlocks.Unlocks {
		unlockedAt[u.AchievementID] = u
	}

	var snap unlock.ProgressSnapshot
	got, err := o.characterRepo.Get(ctx, character.GetInput{UserID: input.UserID})
	if err == nil {
		snap = unlock.SnapshotFor(*got.Progress)
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	statuses := make([]AchievementStatus, 0, len(o.registry))
	for _, def := range o.registry {
		status := AchievementStatus{
			Achievement: def,
			Progress:    unlock.CriterionProgress(def.Criterion, snap),
		}
		if record, ok := unlockedAt[def.ID]; ok {
			status.Unlocked = true
			t := record.UnlockedAt
			status.UnlockedAt = &t
			status.Progress = 100
		}
		statuses = append(statuses, status)
	}

	return &ListAchievementsOutput{
		Achievements: statuses,
	}, nil
}

// getOrCreateProgress loads a user's progress, creating a fresh level 1
// record on first touch.
func (o *orchestrator) getOrCreateProgress(ctx context.Context, userID string) (*entities.CharacterProgress, error) {
	got, err := o.characterRepo.Get(ctx, character.GetInput{UserID: userID})
	if err == nil {
		return got.Progress, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	fresh := &entities.CharacterProgress{
		UserID: userID,
		Level:  1,
	}

	created, err := o.characterRepo.Create(ctx, character.CreateInput{Progress: fresh})
	if err != nil {
		if errors.IsAlreadyExists(err) {
			// Lost a creation race; the record exists now
			got, err := o.characterRepo.Get(ctx, character.GetInput{UserID: userID})
			if err != nil {
				return nil, err
			}
			return got.Progress, nil
		}
		return nil, err
	}

	return created.Progress, nil
}

// advanceQuest loads the quest definition and the user's record, applies
// the objective delta through the rules core, and persists the result.
// Returns the updated record, whether this call completed the quest, and
// the definition's reward XP.
func (o *orchestrator) advanceQuest(ctx context.Context, userID, questID, objectiveID string, delta int) (*entities.UserQuest, bool, int, error) {
	def, err := o.questRepo.GetDefinition(ctx, quest.GetDefinitionInput{QuestID: questID})
	if err != nil {
		return nil, false, 0, err
	}

	var userQuest entities.UserQuest
	existing, err := o.questRepo.GetUserQuest(ctx, quest.GetUserQuestInput{UserID: userID, QuestID: questID})
	switch {
	case err == nil:
		userQuest = *existing.UserQuest
	case errors.IsNotFound(err):
		userQuest = entities.UserQuest{UserID: userID, QuestID: questID}
	default:
		return nil, false, 0, err
	}

	wasCompleted := userQuest.Completed

	updated, err := unlock.UpdateQuestProgress(def.Quest, userQuest, objectiveID, delta, o.clock.Now())
	if err != nil {
		return nil, false, 0, err
	}

	if err := o.questRepo.SaveUserQuest(ctx, &updated); err != nil {
		return nil, false, 0, err
	}

	newlyCompleted := updated.Completed && !wasCompleted
	return &updated, newlyCompleted, def.Quest.RewardXP, nil
}

// evaluateAchievements runs the unlock check against the registry and
// persists any newly satisfied achievements.
func (o *orchestrator) evaluateAchievements(ctx context.Context, progress *entities.CharacterProgress) ([]entities.Achievement, error) {
	unlocks, err := o.achievementRepo.List(ctx, achievement.ListInput{UserID: progress.UserID})
	if err != nil {
		return nil, err
	}

	already := make(map[string]struct{}, len(unlocks.Unlocks))
	for _, u := range unlocks.Unlocks {
		already[u.AchievementID] = struct{}{}
	}

	newly := unlock.CheckAchievements(o.registry, unlock.SnapshotFor(*progress), already)
	if len(newly) == 0 {
		return nil, nil
	}

	now := o.clock.Now()
	persisted := make([]entities.Achievement, 0, len(newly))
	for _, def := range newly {
		_, err := o.achievementRepo.Unlock(ctx, achievement.UnlockInput{
			Unlock: &entities.UserAchievement{
				UserID:        progress.UserID,
				AchievementID: def.ID,
				UnlockedAt:    now,
				Progress:      100,
			},
		})
		if err != nil {
			// A concurrent evaluation already recorded it; not ours to report
			if errors.IsAlreadyExists(err) {
				continue
			}
			return nil, err
		}
		persisted = append(persisted, def)

		slog.InfoContext(ctx, "achievement unlocked",
			"user_id", progress.UserID,
			"achievement_id", def.ID)
	}

	return persisted, nil
}

// applyStatPoints adds points to the named stat
func applyStatPoints(stats *entities.StatBlock, stat string, points int) error {
	switch stat {
	case "intellect":
		stats.Intellect += points
	case "focus":
		stats.Focus += points
	case "memory":
		stats.Memory += points
	case "speed":
		stats.Speed += points
	case "curiosity":
		stats.Curiosity += points
	case "grit":
		stats.Grit += points
	default:
		return errors.InvalidArgumentf("unknown stat %q", stat)
	}
	return nil
}
