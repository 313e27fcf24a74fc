// Package game implements the game session orchestrator: lifecycle
// transitions, answer scoring, and rank-based reward distribution.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/questforge/quest-api/internal/orchestrators/game Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/questforge/quest-api/internal/entities"
	"github.com/questforge/quest-api/internal/errors"
	"github.com/questforge/quest-api/internal/pkg/clock"
	"github.com/questforge/quest-api/internal/pkg/idgen"
	"github.com/questforge/quest-api/internal/repositories/achievement"
	"github.com/questforge/quest-api/internal/repositories/character"
	"github.com/questforge/quest-api/internal/repositories/gamesession"
	"github.com/questforge/quest-api/internal/rules/gamemode"
	"github.com/questforge/quest-api/internal/rules/progression"
	"github.com/questforge/quest-api/internal/rules/unlock"
)

// Service defines the interface for game session operations
type Service interface {
	// CreateSession opens a session for a mode; solo modes activate
	// immediately
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// JoinSession adds a participant to a waiting session
	JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error)

	// StartSession moves a waiting session to active
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// SubmitAnswer scores one answer and completes the session when its
	// end condition holds
	SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error)

	// CancelSession aborts a waiting or active session
	CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error)

	// GetSession fetches a session with its mode ruleset
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	SessionRepo     gamesession.Repository
	CharacterRepo   character.Repository
	AchievementRepo achievement.Repository

	// Immutable mode rulesets keyed by mode id
	Catalog map[string]entities.GameMode

	// Achievement definitions re-evaluated after reward distribution
	Registry []entities.Achievement

	Publisher   EventPublisher
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.AchievementRepo == nil {
		vb.RequiredField("AchievementRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	sessionRepo     gamesession.Repository
	characterRepo   character.Repository
	achievementRepo achievement.Repository
	catalog         map[string]entities.GameMode
	registry        []entities.Achievement
	publisher       EventPublisher
	clock           clock.Clock
	idGen           idgen.Generator
}

// NewOrchestrator creates a new game orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		sessionRepo:     cfg.SessionRepo,
		characterRepo:   cfg.CharacterRepo,
		achievementRepo: cfg.AchievementRepo,
		catalog:         cfg.Catalog,
		registry:        cfg.Registry,
		publisher:       cfg.Publisher,
		clock:           cfg.Clock,
		idGen:           cfg.IDGenerator,
	}, nil
}

// CreateSession opens a session for a mode; solo modes activate
// immediately
func (o *orchestrator) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.HostID == "" {
		return nil, errors.InvalidArgument("host ID cannot be empty")
	}

	mode, err := o.mode(input.ModeID)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now()
	session := &entities.GameSession{
		ID:     o.idGen.Generate(),
		ModeID: mode.ID,
		HostID: input.HostID,
		Status: entities.SessionWaiting,
		Participants: []entities.GameParticipant{
			{UserID: input.HostID, Active: true, JoinedAt: now},
		},
		CreatedAt: now,
	}

	// Solo modes have nothing to wait for
	if gamemode.IsSolo(*mode) {
		session.Status = entities.SessionActive
		started := now
		session.StartedAt = &started
	}

	created, err := o.sessionRepo.Create(ctx, gamesession.CreateInput{Session: session})
	if err != nil {
		return nil, err
	}

	o.publisher.Publish(Event{Type: EventSessionCreated, SessionID: session.ID, UserID: input.HostID, At: now})
	if session.Status == entities.SessionActive {
		o.publisher.Publish(Event{Type: EventSessionStarted, SessionID: session.ID, UserID: input.HostID, At: now})
	}

	slog.InfoContext(ctx, "game session created",
		"session_id", session.ID,
		"mode_id", mode.ID,
		"status", session.Status)

	return &CreateSessionOutput{
		Session: created.Session,
		Mode:    mode,
	}, nil
}

// JoinSession adds a participant to a waiting session
func (o *orchestrator) JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	session, mode, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := gamemode.ValidateJoin(*mode, session, input.UserID); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	session.Participants = append(session.Participants, entities.GameParticipant{
		UserID:   input.UserID,
		Active:   true,
		JoinedAt: now,
	})

	if err := o.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	o.publisher.Publish(Event{Type: EventParticipantJoined, SessionID: session.ID, UserID: input.UserID, At: now})

	return &JoinSessionOutput{
		Session: session,
	}, nil
}

// StartSession moves a waiting session to active
func (o *orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	session, mode, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := gamemode.ValidateStart(*mode, session, input.UserID); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	session.Status = entities.SessionActive
	session.StartedAt = &now

	if err := o.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	o.publisher.Publish(Event{Type: EventSessionStarted, SessionID: session.ID, UserID: input.UserID, At: now})

	slog.InfoContext(ctx, "game session started",
		"session_id", session.ID,
		"participants", len(session.Participants))

	return &StartSessionOutput{
		Session: session,
	}, nil
}

// SubmitAnswer scores one answer and completes the session when its end
// condition holds
func (o *orchestrator) SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	session, mode, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := gamemode.ValidateScoring(session, input.UserID); err != nil {
		return nil, err
	}

	participant := session.Participant(input.UserID)
	result, err := gamemode.ScoreAnswer(*mode, input.Correct, input.TimeSpentSeconds, *participant)
	if err != nil {
		return nil, err
	}

	participant.Score = result.NewTotal
	if input.Correct {
		participant.Streak++
	} else {
		participant.Streak = 0
		// Survival eliminates on a wrong answer
		if mode.Type == entities.GameModeSurvival {
			participant.Active = false
		}
	}

	if input.AdvanceRound {
		session.CurrentRound++
	}

	now := o.clock.Now()
	out := &SubmitAnswerOutput{
		Points:   result.Points,
		NewTotal: result.NewTotal,
	}

	if gamemode.EndConditionMet(*mode, session, input.TimerExpired) {
		results, err := o.completeSession(ctx, session, mode, now)
		if err != nil {
			return nil, err
		}
		out.SessionCompleted = true
		out.Results = results
	}

	if err := o.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	o.publisher.Publish(Event{
		Type:      EventAnswerScored,
		SessionID: session.ID,
		UserID:    input.UserID,
		At:        now,
		Points:    result.Points,
	})
	if out.SessionCompleted {
		o.publisher.Publish(Event{
			Type:      EventSessionCompleted,
			SessionID: session.ID,
			At:        now,
			Results:   out.Results,
		})
	}

	out.Session = session
	return out, nil
}

// CancelSession aborts a waiting or active session
func (o *orchestrator) CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	session, _, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := gamemode.ValidateCancel(session, input.UserID); err != nil {
		return nil, err
	}

	session.Status = entities.SessionCancelled

	if err := o.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	o.publisher.Publish(Event{Type: EventSessionCancelled, SessionID: session.ID, UserID: input.UserID, At: now})

	slog.InfoContext(ctx, "game session cancelled",
		"session_id", session.ID,
		"by", input.UserID)

	return &CancelSessionOutput{
		Session: session,
	}, nil
}

// GetSession fetches a session with its mode ruleset
func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	session, mode, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		Session: session,
		Mode:    mode,
	}, nil
}

// completeSession ranks participants, distributes rank-based rewards,
// and marks the session completed. Reward XP lands on each
// participant's character; the winner's games-won counter moves too.
func (o *orchestrator) completeSession(ctx context.Context, session *entities.GameSession, mode *entities.GameMode, now time.Time) ([]ParticipantResult, error) {
	session.Status = entities.SessionCompleted
	session.CompletedAt = &now

	ranked := gamemode.RankParticipants(session.Participants)
	session.Participants = ranked

	results := make([]ParticipantResult, 0, len(ranked))
	for _, p := range ranked {
		rewards := gamemode.RewardsForRank(*mode, p.Rank)
		xp := 0
		for _, r := range rewards {
			xp += r.XP
		}

		if err := o.grantSessionRewards(ctx, p.UserID, p.Rank == 1, xp); err != nil {
			return nil, err
		}

		results = append(results, ParticipantResult{
			UserID:    p.UserID,
			Rank:      p.Rank,
			Score:     p.Score,
			Rewards:   rewards,
			XPAwarded: xp,
		})
	}

	slog.InfoContext(ctx, "game session completed",
		"session_id", session.ID,
		"participants", len(ranked))

	return results, nil
}

// grantSessionRewards applies end-of-session XP and counters to one
// participant's character progress.
func (o *orchestrator) grantSessionRewards(ctx context.Context, userID string, won bool, xp int) error {
	got, err := o.characterRepo.Get(ctx, character.GetInput{UserID: userID})
	if err != nil {
		// Participants without a progress record start one here
		if !errors.IsNotFound(err) {
			return err
		}
		created, err := o.characterRepo.Create(ctx, character.CreateInput{
			Progress: &entities.CharacterProgress{UserID: userID, Level: 1},
		})
		if err != nil {
			return err
		}
		got = &character.GetOutput{Progress: created.Progress}
	}

	updated, _, err := progression.AwardXP(*got.Progress, xp)
	if err != nil {
		return err
	}
	if won {
		updated.Counters.GamesWon++
	}

	if err := o.characterRepo.Update(ctx, &updated); err != nil {
		return err
	}

	return o.checkAchievements(ctx, &updated)
}

// checkAchievements persists any achievements newly satisfied by the
// updated progress.
func (o *orchestrator) checkAchievements(ctx context.Context, progress *entities.CharacterProgress) error {
	unlocks, err := o.achievementRepo.List(ctx, achievement.ListInput{UserID: progress.UserID})
	if err != nil {
		return err
	}

	already := make(map[string]struct{}, len(unlocks.Unlocks))
	for _, u := range unlocks.Unlocks {
		already[u.AchievementID] = struct{}{}
	}

	now := o.clock.Now()
	for _, def := range unlock.CheckAchievements(o.registry, unlock.SnapshotFor(*progress), already) {
		_, err := o.achievementRepo.Unlock(ctx, achievement.UnlockInput{
			Unlock: &entities.UserAchievement{
				UserID:        progress.UserID,
				AchievementID: def.ID,
				UnlockedAt:    now,
				Progress:      100,
			},
		})
		if err != nil && !errors.IsAlreadyExists(err) {
			return err
		}
	}
	return nil
}

// load fetches a session and resolves its mode from the catalog
func (o *orchestrator) load(ctx context.Context, sessionID string) (*entities.GameSession, *entities.GameMode, error) {
	if sessionID == "" {
		return nil, nil, errors.InvalidArgument("session ID cannot be empty")
	}

	got, err := o.sessionRepo.Get(ctx, gamesession.GetInput{SessionID: sessionID})
	if err != nil {
		return nil, nil, err
	}

	mode, err := o.mode(got.Session.ModeID)
	if err != nil {
		return nil, nil, err
	}

	return got.Session, mode, nil
}

// mode resolves a mode id against the catalog
func (o *orchestrator) mode(modeID string) (*entities.GameMode, error) {
	if modeID == "" {
		return nil, errors.InvalidArgument("mode ID cannot be empty")
	}

	m, ok := o.catalog[modeID]
	if !ok {
		return nil, errors.NotFoundf("game mode %q not found", modeID)
	}
	return &m, nil
}
