package game

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/questforge/quest-api/internal/entities"
	"github.com/questforge/quest-api/internal/errors"
	"github.com/questforge/quest-api/internal/pkg/clock"
	"github.com/questforge/quest-api/internal/pkg/idgen"
	achievementrepo "github.com/questforge/quest-api/internal/repositories/achievement"
	achievementmock "github.com/questforge/quest-api/internal/repositories/achievement/mock"
	characterrepo "github.com/questforge/quest-api/internal/repositories/character"
	charactermock "github.com/questforge/quest-api/internal/repositories/character/mock"
	sessionrepo "github.com/questforge/quest-api/internal/repositories/gamesession"
	sessionmock "github.com/questforge/quest-api/internal/repositories/gamesession/mock"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// recordingPublisher captures events for assertions
type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (p *recordingPublisher) Publish(e Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) types() []EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func testCatalog() map[string]entities.GameMode {
	return map[string]entities.GameMode{
		"practice_drill": {
			ID:              "practice_drill",
			Type:            entities.GameModePractice,
			Difficulty:      1,
			MaxParticipants: 1,
			MaxTimeSeconds:  30,
		},
		"scholars_duel": {
			ID:              "scholars_duel",
			Type:            entities.GameModeCompetitive,
			Difficulty:      3,
			MaxParticipants: 2,
			TotalRounds:     2,
			MaxTimeSeconds:  20,
			Rewards: []entities.Reward{
				{ID: "gold_star", Tier: entities.RewardTierWinner, XP: 50},
				{ID: "entry_xp", Tier: entities.RewardTierParticipant, XP: 10},
			},
		},
	}
}

type testMocks struct {
	sessionRepo     *sessionmock.MockRepository
	characterRepo   *charactermock.MockRepository
	achievementRepo *achievementmock.MockRepository
	publisher       *recordingPublisher
}

func newTestOrchestrator(t *testing.T) (Service, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testMocks{
		sessionRepo:     sessionmock.NewMockRepository(ctrl),
		characterRepo:   charactermock.NewMockRepository(ctrl),
		achievementRepo: achievementmock.NewMockRepository(ctrl),
		publisher:       &recordingPublisher{},
	}

	o, err := NewOrchestrator(&Config{
		SessionRepo:     mocks.sessionRepo,
		CharacterRepo:   mocks.characterRepo,
		AchievementRepo: mocks.achievementRepo,
		Catalog:         testCatalog(),
		Registry: []entities.Achievement{
			{
				ID:        "arena_champion",
				Criterion: entities.Criterion{Type: entities.CriterionGamesWon, Target: 1},
				Rarity:    3,
			},
		},
		Publisher:   mocks.publisher,
		Clock:       clock.NewFixed(testNow),
		IDGenerator: idgen.NewSequential("sess"),
	})
	require.NoError(t, err)

	return o, mocks
}

func duelSession(status entities.SessionStatus) *entities.GameSession {
	return &entities.GameSession{
		ID:     "sess_1",
		ModeID: "scholars_duel",
		HostID: "host_1",
		Status: status,
		Participants: []entities.GameParticipant{
			{UserID: "host_1", Active: true, JoinedAt: testNow},
			{UserID: "user_2", Active: true, JoinedAt: testNow},
		},
		CreatedAt: testNow,
	}
}

func TestCreateSession_Multiplayer(t *testing.T) {
	o, mocks := newTestOrchestrator(t)
	ctx := context.Background()

	mocks.sessionRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sessionrepo.CreateInput) (*sessionrepo.CreateOutput, error) {
			assert.Equal(t, entities.SessionWaiting, input.Session.Status)
			assert.Equal(t, "host_1", input.Session.HostID)
			require.Len(t, input.Session.Participants, 1)
			assert.True(t, input.Session.Participants[0].Active)
			return &sessionrepo.CreateOutput{Session: input.Session}, nil
		})

	output, err := o.CreateSession(ctx, &CreateSessionInput{HostID: "host_1", ModeID: "scholars_duel"})
	require.NoError(t, err)
	assert.Equal(t, entities.SessionWaiting, output.Session.Status)
	assert.Nil(t, output.Session.StartedAt)
	assert.Equal(t, []EventType{EventSessionCreated}, mocks.publisher.types())
}

func TestCreateSession_SoloActivatesImmediately(t *testing.T) {
	o, mocks := newTestOrchestrator(t)
	ctx := context.Background()

	mocks.sessionRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sessionrepo.CreateInput) (*sessionrepo.CreateOutput, error) {
			return &sessionrepo.CreateOutput{Session: input.Session}, nil
		})

	output, err := o.CreateSession(ctx, &CreateSessionInput{HostID: "host_1", ModeID: "practice_drill"})
	require.NoError(t, err)
	assert.Equal(t, entities.SessionActive, output.Session.Status)
	require.NotNil(t, output.Session.StartedAt)
	assert.Equal(t, []EventType{EventSessionCreated, EventSessionStarted}, mocks.publisher.types())
}

func TestCreateSession_UnknownMode(t *testing.T) {
	o, _ := newTestOrchestrator(t)

	_, err := o.CreateSession(context.Background(), &CreateSessionInput{HostID: "host_1", ModeID: "chess"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestJoinSession(t *testing.T) {
	o, mocks := newTestOrchestrator(t)
	ctx := context.Background()

	session := duelSession(entities.SessionWaiting)
	session.Participants = session.Participants[:1]

	mocks.sessionRepo.EXPECT().
		Get(ctx, sessionrepo.GetInput{SessionID: "sess_1"}).
		Return(&sessionrepo.GetOutput{Session: session}, nil)
	mocks.sessionRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	output, err := o.JoinSession(ctx, &JoinSessionInput{SessionID: "sess_1", UserID: "user_2"})
	require.NoError(t, err)
	require.Len(t, output.Session.Participants, 2)
	assert.Equal(t, "user_2", output.Session.Participants[1].UserID)
	assert.Equal(t, []EventType{EventParticipantJoined}, mocks.publisher.types())
}

func TestJoinSession_Full(t *testing.T) {
	o, mocks := newTestOrchestrator(t)
	ctx := context.Background()

	mocks.sessionRepo.EXPECT().
		Get(ctx, sessionrepo.GetInput{SessionID: "sess_1"}).
		Return(&sessionrepo.GetOutput{Session: duelSession(entities.SessionWaiting)}, nil)

	_, err := o.JoinSession(ctx, &JoinSessionInput{SessionID: "sess_1", UserID: "user_3"})
	require.Error(t, err)
	assert.True(t, errors.IsSessionFull(err))
	assert.Empty(t, mocks.publisher.types())
}

func TestStartSession(t *testing.T) {
	o, mocks := newTestOrchestrator(t)
	ctx := context.Background()

	mocks.sessionRepo.EXPECT().
		Get(ctx, sessionrepo.GetInput{SessionID: "sess_1"}).
		Return(&sessionrepo.GetOutput{Session: duelSession(entities.SessionWaiting)}, nil)
	mocks.sessionRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	output, err := o.StartSession(ctx, &StartSessionInput{SessionID: "sess_1", UserID: "host_1"})
	require.NoError(t, err)
	assert.Equal(t, entities.SessionActive, output.Session.Status)
	require.NotNil(t, output.Session.StartedAt)
}

func TestStartSession_NonHost(t *testing.T) {
	o, mocks := newTestOrchestrator(t)
	ctx := context.Background()

	mocks.sessionRepo.EXPECT().
		Get(ctx, sessionrepo.GetInput{SessionID: "sess_1"}).
		Return(&sessionrepo.GetOutput{Session: duelSession(entities.SessionWaiting)}, nil)

	_, err := o.StartSession(ctx, &StartSessionInput{SessionID: "sess_1", UserID: "user_2"})
	require.Error(t, err)
	assert.True(t, errors.IsPermissionDenied(err))
}

func TestSubmitAnswer_Scores(t *testing.T) {
	o, mocks := newTestOrchestrator(t)
	ctx := context.Background()

	session := duelSession(entities.SessionActive)
	session.Participants[1].Score = 30

	mocks.sessionRepo.EXPECT().
		Get(ctx, sessionrepo.GetInput{SessionID: "sess_1"}).
		Return(&sessionrepo.GetOutput{Session: session}, nil)
	mocks.sessionRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	output, err := o.SubmitAnswer(ctx, &SubmitAnswerInput{
		SessionID:        "sess_1",
		UserID:           "user_2",
		Correct:          true,
		TimeSpentSeconds: 10,
	})
	require.NoError(t, err)
	// base 30 plus half speed bonus in competitive mode
	assert.Equal(t, 45, output.Points)
	assert.Equal(t, 75, output.NewTotal)
	assert.False(t, output.SessionCompleted)
	assert.Equal(t, 1, output.Session.Participant("user_2").Streak)
	assert.Equal(t, []EventType{EventAnswerScored}, mocks.publisher.types())
}

func TestSubmitAnswer_WrongResetsStreak(t *testing.T) {
	o, mocks := newTestOrchestrator(t)
	ctx := context.Background()

	session := duelSession(entities.SessionActive)
	session.Participants[0].Streak = 4

	mocks.sessionRepo.EXPECT().
		Get(ctx, sessionrepo.GetInput{SessionID: "sess_1"}).
		Return(&sessionrepo.GetOutput{Session: session}, nil)
	mocks.sessionRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	output, err := o.SubmitAnswer(ctx, &SubmitAnswerInput{
		SessionID: "sess_1",
		UserID:    "host_1",
		Correct:   false,
	})
	require.NoError(t, err)
	assert.Zero(t, output.Points)
	assert.Zero(t, output.Session.Participant("host_1").Streak)
}

func TestSubmitAnswer_NotActive(t *testing.T) {
	o, mocks := newTestOrchestrator(t)
	ctx := context.Background()

	mocks.sessionRepo.EXPECT().
		Get(ctx, sessionrepo.GetInput{SessionID: "sess_1"}).
		Return(&sessionrepo.GetOutput{Session: duelSession(entities.SessionWaiting)}, nil)

	_, err := o.SubmitAnswer(ctx, &SubmitAnswerInput{SessionID: "sess_1", UserID: "host_1", Correct: true})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidSessionState(err))
}

func TestSubmitAnswer_CompletesAtRoundLimit(t *testing.T) {
	o, mocks := newTestOrchestrator(t)
	ctx := context.Background()

	session := duelSession(entities.SessionActive)
	session.CurrentRound = 1
	session.Participants[0].Score = 100
	session.Participants[1].Score = 60

	mocks.sessionRepo.EXPECT().
		Get(ctx, sessionrepo.GetInput{SessionID: "sess_1"}).
		Return(&sessionrepo.GetOutput{Session: session}, nil)

	// Reward distribution loads and updates both characters
	for _, userID := range []string{"host_1", "user_2"} {
		mocks.characterRepo.EXPECT().
			Get(ctx, characterrepo.GetInput{UserID: userID}).
			Return(&characterrepo.GetOutput{Progress: &entities.CharacterProgress{UserID: userID, Level: 1}}, nil)
		mocks.characterRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		mocks.achievementRepo.EXPECT().
			List(ctx, achievementrepo.ListInput{UserID: userID}).
			Return(&achievementrepo.ListOutput{}, nil)
	}

	// The winner newly satisfies arena_champion
	mocks.achievementRepo.EXPECT().
		Unlock(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input achievementrepo.UnlockInput) (*achievementrepo.UnlockOutput, error) {
			assert.Equal(t, "arena_champion", input.Unlock.AchievementID)
			return &achievementrepo.UnlockOutput{Unlock: input.Unlock}, nil
		})

	var saved *entities.GameSession
	mocks.sessionRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *entities.GameSession) error {
			saved = s
			return nil
		})

	output, err := o.SubmitAnswer(ctx, &SubmitAnswerInput{
		SessionID:        "sess_1",
		UserID:           "user_2",
		Correct:          false,
		TimeSpentSeconds: 5,
		AdvanceRound:     true,
	})
	require.NoError(t, err)
	require.True(t, output.SessionCompleted)
	require.Len(t, output.Results, 2)

	assert.Equal(t, "host_1", output.Results[0].UserID)
	assert.Equal(t, 1, output.Results[0].Rank)
	// winner tier plus participant tier
	assert.Equal(t, 60, output.Results[0].XPAwarded)
	assert.Equal(t, 10, output.Results[1].XPAwarded)

	assert.Equal(t, entities.SessionCompleted, saved.Status)
	require.NotNil(t, saved.CompletedAt)
	assert.Equal(t, []EventType{EventAnswerScored, EventSessionCompleted}, mocks.publisher.types())
}

func TestCancelSession(t *testing.T) {
	o, mocks := newTestOrchestrator(t)
	ctx := context.Background()

	mocks.sessionRepo.EXPECT().
		Get(ctx, sessionrepo.GetInput{SessionID: "sess_1"}).
		Return(&sessionrepo.GetOutput{Session: duelSession(entities.SessionActive)}, nil)
	mocks.sessionRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	output, err := o.CancelSession(ctx, &CancelSessionInput{SessionID: "sess_1", UserID: "host_1"})
	require.NoError(t, err)
	assert.Equal(t, entities.SessionCancelled, output.Session.Status)
	assert.Equal(t, []EventType{EventSessionCancelled}, mocks.publisher.types())
}

func TestCancelSession_Completed(t *testing.T) {
	o, mocks := newTestOrchestrator(t)
	ctx := context.Background()

	mocks.sessionRepo.EXPECT().
		Get(ctx, sessionrepo.GetInput{SessionID: "sess_1"}).
		Return(&sessionrepo.GetOutput{Session: duelSession(entities.SessionCompleted)}, nil)

	_, err := o.CancelSession(ctx, &CancelSessionInput{SessionID: "sess_1", UserID: "host_1"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidSessionState(err))
}

func TestGetSession(t *testing.T) {
	o, mocks := newTestOrchestrator(t)
	ctx := context.Background()

	mocks.sessionRepo.EXPECT().
		Get(ctx, sessionrepo.GetInput{SessionID: "sess_1"}).
		Return(&sessionrepo.GetOutput{Session: duelSession(entities.SessionWaiting)}, nil)

	output, err := o.GetSession(ctx, &GetSessionInput{SessionID: "sess_1"})
	require.NoError(t, err)
	assert.Equal(t, "scholars_duel", output.Mode.ID)
	assert.Equal(t, 2, output.Mode.TotalRounds)
}

func TestConfigValidate(t *testing.T) {
	_, err := NewOrchestrator(&Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
