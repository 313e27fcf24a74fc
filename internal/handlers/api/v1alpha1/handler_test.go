package v1alpha1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/questforge/quest-api/internal/entities"
	"github.com/questforge/quest-api/internal/errors"
	v1alpha1 "github.com/questforge/quest-api/internal/handlers/api/v1alpha1"
	"github.com/questforge/quest-api/internal/orchestrators/game"
	gamemock "github.com/questforge/quest-api/internal/orchestrators/game/mock"
	"github.com/questforge/quest-api/internal/orchestrators/progress"
	progressmock "github.com/questforge/quest-api/internal/orchestrators/progress/mock"
)

type testServer struct {
	router          *mux.Router
	progressService *progressmock.MockService
	gameService     *gamemock.MockService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServer{
		router:          mux.NewRouter(),
		progressService: progressmock.NewMockService(ctrl),
		gameService:     gamemock.NewMockService(ctrl),
	}

	h, err := v1alpha1.NewHandler(&v1alpha1.Config{
		ProgressService: ts.progressService,
		GameService:     ts.gameService,
	})
	require.NoError(t, err)
	h.RegisterRoutes(ts.router)

	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func TestGetProgress(t *testing.T) {
	ts := newTestServer(t)

	ts.progressService.EXPECT().
		GetProgress(gomock.Any(), &progress.GetProgressInput{UserID: "user_1"}).
		Return(&progress.GetProgressOutput{
			Progress: &entities.CharacterProgress{UserID: "user_1", Level: 3, TotalXP: 250, CurrentXP: 50},
		}, nil)

	rec := ts.do(t, http.MethodGet, "/v1alpha1/users/user_1/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body progress.GetProgressOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Progress.Level)
}

func TestGetProgress_NotFound(t *testing.T) {
	ts := newTestServer(t)

	ts.progressService.EXPECT().
		GetProgress(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("character progress not found"))

	rec := ts.do(t, http.MethodGet, "/v1alpha1/users/nobody/progress", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "character progress not found", body["message"])
}

func TestAnswerQuestion(t *testing.T) {
	ts := newTestServer(t)

	ts.progressService.EXPECT().
		AnswerQuestion(gomock.Any(), &progress.AnswerQuestionInput{
			UserID:     "user_1",
			Subject:    "math",
			Difficulty: 3,
			Correct:    true,
			Accuracy:   1.0,
		}).
		Return(&progress.AnswerQuestionOutput{XPAwarded: 30}, nil)

	rec := ts.do(t, http.MethodPost, "/v1alpha1/users/user_1/answers", map[string]any{
		"subject":    "math",
		"difficulty": 3,
		"correct":    true,
		"accuracy":   1.0,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body progress.AnswerQuestionOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 30, body.XPAwarded)
}

func TestAnswerQuestion_BadBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/users/user_1/answers", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAllocateStatPoints_FailedPrecondition(t *testing.T) {
	ts := newTestServer(t)

	ts.progressService.EXPECT().
		AllocateStatPoints(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("only 1 stat points available, requested 2"))

	rec := ts.do(t, http.MethodPost, "/v1alpha1/users/user_1/stats/allocate", map[string]any{
		"stat":   "focus",
		"points": 2,
	})
	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
}

func TestUpdateQuestProgress_Expired(t *testing.T) {
	ts := newTestServer(t)

	ts.progressService.EXPECT().
		UpdateQuestProgress(gomock.Any(), &progress.UpdateQuestProgressInput{
			UserID:      "user_1",
			QuestID:     "daily_math",
			ObjectiveID: "answers",
			Delta:       1,
		}).
		Return(nil, errors.Expired("quest expired"))

	rec := ts.do(t, http.MethodPost, "/v1alpha1/users/user_1/quests/daily_math/progress", map[string]any{
		"objective_id": "answers",
		"delta":        1,
	})
	assert.Equal(t, http.StatusGone, rec.Code)
}

func TestCreateSession(t *testing.T) {
	ts := newTestServer(t)

	ts.gameService.EXPECT().
		CreateSession(gomock.Any(), &game.CreateSessionInput{HostID: "host_1", ModeID: "quiz_rush"}).
		Return(&game.CreateSessionOutput{
			Session: &entities.GameSession{ID: "sess_1", Status: entities.SessionWaiting},
		}, nil)

	rec := ts.do(t, http.MethodPost, "/v1alpha1/sessions", map[string]any{
		"host_id": "host_1",
		"mode_id": "quiz_rush",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var body game.CreateSessionOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "sess_1", body.Session.ID)
}

func TestJoinSession_Full(t *testing.T) {
	ts := newTestServer(t)

	ts.gameService.EXPECT().
		JoinSession(gomock.Any(), &game.JoinSessionInput{SessionID: "sess_1", UserID: "user_3"}).
		Return(nil, errors.SessionFull("session is full"))

	rec := ts.do(t, http.MethodPost, "/v1alpha1/sessions/sess_1/join", map[string]any{
		"user_id": "user_3",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmitAnswer_InvalidSessionState(t *testing.T) {
	ts := newTestServer(t)

	ts.gameService.EXPECT().
		SubmitAnswer(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidSessionState("session is not active"))

	rec := ts.do(t, http.MethodPost, "/v1alpha1/sessions/sess_1/answers", map[string]any{
		"user_id": "user_1",
		"correct": true,
	})
	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_SESSION_STATE", body["code"])
}

func TestCancelSession(t *testing.T) {
	ts := newTestServer(t)

	ts.gameService.EXPECT().
		CancelSession(gomock.Any(), &game.CancelSessionInput{SessionID: "sess_1", UserID: "host_1"}).
		Return(&game.CancelSessionOutput{
			Session: &entities.GameSession{ID: "sess_1", Status: entities.SessionCancelled},
		}, nil)

	rec := ts.do(t, http.MethodPost, "/v1alpha1/sessions/sess_1/cancel", map[string]any{
		"user_id": "host_1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}
