// Package v1alpha1 exposes the progression and game services over HTTP.
package v1alpha1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/questforge/quest-api/internal/errors"
	"github.com/questforge/quest-api/internal/orchestrators/game"
	"github.com/questforge/quest-api/internal/orchestrators/progress"
)

// Config holds the dependencies for the API handler
type Config struct {
	ProgressService progress.Service
	GameService     game.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ProgressService == nil {
		vb.RequiredField("ProgressService")
	}
	if c.GameService == nil {
		vb.RequiredField("GameService")
	}

	return vb.Build()
}

// Handler serves the v1alpha1 JSON API
type Handler struct {
	progressService progress.Service
	gameService     game.Service
}

// NewHandler creates a new API handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		progressService: cfg.ProgressService,
		gameService:     cfg.GameService,
	}, nil
}

// RegisterRoutes attaches every API route under /v1alpha1
func (h *Handler) RegisterRoutes(r *mux.Router) {
	api := r.PathPrefix("/v1alpha1").Subrouter()

	api.HandleFunc("/users/{user_id}/progress", h.GetProgress).Methods(http.MethodGet)
	api.HandleFunc("/users/{user_id}/answers", h.AnswerQuestion).Methods(http.MethodPost)
	api.HandleFunc("/users/{user_id}/lessons", h.CompleteLesson).Methods(http.MethodPost)
	api.HandleFunc("/users/{user_id}/stats/allocate", h.AllocateStatPoints).Methods(http.MethodPost)
	api.HandleFunc("/users/{user_id}/quests/{quest_id}/progress", h.UpdateQuestProgress).Methods(http.MethodPost)
	api.HandleFunc("/users/{user_id}/achievements", h.ListAchievements).Methods(http.MethodGet)

	api.HandleFunc("/sessions", h.CreateSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{session_id}", h.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{session_id}/join", h.JoinSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{session_id}/start", h.StartSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{session_id}/answers", h.SubmitAnswer).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{session_id}/cancel", h.CancelSession).Methods(http.MethodPost)
}

// errorBody is the JSON error envelope
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "code", code, "error", err)
	}

	writeJSON(w, status, errorBody{
		Code:    string(code),
		Message: errors.GetMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.InvalidArgumentf("invalid request body: %v", err)
	}
	return nil
}
