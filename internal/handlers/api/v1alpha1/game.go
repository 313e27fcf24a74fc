package v1alpha1

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/questforge/quest-api/internal/orchestrators/game"
)

type createSessionRequest struct {
	HostID string `json:"host_id"`
	ModeID string `json:"mode_id"`
}

// CreateSession handles POST /sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.gameService.CreateSession(r.Context(), &game.CreateSessionInput{
		HostID: req.HostID,
		ModeID: req.ModeID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

// GetSession handles GET /sessions/{session_id}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	output, err := h.gameService.GetSession(r.Context(), &game.GetSessionInput{
		SessionID: mux.Vars(r)["session_id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

type joinSessionRequest struct {
	UserID string `json:"user_id"`
}

// JoinSession handles POST /sessions/{session_id}/join
func (h *Handler) JoinSession(w http.ResponseWriter, r *http.Request) {
	var req joinSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.gameService.JoinSession(r.Context(), &game.JoinSessionInput{
		SessionID: mux.Vars(r)["session_id"],
		UserID:    req.UserID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

type startSessionRequest struct {
	UserID string `json:"user_id"`
}

// StartSession handles POST /sessions/{session_id}/start
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.gameService.StartSession(r.Context(), &game.StartSessionInput{
		SessionID: mux.Vars(r)["session_id"],
		UserID:    req.UserID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

type submitAnswerRequest struct {
	UserID           string  `json:"user_id"`
	Correct          bool    `json:"correct"`
	TimeSpentSeconds float64 `json:"time_spent_seconds"`
	AdvanceRound     bool    `json:"advance_round"`
	TimerExpired     bool    `json:"timer_expired"`
}

// SubmitAnswer handles POST /sessions/{session_id}/answers
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req submitAnswerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.gameService.SubmitAnswer(r.Context(), &game.SubmitAnswerInput{
		SessionID:        mux.Vars(r)["session_id"],
		UserID:           req.UserID,
		Correct:          req.Correct,
		TimeSpentSeconds: req.TimeSpentSeconds,
		AdvanceRound:     req.AdvanceRound,
		TimerExpired:     req.TimerExpired,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

type cancelSessionRequest struct {
	UserID string `json:"user_id"`
}

// CancelSession handles POST /sessions/{session_id}/cancel
func (h *Handler) CancelSession(w http.ResponseWriter, r *http.Request) {
	var req cancelSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.gameService.CancelSession(r.Context(), &game.CancelSessionInput{
		SessionID: mux.Vars(r)["session_id"],
		UserID:    req.UserID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
