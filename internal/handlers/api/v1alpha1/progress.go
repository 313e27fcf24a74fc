package v1alpha1

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/questforge/quest-api/internal/orchestrators/progress"
)

type answerQuestionRequest struct {
	Subject    string  `json:"subject"`
	Difficulty int     `json:"difficulty"`
	Correct    bool    `json:"correct"`
	Accuracy   float64 `json:"accuracy"`
	TimeBonus  float64 `json:"time_bonus"`
}

// AnswerQuestion handles POST /users/{user_id}/answers
func (h *Handler) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	var req answerQuestionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.progressService.AnswerQuestion(r.Context(), &progress.AnswerQuestionInput{
		UserID:     mux.Vars(r)["user_id"],
		Subject:    req.Subject,
		Difficulty: req.Difficulty,
		Correct:    req.Correct,
		Accuracy:   req.Accuracy,
		TimeBonus:  req.TimeBonus,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

type completeLessonRequest struct {
	XPAward     int    `json:"xp_award"`
	QuestID     string `json:"quest_id,omitempty"`
	ObjectiveID string `json:"objective_id,omitempty"`
}

// CompleteLesson handles POST /users/{user_id}/lessons
func (h *Handler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	var req completeLessonRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.progressService.CompleteLesson(r.Context(), &progress.CompleteLessonInput{
		UserID:      mux.Vars(r)["user_id"],
		XPAward:     req.XPAward,
		QuestID:     req.QuestID,
		ObjectiveID: req.ObjectiveID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// GetProgress handles GET /users/{user_id}/progress
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	output, err := h.progressService.GetProgress(r.Context(), &progress.GetProgressInput{
		UserID: mux.Vars(r)["user_id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

type allocateStatPointsRequest struct {
	Stat   string `json:"stat"`
	Points int    `json:"points"`
}

// AllocateStatPoints handles POST /users/{user_id}/stats/allocate
func (h *Handler) AllocateStatPoints(w http.ResponseWriter, r *http.Request) {
	var req allocateStatPointsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.progressService.AllocateStatPoints(r.Context(), &progress.AllocateStatPointsInput{
		UserID: mux.Vars(r)["user_id"],
		Stat:   req.Stat,
		Points: req.Points,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

type updateQuestProgressRequest struct {
	ObjectiveID string `json:"objective_id"`
	Delta       int    `json:"delta"`
}

// UpdateQuestProgress handles POST /users/{user_id}/quests/{quest_id}/progress
func (h *Handler) UpdateQuestProgress(w http.ResponseWriter, r *http.Request) {
	var req updateQuestProgressRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	vars := mux.Vars(r)
	output, err := h.progressService.UpdateQuestProgress(r.Context(), &progress.UpdateQuestProgressInput{
		UserID:      vars["user_id"],
		QuestID:     vars["quest_id"],
		ObjectiveID: req.ObjectiveID,
		Delta:       req.Delta,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// ListAchievements handles GET /users/{user_id}/achievements
func (h *Handler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	output, err := h.progressService.ListAchievements(r.Context(), &progress.ListAchievementsInput{
		UserID: mux.Vars(r)["user_id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
