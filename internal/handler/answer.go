package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/studyhub/studyhub/internal/store"
)

// AnswerHandler serves answer creation.
type AnswerHandler struct {
	store  *store.Store
	logger *slog.Logger
}

func NewAnswerHandler(st *store.Store, logger *slog.Logger) *AnswerHandler {
	return &AnswerHandler{store: st, logger: logger}
}

type createAnswerRequest struct {
	QuestionID string `json:"questionId"`
	Content    string `json:"content"`
	Anonymous  bool   `json:"anonymous"`
}

// HandleCreate posts an answer to a question.
//
// HTTP: POST /api/answers
// Auth: Required
// BODY: {"questionId": "q1", "content": "...", "anonymous": false}
//
// The question ID is not checked for existence — an answer to an unknown ID
// is accepted and simply never shows up under a question.
func (h *AnswerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid answer JSON", slog.String("error", err.Error()))
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.QuestionID) == "" {
		http.Error(w, "questionId is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}

	answer, err := h.store.AddAnswer(r.Context(), store.AnswerInput{
		QuestionID: req.QuestionID,
		Content:    strings.TrimSpace(req.Content),
		Anonymous:  req.Anonymous,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, answer)
}
