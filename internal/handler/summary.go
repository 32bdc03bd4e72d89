package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studyhub/studyhub/internal/store"
	"github.com/studyhub/studyhub/internal/summary"
)

// SummaryHandler serves AI study hints for questions.
type SummaryHandler struct {
	store   *store.Store
	summary *summary.Client
	logger  *slog.Logger
}

func NewSummaryHandler(st *store.Store, client *summary.Client, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{store: st, summary: client, logger: logger}
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

// HandleCreate generates a study hint for a question.
//
// HTTP: POST /api/questions/{id}/summary
//
// The question must exist; the hint itself never fails — a missing API key
// or upstream error degrades to a canned displayable message.
func (h *SummaryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	question, err := h.store.QuestionByID(id)
	if err != nil {
		writeError(w, err)
		return
	}

	text := h.summary.Summarize(r.Context(), question.Title)
	writeJSON(w, http.StatusOK, summaryResponse{Summary: text})
}
