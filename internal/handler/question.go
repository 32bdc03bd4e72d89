package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/studyhub/studyhub/internal/store"
	"github.com/studyhub/studyhub/internal/view"
)

// QuestionHandler serves the question feed and creation endpoint.
type QuestionHandler struct {
	store  *store.Store
	logger *slog.Logger
}

func NewQuestionHandler(st *store.Store, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{store: st, logger: logger}
}

// HandleList returns the question feed, newest first, optionally filtered.
//
// HTTP: GET /api/questions?search=&course=
//
// search matches title, content, and tags case-insensitively; course is an
// exact match. Both filters combine with AND.
func (h *QuestionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	course := r.URL.Query().Get("course")

	questions := view.FilterQuestions(h.store.Questions(), search, course)
	writeJSON(w, http.StatusOK, questions)
}

type questionDetail struct {
	Question interface{} `json:"question"`
	Answers  interface{} `json:"answers"`
}

// HandleGet returns a single question with its answer thread.
//
// HTTP: GET /api/questions/{id}
func (h *QuestionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	question, err := h.store.QuestionByID(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, questionDetail{
		Question: question,
		Answers:  view.AnswersFor(h.store.Answers(), id),
	})
}

type createQuestionRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Course    string `json:"course"`
	Tags      string `json:"tags"` // comma-separated, as typed in the form
	Anonymous bool   `json:"anonymous"`
	Urgent    bool   `json:"urgent"`
}

// HandleCreate creates a question authored by the session user.
//
// HTTP: POST /api/questions
// Auth: Required
// BODY: {"title": "...", "content": "...", "course": "CS401",
//        "tags": "neural-networks, exams", "anonymous": false, "urgent": true}
//
// Tags arrive as one comma-separated string and are split here, before the
// store sees them.
func (h *QuestionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid question JSON", slog.String("error", err.Error()))
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}

	question, err := h.store.AddQuestion(r.Context(), store.QuestionInput{
		Title:     strings.TrimSpace(req.Title),
		Content:   strings.TrimSpace(req.Content),
		Course:    strings.TrimSpace(req.Course),
		Tags:      splitTags(req.Tags),
		Anonymous: req.Anonymous,
		Urgent:    req.Urgent,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, question)
}

// splitTags turns the form's comma-separated tag string into trimmed,
// non-empty tags. "a, b,,c " becomes ["a" "b" "c"].
func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
