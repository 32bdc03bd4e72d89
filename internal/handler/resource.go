package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/studyhub/studyhub/internal/store"
	"github.com/studyhub/studyhub/internal/view"
)

// ResourceHandler serves the shared-resource feed and creation endpoint.
type ResourceHandler struct {
	store  *store.Store
	logger *slog.Logger
}

func NewResourceHandler(st *store.Store, logger *slog.Logger) *ResourceHandler {
	return &ResourceHandler{store: st, logger: logger}
}

// HandleList returns the resource feed, newest first, optionally filtered.
//
// HTTP: GET /api/resources?search=&course=
func (h *ResourceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	course := r.URL.Query().Get("course")

	resources := view.FilterResources(h.store.Resources(), search, course)
	writeJSON(w, http.StatusOK, resources)
}

type createResourceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Course      string `json:"course"`
	Tags        string `json:"tags"` // comma-separated
	Link        string `json:"link"`
}

// HandleCreate shares a resource, always attributed to the session user.
//
// HTTP: POST /api/resources
// Auth: Required
// BODY: {"title": "...", "description": "...", "course": "CHEM150",
//        "tags": "organic, cheat-sheet", "link": "https://..."}
func (h *ResourceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid resource JSON", slog.String("error", err.Error()))
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Link) == "" {
		http.Error(w, "link is required", http.StatusBadRequest)
		return
	}

	resource, err := h.store.AddResource(r.Context(), store.ResourceInput{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Course:      strings.TrimSpace(req.Course),
		Tags:        splitTags(req.Tags),
		Link:        strings.TrimSpace(req.Link),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resource)
}
