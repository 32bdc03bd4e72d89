package handler

import (
	"log/slog"
	"net/http"

	"github.com/studyhub/studyhub/internal/store"
	"github.com/studyhub/studyhub/internal/view"
)

// CommunityHandler serves the derived read-only views: leaderboard, the
// session user's activity feed, the course list, and collection stats.
type CommunityHandler struct {
	store  *store.Store
	logger *slog.Logger
}

func NewCommunityHandler(st *store.Store, logger *slog.Logger) *CommunityHandler {
	return &CommunityHandler{store: st, logger: logger}
}

// HandleLeaderboard returns all known users ranked by karma, highest first.
//
// HTTP: GET /api/leaderboard
//
// Ties keep roster order, so ranks are stable across reloads.
func (h *CommunityHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, view.Leaderboard(h.store.Users()))
}

// HandleActivity returns the session user's questions and resources merged
// into one feed, newest first.
//
// HTTP: GET /api/activity
// Auth: Required
//
// Anonymous posts are included — the author ID is recorded even when the
// display name is the placeholder.
func (h *CommunityHandler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	user := h.store.CurrentUser()
	if user == nil {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}

	items := view.MyActivity(h.store.Questions(), h.store.Resources(), user.ID)
	writeJSON(w, http.StatusOK, items)
}

// HandleCourses returns the course picker options.
//
// HTTP: GET /api/courses
func (h *CommunityHandler) HandleCourses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Courses())
}

// HandleStats returns current collection sizes.
//
// HTTP: GET /api/stats
func (h *CommunityHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Stats())
}
