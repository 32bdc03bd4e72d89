// Package handler contains the HTTP layer: request parsing, response
// writing, and nothing else. Business rules live in the store; these
// handlers translate between JSON and store calls.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/studyhub/studyhub/internal/auth"
	"github.com/studyhub/studyhub/internal/store"
)

// AuthHandler manages campus-email login, logout, and the current-user
// endpoint.
type AuthHandler struct {
	store  *store.Store
	tokens *auth.TokenService
	logger *slog.Logger
}

// NewAuthHandler creates an AuthHandler. All dependencies are injected; the
// handler has no knowledge of how they're constructed.
func NewAuthHandler(st *store.Store, tokens *auth.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{store: st, tokens: tokens, logger: logger}
}

type loginRequest struct {
	Email string `json:"email"`
}

// HandleLogin authenticates a campus email and opens a session.
//
// HTTP: POST /api/auth/login
// BODY: {"email": "jdoe@university.edu"}
//
// A non-campus email is a 400 with a user-facing message. On success the
// session JWT is set as an HttpOnly cookie and the user is returned.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid login JSON", slog.String("error", err.Error()))
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	user, err := h.store.Login(r.Context(), req.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	tokenStr, err := h.tokens.Generate(user.ID)
	if err != nil {
		h.logger.Error("login: token generation failed", slog.String("error", err.Error()))
		http.Error(w, "authentication failed", http.StatusInternalServerError)
		return
	}

	// HttpOnly: JavaScript cannot read the cookie (XSS protection).
	// SameSite=Lax: not sent on cross-site POSTs.
	// Secure should be enabled in production behind HTTPS.
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    tokenStr,
		Path:     "/",
		MaxAge:   int(auth.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, user)
}

// HandleLogout ends the session: clears the store's current user, the
// persisted identity slot, and the session cookie.
//
// HTTP: POST /api/auth/logout
//
// POST, not GET — logout is a state-changing operation.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout(r.Context())

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // delete the cookie immediately
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// HandleMe returns the current session user.
//
// HTTP: GET /api/me
// Auth: Required
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := h.store.CurrentUser()
	if user == nil {
		// A valid cookie but no store session: the server restarted without
		// a persisted slot, or the session was logged out elsewhere.
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
