package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/studyhub/studyhub/internal/store"
)

// VoteHandler serves the voting endpoint for all three content types.
type VoteHandler struct {
	store  *store.Store
	logger *slog.Logger
}

func NewVoteHandler(st *store.Store, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{store: st, logger: logger}
}

type voteRequest struct {
	TargetID string `json:"targetId"`
	Type     string `json:"type"` // "question", "resource", or "answer"
	Value    int    `json:"value"`
}

type voteResponse struct {
	Applied bool `json:"applied"`
}

// HandleCreate casts a vote on a question, resource, or answer.
//
// HTTP: POST /api/votes
// BODY: {"targetId": "q1", "type": "question", "value": 1}
//
// Each target accepts one vote per server run; a repeat is reported as
// applied=false with a 200, not an error. Voting works logged out — only the
// karma side effect needs a session.
func (h *VoteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid vote JSON", slog.String("error", err.Error()))
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if req.TargetID == "" {
		http.Error(w, "targetId is required", http.StatusBadRequest)
		return
	}

	applied, err := h.store.Vote(r.Context(), req.TargetID, store.VoteKind(req.Type), req.Value)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, voteResponse{Applied: applied})
}
