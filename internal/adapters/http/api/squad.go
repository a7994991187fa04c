package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/squad"
)

// SquadDependencies defines the interface for squad analysis.
type SquadDependencies interface {
	BuildSquad(ctx context.Context, tactic, club, secondClub string) (*squad.Squad, error)
}

// SquadHandler handles squad analysis requests.
type SquadHandler struct {
	deps SquadDependencies
}

// NewSquadHandler creates a new squad handler.
func NewSquadHandler(deps SquadDependencies) *SquadHandler {
	return &SquadHandler{deps: deps}
}

// HandleGetSquad handles GET /squad?tactic=T&club=C&second=S requests.
func (h *SquadHandler) HandleGetSquad(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	tactic := r.URL.Query().Get("tactic")
	if tactic == "" {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: tactic is required", ErrBadRequest))
		return
	}
	result, err := h.deps.BuildSquad(r.Context(), tactic, r.URL.Query().Get("club"), r.URL.Query().Get("second"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
