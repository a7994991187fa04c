package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/types"
)

// RatingDependencies defines the interface for rating lookups.
type RatingDependencies interface {
	Ratings(ctx context.Context, playerID string) ([]types.RatingRow, error)
}

// RatingsHandler handles per-player rating requests.
type RatingsHandler struct {
	deps RatingDependencies
}

// NewRatingsHandler creates a new ratings handler.
func NewRatingsHandler(deps RatingDependencies) *RatingsHandler {
	return &RatingsHandler{deps: deps}
}

// HandleGetRatings handles GET /ratings/{player_id} requests.
func (h *RatingsHandler) HandleGetRatings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	playerID := strings.TrimPrefix(r.URL.Path, "/ratings/")
	if playerID == "" || strings.Contains(playerID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	rows, err := h.deps.Ratings(r.Context(), playerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// HistoryDependencies defines the interface for rating history lookups.
type HistoryDependencies interface {
	History(ctx context.Context, playerID, role string) ([]types.RatingRow, error)
}

// HistoryHandler handles rating history requests.
type HistoryHandler struct {
	deps HistoryDependencies
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(deps HistoryDependencies) *HistoryHandler {
	return &HistoryHandler{deps: deps}
}

// HandleGetHistory handles GET /history?player=P&role=R requests.
func (h *HistoryHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	playerID := r.URL.Query().Get("player")
	role := r.URL.Query().Get("role")
	if playerID == "" || role == "" {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: player and role are required", ErrBadRequest))
		return
	}
	rows, err := h.deps.History(r.Context(), playerID, role)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
