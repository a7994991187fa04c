package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
)

// PlayerDependencies defines the interface for player operations.
type PlayerDependencies interface {
	ImportPlayers(ctx context.Context, players []model.Player) (int, error)
	Players(ctx context.Context, club string) ([]model.Player, error)
}

// PlayersHandler handles player import and listing requests.
type PlayersHandler struct {
	deps PlayerDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayerDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// HandlePlayers handles GET /players?club=N and POST /players requests.
func (h *PlayersHandler) HandlePlayers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleImport(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *PlayersHandler) handleList(w http.ResponseWriter, r *http.Request) {
	players, err := h.deps.Players(r.Context(), r.URL.Query().Get("club"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, players)
}

func (h *PlayersHandler) handleImport(w http.ResponseWriter, r *http.Request) {
	var players []model.Player
	if err := json.NewDecoder(r.Body).Decode(&players); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}
	if len(players) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: empty player list", ErrBadRequest))
		return
	}
	n, err := h.deps.ImportPlayers(r.Context(), players)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, importResponse{Imported: n})
}
