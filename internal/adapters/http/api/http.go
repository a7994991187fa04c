// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/adapters/repository"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/definitions"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/squad"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ImportPlayers(ctx context.Context, players []model.Player) (int, error)
	ImportHTML(ctx context.Context, r io.Reader) (int, error)
	Players(ctx context.Context, club string) ([]model.Player, error)
	Ratings(ctx context.Context, playerID string) ([]types.RatingRow, error)
	History(ctx context.Context, playerID, role string) ([]types.RatingRow, error)
	Leaderboard(ctx context.Context, role string, limit int) ([]types.Entry, error)
	BuildSquad(ctx context.Context, tactic, club, secondClub string) (*squad.Squad, error)
	Tactics(ctx context.Context) map[string]map[string][]string
	Roles(ctx context.Context) map[string]map[string]string
	RoleMatrix(ctx context.Context) (map[string]map[string]string, error)
}

// Entry mirrors the read shape returned by leaderboard queries.
type Entry = types.Entry

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	playersHandler     *PlayersHandler
	importHandler      *ImportHandler
	ratingsHandler     *RatingsHandler
	historyHandler     *HistoryHandler
	leaderboardHandler *LeaderboardHandler
	squadHandler       *SquadHandler
	metaHandler        *MetaHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		playersHandler:     NewPlayersHandler(deps),
		importHandler:      NewImportHandler(deps),
		ratingsHandler:     NewRatingsHandler(deps),
		historyHandler:     NewHistoryHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps),
		squadHandler:       NewSquadHandler(deps),
		metaHandler:        NewMetaHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/players", MetricsMiddleware(s.playersHandler.HandlePlayers, "players"))
	mux.HandleFunc("/import", MetricsMiddleware(s.importHandler.HandleImport, "import"))
	mux.HandleFunc("/ratings/", MetricsMiddleware(s.ratingsHandler.HandleGetRatings, "ratings"))
	mux.HandleFunc("/history", MetricsMiddleware(s.historyHandler.HandleGetHistory, "history"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/squad", MetricsMiddleware(s.squadHandler.HandleGetSquad, "squad"))
	mux.HandleFunc("/tactics", MetricsMiddleware(s.metaHandler.HandleGetTactics, "tactics"))
	mux.HandleFunc("/roles", MetricsMiddleware(s.metaHandler.HandleGetRoles, "roles"))
	mux.HandleFunc("/matrix", MetricsMiddleware(s.metaHandler.HandleGetMatrix, "matrix"))
}

type importResponse struct {
	Imported int `json:"imported"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates known domain errors to their HTTP shape.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, squad.ErrNoPlayers):
		writeError(w, http.StatusNotFound, "no_players", err)
	case errors.Is(err, definitions.ErrUnknownRole),
		errors.Is(err, definitions.ErrUnknownTactic),
		errors.Is(err, repository.ErrInvalidLimit):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
