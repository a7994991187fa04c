// Package service wires the analyzer together and implements the
// dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	jobqueue "github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/adapters/mq/queue"
	workerpool "github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/adapters/mq/worker"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/adapters/repository"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/config"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/definitions"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/dedupe"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/rating"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/squad"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/types"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/importer"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/pkg/logger"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/pkg/metrics"
)

// Service implements the analyzer's use cases over the store, the rating
// pipeline and the squad optimizer.
type Service struct {
	mu sync.RWMutex

	cfg   *config.Config
	defs  *definitions.Definitions
	store repository.Store

	deduper   dedupe.Deduper
	jobQueue  jobqueue.Queue
	engine    *rating.Engine
	optimizer *squad.Optimizer
	pool      *workerpool.Pool

	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore overrides the store chosen from configuration.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDefinitions overrides the definition set chosen from configuration.
func WithDefinitions(defs *definitions.Definitions) Option {
	return func(s *Service) {
		if defs != nil {
			s.defs = defs
		}
	}
}

// New constructs a Service from configuration.
func New(cfg *config.Config, opts ...Option) *Service {
	s := &Service{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	if s.defs == nil {
		defs, err := definitions.Load(s.cfg.DefinitionsPath)
		if err != nil {
			return err
		}
		s.defs = defs
	}
	if s.store == nil {
		if s.cfg.DatabasePath != "" {
			store, err := repository.NewGormStore(s.cfg.DatabasePath)
			if err != nil {
				return err
			}
			s.store = store
			s.logger.Info(ctx, "using sqlite store", logger.String("path", s.cfg.DatabasePath))
		} else {
			s.store = repository.NewMemStore()
			s.logger.Info(ctx, "using in-memory store")
		}
	}

	s.deduper = dedupe.NewInMemoryDeduper()
	s.jobQueue = jobqueue.NewInMemoryQueue(
		jobqueue.WithCapacity(s.cfg.QueueSize),
	)
	s.engine = rating.New(s.defs,
		rating.WithOutfieldWeights(s.cfg.Weights),
		rating.WithGoalkeeperWeights(s.cfg.GKWeights),
		rating.WithKeyMultiplier(s.cfg.KeyMultiplier),
		rating.WithPreferableMultiplier(s.cfg.PreferableMultiplier),
	)
	s.optimizer = squad.New(s.defs, squad.RatingFunc(s.currentRating),
		squad.WithAPTWeightFunc(s.cfg.APTWeight),
		squad.WithNaturalPositionBonus(s.cfg.NaturalPositionBonus),
		squad.WithDepthCap(s.cfg.MaxRolesPerDepthPlayer),
		squad.WithYouthAgeFunc(s.cfg.YouthAge),
	)

	s.pool = workerpool.NewPool(s.cfg.WorkerCount, s.jobQueue, s.engine, s.store, s.store, s.deduper)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "analyzer service started",
		logger.Int("workers", s.cfg.WorkerCount),
		logger.Int("queue_size", s.cfg.QueueSize),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	ctx := context.Background()
	s.logger.Info(ctx, "stopping analyzer service...")
	if s.pool != nil {
		_ = s.pool.Shutdown(ctx)
	}
	s.started = false
	s.logger.Info(ctx, "analyzer service stopped")
}

// currentRating resolves the newest normalized rating of a (player, role)
// pair; pairs without history rate as 0 and stay unselectable.
func (s *Service) currentRating(playerID, role string) float64 {
	rec, err := s.store.LatestRating(context.Background(), playerID, role)
	if err != nil {
		return 0
	}
	return rec.NormalizedValue()
}

// ImportPlayers upserts players and queues them for rating. Players without
// assigned roles get the default roles of their positions.
func (s *Service) ImportPlayers(ctx context.Context, players []model.Player) (int, error) {
	imported := 0
	for _, p := range players {
		if p.ID == "" {
			metrics.RecordImportError()
			continue
		}
		if len(p.AssignedRoles) == 0 {
			p.AssignedRoles = s.defs.RolesForPositions(p.Positions)
		}
		if err := s.store.UpsertPlayer(ctx, p); err != nil {
			metrics.RecordImportError()
			return imported, fmt.Errorf("upsert player %s: %w", p.ID, err)
		}
		imported++
		s.enqueueRating(ctx, p)
	}
	metrics.RecordPlayersImported(imported)
	s.logger.Info(ctx, "players imported", logger.Int("count", imported))
	return imported, nil
}

// ImportHTML parses a squad export and imports its players.
func (s *Service) ImportHTML(ctx context.Context, r io.Reader) (int, error) {
	players, err := importer.ParseHTML(r)
	if err != nil {
		metrics.RecordImportError()
		return 0, err
	}
	return s.ImportPlayers(ctx, players)
}

func (s *Service) enqueueRating(ctx context.Context, p model.Player) {
	if len(p.AssignedRoles) == 0 {
		return
	}
	if s.deduper.SeenAndRecord(ctx, p.ID) {
		return
	}
	job := model.RatingJob{PlayerID: p.ID, Roles: p.AssignedRoles, EnqueuedAt: time.Now().UTC()}
	if !s.jobQueue.Enqueue(ctx, job) {
		s.deduper.Unrecord(ctx, p.ID)
		s.logger.Warn(ctx, "rating job dropped",
			logger.String("player_id", p.ID),
			logger.Error(jobqueue.ErrQueueFull),
		)
	}
}

// Players lists players, optionally restricted to one club.
func (s *Service) Players(ctx context.Context, club string) ([]model.Player, error) {
	if club != "" {
		return s.store.PlayersByClub(ctx, club)
	}
	return s.store.Players(ctx)
}

// Ratings returns the newest rating per assigned role of one player.
func (s *Service) Ratings(ctx context.Context, playerID string) ([]types.RatingRow, error) {
	if _, err := s.store.Player(ctx, playerID); err != nil {
		return nil, err
	}
	recs, err := s.store.LatestRatings(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return toRows(recs), nil
}

// History returns the full rating history of a (player, role) pair in
// chronological order.
func (s *Service) History(ctx context.Context, playerID, role string) ([]types.RatingRow, error) {
	if !s.defs.KnownRole(role) {
		return nil, fmt.Errorf("%w: %s", definitions.ErrUnknownRole, role)
	}
	recs, err := s.store.RatingSeries(ctx, playerID, role)
	if err != nil {
		return nil, err
	}
	return toRows(recs), nil
}

// Leaderboard returns the best players for one role, best first. The limit
// is clamped to the configured maximum.
func (s *Service) Leaderboard(ctx context.Context, role string, limit int) ([]types.Entry, error) {
	if !s.defs.KnownRole(role) {
		return nil, fmt.Errorf("%w: %s", definitions.ErrUnknownRole, role)
	}
	if limit < 1 || limit > s.cfg.MaxLeaderboardLimit {
		limit = s.cfg.MaxLeaderboardLimit
	}
	return s.store.TopByRole(ctx, role, limit)
}

// BuildSquad runs the full squad analysis for a tactic, optionally
// restricted to one club's players. The second club supplies the
// second-team pool; when empty the configured second-team club stands in,
// and with neither the second XI is drawn from the leftovers.
func (s *Service) BuildSquad(ctx context.Context, tactic, club, secondClub string) (*squad.Squad, error) {
	pool, err := s.Players(ctx, club)
	if err != nil {
		return nil, err
	}
	if secondClub == "" {
		secondClub = s.cfg.SecondTeamClub
	}
	var secondTeam []model.Player
	if secondClub != "" {
		secondTeam, err = s.store.PlayersByClub(ctx, secondClub)
		if err != nil {
			return nil, err
		}
	}

	start := time.Now()
	result, err := s.optimizer.Build(ctx, tactic, pool, secondTeam)
	if err != nil {
		if errors.Is(err, squad.ErrNoPlayers) {
			return nil, err
		}
		return nil, fmt.Errorf("build squad for %s: %w", tactic, err)
	}
	metrics.RecordSquadBuild()
	metrics.RecordSquadBuildDuration(float64(time.Since(start).Milliseconds()))
	metrics.RecordInjuryPromotions(len(result.PromotionLog))
	metrics.RecordUnfilledSlots(result.UnfilledSlots())

	for _, line := range result.PromotionLog {
		s.logger.Info(ctx, "injury promotion", logger.String("move", line), logger.String("tactic", tactic))
	}
	return result, nil
}

// Tactics returns the defined tactics with their formation layouts.
func (s *Service) Tactics(_ context.Context) map[string]map[string][]string {
	out := map[string]map[string][]string{}
	for _, name := range s.defs.TacticNames() {
		out[name] = s.defs.Layout(name)
	}
	return out
}

// Roles returns every defined role grouped by category, with display names.
func (s *Service) Roles(_ context.Context) map[string]map[string]string {
	out := map[string]map[string]string{}
	for category, roles := range s.defs.Categories() {
		group := map[string]string{}
		for _, role := range roles {
			group[role] = s.defs.DisplayName(role)
		}
		out[category] = group
	}
	return out
}

// RoleMatrix returns the newest normalized rating of every player for every
// defined role. Unrated pairs are absent.
func (s *Service) RoleMatrix(ctx context.Context) (map[string]map[string]string, error) {
	players, err := s.store.Players(ctx)
	if err != nil {
		return nil, err
	}
	matrix := make(map[string]map[string]string, len(players))
	for _, p := range players {
		recs, err := s.store.LatestRatings(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		row := map[string]string{}
		for _, rec := range recs {
			row[rec.Role] = rec.Normalized
		}
		matrix[p.ID] = row
	}
	return matrix, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":      s.started,
		"worker_count": s.cfg.WorkerCount,
		"queue_size":   s.cfg.QueueSize,
	}
	if s.started {
		stats["queue_length"] = s.jobQueue.Len(ctx)
		stats["players"] = s.store.PlayerCount(ctx)
		stats["rating_records"] = s.store.RatingCount(ctx)
		stats["jobs_in_flight"] = s.deduper.Size()
	}
	return stats
}

func toRows(recs []model.RatingRecord) []types.RatingRow {
	rows := make([]types.RatingRow, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, types.RatingRow{
			Role:       rec.Role,
			Absolute:   rec.Absolute,
			Normalized: rec.Normalized,
			TS:         rec.TS.UTC().Format(time.RFC3339),
		})
	}
	return rows
}
