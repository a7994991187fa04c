package repository

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/types"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/pkg/metrics"
)

// changeFloor is the minimum normalized movement, in percentage points, that
// warrants a new history record.
const changeFloor = 1.0

type ratingKey struct {
	playerID string
	role     string
}

// MemStore implements Store with in-memory maps. It is the default store and
// the backing cache for the sqlite store.
type MemStore struct {
	mu      sync.RWMutex
	players map[string]model.Player
	history map[ratingKey][]model.RatingRecord
	records int
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		players: map[string]model.Player{},
		history: map[ratingKey][]model.RatingRecord{},
	}
}

// UpsertPlayer inserts or replaces a player record.
func (s *MemStore) UpsertPlayer(_ context.Context, p model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[p.ID] = p
	metrics.UpdateTrackedPlayers(len(s.players))
	return nil
}

// Player returns one player by id.
func (s *MemStore) Player(_ context.Context, id string) (model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	if !ok {
		return model.Player{}, ErrNotFound
	}
	return p, nil
}

// Players returns all players ordered by id.
func (s *MemStore) Players(_ context.Context) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// PlayersByClub returns all players of one club ordered by id.
func (s *MemStore) PlayersByClub(ctx context.Context, club string) ([]model.Player, error) {
	all, err := s.Players(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, p := range all {
		if p.Club == club {
			out = append(out, p)
		}
	}
	return out, nil
}

// PlayerCount returns the number of tracked players.
func (s *MemStore) PlayerCount(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}

// AppendIfChanged appends a rating record unless the change is insignificant.
func (s *MemStore) AppendIfChanged(_ context.Context, rec model.RatingRecord) (bool, error) {
	key := ratingKey{rec.PlayerID, rec.Role}
	s.mu.Lock()
	defer s.mu.Unlock()

	series := s.history[key]
	if len(series) > 0 {
		last := series[len(series)-1]
		if math.Abs(rec.NormalizedValue()-last.NormalizedValue()) < changeFloor {
			return false, nil
		}
	}
	s.history[key] = append(series, rec)
	s.records++
	metrics.UpdateHistoryRecords(s.records)
	return true, nil
}

// LatestRating returns the newest record for a (player, role) pair.
func (s *MemStore) LatestRating(_ context.Context, playerID, role string) (model.RatingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	series := s.history[ratingKey{playerID, role}]
	if len(series) == 0 {
		return model.RatingRecord{}, ErrNotFound
	}
	return series[len(series)-1], nil
}

// RatingSeries returns the full history of a (player, role) pair.
func (s *MemStore) RatingSeries(_ context.Context, playerID, role string) ([]model.RatingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	series := s.history[ratingKey{playerID, role}]
	out := make([]model.RatingRecord, len(series))
	copy(out, series)
	return out, nil
}

// LatestRatings returns the newest record per role for one player.
func (s *MemStore) LatestRatings(_ context.Context, playerID string) ([]model.RatingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.RatingRecord
	for key, series := range s.history {
		if key.playerID != playerID || len(series) == 0 {
			continue
		}
		out = append(out, series[len(series)-1])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Role < out[j].Role })
	return out, nil
}

// TopByRole returns up to n players ranked by their newest rating for role.
func (s *MemStore) TopByRole(_ context.Context, role string, n int) ([]types.Entry, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest []model.RatingRecord
	for key, series := range s.history {
		if key.role != role || len(series) == 0 {
			continue
		}
		latest = append(latest, series[len(series)-1])
	}
	sort.Slice(latest, func(i, j int) bool {
		vi, vj := latest[i].NormalizedValue(), latest[j].NormalizedValue()
		if vi != vj {
			return vi > vj
		}
		return latest[i].PlayerID < latest[j].PlayerID
	})
	if len(latest) > n {
		latest = latest[:n]
	}

	out := make([]types.Entry, 0, len(latest))
	for i, rec := range latest {
		entry := types.Entry{
			Rank:     i + 1,
			PlayerID: rec.PlayerID,
			Rating:   rec.NormalizedValue(),
		}
		if p, ok := s.players[rec.PlayerID]; ok {
			entry.Name = p.Name
			entry.Club = p.Club
		}
		out = append(out, entry)
	}
	return out, nil
}

// RatingCount returns the total number of history records.
func (s *MemStore) RatingCount(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}
