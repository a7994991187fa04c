package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/types"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/pkg/metrics"
)

// playerRow is the sqlite shape of a player. Slice and map fields are stored
// as JSON text; sqlite has no native type for them and the analyzer never
// queries inside them.
type playerRow struct {
	ID               string `gorm:"primaryKey"`
	Name             string
	Club             string `gorm:"index"`
	Age              int
	Attributes       string
	Positions        string
	AssignedRoles    string
	PrimaryRole      string
	NaturalPositions string
	PlayingTime      string
	Foot             string
	Status           string
	UpdatedAt        time.Time
}

func (playerRow) TableName() string { return "players" }

// ratingRow is one append-only rating history record.
type ratingRow struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	PlayerID   string `gorm:"index:idx_player_role"`
	Role       string `gorm:"index:idx_player_role"`
	Absolute   float64
	Normalized string
	TS         time.Time `gorm:"column:ts"`
}

func (ratingRow) TableName() string { return "dwrs_ratings" }

// GormStore implements Store on sqlite through gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens (or creates) the sqlite database at path and migrates
// the schema.
func NewGormStore(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenDatabase, err)
	}
	if err := db.AutoMigrate(&playerRow{}, &ratingRow{}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenDatabase, err)
	}
	return &GormStore{db: db}, nil
}

// UpsertPlayer inserts or replaces a player record.
func (s *GormStore) UpsertPlayer(ctx context.Context, p model.Player) error {
	row, err := toPlayerRow(p)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return err
	}
	metrics.UpdateTrackedPlayers(s.PlayerCount(ctx))
	return nil
}

// Player returns one player by id.
func (s *GormStore) Player(ctx context.Context, id string) (model.Player, error) {
	var row playerRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Player{}, ErrNotFound
	}
	if err != nil {
		return model.Player{}, err
	}
	return fromPlayerRow(row)
}

// Players returns all players ordered by id.
func (s *GormStore) Players(ctx context.Context) ([]model.Player, error) {
	return s.listPlayers(ctx, s.db.WithContext(ctx))
}

// PlayersByClub returns all players of one club ordered by id.
func (s *GormStore) PlayersByClub(ctx context.Context, club string) ([]model.Player, error) {
	return s.listPlayers(ctx, s.db.WithContext(ctx).Where("club = ?", club))
}

func (s *GormStore) listPlayers(_ context.Context, tx *gorm.DB) ([]model.Player, error) {
	var rows []playerRow
	if err := tx.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]model.Player, 0, len(rows))
	for _, row := range rows {
		p, err := fromPlayerRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// PlayerCount returns the number of tracked players.
func (s *GormStore) PlayerCount(ctx context.Context) int {
	var n int64
	s.db.WithContext(ctx).Model(&playerRow{}).Count(&n)
	return int(n)
}

// AppendIfChanged appends a rating record unless the change is insignificant.
func (s *GormStore) AppendIfChanged(ctx context.Context, rec model.RatingRecord) (bool, error) {
	var last ratingRow
	err := s.db.WithContext(ctx).
		Where("player_id = ? AND role = ?", rec.PlayerID, rec.Role).
		Order("ts DESC, id DESC").
		First(&last).Error
	switch {
	case err == nil:
		prev := model.RatingRecord{Normalized: last.Normalized}
		if math.Abs(rec.NormalizedValue()-prev.NormalizedValue()) < changeFloor {
			return false, nil
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return false, err
	}

	row := ratingRow{
		PlayerID:   rec.PlayerID,
		Role:       rec.Role,
		Absolute:   rec.Absolute,
		Normalized: rec.Normalized,
		TS:         rec.TS,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return false, err
	}
	metrics.UpdateHistoryRecords(s.RatingCount(ctx))
	return true, nil
}

// LatestRating returns the newest record for a (player, role) pair.
func (s *GormStore) LatestRating(ctx context.Context, playerID, role string) (model.RatingRecord, error) {
	var row ratingRow
	err := s.db.WithContext(ctx).
		Where("player_id = ? AND role = ?", playerID, role).
		Order("ts DESC, id DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.RatingRecord{}, ErrNotFound
	}
	if err != nil {
		return model.RatingRecord{}, err
	}
	return fromRatingRow(row), nil
}

// RatingSeries returns the full history of a (player, role) pair.
func (s *GormStore) RatingSeries(ctx context.Context, playerID, role string) ([]model.RatingRecord, error) {
	var rows []ratingRow
	err := s.db.WithContext(ctx).
		Where("player_id = ? AND role = ?", playerID, role).
		Order("ts ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]model.RatingRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRatingRow(row))
	}
	return out, nil
}

// LatestRatings returns the newest record per role for one player.
func (s *GormStore) LatestRatings(ctx context.Context, playerID string) ([]model.RatingRecord, error) {
	var rows []ratingRow
	err := s.db.WithContext(ctx).
		Raw(`SELECT r.* FROM dwrs_ratings r
			JOIN (SELECT role, MAX(id) AS max_id FROM dwrs_ratings WHERE player_id = ? GROUP BY role) m
			ON r.id = m.max_id ORDER BY r.role`, playerID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]model.RatingRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRatingRow(row))
	}
	return out, nil
}

// TopByRole returns up to n players ranked by their newest rating for role.
func (s *GormStore) TopByRole(ctx context.Context, role string, n int) ([]types.Entry, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}
	var rows []ratingRow
	err := s.db.WithContext(ctx).
		Raw(`SELECT r.* FROM dwrs_ratings r
			JOIN (SELECT player_id, MAX(id) AS max_id FROM dwrs_ratings WHERE role = ? GROUP BY player_id) m
			ON r.id = m.max_id`, role).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	recs := make([]model.RatingRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, fromRatingRow(row))
	}
	// Rank in Go; the normalized column is stored as text.
	sortTop(recs)
	if len(recs) > n {
		recs = recs[:n]
	}

	out := make([]types.Entry, 0, len(recs))
	for i, rec := range recs {
		entry := types.Entry{
			Rank:     i + 1,
			PlayerID: rec.PlayerID,
			Rating:   rec.NormalizedValue(),
		}
		if p, err := s.Player(ctx, rec.PlayerID); err == nil {
			entry.Name = p.Name
			entry.Club = p.Club
		}
		out = append(out, entry)
	}
	return out, nil
}

// RatingCount returns the total number of history records.
func (s *GormStore) RatingCount(ctx context.Context) int {
	var n int64
	s.db.WithContext(ctx).Model(&ratingRow{}).Count(&n)
	return int(n)
}

func toPlayerRow(p model.Player) (playerRow, error) {
	attrs, err := json.Marshal(p.Attributes)
	if err != nil {
		return playerRow{}, err
	}
	positions, err := json.Marshal(p.Positions)
	if err != nil {
		return playerRow{}, err
	}
	roles, err := json.Marshal(p.AssignedRoles)
	if err != nil {
		return playerRow{}, err
	}
	natural, err := json.Marshal(p.NaturalPositions)
	if err != nil {
		return playerRow{}, err
	}
	return playerRow{
		ID:               p.ID,
		Name:             p.Name,
		Club:             p.Club,
		Age:              p.Age,
		Attributes:       string(attrs),
		Positions:        string(positions),
		AssignedRoles:    string(roles),
		PrimaryRole:      p.PrimaryRole,
		NaturalPositions: string(natural),
		PlayingTime:      p.PlayingTime,
		Foot:             string(p.Foot),
		Status:           p.Status,
		UpdatedAt:        time.Now().UTC(),
	}, nil
}

func fromPlayerRow(row playerRow) (model.Player, error) {
	p := model.Player{
		ID:          row.ID,
		Name:        row.Name,
		Club:        row.Club,
		Age:         row.Age,
		PrimaryRole: row.PrimaryRole,
		PlayingTime: row.PlayingTime,
		Foot:        model.Foot(row.Foot),
		Status:      row.Status,
	}
	fields := []struct {
		raw    string
		target any
	}{
		{row.Attributes, &p.Attributes},
		{row.Positions, &p.Positions},
		{row.AssignedRoles, &p.AssignedRoles},
		{row.NaturalPositions, &p.NaturalPositions},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		if err := json.Unmarshal([]byte(f.raw), f.target); err != nil {
			return model.Player{}, err
		}
	}
	return p, nil
}

func fromRatingRow(row ratingRow) model.RatingRecord {
	return model.RatingRecord{
		PlayerID:   row.PlayerID,
		Role:       row.Role,
		Absolute:   row.Absolute,
		Normalized: row.Normalized,
		TS:         row.TS,
	}
}

func sortTop(recs []model.RatingRecord) {
	sortByRatingDesc := func(i, j int) bool {
		vi, vj := recs[i].NormalizedValue(), recs[j].NormalizedValue()
		if vi != vj {
			return vi > vj
		}
		return recs[i].PlayerID < recs[j].PlayerID
	}
	sort.Slice(recs, sortByRatingDesc)
}
