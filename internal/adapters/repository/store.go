// Package repository defines the player and rating-history store interface
// with in-memory and sqlite implementations.
package repository

import (
	"context"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/types"
)

// Store provides read/write access to players and their rating history.
// Rating history is append-only; the current rating of a (player, role) pair
// is its newest record.
type Store interface {
	// UpsertPlayer inserts or replaces a player record.
	UpsertPlayer(ctx context.Context, p model.Player) error

	// Player returns one player by id. Returns ErrNotFound when unknown.
	Player(ctx context.Context, id string) (model.Player, error)

	// Players returns all players ordered by id.
	Players(ctx context.Context) ([]model.Player, error)

	// PlayersByClub returns all players of one club ordered by id.
	PlayersByClub(ctx context.Context, club string) ([]model.Player, error)

	// PlayerCount returns the number of tracked players.
	PlayerCount(ctx context.Context) int

	// AppendIfChanged appends a rating record unless the normalized value
	// moved less than one percentage point since the newest record of the
	// same (player, role) pair. Returns true when a record was written.
	AppendIfChanged(ctx context.Context, rec model.RatingRecord) (bool, error)

	// LatestRating returns the newest record for a (player, role) pair.
	// Returns ErrNotFound when the pair has no history.
	LatestRating(ctx context.Context, playerID, role string) (model.RatingRecord, error)

	// RatingSeries returns the full history of a (player, role) pair in
	// chronological order.
	RatingSeries(ctx context.Context, playerID, role string) ([]model.RatingRecord, error)

	// LatestRatings returns the newest record per role for one player,
	// ordered by role.
	LatestRatings(ctx context.Context, playerID string) ([]model.RatingRecord, error)

	// TopByRole returns up to n players ranked by their newest normalized
	// rating for the role, best first. Returns ErrInvalidLimit when n < 1.
	TopByRole(ctx context.Context, role string, n int) ([]types.Entry, error)

	// RatingCount returns the total number of history records.
	RatingCount(ctx context.Context) int
}
