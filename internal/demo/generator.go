package demo

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/google/uuid"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/definitions"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/pkg/logger"
)

// Attribute generation ranges on the game's 1-20 scale.
const (
	randomFloatDivisor = 1000000
	attributeFloor     = 4
	attributeSpread    = 14
	scoutedRangeWidth  = 2
	minAge             = 16
	ageSpread          = 19
	injuryDivisor      = 12
	scoutedDivisor     = 6
)

// archetype describes one kind of generated player.
type archetype struct {
	positions []string
	natural   []string
}

// One keeper per rotation keeps the GK/outfield ratio close to a real squad.
var archetypes = []archetype{
	{positions: []string{"GK"}, natural: []string{"GK"}},
	{positions: []string{"D (C)"}, natural: []string{"D (C)"}},
	{positions: []string{"D (R)", "WB (R)"}, natural: []string{"D (R)"}},
	{positions: []string{"D (L)", "WB (L)"}, natural: []string{"D (L)"}},
	{positions: []string{"DM", "M (C)"}, natural: []string{"DM"}},
	{positions: []string{"M (C)"}, natural: []string{"M (C)"}},
	{positions: []string{"M (R)", "AM (R)"}, natural: []string{"M (R)"}},
	{positions: []string{"M (L)", "AM (L)"}, natural: []string{"M (L)"}},
	{positions: []string{"AM (C)", "ST (C)"}, natural: []string{"AM (C)"}},
	{positions: []string{"ST (C)"}, natural: []string{"ST (C)"}},
}

var firstNames = []string{
	"Marco", "Jonas", "Felix", "Luca", "Emil", "Mats", "Nico", "Tim",
	"Jan", "Leon", "Paul", "Erik", "Noah", "Ben", "Finn", "Joel",
}

var lastNames = []string{
	"Berger", "Hoffmann", "Krause", "Lehmann", "Maier", "Neumann",
	"Richter", "Schulz", "Vogel", "Wagner", "Winkler", "Zimmermann",
}

var playingTimes = []string{
	"Star Player", "Important Player", "Regular Starter",
	"Squad Player", "Fringe Player", "Hot Prospect",
}

var feet = []model.Foot{model.FootRight, model.FootRight, model.FootLeft, model.FootEither}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// randIndex returns a random index below n.
func randIndex(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// generatePlayers creates a synthetic squad with unique player IDs.
func generatePlayers(ctx context.Context, config *Config, stats *Stats) []model.Player {
	logger.Get().Info(ctx, "generating players",
		logger.Int("numPlayers", config.NumPlayers),
		logger.String("club", config.Club))

	players := make([]model.Player, config.NumPlayers)
	for i := range players {
		players[i] = generateSinglePlayer(i, config.Club)
	}

	stats.PlayersGenerated = len(players)
	return players
}

// generateSinglePlayer creates one player from the archetype rotation.
func generateSinglePlayer(index int, club string) model.Player {
	arch := archetypes[index%len(archetypes)]

	// Player quality drifts around a per-player baseline so squads contain
	// clear starters and clear backups.
	quality := getRandomFloat()

	p := model.Player{
		ID:               uuid.New().String(),
		Name:             firstNames[randIndex(len(firstNames))] + " " + lastNames[randIndex(len(lastNames))],
		Club:             club,
		Age:              minAge + randIndex(ageSpread),
		Positions:        arch.positions,
		NaturalPositions: arch.natural,
		PlayingTime:      playingTimes[randIndex(len(playingTimes))],
		Foot:             feet[randIndex(len(feet))],
	}
	if randIndex(injuryDivisor) == 0 {
		p.Status = "Inj - " + strconv.Itoa(1+randIndex(4)) + " wks"
	}

	categories := definitions.OutfieldCategories
	if arch.positions[0] == "GK" {
		categories = definitions.GoalkeeperCategories
	}
	p.Attributes = generateAttributes(categories, quality)
	return p
}

// generateAttributes fills every attribute of the taxonomy with a value near
// the player's quality baseline. Some values come out as scouting ranges.
func generateAttributes(categories map[string]string, quality float64) map[string]string {
	attrs := make(map[string]string, len(categories))
	for name := range categories {
		base := attributeFloor + int(quality*float64(attributeSpread))
		value := base + randIndex(5) - 2
		if value < 1 {
			value = 1
		}
		if value > 20 {
			value = 20
		}
		if randIndex(scoutedDivisor) == 0 && value <= 20-scoutedRangeWidth {
			attrs[name] = strconv.Itoa(value) + "-" + strconv.Itoa(value+scoutedRangeWidth)
			continue
		}
		attrs[name] = strconv.Itoa(value)
	}
	return attrs
}
