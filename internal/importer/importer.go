// Package importer parses the game's HTML squad export into player records.
//
// The export is a single table: the first row carries abbreviated column
// headers, every following row one player. Rows whose cell count does not
// match the header are dropped, matching the game's occasionally truncated
// exports.
package importer

import (
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/position"
)

const (
	requiredColumn = "UID"
	minColumns     = 10
)

// ParseHTML reads a squad export and returns the parsed players. Players
// without a usable UID are skipped.
func ParseHTML(r io.Reader) ([]model.Player, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	headerRow := table.Find("tr").First()
	headers := headerRow.Find("th").Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
	if len(headers) < minColumns || !contains(headers, requiredColumn) {
		return nil, ErrInvalidHeader
	}

	var players []model.Player
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := tr.Find("td").Map(func(_ int, s *goquery.Selection) string {
			return strings.TrimSpace(s.Text())
		})
		if len(cells) != len(headers) {
			return
		}
		if p, ok := buildPlayer(headers, cells); ok {
			players = append(players, p)
		}
	})
	return players, nil
}

func buildPlayer(headers, cells []string) (model.Player, bool) {
	raw := map[string]string{}
	for i, header := range headers {
		canonical, known := attributeMapping[header]
		if !known {
			continue
		}
		// First occurrence wins on duplicate columns.
		if _, dup := raw[canonical]; dup {
			continue
		}
		raw[canonical] = cells[i]
	}

	id := raw["Unique ID"]
	if id == "" {
		return model.Player{}, false
	}

	p := model.Player{
		ID:          id,
		Name:        raw["Name"],
		Club:        raw["Club"],
		Age:         parseAge(raw["Age"]),
		Positions:   position.ParseList(raw["Position"]),
		PlayingTime: raw["Agreed Playing Time"],
		Status:      raw["Information"],
		Foot:        footPreference(raw["Left Foot"], raw["Right Foot"]),
		Attributes:  map[string]string{},
	}
	for canonical, value := range raw {
		if _, identity := identityColumns[canonical]; identity {
			continue
		}
		p.Attributes[canonical] = value
	}
	return p, true
}

// parseAge falls back to UnknownAge so unparseable ages never qualify a
// player as youth.
func parseAge(raw string) int {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || age <= 0 {
		return model.UnknownAge
	}
	return age
}

// footPreference compares the export's per-foot strength descriptors. An
// unknown or equal pairing reads as either-footed.
func footPreference(left, right string) model.Foot {
	l, lok := footStrength[strings.ToLower(strings.TrimSpace(left))]
	r, rok := footStrength[strings.ToLower(strings.TrimSpace(right))]
	if !lok || !rok || l == r {
		return model.FootEither
	}
	if l > r {
		return model.FootLeft
	}
	return model.FootRight
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
