// Package model contains domain models passed between layers.
package model

import (
	"strconv"
	"strings"
)

// UnknownAge marks players whose age could not be parsed; it sorts them with
// the veterans so they never qualify as youth.
const UnknownAge = 99

// Foot is a player's preferred foot.
type Foot string

// Foot preference values.
const (
	FootRight  Foot = "right"
	FootLeft   Foot = "left"
	FootEither Foot = "either"
)

// Player is one imported player record. The core treats it as an immutable
// value during a computation pass; ownership stays with the store.
type Player struct {
	ID   string // unique id from the game export
	Name string
	Club string
	Age  int // UnknownAge when the export carried a non-numeric age

	// Attributes maps canonical attribute names to raw values as exported,
	// either a plain number ("14") or a scouting range ("12-14").
	Attributes map[string]string

	// Positions are the parsed game positions, e.g. "D (C)", "AM (R)".
	Positions []string

	// AssignedRoles are the role codes the player is rated for.
	AssignedRoles []string

	// PrimaryRole, when set, restricts selection to slots with that role.
	PrimaryRole string

	// NaturalPositions earn the selection bonus when they map to a slot's role.
	NaturalPositions []string

	// PlayingTime is the agreed-playing-time status, e.g. "Star Player".
	PlayingTime string

	// Foot is the preferred foot derived at import time.
	Foot Foot

	// Status is the free-text information field from the export.
	Status string
}

// Injured reports whether the status field carries an injury marker.
// The check is a case-insensitive substring match, matching the game's
// "Inj", "Injured" and similar spellings.
func (p Player) Injured() bool {
	return strings.Contains(strings.ToLower(p.Status), "inj")
}

// Goalkeeper reports whether the player can play in goal.
func (p Player) Goalkeeper() bool {
	for _, pos := range p.Positions {
		if pos == "GK" {
			return true
		}
	}
	return false
}

// AttributeValue resolves an attribute to a number. Scouting ranges such as
// "12-14" resolve to their midpoint; missing or unparseable values resolve
// to 0 so a partially scouted player still rates.
func (p Player) AttributeValue(name string) float64 {
	raw := p.Attributes[name]
	if strings.Contains(raw, "-") {
		parts := strings.SplitN(raw, "-", 2)
		lo, errLo := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		hi, errHi := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errLo != nil || errHi != nil {
			return 0
		}
		return (lo + hi) / 2
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// HasPosition reports whether one of the player's parsed positions is in the
// given set.
func (p Player) HasPosition(allowed []string) bool {
	for _, pos := range p.Positions {
		for _, a := range allowed {
			if pos == a {
				return true
			}
		}
	}
	return false
}
