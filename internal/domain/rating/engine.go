// Package rating computes DWRS ratings for (player, role) pairs.
//
// A rating aggregates the active attribute taxonomy into importance
// categories, boosts attributes the role lists as key or preferable, and
// normalizes the weighted sum against the theoretical worst and best player
// under the same role. Missing attributes count as zero, which can push the
// normalized value below 0%.
package rating

import (
	"fmt"
	"math"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/definitions"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
)

// Rating is the result of rating one player for one role.
type Rating struct {
	Absolute   float64
	Normalized string // formatted integer percentage, e.g. "47%"
}

// Engine rates players against role definitions. It is safe for concurrent
// use once constructed.
type Engine struct {
	defs      *definitions.Definitions
	weights   map[string]float64
	gkWeights map[string]float64
	keyMult   float64
	prefMult  float64
}

// New creates an Engine over a definition set. Category weights and role
// multipliers default to the analyzer's long-standing values; override them
// with options.
func New(defs *definitions.Definitions, opts ...Option) *Engine {
	e := &Engine{
		defs: defs,
		weights: map[string]float64{
			"Extremely Important": 8.0,
			"Important":           4.0,
			"Good":                2.0,
			"Decent":              1.0,
			"Almost Irrelevant":   0.2,
		},
		gkWeights: map[string]float64{
			"Top Importance":    10.0,
			"High Importance":   8.0,
			"Medium Importance": 6.0,
			"Key":               4.0,
			"Preferable":        2.0,
			"Other":             0.5,
		},
		keyMult:  1.5,
		prefMult: 1.2,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rate computes the absolute and normalized rating of a player for a role.
// Goalkeeper roles rate against the goalkeeper taxonomy and weight set,
// everything else against the outfield one.
func (e *Engine) Rate(p model.Player, role string) Rating {
	categories := definitions.OutfieldCategories
	weights := e.weights
	if e.defs.GoalkeeperRole(role) {
		categories = definitions.GoalkeeperCategories
		weights = e.gkWeights
	}

	rw := e.defs.Weights(role)
	key := toSet(rw.Key)
	pref := toSet(rw.Preferable)

	// Accumulate per-category sums for the player alongside the floor (all
	// attributes at 1) and ceiling (all at 20) under the same multipliers.
	sums := map[string]float64{}
	floors := map[string]float64{}
	ceils := map[string]float64{}
	counts := map[string]int{}
	for attr, cat := range categories {
		if _, ok := weights[cat]; !ok {
			continue
		}
		mult := 1.0
		if _, ok := key[attr]; ok {
			mult = e.keyMult
		} else if _, ok := pref[attr]; ok {
			mult = e.prefMult
		}
		sums[cat] += p.AttributeValue(attr) * mult
		floors[cat] += 1 * mult
		ceils[cat] += 20 * mult
		counts[cat]++
	}

	var absolute, worst, best float64
	for cat, w := range weights {
		n := counts[cat]
		if n == 0 {
			continue
		}
		absolute += w * sums[cat] / float64(n)
		worst += w * floors[cat] / float64(n)
		best += w * ceils[cat] / float64(n)
	}

	normalized := "0%"
	if best != worst {
		normalized = formatPercent((absolute - worst) / (best - worst) * 100)
	}
	return Rating{Absolute: absolute, Normalized: normalized}
}

// formatPercent rounds half away from zero, so 46.5 formats as "47%".
func formatPercent(v float64) string {
	return fmt.Sprintf("%.0f%%", math.Round(v))
}

func toSet(attrs []string) map[string]struct{} {
	set := make(map[string]struct{}, len(attrs))
	for _, a := range attrs {
		set[a] = struct{}{}
	}
	return set
}
