package squad

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/definitions"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/position"
)

// Optimizer builds squads for tactics. It is stateless across builds and safe
// for concurrent use.
type Optimizer struct {
	defs         *definitions.Definitions
	ratings      RatingSource
	aptWeight    func(string) float64
	naturalBonus float64
	depthCap     int
	youthAge     func(goalkeeper bool) int
}

// New creates an Optimizer over a definition set and rating source.
func New(defs *definitions.Definitions, ratings RatingSource, opts ...Option) *Optimizer {
	o := &Optimizer{
		defs:         defs,
		ratings:      ratings,
		aptWeight:    func(string) float64 { return 1.0 },
		naturalBonus: 1.05,
		depthCap:     2,
		youthAge: func(goalkeeper bool) int {
			if goalkeeper {
				return 24
			}
			return 21
		},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Build runs the full squad analysis for one tactic over a player pool:
// starting XI and B-team via weakest-link selection, footedness swaps, the
// per-role depth chart, injury promotions with depth backfill, and the
// development split of everyone left without a squad job. The second-team
// pool staffs the second XI; pass nil to draw it from the leftovers.
func (o *Optimizer) Build(ctx context.Context, tactic string, players, secondTeam []model.Player) (*Squad, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	slots, err := o.defs.Tactic(tactic)
	if err != nil {
		return nil, err
	}
	eligible := make(map[string][]string, len(slots))
	for slot := range slots {
		allowed, err := position.Eligible(slot)
		if err != nil {
			return nil, err
		}
		eligible[slot] = allowed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	byID := make(map[string]model.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	xi, rest := o.selectTeam(slots, eligible, players)
	bteam, rest := o.selectTeam(slots, eligible, rest)
	fillVacancies(xi, slots)
	fillVacancies(bteam, slots)
	o.adjustFootedness(xi, slots, byID)
	o.adjustFootedness(bteam, slots, byID)

	depth := o.allocateDepth(slots, rest, nil)
	rest = without(rest, pickedIDs(depth))

	s := &Squad{
		Tactic:        tactic,
		StartingXI:    xi,
		BTeam:         bteam,
		AdjustedXI:    clonePicks(xi),
		AdjustedBTeam: clonePicks(bteam),
		Depth:         depth,
	}
	s.PromotionLog = o.promoteInjured(s.AdjustedXI, s.AdjustedBTeam, s.Depth, slots, byID)

	// Injury promotions may have emptied depth roles; backfill from the
	// players still without a job.
	refilled := o.allocateDepth(slots, rest, s.Depth)
	for role, pick := range refilled {
		s.Depth[role] = pick
	}
	rest = without(rest, pickedIDs(refilled))

	s.SecondXI, s.YouthXI, s.LoanList, s.SellList = o.splitDevelopment(slots, eligible, secondTeam, rest)
	return s, nil
}

// UnfilledSlots counts vacant picks across the adjusted starting XI and
// B-team, so injury gaps without cover count too.
func (s *Squad) UnfilledSlots() int {
	xi, bteam := s.AdjustedXI, s.AdjustedBTeam
	if xi == nil {
		xi = s.StartingXI
	}
	if bteam == nil {
		bteam = s.BTeam
	}
	n := 0
	for _, p := range xi {
		if p.Vacant() {
			n++
		}
	}
	for _, p := range bteam {
		if p.Vacant() {
			n++
		}
	}
	return n
}

func fillVacancies(team map[string]Pick, slots map[string]string) {
	for slot, role := range slots {
		if _, ok := team[slot]; !ok {
			team[slot] = Pick{Slot: slot, Role: role, Name: "-", Rating: "0%"}
		}
	}
}

func formatRating(r float64) string {
	return fmt.Sprintf("%d%%", int(r))
}

func clonePicks(picks map[string]Pick) map[string]Pick {
	out := make(map[string]Pick, len(picks))
	for slot, p := range picks {
		out[slot] = p
	}
	return out
}

func pickedIDs(picks map[string]Pick) map[string]struct{} {
	ids := make(map[string]struct{}, len(picks))
	for _, p := range picks {
		if !p.Vacant() {
			ids[p.PlayerID] = struct{}{}
		}
	}
	return ids
}

func without(pool []model.Player, ids map[string]struct{}) []model.Player {
	out := pool[:0]
	for _, p := range pool {
		if _, ok := ids[p.ID]; !ok {
			out = append(out, p)
		}
	}
	return out
}

func sortedByID(pool []model.Player) []model.Player {
	out := make([]model.Player, len(pool))
	copy(out, pool)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedSlots(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for slot := range m {
		out = append(out, slot)
	}
	sort.Strings(out)
	return out
}

func lastName(full string) string {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
