package squad

// Weakest-link team selection: instead of filling slots greedily from the
// strongest candidate down, each round finds the best candidate for every
// open slot and locks in the slot whose best option is WORST. Strong slots
// can afford to wait; thin slots get first pick of the pool.

import (
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
)

type candidate struct {
	pick  Pick
	score float64
}

// selectTeam fills as many slots as the pool allows and returns the selected
// team alongside the unused remainder of the pool. Slots that no candidate
// can fill stay absent from the returned map.
func (o *Optimizer) selectTeam(slots map[string]string, eligible map[string][]string, pool []model.Player) (map[string]Pick, []model.Player) {
	team := make(map[string]Pick, len(slots))
	used := make(map[string]struct{}, len(slots))
	ordered := sortedByID(pool)
	slotNames := sortedSlots(slots)

	for len(team) < len(slots) {
		best := map[string]candidate{}
		for _, slot := range slotNames {
			if _, done := team[slot]; done {
				continue
			}
			role := slots[slot]
			var top candidate
			found := false
			for _, p := range ordered {
				if _, taken := used[p.ID]; taken {
					continue
				}
				if p.PrimaryRole != "" && p.PrimaryRole != role {
					continue
				}
				if !p.HasPosition(eligible[slot]) {
					continue
				}
				r := o.ratings.Rating(p.ID, role)
				if r <= 0 {
					continue
				}
				score := r * o.aptWeight(p.PlayingTime)
				if o.defs.RoleForSlotPositions(role, p.NaturalPositions) {
					score *= o.naturalBonus
				}
				// Strictly-better keeps the lowest player id on ties.
				if !found || score > top.score {
					found = true
					top = candidate{
						pick: Pick{
							Slot:        slot,
							Role:        role,
							PlayerID:    p.ID,
							Name:        p.Name,
							Rating:      formatRating(r),
							PlayingTime: p.PlayingTime,
						},
						score: score,
					}
				}
			}
			if found {
				best[slot] = top
			}
		}
		if len(best) == 0 {
			break
		}

		weakest := ""
		for _, slot := range slotNames {
			c, ok := best[slot]
			if !ok {
				continue
			}
			if weakest == "" || c.score < best[weakest].score {
				weakest = slot
			}
		}
		winner := best[weakest]
		team[weakest] = winner.pick
		used[winner.pick.PlayerID] = struct{}{}
	}

	remaining := make([]model.Player, 0, len(ordered)-len(used))
	for _, p := range ordered {
		if _, taken := used[p.ID]; !taken {
			remaining = append(remaining, p)
		}
	}
	return team, remaining
}
