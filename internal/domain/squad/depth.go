package squad

import (
	"sort"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
)

// allocateDepth picks one cover player per distinct role of the tactic from
// the pool. Goalkeeper roles only consider goalkeepers and outfield roles
// only outfielders. A player may cover several roles up to the configured
// cap; when every candidate is at the cap the strongest one covers anyway
// rather than leaving the role bare.
//
// existing, when non-nil, marks roles already covered: those are skipped and
// their players count toward the cap.
func (o *Optimizer) allocateDepth(slots map[string]string, pool []model.Player, existing map[string]Pick) map[string]Pick {
	covered := map[string]int{}
	for _, pick := range existing {
		if !pick.Vacant() {
			covered[pick.PlayerID]++
		}
	}

	roles := map[string]struct{}{}
	for _, role := range slots {
		roles[role] = struct{}{}
	}
	ordered := make([]string, 0, len(roles))
	for role := range roles {
		if _, done := existing[role]; done {
			continue
		}
		ordered = append(ordered, role)
	}
	sort.Strings(ordered)

	depth := map[string]Pick{}
	for _, role := range ordered {
		gkRole := o.defs.GoalkeeperRole(role)
		candidates := make([]model.Player, 0, len(pool))
		for _, p := range pool {
			if p.Goalkeeper() != gkRole {
				continue
			}
			if o.ratings.Rating(p.ID, role) > 0 {
				candidates = append(candidates, p)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		sort.Slice(candidates, func(i, j int) bool {
			ri := o.ratings.Rating(candidates[i].ID, role)
			rj := o.ratings.Rating(candidates[j].ID, role)
			if ri != rj {
				return ri > rj
			}
			return candidates[i].ID < candidates[j].ID
		})

		chosen := candidates[0]
		for _, c := range candidates {
			if covered[c.ID] < o.depthCap {
				chosen = c
				break
			}
		}
		covered[chosen.ID]++
		depth[role] = Pick{
			Role:        role,
			PlayerID:    chosen.ID,
			Name:        chosen.Name,
			Rating:      formatRating(o.ratings.Rating(chosen.ID, role)),
			PlayingTime: chosen.PlayingTime,
		}
	}
	return depth
}
