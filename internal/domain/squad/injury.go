package squad

import (
	"fmt"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
)

// promoteInjured replaces injured picks in the adjusted elevens. The B-team
// player on the same slot moves up first; the role's depth cover then fills
// the vacated B-team slot. When the B-team slot is already vacant the XI slot
// becomes a vacancy too: depth only ever backfills the B-team, never the XI.
// Promoted picks are flagged and every move is logged.
func (o *Optimizer) promoteInjured(xi, bteam, depth map[string]Pick, slots map[string]string, byID map[string]model.Player) []string {
	var log []string
	for _, slot := range sortedSlots(slots) {
		starter := xi[slot]
		if starter.Vacant() {
			continue
		}
		player, ok := byID[starter.PlayerID]
		if !ok || !player.Injured() {
			continue
		}
		role := slots[slot]

		sub := bteam[slot]
		if sub.Vacant() {
			xi[slot] = Pick{Slot: slot, Role: role, Name: "-", Rating: "0%"}
			log = append(log, fmt.Sprintf("%s injured at %s, no replacement available", starter.Name, slot))
			continue
		}

		sub.Slot = slot
		sub.Promoted = true
		xi[slot] = sub
		log = append(log, fmt.Sprintf("%s promoted from B-team to %s, %s injured", sub.Name, slot, starter.Name))

		if cover, ok := depth[role]; ok {
			cover.Slot = slot
			cover.Promoted = true
			bteam[slot] = cover
			delete(depth, role)
			log = append(log, fmt.Sprintf("%s promoted from depth to B-team %s", cover.Name, slot))
		} else {
			bteam[slot] = Pick{Slot: slot, Role: role, Name: "-", Rating: "0%"}
		}
	}
	return log
}
