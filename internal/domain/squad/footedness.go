package squad

import (
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/position"
)

// adjustFootedness swaps mirrored wide picks when both players stand on their
// unnatural side. The swap only applies when the mirrored slots carry the same
// role, the left pick prefers the right foot and the right pick prefers the
// left foot. Either-footed players never trigger a swap.
func (o *Optimizer) adjustFootedness(team map[string]Pick, slots map[string]string, byID map[string]model.Player) {
	for _, pair := range position.MirroredSlots {
		left, right := pair[0], pair[1]
		lp, lok := team[left]
		rp, rok := team[right]
		if !lok || !rok || lp.Vacant() || rp.Vacant() {
			continue
		}
		if slots[left] != slots[right] {
			continue
		}
		lplayer, lfound := byID[lp.PlayerID]
		rplayer, rfound := byID[rp.PlayerID]
		if !lfound || !rfound {
			continue
		}
		if lplayer.Foot != model.FootRight || rplayer.Foot != model.FootLeft {
			continue
		}
		lp.Slot, rp.Slot = right, left
		team[left], team[right] = rp, lp
	}
}
