// Package squad builds starting elevens, depth charts and development squads
// from rated players.
package squad

// Pick is one filled (or vacant) slot in a selected team.
type Pick struct {
	Slot        string `json:"slot"`
	Role        string `json:"role"`
	PlayerID    string `json:"player_id,omitempty"`
	Name        string `json:"name"`
	Rating      string `json:"rating"`
	PlayingTime string `json:"playing_time,omitempty"`

	// Promoted marks picks that moved up a team due to an injury.
	Promoted bool `json:"promoted,omitempty"`
}

// Vacant reports whether the slot could not be filled.
func (p Pick) Vacant() bool {
	return p.PlayerID == ""
}

// PlayerRef identifies a player on the loan or sell list.
type PlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Squad is the full analysis for one tactic: first and second elevens, the
// per-role depth chart, injury promotions, and the development split of
// everyone left over.
type Squad struct {
	Tactic     string          `json:"tactic"`
	StartingXI map[string]Pick `json:"starting_xi"`
	BTeam      map[string]Pick `json:"b_team"`

	// AdjustedXI and AdjustedBTeam are the elevens after injury promotions;
	// StartingXI and BTeam keep the selection as picked.
	AdjustedXI    map[string]Pick `json:"adjusted_xi"`
	AdjustedBTeam map[string]Pick `json:"adjusted_b_team"`

	// Depth maps each distinct role of the tactic to its cover player,
	// when one exists.
	Depth map[string]Pick `json:"depth"`

	// PromotionLog records injury promotions in human-readable form.
	PromotionLog []string `json:"promotion_log,omitempty"`

	SecondXI map[string]Pick `json:"second_xi"`
	YouthXI  map[string]Pick `json:"youth_xi"`
	LoanList []PlayerRef     `json:"loan_list"`
	SellList []PlayerRef     `json:"sell_list"`
}
