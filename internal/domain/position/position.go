// Package position parses game position strings and holds the fixed
// slot-eligibility and mirrored-slot tables used by squad selection.
package position

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// partPattern matches one comma-separated position token, e.g. "AM (RL)" or
// "D/WB (R)" or "GK". Group 1 is the base(s), group 2 the optional sides.
var partPattern = regexp.MustCompile(`^([A-Z/]+) *(?:\(([RLC]+)\))?$`)

// ParseList expands a raw position string like "AM (RL), ST (C)" into the
// individual game positions {"AM (R)", "AM (L)", "ST (C)"}. Duplicates are
// removed and the result is sorted for deterministic downstream iteration.
// Unparseable tokens are skipped; corrupt import data must not abort parsing.
func ParseList(raw string) []string {
	seen := map[string]struct{}{}
	for _, part := range strings.Split(raw, ",") {
		m := partPattern.FindStringSubmatch(strings.TrimSpace(part))
		if m == nil {
			continue
		}
		bases, sides := m[1], m[2]
		for _, base := range strings.Split(bases, "/") {
			if base == "" {
				continue
			}
			if sides == "" {
				// A bare "ST" implies the central striker position.
				if base == "ST" {
					seen["ST (C)"] = struct{}{}
				} else {
					seen[base] = struct{}{}
				}
				continue
			}
			for _, side := range sides {
				seen[fmt.Sprintf("%s (%c)", base, side)] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for pos := range seen {
		out = append(out, pos)
	}
	sort.Strings(out)
	return out
}

// slotEligibility maps every tactical slot to the game positions allowed to
// fill it. This is a fixed lookup independent of any single tactic.
var slotEligibility = map[string][]string{
	"GK": {"GK"},

	"DL":  {"D (L)"},
	"DCL": {"D (C)"},
	"DC":  {"D (C)"},
	"DCR": {"D (C)"},
	"DR":  {"D (R)"},
	"WBL": {"WB (L)", "D (L)"},
	"WBR": {"WB (R)", "D (R)"},

	"DML":  {"DM"},
	"DMCL": {"DM"},
	"DMC":  {"DM"},
	"DMCR": {"DM"},
	"DMR":  {"DM"},

	"ML":  {"M (L)"},
	"MCL": {"M (C)"},
	"MC":  {"M (C)"},
	"MCR": {"M (C)"},
	"MR":  {"M (R)"},

	"AML":  {"AM (L)"},
	"AMCL": {"AM (C)"},
	"AMC":  {"AM (C)"},
	"AMCR": {"AM (C)"},
	"AMR":  {"AM (R)"},

	"ST":  {"ST (C)"},
	"STL": {"ST (C)"},
	"STC": {"ST (C)"},
	"STR": {"ST (C)"},
}

// Eligible returns the game positions allowed to fill a tactical slot.
// An unknown slot is a data-authoring bug in the tactic definition and is
// reported as a hard error.
func Eligible(slot string) ([]string, error) {
	allowed, ok := slotEligibility[slot]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSlot, slot)
	}
	return allowed, nil
}

// KnownSlot reports whether slot appears in the eligibility table.
func KnownSlot(slot string) bool {
	_, ok := slotEligibility[slot]
	return ok
}

// MirroredSlots lists the left/right slot pairs considered by the footedness
// adjustment, left slot first.
var MirroredSlots = [][2]string{
	{"DL", "DR"},
	{"WBL", "WBR"},
	{"DCL", "DCR"},
	{"DML", "DMR"},
	{"DMCL", "DMCR"},
	{"ML", "MR"},
	{"MCL", "MCR"},
	{"AML", "AMR"},
	{"AMCL", "AMCR"},
	{"STL", "STR"},
}
