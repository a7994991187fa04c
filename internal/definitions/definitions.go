// Package definitions holds the role, tactic and attribute-taxonomy data the
// rating and squad engines run on. A default set ships embedded in the binary;
// an operator-supplied JSON file can replace it wholesale.
package definitions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/position"
)

//go:embed defaults.json
var defaultsJSON []byte

// RoleWeights names the attributes a role considers key or preferable.
type RoleWeights struct {
	Key        []string `json:"key"`
	Preferable []string `json:"preferable"`
}

// Definitions is the validated, read-only definition set.
type Definitions struct {
	playerRoles    map[string]map[string]string
	roleWeights    map[string]RoleWeights
	positionToRole map[string][]string
	tacticRoles    map[string]map[string]string
	tacticLayouts  map[string]map[string][]string
	gkRoles        map[string]struct{}
	displayNames   map[string]string
}

type rawDefinitions struct {
	PlayerRoles    map[string]map[string]string   `json:"player_roles"`
	RoleWeights    map[string]RoleWeights         `json:"role_specific_weights"`
	PositionToRole map[string][]string            `json:"position_to_role_mapping"`
	TacticRoles    map[string]map[string]string   `json:"tactic_roles"`
	TacticLayouts  map[string]map[string][]string `json:"tactic_layouts"`
}

// Load reads a definition set from path, or the embedded defaults when path
// is empty, and validates it. Validation is strict: a role referenced by a
// position mapping or a tactic that has no weight entry, or a tactic slot
// missing from the eligibility table, aborts the load.
func Load(path string) (*Definitions, error) {
	data := defaultsJSON
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadDefinitions, err)
		}
		data = b
	}

	var raw rawDefinitions
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadDefinitions, err)
	}

	d := &Definitions{
		playerRoles:    raw.PlayerRoles,
		roleWeights:    raw.RoleWeights,
		positionToRole: raw.PositionToRole,
		tacticRoles:    raw.TacticRoles,
		tacticLayouts:  raw.TacticLayouts,
		gkRoles:        map[string]struct{}{},
		displayNames:   map[string]string{},
	}
	for category, roles := range raw.PlayerRoles {
		for role, display := range roles {
			d.displayNames[role] = display
			if category == "Goalkeepers" {
				d.gkRoles[role] = struct{}{}
			}
		}
	}

	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Definitions) validate() error {
	for role := range d.displayNames {
		if _, ok := d.roleWeights[role]; !ok {
			return fmt.Errorf("%w: role %s has no weight entry", ErrInvalidDefinitions, role)
		}
	}
	for pos, roles := range d.positionToRole {
		for _, role := range roles {
			if _, ok := d.roleWeights[role]; !ok {
				return fmt.Errorf("%w: position %s maps to undefined role %s", ErrInvalidDefinitions, pos, role)
			}
		}
	}
	for tactic, slots := range d.tacticRoles {
		if len(slots) == 0 {
			return fmt.Errorf("%w: tactic %s has no slots", ErrInvalidDefinitions, tactic)
		}
		for slot, role := range slots {
			if !position.KnownSlot(slot) {
				return fmt.Errorf("%w: tactic %s uses unknown slot %s", ErrInvalidDefinitions, tactic, slot)
			}
			if _, ok := d.roleWeights[role]; !ok {
				return fmt.Errorf("%w: tactic %s assigns undefined role %s to %s", ErrInvalidDefinitions, tactic, role, slot)
			}
		}
	}
	return nil
}

// Weights returns the key/preferable attribute lists for a role. Roles without
// an explicit entry rate with neutral multipliers everywhere.
func (d *Definitions) Weights(role string) RoleWeights {
	return d.roleWeights[role]
}

// KnownRole reports whether role exists in the definition set.
func (d *Definitions) KnownRole(role string) bool {
	_, ok := d.roleWeights[role]
	return ok
}

// GoalkeeperRole reports whether role belongs to the goalkeeper category and
// therefore rates against the goalkeeper taxonomy.
func (d *Definitions) GoalkeeperRole(role string) bool {
	_, ok := d.gkRoles[role]
	return ok
}

// DisplayName returns the descriptive name for a role, falling back to the
// short name itself.
func (d *Definitions) DisplayName(role string) string {
	if name, ok := d.displayNames[role]; ok {
		return name
	}
	return role
}

// ValidRoles returns every defined role short name, sorted.
func (d *Definitions) ValidRoles() []string {
	roles := make([]string, 0, len(d.roleWeights))
	for role := range d.roleWeights {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// RolesForPositions returns the sorted union of default roles for a set of
// game positions. Used to auto-assign roles to imported players.
func (d *Definitions) RolesForPositions(positions []string) []string {
	seen := map[string]struct{}{}
	for _, pos := range positions {
		for _, role := range d.positionToRole[pos] {
			seen[role] = struct{}{}
		}
	}
	roles := make([]string, 0, len(seen))
	for role := range seen {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// RoleForSlotPositions reports whether any of the game positions maps to role
// through the position-to-role table. The selector uses this as its natural
// position check.
func (d *Definitions) RoleForSlotPositions(role string, positions []string) bool {
	for _, pos := range positions {
		for _, r := range d.positionToRole[pos] {
			if r == role {
				return true
			}
		}
	}
	return false
}

// Tactic returns the slot-to-role assignment of a named tactic.
func (d *Definitions) Tactic(name string) (map[string]string, error) {
	slots, ok := d.tacticRoles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTactic, name)
	}
	return slots, nil
}

// TacticNames returns the defined tactic names, sorted.
func (d *Definitions) TacticNames() []string {
	names := make([]string, 0, len(d.tacticRoles))
	for name := range d.tacticRoles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Layout returns the stratum grouping of a tactic's outfield slots, used by
// presentation layers to draw the formation.
func (d *Definitions) Layout(name string) map[string][]string {
	return d.tacticLayouts[name]
}

// Categories groups role short names by their definition category.
func (d *Definitions) Categories() map[string][]string {
	out := make(map[string][]string, len(d.playerRoles))
	for category, roles := range d.playerRoles {
		names := make([]string, 0, len(roles))
		for role := range roles {
			names = append(names, role)
		}
		sort.Strings(names)
		out[category] = names
	}
	return out
}
