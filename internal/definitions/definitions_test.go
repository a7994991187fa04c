package definitions_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/definitions"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given the embedded default definitions", t, func() {
		defs, err := definitions.Load("")
		So(err, ShouldBeNil)

		Convey("Then every role has weights and a display name", func() {
			for _, role := range defs.ValidRoles() {
				So(defs.KnownRole(role), ShouldBeTrue)
				So(defs.DisplayName(role), ShouldNotBeEmpty)
			}
		})

		Convey("Then goalkeeper roles rate against the goalkeeper taxonomy", func() {
			So(defs.GoalkeeperRole("GK-D"), ShouldBeTrue)
			So(defs.GoalkeeperRole("SK-A"), ShouldBeTrue)
			So(defs.GoalkeeperRole("CD-D"), ShouldBeFalse)
		})

		Convey("Then positions map to their default roles", func() {
			roles := defs.RolesForPositions([]string{"D (C)", "DM"})
			So(roles, ShouldResemble, []string{"BPD-D", "BWM-D", "CD-D", "DLP-S", "DM-D"})
		})

		Convey("Then natural position checks go through the mapping", func() {
			So(defs.RoleForSlotPositions("CD-D", []string{"D (C)"}), ShouldBeTrue)
			So(defs.RoleForSlotPositions("CD-D", []string{"ST (C)"}), ShouldBeFalse)
		})

		Convey("Then tactics resolve by name", func() {
			slots, err := defs.Tactic("4-4-2 Classic")
			So(err, ShouldBeNil)
			So(slots["GK"], ShouldEqual, "GK-D")
			So(len(slots), ShouldEqual, 11)

			_, err = defs.Tactic("5-5-0")
			So(err, ShouldWrap, definitions.ErrUnknownTactic)

			So(defs.TacticNames(), ShouldResemble, []string{"4-2-3-1 Gegenpress", "4-4-2 Classic"})
		})

		Convey("Then layouts cover all outfield slots of their tactic", func() {
			layout := defs.Layout("4-2-3-1 Gegenpress")
			total := 0
			for _, slots := range layout {
				total += len(slots)
			}
			So(total, ShouldEqual, 10)
		})
	})
}

func TestLoadValidation(t *testing.T) {
	Convey("Given definition files with authoring mistakes", t, func() {
		dir := t.TempDir()
		write := func(name, body string) string {
			path := filepath.Join(dir, name)
			So(os.WriteFile(path, []byte(body), 0o600), ShouldBeNil)
			return path
		}

		Convey("Then a tactic slot outside the eligibility table fails", func() {
			path := write("badslot.json", `{
				"player_roles": {"Defense": {"CD-D": "Central Defender (Defend)"}},
				"role_specific_weights": {"CD-D": {"key": [], "preferable": []}},
				"position_to_role_mapping": {"D (C)": ["CD-D"]},
				"tactic_roles": {"T": {"XX": "CD-D"}},
				"tactic_layouts": {}
			}`)
			_, err := definitions.Load(path)
			So(err, ShouldWrap, definitions.ErrInvalidDefinitions)
		})

		Convey("Then a role without a weight entry fails", func() {
			path := write("noweights.json", `{
				"player_roles": {"Defense": {"CD-D": "Central Defender (Defend)"}},
				"role_specific_weights": {},
				"position_to_role_mapping": {},
				"tactic_roles": {},
				"tactic_layouts": {}
			}`)
			_, err := definitions.Load(path)
			So(err, ShouldWrap, definitions.ErrInvalidDefinitions)
		})

		Convey("Then a missing file fails to load", func() {
			_, err := definitions.Load(filepath.Join(dir, "absent.json"))
			So(err, ShouldWrap, definitions.ErrLoadDefinitions)
		})

		Convey("Then malformed JSON fails to load", func() {
			_, err := definitions.Load(write("broken.json", "{"))
			So(err, ShouldWrap, definitions.ErrLoadDefinitions)
		})
	})
}
