package position_test

import (
	"testing"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/position"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseList(t *testing.T) {
	Convey("Given raw position strings", t, func() {
		Convey("Then side groups expand to one position per side", func() {
			So(position.ParseList("AM (RL)"), ShouldResemble, []string{"AM (L)", "AM (R)"})
		})

		Convey("Then comma-separated parts are all expanded", func() {
			So(position.ParseList("AM (RL), ST (C)"), ShouldResemble, []string{"AM (L)", "AM (R)", "ST (C)"})
		})

		Convey("Then slash-joined bases share the side group", func() {
			So(position.ParseList("D/WB (R)"), ShouldResemble, []string{"D (R)", "WB (R)"})
		})

		Convey("Then a bare ST implies the central striker", func() {
			So(position.ParseList("ST"), ShouldResemble, []string{"ST (C)"})
		})

		Convey("Then side-less bases pass through unchanged", func() {
			So(position.ParseList("GK"), ShouldResemble, []string{"GK"})
			So(position.ParseList("DM"), ShouldResemble, []string{"DM"})
		})

		Convey("Then unparseable tokens are skipped", func() {
			So(position.ParseList("???, ST (C)"), ShouldResemble, []string{"ST (C)"})
			So(position.ParseList(""), ShouldBeEmpty)
		})

		Convey("Then duplicates collapse", func() {
			So(position.ParseList("ST (C), ST"), ShouldResemble, []string{"ST (C)"})
		})
	})
}

func TestEligible(t *testing.T) {
	Convey("Given the slot eligibility table", t, func() {
		Convey("Then known slots resolve to their allowed positions", func() {
			allowed, err := position.Eligible("WBL")
			So(err, ShouldBeNil)
			So(allowed, ShouldResemble, []string{"WB (L)", "D (L)"})

			allowed, err = position.Eligible("GK")
			So(err, ShouldBeNil)
			So(allowed, ShouldResemble, []string{"GK"})
		})

		Convey("Then unknown slots fail hard", func() {
			_, err := position.Eligible("XYZ")
			So(err, ShouldWrap, position.ErrUnknownSlot)
		})

		Convey("Then every mirrored slot is a known slot", func() {
			for _, pair := range position.MirroredSlots {
				So(position.KnownSlot(pair[0]), ShouldBeTrue)
				So(position.KnownSlot(pair[1]), ShouldBeTrue)
			}
		})
	})
}
