package rating

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatPercent(t *testing.T) {
	Convey("Given normalized percentage values", t, func() {
		Convey("Then midpoints round half away from zero, not half to even", func() {
			So(formatPercent(46.5), ShouldEqual, "47%")
			So(formatPercent(47.5), ShouldEqual, "48%")
			So(formatPercent(-0.5), ShouldEqual, "-1%")
		})

		Convey("Then everything else rounds to the nearest integer", func() {
			So(formatPercent(47.368), ShouldEqual, "47%")
			So(formatPercent(47.61), ShouldEqual, "48%")
			So(formatPercent(0), ShouldEqual, "0%")
		})
	})
}
