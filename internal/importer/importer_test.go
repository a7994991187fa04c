package importer_test

import (
	"strings"
	"testing"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/importer"
	. "github.com/smartystreets/goconvey/convey"
)

func export(rows ...string) string {
	var b strings.Builder
	b.WriteString("<html><body><table><tr>")
	for _, h := range []string{"UID", "Name", "Age", "Club", "Position", "Inf", "Agreed Playing Time", "Left Foot", "Right Foot", "Acc", "Pac", "Wor", "Det"} {
		b.WriteString("<th>" + h + "</th>")
	}
	b.WriteString("</tr>")
	for _, r := range rows {
		b.WriteString("<tr>")
		for _, c := range strings.Split(r, "|") {
			b.WriteString("<td>" + c + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table></body></html>")
	return b.String()
}

func TestParseHTML(t *testing.T) {
	Convey("Given a squad export", t, func() {
		Convey("When a well-formed row is parsed", func() {
			html := export("r-101|John Smith|24|FC Test|D (RC), DM|Inj - 2 wks|Star Player|Weak|Very Strong|12-14|15|16|17")
			players, err := importer.ParseHTML(strings.NewReader(html))
			So(err, ShouldBeNil)
			So(len(players), ShouldEqual, 1)
			p := players[0]

			Convey("Then identity fields map to dedicated fields", func() {
				So(p.ID, ShouldEqual, "r-101")
				So(p.Name, ShouldEqual, "John Smith")
				So(p.Age, ShouldEqual, 24)
				So(p.Club, ShouldEqual, "FC Test")
				So(p.Positions, ShouldResemble, []string{"D (C)", "D (R)", "DM"})
				So(p.PlayingTime, ShouldEqual, "Star Player")
				So(p.Status, ShouldEqual, "Inj - 2 wks")
				So(p.Injured(), ShouldBeTrue)
			})

			Convey("Then foot preference derives from the strength descriptors", func() {
				So(p.Foot, ShouldEqual, model.FootRight)
			})

			Convey("Then abbreviated attributes land under canonical names", func() {
				So(p.Attributes["Acceleration"], ShouldEqual, "12-14")
				So(p.Attributes["Pace"], ShouldEqual, "15")
				So(p.Attributes["Work Rate"], ShouldEqual, "16")
				So(p.Attributes["Determination"], ShouldEqual, "17")
				_, hasIdentity := p.Attributes["Unique ID"]
				So(hasIdentity, ShouldBeFalse)
			})
		})

		Convey("When rows are malformed", func() {
			html := export(
				"r-1|A|24|FC|ST|-|None|Strong|Strong|1|2|3|4",
				"r-2|short row",
				"|NoID|24|FC|ST|-|None|Strong|Strong|1|2|3|4",
			)
			players, err := importer.ParseHTML(strings.NewReader(html))
			So(err, ShouldBeNil)

			Convey("Then truncated and id-less rows are dropped", func() {
				So(len(players), ShouldEqual, 1)
				So(players[0].ID, ShouldEqual, "r-1")
			})

			Convey("Then matched feet read as either-footed", func() {
				So(players[0].Foot, ShouldEqual, model.FootEither)
			})
		})

		Convey("When the age is not numeric", func() {
			html := export("r-1|A|-|FC|ST|-|None|Strong|Strong|1|2|3|4")
			players, err := importer.ParseHTML(strings.NewReader(html))
			So(err, ShouldBeNil)
			So(players[0].Age, ShouldEqual, model.UnknownAge)
		})

		Convey("When the document has no table", func() {
			_, err := importer.ParseHTML(strings.NewReader("<html><body><p>hi</p></body></html>"))
			So(err, ShouldWrap, importer.ErrNoTable)
		})

		Convey("When the header misses the UID column", func() {
			html := strings.Replace(export(), "<th>UID</th>", "<th>ID</th>", 1)
			_, err := importer.ParseHTML(strings.NewReader(html))
			So(err, ShouldWrap, importer.ErrInvalidHeader)
		})

		Convey("When the header is too narrow", func() {
			html := "<table><tr><th>UID</th><th>Name</th></tr></table>"
			_, err := importer.ParseHTML(strings.NewReader(html))
			So(err, ShouldWrap, importer.ErrInvalidHeader)
		})
	})
}
