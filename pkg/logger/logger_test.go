package logger_test

import (
	"context"
	"testing"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then Get returns a usable logger", func() {
			l := logger.Get()
			So(l, ShouldNotBeNil)
			So(func() {
				l.Info(context.Background(), "rating pass finished",
					logger.String("club", "FC Test"),
					logger.Int("players", 24),
				)
			}, ShouldNotPanic)
		})

		Convey("Then named loggers derive from the global one", func() {
			l := logger.Named("selector")
			So(l, ShouldNotBeNil)
			So(func() { l.Debug(context.Background(), "slot filled") }, ShouldNotPanic)
		})

		Convey("When setting log levels from strings", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			So(logger.SetLevelString("warn"), ShouldBeNil)
			So(logger.SetLevelString("warning"), ShouldBeNil)
			So(logger.SetLevelString("ERROR"), ShouldBeNil)
			So(logger.SetLevelString(""), ShouldBeNil)

			Convey("Then unknown levels are rejected", func() {
				So(logger.SetLevelString("loud"), ShouldNotBeNil)
			})
		})

		Convey("Then Sync never fails", func() {
			So(logger.Sync(), ShouldBeNil)
		})
	})
}
