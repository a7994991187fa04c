package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		os.Unsetenv("FM24_CONFIG")
		os.Unsetenv("FM24_ADDR")
		os.Unsetenv("FM24_WORKER_COUNT")

		Convey("When loading with no overrides", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then defaults survive", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9090")
				So(cfg.WorkerCount, ShouldEqual, 4)
			})
		})

		Convey("When env vars override defaults", func() {
			os.Setenv("FM24_ADDR", ":7000")
			os.Setenv("FM24_WORKER_COUNT", "8")
			defer os.Unsetenv("FM24_ADDR")
			defer os.Unsetenv("FM24_WORKER_COUNT")

			cfg, err := config.Load(context.Background())

			Convey("Then the env values win", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7000")
				So(cfg.WorkerCount, ShouldEqual, 8)
			})
		})

		Convey("When a YAML file provides overrides", func() {
			f, err := os.CreateTemp(t.TempDir(), "fm24-*.yaml")
			So(err, ShouldBeNil)
			_, err = f.WriteString("addr: \":7700\"\nmax_roles_per_depth_player: 3\n")
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)
			os.Setenv("FM24_CONFIG", f.Name())
			defer os.Unsetenv("FM24_CONFIG")

			cfg, err := config.Load(context.Background())

			Convey("Then the file values win over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7700")
				So(cfg.MaxRolesPerDepthPlayer, ShouldEqual, 3)
			})
		})

		Convey("When validation fails", func() {
			os.Setenv("FM24_WORKER_COUNT", "0")
			defer os.Unsetenv("FM24_WORKER_COUNT")

			_, err := config.Load(context.Background())

			Convey("Then an invalid-config error is returned", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
