package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/adapters/http/api"
	service "github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/app"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConfigurationLoading(t *testing.T) {
	Convey("Given environment overrides", t, func() {
		_ = os.Setenv("FM24_ADDR", ":8080")
		_ = os.Setenv("FM24_QUEUE_SIZE", "1000")
		_ = os.Setenv("FM24_WORKER_COUNT", "4")
		defer func() {
			_ = os.Unsetenv("FM24_ADDR")
			_ = os.Unsetenv("FM24_QUEUE_SIZE")
			_ = os.Unsetenv("FM24_WORKER_COUNT")
		}()

		Convey("When the configuration is loaded", func() {
			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)

			Convey("Then the overrides are applied", func() {
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.QueueSize, ShouldEqual, 1000)
				So(cfg.WorkerCount, ShouldEqual, 4)
			})
		})
	})

	Convey("Given an invalid worker count override", t, func() {
		_ = os.Setenv("FM24_WORKER_COUNT", "0")
		defer func() { _ = os.Unsetenv("FM24_WORKER_COUNT") }()

		Convey("When the configuration is loaded", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then validation rejects it", func() {
				So(err, ShouldNotBeNil)
				So(cfg, ShouldBeNil)
			})
		})
	})
}

func TestApplicationWiring(t *testing.T) {
	Convey("Given a service built from defaults", t, func() {
		svc := service.New(config.New())
		So(svc, ShouldNotBeNil)

		Convey("When the API server is wired", func() {
			server := api.NewServer(svc, svc)
			So(server, ShouldNotBeNil)

			mux := http.NewServeMux()
			So(func() { server.Register(context.Background(), mux) }, ShouldNotPanic)
		})

		Convey("When stats are read before start", func() {
			stats := svc.GetStats()
			So(stats, ShouldNotBeNil)
			So(stats["started"], ShouldBeFalse)
		})

		Convey("When the metrics updater runs against the stopped service", func() {
			So(func() { updateServiceMetrics(svc) }, ShouldNotPanic)

			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()
			So(func() { startServiceMetricsUpdater(ctx, svc) }, ShouldNotPanic)
		})
	})
}
