package metrics_test

import (
	"testing"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a metrics manager on a private registry", t, func() {
		reg := prometheus.NewRegistry()
		m := metrics.NewManager(
			metrics.WithPrometheusRegistry(reg),
			metrics.WithNamespace("fm24_test"),
			metrics.WithSubsystem("analyzer"),
		)

		Convey("Then construction registers all collectors without panicking", func() {
			So(m, ShouldNotBeNil)
		})

		Convey("Then the gathered families carry the configured namespace", func() {
			families, err := reg.Gather()
			So(err, ShouldBeNil)
			// Gauges report even at zero; counters only after the first increment.
			for _, f := range families {
				So(f.GetName(), ShouldStartWith, "fm24_test_analyzer_")
			}
		})
	})
}

func TestPackageHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then the package-level helpers never panic", func() {
			So(func() {
				metrics.RecordRatingComputed()
				metrics.RecordRatingSuppressed()
				metrics.RecordRatingError()
				metrics.RecordRatingLatency(12.5)
				metrics.RecordPlayersImported(24)
				metrics.RecordImportError()
				metrics.RecordSquadBuild()
				metrics.RecordSquadBuildDuration(40)
				metrics.RecordInjuryPromotions(2)
				metrics.RecordUnfilledSlots(1)
				metrics.UpdateQueueSize(3)
				metrics.UpdateQueueCapacity(100)
				metrics.RecordEnqueueError()
				metrics.UpdateWorkerCount(4)
				metrics.RecordWorkerError()
				metrics.UpdateTrackedPlayers(200)
				metrics.UpdateHistoryRecords(1500)
				metrics.RecordHTTPRequest("squad", "GET", "200")
				metrics.RecordHTTPRequestDuration("squad", "GET", "200", 5)
			}, ShouldNotPanic)
		})

		Convey("Then the metrics handler is servable", func() {
			So(metrics.Handler(), ShouldNotBeNil)
		})
	})
}
