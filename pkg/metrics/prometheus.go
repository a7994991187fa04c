// Package metrics provides Prometheus metrics for the squad analyzer service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager manages all Prometheus metrics for the analyzer.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Rating pipeline metrics
	ratingsComputed   prometheus.Counter
	ratingsSuppressed prometheus.Counter
	ratingErrors      prometheus.Counter
	ratingLatency     prometheus.Histogram

	// Import metrics
	playersImported prometheus.Counter
	importErrors    prometheus.Counter

	// Squad metrics
	squadBuilds        prometheus.Counter
	squadBuildDuration prometheus.Histogram
	injuryPromotions   prometheus.Counter
	unfilledSlots      prometheus.Counter

	// Operational health
	queueSize      prometheus.Gauge
	queueCapacity  prometheus.Gauge
	enqueueErrors  prometheus.Counter
	workerCount    prometheus.Gauge
	workerErrors   prometheus.Counter
	trackedPlayers prometheus.Gauge
	historyRecords prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "fm24",
		subsystem:        "analyzer",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.ratingsComputed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ratings_computed_total",
		Help:      "Total number of player/role ratings computed",
	})
	m.ratingsSuppressed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ratings_suppressed_total",
		Help:      "Total number of rating writes suppressed by the history delta rule",
	})
	m.ratingErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rating_errors_total",
		Help:      "Total number of rating computation failures",
	})
	m.ratingLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rating_latency_milliseconds",
		Help:      "Histogram of per-player rating pass latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.playersImported = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_imported_total",
		Help:      "Total number of player records imported or updated",
	})
	m.importErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_errors_total",
		Help:      "Total number of import failures",
	})

	m.squadBuilds = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "squad_builds_total",
		Help:      "Total number of squad analyses computed",
	})
	m.squadBuildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "squad_build_duration_milliseconds",
		Help:      "Histogram of full squad analysis duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})
	m.injuryPromotions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "injury_promotions_total",
		Help:      "Total number of players promoted due to starter injuries",
	})
	m.unfilledSlots = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unfilled_slots_total",
		Help:      "Total number of tactical slots left vacant across squad builds",
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_size",
		Help:      "Current size of the rating job queue",
	})
	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_capacity",
		Help:      "Configured capacity of the rating job queue",
	})
	m.enqueueErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_enqueue_errors_total",
		Help:      "Total number of rejected enqueue attempts",
	})
	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Current number of rating workers",
	})
	m.workerErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_errors_total",
		Help:      "Total number of worker processing errors",
	})
	m.trackedPlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tracked_players",
		Help:      "Total number of players currently stored",
	})
	m.historyRecords = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "history_records",
		Help:      "Total number of rating history records stored",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint, method and status",
		},
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// Handler returns an HTTP handler serving the custom registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}

// Package-level helpers delegating to the global manager.

// RecordRatingComputed increments the computed-ratings counter.
func RecordRatingComputed() { globalManager.ratingsComputed.Inc() }

// RecordRatingSuppressed increments the suppressed-writes counter.
func RecordRatingSuppressed() { globalManager.ratingsSuppressed.Inc() }

// RecordRatingError increments the rating-errors counter.
func RecordRatingError() { globalManager.ratingErrors.Inc() }

// RecordRatingLatency observes a per-player rating pass latency in milliseconds.
func RecordRatingLatency(ms float64) { globalManager.ratingLatency.Observe(ms) }

// RecordPlayersImported adds n to the imported-players counter.
func RecordPlayersImported(n int) { globalManager.playersImported.Add(float64(n)) }

// RecordImportError increments the import-errors counter.
func RecordImportError() { globalManager.importErrors.Inc() }

// RecordSquadBuild increments the squad-builds counter.
func RecordSquadBuild() { globalManager.squadBuilds.Inc() }

// RecordSquadBuildDuration observes a squad analysis duration in milliseconds.
func RecordSquadBuildDuration(ms float64) { globalManager.squadBuildDuration.Observe(ms) }

// RecordInjuryPromotions adds n to the injury-promotions counter.
func RecordInjuryPromotions(n int) { globalManager.injuryPromotions.Add(float64(n)) }

// RecordUnfilledSlots adds n to the unfilled-slots counter.
func RecordUnfilledSlots(n int) { globalManager.unfilledSlots.Add(float64(n)) }

// UpdateQueueSize sets the current queue size gauge.
func UpdateQueueSize(size int) { globalManager.queueSize.Set(float64(size)) }

// UpdateQueueCapacity sets the queue capacity gauge.
func UpdateQueueCapacity(capacity int) { globalManager.queueCapacity.Set(float64(capacity)) }

// RecordEnqueueError increments the enqueue-errors counter.
func RecordEnqueueError() { globalManager.enqueueErrors.Inc() }

// UpdateWorkerCount sets the worker count gauge.
func UpdateWorkerCount(count int) { globalManager.workerCount.Set(float64(count)) }

// RecordWorkerError increments the worker-errors counter.
func RecordWorkerError() { globalManager.workerErrors.Inc() }

// UpdateTrackedPlayers sets the tracked-players gauge.
func UpdateTrackedPlayers(count int) { globalManager.trackedPlayers.Set(float64(count)) }

// UpdateHistoryRecords sets the history-records gauge.
func UpdateHistoryRecords(count int) { globalManager.historyRecords.Set(float64(count)) }

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes an HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}
