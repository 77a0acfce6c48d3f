// Package monitoring exposes Prometheus instrumentation for the hub:
// ingestion outcomes, batch sizes, and metrics-computation latency.
package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	nuts "github.com/vaudience/go-nuts"
)

var (
	eventsStored = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "floorhub",
		Subsystem: "ingest",
		Name:      "events_stored_total",
		Help:      "Number of events admitted into the event store.",
	})

	eventsDuplicate = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "floorhub",
		Subsystem: "ingest",
		Name:      "events_duplicate_total",
		Help:      "Number of submissions skipped as duplicates of an already-stored identity tuple.",
	})

	eventsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "floorhub",
		Subsystem: "ingest",
		Name:      "events_rejected_total",
		Help:      "Number of submissions rejected by validation, by rejection kind.",
	}, []string{"kind"})

	batchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "floorhub",
		Subsystem: "ingest",
		Name:      "batch_size",
		Help:      "Size of received event batches.",
		Buckets:   []float64{1, 10, 50, 100, 250, 500, 1000},
	})

	dashboardDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "floorhub",
		Subsystem: "metrics",
		Name:      "dashboard_compute_seconds",
		Help:      "Wall time spent assembling a dashboard summary.",
		Buckets:   prometheus.DefBuckets,
	})

	dataEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "floorhub",
		Subsystem: "data",
		Name:      "lifecycle_events_total",
		Help:      "Data-management lifecycle events (seed, generate, clear).",
	}, []string{"event"})
)

// RecordEventStored counts an admitted event.
func RecordEventStored() {
	eventsStored.Inc()
}

// RecordEventDuplicate counts a skipped duplicate submission.
func RecordEventDuplicate() {
	eventsDuplicate.Inc()
}

// RecordEventRejected counts a validation rejection by kind.
func RecordEventRejected(kind string) {
	eventsRejected.WithLabelValues(kind).Inc()
}

// ObserveBatchSize records the size of a received batch.
func ObserveBatchSize(n int) {
	batchSize.Observe(float64(n))
}

// ObserveDashboardDuration records a dashboard assembly duration.
func ObserveDashboardDuration(d time.Duration) {
	dashboardDuration.Observe(d.Seconds())
}

// RecordDataEvent counts a data-management lifecycle event and logs it
// with its labels for traceability.
func RecordDataEvent(event string, labels map[string]string) {
	dataEvents.WithLabelValues(event).Inc()
	nuts.L.Infof("[Monitoring] Event %s recorded with labels: %v", event, labels)
}

// Handler returns the Prometheus exposition endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
