package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gokatarajesh/exam-assembler/internal/selection"
)

// SelectionRecorder exposes Prometheus collectors for engine calls.
type SelectionRecorder struct {
	results  *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration prometheus.Histogram
	poolSize prometheus.Histogram
	cache    *prometheus.CounterVec
}

// NewSelectionRecorder registers the selection collectors on reg.
func NewSelectionRecorder(reg prometheus.Registerer) *SelectionRecorder {
	r := &SelectionRecorder{
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "exam_assembler",
			Name:      "selection_results_total",
			Help:      "Selection results by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "exam_assembler",
			Name:      "selection_failures_total",
			Help:      "Unsuccessful selections by reason.",
		}, []string{"reason"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "exam_assembler",
			Name:      "selection_duration_seconds",
			Help:      "Time spent inside the selection engine.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}),
		poolSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "exam_assembler",
			Name:      "selection_inventory_size",
			Help:      "Inventory size handed to the selection engine.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 12),
		}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "exam_assembler",
			Name:      "selection_cache_total",
			Help:      "Selection cache lookups by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(r.results, r.failures, r.duration, r.poolSize, r.cache)
	return r
}

// Observe records one engine call.
func (r *SelectionRecorder) Observe(res selection.Result, inventorySize int, took time.Duration) {
	if r == nil {
		return
	}
	outcome := "success"
	if !res.Success {
		outcome = "failure"
		r.failures.WithLabelValues(string(res.FailureReason)).Inc()
	}
	r.results.WithLabelValues(string(res.Algorithm), outcome).Inc()
	r.duration.Observe(took.Seconds())
	r.poolSize.Observe(float64(inventorySize))
}

// CacheHit records a cache lookup outcome.
func (r *SelectionRecorder) CacheHit(hit bool) {
	if r == nil {
		return
	}
	if hit {
		r.cache.WithLabelValues("hit").Inc()
		return
	}
	r.cache.WithLabelValues("miss").Inc()
}
