// Package metrics exposes process-health counters over a local
// Prometheus /metrics endpoint. This is local observability, never
// sample or frame network I/O, and is off unless the CLI is given a
// listen address.
//
// Grounded on the pack's shared use of github.com/prometheus/client_golang
// for channel statistics (montge-stratux's go.mod and the ACARS parser's
// analyzer tool both carry the same dependency for counters).
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the receiver's Prometheus instruments. cmd/uat978dec
// updates FramesTotal and RSCorrections from its sink; the pipeline
// reports no rejected candidates or failed sync matches, so nothing in
// this module increments RejectionsTotal or SyncFalsePositive.
type Metrics struct {
	Registry          *prometheus.Registry
	FramesTotal       *prometheus.CounterVec
	RSCorrections     prometheus.Histogram
	RejectionsTotal   *prometheus.CounterVec
	SyncFalsePositive prometheus.Counter
}

// New registers a fresh set of instruments against a private registry,
// so multiple receivers (or tests) in one process never collide on the
// global default registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		FramesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uat978",
			Name:      "frames_total",
			Help:      "Frames successfully decoded, by kind.",
		}, []string{"kind"}),
		RSCorrections: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "uat978",
			Name:      "rs_corrections",
			Help:      "Distribution of Reed-Solomon symbol corrections per accepted frame.",
			Buckets:   prometheus.LinearBuckets(0, 1, 21),
		}),
		RejectionsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uat978",
			Name:      "decode_rejections_total",
			Help:      "Candidate frames rejected during decode, by reason.",
		}, []string{"reason"}),
		SyncFalsePositive: f.NewCounter(prometheus.CounterOpts{
			Namespace: "uat978",
			Name:      "sync_false_positives_total",
			Help:      "Sync-word matches that failed full frame decode.",
		}),
	}
}

// ListenAndServe starts the /metrics HTTP handler against this
// instance's private registry. It blocks until the listener fails or
// the process exits; callers should run it in its own goroutine.
func (m *Metrics) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}
