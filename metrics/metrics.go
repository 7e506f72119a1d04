// Package metrics exposes prometheus collectors for the headline service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Extraction result labels.
const (
	ResultTitle       = "title"
	ResultNoText      = "no_text"
	ResultNoValidText = "no_valid_text"
	ResultError       = "error"
)

var (
	extractions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "headline",
			Name:      "extractions_total",
			Help:      "Total extractions by result (title, no_text, no_valid_text, error)",
		},
		[]string{"result"},
	)

	extractLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "headline",
			Name:      "extraction_duration_seconds",
			Help:      "Duration of the full extraction pipeline including OCR",
			Buckets:   prometheus.DefBuckets,
		},
	)

	sessionSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "headline",
			Name:      "session_entries",
			Help:      "Number of images held in the current session",
		},
	)
)

// Init registers collectors.
func Init() {
	prometheus.MustRegister(extractions, extractLatency, sessionSize)
}

// Handler returns the http.Handler for /metrics.
func Handler() http.Handler { return promhttp.Handler() }

// ObserveExtraction records one pipeline run.
func ObserveExtraction(result string, dur time.Duration) {
	extractions.WithLabelValues(result).Inc()
	extractLatency.Observe(dur.Seconds())
}

// SetSessionSize updates the session gauge.
func SetSessionSize(n int) { sessionSize.Set(float64(n)) }
