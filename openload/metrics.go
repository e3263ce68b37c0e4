package openload

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK           = "ok"
	outcomeTransport    = "transport_error"
	outcomeUnclassified = "unclassified_status"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "openload_client",
			Name:      "requests_total",
			Help:      "API calls by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "openload_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of API calls, including failed ones.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

func countRequest(endpoint, outcome string) {
	requestsTotal.WithLabelValues(endpoint, outcome).Inc()
}

func observeDuration(endpoint string, start time.Time) {
	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

func outcomeLabel(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind.String()
	}
	return outcomeTransport
}
