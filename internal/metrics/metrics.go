// Package metrics collects Prometheus metrics for the API server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the console API metrics.
type Collector struct {
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	mutations   *prometheus.CounterVec
	transitions *prometheus.CounterVec
	rejections  *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "console_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "console_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "console_mutations_total",
			Help: "Successful create, update and delete operations by entity.",
		}, []string{"entity", "operation"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "console_post_transitions_total",
			Help: "Post lifecycle transitions by action and outcome.",
		}, []string{"action", "outcome"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "console_validation_rejections_total",
			Help: "Payloads rejected by validation, by entity.",
		}, []string{"entity"}),
	}

	reg.MustRegister(
		c.requests,
		c.latency,
		c.mutations,
		c.transitions,
		c.rejections,
	)

	return c
}

// RecordRequest records one served HTTP request.
func (c *Collector) RecordRequest(method, route string, statusCode int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.latency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordMutation records a successful create, update or delete.
func (c *Collector) RecordMutation(entity, operation string) {
	c.mutations.WithLabelValues(entity, operation).Inc()
}

// RecordTransition records a post transition attempt. outcome is "ok" or "rejected".
func (c *Collector) RecordTransition(action, outcome string) {
	c.transitions.WithLabelValues(action, outcome).Inc()
}

// RecordRejection records a payload that failed validation.
func (c *Collector) RecordRejection(entity string) {
	c.rejections.WithLabelValues(entity).Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
