package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	thoughtsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sequential_thinking_thoughts_total",
		Help: "Thoughts processed, by kind (thought, revision, branch).",
	}, []string{"kind"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sequential_thinking_http_requests_total",
		Help: "HTTP requests served, by method and path.",
	}, []string{"method", "path"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sequential_thinking_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)
