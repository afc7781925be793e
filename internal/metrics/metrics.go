// Package metrics — счётчики Prometheus, отдаются на /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sitecms_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sitecms_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// result: ok | invalid | error
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sitecms_login_attempts_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)

	// Отказы шлюза: reason = unauthenticated | forbidden
	AccessDenied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sitecms_access_denied_total",
			Help: "Requests rejected by the authorization gate",
		},
		[]string{"reason"},
	)

	ContentUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sitecms_content_updates_total",
			Help: "Page content updates by page and result",
		},
		[]string{"page", "result"},
	)

	// op: create | delete
	AdminChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sitecms_admin_changes_total",
			Help: "Administrator create/delete operations by result",
		},
		[]string{"op", "result"},
	)
)
