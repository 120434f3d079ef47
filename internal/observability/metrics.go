package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_enrollment_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// RemoteAPIRequests tracks calls to the remote enrollment API
	RemoteAPIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_enrollment_remote_api_requests_total",
			Help: "Number of requests to the remote enrollment API",
		},
		[]string{"operation", "status"},
	)

	// EnrollmentSubmissions tracks submission outcomes by terminal state
	EnrollmentSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_enrollment_submissions_total",
			Help: "Number of enrollment submissions by outcome",
		},
		[]string{"state"},
	)

	// DashboardJoinMisses tracks join lookups that fell back to the
	// not-found sentinel
	DashboardJoinMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_enrollment_dashboard_join_misses_total",
			Help: "Number of dashboard join lookups without a match",
		},
		[]string{"resource"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_enrollment_active_connections",
			Help: "Number of active connections",
		},
	)
)
