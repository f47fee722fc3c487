package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registry holds every application metric exposed on /api/metrics
	Registry = prometheus.NewRegistry()

	factory = promauto.With(Registry)

	// Custom histogram buckets for API response times ranging from milliseconds to 30+ seconds
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// HTTP Metrics
	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Database Client Metrics
	DBOperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_client_operation_duration_seconds",
			Help:    "Database client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	DBOperationTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_client_operation_total",
			Help: "Total number of database client operations",
		},
		[]string{"operation", "status"},
	)

	// Cache Metrics
	CacheHits = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_name"},
	)

	CacheMisses = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_name"},
	)

	CacheSize = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Number of entries in cache",
		},
		[]string{"cache_name"},
	)

	// Storage Client Metrics (S3-compatible object storage)
	StorageRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_client_operation_duration_seconds",
			Help:    "Storage client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	StorageRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_client_operation_total",
			Help: "Total number of storage client operations",
		},
		[]string{"operation", "status"},
	)

	// Email Metrics
	EmailsSent = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentormatch_emails_sent_total",
			Help: "Total number of outgoing emails by template and status",
		},
		[]string{"template", "status"},
	)

	EmailSendDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mentormatch_email_send_duration_seconds",
			Help:    "Email provider call duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"provider"},
	)

	// Business Metrics
	MatchesGenerated = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentormatch_matches_generated_total",
			Help: "Total number of match records produced by the generator",
		},
		[]string{"mode"}, // "organization", "suggestion", "manual"
	)

	MatchScores = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mentormatch_match_score",
			Help:    "Distribution of computed match scores",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)

	MatchGenerationDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mentormatch_match_generation_duration_seconds",
			Help:    "Duration of organization-wide match generation",
			Buckets: CustomAPIBuckets,
		},
	)

	MatchTransitions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentormatch_match_transitions_total",
			Help: "Total number of match lifecycle transitions",
		},
		[]string{"from_status", "to_status", "result"},
	)

	IntakeSubmissions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentormatch_intake_submissions_total",
			Help: "Total number of public intake form submissions",
		},
		[]string{"type", "status"},
	)

	Approvals = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentormatch_participant_approvals_total",
			Help: "Total number of mentor and mentee approvals",
		},
		[]string{"type"},
	)

	InvitationsSent = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentormatch_invitations_total",
			Help: "Total number of invitation emails by user type and status",
		},
		[]string{"user_type", "status"},
	)

	// Infrastructure Metrics
	GoRoutines = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

func init() {
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// RecordInfrastructureMetrics collects infrastructure metrics periodically
func RecordInfrastructureMetrics() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		for range ticker.C {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			GoRoutines.Set(float64(runtime.NumGoroutine()))
			HeapAlloc.Set(float64(m.HeapAlloc))
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
