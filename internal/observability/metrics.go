package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	workoutPersistGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "workout_tracker",
		Subsystem: "persistence",
		Name:      "last_workout_persisted_timestamp_seconds",
		Help:      "Unix timestamp of the most recent workout written to the store.",
	})
	workoutsDeletedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "workout_tracker",
		Subsystem: "persistence",
		Name:      "workouts_deleted_total",
		Help:      "Number of workouts permanently removed.",
	})
	httpRequestsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_tracker",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests handled, by method and status code.",
	}, []string{"method", "status"})
)

func init() {
	prometheus.MustRegister(workoutPersistGauge, workoutsDeletedCounter, httpRequestsCounter)
}

// Metrics implements domain.Recorder on top of the package-level collectors.
type Metrics struct{}

// WorkoutPersisted updates the persistence watermark gauge.
func (Metrics) WorkoutPersisted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	workoutPersistGauge.Set(float64(ts.Unix()))
}

// WorkoutDeleted bumps the deletion counter.
func (Metrics) WorkoutDeleted() {
	workoutsDeletedCounter.Inc()
}

// RecordHTTPRequest counts a handled request.
func RecordHTTPRequest(method string, status int) {
	httpRequestsCounter.WithLabelValues(method, statusLabel(status)).Inc()
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
