package observability

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kjstillabower/cicd-demo-service/internal/traffic"
)

var (
	registry *prometheus.Registry

	// HTTP request rate. Watch for: sudden drops (service down) or spikes.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTP request latency per request.
	HTTPRequestDuration *prometheus.HistogramVec

	// Concurrent requests in flight.
	HTTPRequestsInFlight prometheus.Gauge

	// Calculator calls by operation and outcome (success, invalid_argument, bad_request).
	CalculationsTotal *prometheus.CounterVec

	// Greetings served; named=false when the default name was used.
	GreetingsTotal *prometheus.CounterVec

	// Rate limit denials on the calculator path.
	RateLimitDeniedTotal prometheus.Counter

	trafficGaugesOnce sync.Once
)

func init() {
	registry = prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "httpRequestsTotal",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "statusCode"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "httpRequestDurationSeconds",
			Help:    "HTTP request latency in seconds (per request)",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	HTTPRequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "httpRequestsInFlight",
			Help: "Number of HTTP requests currently being served",
		},
	)
	CalculationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculationsTotal",
			Help: "Calculator operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
	GreetingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "greetingsTotal",
			Help: "Greetings served; named=false when the default name was used",
		},
		[]string{"named"},
	)
	RateLimitDeniedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rateLimitDeniedTotal",
			Help: "Total number of requests denied by rate limiter (429)",
		},
	)

	registry.MustRegister(
		HTTPRequestsTotal, HTTPRequestDuration, HTTPRequestsInFlight,
		CalculationsTotal, GreetingsTotal,
		RateLimitDeniedTotal,
	)
}

// RegisterTrafficGauges registers sliding-window gauges over the calculator path.
// Call once from main after config load; later calls are no-ops.
func RegisterTrafficGauges(window time.Duration) {
	trafficGaugesOnce.Do(func() {
		registry.MustRegister(
			prometheus.NewGaugeFunc(
				prometheus.GaugeOpts{
					Name: "calcRequestsInWindow",
					Help: "Requests hitting the calculator path in the sliding window, including 429s",
				},
				func() float64 { return float64(traffic.Total(window)) },
			),
			prometheus.NewGaugeFunc(
				prometheus.GaugeOpts{
					Name: "calcRejectsInWindow",
					Help: "429 responses on the calculator path in the sliding window",
				},
				func() float64 { return float64(traffic.Count(traffic.Denied, window)) },
			),
			prometheus.NewGaugeFunc(
				prometheus.GaugeOpts{
					Name: "calcErrorsInWindow",
					Help: "Calculations refused for bad input in the sliding window",
				},
				func() float64 { return float64(traffic.Count(traffic.Rejected, window)) },
			),
		)
	})
}

// RecordCalculation records one calculator call. outcome is success, invalid_argument or bad_request.
func RecordCalculation(operation, outcome string) {
	CalculationsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordGreeting records one greeting.
func RecordGreeting(named bool) {
	if named {
		GreetingsTotal.WithLabelValues("true").Inc()
		return
	}
	GreetingsTotal.WithLabelValues("false").Inc()
}

// MetricsHandler returns an http.Handler that serves application and runtime metrics.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
