package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds the request-level metrics exposed on /metrics.
type Server struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

// NewServer registers HTTP metrics on the given registerer. Pass
// prometheus.DefaultRegisterer in main and a fresh registry in tests.
func NewServer(reg prometheus.Registerer) *Server {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "learnsphere",
		Subsystem: "api",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "learnsphere",
		Subsystem: "api",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"method"})

	reg.MustRegister(requests, latency)
	return &Server{Requests: requests, LatencyMS: latency}
}

// Checkout counts checkout attempts by outcome. A nil *Checkout is a
// no-op so services can run without metrics wired.
type Checkout struct {
	attempts *prometheus.CounterVec
}

const (
	OutcomeSuccess            = "success"
	OutcomeDuplicate          = "duplicate_reference"
	OutcomeVerificationFailed = "verification_failed"
	OutcomeNotificationFailed = "notification_failed"
	OutcomeInvalidInput       = "invalid_input"
	OutcomeError              = "error"
)

func NewCheckout(reg prometheus.Registerer) *Checkout {
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "learnsphere",
		Subsystem: "checkout",
		Name:      "attempts_total",
		Help:      "Checkout attempts by outcome.",
	}, []string{"outcome"})

	reg.MustRegister(attempts)
	return &Checkout{attempts: attempts}
}

func (c *Checkout) Record(outcome string) {
	if c == nil {
		return
	}
	c.attempts.WithLabelValues(outcome).Inc()
}

// Handler serves the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
