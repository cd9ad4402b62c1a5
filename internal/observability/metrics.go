package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors exported on the metrics endpoint.
type Metrics struct {
	registry *prometheus.Registry

	// Conjugations counts conjugation requests by form name.
	Conjugations *prometheus.CounterVec
	// DrillAnswers counts answered challenges by outcome ("correct", "incorrect").
	DrillAnswers *prometheus.CounterVec
	// OpenChallenges tracks challenges awaiting an answer.
	OpenChallenges prometheus.Gauge
	// RequestDuration observes handler latency by route and status code.
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on a fresh registry, so tests and
// multiple servers in one process do not collide.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Conjugations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "katsuyo",
			Name:      "conjugations_total",
			Help:      "Conjugations served, by form.",
		}, []string{"form"}),
		DrillAnswers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "katsuyo",
			Name:      "drill_answers_total",
			Help:      "Drill answers checked, by outcome.",
		}, []string{"outcome"}),
		OpenChallenges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "katsuyo",
			Name:      "drill_open_challenges",
			Help:      "Drill challenges awaiting an answer.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "katsuyo",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP handler latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "code"}),
	}
	m.registry.MustRegister(m.Conjugations, m.DrillAnswers, m.OpenChallenges, m.RequestDuration)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Instrument records the latency of next under route.
func (m *Metrics) Instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.RequestDuration.WithLabelValues(route, strconv.Itoa(rec.status)).Observe(time.Since(start).Seconds())
	})
}
