package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the chat pipeline. Collaborator
// fallbacks are labelled per step so a degraded model shows up immediately.
type Metrics struct {
	Requests     prometheus.Counter
	Fallbacks    *prometheus.CounterVec
	Duration     prometheus.Histogram
	SchemesFound *prometheus.CounterVec
}

// New creates all chat pipeline metrics registered on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates the metrics on a specific registerer. Tests use this with a
// fresh registry to avoid duplicate registration across cases.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounter(prometheus.CounterOpts{
			Name: "saarthi_chat_requests_total",
			Help: "Total number of chat requests processed",
		}),
		Fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "saarthi_chat_fallbacks_total",
			Help: "Collaborator failures recovered via fallback, by pipeline step",
		}, []string{"step"}),
		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "saarthi_chat_duration_seconds",
			Help:    "End-to-end chat request duration including collaborator calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		SchemesFound: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "saarthi_chat_schemes_total",
			Help: "Schemes returned to users, by classification",
		}, []string{"status"}),
	}
}

// IncrementRequests records one handled chat request.
func (m *Metrics) IncrementRequests() {
	m.Requests.Inc()
}

// IncrementFallback records a recovered collaborator failure for a step.
func (m *Metrics) IncrementFallback(step string) {
	m.Fallbacks.WithLabelValues(step).Inc()
}

// ObserveDuration records the duration of a chat request.
// Call with time.Now() captured at the start of the request.
func (m *Metrics) ObserveDuration(start time.Time) {
	m.Duration.Observe(time.Since(start).Seconds())
}

// AddSchemes records how many schemes were returned with a classification.
func (m *Metrics) AddSchemes(status string, n int) {
	if n > 0 {
		m.SchemesFound.WithLabelValues(status).Add(float64(n))
	}
}
