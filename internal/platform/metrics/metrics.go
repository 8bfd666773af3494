package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"domainkit/pkg/validation"
)

const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

// Metrics holds the Prometheus collectors for validation activity. They live
// on their own registry so several instances can coexist in one process.
type Metrics struct {
	Registry *prometheus.Registry

	ValidationsRun      *prometheus.CounterVec
	MessagesEmitted     *prometheus.CounterVec
	ValidationLatency   *prometheus.HistogramVec
	CustomersRegistered prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		ValidationsRun: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "domainkit_validations_total",
			Help: "Total number of validations run, labeled by subject kind and outcome",
		}, []string{"kind", "outcome"}),
		MessagesEmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "domainkit_validation_messages_total",
			Help: "Total number of validation messages emitted, labeled by severity and code",
		}, []string{"severity", "code"}),
		ValidationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "domainkit_validation_duration_seconds",
			Help:    "Latency of validations in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		CustomersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "domainkit_customers_registered_total",
			Help: "Total number of customers registered",
		}),
	}
}

// RecordValidation counts one validation of the given subject kind and every
// message it produced.
func (m *Metrics) RecordValidation(kind string, ms []validation.Message) {
	outcome := OutcomeValid
	for _, msg := range ms {
		if msg.IsError() {
			outcome = OutcomeInvalid
		}
		m.MessagesEmitted.WithLabelValues(msg.Severity().String(), msg.Code()).Inc()
	}
	m.ValidationsRun.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) ObserveValidationLatency(kind string, durationSeconds float64) {
	m.ValidationLatency.WithLabelValues(kind).Observe(durationSeconds)
}

func (m *Metrics) IncrementCustomersRegistered() {
	m.CustomersRegistered.Inc()
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
