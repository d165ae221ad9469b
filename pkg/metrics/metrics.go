// Package metrics exposes Prometheus instruments for payload validation.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/withreach/gip-checkout/pkg/payload"
)

// Result labels recorded by Observe.
const (
	ResultOK           = "ok"
	ResultMissingField = "missing_field"
	ResultInvalidValue = "invalid_value"
	ResultError        = "error"
)

// Metrics holds the validation instruments.
type Metrics struct {
	Validations *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// New creates the instruments and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "paycheck_validations_total",
			Help: "Payload validations by entity and result",
		}, []string{"entity", "result"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "paycheck_validation_duration_seconds",
			Help:    "Time spent validating a payload",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, []string{"entity"}),
	}
	reg.MustRegister(m.Validations, m.Duration)
	return m
}

// Observe records one validation of entity that took d and ended with err.
func (m *Metrics) Observe(entity string, err error, d time.Duration) {
	m.Validations.WithLabelValues(entity, Result(err)).Inc()
	m.Duration.WithLabelValues(entity).Observe(d.Seconds())
}

// Result maps a validation error to its result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, payload.ErrMissingField):
		return ResultMissingField
	case errors.Is(err, payload.ErrInvalidValue):
		return ResultInvalidValue
	default:
		return ResultError
	}
}
