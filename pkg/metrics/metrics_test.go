package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/withreach/gip-checkout/pkg/metrics"
	"github.com/withreach/gip-checkout/pkg/payload"
)

func TestResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, metrics.ResultOK, metrics.Result(nil))
	assert.Equal(t, metrics.ResultMissingField, metrics.Result(&payload.MissingFieldError{Key: "A"}))
	assert.Equal(t, metrics.ResultInvalidValue, metrics.Result(&payload.InvalidValueError{Expected: "string"}))
	assert.Equal(t, metrics.ResultError, metrics.Result(errors.New("decode")))
}

func TestObserve(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.Observe("order", nil, time.Millisecond)
	m.Observe("order", nil, time.Millisecond)
	m.Observe("card", &payload.InvalidValueError{Value: payload.Redacted, Expected: "card number"}, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Validations.WithLabelValues("order", metrics.ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("card", metrics.ResultInvalidValue)))

	n, err := testutil.GatherAndCount(reg, "paycheck_validation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestNewPanicsOnDuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics.New(reg)
	assert.Panics(t, func() { metrics.New(reg) })
}
