package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	m.RoundPlayed(ModeSingle, "win")
	m.RoundPlayed(ModeSingle, "win")
	m.RoundPlayed(ModeMulti, "tie")
	m.SessionOp("join", "ok")
	m.ConflictRetry()
	m.RandomFailure()
	m.RecordFailure(StoreResults)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.roundsPlayed.WithLabelValues(ModeSingle, "win")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.roundsPlayed.WithLabelValues(ModeMulti, "tie")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionOps.WithLabelValues("join", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conflictRetries))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.randomFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recordFailures.WithLabelValues(StoreResults)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.recordFailures.WithLabelValues(StorePlayers)))
}

func TestMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RoundPlayed(ModeSingle, "win")
		m.SessionOp("join", "ok")
		m.ConflictRetry()
		m.RandomFailure()
		m.RecordFailure(StorePlayers)
	})
}
