// Package metrics holds the Prometheus collectors for game activity. A nil
// *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rpsls"

// Round modes
const (
	ModeSingle = "single"
	ModeMulti  = "multi"
)

// Stores a committed result is recorded to
const (
	StoreResults = "results"
	StorePlayers = "players"
)

// Metrics holds the collectors for game activity
type Metrics struct {
	roundsPlayed    *prometheus.CounterVec
	sessionOps      *prometheus.CounterVec
	conflictRetries prometheus.Counter
	randomFailures  prometheus.Counter
	recordFailures  *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		roundsPlayed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_played_total",
			Help:      "Rounds resolved, by mode and outcome.",
		}, []string{"mode", "outcome"}),
		sessionOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_operations_total",
			Help:      "Session operations, by operation and result.",
		}, []string{"op", "result"}),
		conflictRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_conflict_retries_total",
			Help:      "Session saves retried after a concurrent write.",
		}),
		randomFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "random_source_failures_total",
			Help:      "Failed draws from the random choice source.",
		}),
		recordFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "result_record_failures_total",
			Help:      "Committed results that could not be recorded, by store.",
		}, []string{"store"}),
	}

	collectors := []prometheus.Collector{
		m.roundsPlayed,
		m.sessionOps,
		m.conflictRetries,
		m.randomFailures,
		m.recordFailures,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// RoundPlayed counts a resolved round; outcome is win, lose or tie
func (m *Metrics) RoundPlayed(mode, outcome string) {
	if m == nil {
		return
	}
	m.roundsPlayed.WithLabelValues(mode, outcome).Inc()
}

// SessionOp counts a session operation and how it ended
func (m *Metrics) SessionOp(op, result string) {
	if m == nil {
		return
	}
	m.sessionOps.WithLabelValues(op, result).Inc()
}

// ConflictRetry counts one retried save
func (m *Metrics) ConflictRetry() {
	if m == nil {
		return
	}
	m.conflictRetries.Inc()
}

// RandomFailure counts one failed draw
func (m *Metrics) RandomFailure() {
	if m == nil {
		return
	}
	m.randomFailures.Inc()
}

// RecordFailure counts a committed result that store failed to record
func (m *Metrics) RecordFailure(store string) {
	if m == nil {
		return
	}
	m.recordFailures.WithLabelValues(store).Inc()
}
