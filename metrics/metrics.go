// Package metrics exports commit engine outcomes as Prometheus
// metrics. A *Metrics is a commit.Observer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/commit"
	"github.com/frobware/go-nas/rollback"
)

const namespace = "nas"

// Result labels. Failures carrying a nas.Code are labelled with the
// code name instead of ResultError.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds the collectors.
type Metrics struct {
	commits       *prometheus.CounterVec
	commitLatency *prometheus.HistogramVec
	rollbackSteps *prometheus.CounterVec
	objects       *prometheus.GaugeVec
}

var _ commit.Observer = (*Metrics)(nil)

// New creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		commits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commit_total",
				Help:      "Commits by operation and result.",
			},
			[]string{"op", "result"},
		),
		commitLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "commit_duration_seconds",
				Help:      "Time spent in a commit, including any rollback.",
				Buckets:   prometheus.ExponentialBuckets(.0001, 2, 16),
			},
			[]string{"op"},
		),
		rollbackSteps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rollback_steps_total",
				Help:      "Replayed rollback entries by kind and result.",
			},
			[]string{"kind", "result"},
		),
		objects: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "objects",
				Help:      "Committed objects by type.",
			},
			[]string{"type"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.commits, m.commitLatency, m.rollbackSteps, m.objects)
	}
	return m
}

func result(err error) string {
	if err == nil {
		return ResultOK
	}
	if code := nas.CodeOf(err); code != nas.CodeUnknown {
		return code.String()
	}
	return ResultError
}

func (m *Metrics) CommitDone(op commit.Op, elapsed time.Duration, err error) {
	m.commits.WithLabelValues(string(op), result(err)).Inc()
	m.commitLatency.WithLabelValues(string(op)).Observe(elapsed.Seconds())
}

func (m *Metrics) RollbackStep(kind rollback.Kind, err error) {
	m.rollbackSteps.WithLabelValues(kind.String(), result(err)).Inc()
}

// SetObjects records the number of committed objects of a type.
func (m *Metrics) SetObjects(objType string, n int) {
	m.objects.WithLabelValues(objType).Set(float64(n))
}
