// SPDX-License-Identifier: MIT

package observe

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/triad/triad"
)

const (
	metricsNamespace = "triad"
	metricsSubsystem = "matcher"

	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"

	sideFirst  = "first"
	sideSecond = "second"
	sideBoth   = "both"
)

// Metrics exports the event stream as Prometheus collectors.
type Metrics struct {
	proposals  *prometheus.CounterVec // by outcome
	rejections *prometheus.CounterVec // by rejecting side
	formed     prometheus.Counter
	dissolved  prometheus.Counter
	lastRun    prometheus.Gauge // attempts of the most recent finished run
}

// NewMetrics creates the collectors and registers them with reg.
// Collectors already registered by an earlier Metrics are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, errors.New("observe: NewMetrics requires a registerer")
	}

	m := &Metrics{
		proposals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "proposals_total",
			Help:      "Proposal attempts by outcome",
		}, []string{"outcome"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "rejections_total",
			Help:      "Rejected proposals by which candidate declined",
		}, []string{"side"}),
		formed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "teams_formed_total",
			Help:      "Teams seated",
		}),
		dissolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "teams_dissolved_total",
			Help:      "Teams dissolved to make room for a preferred arrangement",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "last_run_proposals",
			Help:      "Total proposal attempts of the most recently finished run",
		}),
	}

	if err := m.register(reg); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Metrics) register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{m.proposals, m.rejections, m.formed, m.dissolved, m.lastRun}
	for _, collector := range collectors {
		err := reg.Register(collector)
		if err == nil {
			continue
		}
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return fmt.Errorf("observe: register metrics: %w", err)
		}
		switch existing := already.ExistingCollector.(type) {
		case *prometheus.CounterVec:
			if collector == prometheus.Collector(m.proposals) {
				m.proposals = existing
			} else {
				m.rejections = existing
			}
		case prometheus.Gauge: // before Counter: a gauge also has Inc and Add
			m.lastRun = existing
		case prometheus.Counter:
			if collector == prometheus.Collector(m.formed) {
				m.formed = existing
			} else {
				m.dissolved = existing
			}
		}
	}

	return nil
}

// Observe implements triad.Observer.
func (m *Metrics) Observe(e triad.Event) {
	switch e.Kind {
	case triad.ProposalAttempted:
		if e.Accepted() {
			m.proposals.WithLabelValues(outcomeAccepted).Inc()
			return
		}
		m.proposals.WithLabelValues(outcomeRejected).Inc()
		switch {
		case !e.FirstAccepts && !e.SecondAccepts:
			m.rejections.WithLabelValues(sideBoth).Inc()
		case !e.FirstAccepts:
			m.rejections.WithLabelValues(sideFirst).Inc()
		default:
			m.rejections.WithLabelValues(sideSecond).Inc()
		}
	case triad.TeamFormed:
		m.formed.Inc()
	case triad.TeamDissolved:
		m.dissolved.Inc()
	case triad.RunFinished:
		m.lastRun.Set(float64(e.Proposals))
	}
}
