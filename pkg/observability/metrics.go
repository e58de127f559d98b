package observability

import (
	"context"

	"github.com/aretw0/chain/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by simulation hooks.
type Metrics struct {
	Runs        *prometheus.CounterVec
	Trials      prometheus.Counter
	Steps       prometheus.Counter
	Visits      *prometheus.CounterVec
	Transitions *prometheus.CounterVec
	RunDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chain_runs_total",
				Help: "Total number of multi-trial runs by outcome",
			},
			[]string{"outcome"},
		),
		Trials: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chain_trials_total",
			Help: "Total number of completed trials",
		}),
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chain_steps_total",
			Help: "Total number of sampled transitions",
		}),
		Visits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chain_state_visits_total",
				Help: "Total number of visits per state, initial states included",
			},
			[]string{"state"},
		),
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chain_transitions_total",
				Help: "Total number of sampled transitions per edge",
			},
			[]string{"from", "to"},
		),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "chain_run_duration_seconds",
			Help:    "Wall time of multi-trial runs",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	reg.MustRegister(m.Runs, m.Trials, m.Steps, m.Visits, m.Transitions, m.RunDuration)
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunEnd: func(_ context.Context, e *domain.RunEvent) {
			outcome := "ok"
			if e.Err != nil {
				outcome = "error"
			}
			m.Runs.WithLabelValues(outcome).Inc()
			m.RunDuration.Observe(e.Duration.Seconds())
		},
		OnTrialStart: func(_ context.Context, e *domain.TrialEvent) {
			m.Visits.WithLabelValues(string(e.Initial)).Inc()
		},
		OnTrialEnd: func(_ context.Context, _ *domain.TrialEvent) {
			m.Trials.Inc()
		},
		OnStep: func(e *domain.StepEvent) {
			m.Steps.Inc()
			m.Visits.WithLabelValues(string(e.To)).Inc()
			m.Transitions.WithLabelValues(string(e.From), string(e.To)).Inc()
		},
	}
}
