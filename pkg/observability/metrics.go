package observability

import (
	"context"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/migkairl/pkg/domain"
)

// Metrics holds the game's Prometheus collectors on a private registry.
type Metrics struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	draws       prometheus.Counter
	outcomes    *prometheus.CounterVec
	drinks      *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "migkairl_transitions_total",
				Help: "Total number of screen transitions",
			},
			[]string{"from", "to"},
		),
		draws: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "migkairl_trivia_draws_total",
			Help: "Total number of trivia questions shown",
		}),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "migkairl_outcomes_total",
				Help: "Total number of drink outcomes by kind and correctness",
			},
			[]string{"kind", "correct"},
		),
		drinks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "migkairl_drinks_total",
				Help: "Total number of drinks handed out",
			},
			[]string{"direction"},
		),
	}
	m.registry.MustRegister(m.transitions, m.draws, m.outcomes, m.drinks)
	return m
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEnter: func(ctx context.Context, e *domain.TransitionEvent) {
			m.transitions.WithLabelValues(string(e.From), string(e.To)).Inc()
			if e.To == domain.KindTrivia {
				m.draws.Inc()
			}
		},
		OnOutcome: func(ctx context.Context, e *domain.OutcomeEvent) {
			m.outcomes.WithLabelValues(string(e.Kind), strconv.FormatBool(e.Correct)).Inc()
			direction := "take"
			if e.Kind == domain.KindGiveDrinks {
				direction = "give"
			}
			m.drinks.WithLabelValues(direction).Add(float64(e.Count))
		},
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
