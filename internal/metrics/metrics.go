// Package metrics exposes Prometheus collectors for the action engine,
// wired in through domain.LifecycleHooks.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/canopy/pkg/domain"
)

// Collector holds the engine metrics and the hooks that feed them.
type Collector struct {
	actions    *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	broadcasts *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "canopy_actions_total",
				Help: "Total dispatched actions by name and outcome",
			},
			[]string{"action", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "canopy_action_duration_seconds",
				Help: "Duration of action dispatches",
			},
			[]string{"action"},
		),
		broadcasts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "canopy_broadcasts_total",
				Help: "Total events broadcast to connected clients",
			},
			[]string{"event"},
		),
	}
	reg.MustRegister(c.actions, c.duration, c.broadcasts)
	return c
}

// Hooks returns lifecycle hooks that record into the collectors.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(_ context.Context, e *domain.DispatchEvent) {
			outcome := "success"
			if !e.Success {
				outcome = "failure"
			}
			c.actions.WithLabelValues(e.Action, outcome).Inc()
			c.duration.WithLabelValues(e.Action).Observe(e.Duration.Seconds())
		},
		OnBroadcast: func(_ context.Context, e *domain.Event) {
			c.broadcasts.WithLabelValues(string(e.Type)).Inc()
		},
	}
}
