// Package metrics exposes cleaning runs as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"io"

	"github.com/aretw0/cleanerbot/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "cleanerbot"

// Collector counts robot activity. Wire it with Hooks.
type Collector struct {
	moves         *prometheus.CounterVec
	blocked       *prometheus.CounterVec
	cleaned       *prometheus.CounterVec
	runs          *prometheus.CounterVec
	runDuration   *prometheus.HistogramVec
	dirtRemaining prometheus.Gauge

	gatherer prometheus.Gatherer
}

// NewCollector creates the metrics and registers them on a private registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Successful robot moves.",
		}, []string{"strategy"}),
		blocked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocked_moves_total",
			Help:      "Moves rejected by a grid edge or an obstacle.",
		}, []string{"strategy"}),
		cleaned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_cleaned_total",
			Help:      "Dirty cells cleaned.",
		}, []string{"strategy"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished cleaning runs by outcome.",
		}, []string{"strategy", "outcome"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of cleaning runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"strategy"}),
		dirtRemaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dirt_remaining",
			Help:      "Dirty cells left on the grid at the last observed event.",
		}),
		gatherer: reg,
	}
	reg.MustRegister(c.moves, c.blocked, c.cleaned, c.runs, c.runDuration, c.dirtRemaining)
	return c
}

// Hooks returns lifecycle hooks that feed the collector.
func (c *Collector) Hooks() domain.LifecycleHooks {
	var started *domain.RunEvent
	return domain.LifecycleHooks{
		OnRunStart: func(e *domain.RunEvent) {
			started = e
			c.dirtRemaining.Set(float64(e.DirtRemaining))
		},
		OnMove: func(e *domain.StepEvent) {
			c.moves.WithLabelValues(e.Strategy).Inc()
		},
		OnBlocked: func(e *domain.StepEvent) {
			c.blocked.WithLabelValues(e.Strategy).Inc()
		},
		OnClean: func(e *domain.StepEvent) {
			c.cleaned.WithLabelValues(e.Strategy).Inc()
			c.dirtRemaining.Dec()
		},
		OnRunFinish: func(e *domain.RunEvent) {
			c.runs.WithLabelValues(e.Strategy, outcome(e)).Inc()
			c.dirtRemaining.Set(float64(e.DirtRemaining))
			if started != nil {
				c.runDuration.WithLabelValues(e.Strategy).Observe(e.Timestamp.Sub(started.Timestamp).Seconds())
			}
		},
	}
}

// Gatherer exposes the private registry.
func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.gatherer
}

// WriteText dumps every metric in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.gatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func outcome(e *domain.RunEvent) string {
	switch {
	case e.Err == nil && e.DirtRemaining == 0:
		return "clean"
	case e.Err == nil:
		return "dirt_left"
	case errors.Is(e.Err, context.Canceled), errors.Is(e.Err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}
