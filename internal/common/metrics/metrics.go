// Package metrics exposes the planner's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studio",
		Name:      "equipment_mutations_total",
		Help:      "Equipment collection mutations by operation.",
	}, []string{"op"})

	PersistFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studio",
		Name:      "persist_failures_total",
		Help:      "Storage writes that failed and were dropped.",
	}, []string{"key"})

	DragEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studio",
		Name:      "drag_events_total",
		Help:      "Drag controller transitions and moves.",
	}, []string{"event"})

	Equipment = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "studio",
		Name:      "equipment_items",
		Help:      "Items currently in the collection.",
	})
)
