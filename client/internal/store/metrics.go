package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsAppliedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parlor_store_events_applied_total",
			Help: "Server events applied to the message store",
		},
		[]string{"type"},
	)

	eventsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parlor_store_events_dropped_total",
			Help: "Server events dropped because the target message is unknown",
		},
		[]string{"type"},
	)

	notificationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parlor_store_view_notifications_total",
			Help: "Change notifications delivered to attached views",
		},
	)
)
