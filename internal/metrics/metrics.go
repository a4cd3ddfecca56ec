// Package metrics exposes Prometheus counters for the dispatch pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NotificationsDispatched counts processed scheduled notifications by
	// their resulting status.
	NotificationsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "push_scheduler_notifications_dispatched_total",
		Help: "Scheduled notifications processed, labelled by resulting status.",
	}, []string{"status"})

	// DevicesReached counts per-device delivery outcomes across all
	// dispatches, scheduled and immediate.
	DevicesReached = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "push_scheduler_devices_reached_total",
		Help: "Per-device delivery outcomes.",
	}, []string{"result"})

	// TokensPruned counts device tokens deleted after the transport reported
	// them permanently invalid.
	TokensPruned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "push_scheduler_tokens_pruned_total",
		Help: "Device tokens deleted because the transport reported them permanently invalid.",
	})

	// SchedulerTicks counts scheduler poll iterations.
	SchedulerTicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "push_scheduler_ticks_total",
		Help: "Scheduler poll iterations.",
	})

	// ClaimedNotifications counts due notifications claimed for dispatch.
	ClaimedNotifications = promauto.NewCounter(prometheus.CounterOpts{
		Name: "push_scheduler_claimed_notifications_total",
		Help: "Due notifications claimed for dispatch.",
	})
)
