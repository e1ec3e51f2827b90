package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	RefreshesTotal   prometheus.Counter
	RefreshFailures  prometheus.Counter
	LastRefreshTime  prometheus.Gauge
	ParticipantCount prometheus.Gauge
}

func newMetrics() *metrics {
	return &metrics{
		RefreshesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "archery_tools_refreshes_total",
			Help: "Total number of participant snapshot refreshes",
		}),
		RefreshFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "archery_tools_refresh_failures_total",
			Help: "Total number of failed participant snapshot refreshes",
		}),
		LastRefreshTime: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "archery_tools_last_refresh_timestamp_seconds",
			Help: "Unix timestamp of the last successful refresh",
		}),
		ParticipantCount: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "archery_tools_participants",
			Help: "Number of participants in the current snapshot",
		}),
	}
}
