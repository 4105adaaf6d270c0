package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OWMAPICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashingweather_owm_api_calls_total",
			Help: "Total OpenWeatherMap API calls",
		},
		[]string{"endpoint", "status"},
	)

	OWMAPILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashingweather_owm_api_latency_seconds",
			Help:    "OpenWeatherMap API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	TileFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashingweather_tile_fetches_total",
			Help: "Total map tile fetches proxied to the tile server",
		},
		[]string{"layer", "status"},
	)

	DashboardEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashingweather_dashboard_events_total",
			Help: "Dashboard interactions by event and outcome",
		},
		[]string{"event", "outcome"},
	)
)
