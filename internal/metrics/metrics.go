// Package metrics exposes Prometheus counters and gauges for the relay.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Room lifecycle
	RoomsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "relay_rooms_active",
			Help: "Rooms currently live in the registry",
		},
	)

	RoomsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_rooms_created_total",
			Help: "Total rooms created",
		},
	)

	RoomsReaped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_rooms_reaped_total",
			Help: "Total rooms reclaimed by the reaper",
		},
	)

	// Connections
	ClientsConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "relay_clients_connected",
			Help: "Clients currently registered with the hub",
		},
	)

	// Messages
	MessagesRelayed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_messages_total",
			Help: "Total messages routed to rooms",
		},
	)

	// HTTP surface
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)
