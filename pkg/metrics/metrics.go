// Package metrics exposes the engine's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "compengine"

var (
	PurchasesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchases_total",
			Help:      "Purchases by outcome",
		},
		[]string{"outcome"},
	)

	CommissionPaid = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commission_amount_total",
			Help:      "Commission amount committed, by entry kind",
		},
		[]string{"kind"},
	)

	PioneerGrants = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pioneer_grants_total",
			Help:      "Pioneer statuses granted",
		},
	)

	RecomputeTasks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recompute_tasks_total",
			Help:      "Qualifying volume recompute tasks by outcome",
		},
		[]string{"outcome"},
	)

	RecomputeInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "recompute_in_flight",
			Help:      "Recompute tasks currently being processed",
		},
	)

	RankChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rank_changes_total",
			Help:      "Rank changes by method",
		},
		[]string{"method"},
	)

	IntegrityAlerts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "integrity_alerts_total",
			Help:      "Quarantined branches by integrity error kind",
		},
		[]string{"kind"},
	)

	PoolDistributed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pool_periods_total",
			Help:      "Closed periods by pool outcome",
		},
		[]string{"outcome"},
	)

	EventsDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_events_total",
			Help:      "Outbox events by delivery outcome",
		},
		[]string{"outcome"},
	)
)

// AddAmount adds a money amount to a counter. Amounts are decimals everywhere
// else; float precision is good enough for monitoring.
func AddAmount(c prometheus.Counter, amount interface{ InexactFloat64() float64 }) {
	if v := amount.InexactFloat64(); v > 0 {
		c.Add(v)
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
