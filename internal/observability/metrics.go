// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the wallet watcher.
type Metrics struct {
	// Watch metrics
	LogsNotifications prometheus.Counter
	AccountUpdates    prometheus.Counter
	WalletLamports    prometheus.Gauge
	HighestSlotSeen   prometheus.Gauge

	// RPC metrics
	RPCCallLatency *prometheus.HistogramVec

	// Publish metrics
	EventsPublished prometheus.Counter
	PublishErrors   prometheus.Counter

	// Health metrics
	LastEventTimestamp prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "solana_wallet_console"
	}

	return &Metrics{
		// Watch metrics
		LogsNotifications: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "watch",
			Name:      "logs_notifications_total",
			Help:      "Total number of logs notifications received",
		}),
		AccountUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "watch",
			Name:      "account_updates_total",
			Help:      "Total number of account state updates received",
		}),
		WalletLamports: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "watch",
			Name:      "wallet_lamports",
			Help:      "Last observed wallet balance in lamports",
		}),
		HighestSlotSeen: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "watch",
			Name:      "highest_slot_seen",
			Help:      "Highest Solana slot number seen",
		}),

		// RPC metrics
		RPCCallLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "solana",
			Name:      "rpc_call_latency_seconds",
			Help:      "Solana RPC call latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),

		// Publish metrics
		EventsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "nats",
			Name:      "events_published_total",
			Help:      "Total number of activity events published",
		}),
		PublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "nats",
			Name:      "publish_errors_total",
			Help:      "Total number of failed event publishes",
		}),

		// Health metrics
		LastEventTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_event_timestamp",
			Help:      "Unix timestamp of the last observed wallet event",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordLogsNotification increments the logs notifications counter.
func RecordLogsNotification() {
	DefaultMetrics.LogsNotifications.Inc()
}

// RecordAccountUpdate records a new balance observation.
func RecordAccountUpdate(lamports uint64) {
	DefaultMetrics.AccountUpdates.Inc()
	DefaultMetrics.WalletLamports.Set(float64(lamports))
}

// UpdateHighestSlot updates the highest slot seen gauge.
func UpdateHighestSlot(slot int64) {
	DefaultMetrics.HighestSlotSeen.Set(float64(slot))
}

// RecordRPCLatency records RPC call latency.
func RecordRPCLatency(method string, seconds float64) {
	DefaultMetrics.RPCCallLatency.WithLabelValues(method).Observe(seconds)
}

// RecordPublish records an event publish attempt.
func RecordPublish(err error) {
	if err != nil {
		DefaultMetrics.PublishErrors.Inc()
		return
	}
	DefaultMetrics.EventsPublished.Inc()
}

// MarkEventSeen updates the last event timestamp gauge.
func MarkEventSeen(unixSeconds int64) {
	DefaultMetrics.LastEventTimestamp.Set(float64(unixSeconds))
}
