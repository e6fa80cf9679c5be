package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsCreated       *prometheus.CounterVec
	transactionsDeleted       *prometheus.CounterVec
	dashboardDuration         *prometheus.HistogramVec
	ledgerSize                prometheus.Gauge
	seededTransactionsTotal   prometheus.Counter
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of ledger entries recorded",
			},
			[]string{"kind", "category"},
		),
		transactionsDeleted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_deleted_total",
				Help: "Total number of ledger entries deleted",
			},
			[]string{"kind"},
		),
		dashboardDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_aggregation_duration_milliseconds",
				Help:    "Dashboard aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		ledgerSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_transactions",
				Help: "Number of transactions observed in the most recent aggregation",
			},
		),
		seededTransactionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "seeded_transactions_total",
				Help: "Total number of transactions generated by the dev seeder",
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transactions_created":
		m.transactionsCreated.WithLabelValues(tags["kind"], tags["category"]).Inc()
	case "transactions_deleted":
		m.transactionsDeleted.WithLabelValues(tags["kind"]).Inc()
	case "transactions_seeded":
		m.seededTransactionsTotal.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "dashboard_summary", "dashboard_daily", "dashboard_monthly":
		m.dashboardDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "ledger_transactions":
		m.ledgerSize.Set(value)
	}
}
