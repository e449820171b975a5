// Package metrics exports database/sql pool statistics to Prometheus.
package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
)

// PoolCollector exposes a connection pool's stats as gauges labeled with
// the pool's group name. Register one per data source.
type PoolCollector struct {
	group string
	db    *sql.DB

	openConns   *prometheus.Desc
	inUseConns  *prometheus.Desc
	idleConns   *prometheus.Desc
	waitCount   *prometheus.Desc
	waitSeconds *prometheus.Desc
}

// NewPoolCollector returns a collector for db's pool stats under the given
// group label.
func NewPoolCollector(group string, db *sql.DB) *PoolCollector {
	labels := prometheus.Labels{"group": group}
	return &PoolCollector{
		group: group,
		db:    db,
		openConns: prometheus.NewDesc(
			"dbkit_pool_open_connections",
			"Open connections, both in use and idle.",
			nil, labels),
		inUseConns: prometheus.NewDesc(
			"dbkit_pool_in_use_connections",
			"Connections currently in use.",
			nil, labels),
		idleConns: prometheus.NewDesc(
			"dbkit_pool_idle_connections",
			"Idle connections.",
			nil, labels),
		waitCount: prometheus.NewDesc(
			"dbkit_pool_wait_count_total",
			"Total number of connections waited for.",
			nil, labels),
		waitSeconds: prometheus.NewDesc(
			"dbkit_pool_wait_seconds_total",
			"Total time blocked waiting for a connection.",
			nil, labels),
	}
}

// Describe implements prometheus.Collector.
func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.openConns
	ch <- c.inUseConns
	ch <- c.idleConns
	ch <- c.waitCount
	ch <- c.waitSeconds
}

// Collect implements prometheus.Collector.
func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.db.Stats()
	ch <- prometheus.MustNewConstMetric(c.openConns, prometheus.GaugeValue, float64(stats.OpenConnections))
	ch <- prometheus.MustNewConstMetric(c.inUseConns, prometheus.GaugeValue, float64(stats.InUse))
	ch <- prometheus.MustNewConstMetric(c.idleConns, prometheus.GaugeValue, float64(stats.Idle))
	ch <- prometheus.MustNewConstMetric(c.waitCount, prometheus.CounterValue, float64(stats.WaitCount))
	ch <- prometheus.MustNewConstMetric(c.waitSeconds, prometheus.CounterValue, stats.WaitDuration.Seconds())
}
