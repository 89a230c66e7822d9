package metrics

import (
	"context"
	"fmt"

	"github.com/fleetforge/migration-compass/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type fleetStatsCollector struct {
	store              store.Store
	totalServers       *prometheus.Desc
	totalInventories   *prometheus.Desc
	totalPlans         *prometheus.Desc
	totalServersByType *prometheus.Desc
}

// NewFleetStatsCollector returns a collector that pulls fleet counts
// from the store on every scrape.
func NewFleetStatsCollector(s store.Store) prometheus.Collector {
	fqName := func(name string) string {
		return fmt.Sprintf("%s_fleet_%s", migrationCompass, name)
	}

	return &fleetStatsCollector{
		store: s,
		totalServers: prometheus.NewDesc(
			fqName("servers_total"),
			"Total number of servers across stored inventories.",
			nil,
			prometheus.Labels{},
		),
		totalInventories: prometheus.NewDesc(
			fqName("inventories_total"),
			"Total number of stored inventories.",
			nil,
			prometheus.Labels{},
		),
		totalPlans: prometheus.NewDesc(
			fqName("plans_total"),
			"Total number of stored migration plans.",
			nil,
			prometheus.Labels{},
		),
		totalServersByType: prometheus.NewDesc(
			fqName("servers_by_type_total"),
			"Total servers by server type.",
			[]string{"server_type"},
			prometheus.Labels{},
		),
	}
}

func (c *fleetStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.totalServers
	ch <- c.totalInventories
	ch <- c.totalPlans
	ch <- c.totalServersByType
}

// Collect implements Collector.
func (c *fleetStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.store.Statistics(context.Background())
	if err != nil {
		zap.S().Named("fleet_collector").Errorf("failed to collect fleet statistics: %s", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.totalServers, prometheus.GaugeValue, float64(stats.Servers.Total))
	ch <- prometheus.MustNewConstMetric(c.totalInventories, prometheus.GaugeValue, float64(stats.TotalInventories))
	ch <- prometheus.MustNewConstMetric(c.totalPlans, prometheus.GaugeValue, float64(stats.TotalPlans))

	for serverType, total := range stats.Servers.TotalByType {
		ch <- prometheus.MustNewConstMetric(c.totalServersByType, prometheus.GaugeValue, float64(total), serverType)
	}
}
