package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	migrationCompass = "migration_compass"

	// Pipeline metrics
	plansBuiltTotal      = "plans_built_total"
	planBuildSeconds     = "plan_build_duration_seconds"
	serversAnalyzedTotal = "servers_analyzed_total"
	serverWarningsTotal  = "server_warnings_total"

	// Labels
	planOutcomeLabel = "outcome"
	strategyLabel    = "strategy"
)

var plansBuiltTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: migrationCompass,
		Name:      plansBuiltTotal,
		Help:      "number of migration plans built, partitioned by outcome",
	},
	[]string{planOutcomeLabel},
)

var planBuildSecondsMetric = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Subsystem: migrationCompass,
		Name:      planBuildSeconds,
		Help:      "time spent building a migration plan",
		Buckets:   prometheus.DefBuckets,
	},
)

var serversAnalyzedTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: migrationCompass,
		Name:      serversAnalyzedTotal,
		Help:      "number of servers analyzed, partitioned by selected strategy",
	},
	[]string{strategyLabel},
)

var serverWarningsTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: migrationCompass,
		Name:      serverWarningsTotal,
		Help:      "number of servers excluded from a plan with a warning",
	},
)

func IncreasePlansBuiltMetric(outcome string) {
	labels := prometheus.Labels{
		planOutcomeLabel: outcome,
	}
	plansBuiltTotalMetric.With(labels).Inc()
}

func ObservePlanBuildDuration(seconds float64) {
	planBuildSecondsMetric.Observe(seconds)
}

func IncreaseServersAnalyzedMetric(strategy string) {
	labels := prometheus.Labels{
		strategyLabel: strategy,
	}
	serversAnalyzedTotalMetric.With(labels).Inc()
}

func IncreaseServerWarningsMetric() {
	serverWarningsTotalMetric.Inc()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(plansBuiltTotalMetric)
	prometheus.MustRegister(planBuildSecondsMetric)
	prometheus.MustRegister(serversAnalyzedTotalMetric)
	prometheus.MustRegister(serverWarningsTotalMetric)
}
