package calculators

import (
	"math"
	"strings"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/costing"
)

const databaseApplicationType = "database"

// DefaultEngine returns an Engine with the full stock calculator set
// registered: the on-prem baseline, the four projected cloud lines and
// the one-time migration charge.
func DefaultEngine() *costing.Engine {
	engine := costing.NewEngine()
	engine.Register(NewOnPrem())
	engine.Register(NewCompute())
	engine.Register(NewStorage())
	engine.Register(NewDatabase())
	engine.Register(NewNetwork())
	engine.Register(NewMigration())
	return engine
}

// Estimator prices one analyzed server: it maps the inventory record
// into engine parameters, runs the bill, folds the lines into the
// current/projected summary and attaches advisor recommendations.
type Estimator struct {
	engine  *costing.Engine
	advisor *Advisor
}

// EstimatorOption is a functional option for configuring an Estimator.
type EstimatorOption func(*Estimator)

// WithEngine replaces the default engine, e.g. to supply calculators
// with custom rate cards.
func WithEngine(engine *costing.Engine) EstimatorOption {
	return func(e *Estimator) {
		e.engine = engine
	}
}

// WithAdvisor replaces the default optimization advisor.
func WithAdvisor(advisor *Advisor) EstimatorOption {
	return func(e *Estimator) {
		e.advisor = advisor
	}
}

// NewEstimator creates an Estimator with the default engine and advisor.
func NewEstimator(opts ...EstimatorOption) *Estimator {
	res := Estimator{
		engine:  DefaultEngine(),
		advisor: NewAdvisor(),
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Estimate prices the server under the selected strategy. Metric
// totals arrive in MB and are converted to GB for the calculators.
// All summary values are rounded to cents before the savings identity
// is computed, so currentMonthlyCost - projectedMonthlyCost equals
// monthlySavings exactly on the emitted values.
func (e *Estimator) Estimate(server api.ServerRecord, complexity api.ComplexityResult, strategy api.MigrationStrategy) (api.CostEstimate, error) {
	if server.Metrics == nil || server.Metrics.CPU == nil || server.Metrics.Memory == nil || server.Metrics.Storage == nil {
		return api.CostEstimate{}, &api.ValidationError{ServerID: server.ServerID, Field: "metrics", Reason: "block is required"}
	}

	lines, err := e.engine.Run(buildParams(server, complexity, strategy))
	if err != nil {
		return api.CostEstimate{}, err
	}

	current := roundCents(lines[OnPremName].MonthlyUSD)
	projected := roundCents(lines[ComputeName].MonthlyUSD +
		lines[StorageName].MonthlyUSD +
		lines[DatabaseName].MonthlyUSD +
		lines[NetworkName].MonthlyUSD)
	migration := roundCents(lines[MigrationName].OneTimeUSD)

	// current and projected are already cent-rounded; rounding the
	// difference again could move it off by an ulp.
	savings := current - projected

	summary := api.CostSummary{
		CurrentMonthlyCost:   current,
		ProjectedMonthlyCost: projected,
		MonthlySavings:       savings,
		MigrationCost:        migration,
		ThreeYearSavings:     roundCents(savings*36 - migration),
	}
	// ROI is undefined for cost-increasing migrations.
	if savings > 0 {
		roi := round1(migration / savings)
		summary.ROIMonths = &roi
	}

	return api.CostEstimate{
		Summary:      summary,
		Optimization: e.advisor.Advise(server, lines),
	}, nil
}

func buildParams(server api.ServerRecord, complexity api.ComplexityResult, strategy api.MigrationStrategy) []costing.Param {
	return []costing.Param{
		{Key: ParamCores, Value: server.Metrics.CPU.Cores},
		{Key: ParamMemoryGB, Value: server.Metrics.Memory.Total / 1024},
		{Key: ParamStorageGB, Value: server.Metrics.Storage.Total / 1024},
		{Key: ParamHasDatabase, Value: hasDatabaseApplication(server)},
		{Key: ParamDependencyCount, Value: len(server.Dependencies)},
		{Key: ParamStrategy, Value: string(strategy.Strategy)},
		{Key: ParamRiskLevel, Value: string(strategy.RiskLevel)},
		{Key: ParamComplexityScore, Value: complexity.Score},
	}
}

func hasDatabaseApplication(server api.ServerRecord) bool {
	for _, app := range server.Applications {
		if strings.EqualFold(app.Type, databaseApplicationType) {
			return true
		}
	}
	return false
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
