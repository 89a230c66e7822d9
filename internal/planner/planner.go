package planner

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/complexity"
	"github.com/fleetforge/migration-compass/internal/config"
	"github.com/fleetforge/migration-compass/internal/costing"
	"github.com/fleetforge/migration-compass/internal/costing/calculators"
	"github.com/fleetforge/migration-compass/internal/roadmap"
	"github.com/fleetforge/migration-compass/internal/strategy"
	"github.com/fleetforge/migration-compass/pkg/metrics"
)

// Planner runs the full pipeline: per-server analysis fanned out over a
// bounded worker pool, then a single roadmap pass over the survivors.
type Planner struct {
	analyzer  *complexity.Analyzer
	selector  *strategy.Selector
	estimator *calculators.Estimator
	generator *roadmap.Generator
	workers   int
}

// New assembles a Planner from the configured policy: scoring weights
// and thresholds, rate cards, advisor thresholds and scheduling
// constants all come from cfg.Policy.
func New(cfg *config.Config) *Planner {
	workers := cfg.Policy.Workers
	if workers < 1 {
		workers = 1
	}
	return &Planner{
		analyzer:  newAnalyzer(cfg),
		selector:  strategy.NewSelector(),
		estimator: newEstimator(cfg),
		generator: newGenerator(cfg),
		workers:   workers,
	}
}

// Build analyzes the fleet and assembles the migration plan. A server
// whose analysis fails is reported under Warnings and excluded from the
// roadmap; the build itself fails only when no server survives analysis
// or the surviving dependency graph is cyclic.
func (p *Planner) Build(ctx context.Context, servers []api.ServerRecord, startDate time.Time) (api.MigrationPlan, error) {
	start := time.Now()
	plan, err := p.build(ctx, servers, startDate)
	metrics.ObservePlanBuildDuration(time.Since(start).Seconds())
	if err != nil {
		metrics.IncreasePlansBuiltMetric("failed")
		return api.MigrationPlan{}, err
	}
	metrics.IncreasePlansBuiltMetric("successful")
	return plan, nil
}

func (p *Planner) build(ctx context.Context, servers []api.ServerRecord, startDate time.Time) (api.MigrationPlan, error) {
	// One slot per input index keeps results in fleet order without
	// locking.
	analyses := make([]*api.ServerAnalysis, len(servers))
	warnings := make([]*api.PlanWarning, len(servers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range servers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			server := servers[i]
			analysis, err := p.analyzeServer(server)
			if err != nil {
				zap.S().Named("planner").Warnw("excluding server from plan", "server_id", server.ServerID, "error", err)
				metrics.IncreaseServerWarningsMetric()
				warnings[i] = &api.PlanWarning{ServerID: server.ServerID, Message: err.Error()}
				return nil
			}
			analyses[i] = analysis
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return api.MigrationPlan{}, err
	}

	plan := api.MigrationPlan{
		Servers: make([]api.ServerAnalysis, 0, len(servers)),
	}
	analyzed := make([]roadmap.AnalyzedServer, 0, len(servers))
	for i := range servers {
		if warnings[i] != nil {
			plan.Warnings = append(plan.Warnings, *warnings[i])
			continue
		}
		analysis := analyses[i]
		plan.Servers = append(plan.Servers, *analysis)
		analyzed = append(analyzed, roadmap.AnalyzedServer{
			Record:      servers[i],
			Complexity:  analysis.Complexity,
			Strategy:    analysis.MigrationStrategy,
			EffortHours: p.generator.EffortHours(analysis.Complexity.Score, analysis.MigrationStrategy.RiskLevel),
		})
	}

	timeline, summary, err := p.generator.Generate(analyzed, startDate)
	if err != nil {
		return api.MigrationPlan{}, err
	}
	plan.Timeline = timeline
	plan.ProjectSummary = summary
	return plan, nil
}

func (p *Planner) analyzeServer(server api.ServerRecord) (*api.ServerAnalysis, error) {
	result, err := p.analyzer.Analyze(server)
	if err != nil {
		return nil, err
	}
	selected := p.selector.Select(result, server.Dependencies)
	estimate, err := p.estimator.Estimate(server, result, selected)
	if err != nil {
		return nil, err
	}
	metrics.IncreaseServersAnalyzedMetric(string(selected.Strategy))
	return &api.ServerAnalysis{
		ServerID:          server.ServerID,
		ServerName:        server.ServerName,
		Complexity:        result,
		MigrationStrategy: selected,
		CostEstimate:      estimate,
	}, nil
}

func newAnalyzer(cfg *config.Config) *complexity.Analyzer {
	policy := cfg.Policy.Complexity
	return complexity.NewAnalyzer(
		complexity.WithWeights(policy.ResourceWeight, policy.ApplicationWeight, policy.DependencyWeight),
		complexity.WithThresholds(policy.LowThreshold, policy.HighThreshold),
	)
}

func newEstimator(cfg *config.Config) *calculators.Estimator {
	pricing := cfg.Policy.Pricing

	onPremRates := calculators.OnPremRates{
		HardwareCost:           pricing.HardwareCost,
		HardwareLifetimeMonths: pricing.HardwareLifetimeMonths,
		PowerPerKWh:            pricing.PowerCostPerKWh,
		KWPerCore:              pricing.KWPerCore,
		MaintenanceAnnualRate:  pricing.MaintenanceAnnualRate,
		DatacenterMonthly:      pricing.DatacenterMonthly,
		StoragePerGB:           pricing.OnPremStoragePerGB,
		LaborMonthly:           pricing.LaborMonthly,
	}

	// Config carries only the unit prices; the risk multipliers and the
	// score divisor keep their defaults.
	migrationRates := calculators.DefaultMigrationRates
	migrationRates.BaseCost = pricing.MigrationBase
	migrationRates.TransferPerGB = pricing.DataTransferPerGB
	migrationRates.TestingRate = pricing.TestingRate
	migrationRates.TrainingCost = pricing.TrainingCost

	engine := costing.NewEngine()
	engine.Register(calculators.NewOnPrem(calculators.WithOnPremRates(onPremRates)))
	engine.Register(calculators.NewCompute())
	engine.Register(calculators.NewStorage())
	engine.Register(calculators.NewDatabase())
	engine.Register(calculators.NewNetwork())
	engine.Register(calculators.NewMigration(calculators.WithMigrationRates(migrationRates)))

	advisor := cfg.Policy.Advisor
	advisorRates := calculators.AdvisorRates{
		LowUtilizationPct:    advisor.LowUtilizationPct,
		SteadyUtilizationPct: advisor.SteadyUtilizationPct,
		LowStorageRatio:      advisor.LowStorageRatio,
		RightsizingRate:      advisor.RightsizingRate,
		ReservedRate:         advisor.ReservedRate,
		StorageTieringRate:   advisor.StorageTieringRate,
		ManagedDatabaseRate:  advisor.ManagedDatabaseRate,
	}

	return calculators.NewEstimator(
		calculators.WithEngine(engine),
		calculators.WithAdvisor(calculators.NewAdvisor(calculators.WithAdvisorRates(advisorRates))),
	)
}

func newGenerator(cfg *config.Config) *roadmap.Generator {
	effort := cfg.Policy.Effort
	return roadmap.NewGenerator(roadmap.WithPolicy(roadmap.Policy{
		BaseHours:          effort.BaseHours,
		HoursPerScorePoint: effort.HoursPerScorePoint,
		HoursPerDay:        effort.HoursPerDay,
		AssessmentBaseDays: effort.AssessmentBaseDays,
		CutoverBaseDays:    effort.CutoverBaseDays,
	}))
}
