package roadmap

import (
	"fmt"
	"math"
	"time"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
)

// AnalyzedServer couples an inventory record with the analysis the
// scheduler needs. EffortHours must be filled by the caller, normally
// via Generator.EffortHours.
type AnalyzedServer struct {
	Record      api.ServerRecord
	Complexity  api.ComplexityResult
	Strategy    api.MigrationStrategy
	EffortHours float64
}

// Generator schedules analyzed fleets into migration timelines.
type Generator struct {
	policy Policy
}

// GeneratorOption is a functional option for configuring a Generator.
type GeneratorOption func(*Generator)

// WithPolicy replaces the stock scheduling policy.
func WithPolicy(policy Policy) GeneratorOption {
	return func(g *Generator) {
		g.policy = policy
	}
}

// NewGenerator creates a Generator with default settings.
func NewGenerator(opts ...GeneratorOption) *Generator {
	res := Generator{
		policy: DefaultPolicy,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Generate schedules the fleet from startDate onward. It validates the
// input, builds the dependency graph, orders the work, buckets servers
// into waves and emits the dated phases plus the project summary. A
// dependency cycle is fatal and surfaces as a CyclicDependencyError.
func (g *Generator) Generate(servers []AnalyzedServer, startDate time.Time) ([]api.RoadmapPhase, api.ProjectSummary, error) {
	if len(servers) == 0 {
		return nil, api.ProjectSummary{}, &api.ValidationError{Field: "servers", Reason: "at least one analyzable server is required"}
	}

	graph, err := buildGraph(servers)
	if err != nil {
		return nil, api.ProjectSummary{}, err
	}

	order := graph.topoOrder()
	waves := assignWaves(graph, order)
	path := criticalPath(graph, order)
	phases, totalDays := g.buildPhases(graph, order, waves, path, startDate)

	var totalEffort float64
	for _, s := range servers {
		totalEffort += s.EffortHours
	}

	summary := api.ProjectSummary{
		Duration:     fmt.Sprintf("%d days", totalDays),
		TotalServers: len(servers),
		TotalEffort:  math.Round(totalEffort*10) / 10,
		CriticalPath: path,
	}
	return phases, summary, nil
}
