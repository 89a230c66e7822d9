package strategy

import (
	api "github.com/fleetforge/migration-compass/api/v1alpha1"
)

var riskLevels = map[api.StrategyType]api.RiskLevel{
	api.StrategyRehost:     api.RiskLow,
	api.StrategyReplatform: api.RiskMedium,
	api.StrategyRefactor:   api.RiskHigh,
}

var descriptions = map[api.StrategyType]string{
	api.StrategyRehost:     "Lift-and-shift migration with minimal changes",
	api.StrategyReplatform: "Migrate with targeted optimizations to managed services",
	api.StrategyRefactor:   "Redesign application components for cloud-native operation",
}

// Selector picks the migration approach for a server. Selection is
// total: every complexity level and dependency profile maps to exactly
// one strategy, and a server with a critical dependency never rehosts.
type Selector struct{}

func NewSelector() *Selector {
	return &Selector{}
}

func (s *Selector) Select(complexity api.ComplexityResult, deps []api.Dependency) api.MigrationStrategy {
	hasCritical := false
	hasHigh := false
	for _, dep := range deps {
		switch dep.Criticality {
		case api.CriticalityCritical:
			hasCritical = true
		case api.CriticalityHigh:
			hasHigh = true
		}
	}

	switch {
	case hasCritical || complexity.Level == api.ComplexityHigh:
		return newStrategy(api.StrategyRefactor)
	case hasHigh || complexity.Level == api.ComplexityMedium:
		return newStrategy(api.StrategyReplatform)
	default:
		return newStrategy(api.StrategyRehost)
	}
}

func newStrategy(st api.StrategyType) api.MigrationStrategy {
	return api.MigrationStrategy{
		Strategy:    st,
		RiskLevel:   riskLevels[st],
		Description: descriptions[st],
	}
}

// RiskFor exposes the strategy to risk mapping for downstream sizing.
func RiskFor(st api.StrategyType) api.RiskLevel {
	return riskLevels[st]
}
