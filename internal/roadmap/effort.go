package roadmap

import (
	api "github.com/fleetforge/migration-compass/api/v1alpha1"
)

// Policy holds the effort and phase-duration knobs. Wave durations
// assume HoursPerDay effective migration hours per calendar day; the
// bookend phases are fixed day counts scaled by the fleet complexity
// multiplier.
type Policy struct {
	BaseHours          float64
	HoursPerScorePoint float64
	HoursPerDay        float64
	AssessmentBaseDays float64
	CutoverBaseDays    float64
}

// DefaultPolicy is the stock scheduling policy used when no override is provided.
var DefaultPolicy = Policy{
	BaseHours:          16,
	HoursPerScorePoint: 8,
	HoursPerDay:        8,
	AssessmentBaseDays: 12,
	CutoverBaseDays:    10,
}

// EffortHours estimates hands-on migration hours for one server:
// (base + hours-per-point x complexity score) x strategy risk
// multiplier.
func (g *Generator) EffortHours(score float64, risk api.RiskLevel) float64 {
	return (g.policy.BaseHours + g.policy.HoursPerScorePoint*score) * riskMultiplier(risk)
}

func riskMultiplier(risk api.RiskLevel) float64 {
	switch risk {
	case api.RiskHigh:
		return 2.0
	case api.RiskMedium:
		return 1.5
	default:
		return 1.0
	}
}

// fleetMultiplier scales the assessment and cutover bookends by the
// hardest server in the fleet.
func fleetMultiplier(servers []AnalyzedServer) float64 {
	mult := 1.0
	for _, s := range servers {
		switch s.Complexity.Level {
		case api.ComplexityHigh:
			return 2.0
		case api.ComplexityMedium:
			mult = 1.5
		}
	}
	return mult
}
