package strategy

import (
	"testing"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
)

func level(l api.ComplexityLevel) api.ComplexityResult {
	return api.ComplexityResult{Score: 5, Level: l}
}

func deps(criticalities ...api.Criticality) []api.Dependency {
	out := make([]api.Dependency, 0, len(criticalities))
	for _, c := range criticalities {
		out = append(out, api.Dependency{
			Name:        "dep",
			Type:        api.DependencyOther,
			Criticality: c,
		})
	}
	return out
}

func TestSelectCoversEveryProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    api.ComplexityLevel
		deps     []api.Dependency
		want     api.StrategyType
		wantRisk api.RiskLevel
	}{
		{name: "low no deps rehosts", level: api.ComplexityLow, deps: nil, want: api.StrategyRehost, wantRisk: api.RiskLow},
		{name: "low with low deps rehosts", level: api.ComplexityLow, deps: deps(api.CriticalityLow, api.CriticalityMedium), want: api.StrategyRehost, wantRisk: api.RiskLow},
		{name: "medium replatforms", level: api.ComplexityMedium, deps: nil, want: api.StrategyReplatform, wantRisk: api.RiskMedium},
		{name: "low with high dep replatforms", level: api.ComplexityLow, deps: deps(api.CriticalityHigh), want: api.StrategyReplatform, wantRisk: api.RiskMedium},
		{name: "high refactors", level: api.ComplexityHigh, deps: nil, want: api.StrategyRefactor, wantRisk: api.RiskHigh},
		{name: "critical dep forces refactor on low", level: api.ComplexityLow, deps: deps(api.CriticalityCritical), want: api.StrategyRefactor, wantRisk: api.RiskHigh},
		{name: "critical dep forces refactor on medium", level: api.ComplexityMedium, deps: deps(api.CriticalityMedium, api.CriticalityCritical), want: api.StrategyRefactor, wantRisk: api.RiskHigh},
		{name: "medium with high dep replatforms", level: api.ComplexityMedium, deps: deps(api.CriticalityHigh), want: api.StrategyReplatform, wantRisk: api.RiskMedium},
	}

	s := NewSelector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := s.Select(level(tt.level), tt.deps)
			if got.Strategy != tt.want {
				t.Errorf("Select() strategy = %q, want %q", got.Strategy, tt.want)
			}
			if got.RiskLevel != tt.wantRisk {
				t.Errorf("Select() risk = %q, want %q", got.RiskLevel, tt.wantRisk)
			}
			if got.Description == "" {
				t.Error("Select() description is empty")
			}
		})
	}
}

func TestCriticalDependencyNeverRehosts(t *testing.T) {
	t.Parallel()

	s := NewSelector()
	for _, l := range []api.ComplexityLevel{api.ComplexityLow, api.ComplexityMedium, api.ComplexityHigh} {
		got := s.Select(level(l), deps(api.CriticalityCritical))
		if got.Strategy == api.StrategyRehost {
			t.Errorf("Select(%q, critical dep) = rehost, critical dependencies must never rehost", l)
		}
		if got.Strategy != api.StrategyRefactor {
			t.Errorf("Select(%q, critical dep) = %q, want refactor", l, got.Strategy)
		}
	}
}

func TestRiskFor(t *testing.T) {
	t.Parallel()

	if RiskFor(api.StrategyRehost) != api.RiskLow {
		t.Error("RiskFor(rehost) != low")
	}
	if RiskFor(api.StrategyReplatform) != api.RiskMedium {
		t.Error("RiskFor(replatform) != medium")
	}
	if RiskFor(api.StrategyRefactor) != api.RiskHigh {
		t.Error("RiskFor(refactor) != high")
	}
}
