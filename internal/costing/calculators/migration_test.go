package calculators

import (
	"math"
	"testing"

	"github.com/fleetforge/migration-compass/internal/costing"
)

func migrationParams(storageGB float64, risk string, score float64) map[string]costing.Param {
	return map[string]costing.Param{
		ParamStorageGB:       {Key: ParamStorageGB, Value: storageGB},
		ParamRiskLevel:       {Key: ParamRiskLevel, Value: risk},
		ParamComplexityScore: {Key: ParamComplexityScore, Value: score},
	}
}

func TestMigration_Calculate_LowRisk(t *testing.T) {
	t.Parallel()
	calc := NewMigration()

	result, err := calc.Calculate(migrationParams(100, "low", 2.0))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// base: 5000 * 1.0 * (1 + 2/20) = 5500
	// transfer: 100 * 0.10 = 10
	// testing: 5500 * 0.20 = 1100
	// training: 1000
	expected := 5500.0 + 10 + 1100 + 1000
	if math.Abs(result.OneTimeUSD-expected) > 1e-6 {
		t.Errorf("expected one-time %v, got %v", expected, result.OneTimeUSD)
	}
	if result.MonthlyUSD != 0 {
		t.Errorf("expected no recurring cost, got %v", result.MonthlyUSD)
	}
}

func TestMigration_Calculate_HighRisk(t *testing.T) {
	t.Parallel()
	calc := NewMigration()

	result, err := calc.Calculate(migrationParams(500, "high", 8.0))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// base: 5000 * 2.0 * (1 + 8/20) = 14000
	// transfer: 500 * 0.10 = 50
	// testing: 14000 * 0.20 = 2800
	// training: 1000
	expected := 14000.0 + 50 + 2800 + 1000
	if math.Abs(result.OneTimeUSD-expected) > 1e-6 {
		t.Errorf("expected one-time %v, got %v", expected, result.OneTimeUSD)
	}
}

func TestMigration_Calculate_RiskOrdering(t *testing.T) {
	t.Parallel()
	calc := NewMigration()

	low, err := calc.Calculate(migrationParams(100, "low", 5.0))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	medium, err := calc.Calculate(migrationParams(100, "medium", 5.0))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	high, err := calc.Calculate(migrationParams(100, "high", 5.0))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !(low.OneTimeUSD < medium.OneTimeUSD && medium.OneTimeUSD < high.OneTimeUSD) {
		t.Errorf("expected low < medium < high, got %v / %v / %v",
			low.OneTimeUSD, medium.OneTimeUSD, high.OneTimeUSD)
	}
}

func TestMigration_Calculate_ErrorCases(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		params map[string]costing.Param
	}{
		{
			name:   "missing storage_gb param",
			params: map[string]costing.Param{},
		},
		{
			name:   "unknown risk level",
			params: migrationParams(100, "extreme", 5.0),
		},
		{
			name:   "negative score",
			params: migrationParams(100, "low", -1.0),
		},
		{
			name: "invalid risk type",
			params: map[string]costing.Param{
				ParamStorageGB:       {Key: ParamStorageGB, Value: 100.0},
				ParamRiskLevel:       {Key: ParamRiskLevel, Value: 3},
				ParamComplexityScore: {Key: ParamComplexityScore, Value: 5.0},
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			calc := NewMigration()
			_, err := calc.Calculate(tc.params)
			if err == nil {
				t.Errorf("expected error for case %q, got nil", tc.name)
			}
		})
	}
}
