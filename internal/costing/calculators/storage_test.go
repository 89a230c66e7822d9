package calculators

import (
	"math"
	"strings"
	"testing"

	"github.com/fleetforge/migration-compass/internal/costing"
)

func TestStorage_Calculate_GP3UnderCeiling(t *testing.T) {
	t.Parallel()
	calc := NewStorage()

	params := map[string]costing.Param{
		ParamStorageGB: {Key: ParamStorageGB, Value: 100.0},
	}

	result, err := calc.Calculate(params)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// block: 100 * 0.0924 = 9.24
	// object: 100 * 0.30 * 0.0230 = 0.69
	// backup: 100 * 0.50 * (0.0125 + 0.01) = 1.125
	expected := 9.24 + 0.69 + 1.125
	if math.Abs(result.MonthlyUSD-expected) > 1e-6 {
		t.Errorf("expected monthly %v, got %v", expected, result.MonthlyUSD)
	}
	if !strings.Contains(result.Reason, "gp3") {
		t.Errorf("expected gp3 volume in reason, got %q", result.Reason)
	}
}

func TestStorage_Calculate_IO1OverCeiling(t *testing.T) {
	t.Parallel()
	calc := NewStorage()

	params := map[string]costing.Param{
		ParamStorageGB: {Key: ParamStorageGB, Value: 200.0},
	}

	result, err := calc.Calculate(params)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// block: 200 * 0.1425 + (200 * 30) * 0.0657 = 28.5 + 394.2 = 422.7
	// object: 200 * 0.30 * 0.0230 = 1.38
	// backup: 200 * 0.50 * 0.0225 = 2.25
	expected := 422.7 + 1.38 + 2.25
	if math.Abs(result.MonthlyUSD-expected) > 1e-6 {
		t.Errorf("expected monthly %v, got %v", expected, result.MonthlyUSD)
	}
	if !strings.Contains(result.Reason, "io1") {
		t.Errorf("expected io1 volume in reason, got %q", result.Reason)
	}
}

func TestStorage_Calculate_ZeroGB(t *testing.T) {
	t.Parallel()
	calc := NewStorage()

	params := map[string]costing.Param{
		ParamStorageGB: {Key: ParamStorageGB, Value: 0.0},
	}

	result, err := calc.Calculate(params)
	if err != nil {
		t.Fatalf("expected no error for zero GB, got: %v", err)
	}
	if result.MonthlyUSD != 0 {
		t.Errorf("expected 0 monthly for zero GB, got %v", result.MonthlyUSD)
	}
}

func TestStorage_Calculate_WithCustomRates(t *testing.T) {
	t.Parallel()
	rates := DefaultStorageRates
	rates.GP3PerGB = 0.05
	rates.ObjectShare = 0
	rates.BackupShare = 0
	calc := NewStorage(WithStorageRates(rates))

	params := map[string]costing.Param{
		ParamStorageGB: {Key: ParamStorageGB, Value: 100.0},
	}

	result, err := calc.Calculate(params)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	expected := 5.0
	if math.Abs(result.MonthlyUSD-expected) > 1e-6 {
		t.Errorf("expected monthly %v, got %v", expected, result.MonthlyUSD)
	}
}

func TestStorage_Calculate_ErrorCases(t *testing.T) {
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
			name: "invalid param type",
			params: map[string]costing.Param{
				ParamStorageGB: {Key: ParamStorageGB, Value: "big"},
			},
		},
		{
			name: "negative storage",
			params: map[string]costing.Param{
				ParamStorageGB: {Key: ParamStorageGB, Value: -10.0},
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			calc := NewStorage()
			_, err := calc.Calculate(tc.params)
			if err == nil {
				t.Errorf("expected error for case %q, got nil", tc.name)
			}
		})
	}
}
