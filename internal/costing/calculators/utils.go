package calculators

import (
	"fmt"

	"github.com/fleetforge/migration-compass/internal/costing"
)

// Param keys shared across calculators. The estimator derives them
// from the inventory record and the upstream analysis results.
const (
	// ParamCores is the number of provisioned CPU cores.
	ParamCores = "cores"
	// ParamMemoryGB is the provisioned memory in gigabytes.
	ParamMemoryGB = "memory_gb"
	// ParamStorageGB is the provisioned storage in gigabytes.
	ParamStorageGB = "storage_gb"
	// ParamHasDatabase reports whether any application on the server is a database.
	ParamHasDatabase = "has_database"
	// ParamDependencyCount is the number of declared dependencies.
	ParamDependencyCount = "dependency_count"
	// ParamStrategy is the selected migration strategy (rehost, replatform, refactor).
	ParamStrategy = "strategy"
	// ParamRiskLevel is the risk level attached to the selected strategy.
	ParamRiskLevel = "risk_level"
	// ParamComplexityScore is the 0-10 complexity score.
	ParamComplexityScore = "complexity_score"
)

// HoursPerMonth is the billing convention for converting hourly cloud
// rates to a monthly line.
const HoursPerMonth = 730.0

func getInt(p costing.Param) (int, error) {
	switch v := p.Value.(type) {
	case float64:
		return int(v), nil // JSON default
	case int:
		return v, nil // Direct struct usage or YAML (sometimes)
	case int64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("param %s is not a number (type: %T)", p.Key, p.Value)
	}
}

func getFloat(p costing.Param) (float64, error) {
	switch v := p.Value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0.0, fmt.Errorf("param %s is not a number (type: %T)", p.Key, p.Value)
	}
}

func getString(p costing.Param) (string, error) {
	if v, ok := p.Value.(string); ok {
		return v, nil
	}
	return "", fmt.Errorf("param %s is not a string (type: %T)", p.Key, p.Value)
}

func getBool(p costing.Param) (bool, error) {
	if v, ok := p.Value.(bool); ok {
		return v, nil
	}
	return false, fmt.Errorf("param %s is not a bool (type: %T)", p.Key, p.Value)
}

func requireParam(params map[string]costing.Param, key string) (costing.Param, error) {
	p, ok := params[key]
	if !ok {
		return costing.Param{}, fmt.Errorf("missing %s", key)
	}
	return p, nil
}

func requireFloat(params map[string]costing.Param, key string) (float64, error) {
	p, err := requireParam(params, key)
	if err != nil {
		return 0, err
	}
	return getFloat(p)
}

func requireNonNegativeFloat(params map[string]costing.Param, key string) (float64, error) {
	v, err := requireFloat(params, key)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must be non-negative", key)
	}
	return v, nil
}

func requireInt(params map[string]costing.Param, key string) (int, error) {
	p, err := requireParam(params, key)
	if err != nil {
		return 0, err
	}
	return getInt(p)
}

func requireString(params map[string]costing.Param, key string) (string, error) {
	p, err := requireParam(params, key)
	if err != nil {
		return "", err
	}
	return getString(p)
}

func requireBool(params map[string]costing.Param, key string) (bool, error) {
	p, err := requireParam(params, key)
	if err != nil {
		return false, err
	}
	return getBool(p)
}
