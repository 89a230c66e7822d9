package calculators

import (
	"fmt"

	"github.com/fleetforge/migration-compass/internal/costing"
)

// MigrationName is the Engine result key for the one-time migration line.
const MigrationName = "Migration Execution"

// MigrationRates holds the one-time cost knobs. The base engagement
// cost is scaled by the strategy's risk multiplier and by complexity,
// then data transfer, testing and training are added on top.
type MigrationRates struct {
	BaseCost       float64
	RiskLowMult    float64
	RiskMediumMult float64
	RiskHighMult   float64
	ScoreDivisor   float64
	TransferPerGB  float64
	TestingRate    float64
	TrainingCost   float64
}

// DefaultMigrationRates is the stock pricing used when no override is provided.
var DefaultMigrationRates = MigrationRates{
	BaseCost:       5000,
	RiskLowMult:    1.0,
	RiskMediumMult: 1.5,
	RiskHighMult:   2.0,
	ScoreDivisor:   20,
	TransferPerGB:  0.10,
	TestingRate:    0.20,
	TrainingCost:   1000,
}

// Compile-time assertion that Migration implements the Calculator interface.
var _ costing.Calculator = (*Migration)(nil)

// Migration prices the one-time execution of the move itself. It is
// the only calculator that produces no recurring monthly cost.
type Migration struct {
	rates MigrationRates
}

// MigrationOption is a functional option for configuring a Migration calculator.
type MigrationOption func(*Migration)

// WithMigrationRates replaces the stock rate card.
func WithMigrationRates(rates MigrationRates) MigrationOption {
	return func(m *Migration) {
		m.rates = rates
	}
}

// NewMigration creates a Migration calculator with default settings.
func NewMigration(opts ...MigrationOption) *Migration {
	res := Migration{
		rates: DefaultMigrationRates,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Name returns the human-readable name of this calculator.
func (c *Migration) Name() string {
	return MigrationName
}

// Keys returns the list of parameter keys required by this calculator.
func (c *Migration) Keys() []string {
	return []string{ParamStorageGB, ParamRiskLevel, ParamComplexityScore}
}

func (c *Migration) Calculate(params map[string]costing.Param) (costing.CostLine, error) {
	storageGB, err := requireNonNegativeFloat(params, ParamStorageGB)
	if err != nil {
		return costing.CostLine{}, err
	}

	riskLevel, err := requireString(params, ParamRiskLevel)
	if err != nil {
		return costing.CostLine{}, err
	}

	score, err := requireNonNegativeFloat(params, ParamComplexityScore)
	if err != nil {
		return costing.CostLine{}, err
	}

	var mult float64
	switch riskLevel {
	case "low":
		mult = c.rates.RiskLowMult
	case "medium":
		mult = c.rates.RiskMediumMult
	case "high":
		mult = c.rates.RiskHighMult
	default:
		return costing.CostLine{}, fmt.Errorf("unknown risk level %q", riskLevel)
	}

	base := c.rates.BaseCost * mult * (1 + score/c.rates.ScoreDivisor)
	transfer := storageGB * c.rates.TransferPerGB
	testing := base * c.rates.TestingRate
	training := c.rates.TrainingCost

	return costing.CostLine{
		OneTimeUSD: base + transfer + testing + training,
		Reason: fmt.Sprintf("base %.2f at %s risk, transfer %.2f, testing %.2f, training %.2f",
			base, riskLevel, transfer, testing, training),
	}, nil
}
