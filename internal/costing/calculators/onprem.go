package calculators

import (
	"fmt"

	"github.com/fleetforge/migration-compass/internal/costing"
)

// OnPremName is the Engine result key for the on-premises baseline.
const OnPremName = "On-Premises Baseline"

// OnPremRates holds the unit costs behind the on-premises monthly
// proxy. Hardware is amortized linearly over its lifetime and
// maintenance accrues as an annual fraction of the hardware price.
type OnPremRates struct {
	HardwareCost           float64
	HardwareLifetimeMonths float64
	PowerPerKWh            float64
	KWPerCore              float64
	MaintenanceAnnualRate  float64
	DatacenterMonthly      float64
	StoragePerGB           float64
	LaborMonthly           float64
}

// DefaultOnPremRates is the stock pricing used when no override is provided.
var DefaultOnPremRates = OnPremRates{
	HardwareCost:           15000,
	HardwareLifetimeMonths: 36,
	PowerPerKWh:            0.15,
	KWPerCore:              0.1,
	MaintenanceAnnualRate:  0.20,
	DatacenterMonthly:      200,
	StoragePerGB:           0.10,
	LaborMonthly:           500,
}

// Compile-time assertion that OnPrem implements the Calculator interface.
var _ costing.Calculator = (*OnPrem)(nil)

// OnPrem prices what the server costs to keep running where it is
// today. The line is the baseline every cloud projection is compared
// against.
type OnPrem struct {
	rates OnPremRates
}

// OnPremOption is a functional option for configuring an OnPrem calculator.
type OnPremOption func(*OnPrem)

// WithOnPremRates replaces the stock rate card.
func WithOnPremRates(rates OnPremRates) OnPremOption {
	return func(o *OnPrem) {
		o.rates = rates
	}
}

// NewOnPrem creates an OnPrem calculator with default settings.
func NewOnPrem(opts ...OnPremOption) *OnPrem {
	res := OnPrem{
		rates: DefaultOnPremRates,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Name returns the human-readable name of this calculator.
func (c *OnPrem) Name() string {
	return OnPremName
}

// Keys returns the list of parameter keys required by this calculator.
func (c *OnPrem) Keys() []string {
	return []string{ParamCores, ParamStorageGB}
}

// Calculate sums hardware amortization, power draw, maintenance,
// datacenter share, storage and operations labor into one monthly line.
func (c *OnPrem) Calculate(params map[string]costing.Param) (costing.CostLine, error) {
	cores, err := requireInt(params, ParamCores)
	if err != nil {
		return costing.CostLine{}, err
	}
	if cores < 1 {
		return costing.CostLine{}, fmt.Errorf("%s must be at least 1", ParamCores)
	}

	storageGB, err := requireNonNegativeFloat(params, ParamStorageGB)
	if err != nil {
		return costing.CostLine{}, err
	}

	hardware := c.rates.HardwareCost / c.rates.HardwareLifetimeMonths
	power := c.rates.PowerPerKWh * (float64(cores) * c.rates.KWPerCore) * 24 * 30
	maintenance := c.rates.HardwareCost * c.rates.MaintenanceAnnualRate / 12
	storage := storageGB * c.rates.StoragePerGB

	monthly := hardware + power + maintenance + c.rates.DatacenterMonthly + storage + c.rates.LaborMonthly

	return costing.CostLine{
		MonthlyUSD: monthly,
		Reason: fmt.Sprintf("%d cores, %.0f GB on-prem: hardware %.2f, power %.2f, maintenance %.2f, facility %.2f, storage %.2f, labor %.2f",
			cores, storageGB, hardware, power, maintenance, c.rates.DatacenterMonthly, storage, c.rates.LaborMonthly),
	}, nil
}
