package calculators

import (
	"fmt"

	"github.com/fleetforge/migration-compass/internal/costing"
)

// ComputeName is the Engine result key for the cloud compute line.
const ComputeName = "Cloud Compute"

// InstanceType is one entry of the cloud compute catalog.
type InstanceType struct {
	Name      string
	VCPUs     int
	MemoryGB  float64
	HourlyUSD float64
}

// DefaultCatalog is the stock instance catalog. Entries do not need to
// be sorted; selection always scans for the cheapest fit.
var DefaultCatalog = []InstanceType{
	{Name: "t3.micro", VCPUs: 2, MemoryGB: 1, HourlyUSD: 0.0113},
	{Name: "t3.small", VCPUs: 2, MemoryGB: 2, HourlyUSD: 0.0226},
	{Name: "t3.medium", VCPUs: 2, MemoryGB: 4, HourlyUSD: 0.0452},
	{Name: "t3.large", VCPUs: 2, MemoryGB: 8, HourlyUSD: 0.0904},
	{Name: "c5.large", VCPUs: 2, MemoryGB: 4, HourlyUSD: 0.0890},
	{Name: "m5.large", VCPUs: 2, MemoryGB: 8, HourlyUSD: 0.1060},
	{Name: "r5.large", VCPUs: 2, MemoryGB: 16, HourlyUSD: 0.1330},
}

// footprintFactors shrink the required capacity for strategies that
// offload work to managed services.
var footprintFactors = map[string]float64{
	"rehost":     1.0,
	"replatform": 0.75,
	"refactor":   0.50,
}

// Compile-time assertion that Compute implements the Calculator interface.
var _ costing.Calculator = (*Compute)(nil)

// Compute picks the cheapest catalog instance that fits the server's
// strategy-adjusted footprint and prices it per month.
type Compute struct {
	catalog []InstanceType
}

// ComputeOption is a functional option for configuring a Compute calculator.
type ComputeOption func(*Compute)

// WithCatalog replaces the stock instance catalog. Empty catalogs are
// ignored and the default is kept.
func WithCatalog(catalog []InstanceType) ComputeOption {
	return func(c *Compute) {
		if len(catalog) > 0 {
			c.catalog = catalog
		}
	}
}

// NewCompute creates a Compute calculator with default settings.
func NewCompute(opts ...ComputeOption) *Compute {
	res := Compute{
		catalog: DefaultCatalog,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Name returns the human-readable name of this calculator.
func (c *Compute) Name() string {
	return ComputeName
}

// Keys returns the list of parameter keys required by this calculator.
func (c *Compute) Keys() []string {
	return []string{ParamCores, ParamMemoryGB, ParamStrategy}
}

// Calculate selects the instance and prices it at HoursPerMonth. When
// nothing in the catalog fits, the largest memory instance is used so
// the estimate stays conservative rather than failing.
func (c *Compute) Calculate(params map[string]costing.Param) (costing.CostLine, error) {
	cores, err := requireInt(params, ParamCores)
	if err != nil {
		return costing.CostLine{}, err
	}
	if cores < 1 {
		return costing.CostLine{}, fmt.Errorf("%s must be at least 1", ParamCores)
	}

	memoryGB, err := requireNonNegativeFloat(params, ParamMemoryGB)
	if err != nil {
		return costing.CostLine{}, err
	}

	strategy, err := requireString(params, ParamStrategy)
	if err != nil {
		return costing.CostLine{}, err
	}

	factor, ok := footprintFactors[strategy]
	if !ok {
		return costing.CostLine{}, fmt.Errorf("unknown strategy %q", strategy)
	}

	neededCores := float64(cores) * factor
	neededMemory := memoryGB * factor

	instance, fits := c.pick(neededCores, neededMemory)
	monthly := instance.HourlyUSD * HoursPerMonth

	reason := fmt.Sprintf("%s at %.4f/h for %.1f vCPU / %.1f GB footprint (%s)",
		instance.Name, instance.HourlyUSD, neededCores, neededMemory, strategy)
	if !fits {
		reason = fmt.Sprintf("%s (largest available, footprint %.1f vCPU / %.1f GB exceeds catalog)",
			instance.Name, neededCores, neededMemory)
	}

	return costing.CostLine{
		MonthlyUSD: monthly,
		Reason:     reason,
	}, nil
}

// pick returns the cheapest instance covering both dimensions, or the
// largest memory instance with fits=false when none does.
func (c *Compute) pick(neededCores, neededMemory float64) (InstanceType, bool) {
	var best *InstanceType
	for i := range c.catalog {
		candidate := &c.catalog[i]
		if float64(candidate.VCPUs) < neededCores || candidate.MemoryGB < neededMemory {
			continue
		}
		if best == nil || candidate.HourlyUSD < best.HourlyUSD {
			best = candidate
		}
	}
	if best != nil {
		return *best, true
	}

	largest := c.catalog[0]
	for _, candidate := range c.catalog[1:] {
		if candidate.MemoryGB > largest.MemoryGB {
			largest = candidate
		}
	}
	return largest, false
}
