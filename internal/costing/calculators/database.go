package calculators

import (
	"fmt"

	"github.com/fleetforge/migration-compass/internal/costing"
)

// DatabaseName is the Engine result key for the managed database line.
const DatabaseName = "Managed Database"

// DatabaseRates holds the hourly instance tiers and storage cost for a
// managed database. Tier selection is by server memory.
type DatabaseRates struct {
	MicroHourly  float64
	MicroMaxGB   float64
	SmallHourly  float64
	SmallMaxGB   float64
	MediumHourly float64
	StoragePerGB float64
}

// DefaultDatabaseRates is the stock pricing used when no override is provided.
var DefaultDatabaseRates = DatabaseRates{
	MicroHourly:  0.0170,
	MicroMaxGB:   1,
	SmallHourly:  0.0340,
	SmallMaxGB:   2,
	MediumHourly: 0.0680,
	StoragePerGB: 0.0924,
}

// Compile-time assertion that Database implements the Calculator interface.
var _ costing.Calculator = (*Database)(nil)

// Database prices a managed database instance for servers that run one.
// Servers without a database application get a zero line.
type Database struct {
	rates DatabaseRates
}

// DatabaseOption is a functional option for configuring a Database calculator.
type DatabaseOption func(*Database)

// WithDatabaseRates replaces the stock rate card.
func WithDatabaseRates(rates DatabaseRates) DatabaseOption {
	return func(d *Database) {
		d.rates = rates
	}
}

// NewDatabase creates a Database calculator with default settings.
func NewDatabase(opts ...DatabaseOption) *Database {
	res := Database{
		rates: DefaultDatabaseRates,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Name returns the human-readable name of this calculator.
func (c *Database) Name() string {
	return DatabaseName
}

// Keys returns the list of parameter keys required by this calculator.
func (c *Database) Keys() []string {
	return []string{ParamHasDatabase, ParamMemoryGB, ParamStorageGB}
}

func (c *Database) Calculate(params map[string]costing.Param) (costing.CostLine, error) {
	hasDatabase, err := requireBool(params, ParamHasDatabase)
	if err != nil {
		return costing.CostLine{}, err
	}

	if !hasDatabase {
		return costing.CostLine{Reason: "no database applications"}, nil
	}

	memoryGB, err := requireNonNegativeFloat(params, ParamMemoryGB)
	if err != nil {
		return costing.CostLine{}, err
	}

	storageGB, err := requireNonNegativeFloat(params, ParamStorageGB)
	if err != nil {
		return costing.CostLine{}, err
	}

	var hourly float64
	var tier string
	switch {
	case memoryGB <= c.rates.MicroMaxGB:
		hourly, tier = c.rates.MicroHourly, "db.t3.micro"
	case memoryGB <= c.rates.SmallMaxGB:
		hourly, tier = c.rates.SmallHourly, "db.t3.small"
	default:
		hourly, tier = c.rates.MediumHourly, "db.t3.medium"
	}

	instance := hourly * HoursPerMonth
	storage := storageGB * c.rates.StoragePerGB

	return costing.CostLine{
		MonthlyUSD: instance + storage,
		Reason: fmt.Sprintf("%s %.2f, storage %.2f",
			tier, instance, storage),
	}, nil
}
