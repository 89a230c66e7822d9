package calculators

import (
	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/costing"
)

// Keys of the potentialSavings map emitted by the Advisor.
const (
	SavingRightSizing         = "rightSizing"
	SavingReservedInstances   = "reservedInstances"
	SavingStorageOptimization = "storageOptimization"
	SavingManagedServices     = "managedServices"
)

// AdvisorRates holds the rule thresholds and the savings rate paired
// with each recommendation. Utilization thresholds are percentages,
// rates are fractions of the matching bill line.
type AdvisorRates struct {
	LowUtilizationPct    float64
	SteadyUtilizationPct float64
	LowStorageRatio      float64
	RightsizingRate      float64
	ReservedRate         float64
	StorageTieringRate   float64
	ManagedDatabaseRate  float64
}

// DefaultAdvisorRates is the stock rule card used when no override is provided.
var DefaultAdvisorRates = AdvisorRates{
	LowUtilizationPct:    30,
	SteadyUtilizationPct: 70,
	LowStorageRatio:      0.5,
	RightsizingRate:      0.35,
	ReservedRate:         0.40,
	StorageTieringRate:   0.20,
	ManagedDatabaseRate:  0.15,
}

// Advisor inspects a priced server and suggests cost optimizations,
// each paired with an estimated monthly savings amount.
type Advisor struct {
	rates AdvisorRates
}

// AdvisorOption is a functional option for configuring an Advisor.
type AdvisorOption func(*Advisor)

// WithAdvisorRates replaces the stock rule card.
func WithAdvisorRates(rates AdvisorRates) AdvisorOption {
	return func(a *Advisor) {
		a.rates = rates
	}
}

// NewAdvisor creates an Advisor with default settings.
func NewAdvisor(opts ...AdvisorOption) *Advisor {
	res := Advisor{
		rates: DefaultAdvisorRates,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Advise runs the optimization rules against the server and its priced
// lines. It returns nil when no rule fires, so callers can attach the
// result directly to the omitempty optimization field.
func (a *Advisor) Advise(server api.ServerRecord, lines map[string]costing.CostLine) *api.Optimization {
	if server.Metrics == nil || server.Metrics.CPU == nil || server.Metrics.Storage == nil {
		return nil
	}

	recommendations := []string{}
	savings := map[string]float64{}

	utilization := server.Metrics.CPU.Utilization
	compute := lines[ComputeName].MonthlyUSD
	switch {
	case utilization < a.rates.LowUtilizationPct:
		recommendations = append(recommendations, "Right-size the instance: observed CPU utilization is low")
		savings[SavingRightSizing] = roundCents(compute * a.rates.RightsizingRate)
	case utilization <= a.rates.SteadyUtilizationPct:
		recommendations = append(recommendations, "Use Reserved Instances for predictable workloads")
		savings[SavingReservedInstances] = roundCents(compute * a.rates.ReservedRate)
	}

	storage := server.Metrics.Storage
	if storage.Used < storage.Total*a.rates.LowStorageRatio {
		recommendations = append(recommendations, "Optimize storage with lifecycle policies")
		savings[SavingStorageOptimization] = roundCents(lines[StorageName].MonthlyUSD * a.rates.StorageTieringRate)
	}

	if hasDatabaseApplication(server) {
		recommendations = append(recommendations, "Move self-managed databases to a managed database service")
		savings[SavingManagedServices] = roundCents(lines[DatabaseName].MonthlyUSD * a.rates.ManagedDatabaseRate)
	}

	if len(recommendations) == 0 {
		return nil
	}

	return &api.Optimization{
		Recommendations:  recommendations,
		PotentialSavings: savings,
	}
}
