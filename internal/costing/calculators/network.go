package calculators

import (
	"fmt"

	"github.com/fleetforge/migration-compass/internal/costing"
)

// NetworkName is the Engine result key for the data transfer line.
const NetworkName = "Data Transfer"

// NetworkRates holds the egress tier ladder and the inter-AZ unit
// cost. EgressShare and InterAZShare estimate monthly transfer volume
// as a fraction of the server's provisioned storage.
type NetworkRates struct {
	EgressShare  float64
	FreeTierGB   float64
	Tier1MaxGB   float64
	Tier1PerGB   float64
	Tier2MaxGB   float64
	Tier2PerGB   float64
	Tier3MaxGB   float64
	Tier3PerGB   float64
	InterAZShare float64
	InterAZPerGB float64
}

// DefaultNetworkRates is the stock pricing used when no override is provided.
var DefaultNetworkRates = NetworkRates{
	EgressShare:  0.20,
	FreeTierGB:   1,
	Tier1MaxGB:   10 * 1024,
	Tier1PerGB:   0.126,
	Tier2MaxGB:   50 * 1024,
	Tier2PerGB:   0.122,
	Tier3MaxGB:   150 * 1024,
	Tier3PerGB:   0.119,
	InterAZShare: 0.05,
	InterAZPerGB: 0.01,
}

// Compile-time assertion that Network implements the Calculator interface.
var _ costing.Calculator = (*Network)(nil)

// Network prices the monthly data transfer out of the cloud plus
// inter-AZ traffic for servers with declared dependencies.
type Network struct {
	rates NetworkRates
}

// NetworkOption is a functional option for configuring a Network calculator.
type NetworkOption func(*Network)

// WithNetworkRates replaces the stock rate card.
func WithNetworkRates(rates NetworkRates) NetworkOption {
	return func(n *Network) {
		n.rates = rates
	}
}

// NewNetwork creates a Network calculator with default settings.
func NewNetwork(opts ...NetworkOption) *Network {
	res := Network{
		rates: DefaultNetworkRates,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Name returns the human-readable name of this calculator.
func (c *Network) Name() string {
	return NetworkName
}

// Keys returns the list of parameter keys required by this calculator.
func (c *Network) Keys() []string {
	return []string{ParamStorageGB, ParamDependencyCount}
}

func (c *Network) Calculate(params map[string]costing.Param) (costing.CostLine, error) {
	storageGB, err := requireNonNegativeFloat(params, ParamStorageGB)
	if err != nil {
		return costing.CostLine{}, err
	}

	dependencyCount, err := requireInt(params, ParamDependencyCount)
	if err != nil {
		return costing.CostLine{}, err
	}
	if dependencyCount < 0 {
		return costing.CostLine{}, fmt.Errorf("parameter %q must not be negative, got %d", ParamDependencyCount, dependencyCount)
	}

	egressGB := storageGB * c.rates.EgressShare
	egress := c.egressCost(egressGB)

	var interAZ float64
	if dependencyCount > 0 {
		interAZ = storageGB * c.rates.InterAZShare * c.rates.InterAZPerGB
	}

	return costing.CostLine{
		MonthlyUSD: egress + interAZ,
		Reason: fmt.Sprintf("%.1f GB egress %.2f, inter-AZ %.2f",
			egressGB, egress, interAZ),
	}, nil
}

// egressCost walks the tier ladder: the first FreeTierGB is free, then
// each tier prices the gigabytes that fall inside it.
func (c *Network) egressCost(gb float64) float64 {
	tiers := []struct {
		upTo  float64
		perGB float64
	}{
		{c.rates.FreeTierGB, 0},
		{c.rates.Tier1MaxGB, c.rates.Tier1PerGB},
		{c.rates.Tier2MaxGB, c.rates.Tier2PerGB},
		{c.rates.Tier3MaxGB, c.rates.Tier3PerGB},
	}

	var cost float64
	prev := 0.0
	for _, t := range tiers {
		if gb <= prev {
			break
		}
		span := gb
		if span > t.upTo {
			span = t.upTo
		}
		cost += (span - prev) * t.perGB
		prev = t.upTo
	}
	if gb > prev {
		cost += (gb - prev) * c.rates.Tier3PerGB
	}

	return cost
}
