package costing

// Calculator prices one specific slice of the estimate (e.g. "cloud
// compute", "network transfer").
type Calculator interface {
	// Name returns the human-readable name of this calculator, used as the key in Engine results.
	Name() string
	// Keys returns the list of Param keys this calculator depends on.
	Keys() []string
	// Calculate prices the slice using the provided params and returns a CostLine or an error.
	Calculate(params map[string]Param) (CostLine, error)
}

// Param represents an input for a Calculator (derived from the
// inventory record or from upstream analysis).
type Param struct {
	Key   string      // Unique identifier (e.g., "storage_gb")
	Value interface{} // The actual value (e.g., 1000, "rehost", 0.8)
}

// CostLine is the result of a Calculator run. MonthlyUSD recurs every
// month; OneTimeUSD is charged once during the migration.
type CostLine struct {
	MonthlyUSD float64
	OneTimeUSD float64
	Reason     string
}
