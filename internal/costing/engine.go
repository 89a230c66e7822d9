package costing

import "fmt"

// Engine orchestrates Calculator objects and aggregates their lines.
type Engine struct {
	calculators []Calculator
}

// NewEngine creates a new Engine with no calculators registered.
func NewEngine() *Engine {
	return &Engine{
		calculators: make([]Calculator, 0),
	}
}

// Register adds a Calculator to participate in the estimate.
// Calculators are executed in the order they are registered.
// Register panics if a calculator with the same Name() is already
// registered, as duplicate names would silently overwrite lines in Run.
func (e *Engine) Register(c Calculator) {
	for _, existing := range e.calculators {
		if existing.Name() == c.Name() {
			panic(fmt.Sprintf("costing: calculator %q already registered", c.Name()))
		}
	}
	e.calculators = append(e.calculators, c)
}

// Run executes all registered calculators against the provided params.
// Any calculator error aborts the whole run; partial bills are never
// returned.
func (e *Engine) Run(inputs []Param) (map[string]CostLine, error) {
	// Convert slice to map for lookups by Calculators
	paramMap := make(map[string]Param)
	for _, p := range inputs {
		paramMap[p.Key] = p
	}

	results := make(map[string]CostLine)
	for _, calc := range e.calculators {
		line, err := calc.Calculate(paramMap)
		if err != nil {
			return nil, fmt.Errorf("costing: %s: %w", calc.Name(), err)
		}
		results[calc.Name()] = line
	}
	return results, nil
}
