package complexity

import (
	"math"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
)

// Default scoring policy. Weights blend the three pressure factors and
// must sum to 1; saturation points mark where a factor maxes out.
const (
	DefaultResourceWeight    = 0.45
	DefaultApplicationWeight = 0.20
	DefaultDependencyWeight  = 0.35

	DefaultLowThreshold  = 4.0
	DefaultHighThreshold = 7.0

	appTypeSaturation   = 4.0
	appCountSaturation  = 8.0
	depWeightSaturation = 2.0
)

var criticalityWeights = map[api.Criticality]float64{
	api.CriticalityLow:      0.25,
	api.CriticalityMedium:   0.5,
	api.CriticalityHigh:     0.75,
	api.CriticalityCritical: 1.0,
}

var levelDescriptions = map[api.ComplexityLevel]string{
	api.ComplexityLow:    "Low complexity - suitable for lift-and-shift migration",
	api.ComplexityMedium: "Medium complexity - may require some replatforming work",
	api.ComplexityHigh:   "High complexity - requires careful planning and significant refactoring",
}

type Option func(a *Analyzer)

func WithWeights(resource, application, dependency float64) Option {
	return func(a *Analyzer) {
		a.resourceWeight = resource
		a.applicationWeight = application
		a.dependencyWeight = dependency
	}
}

func WithThresholds(low, high float64) Option {
	return func(a *Analyzer) {
		a.lowThreshold = low
		a.highThreshold = high
	}
}

// Analyzer scores how hard a server is to migrate. Scoring is a pure
// function of the record: the same input always yields the same score.
type Analyzer struct {
	resourceWeight    float64
	applicationWeight float64
	dependencyWeight  float64
	lowThreshold      float64
	highThreshold     float64
}

func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		resourceWeight:    DefaultResourceWeight,
		applicationWeight: DefaultApplicationWeight,
		dependencyWeight:  DefaultDependencyWeight,
		lowThreshold:      DefaultLowThreshold,
		highThreshold:     DefaultHighThreshold,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze computes the complexity score, level and description for a
// single server. The emitted score carries one decimal and the level is
// derived from the rounded value, so a reader can reproduce the level
// from the report alone.
func (a *Analyzer) Analyze(server api.ServerRecord) (api.ComplexityResult, error) {
	if err := ValidateMetrics(server); err != nil {
		return api.ComplexityResult{}, err
	}

	resource := a.resourceFactor(server.Metrics)
	application := a.applicationFactor(server.Applications)
	dependency := a.dependencyFactor(server.Dependencies)

	raw := 10 * clamp01(a.resourceWeight*resource+a.applicationWeight*application+a.dependencyWeight*dependency)
	score := math.Round(raw*10) / 10

	level := a.levelFor(score)

	return api.ComplexityResult{
		Score:       score,
		Level:       level,
		Description: levelDescriptions[level],
	}, nil
}

func (a *Analyzer) levelFor(score float64) api.ComplexityLevel {
	switch {
	case score < a.lowThreshold:
		return api.ComplexityLow
	case score < a.highThreshold:
		return api.ComplexityMedium
	default:
		return api.ComplexityHigh
	}
}

// resourceFactor averages cpu, memory and storage pressure, each
// normalized to [0,1].
func (a *Analyzer) resourceFactor(m *api.ServerMetrics) float64 {
	cpu := m.CPU.Utilization / 100
	mem := m.Memory.Used / m.Memory.Total
	stor := m.Storage.Used / m.Storage.Total
	return clamp01((cpu + mem + stor) / 3)
}

// applicationFactor blends stack diversity (distinct application types)
// with sheer application count, diversity weighted heavier.
func (a *Analyzer) applicationFactor(apps []api.Application) float64 {
	if len(apps) == 0 {
		return 0
	}

	types := make(map[string]struct{})
	for _, app := range apps {
		types[app.Type] = struct{}{}
	}

	diversity := math.Min(float64(len(types))/appTypeSaturation, 1)
	volume := math.Min(float64(len(apps))/appCountSaturation, 1)
	return clamp01(0.6*diversity + 0.4*volume)
}

// dependencyFactor sums criticality weights and saturates at
// depWeightSaturation, i.e. two critical dependencies max it out.
func (a *Analyzer) dependencyFactor(deps []api.Dependency) float64 {
	var total float64
	for _, dep := range deps {
		w, ok := criticalityWeights[dep.Criticality]
		if !ok {
			w = criticalityWeights[api.CriticalityLow]
		}
		total += w
	}
	return clamp01(total / depWeightSaturation)
}

// ValidateMetrics rejects records the scoring model cannot price:
// missing metric blocks, non-positive capacities or out-of-range
// utilization.
func ValidateMetrics(server api.ServerRecord) error {
	if server.ServerID == "" {
		return &api.ValidationError{Field: "serverId", Reason: "must not be empty"}
	}
	if server.Metrics == nil {
		return &api.ValidationError{ServerID: server.ServerID, Field: "metrics", Reason: "block is required"}
	}
	if server.Metrics.CPU == nil {
		return &api.ValidationError{ServerID: server.ServerID, Field: "metrics.cpu", Reason: "block is required"}
	}
	if server.Metrics.Memory == nil {
		return &api.ValidationError{ServerID: server.ServerID, Field: "metrics.memory", Reason: "block is required"}
	}
	if server.Metrics.Storage == nil {
		return &api.ValidationError{ServerID: server.ServerID, Field: "metrics.storage", Reason: "block is required"}
	}
	if server.Metrics.CPU.Cores < 1 {
		return &api.ValidationError{ServerID: server.ServerID, Field: "metrics.cpu.cores", Reason: "must be at least 1"}
	}
	if server.Metrics.CPU.Utilization < 0 || server.Metrics.CPU.Utilization > 100 {
		return &api.ValidationError{ServerID: server.ServerID, Field: "metrics.cpu.utilization", Reason: "must be between 0 and 100"}
	}
	if server.Metrics.Memory.Total <= 0 {
		return &api.ValidationError{ServerID: server.ServerID, Field: "metrics.memory.total", Reason: "must be positive"}
	}
	if server.Metrics.Memory.Used < 0 || server.Metrics.Memory.Used > server.Metrics.Memory.Total {
		return &api.ValidationError{ServerID: server.ServerID, Field: "metrics.memory.used", Reason: "must be between 0 and total"}
	}
	if server.Metrics.Storage.Total <= 0 {
		return &api.ValidationError{ServerID: server.ServerID, Field: "metrics.storage.total", Reason: "must be positive"}
	}
	if server.Metrics.Storage.Used < 0 || server.Metrics.Storage.Used > server.Metrics.Storage.Total {
		return &api.ValidationError{ServerID: server.ServerID, Field: "metrics.storage.used", Reason: "must be between 0 and total"}
	}
	if server.Metrics.Network != nil && server.Metrics.Network.Bandwidth < 0 {
		return &api.ValidationError{ServerID: server.ServerID, Field: "metrics.network.bandwidth", Reason: "must not be negative"}
	}
	return nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
