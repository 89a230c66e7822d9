package v1alpha1

// ComplexityLevel classifies how hard a server is to migrate.
type ComplexityLevel string

const (
	ComplexityLow    ComplexityLevel = "low"
	ComplexityMedium ComplexityLevel = "medium"
	ComplexityHigh   ComplexityLevel = "high"
)

// StrategyType is one of the closed set of migration approaches.
type StrategyType string

const (
	StrategyRehost     StrategyType = "rehost"
	StrategyReplatform StrategyType = "replatform"
	StrategyRefactor   StrategyType = "refactor"
)

// RiskLevel grades a strategy or a phase risk.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Criticality ranks how important a dependency is to a server's operation.
type Criticality string

const (
	CriticalityLow      Criticality = "low"
	CriticalityMedium   Criticality = "medium"
	CriticalityHigh     Criticality = "high"
	CriticalityCritical Criticality = "critical"
)

// DependencyType names the kind of resource a server depends on.
type DependencyType string

const (
	DependencyDatabase  DependencyType = "database"
	DependencyCache     DependencyType = "cache"
	DependencyMessaging DependencyType = "messaging"
	DependencyStorage   DependencyType = "storage"
	DependencyOther     DependencyType = "other"
)

// CPUMetrics holds provisioned cores and the observed utilization percentage.
type CPUMetrics struct {
	Cores       int     `json:"cores"`
	Utilization float64 `json:"utilization"`
}

// MemoryMetrics holds provisioned and used memory in MB.
type MemoryMetrics struct {
	Total float64 `json:"total"`
	Used  float64 `json:"used"`
}

// StorageMetrics holds provisioned and used storage in MB.
type StorageMetrics struct {
	Total float64 `json:"total"`
	Used  float64 `json:"used"`
}

// NetworkMetrics holds the provisioned bandwidth in Mbps.
type NetworkMetrics struct {
	Bandwidth float64 `json:"bandwidth"`
}

// ServerMetrics groups the resource metrics of a discovered server.
// The cpu, memory and storage blocks are required; pointers keep a
// missing block distinguishable from an all-zero one so validation can
// reject it instead of silently understating risk.
type ServerMetrics struct {
	CPU     *CPUMetrics     `json:"cpu"`
	Memory  *MemoryMetrics  `json:"memory"`
	Storage *StorageMetrics `json:"storage"`
	Network *NetworkMetrics `json:"network,omitempty"`
}

// Application describes one piece of software running on a server.
type Application struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Type    string `json:"type"`
	Status  string `json:"status"`
}

// Dependency describes a resource a server depends on. When Name equals
// another record's serverId or serverName the dependency references that
// server and orders the migration; any other name is an external resource.
type Dependency struct {
	Name        string         `json:"name"`
	Type        DependencyType `json:"type"`
	Criticality Criticality    `json:"criticality"`
}

// ServerRecord is the canonical representation of a discovered server.
// It is immutable input to the planning pipeline.
type ServerRecord struct {
	ServerID     string         `json:"serverId"`
	ServerName   string         `json:"serverName"`
	ServerType   string         `json:"serverType"`
	Metrics      *ServerMetrics `json:"metrics"`
	Applications []Application  `json:"applications,omitempty"`
	Dependencies []Dependency   `json:"dependencies,omitempty"`
}

// ComplexityResult scores a server's migration difficulty on a 0..10 scale.
type ComplexityResult struct {
	Score       float64         `json:"score"`
	Level       ComplexityLevel `json:"level"`
	Description string          `json:"description"`
}

// MigrationStrategy is the selected approach and its risk grade for one server.
type MigrationStrategy struct {
	Strategy    StrategyType `json:"strategy"`
	RiskLevel   RiskLevel    `json:"risk_level"`
	Description string       `json:"description"`
}

// CostSummary carries the headline numbers of a cost estimate. ROIMonths
// is nil when monthly savings are not positive: payback cannot be
// computed and consumers must render that state explicitly.
type CostSummary struct {
	CurrentMonthlyCost   float64  `json:"currentMonthlyCost"`
	ProjectedMonthlyCost float64  `json:"projectedMonthlyCost"`
	MonthlySavings       float64  `json:"monthlySavings"`
	MigrationCost        float64  `json:"migrationCost"`
	ROIMonths            *float64 `json:"roiMonths"`
	ThreeYearSavings     float64  `json:"threeYearSavings"`
}

// Optimization pairs advisor recommendations with the estimated monthly
// savings of each named opportunity.
type Optimization struct {
	Recommendations  []string           `json:"recommendations"`
	PotentialSavings map[string]float64 `json:"potentialSavings"`
}

// CostEstimate is the per-server financial projection.
type CostEstimate struct {
	Summary      CostSummary   `json:"summary"`
	Optimization *Optimization `json:"optimization,omitempty"`
}

// PhaseRisk is one identified risk attached to a roadmap phase.
type PhaseRisk struct {
	Description string    `json:"description"`
	Severity    RiskLevel `json:"severity"`
}

// RoadmapPhase is one totally-ordered slice of the migration timeline.
// Dates are "2006-01-02" strings; EndDate is always after StartDate and
// the next phase starts on this phase's end date.
type RoadmapPhase struct {
	Name       string      `json:"name"`
	Duration   string      `json:"duration"`
	StartDate  string      `json:"startDate"`
	EndDate    string      `json:"endDate"`
	Tasks      []string    `json:"tasks"`
	Risks      []PhaseRisk `json:"risks"`
	Milestones []string    `json:"milestones"`
}

// ProjectSummary aggregates the fleet plan. CriticalPath is the ordered
// list of serverIds forming the longest cumulative-effort dependency chain.
type ProjectSummary struct {
	Duration     string   `json:"duration"`
	TotalServers int      `json:"totalServers"`
	TotalEffort  float64  `json:"totalEffort"`
	CriticalPath []string `json:"criticalPath"`
}

// ServerAnalysis bundles the per-server pipeline outputs.
type ServerAnalysis struct {
	ServerID          string            `json:"serverId"`
	ServerName        string            `json:"serverName"`
	Complexity        ComplexityResult  `json:"complexity"`
	MigrationStrategy MigrationStrategy `json:"migrationStrategy"`
	CostEstimate      CostEstimate      `json:"costEstimate"`
}

// PlanWarning reports a server excluded from the roadmap and why.
type PlanWarning struct {
	ServerID string `json:"serverId"`
	Message  string `json:"message"`
}

// MigrationPlan is the full fleet plan emitted by one pipeline run.
type MigrationPlan struct {
	Servers        []ServerAnalysis `json:"servers"`
	Timeline       []RoadmapPhase   `json:"timeline"`
	ProjectSummary ProjectSummary   `json:"projectSummary"`
	Warnings       []PlanWarning    `json:"warnings,omitempty"`
}

// InventoryForm is the upload envelope for a fleet snapshot.
type InventoryForm struct {
	Name    string         `json:"name"`
	Servers []ServerRecord `json:"servers"`
}

// Inventory is a stored fleet snapshot.
type Inventory struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Servers   []ServerRecord `json:"servers"`
	CreatedAt string         `json:"createdAt,omitempty"`
}

// PlanForm requests a plan for a stored inventory. StartDate is a
// "2006-01-02" string; empty means today.
type PlanForm struct {
	InventoryID string `json:"inventoryId"`
	StartDate   string `json:"startDate,omitempty"`
}

// Plan is a stored migration plan.
type Plan struct {
	ID          string        `json:"id"`
	InventoryID string        `json:"inventoryId"`
	StartDate   string        `json:"startDate"`
	Result      MigrationPlan `json:"result"`
	CreatedAt   string        `json:"createdAt,omitempty"`
	ExpiresAt   string        `json:"expiresAt,omitempty"`
}

// Error is the API error envelope.
type Error struct {
	Error     string  `json:"error"`
	RequestID *string `json:"requestId,omitempty"`
}
