package config

import (
	"time"

	"github.com/IBM/sarama"
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
	Policy   *policyConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"compass"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address         string `envconfig:"MIGRATION_COMPASS_ADDRESS" default:":3443"`
	MetricsAddress  string `envconfig:"MIGRATION_COMPASS_METRICS_ADDRESS" default:":8080"`
	BaseUrl         string `envconfig:"MIGRATION_COMPASS_BASE_URL" default:"http://localhost:3443"`
	LogLevel        string `envconfig:"MIGRATION_COMPASS_LOG_LEVEL" default:"info"`
	MigrationFolder string `envconfig:"MIGRATION_COMPASS_MIGRATIONS_FOLDER" default:""`
	Kafka           kafkaConfig
}

type kafkaConfig struct {
	Brokers  []string            `envconfig:"MIGRATION_COMPASS_KAFKA_BROKERS" default:""`
	Topic    string              `envconfig:"MIGRATION_COMPASS_KAFKA_TOPIC" default:""`
	Version  sarama.KafkaVersion `envconfig:"MIGRATION_COMPASS_KAFKA_VERSION" default:""`
	ClientID string              `envconfig:"MIGRATION_COMPASS_KAFKA_CLIENT_ID" default:"migration-compass"`

	SaramaConfig *sarama.Config
}

// policyConfig exposes the planning policy parameters. The scoring
// weights, effort constants and unit prices are deliberate policy, not
// derived values; defaults are documented here and overridable per
// deployment.
type policyConfig struct {
	Workers    int `envconfig:"MIGRATION_COMPASS_WORKERS" default:"4"`
	Complexity complexityPolicy
	Effort     effortPolicy
	Pricing    pricingPolicy
	Advisor    advisorPolicy
	Retention  retentionPolicy
}

// complexityPolicy holds the scoring weights (summing to 1) and the
// level thresholds: score < LowThreshold is low, below HighThreshold is
// medium, at or above is high.
type complexityPolicy struct {
	ResourceWeight    float64 `envconfig:"MIGRATION_COMPASS_COMPLEXITY_RESOURCE_WEIGHT" default:"0.45"`
	ApplicationWeight float64 `envconfig:"MIGRATION_COMPASS_COMPLEXITY_APPLICATION_WEIGHT" default:"0.20"`
	DependencyWeight  float64 `envconfig:"MIGRATION_COMPASS_COMPLEXITY_DEPENDENCY_WEIGHT" default:"0.35"`
	LowThreshold      float64 `envconfig:"MIGRATION_COMPASS_COMPLEXITY_LOW_THRESHOLD" default:"4.0"`
	HighThreshold     float64 `envconfig:"MIGRATION_COMPASS_COMPLEXITY_HIGH_THRESHOLD" default:"7.0"`
}

// effortPolicy sizes per-server migration effort and the fixed bookend
// phases. Effort hours = (BaseHours + HoursPerScorePoint × score) × risk
// multiplier; wave durations assume HoursPerDay effective hours a day.
type effortPolicy struct {
	BaseHours          float64 `envconfig:"MIGRATION_COMPASS_EFFORT_BASE_HOURS" default:"16"`
	HoursPerScorePoint float64 `envconfig:"MIGRATION_COMPASS_EFFORT_HOURS_PER_POINT" default:"8"`
	HoursPerDay        float64 `envconfig:"MIGRATION_COMPASS_EFFORT_HOURS_PER_DAY" default:"8"`
	AssessmentBaseDays float64 `envconfig:"MIGRATION_COMPASS_EFFORT_ASSESSMENT_DAYS" default:"12"`
	CutoverBaseDays    float64 `envconfig:"MIGRATION_COMPASS_EFFORT_CUTOVER_DAYS" default:"10"`
}

// pricingPolicy holds the on-prem cost proxy units and the one-time
// migration cost knobs. Cloud instance catalogs live with their
// calculators; these are the per-unit scalars.
type pricingPolicy struct {
	HardwareCost           float64 `envconfig:"MIGRATION_COMPASS_PRICING_HARDWARE_COST" default:"15000"`
	HardwareLifetimeMonths float64 `envconfig:"MIGRATION_COMPASS_PRICING_HARDWARE_LIFETIME_MONTHS" default:"36"`
	PowerCostPerKWh        float64 `envconfig:"MIGRATION_COMPASS_PRICING_POWER_COST_PER_KWH" default:"0.15"`
	KWPerCore              float64 `envconfig:"MIGRATION_COMPASS_PRICING_KW_PER_CORE" default:"0.1"`
	MaintenanceAnnualRate  float64 `envconfig:"MIGRATION_COMPASS_PRICING_MAINTENANCE_ANNUAL_RATE" default:"0.20"`
	DatacenterMonthly      float64 `envconfig:"MIGRATION_COMPASS_PRICING_DATACENTER_MONTHLY" default:"200"`
	OnPremStoragePerGB     float64 `envconfig:"MIGRATION_COMPASS_PRICING_ONPREM_STORAGE_PER_GB" default:"0.10"`
	LaborMonthly           float64 `envconfig:"MIGRATION_COMPASS_PRICING_LABOR_MONTHLY" default:"500"`
	MigrationBase          float64 `envconfig:"MIGRATION_COMPASS_PRICING_MIGRATION_BASE" default:"5000"`
	DataTransferPerGB      float64 `envconfig:"MIGRATION_COMPASS_PRICING_DATA_TRANSFER_PER_GB" default:"0.10"`
	TestingRate            float64 `envconfig:"MIGRATION_COMPASS_PRICING_TESTING_RATE" default:"0.20"`
	TrainingCost           float64 `envconfig:"MIGRATION_COMPASS_PRICING_TRAINING_COST" default:"1000"`
}

// advisorPolicy holds the optimization rule thresholds and the savings
// rates paired with each recommendation.
type advisorPolicy struct {
	LowUtilizationPct    float64 `envconfig:"MIGRATION_COMPASS_ADVISOR_LOW_UTILIZATION_PCT" default:"30"`
	SteadyUtilizationPct float64 `envconfig:"MIGRATION_COMPASS_ADVISOR_STEADY_UTILIZATION_PCT" default:"70"`
	LowStorageRatio      float64 `envconfig:"MIGRATION_COMPASS_ADVISOR_LOW_STORAGE_RATIO" default:"0.5"`
	RightsizingRate      float64 `envconfig:"MIGRATION_COMPASS_ADVISOR_RIGHTSIZING_RATE" default:"0.35"`
	ReservedRate         float64 `envconfig:"MIGRATION_COMPASS_ADVISOR_RESERVED_RATE" default:"0.40"`
	StorageTieringRate   float64 `envconfig:"MIGRATION_COMPASS_ADVISOR_STORAGE_TIERING_RATE" default:"0.20"`
	ManagedDatabaseRate  float64 `envconfig:"MIGRATION_COMPASS_ADVISOR_MANAGED_DATABASE_RATE" default:"0.15"`
}

// retentionPolicy controls how long stored plans live and how often the
// janitor sweeps expired ones.
type retentionPolicy struct {
	PlanTTL       time.Duration `envconfig:"MIGRATION_COMPASS_RETENTION_PLAN_TTL" default:"2160h"`
	SweepInterval time.Duration `envconfig:"MIGRATION_COMPASS_RETENTION_SWEEP_INTERVAL" default:"1h"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

// NewDefault builds a fresh config from the environment without
// touching the singleton. Used by tests.
func NewDefault() (*Config, error) {
	c := new(Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, err
	}
	return c, nil
}
