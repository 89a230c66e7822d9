package calculators

import (
	"fmt"

	"github.com/fleetforge/migration-compass/internal/costing"
)

// StorageName is the Engine result key for the cloud storage line.
const StorageName = "Cloud Storage"

// StorageRates holds the unit costs for block, object and backup
// storage. Block volumes above the gp3 ceiling are priced as
// provisioned-IOPS volumes.
type StorageRates struct {
	GP3PerGB        float64
	GP3CeilingGB    float64
	IO1PerGB        float64
	IOPSPerGB       float64
	IO1PerIOPS      float64
	ObjectPerGB     float64
	ObjectShare     float64
	BackupPerGB     float64
	BackupRetrieval float64
	BackupShare     float64
}

// DefaultStorageRates is the stock pricing used when no override is provided.
var DefaultStorageRates = StorageRates{
	GP3PerGB:        0.0924,
	GP3CeilingGB:    150,
	IO1PerGB:        0.1425,
	IOPSPerGB:       30,
	IO1PerIOPS:      0.0657,
	ObjectPerGB:     0.0230,
	ObjectShare:     0.30,
	BackupPerGB:     0.0125,
	BackupRetrieval: 0.01,
	BackupShare:     0.50,
}

// Compile-time assertion that Storage implements the Calculator interface.
var _ costing.Calculator = (*Storage)(nil)

// Storage prices the provisioned capacity in the cloud: a block volume
// sized to the server, an object tier for the cold share, and backups.
type Storage struct {
	rates StorageRates
}

// StorageOption is a functional option for configuring a Storage calculator.
type StorageOption func(*Storage)

// WithStorageRates replaces the stock rate card.
func WithStorageRates(rates StorageRates) StorageOption {
	return func(s *Storage) {
		s.rates = rates
	}
}

// NewStorage creates a Storage calculator with default settings.
func NewStorage(opts ...StorageOption) *Storage {
	res := Storage{
		rates: DefaultStorageRates,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Name returns the human-readable name of this calculator.
func (c *Storage) Name() string {
	return StorageName
}

// Keys returns the list of parameter keys required by this calculator.
func (c *Storage) Keys() []string {
	return []string{ParamStorageGB}
}

func (c *Storage) Calculate(params map[string]costing.Param) (costing.CostLine, error) {
	storageGB, err := requireNonNegativeFloat(params, ParamStorageGB)
	if err != nil {
		return costing.CostLine{}, err
	}

	var block float64
	volume := "gp3"
	if storageGB <= c.rates.GP3CeilingGB {
		block = storageGB * c.rates.GP3PerGB
	} else {
		volume = "io1"
		iops := storageGB * c.rates.IOPSPerGB
		block = storageGB*c.rates.IO1PerGB + iops*c.rates.IO1PerIOPS
	}

	object := storageGB * c.rates.ObjectShare * c.rates.ObjectPerGB
	backup := storageGB * c.rates.BackupShare * (c.rates.BackupPerGB + c.rates.BackupRetrieval)

	return costing.CostLine{
		MonthlyUSD: block + object + backup,
		Reason: fmt.Sprintf("%.0f GB as %s %.2f, object tier %.2f, backup %.2f",
			storageGB, volume, block, object, backup),
	}, nil
}
