package store

import (
	"context"

	"github.com/fleetforge/migration-compass/internal/store/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	Inventory() Inventory
	Plan() Plan
	Seed() error
	Statistics(ctx context.Context) (model.FleetStats, error)
	Close() error
}

type DataStore struct {
	db        *gorm.DB
	inventory Inventory
	plan      Plan
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		inventory: NewInventoryStore(db),
		plan:      NewPlanStore(db),
		db:        db,
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db)
}

func (s *DataStore) Inventory() Inventory {
	return s.inventory
}

func (s *DataStore) Plan() Plan {
	return s.plan
}

func (s *DataStore) Statistics(ctx context.Context) (model.FleetStats, error) {
	inventories, err := s.Inventory().List(ctx, NewInventoryQueryFilter(), NewInventoryQueryOptions())
	if err != nil {
		return model.FleetStats{}, err
	}

	totalPlans, err := s.Plan().Count(ctx)
	if err != nil {
		return model.FleetStats{}, err
	}

	return model.NewFleetStats(inventories, totalPlans), nil
}

// Seed creates or refreshes the default sample fleet so a fresh
// deployment has an inventory to plan against.
func (s *DataStore) Seed() error {
	inventoryUuid := uuid.UUID{}

	tx, err := newTransaction(s.db)
	if err != nil {
		return err
	}

	inventory := model.Inventory{
		ID:      inventoryUuid,
		Name:    "sample-fleet",
		Servers: model.MakeJSONField(GenerateDefaultFleet()),
	}

	if err := tx.tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"servers"}),
	}).Create(&inventory).Error; err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
