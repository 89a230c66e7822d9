package store

import (
	"context"
	"errors"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/store/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Inventory interface {
	List(ctx context.Context, filter *InventoryQueryFilter, opts *InventoryQueryOptions) (model.InventoryList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Inventory, error)
	Create(ctx context.Context, inventory model.Inventory) (*model.Inventory, error)
	Update(ctx context.Context, id uuid.UUID, name *string, servers []api.ServerRecord) (*model.Inventory, error)
	Delete(ctx context.Context, id uuid.UUID) error
	InitialMigration(ctx context.Context) error
}

type InventoryStore struct {
	db *gorm.DB
}

// Make sure we conform to Inventory interface
var _ Inventory = (*InventoryStore)(nil)

func NewInventoryStore(db *gorm.DB) Inventory {
	return &InventoryStore{db: db}
}

func (i *InventoryStore) InitialMigration(ctx context.Context) error {
	return i.getDB(ctx).AutoMigrate(&model.Inventory{})
}

func (i *InventoryStore) List(ctx context.Context, filter *InventoryQueryFilter, opts *InventoryQueryOptions) (model.InventoryList, error) {
	var inventories model.InventoryList
	tx := i.getDB(ctx).Model(&inventories)

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	if opts != nil {
		for _, fn := range opts.QueryFn {
			tx = fn(tx)
		}
	}

	result := tx.Find(&inventories)
	if result.Error != nil {
		return nil, result.Error
	}
	return inventories, nil
}

func (i *InventoryStore) Get(ctx context.Context, id uuid.UUID) (*model.Inventory, error) {
	var inventory model.Inventory
	result := i.getDB(ctx).First(&inventory, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &inventory, nil
}

func (i *InventoryStore) Create(ctx context.Context, inventory model.Inventory) (*model.Inventory, error) {
	result := i.getDB(ctx).Clauses(clause.Returning{}).Create(&inventory)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &inventory, nil
}

func (i *InventoryStore) Update(ctx context.Context, id uuid.UUID, name *string, servers []api.ServerRecord) (*model.Inventory, error) {
	var inventory model.Inventory
	if err := i.getDB(ctx).First(&inventory, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	if name != nil {
		inventory.Name = *name
	}
	if servers != nil {
		inventory.Servers = model.MakeJSONField(servers)
	}

	if err := i.getDB(ctx).Model(&inventory).Updates(&inventory).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}

	return &inventory, nil
}

func (i *InventoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := i.getDB(ctx).Unscoped().Delete(&model.Inventory{}, "id = ?", id.String())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}

func (i *InventoryStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return i.db
}
