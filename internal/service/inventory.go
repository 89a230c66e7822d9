package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/events"
	"github.com/fleetforge/migration-compass/internal/service/mappers"
	"github.com/fleetforge/migration-compass/internal/store"
	"github.com/fleetforge/migration-compass/internal/store/model"
)

// InventoryService manages stored fleet snapshots.
type InventoryService struct {
	store       store.Store
	eventWriter *events.EventProducer
}

func NewInventoryService(store store.Store, eventWriter *events.EventProducer) *InventoryService {
	return &InventoryService{
		store:       store,
		eventWriter: eventWriter,
	}
}

func (is *InventoryService) ListInventories(ctx context.Context, filter *store.InventoryQueryFilter) ([]api.Inventory, error) {
	inventories, err := is.store.Inventory().List(ctx, filter, store.NewInventoryQueryOptions().WithSortOrder(store.SortByCreatedTime))
	if err != nil {
		return nil, fmt.Errorf("failed to list inventories: %w", err)
	}
	return mappers.InventoryListToApi(inventories), nil
}

func (is *InventoryService) GetInventory(ctx context.Context, id uuid.UUID) (*api.Inventory, error) {
	inventory, err := is.store.Inventory().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrInventoryNotFound(id)
		}
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	result := mappers.InventoryToApi(*inventory)
	return &result, nil
}

func (is *InventoryService) CreateInventory(ctx context.Context, form mappers.InventoryCreateForm) (*api.Inventory, error) {
	inventory, err := is.store.Inventory().Create(ctx, form.ToModel())
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, NewErrDuplicateName(form.Name)
		}
		return nil, fmt.Errorf("failed to create inventory: %w", err)
	}

	is.emitInventoryCreated(ctx, *inventory)

	result := mappers.InventoryToApi(*inventory)
	return &result, nil
}

func (is *InventoryService) DeleteInventory(ctx context.Context, id uuid.UUID) error {
	if err := is.store.Inventory().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete inventory: %w", err)
	}
	return nil
}

func (is *InventoryService) emitInventoryCreated(ctx context.Context, inventory model.Inventory) {
	servers := 0
	if inventory.Servers != nil {
		servers = len(inventory.Servers.Data)
	}
	event := events.InventoryEvent{
		InventoryID: inventory.ID.String(),
		Name:        inventory.Name,
		Servers:     servers,
	}

	if err := is.eventWriter.Emit(ctx, events.InventoryMessageKind, event); err != nil {
		zap.S().Named("inventory_service").Errorw("failed to emit event", "error", err, "event_kind", events.InventoryMessageKind)
	}
}
