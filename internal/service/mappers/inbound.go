package mappers

import (
	"time"

	"github.com/google/uuid"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/store/model"
)

type InventoryCreateForm struct {
	Name    string
	Servers []api.ServerRecord
}

func (f InventoryCreateForm) ToModel() model.Inventory {
	return model.Inventory{
		ID:      uuid.New(),
		Name:    f.Name,
		Servers: model.MakeJSONField(f.Servers),
	}
}

type PlanCreateForm struct {
	InventoryID uuid.UUID
	StartDate   time.Time
}

func (f PlanCreateForm) ToModel(result api.MigrationPlan, expiresAt time.Time) model.Plan {
	return model.Plan{
		ID:          uuid.New(),
		InventoryID: f.InventoryID,
		StartDate:   f.StartDate,
		Result:      model.MakeJSONField(result),
		ExpiresAt:   expiresAt,
	}
}
