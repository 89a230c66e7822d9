package mappers

import (
	"time"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/store/model"
)

const dateLayout = "2006-01-02"

func InventoryToApi(i model.Inventory) api.Inventory {
	inventory := api.Inventory{
		ID:        i.ID.String(),
		Name:      i.Name,
		CreatedAt: i.CreatedAt.Format(time.RFC3339),
	}
	if i.Servers != nil {
		inventory.Servers = i.Servers.Data
	}
	return inventory
}

func InventoryListToApi(inventories model.InventoryList) []api.Inventory {
	result := make([]api.Inventory, 0, len(inventories))
	for _, i := range inventories {
		result = append(result, InventoryToApi(i))
	}
	return result
}

func PlanToApi(p model.Plan) api.Plan {
	plan := api.Plan{
		ID:          p.ID.String(),
		InventoryID: p.InventoryID.String(),
		StartDate:   p.StartDate.Format(dateLayout),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		ExpiresAt:   p.ExpiresAt.Format(time.RFC3339),
	}
	if p.Result != nil {
		plan.Result = p.Result.Data
	}
	return plan
}

func PlanListToApi(plans model.PlanList) []api.Plan {
	result := make([]api.Plan, 0, len(plans))
	for _, p := range plans {
		result = append(result, PlanToApi(p))
	}
	return result
}
