package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
)

type Plan struct {
	ID          uuid.UUID                     `gorm:"primaryKey;"`
	CreatedAt   time.Time                     `gorm:"not null"`
	InventoryID uuid.UUID                     `gorm:"not null;index:plans_inventory_id_idx"`
	StartDate   time.Time                     `gorm:"not null"`
	Result      *JSONField[api.MigrationPlan] `gorm:"type:jsonb;not null"`
	ExpiresAt   time.Time                     `gorm:"not null;index:plans_expires_at_idx"`
}

type PlanList []Plan

func (p Plan) String() string {
	val, _ := json.Marshal(p)
	return string(val)
}
