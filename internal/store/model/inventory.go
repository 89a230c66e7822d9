package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
)

type Inventory struct {
	ID        uuid.UUID `gorm:"primaryKey;"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt *time.Time
	Name      string                         `gorm:"not null;uniqueIndex:inventories_name_idx"`
	Servers   *JSONField[[]api.ServerRecord] `gorm:"type:jsonb;not null"`
	Plans     []Plan                         `gorm:"foreignKey:InventoryID;references:ID;constraint:OnDelete:CASCADE;"`
}

type InventoryList []Inventory

func (i Inventory) String() string {
	val, _ := json.Marshal(i)
	return string(val)
}
