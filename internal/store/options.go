package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SortOrder int

const (
	Unsorted SortOrder = iota
	SortByID
	SortByCreatedTime
)

type BaseQuerier struct {
	QueryFn []func(tx *gorm.DB) *gorm.DB
}

type InventoryQueryFilter BaseQuerier

func NewInventoryQueryFilter() *InventoryQueryFilter {
	return &InventoryQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (f *InventoryQueryFilter) ByName(name string) *InventoryQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("name = ?", name)
	})
	return f
}

func (f *InventoryQueryFilter) ByNameLike(pattern string) *InventoryQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("name LIKE ?", "%"+pattern+"%")
	})
	return f
}

type InventoryQueryOptions BaseQuerier

func NewInventoryQueryOptions() *InventoryQueryOptions {
	return &InventoryQueryOptions{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (o *InventoryQueryOptions) WithSortOrder(sort SortOrder) *InventoryQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		switch sort {
		case SortByID:
			return tx.Order("id")
		case SortByCreatedTime:
			return tx.Order("created_at")
		default:
			return tx
		}
	})
	return o
}

func (o *InventoryQueryOptions) WithLimit(limit int) *InventoryQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Limit(limit)
	})
	return o
}

func (o *InventoryQueryOptions) WithOffset(offset int) *InventoryQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Offset(offset)
	})
	return o
}

type PlanQueryFilter BaseQuerier

func NewPlanQueryFilter() *PlanQueryFilter {
	return &PlanQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (f *PlanQueryFilter) ByInventoryID(id uuid.UUID) *PlanQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("inventory_id = ?", id)
	})
	return f
}

func (f *PlanQueryFilter) ExpiredBefore(t time.Time) *PlanQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("expires_at <= ?", t)
	})
	return f
}

type PlanQueryOptions BaseQuerier

func NewPlanQueryOptions() *PlanQueryOptions {
	return &PlanQueryOptions{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (o *PlanQueryOptions) WithLimit(limit int) *PlanQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Limit(limit)
	})
	return o
}

func (o *PlanQueryOptions) WithOffset(offset int) *PlanQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Offset(offset)
	})
	return o
}
