package store

import (
	"context"
	"errors"
	"time"

	"github.com/fleetforge/migration-compass/internal/store/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Plan interface {
	List(ctx context.Context, filter *PlanQueryFilter, opts *PlanQueryOptions) (model.PlanList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Plan, error)
	Create(ctx context.Context, plan model.Plan) (*model.Plan, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	Count(ctx context.Context) (int, error)
	InitialMigration(ctx context.Context) error
}

type PlanStore struct {
	db *gorm.DB
}

// Make sure we conform to Plan interface
var _ Plan = (*PlanStore)(nil)

func NewPlanStore(db *gorm.DB) Plan {
	return &PlanStore{db: db}
}

func (p *PlanStore) InitialMigration(ctx context.Context) error {
	return p.getDB(ctx).AutoMigrate(&model.Plan{})
}

func (p *PlanStore) List(ctx context.Context, filter *PlanQueryFilter, opts *PlanQueryOptions) (model.PlanList, error) {
	var plans model.PlanList
	tx := p.getDB(ctx).Model(&plans).Order("created_at DESC")

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

	result := tx.Find(&plans)
	if result.Error != nil {
		return nil, result.Error
	}
	return plans, nil
}

func (p *PlanStore) Get(ctx context.Context, id uuid.UUID) (*model.Plan, error) {
	var plan model.Plan
	result := p.getDB(ctx).First(&plan, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &plan, nil
}

func (p *PlanStore) Create(ctx context.Context, plan model.Plan) (*model.Plan, error) {
	result := p.getDB(ctx).Clauses(clause.Returning{}).Create(&plan)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &plan, nil
}

func (p *PlanStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := p.getDB(ctx).Unscoped().Delete(&model.Plan{}, "id = ?", id.String())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}

// DeleteExpired removes plans whose retention window has passed and
// returns how many rows went away.
func (p *PlanStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := p.getDB(ctx).Unscoped().Where("expires_at <= ?", now).Delete(&model.Plan{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (p *PlanStore) Count(ctx context.Context) (int, error) {
	var total int64
	if err := p.getDB(ctx).Model(&model.Plan{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}

func (p *PlanStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return p.db
}
