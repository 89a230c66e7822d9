package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/events"
	"github.com/fleetforge/migration-compass/internal/planner"
	"github.com/fleetforge/migration-compass/internal/service/mappers"
	"github.com/fleetforge/migration-compass/internal/store"
)

// PlanService builds migration plans from stored inventories and keeps
// the results until their retention window runs out.
type PlanService struct {
	store       store.Store
	planner     *planner.Planner
	eventWriter *events.EventProducer
	planTTL     time.Duration
}

func NewPlanService(store store.Store, planner *planner.Planner, eventWriter *events.EventProducer, planTTL time.Duration) *PlanService {
	return &PlanService{
		store:       store,
		planner:     planner,
		eventWriter: eventWriter,
		planTTL:     planTTL,
	}
}

func (ps *PlanService) ListPlans(ctx context.Context, filter *store.PlanQueryFilter) ([]api.Plan, error) {
	plans, err := ps.store.Plan().List(ctx, filter, store.NewPlanQueryOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return mappers.PlanListToApi(plans), nil
}

func (ps *PlanService) GetPlan(ctx context.Context, id uuid.UUID) (*api.Plan, error) {
	plan, err := ps.store.Plan().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrPlanNotFound(id)
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	result := mappers.PlanToApi(*plan)
	return &result, nil
}

// CreatePlan runs the planning pipeline over the referenced inventory
// snapshot and stores the result. A cyclic dependency graph surfaces as
// a roadmap.CyclicDependencyError for the handler to report.
func (ps *PlanService) CreatePlan(ctx context.Context, form mappers.PlanCreateForm) (*api.Plan, error) {
	inventory, err := ps.store.Inventory().Get(ctx, form.InventoryID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrInventoryNotFound(form.InventoryID)
		}
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	if inventory.Servers == nil || len(inventory.Servers.Data) == 0 {
		return nil, NewErrInvalidRequest("inventory %s has no servers", form.InventoryID)
	}

	if form.StartDate.IsZero() {
		form.StartDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	result, err := ps.planner.Build(ctx, inventory.Servers.Data, form.StartDate)
	if err != nil {
		return nil, err
	}

	plan, err := ps.store.Plan().Create(ctx, form.ToModel(result, time.Now().Add(ps.planTTL)))
	if err != nil {
		return nil, fmt.Errorf("failed to store plan: %w", err)
	}

	ps.emitPlanCreated(ctx, plan.ID, plan.InventoryID, result)

	apiPlan := mappers.PlanToApi(*plan)
	return &apiPlan, nil
}

func (ps *PlanService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	if err := ps.store.Plan().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}

func (ps *PlanService) emitPlanCreated(ctx context.Context, planID, inventoryID uuid.UUID, result api.MigrationPlan) {
	event := events.PlanEvent{
		PlanID:       planID.String(),
		InventoryID:  inventoryID.String(),
		TotalServers: result.ProjectSummary.TotalServers,
		TotalEffort:  result.ProjectSummary.TotalEffort,
		Warnings:     len(result.Warnings),
	}

	if err := ps.eventWriter.Emit(ctx, events.PlanMessageKind, event); err != nil {
		zap.S().Named("plan_service").Errorw("failed to emit event", "error", err, "event_kind", events.PlanMessageKind)
	}
}
