package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleetforge/migration-compass/internal/service/report/csv"
	"github.com/fleetforge/migration-compass/internal/service/report/types"
	"github.com/fleetforge/migration-compass/internal/service/report/xlsx"
	"github.com/fleetforge/migration-compass/internal/store"
)

type ReportRenderer = types.ReportRenderer
type ReportFormat = types.ReportFormat
type ReportOptions = types.ReportOptions
type ReportData = types.ReportData

const (
	ReportFormatCSV  = types.ReportFormatCSV
	ReportFormatXLSX = types.ReportFormatXLSX
)

// ReportService exports stored plans in operator-facing formats.
type ReportService struct {
	store     store.Store
	renderers map[types.ReportFormat]types.ReportRenderer
}

func NewReportService(store store.Store) *ReportService {
	service := &ReportService{
		store:     store,
		renderers: make(map[types.ReportFormat]types.ReportRenderer),
	}

	csvRenderer := csv.NewRenderer()
	xlsxRenderer := xlsx.NewRenderer()

	service.renderers[csvRenderer.SupportedFormat()] = csvRenderer
	service.renderers[xlsxRenderer.SupportedFormat()] = xlsxRenderer

	return service
}

func (r *ReportService) GenerateReport(ctx context.Context, planID uuid.UUID, options types.ReportOptions) ([]byte, error) {
	renderer, exists := r.renderers[options.Format]
	if !exists {
		return nil, NewErrInvalidRequest("unsupported report format: %s", options.Format)
	}

	plan, err := r.store.Plan().Get(ctx, planID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrPlanNotFound(planID)
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	data := &types.ReportData{
		PlanID:    plan.ID.String(),
		StartDate: plan.StartDate.Format("2006-01-02"),
		Options:   options,
	}
	if plan.Result != nil {
		data.Plan = plan.Result.Data
	}

	inventory, err := r.store.Inventory().Get(ctx, plan.InventoryID)
	if err == nil {
		data.InventoryName = inventory.Name
		if inventory.Servers != nil {
			data.Servers = inventory.Servers.Data
		}
	}

	now := time.Now()
	data.Timestamps = types.ReportTimestamps{
		Generated:     now.Format("2006-01-02"),
		GeneratedTime: now.Format("15:04:05 MST"),
	}

	return renderer.Render(data)
}
