package v1alpha1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fleetforge/migration-compass/internal/roadmap"
	"github.com/fleetforge/migration-compass/internal/service"
	"github.com/fleetforge/migration-compass/internal/service/mappers"
	"github.com/fleetforge/migration-compass/internal/store"
)

type createPlanRequest struct {
	InventoryID string `json:"inventoryId" validate:"required,uuid"`
	StartDate   string `json:"startDate" validate:"omitempty,date"`
}

type reportQuery struct {
	Format string `validate:"required,report_format"`
}

// (GET /api/v1/plans)
func (h *ServiceHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	filter := store.NewPlanQueryFilter()
	if inventoryID := r.URL.Query().Get("inventoryId"); inventoryID != "" {
		id, err := uuid.Parse(inventoryID)
		if err != nil {
			replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid inventory id: %v", err))
			return
		}
		filter = filter.ByInventoryID(id)
	}

	plans, err := h.planSrv.ListPlans(r.Context(), filter)
	if err != nil {
		zap.S().Named("plan_handler").Errorw("failed to list plans", "error", err)
		replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to list plans: %v", err))
		return
	}

	render.JSON(w, r, plans)
}

// (POST /api/v1/plans)
func (h *ServiceHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var request createPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := h.validator.Struct(request); err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid plan request: %v", err))
		return
	}

	form := mappers.PlanCreateForm{
		InventoryID: uuid.MustParse(request.InventoryID),
	}
	if request.StartDate != "" {
		startDate, _ := time.Parse("2006-01-02", request.StartDate)
		form.StartDate = startDate
	}

	plan, err := h.planSrv.CreatePlan(r.Context(), form)
	if err != nil {
		var notFound *service.ErrResourceNotFound
		var invalid *service.ErrInvalidRequest
		var cyclic *roadmap.CyclicDependencyError
		switch {
		case errors.As(err, &notFound):
			replyError(w, r, http.StatusNotFound, err.Error())
		case errors.As(err, &invalid):
			replyError(w, r, http.StatusBadRequest, err.Error())
		case errors.As(err, &cyclic):
			replyError(w, r, http.StatusUnprocessableEntity, err.Error())
		default:
			zap.S().Named("plan_handler").Errorw("failed to create plan", "error", err, "inventory_id", form.InventoryID)
			replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to create plan: %v", err))
		}
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, plan)
}

// (GET /api/v1/plans/{id})
func (h *ServiceHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid plan id: %v", err))
		return
	}

	plan, err := h.planSrv.GetPlan(r.Context(), id)
	if err != nil {
		var notFound *service.ErrResourceNotFound
		if errors.As(err, &notFound) {
			replyError(w, r, http.StatusNotFound, err.Error())
			return
		}
		zap.S().Named("plan_handler").Errorw("failed to get plan", "error", err, "plan_id", id)
		replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to get plan: %v", err))
		return
	}

	render.JSON(w, r, plan)
}

// (DELETE /api/v1/plans/{id})
func (h *ServiceHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid plan id: %v", err))
		return
	}

	if err := h.planSrv.DeletePlan(r.Context(), id); err != nil {
		zap.S().Named("plan_handler").Errorw("failed to delete plan", "error", err, "plan_id", id)
		replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to delete plan: %v", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// (GET /api/v1/plans/{id}/report?format=csv|xlsx)
func (h *ServiceHandler) GetPlanReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid plan id: %v", err))
		return
	}

	query := reportQuery{Format: r.URL.Query().Get("format")}
	if query.Format == "" {
		query.Format = string(service.ReportFormatCSV)
	}
	if err := h.validator.Struct(query); err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid report format %q", query.Format))
		return
	}

	report, err := h.reportSrv.GenerateReport(r.Context(), id, service.ReportOptions{Format: service.ReportFormat(query.Format)})
	if err != nil {
		var notFound *service.ErrResourceNotFound
		var invalid *service.ErrInvalidRequest
		switch {
		case errors.As(err, &notFound):
			replyError(w, r, http.StatusNotFound, err.Error())
		case errors.As(err, &invalid):
			replyError(w, r, http.StatusBadRequest, err.Error())
		default:
			zap.S().Named("plan_handler").Errorw("failed to generate report", "error", err, "plan_id", id)
			replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to generate report: %v", err))
		}
		return
	}

	contentType := "text/csv"
	if query.Format == string(service.ReportFormatXLSX) {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("migration-plan-%s.%s", id, query.Format)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(report)
}
