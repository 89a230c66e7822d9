package v1alpha1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/handlers/validator"
	"github.com/fleetforge/migration-compass/internal/service"
	"github.com/fleetforge/migration-compass/pkg/requestid"
)

// ServiceHandler binds the HTTP surface to the services. Handlers stay
// thin: decode, validate, call the service, map errors to statuses.
type ServiceHandler struct {
	inventorySrv *service.InventoryService
	planSrv      *service.PlanService
	reportSrv    *service.ReportService
	validator    *validator.Validator
}

func NewServiceHandler(inventorySrv *service.InventoryService, planSrv *service.PlanService, reportSrv *service.ReportService) *ServiceHandler {
	v := validator.NewValidator()
	v.Register(validator.NewInventoryValidationRules()...)
	v.Register(validator.NewPlanValidationRules()...)

	return &ServiceHandler{
		inventorySrv: inventorySrv,
		planSrv:      planSrv,
		reportSrv:    reportSrv,
		validator:    v,
	}
}

func (h *ServiceHandler) RegisterRoutes(router chi.Router) {
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/inventories", func(r chi.Router) {
			r.Get("/", h.ListInventories)
			r.Post("/", h.CreateInventory)
			r.Get("/{id}", h.GetInventory)
			r.Delete("/{id}", h.DeleteInventory)
		})

		r.Route("/plans", func(r chi.Router) {
			r.Get("/", h.ListPlans)
			r.Post("/", h.CreatePlan)
			r.Get("/{id}", h.GetPlan)
			r.Delete("/{id}", h.DeletePlan)
			r.Get("/{id}/report", h.GetPlanReport)
		})
	})
}

func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ErrorReply is the error envelope every failing endpoint returns.
type ErrorReply struct {
	api.Error
	statusCode int
}

func (e ErrorReply) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.statusCode)
	return nil
}

func replyError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	_ = render.Render(w, r, ErrorReply{
		Error:      api.Error{Error: message, RequestID: requestid.FromContextPtr(r.Context())},
		statusCode: statusCode,
	})
}
