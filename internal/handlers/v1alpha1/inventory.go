package v1alpha1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/inventory"
	"github.com/fleetforge/migration-compass/internal/service"
	"github.com/fleetforge/migration-compass/internal/service/mappers"
	"github.com/fleetforge/migration-compass/internal/store"
)

type createInventoryRequest struct {
	Name    string             `json:"name" validate:"required,fleet_name"`
	Servers []api.ServerRecord `json:"servers" validate:"required,min=1"`
}

// (GET /api/v1/inventories)
func (h *ServiceHandler) ListInventories(w http.ResponseWriter, r *http.Request) {
	filter := store.NewInventoryQueryFilter()
	if name := r.URL.Query().Get("name"); name != "" {
		filter = filter.ByNameLike(name)
	}

	inventories, err := h.inventorySrv.ListInventories(r.Context(), filter)
	if err != nil {
		zap.S().Named("inventory_handler").Errorw("failed to list inventories", "error", err)
		replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to list inventories: %v", err))
		return
	}

	render.JSON(w, r, inventories)
}

// (POST /api/v1/inventories)
func (h *ServiceHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	var request createInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := h.validator.Struct(request); err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid inventory: %v", err))
		return
	}
	if err := inventory.ValidateForm(api.InventoryForm(request)); err != nil {
		replyError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.inventorySrv.CreateInventory(r.Context(), mappers.InventoryCreateForm{
		Name:    request.Name,
		Servers: request.Servers,
	})
	if err != nil {
		var duplicate *service.ErrDuplicateName
		if errors.As(err, &duplicate) {
			replyError(w, r, http.StatusConflict, err.Error())
			return
		}
		zap.S().Named("inventory_handler").Errorw("failed to create inventory", "error", err)
		replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to create inventory: %v", err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

// (GET /api/v1/inventories/{id})
func (h *ServiceHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid inventory id: %v", err))
		return
	}

	result, err := h.inventorySrv.GetInventory(r.Context(), id)
	if err != nil {
		var notFound *service.ErrResourceNotFound
		if errors.As(err, &notFound) {
			replyError(w, r, http.StatusNotFound, err.Error())
			return
		}
		zap.S().Named("inventory_handler").Errorw("failed to get inventory", "error", err, "inventory_id", id)
		replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to get inventory: %v", err))
		return
	}

	render.JSON(w, r, result)
}

// (DELETE /api/v1/inventories/{id})
func (h *ServiceHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid inventory id: %v", err))
		return
	}

	if err := h.inventorySrv.DeleteInventory(r.Context(), id); err != nil {
		zap.S().Named("inventory_handler").Errorw("failed to delete inventory", "error", err, "inventory_id", id)
		replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to delete inventory: %v", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
