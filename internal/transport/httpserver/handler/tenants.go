package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/QuangTrungK15/motel-management/internal/domain/identity"
	tenantdomain "github.com/QuangTrungK15/motel-management/internal/domain/tenant"
)

type tenantRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	IDType    string `json:"id_type"`
	IDNumber  string `json:"id_number"`
	Notes     string `json:"notes"`
}

type tenantResponse struct {
	ID               uint      `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	IDType           string    `json:"id_type"`
	IDNumber         string    `json:"id_number"`
	Notes            string    `json:"notes"`
	ActiveRoomNumber *int      `json:"active_room_number,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func tenantToResponse(t tenantdomain.Tenant, activeRoomNumber *int) tenantResponse {
	return tenantResponse{
		ID:               t.ID,
		FirstName:        t.FirstName,
		LastName:         t.LastName,
		Phone:            t.Phone,
		Email:            t.Email,
		IDType:           t.IDType,
		IDNumber:         t.IDNumber,
		Notes:            t.Notes,
		ActiveRoomNumber: activeRoomNumber,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func (h *Handlers) ListTenants(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	tenants, err := h.Tenants.List(r.Context(), search)
	if err != nil {
		h.log.InternalError("tenants.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]tenantResponse, 0, len(tenants))
	for _, item := range tenants {
		response = append(response, tenantToResponse(item.Tenant, item.ActiveRoomNumber))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var req tenantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Tenants.Create(r.Context(), tenantdomain.CreateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		IDType:    req.IDType,
		IDNumber:  req.IDNumber,
		Notes:     req.Notes,
	})
	if err != nil {
		if h.writeTenantError(w, err, "tenants.create", 0) {
			return
		}
		h.log.InternalError("tenants.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, tenantToResponse(*created, nil))
}

func (h *Handlers) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid tenant id")
		return
	}

	var req tenantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	updated, err := h.Tenants.Update(r.Context(), tenantdomain.UpdateInput{
		ID: id,
		CreateInput: tenantdomain.CreateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
			Email:     req.Email,
			IDType:    req.IDType,
			IDNumber:  req.IDNumber,
			Notes:     req.Notes,
		},
	})
	if err != nil {
		if h.writeTenantError(w, err, "tenants.update", id) {
			return
		}
		h.log.InternalError("tenants.update: update failed", err, "tenant_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, tenantToResponse(*updated, nil))
}

func (h *Handlers) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid tenant id")
		return
	}

	if err := h.Tenants.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, tenantdomain.ErrTenantNotFound):
			h.log.BusinessError("tenants.delete: tenant not found", err, "tenant_id", id)
			writeError(w, http.StatusNotFound, "tenant_not_found", "tenant not found")
		case errors.Is(err, tenantdomain.ErrTenantHasActiveContracts):
			h.log.BusinessError("tenants.delete: tenant has active contracts", err, "tenant_id", id)
			writeError(w, http.StatusConflict, "tenant_has_active_contracts", "tenant has active contracts")
		default:
			h.log.InternalError("tenants.delete: delete failed", err, "tenant_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeTenantError maps the shared create/update failures; reports whether
// the error was handled.
func (h *Handlers) writeTenantError(w http.ResponseWriter, err error, op string, tenantID uint) bool {
	var dup *identity.DuplicateIDError
	switch {
	case errors.Is(err, tenantdomain.ErrTenantNotFound):
		h.log.BusinessError(op+": tenant not found", err, "tenant_id", tenantID)
		writeError(w, http.StatusNotFound, "tenant_not_found", "tenant not found")
		return true
	case errors.Is(err, tenantdomain.ErrNameRequired):
		h.log.BusinessError(op+": name required", err)
		writeError(w, http.StatusBadRequest, "invalid_request", "first and last name are required")
		return true
	case errors.As(err, &dup):
		h.log.BusinessError(op+": duplicate id number", err, "id_number", dup.IDNumber)
		writeErrorDetails(w, http.StatusConflict, "duplicate_id", err.Error(), map[string]interface{}{
			"id_number": dup.IDNumber,
			"holder":    dup.Holder,
		})
		return true
	}
	return false
}
