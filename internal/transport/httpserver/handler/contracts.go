package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	contractdomain "github.com/QuangTrungK15/motel-management/internal/domain/contract"
	"github.com/QuangTrungK15/motel-management/internal/domain/identity"
	roomdomain "github.com/QuangTrungK15/motel-management/internal/domain/room"
)

type occupantRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	IDNumber     string `json:"id_number"`
	IDType       string `json:"id_type"`
	Relationship string `json:"relationship"`
}

type moveInRequest struct {
	RoomID      uint              `json:"room_id"`
	TenantID    uint              `json:"tenant_id"`
	MonthlyRent float64           `json:"monthly_rent"`
	Deposit     float64           `json:"deposit"`
	StartDate   string            `json:"start_date"`
	Notes       string            `json:"notes"`
	Occupants   []occupantRequest `json:"occupants"`
}

type occupantResponse struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	IDNumber     string `json:"id_number"`
	IDType       string `json:"id_type"`
	Relationship string `json:"relationship"`
}

type contractResponse struct {
	ID          uint               `json:"id"`
	RoomID      uint               `json:"room_id"`
	RoomNumber  int                `json:"room_number"`
	TenantID    uint               `json:"tenant_id"`
	TenantName  string             `json:"tenant_name"`
	MonthlyRent float64            `json:"monthly_rent"`
	Deposit     float64            `json:"deposit"`
	StartDate   time.Time          `json:"start_date"`
	EndDate     *time.Time         `json:"end_date,omitempty"`
	Status      string             `json:"status"`
	Notes       string             `json:"notes"`
	Occupants   []occupantResponse `json:"occupants"`
	CreatedAt   time.Time          `json:"created_at"`
}

func contractToResponse(c contractdomain.Contract) contractResponse {
	occupants := make([]occupantResponse, 0, len(c.Occupants))
	for _, occ := range c.Occupants {
		occupants = append(occupants, occupantResponse{
			ID:           occ.ID,
			FirstName:    occ.FirstName,
			LastName:     occ.LastName,
			Phone:        occ.Phone,
			IDNumber:     occ.IDNumber,
			IDType:       occ.IDType,
			Relationship: occ.Relationship,
		})
	}

	return contractResponse{
		ID:          c.ID,
		RoomID:      c.RoomID,
		RoomNumber:  c.Room.Number,
		TenantID:    c.TenantID,
		TenantName:  c.Tenant.FirstName + " " + c.Tenant.LastName,
		MonthlyRent: c.MonthlyRent,
		Deposit:     c.Deposit,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Status:      string(c.Status),
		Notes:       c.Notes,
		Occupants:   occupants,
		CreatedAt:   c.CreatedAt,
	}
}

func (h *Handlers) ListContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.Contracts.List(r.Context())
	if err != nil {
		h.log.InternalError("contracts.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]contractResponse, 0, len(contracts))
	for _, c := range contracts {
		response = append(response, contractToResponse(c))
	}

	writeJSON(w, http.StatusOK, response)
}

// MoveInOptions lists the rooms and tenants eligible for a new move-in.
func (h *Handlers) MoveInOptions(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Contracts.ListVacantRooms(r.Context())
	if err != nil {
		h.log.InternalError("contracts.options: list rooms failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	tenants, err := h.Contracts.ListTenantsWithoutActiveContract(r.Context())
	if err != nil {
		h.log.InternalError("contracts.options: list tenants failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	type roomOption struct {
		ID           uint    `json:"id"`
		Number       int     `json:"number"`
		Rate         float64 `json:"rate"`
		MaxOccupants int     `json:"max_occupants"`
	}
	type tenantOption struct {
		ID        uint   `json:"id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	roomOptions := make([]roomOption, 0, len(rooms))
	for _, rm := range rooms {
		roomOptions = append(roomOptions, roomOption{
			ID:           rm.ID,
			Number:       rm.Number,
			Rate:         rm.Rate,
			MaxOccupants: rm.MaxOccupants,
		})
	}
	tenantOptions := make([]tenantOption, 0, len(tenants))
	for _, t := range tenants {
		tenantOptions = append(tenantOptions, tenantOption{
			ID:        t.ID,
			FirstName: t.FirstName,
			LastName:  t.LastName,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rooms":   roomOptions,
		"tenants": tenantOptions,
	})
}

func (h *Handlers) MoveIn(w http.ResponseWriter, r *http.Request) {
	var req moveInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if req.RoomID == 0 || req.TenantID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "room_id and tenant_id are required")
		return
	}
	startDate, err := parseDateRequired(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "start_date must be in YYYY-MM-DD format")
		return
	}
	if req.MonthlyRent <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "monthly_rent must be positive")
		return
	}

	occupants := make([]contractdomain.OccupantInput, 0, len(req.Occupants))
	for _, occ := range req.Occupants {
		occupants = append(occupants, contractdomain.OccupantInput{
			FirstName:    occ.FirstName,
			LastName:     occ.LastName,
			Phone:        occ.Phone,
			IDNumber:     occ.IDNumber,
			IDType:       occ.IDType,
			Relationship: occ.Relationship,
		})
	}

	created, err := h.Contracts.MoveIn(r.Context(), contractdomain.MoveInInput{
		RoomID:      req.RoomID,
		TenantID:    req.TenantID,
		MonthlyRent: req.MonthlyRent,
		Deposit:     req.Deposit,
		StartDate:   startDate,
		Notes:       req.Notes,
		Occupants:   occupants,
	})
	if err != nil {
		var maxErr *contractdomain.MaxOccupantsError
		var dupErr *identity.DuplicateIDError
		switch {
		case errors.Is(err, roomdomain.ErrRoomNotFound):
			h.log.BusinessError("contracts.movein: room not found", err, "room_id", req.RoomID)
			writeError(w, http.StatusNotFound, "room_not_found", "room not found")
		case errors.As(err, &maxErr):
			h.log.BusinessError("contracts.movein: too many occupants", err, "room_id", req.RoomID)
			writeErrorDetails(w, http.StatusUnprocessableEntity, "max_occupants", err.Error(), map[string]interface{}{
				"max":  maxErr.Max,
				"rest": maxErr.Rest,
			})
		case errors.Is(err, contractdomain.ErrDuplicateOccupantIDs):
			h.log.BusinessError("contracts.movein: duplicate occupant ids", err, "room_id", req.RoomID)
			writeError(w, http.StatusUnprocessableEntity, "duplicate_occupant_ids", err.Error())
		case errors.As(err, &dupErr):
			h.log.BusinessError("contracts.movein: duplicate id number", err, "id_number", dupErr.IDNumber)
			writeErrorDetails(w, http.StatusConflict, "duplicate_id", err.Error(), map[string]interface{}{
				"id_number": dupErr.IDNumber,
				"holder":    dupErr.Holder,
			})
		default:
			h.log.InternalError("contracts.movein: move-in failed", err, "room_id", req.RoomID, "tenant_id", req.TenantID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	// Re-read for the room, tenant and occupant associations.
	loaded, err := h.Contracts.GetByID(r.Context(), created.ID)
	if err != nil {
		h.log.InternalError("contracts.movein: reload failed", err, "contract_id", created.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, contractToResponse(*loaded))
}

func (h *Handlers) MoveOut(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid contract id")
		return
	}

	if err := h.Contracts.MoveOut(r.Context(), id); err != nil {
		h.log.InternalError("contracts.moveout: move-out failed", err, "contract_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
