package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	roomdomain "github.com/QuangTrungK15/motel-management/internal/domain/room"
)

type roomResponse struct {
	ID               uint      `json:"id"`
	Number           int       `json:"number"`
	Name             string    `json:"name"`
	Floor            int       `json:"floor"`
	Rate             float64   `json:"rate"`
	MaxOccupants     int       `json:"max_occupants"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes"`
	ActiveContractID *uint     `json:"active_contract_id,omitempty"`
	TenantName       string    `json:"tenant_name,omitempty"`
	People           int       `json:"people"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type updateRoomRequest struct {
	Rate   float64 `json:"rate"`
	Status string  `json:"status"`
	Notes  string  `json:"notes"`
}

func (h *Handlers) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Rooms.List(r.Context())
	if err != nil {
		h.log.InternalError("rooms.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]roomResponse, 0, len(rooms))
	for _, item := range rooms {
		response = append(response, roomResponse{
			ID:               item.ID,
			Number:           item.Number,
			Name:             item.Name,
			Floor:            item.Floor,
			Rate:             item.Rate,
			MaxOccupants:     item.MaxOccupants,
			Status:           string(item.Status),
			Notes:            item.Notes,
			ActiveContractID: item.ActiveContractID,
			TenantName:       item.TenantName,
			People:           item.People,
			CreatedAt:        item.CreatedAt,
			UpdatedAt:        item.UpdatedAt,
		})
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid room id")
		return
	}

	var req updateRoomRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	input := roomdomain.UpdateInput{
		ID:     id,
		Rate:   req.Rate,
		Status: roomdomain.Status(req.Status),
		Notes:  req.Notes,
	}
	if err := h.Rooms.Update(r.Context(), input); err != nil {
		switch {
		case errors.Is(err, roomdomain.ErrRoomNotFound):
			h.log.BusinessError("rooms.update: room not found", err, "room_id", id)
			writeError(w, http.StatusNotFound, "room_not_found", "room not found")
		case errors.Is(err, roomdomain.ErrInvalidStatus):
			h.log.BusinessError("rooms.update: invalid status", err, "room_id", id, "status", req.Status)
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid room status")
		case errors.Is(err, roomdomain.ErrInvalidRate):
			h.log.BusinessError("rooms.update: invalid rate", err, "room_id", id)
			writeError(w, http.StatusBadRequest, "invalid_request", "rate must not be negative")
		default:
			h.log.InternalError("rooms.update: update failed", err, "room_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
