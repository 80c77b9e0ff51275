package handler

import (
	"errors"
	"net/http"

	utilitydomain "github.com/QuangTrungK15/motel-management/internal/domain/utility"
)

type saveUtilityRequest struct {
	RoomID        uint    `json:"room_id"`
	Month         string  `json:"month"`
	ElectricStart float64 `json:"electric_start"`
	ElectricEnd   float64 `json:"electric_end"`
	ElectricRate  float64 `json:"electric_rate"`
	WaterStart    float64 `json:"water_start"`
	WaterEnd      float64 `json:"water_end"`
	WaterRate     float64 `json:"water_rate"`
}

type utilityRowResponse struct {
	RoomID        uint    `json:"room_id"`
	RoomNumber    int     `json:"room_number"`
	UtilityID     *uint   `json:"utility_id,omitempty"`
	ElectricStart float64 `json:"electric_start"`
	ElectricEnd   float64 `json:"electric_end"`
	ElectricRate  float64 `json:"electric_rate"`
	WaterStart    float64 `json:"water_start"`
	WaterEnd      float64 `json:"water_end"`
	WaterRate     float64 `json:"water_rate"`
	TotalAmount   float64 `json:"total_amount"`
}

func (h *Handlers) UtilitiesByMonth(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonthParam(r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	overview, err := h.Utilities.MonthOverview(r.Context(), month)
	if err != nil {
		h.log.InternalError("utilities.list: month overview failed", err, "month", month)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	rows := make([]utilityRowResponse, 0, len(overview.Rows))
	for _, row := range overview.Rows {
		rows = append(rows, utilityRowResponse{
			RoomID:        row.RoomID,
			RoomNumber:    row.RoomNumber,
			UtilityID:     row.UtilityID,
			ElectricStart: row.ElectricStart,
			ElectricEnd:   row.ElectricEnd,
			ElectricRate:  row.ElectricRate,
			WaterStart:    row.WaterStart,
			WaterEnd:      row.WaterEnd,
			WaterRate:     row.WaterRate,
			TotalAmount:   row.TotalAmount,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"month": overview.Month,
		"rows":  rows,
		"stats": map[string]float64{
			"total_electric": overview.Stats.TotalElectric,
			"total_water":    overview.Stats.TotalWater,
			"total_all":      overview.Stats.TotalAll,
		},
	})
}

func (h *Handlers) SaveUtility(w http.ResponseWriter, r *http.Request) {
	var req saveUtilityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if req.RoomID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "room_id is required")
		return
	}

	saved, err := h.Utilities.SaveReading(r.Context(), utilitydomain.SaveInput{
		RoomID:        req.RoomID,
		Month:         req.Month,
		ElectricStart: req.ElectricStart,
		ElectricEnd:   req.ElectricEnd,
		ElectricRate:  req.ElectricRate,
		WaterStart:    req.WaterStart,
		WaterEnd:      req.WaterEnd,
		WaterRate:     req.WaterRate,
	})
	if err != nil {
		if errors.Is(err, utilitydomain.ErrInvalidMonth) {
			h.log.BusinessError("utilities.save: invalid month", err, "month", req.Month)
			writeError(w, http.StatusBadRequest, "invalid_request", "month must be in YYYY-MM format")
			return
		}
		h.log.InternalError("utilities.save: save failed", err, "room_id", req.RoomID, "month", req.Month)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	id := saved.ID
	writeJSON(w, http.StatusOK, utilityRowResponse{
		RoomID:        saved.RoomID,
		UtilityID:     &id,
		ElectricStart: saved.ElectricStart,
		ElectricEnd:   saved.ElectricEnd,
		ElectricRate:  saved.ElectricRate,
		WaterStart:    saved.WaterStart,
		WaterEnd:      saved.WaterEnd,
		WaterRate:     saved.WaterRate,
		TotalAmount:   saved.TotalAmount,
	})
}

func (h *Handlers) GenerateUtilities(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Month string `json:"month"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Utilities.GenerateAllForMonth(r.Context(), req.Month)
	if err != nil {
		if errors.Is(err, utilitydomain.ErrInvalidMonth) {
			h.log.BusinessError("utilities.generate: invalid month", err, "month", req.Month)
			writeError(w, http.StatusBadRequest, "invalid_request", "month must be in YYYY-MM format")
			return
		}
		h.log.InternalError("utilities.generate: generation failed", err, "month", req.Month)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"created": created})
}
