package handler

import (
	"errors"
	"net/http"

	settingsdomain "github.com/QuangTrungK15/motel-management/internal/domain/settings"
)

type motelInfoRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type ratesRequest struct {
	DefaultRoomRate string `json:"default_room_rate"`
	ElectricRate    string `json:"electric_rate"`
	WaterRate       string `json:"water_rate"`
	Currency        string `json:"currency"`
}

func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	values, err := h.Settings.All(r.Context())
	if err != nil {
		h.log.InternalError("settings.get: load failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, values)
}

func (h *Handlers) SaveMotelInfo(w http.ResponseWriter, r *http.Request) {
	var req motelInfoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if err := h.Settings.SaveMotelInfo(r.Context(), settingsdomain.MotelInfoInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	}); err != nil {
		h.log.InternalError("settings.motelinfo: save failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SaveRates(w http.ResponseWriter, r *http.Request) {
	var req ratesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if err := h.Settings.SaveRates(r.Context(), settingsdomain.RatesInput{
		DefaultRoomRate: req.DefaultRoomRate,
		ElectricRate:    req.ElectricRate,
		WaterRate:       req.WaterRate,
		Currency:        req.Currency,
	}); err != nil {
		if errors.Is(err, settingsdomain.ErrInvalidRate) {
			h.log.BusinessError("settings.rates: invalid rate", err)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("settings.rates: save failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
