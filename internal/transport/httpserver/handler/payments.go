package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	paymentdomain "github.com/QuangTrungK15/motel-management/internal/domain/payment"
)

type addPaymentRequest struct {
	ContractID uint    `json:"contract_id"`
	Amount     float64 `json:"amount"`
	Month      string  `json:"month"`
	Type       string  `json:"type"`
	Method     string  `json:"method"`
	Status     string  `json:"status"`
	Notes      string  `json:"notes"`
}

type paymentResponse struct {
	ID         uint       `json:"id"`
	ContractID uint       `json:"contract_id"`
	Amount     float64    `json:"amount"`
	Month      string     `json:"month"`
	Type       string     `json:"type"`
	Method     string     `json:"method"`
	Status     string     `json:"status"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	Notes      string     `json:"notes"`
	RoomNumber int        `json:"room_number,omitempty"`
	TenantName string     `json:"tenant_name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type rentStatusResponse struct {
	ContractID  uint    `json:"contract_id"`
	RoomNumber  int     `json:"room_number"`
	TenantName  string  `json:"tenant_name"`
	MonthlyRent float64 `json:"monthly_rent"`
	PaymentID   *uint   `json:"payment_id,omitempty"`
	Paid        bool    `json:"paid"`
	PaidAmount  float64 `json:"paid_amount"`
}

type setPaymentStatusRequest struct {
	Paid bool `json:"paid"`
}

func (h *Handlers) PaymentsByMonth(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonthParam(r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	overview, err := h.Payments.MonthOverview(r.Context(), month)
	if err != nil {
		h.log.InternalError("payments.list: month overview failed", err, "month", month)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	rentStatus := make([]rentStatusResponse, 0, len(overview.RentStatus))
	for _, row := range overview.RentStatus {
		rentStatus = append(rentStatus, rentStatusResponse{
			ContractID:  row.ContractID,
			RoomNumber:  row.RoomNumber,
			TenantName:  row.TenantName,
			MonthlyRent: row.MonthlyRent,
			PaymentID:   row.PaymentID,
			Paid:        row.Paid,
			PaidAmount:  row.PaidAmount,
		})
	}

	payments := make([]paymentResponse, 0, len(overview.Payments))
	for _, p := range overview.Payments {
		payments = append(payments, paymentToResponse(p))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"month":       overview.Month,
		"rent_status": rentStatus,
		"payments":    payments,
		"stats": map[string]float64{
			"total_expected": overview.Stats.TotalExpected,
			"total_paid":     overview.Stats.TotalPaid,
			"total_pending":  overview.Stats.TotalPending,
		},
	})
}

func paymentToResponse(d paymentdomain.Details) paymentResponse {
	return paymentResponse{
		ID:         d.ID,
		ContractID: d.ContractID,
		Amount:     d.Amount,
		Month:      d.Month,
		Type:       string(d.Type),
		Method:     string(d.Method),
		Status:     string(d.Status),
		PaidAt:     d.PaidAt,
		Notes:      d.Notes,
		RoomNumber: d.RoomNumber,
		TenantName: d.TenantName,
		CreatedAt:  d.CreatedAt,
	}
}

func (h *Handlers) AddPayment(w http.ResponseWriter, r *http.Request) {
	var req addPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if req.ContractID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "contract_id is required")
		return
	}

	created, err := h.Payments.Add(r.Context(), paymentdomain.AddInput{
		ContractID: req.ContractID,
		Amount:     req.Amount,
		Month:      req.Month,
		Type:       paymentdomain.Type(req.Type),
		Method:     paymentdomain.Method(req.Method),
		Status:     paymentdomain.Status(req.Status),
		Notes:      req.Notes,
	})
	if err != nil {
		if errors.Is(err, paymentdomain.ErrInvalidMonth) {
			h.log.BusinessError("payments.add: invalid month", err, "month", req.Month)
			writeError(w, http.StatusBadRequest, "invalid_request", "month must be in YYYY-MM format")
			return
		}
		h.log.BusinessError("payments.add: validation failed", err, "contract_id", req.ContractID)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, paymentToResponse(paymentdomain.Details{Payment: *created}))
}

func (h *Handlers) GenerateRent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Month string `json:"month"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Payments.GenerateRentForMonth(r.Context(), req.Month)
	if err != nil {
		if errors.Is(err, paymentdomain.ErrInvalidMonth) {
			h.log.BusinessError("payments.generate: invalid month", err, "month", req.Month)
			writeError(w, http.StatusBadRequest, "invalid_request", "month must be in YYYY-MM format")
			return
		}
		h.log.InternalError("payments.generate: generation failed", err, "month", req.Month)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"created": created})
}

func (h *Handlers) SetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid payment id")
		return
	}

	var req setPaymentStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if err := h.Payments.SetStatus(r.Context(), id, req.Paid); err != nil {
		if errors.Is(err, paymentdomain.ErrPaymentNotFound) {
			h.log.BusinessError("payments.status: payment not found", err, "payment_id", id)
			writeError(w, http.StatusNotFound, "payment_not_found", "payment not found")
			return
		}
		h.log.InternalError("payments.status: update failed", err, "payment_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid payment id")
		return
	}

	if err := h.Payments.Delete(r.Context(), id); err != nil {
		if errors.Is(err, paymentdomain.ErrPaymentNotFound) {
			h.log.BusinessError("payments.delete: payment not found", err, "payment_id", id)
			writeError(w, http.StatusNotFound, "payment_not_found", "payment not found")
			return
		}
		h.log.InternalError("payments.delete: delete failed", err, "payment_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
