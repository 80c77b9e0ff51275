package handler

import "net/http"

func (h *Handlers) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonthParam(r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	report, err := h.Reports.Monthly(r.Context(), month)
	if err != nil {
		h.log.InternalError("reports.monthly: build failed", err, "month", month)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, report)
}
