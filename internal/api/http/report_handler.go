package http

import (
	"net/http"

	"vehicle-rental-backend/internal/domain"
)

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	from, err := parseOptionalDate(r.URL.Query().Get("from"))
	if err != nil {
		respondError(w, err)
		return
	}
	to, err := parseOptionalDate(r.URL.Query().Get("to"))
	if err != nil {
		respondError(w, err)
		return
	}

	data, err := h.reportSvc.Dashboard(r.Context(), from, to)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, data)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	from, err := parseOptionalDate(r.URL.Query().Get("from"))
	if err != nil {
		respondError(w, err)
		return
	}
	to, err := parseOptionalDate(r.URL.Query().Get("to"))
	if err != nil {
		respondError(w, err)
		return
	}

	reportType := domain.ReportType(r.URL.Query().Get("type"))
	data, err := h.reportSvc.Report(r.Context(), reportType, from, to)
	if err != nil {
		respondError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		csv, err := h.reportSvc.ExportCSV(data)
		if err != nil {
			respondError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+string(reportType)+`-report.csv"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(csv))
		return
	}
	respondJSON(w, http.StatusOK, data)
}
