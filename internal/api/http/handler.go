// Package http is the JSON transport over the services. Handlers parse and
// validate the wire shape, delegate to a service, and translate the
// service's error taxonomy onto HTTP status codes. All authorization
// context arrives via gateway-set headers.
package http

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/logger"
	"vehicle-rental-backend/internal/service"
)

// Gateway-set identity headers.
const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	quoteSvc  service.QuoteService
	rentalSvc service.RentalService
	reportSvc service.ReportService
}

func NewHandler(quoteSvc service.QuoteService, rentalSvc service.RentalService, reportSvc service.ReportService) *Handler {
	return &Handler{
		quoteSvc:  quoteSvc,
		rentalSvc: rentalSvc,
		reportSvc: reportSvc,
	}
}

type actor struct {
	UserID  string
	IsAdmin bool
}

func actorFrom(r *http.Request) actor {
	return actor{
		UserID:  r.Header.Get(headerUserID),
		IsAdmin: r.Header.Get(headerUserRole) == string(domain.UserRoleAdmin),
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps the service error taxonomy onto HTTP statuses.
// Unclassified errors are logged and surfaced as a bare 500.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case domain.IsNotFound(err):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case domain.IsConflict(err):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case domain.IsForbidden(err):
		respondJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	default:
		logger.Error("Unhandled service error", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("invalid request body: %v", err)
	}
	return nil
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, domain.NewValidationError("invalid date %q, expected RFC 3339 or YYYY-MM-DD", value)
	}
	return t, nil
}

// parseOptionalDate returns nil for an absent query value.
func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parsePagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 && v <= math.MaxInt32 {
		page = int32(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}

type listResponse struct {
	Items    any   `json:"items"`
	Total    int32 `json:"total"`
	Page     int32 `json:"page"`
	PageSize int32 `json:"page_size"`
}
