package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/service"
)

type createQuoteRequest struct {
	VehicleID          string                    `json:"vehicle_id"`
	StartDate          string                    `json:"start_date"`
	EndDate            string                    `json:"end_date"`
	CustomerInfo       *domain.CustomerInfo      `json:"customer_info,omitempty"`
	AdditionalServices domain.AdditionalServices `json:"additional_services"`
	SpecialRequests    string                    `json:"special_requests"`
}

func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req createQuoteRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		respondError(w, err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		respondError(w, err)
		return
	}

	input := service.CreateQuoteInput{
		UserID:             actorFrom(r).UserID,
		VehicleID:          req.VehicleID,
		StartDate:          start,
		EndDate:            end,
		AdditionalServices: req.AdditionalServices,
		SpecialRequests:    req.SpecialRequests,
	}
	if req.CustomerInfo != nil {
		input.CustomerInfo = *req.CustomerInfo
	}

	quote, err := h.quoteSvc.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, quote)
}

func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	a := actorFrom(r)
	quote, err := h.quoteSvc.Get(r.Context(), a.UserID, a.IsAdmin, mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

func (h *Handler) ListMyQuotes(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	status := domain.QuoteStatus(r.URL.Query().Get("status"))
	quotes, total, err := h.quoteSvc.ListMine(r.Context(), actorFrom(r).UserID, status, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: quotes, Total: total, Page: page, PageSize: pageSize})
}

func (h *Handler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	status := domain.QuoteStatus(r.URL.Query().Get("status"))
	quotes, total, err := h.quoteSvc.ListAll(r.Context(), status, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: quotes, Total: total, Page: page, PageSize: pageSize})
}

type updateQuoteStatusRequest struct {
	Status        domain.QuoteStatus     `json:"status"`
	CustomPricing *service.CustomPricing `json:"custom_pricing,omitempty"`
	AdminNotes    string                 `json:"admin_notes"`
}

func (h *Handler) UpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	var req updateQuoteStatusRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	quote, err := h.quoteSvc.AdminUpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status, req.CustomPricing, req.AdminNotes)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

func (h *Handler) AcceptQuote(w http.ResponseWriter, r *http.Request) {
	rental, err := h.quoteSvc.Accept(r.Context(), actorFrom(r).UserID, mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rental)
}
