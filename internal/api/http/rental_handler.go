package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
	"vehicle-rental-backend/internal/service"
)

type createRentalRequest struct {
	VehicleID       string `json:"vehicle_id"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Insurance       bool   `json:"insurance"`
	SpecialRequests string `json:"special_requests"`
	Confirmed       bool   `json:"confirmed"`
}

func (h *Handler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
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

	rental, err := h.rentalSvc.Create(r.Context(), service.CreateRentalInput{
		UserID:          actorFrom(r).UserID,
		VehicleID:       req.VehicleID,
		StartDate:       start,
		EndDate:         end,
		Insurance:       req.Insurance,
		SpecialRequests: req.SpecialRequests,
		Confirmed:       req.Confirmed,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rental)
}

func (h *Handler) GetRental(w http.ResponseWriter, r *http.Request) {
	a := actorFrom(r)
	rental, err := h.rentalSvc.Get(r.Context(), a.UserID, a.IsAdmin, mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *Handler) ListMyRentals(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	status := domain.RentalStatus(r.URL.Query().Get("status"))
	rentals, total, err := h.rentalSvc.ListMine(r.Context(), actorFrom(r).UserID, status, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: rentals, Total: total, Page: page, PageSize: pageSize})
}

func (h *Handler) ListRentals(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	filter := repository.RentalFilter{
		Status:    domain.RentalStatus(r.URL.Query().Get("status")),
		UserID:    r.URL.Query().Get("user_id"),
		VehicleID: r.URL.Query().Get("vehicle_id"),
	}
	rentals, total, err := h.rentalSvc.ListAll(r.Context(), filter, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: rentals, Total: total, Page: page, PageSize: pageSize})
}

func (h *Handler) CancelRental(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.Cancel(r.Context(), actorFrom(r).UserID, mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

type updateRentalStatusRequest struct {
	Status domain.RentalStatus `json:"status"`
	Notes  string              `json:"notes"`
}

func (h *Handler) UpdateRentalStatus(w http.ResponseWriter, r *http.Request) {
	var req updateRentalStatusRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	rental, err := h.rentalSvc.AdminUpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status, req.Notes)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

type rateRentalRequest struct {
	Score  int32  `json:"score"`
	Review string `json:"review"`
}

func (h *Handler) RateRental(w http.ResponseWriter, r *http.Request) {
	var req rateRentalRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	rental, err := h.rentalSvc.Rate(r.Context(), actorFrom(r).UserID, mux.Vars(r)["id"], req.Score, req.Review)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	start, err := parseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		respondError(w, err)
		return
	}
	end, err := parseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		respondError(w, err)
		return
	}

	result, err := h.rentalSvc.CheckAvailability(r.Context(), mux.Vars(r)["id"], start, end)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"available":       !result.Conflict,
		"conflicting_ids": result.ConflictingIDs,
	})
}
