package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// requireUser rejects requests without a gateway-set user identity.
func requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(headerUserID) == "" {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing user identity"})
			return
		}
		next(w, r)
	}
}

// requireAdmin rejects non-admin callers.
func requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !actorFrom(r).IsAdmin {
			respondJSON(w, http.StatusForbidden, errorResponse{Error: "admin access required"})
			return
		}
		next(w, r)
	}
}

// RegisterRoutes wires the full HTTP surface onto the router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()

	// Quotes. Creation allows guests, so it carries no identity requirement.
	api.HandleFunc("/quotes", h.CreateQuote).Methods(http.MethodPost)
	api.HandleFunc("/quotes/my-quotes", requireUser(h.ListMyQuotes)).Methods(http.MethodGet)
	api.HandleFunc("/quotes", requireAdmin(h.ListQuotes)).Methods(http.MethodGet)
	api.HandleFunc("/quotes/{id}", requireUser(h.GetQuote)).Methods(http.MethodGet)
	api.HandleFunc("/quotes/{id}/status", requireAdmin(h.UpdateQuoteStatus)).Methods(http.MethodPatch)
	api.HandleFunc("/quotes/{id}/accept", requireUser(h.AcceptQuote)).Methods(http.MethodPost)

	// Rentals.
	api.HandleFunc("/rentals", requireUser(h.CreateRental)).Methods(http.MethodPost)
	api.HandleFunc("/rentals/my-rentals", requireUser(h.ListMyRentals)).Methods(http.MethodGet)
	api.HandleFunc("/rentals", requireAdmin(h.ListRentals)).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", requireUser(h.GetRental)).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/cancel", requireUser(h.CancelRental)).Methods(http.MethodPatch)
	api.HandleFunc("/rentals/{id}/status", requireAdmin(h.UpdateRentalStatus)).Methods(http.MethodPatch)
	api.HandleFunc("/rentals/{id}/rate", requireUser(h.RateRental)).Methods(http.MethodPatch)

	// Availability.
	api.HandleFunc("/vehicles/{id}/availability", h.CheckAvailability).Methods(http.MethodGet)

	// Admin reporting.
	api.HandleFunc("/admin/dashboard", requireAdmin(h.GetDashboard)).Methods(http.MethodGet)
	api.HandleFunc("/admin/reports", requireAdmin(h.GetReport)).Methods(http.MethodGet)
}
