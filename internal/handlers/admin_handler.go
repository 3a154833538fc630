package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/homefix/backend/internal/middleware"
	"github.com/homefix/backend/internal/models"
	"github.com/homefix/backend/internal/services"
)

// StatusUpdateRequest moves a booking to another status
type StatusUpdateRequest struct {
	Status models.BookingStatus `json:"status" example:"completed"`
}

type AdminHandler struct {
	ledger  *services.BookingLedger
	catalog *services.CatalogService
}

func NewAdminHandler(ledger *services.BookingLedger, catalog *services.CatalogService) *AdminHandler {
	return &AdminHandler{ledger: ledger, catalog: catalog}
}

// Stats aggregates the ledger
// @Summary Booking statistics
// @Description Counts by status and revenue from completed bookings, computed on every call
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Stats
// @Failure 401 {object} services.ErrorResponse
// @Failure 403 {object} services.ErrorResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ledger.Aggregate(r.Context())
	if err != nil {
		services.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// ListBookings lists every booking
// @Summary All bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListResponse{data=[]models.Booking}
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	list, err := h.ledger.List(r.Context())
	if err != nil {
		services.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse{Count: len(list), Data: list})
}

// UpdateStatus sets a booking's status
// @Summary Set booking status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookingId path string true "Booking ID"
// @Param request body StatusUpdateRequest true "New status" Enums(pending, confirmed, completed, cancelled)
// @Success 200 {object} models.Booking
// @Failure 400 {object} services.ErrorResponse "Unknown status"
// @Failure 404 {object} services.ErrorResponse
// @Router /admin/bookings/{bookingId}/status [put]
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.ledger.SetStatus(r.Context(), chi.URLParam(r, "bookingId"), req.Status)
	if err != nil {
		services.WriteError(w, err)
		return
	}
	log.Printf("[ADMIN] %s set booking %s to %s", middleware.EmailFromContext(r.Context()), booking.ID, booking.Status)
	writeJSON(w, http.StatusOK, booking)
}

// Seed resets the catalog
// @Summary Seed catalog
// @Description Replaces all services and technicians with the default catalog
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListResponse{data=[]models.Service}
// @Router /admin/seed [post]
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.catalog.Seed(r.Context())
	if err != nil {
		services.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse{Count: len(seeded), Data: seeded})
}
