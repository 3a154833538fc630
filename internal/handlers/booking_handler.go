package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/homefix/backend/internal/middleware"
	"github.com/homefix/backend/internal/models"
	"github.com/homefix/backend/internal/services"
)

type BookingHandler struct {
	ledger  *services.BookingLedger
	reviews *services.ReviewService
}

func NewBookingHandler(ledger *services.BookingLedger, reviews *services.ReviewService) *BookingHandler {
	return &BookingHandler{ledger: ledger, reviews: reviews}
}

// CreateBooking books a visit
// @Summary Create booking
// @Description Books a service visit. The amount comes from the service category price table.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body services.CreateBookingInput true "Booking request"
// @Success 201 {object} models.Booking
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse "Unknown service or technician"
// @Failure 500 {object} services.ErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req services.CreateBookingInput
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.ledger.Create(r.Context(), req)
	if err != nil {
		log.Printf("[BOOKING] Create failed for %s: %v", req.Customer.Email, err)
		services.WriteError(w, err)
		return
	}

	log.Printf("[BOOKING] Booking %s created for %s", booking.ID, booking.Customer.Email)
	writeJSON(w, http.StatusCreated, booking)
}

// GetBooking returns one booking
// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} models.Booking
// @Failure 403 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /bookings/{bookingId} [get]
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, ok := h.accessibleBooking(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// ListBookings lists the caller's bookings, newest first
// @Summary List my bookings
// @Description Customers see their own bookings. Admins may pass an email.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param email query string false "Customer email (admin only)"
// @Success 200 {object} ListResponse{data=[]models.Booking}
// @Failure 400 {object} services.ErrorResponse
// @Failure 403 {object} services.ErrorResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	email := middleware.EmailFromContext(r.Context())
	if requested := r.URL.Query().Get("email"); requested != "" {
		if middleware.RoleFromContext(r.Context()) != models.RoleAdmin {
			services.SendErrorResponse(w, "Only admins may list other customers' bookings", http.StatusForbidden, nil)
			return
		}
		email = requested
	}

	list, err := h.ledger.ListByCustomer(r.Context(), email)
	if err != nil {
		services.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse{Count: len(list), Data: list})
}

// CancelBooking lets the owner cancel
// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} models.Booking
// @Failure 403 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /bookings/{bookingId}/cancel [post]
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	booking, ok := h.accessibleBooking(w, r)
	if !ok {
		return
	}

	cancelled, err := h.ledger.SetStatus(r.Context(), booking.ID, models.BookingStatusCancelled)
	if err != nil {
		services.WriteError(w, err)
		return
	}
	log.Printf("[BOOKING] Booking %s cancelled by %s", cancelled.ID, middleware.EmailFromContext(r.Context()))
	writeJSON(w, http.StatusOK, cancelled)
}

// CreateReview rates a completed booking
// @Summary Review booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookingId path string true "Booking ID"
// @Param request body services.CreateReviewInput true "Review"
// @Success 201 {object} models.Review
// @Failure 400 {object} services.ErrorResponse "Booking not completed or bad rating"
// @Failure 403 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse "Already reviewed"
// @Router /bookings/{bookingId}/reviews [post]
func (h *BookingHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req services.CreateReviewInput
	if !decodeJSON(w, r, &req) {
		return
	}

	review, err := h.reviews.Create(r.Context(), chi.URLParam(r, "bookingId"), middleware.EmailFromContext(r.Context()), req)
	if err != nil {
		services.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *BookingHandler) accessibleBooking(w http.ResponseWriter, r *http.Request) (*models.Booking, bool) {
	booking, err := h.ledger.Get(r.Context(), chi.URLParam(r, "bookingId"))
	if err != nil {
		services.WriteError(w, err)
		return nil, false
	}
	if !canAccess(r, booking) {
		services.WriteError(w, fmt.Errorf("%w: booking %s belongs to another customer", services.ErrForbidden, booking.ID))
		return nil, false
	}
	return booking, true
}
