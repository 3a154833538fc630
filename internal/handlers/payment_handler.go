package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/homefix/backend/internal/services"
)

// VerifyPaymentRequest carries the reference returned by StartPayment
type VerifyPaymentRequest struct {
	PaymentRef string `json:"payment_ref" example:"PAY-1767225600000-A1B2C3"`
}

type PaymentHandler struct {
	ledger   *services.BookingLedger
	payments *services.PaymentService
}

func NewPaymentHandler(ledger *services.BookingLedger, payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{ledger: ledger, payments: payments}
}

// StartPayment opens a payment session
// @Summary Start payment
// @Description Issues a payment reference and a QR code (base64 PNG) for the booking amount
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param bookingId path string true "Booking ID"
// @Success 201 {object} services.PaymentSession
// @Failure 403 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse "Already paid"
// @Router /bookings/{bookingId}/payment [post]
func (h *PaymentHandler) StartPayment(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	session, err := h.payments.StartPayment(r.Context(), chi.URLParam(r, "bookingId"))
	if err != nil {
		services.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// VerifyPayment confirms a payment reference
// @Summary Verify payment
// @Description Marks the booking paid and confirmed. Repeating with the same reference is harmless.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookingId path string true "Booking ID"
// @Param request body VerifyPaymentRequest true "Payment reference"
// @Success 200 {object} models.Booking
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /bookings/{bookingId}/verify-payment [post]
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req VerifyPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !h.authorize(w, r) {
		return
	}

	booking, err := h.payments.Verify(r.Context(), chi.URLParam(r, "bookingId"), req.PaymentRef)
	if err != nil {
		services.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *PaymentHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	booking, err := h.ledger.Get(r.Context(), chi.URLParam(r, "bookingId"))
	if err != nil {
		services.WriteError(w, err)
		return false
	}
	if !canAccess(r, booking) {
		services.WriteError(w, fmt.Errorf("%w: booking %s belongs to another customer", services.ErrForbidden, booking.ID))
		return false
	}
	return true
}
