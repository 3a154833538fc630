package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/homefix/backend/internal/events"
	"github.com/homefix/backend/internal/models"
	"github.com/homefix/backend/internal/repository"
	"github.com/homefix/backend/internal/telemetry"
)

var tracer = otel.Tracer("github.com/homefix/backend/internal/services")

// CatalogLookup resolves the foreign keys a booking points at.
type CatalogLookup interface {
	GetService(ctx context.Context, id string) (*models.Service, error)
	GetTechnician(ctx context.Context, id string) (*models.Technician, error)
}

// CreateBookingInput is what a customer submits to book a visit
type CreateBookingInput struct {
	Customer     models.Customer `json:"customer"`
	ServiceID    string          `json:"service_id" validate:"required" example:"svc-plumbing"`
	TechnicianID string          `json:"technician_id,omitempty"`
	ScheduledAt  string          `json:"scheduled_at" validate:"required" example:"2026-11-02 10:00"`
	Notes        string          `json:"notes,omitempty" validate:"max=1000"`
}

// BookingLedger owns creation, lookup, status changes and aggregation of bookings.
// Status policy is permissive: any known status may replace any other.
// Revenue counts completed bookings only.
type BookingLedger struct {
	bookings  repository.BookingRepository
	catalog   CatalogLookup
	events    events.Publisher
	audit     *AuditLogger
	validator *ValidationHelper
	currency  string
	now       func() time.Time
	newID     func() string
}

// NewBookingLedger wires the ledger. publisher may be nil.
func NewBookingLedger(bookings repository.BookingRepository, catalog CatalogLookup, publisher events.Publisher, currency string) *BookingLedger {
	return &BookingLedger{
		bookings:  bookings,
		catalog:   catalog,
		events:    publisher,
		audit:     NewAuditLogger(),
		validator: NewValidationHelper(),
		currency:  currency,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Create validates the request, prices it from the category table and appends a pending booking.
func (l *BookingLedger) Create(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingLedger.Create")
	defer span.End()

	in = normalizeBookingInput(in)
	if err := l.validator.validateInput(&in, "invalid booking request"); err != nil {
		return nil, endSpan(span, err)
	}

	service, err := l.catalog.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, endSpan(span, fromRepository(err, "service "+in.ServiceID))
	}

	if in.TechnicianID != "" {
		if _, err := l.catalog.GetTechnician(ctx, in.TechnicianID); err != nil {
			return nil, endSpan(span, fromRepository(err, "technician "+in.TechnicianID))
		}
	}

	amount, ok := models.PriceFor(service.Category)
	if !ok {
		return nil, endSpan(span, invalidInput("no price for service category %q", service.Category))
	}

	now := l.now()
	booking := &models.Booking{
		ID:            l.newID(),
		Customer:      in.Customer,
		ServiceID:     service.ID,
		TechnicianID:  in.TechnicianID,
		ScheduledAt:   in.ScheduledAt,
		Notes:         in.Notes,
		Amount:        amount,
		Currency:      l.currency,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := l.bookings.Insert(ctx, booking); err != nil {
		l.audit.LogError("BOOKING_CREATE", booking.ID, err)
		return nil, endSpan(span, fromRepository(err, "booking "+booking.ID))
	}

	span.SetAttributes(attribute.String("booking.id", booking.ID), attribute.String("service.category", service.Category))
	telemetry.BookingCreated()
	l.audit.LogBooking("BOOKING_CREATED", booking)
	l.publish(ctx, events.RKBookingCreated, booking)
	return booking, nil
}

// Get is a pure lookup
func (l *BookingLedger) Get(ctx context.Context, id string) (*models.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingLedger.Get", trace.WithAttributes(attribute.String("booking.id", id)))
	defer span.End()

	booking, err := l.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, endSpan(span, fromRepository(err, "booking "+id))
	}
	return booking, nil
}

// ListByCustomer returns a customer's bookings, newest first
func (l *BookingLedger) ListByCustomer(ctx context.Context, email string) ([]models.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingLedger.ListByCustomer")
	defer span.End()

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, endSpan(span, invalidInput("customer email is required"))
	}

	bookings, err := l.bookings.ListByCustomerEmail(ctx, email)
	if err != nil {
		return nil, endSpan(span, fromRepository(err, "bookings for "+email))
	}
	return bookings, nil
}

// List returns every booking, newest first
func (l *BookingLedger) List(ctx context.Context) ([]models.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingLedger.List")
	defer span.End()

	bookings, err := l.bookings.ListAll(ctx)
	if err != nil {
		return nil, endSpan(span, fromRepository(err, "bookings"))
	}
	return bookings, nil
}

// SetStatus overwrites the booking status
func (l *BookingLedger) SetStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingLedger.SetStatus", trace.WithAttributes(
		attribute.String("booking.id", id),
		attribute.String("booking.status", string(status)),
	))
	defer span.End()

	if !status.Valid() {
		return nil, endSpan(span, invalidInput("unknown booking status %q", status))
	}

	booking, err := l.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			l.audit.LogError("BOOKING_STATUS", id, err)
		}
		return nil, endSpan(span, fromRepository(err, "booking "+id))
	}

	telemetry.BookingTransition(string(status))
	l.audit.LogBooking("BOOKING_STATUS_CHANGED", booking)
	l.publish(ctx, events.StatusRoutingKey(string(status)), booking)
	return booking, nil
}

// VerifyPayment marks the booking paid and confirmed whatever its prior status.
// Repeating it with the same reference leaves the same end state.
func (l *BookingLedger) VerifyPayment(ctx context.Context, id, paymentRef string) (*models.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingLedger.VerifyPayment", trace.WithAttributes(attribute.String("booking.id", id)))
	defer span.End()

	paymentRef = strings.TrimSpace(paymentRef)
	if paymentRef == "" {
		return nil, endSpan(span, invalidInput("payment reference is required"))
	}

	booking, err := l.bookings.MarkPaid(ctx, id, paymentRef)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			l.audit.LogError("BOOKING_PAYMENT", id, err)
		}
		return nil, endSpan(span, fromRepository(err, "booking "+id))
	}

	telemetry.BookingTransition(string(models.BookingStatusConfirmed))
	l.audit.LogBooking("BOOKING_PAID", booking)
	l.publish(ctx, events.RKPaymentPaid, booking)
	return booking, nil
}

// Aggregate folds the whole ledger into Stats. Nothing is cached.
func (l *BookingLedger) Aggregate(ctx context.Context) (*models.Stats, error) {
	ctx, span := tracer.Start(ctx, "BookingLedger.Aggregate")
	defer span.End()

	bookings, err := l.bookings.ListAll(ctx)
	if err != nil {
		return nil, endSpan(span, fromRepository(err, "bookings"))
	}

	stats := Summarize(bookings)
	span.SetAttributes(attribute.Int("bookings.total", stats.TotalBookings))
	return &stats, nil
}

// Summarize counts bookings by status and sums the amount of completed ones.
func Summarize(bookings []models.Booking) models.Stats {
	var stats models.Stats
	for _, b := range bookings {
		stats.TotalBookings++
		switch b.Status {
		case models.BookingStatusPending:
			stats.PendingBookings++
		case models.BookingStatusConfirmed:
			stats.ConfirmedBookings++
		case models.BookingStatusCompleted:
			stats.CompletedBookings++
			stats.TotalRevenue += b.Amount
		case models.BookingStatusCancelled:
			stats.CancelledBookings++
		}
		if b.PaymentStatus == models.PaymentStatusPaid {
			stats.PaidBookings++
		}
	}
	return stats
}

// publish is best-effort: the ledger write already happened.
func (l *BookingLedger) publish(ctx context.Context, key string, b *models.Booking) {
	if l.events == nil {
		return
	}

	evt := events.BookingEvent{
		BookingID:     b.ID,
		CustomerEmail: b.Customer.Email,
		ServiceID:     b.ServiceID,
		TechnicianID:  b.TechnicianID,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		PaymentRef:    b.PaymentRef,
		Amount:        b.Amount,
		Currency:      b.Currency,
		OccurredAt:    l.now(),
	}
	if err := l.events.PublishJSON(ctx, key, evt); err != nil {
		log.Printf("[LEDGER] Failed to publish %s for booking %s: %v", key, b.ID, err)
	}
}

func normalizeBookingInput(in CreateBookingInput) CreateBookingInput {
	in.Customer.Name = strings.TrimSpace(in.Customer.Name)
	in.Customer.Email = strings.TrimSpace(in.Customer.Email)
	in.Customer.Phone = strings.TrimSpace(in.Customer.Phone)
	in.ServiceID = strings.TrimSpace(in.ServiceID)
	in.TechnicianID = strings.TrimSpace(in.TechnicianID)
	in.ScheduledAt = strings.TrimSpace(in.ScheduledAt)
	in.Notes = strings.TrimSpace(in.Notes)
	return in
}

func endSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
