package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/homefix/backend/internal/models"
)

type AuditEvent struct {
	Timestamp     time.Time `json:"timestamp"`
	EventType     string    `json:"event_type"`
	BookingID     string    `json:"booking_id"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	Amount        int64     `json:"amount,omitempty"`
	Status        string    `json:"status"`
	Details       any       `json:"details,omitempty"`
}

// AuditLogger writes one JSON line per ledger mutation
type AuditLogger struct {
	logger *log.Logger
}

func NewAuditLogger() *AuditLogger {
	return &AuditLogger{logger: log.Default()}
}

func (a *AuditLogger) LogBooking(eventType string, b *models.Booking) {
	a.log(AuditEvent{
		Timestamp:     time.Now(),
		EventType:     eventType,
		BookingID:     b.ID,
		CustomerEmail: b.Customer.Email,
		Amount:        b.Amount,
		Status:        string(b.Status),
		Details: map[string]string{
			"payment_status": string(b.PaymentStatus),
			"service_id":     b.ServiceID,
		},
	})
}

func (a *AuditLogger) LogError(operation, bookingID string, err error) {
	a.log(AuditEvent{
		Timestamp: time.Now(),
		EventType: operation,
		BookingID: bookingID,
		Status:    "FAILED",
		Details:   map[string]string{"error": err.Error()},
	})
}

func (a *AuditLogger) log(event AuditEvent) {
	data, _ := json.Marshal(event)
	a.logger.Printf("AUDIT: %s", string(data))
}
