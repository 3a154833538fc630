package events

import "time"

// BookingEvent is the payload for every booking.* routing key
type BookingEvent struct {
	BookingID     string    `json:"booking_id"`
	CustomerEmail string    `json:"customer_email"`
	ServiceID     string    `json:"service_id"`
	TechnicianID  string    `json:"technician_id,omitempty"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	PaymentRef    string    `json:"payment_ref,omitempty"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	OccurredAt    time.Time `json:"occurred_at"`
}
