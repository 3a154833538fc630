package models

import (
	"time"
)

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the known booking states
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus is independent from BookingStatus
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Customer is the contact tuple supplied when booking
type Customer struct {
	Name  string `json:"name" db:"customer_name" validate:"required" example:"Asha Rao"`
	Email string `json:"email" db:"customer_email" validate:"required,email" example:"asha@example.com"`
	Phone string `json:"phone" db:"customer_phone" validate:"required" example:"+919800000000"`
}

// Booking represents a service appointment in the ledger
type Booking struct {
	ID            string        `json:"id" db:"id"`
	Customer      Customer      `json:"customer"`
	ServiceID     string        `json:"service_id" db:"service_id"`
	TechnicianID  string        `json:"technician_id,omitempty" db:"technician_id"`
	ScheduledAt   string        `json:"scheduled_at" db:"scheduled_at"`
	Notes         string        `json:"notes,omitempty" db:"notes"`
	Amount        int64         `json:"amount" db:"amount"`
	Currency      string        `json:"currency" db:"currency"`
	Status        BookingStatus `json:"status" db:"status"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	PaymentRef    string        `json:"payment_ref,omitempty" db:"payment_ref"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// Stats is the admin view folded over every booking
type Stats struct {
	TotalBookings     int   `json:"totalBookings"`
	PendingBookings   int   `json:"pendingBookings"`
	ConfirmedBookings int   `json:"confirmedBookings"`
	CompletedBookings int   `json:"completedBookings"`
	CancelledBookings int   `json:"cancelledBookings"`
	PaidBookings      int   `json:"paidBookings"`
	TotalRevenue      int64 `json:"totalRevenue"`
}
