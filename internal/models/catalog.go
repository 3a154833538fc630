package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Subservice is a priced line item inside a service category
type Subservice struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// Subservices is stored as a JSONB column
type Subservices []Subservice

// Value implements driver.Valuer for Subservices
func (s Subservices) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for Subservices
func (s *Subservices) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(b, s)
}

// Service is a bookable category shown on the storefront
type Service struct {
	ID          string      `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description" db:"description"`
	Icon        string      `json:"icon" db:"icon"`
	Price       string      `json:"price" db:"price"`
	Category    string      `json:"category" db:"category"`
	BorderColor string      `json:"borderColor" db:"border_color"`
	Subservices Subservices `json:"subservices" db:"subservices"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}

// Technician is a field worker specialised in one category
type Technician struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Specialization string    `json:"specialization" db:"specialization"`
	Phone          string    `json:"phone" db:"phone"`
	Experience     int       `json:"experience" db:"experience"`
	Available      bool      `json:"available" db:"available"`
	Rating         float64   `json:"rating"`
	ReviewCount    int       `json:"reviewCount"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// Review is left by a customer for a completed booking
type Review struct {
	ID           string    `json:"id" db:"id"`
	BookingID    string    `json:"booking_id" db:"booking_id"`
	TechnicianID string    `json:"technician_id,omitempty" db:"technician_id"`
	ServiceID    string    `json:"service_id" db:"service_id"`
	Author       string    `json:"author" db:"author"`
	Rating       int       `json:"rating" db:"rating"`
	Comment      string    `json:"comment,omitempty" db:"comment"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
