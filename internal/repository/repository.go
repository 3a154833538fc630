package repository

import (
	"context"
	"errors"

	"github.com/homefix/backend/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record conflicts with stored state")
)

// BookingRepository is the storage behind the booking ledger.
// List methods return bookings newest first.
type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
	MarkPaid(ctx context.Context, id, paymentRef string) (*models.Booking, error)
}

// CatalogRepository holds services and technicians.
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListTechnicians(ctx context.Context, specialization string) ([]models.Technician, error)
	GetTechnician(ctx context.Context, id string) (*models.Technician, error)
	// ReplaceAll wipes the catalog and inserts the given records.
	ReplaceAll(ctx context.Context, services []models.Service, technicians []models.Technician) error
}

// UserRepository is the identity store.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// ReviewRepository stores one review per booking.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListByTechnician(ctx context.Context, technicianID string) ([]models.Review, error)
}
