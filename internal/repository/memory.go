package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/homefix/backend/internal/models"
)

// MemoryBookingRepository keeps bookings in process memory.
// Every method runs under a single lock, so inserts and updates are atomic.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []*models.Booking
	byID     map[string]*models.Booking
	now      func() time.Time
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		byID: make(map[string]*models.Booking),
		now:  time.Now,
	}
}

func (r *MemoryBookingRepository) Insert(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[booking.ID]; exists {
		return ErrConflict
	}

	stored := *booking
	r.bookings = append(r.bookings, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

func (r *MemoryBookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *b
	return &out, nil
}

func (r *MemoryBookingRepository) ListByCustomerEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return r.collect(func(b *models.Booking) bool {
		return strings.EqualFold(b.Customer.Email, email)
	}), nil
}

func (r *MemoryBookingRepository) ListAll(ctx context.Context) ([]models.Booking, error) {
	return r.collect(func(*models.Booking) bool { return true }), nil
}

func (r *MemoryBookingRepository) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	return r.mutate(id, func(b *models.Booking) error {
		b.Status = status
		return nil
	})
}

// MarkPaid refuses a booking already paid under a different reference.
func (r *MemoryBookingRepository) MarkPaid(ctx context.Context, id, paymentRef string) (*models.Booking, error) {
	return r.mutate(id, func(b *models.Booking) error {
		if b.PaymentStatus == models.PaymentStatusPaid && b.PaymentRef != paymentRef {
			return ErrConflict
		}
		b.PaymentStatus = models.PaymentStatusPaid
		b.Status = models.BookingStatusConfirmed
		b.PaymentRef = paymentRef
		return nil
	})
}

func (r *MemoryBookingRepository) mutate(id string, apply func(*models.Booking) error) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := apply(b); err != nil {
		return nil, err
	}
	b.UpdatedAt = r.now()

	out := *b
	return &out, nil
}

// collect walks newest-inserted first so equal timestamps keep that order after the stable sort.
func (r *MemoryBookingRepository) collect(match func(*models.Booking) bool) []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Booking, 0)
	for i := len(r.bookings) - 1; i >= 0; i-- {
		if match(r.bookings[i]) {
			out = append(out, *r.bookings[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// MemoryCatalogRepository keeps services and technicians in process memory.
type MemoryCatalogRepository struct {
	mu          sync.RWMutex
	services    []models.Service
	technicians []models.Technician
}

func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{}
}

func (r *MemoryCatalogRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Service, len(r.services))
	copy(out, r.services)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryCatalogRepository) GetService(ctx context.Context, id string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.services {
		if r.services[i].ID == id {
			s := r.services[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryCatalogRepository) ListTechnicians(ctx context.Context, specialization string) ([]models.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Technician, 0, len(r.technicians))
	for _, t := range r.technicians {
		if specialization == "" || t.Specialization == specialization {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *MemoryCatalogRepository) GetTechnician(ctx context.Context, id string) (*models.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.technicians {
		if r.technicians[i].ID == id {
			t := r.technicians[i]
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryCatalogRepository) ReplaceAll(ctx context.Context, services []models.Service, technicians []models.Technician) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.services = append([]models.Service(nil), services...)
	r.technicians = append([]models.Technician(nil), technicians...)
	return nil
}

// MemoryUserRepository is an in-process identity store keyed by lowercase email.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return ErrConflict
	}
	stored := *user
	r.byEmail[key] = &stored
	r.byID[stored.ID] = &stored
	return nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}

// MemoryReviewRepository enforces one review per booking.
type MemoryReviewRepository struct {
	mu      sync.RWMutex
	reviews []models.Review
}

func NewMemoryReviewRepository() *MemoryReviewRepository {
	return &MemoryReviewRepository{}
}

func (r *MemoryReviewRepository) Create(ctx context.Context, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reviews {
		if existing.BookingID == review.BookingID {
			return ErrConflict
		}
	}
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *MemoryReviewRepository) ListByTechnician(ctx context.Context, technicianID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Review, 0)
	for i := len(r.reviews) - 1; i >= 0; i-- {
		if r.reviews[i].TechnicianID == technicianID {
			out = append(out, r.reviews[i])
		}
	}
	return out, nil
}
