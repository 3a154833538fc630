package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/homefix/backend/internal/models"
	"github.com/homefix/backend/internal/repository"
)

// CreateReviewInput is a customer's rating of a finished visit
type CreateReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5" example:"5"`
	Comment string `json:"comment,omitempty" validate:"max=2000" example:"Fixed the leak in 20 minutes"`
}

type ReviewService struct {
	reviews   repository.ReviewRepository
	ledger    *BookingLedger
	validator *ValidationHelper
	now       func() time.Time
}

func NewReviewService(reviews repository.ReviewRepository, ledger *BookingLedger) *ReviewService {
	return &ReviewService{
		reviews:   reviews,
		ledger:    ledger,
		validator: NewValidationHelper(),
		now:       time.Now,
	}
}

// Create stores one review per completed booking. authorEmail must own the booking.
func (s *ReviewService) Create(ctx context.Context, bookingID, authorEmail string, in CreateReviewInput) (*models.Review, error) {
	in.Comment = strings.TrimSpace(in.Comment)
	if err := s.validator.validateInput(&in, "invalid review"); err != nil {
		return nil, err
	}

	booking, err := s.ledger.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(booking.Customer.Email, strings.TrimSpace(authorEmail)) {
		return nil, fmt.Errorf("%w: booking %s belongs to another customer", ErrForbidden, booking.ID)
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, invalidInput("only completed bookings can be reviewed")
	}

	review := &models.Review{
		ID:           uuid.NewString(),
		BookingID:    booking.ID,
		TechnicianID: booking.TechnicianID,
		ServiceID:    booking.ServiceID,
		Author:       booking.Customer.Name,
		Rating:       in.Rating,
		Comment:      in.Comment,
		CreatedAt:    s.now(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%w: booking %s already reviewed", ErrConflict, booking.ID)
		}
		return nil, fromRepository(err, "review for "+booking.ID)
	}

	log.Printf("[REVIEW] Booking %s rated %d", booking.ID, review.Rating)
	return review, nil
}

// ListByTechnician returns a technician's reviews, newest first
func (s *ReviewService) ListByTechnician(ctx context.Context, technicianID string) ([]models.Review, error) {
	reviews, err := s.reviews.ListByTechnician(ctx, technicianID)
	if err != nil {
		return nil, fromRepository(err, "reviews for "+technicianID)
	}
	return reviews, nil
}
