package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/homefix/backend/internal/models"
	"github.com/homefix/backend/internal/repository"
)

const catalogServicesKey = "catalog:services"

// CatalogService serves the storefront. The service list is cached in Redis when available.
type CatalogService struct {
	catalog  repository.CatalogRepository
	reviews  repository.ReviewRepository
	redis    *redis.Client
	cacheTTL time.Duration
	now      func() time.Time
}

func NewCatalogService(catalog repository.CatalogRepository, reviews repository.ReviewRepository, redisClient *redis.Client, cacheTTL time.Duration) *CatalogService {
	return &CatalogService{
		catalog:  catalog,
		reviews:  reviews,
		redis:    redisClient,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// ListServices returns every service, newest first
func (s *CatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	if s.redis != nil {
		data, err := s.redis.Get(ctx, catalogServicesKey).Bytes()
		if err == nil {
			var cached []models.Service
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
			log.Printf("[CATALOG] Dropping unreadable cache entry: %v", err)
		} else if err != redis.Nil {
			log.Printf("[CATALOG] Cache read failed: %v", err)
		}
	}

	services, err := s.catalog.ListServices(ctx)
	if err != nil {
		return nil, fromRepository(err, "services")
	}

	if s.redis != nil {
		if data, err := json.Marshal(services); err == nil {
			if err := s.redis.Set(ctx, catalogServicesKey, string(data), s.cacheTTL).Err(); err != nil {
				log.Printf("[CATALOG] Cache write failed: %v", err)
			}
		}
	}
	return services, nil
}

func (s *CatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	service, err := s.catalog.GetService(ctx, id)
	if err != nil {
		return nil, fromRepository(err, "service "+id)
	}
	return service, nil
}

// ListTechnicians filters by specialization when one is given
func (s *CatalogService) ListTechnicians(ctx context.Context, specialization string) ([]models.Technician, error) {
	technicians, err := s.catalog.ListTechnicians(ctx, strings.ToLower(strings.TrimSpace(specialization)))
	if err != nil {
		return nil, fromRepository(err, "technicians")
	}
	for i := range technicians {
		if err := s.withRating(ctx, &technicians[i]); err != nil {
			return nil, err
		}
	}
	return technicians, nil
}

// GetTechnician returns the technician with the average of their review ratings
func (s *CatalogService) GetTechnician(ctx context.Context, id string) (*models.Technician, error) {
	technician, err := s.catalog.GetTechnician(ctx, id)
	if err != nil {
		return nil, fromRepository(err, "technician "+id)
	}
	if err := s.withRating(ctx, technician); err != nil {
		return nil, err
	}
	return technician, nil
}

// Seed wipes the catalog, inserts the default services and technicians and drops the cache
func (s *CatalogService) Seed(ctx context.Context) ([]models.Service, error) {
	log.Println("[CATALOG] Seeding catalog...")

	services, technicians := SeedCatalog(s.now())
	if err := s.catalog.ReplaceAll(ctx, services, technicians); err != nil {
		log.Printf("[CATALOG] Seeding failed: %v", err)
		return nil, fromRepository(err, "catalog seed")
	}
	s.invalidate(ctx)

	log.Printf("[CATALOG] Seeded %d services and %d technicians", len(services), len(technicians))
	return s.ListServices(ctx)
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, catalogServicesKey).Err(); err != nil {
		log.Printf("[CATALOG] Cache invalidation failed: %v", err)
	}
}

func (s *CatalogService) withRating(ctx context.Context, t *models.Technician) error {
	if s.reviews == nil {
		return nil
	}
	reviews, err := s.reviews.ListByTechnician(ctx, t.ID)
	if err != nil {
		return fromRepository(err, "reviews for "+t.ID)
	}

	t.ReviewCount = len(reviews)
	t.Rating = 0
	if len(reviews) == 0 {
		return nil
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	t.Rating = float64(sum) / float64(len(reviews))
	return nil
}
