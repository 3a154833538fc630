package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	mW "github.com/homefix/backend/internal/middleware"
	"github.com/homefix/backend/internal/models"
	"github.com/homefix/backend/internal/services"
	"github.com/homefix/backend/internal/telemetry"
)

// Services is everything the HTTP layer serves
type Services struct {
	Auth     *services.AuthService
	Ledger   *services.BookingLedger
	Catalog  *services.CatalogService
	Reviews  *services.ReviewService
	Payments *services.PaymentService
	// Ping checks the database; nil for the in-memory store
	Ping       func(ctx context.Context) error
	SwaggerURL string
}

func NewRouter(svc Services) http.Handler {
	authHandler := NewAuthHandler(svc.Auth)
	catalogHandler := NewCatalogHandler(svc.Catalog, svc.Reviews)
	bookingHandler := NewBookingHandler(svc.Ledger, svc.Reviews)
	paymentHandler := NewPaymentHandler(svc.Ledger, svc.Payments)
	adminHandler := NewAdminHandler(svc.Ledger, svc.Catalog)
	systemHandler := NewSystemHandler(svc.Ping)

	r := chi.NewRouter()

	// Middleware
	r.Use(mW.SecurityHeaders)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(telemetry.Metrics)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Get("/", systemHandler.Root)
	r.Get("/health", systemHandler.Health)
	r.Handle("/metrics", promhttp.Handler())

	if svc.SwaggerURL != "" {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(svc.SwaggerURL)))
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints (no auth required)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)

		r.Get("/services", catalogHandler.ListServices)
		r.Get("/services/{serviceId}", catalogHandler.GetService)
		r.Get("/technicians", catalogHandler.ListTechnicians)
		r.Get("/technicians/{technicianId}", catalogHandler.GetTechnician)
		r.Get("/technicians/{technicianId}/reviews", catalogHandler.ListTechnicianReviews)

		r.Post("/bookings", bookingHandler.CreateBooking)

		// Protected endpoints (auth required)
		r.Group(func(r chi.Router) {
			r.Use(mW.AuthMiddleware)

			r.Get("/auth/me", authHandler.Me)

			r.Get("/bookings", bookingHandler.ListBookings)
			r.Get("/bookings/{bookingId}", bookingHandler.GetBooking)
			r.Post("/bookings/{bookingId}/cancel", bookingHandler.CancelBooking)
			r.Post("/bookings/{bookingId}/reviews", bookingHandler.CreateReview)
			r.Post("/bookings/{bookingId}/payment", paymentHandler.StartPayment)
			r.Post("/bookings/{bookingId}/verify-payment", paymentHandler.VerifyPayment)
		})

		// Admin endpoints
		r.Route("/admin", func(r chi.Router) {
			r.Use(mW.AuthMiddleware)
			r.Use(mW.RequireRole(models.RoleAdmin))

			r.Get("/stats", adminHandler.Stats)
			r.Get("/bookings", adminHandler.ListBookings)
			r.Put("/bookings/{bookingId}/status", adminHandler.UpdateStatus)
			r.Post("/seed", adminHandler.Seed)
		})
	})

	return r
}
