package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/homefix/backend/docs"
	"github.com/homefix/backend/internal/config"
	"github.com/homefix/backend/internal/database"
	"github.com/homefix/backend/internal/events"
	"github.com/homefix/backend/internal/handlers"
	mW "github.com/homefix/backend/internal/middleware"
	"github.com/homefix/backend/internal/repository"
	"github.com/homefix/backend/internal/services"
	"github.com/homefix/backend/internal/telemetry"
)

// @title HomeFix Booking API
// @version 1.0
// @description Home-services booking backend: catalog, bookings, payments stub and admin stats
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type stores struct {
	bookings repository.BookingRepository
	catalog  repository.CatalogRepository
	users    repository.UserRepository
	reviews  repository.ReviewRepository
	ping     func(ctx context.Context) error
}

func main() {
	// Initialize config
	viper.SetConfigFile(".env") // explicitly point to .env file
	viper.AutomaticEnv()        // allow environment variables to override .env

	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.name", "DATABASE_NAME")
	viper.BindEnv("database.ssl_mode", "DATABASE_SSL_MODE")

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")

	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("jwt.expiry_hours", "JWT_EXPIRY_HOURS")
	viper.BindEnv("argon2.time", "ARGON2_TIME")
	viper.BindEnv("argon2.memory", "ARGON2_MEMORY")
	viper.BindEnv("argon2.threads", "ARGON2_THREADS")
	viper.BindEnv("argon2.key_length", "ARGON2_KEY_LENGTH")
	viper.BindEnv("argon2.salt_length", "ARGON2_SALT_LENGTH")

	viper.BindEnv("otel.endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("port", "PORT")
	config.BindBookingEnv()
	viper.SetDefault("app.env", "development")
	viper.SetDefault("port", "8080")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
	}

	cfg := config.LoadBookingConfig()
	port := viper.GetString("port")

	// Initialize Swagger docs
	docs.SwaggerInfo.Host = "localhost:" + port
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	shutdownTracer, err := telemetry.InitTracer(context.Background(), "homefix-backend", viper.GetString("app.env"), viper.GetString("otel.endpoint"))
	if err != nil {
		log.Printf("[TRACING] Disabled: %v", err)
		shutdownTracer = func(context.Context) error { return nil }
	}

	// Initialize storage
	st := openStores(cfg)
	defer database.CloseDB()

	redisClient := database.InitRedis()
	if redisClient != nil {
		defer redisClient.Close()
	}

	var publisher events.Publisher
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.EventsExchange)
		if err != nil {
			log.Printf("[EVENTS] Publisher unavailable, continuing without events: %v", err)
		} else {
			defer amqpPublisher.Close()
			publisher = amqpPublisher
			log.Printf("[EVENTS] Publishing to exchange %s", cfg.EventsExchange)
		}
	}

	// Initialize services
	authService := services.NewAuthService(st.users, redisClient)
	ledger := services.NewBookingLedger(st.bookings, st.catalog, publisher, cfg.Currency)
	catalogService := services.NewCatalogService(st.catalog, st.reviews, redisClient, cfg.CatalogCacheTTL)
	reviewService := services.NewReviewService(st.reviews, ledger)
	paymentService := services.NewPaymentService(ledger, redisClient, cfg)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.EnsureAdmin(bootCtx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("[AUTH] Admin bootstrap failed: %v", err)
	}
	if cfg.UsesMemoryStore() {
		if _, err := catalogService.Seed(bootCtx); err != nil {
			log.Printf("[CATALOG] Initial seed failed: %v", err)
		}
	}
	cancelBoot()

	// Initialize auth middleware with Redis
	mW.InitAuthMiddleware(redisClient)

	router := handlers.NewRouter(handlers.Services{
		Auth:       authService,
		Ledger:     ledger,
		Catalog:    catalogService,
		Reviews:    reviewService,
		Payments:   paymentService,
		Ping:       st.ping,
		SwaggerURL: "http://localhost:" + port + "/swagger/doc.json",
	})

	// Start server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s (store=%s)", port, cfg.StoreDriver)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	if err := shutdownTracer(ctx); err != nil {
		log.Printf("[TRACING] Shutdown failed: %v", err)
	}

	log.Println("Server stopped")
}

func openStores(cfg *config.BookingConfig) stores {
	if cfg.UsesMemoryStore() {
		log.Println("[STORE] Using in-memory repositories")
		return stores{
			bookings: repository.NewMemoryBookingRepository(),
			catalog:  repository.NewMemoryCatalogRepository(),
			users:    repository.NewMemoryUserRepository(),
			reviews:  repository.NewMemoryReviewRepository(),
		}
	}

	db := database.InitDatabase()
	return stores{
		bookings: repository.NewPostgresBookingRepository(db),
		catalog:  repository.NewPostgresCatalogRepository(db),
		users:    repository.NewPostgresUserRepository(db),
		reviews:  repository.NewPostgresReviewRepository(db),
		ping:     database.Ping,
	}
}
