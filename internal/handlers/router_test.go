package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homefix/backend/internal/config"
	mW "github.com/homefix/backend/internal/middleware"
	"github.com/homefix/backend/internal/models"
	"github.com/homefix/backend/internal/repository"
	"github.com/homefix/backend/internal/services"
)

type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	viper.Set("jwt.secret_key", "test-secret")
	viper.Set("jwt.expiry_hours", 24)
	viper.Set("argon2.time", 1)
	viper.Set("argon2.memory", 8*1024)
	viper.Set("argon2.threads", 1)
	viper.Set("argon2.key_length", 32)
	viper.Set("argon2.salt_length", 16)
	mW.InitAuthMiddleware(nil)

	cfg := &config.BookingConfig{
		Currency:          "INR",
		PaymentSessionTTL: 15 * time.Minute,
		PaymentRefPrefix:  "PAY",
		PaymentDeepLink:   "homefix://pay",
		QRImageSize:       128,
	}

	catalogRepo := repository.NewMemoryCatalogRepository()
	reviewRepo := repository.NewMemoryReviewRepository()
	auth := services.NewAuthService(repository.NewMemoryUserRepository(), nil)
	ledger := services.NewBookingLedger(repository.NewMemoryBookingRepository(), catalogRepo, nil, cfg.Currency)
	catalog := services.NewCatalogService(catalogRepo, reviewRepo, nil, time.Minute)

	require.NoError(t, auth.EnsureAdmin(context.Background(), "admin@homefix.in", "admin-pass"))

	return &testServer{handler: NewRouter(Services{
		Auth:     auth,
		Ledger:   ledger,
		Catalog:  catalog,
		Reviews:  services.NewReviewService(reviewRepo, ledger),
		Payments: services.NewPaymentService(ledger, nil, cfg),
	})}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	r := httptest.NewRequest(method, path, &buf)
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, r)
	return w
}

func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/v1/auth/login", "", services.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp services.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func (s *testServer) register(t *testing.T, name, email string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/v1/auth/register", "", services.RegisterRequest{
		Name: name, Email: email, Phone: "+919800000000", Password: "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp services.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func bookingRequest(email, serviceID string) map[string]any {
	return map[string]any{
		"customer": map[string]string{
			"name":  "Asha Rao",
			"email": email,
			"phone": "+919800000000",
		},
		"service_id":   serviceID,
		"scheduled_at": "2026-11-02 10:00",
	}
}

func TestRouter_System(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "HomeFix")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = srv.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "In-memory", decode[HealthResponse](t, w).Database)

	w = srv.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "homefix_http_requests_total")
}

func TestSystemHandler_HealthDown(t *testing.T) {
	h := NewSystemHandler(func(ctx context.Context) error { return errors.New("connection refused") })
	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Disconnected", decode[HealthResponse](t, w).Database)
}

func TestRouter_Auth(t *testing.T) {
	srv := newTestServer(t)
	token := srv.register(t, "Asha Rao", "asha@example.com")

	t.Run("duplicate registration", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/api/v1/auth/register", "", services.RegisterRequest{
			Name: "Asha", Email: "ASHA@example.com", Phone: "+91", Password: "password123",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"email":"a@b.c","password":"secret1","otp":"1"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("two objects rejected", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"email":"a@b.c","password":"secret1"}{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "single JSON object")
	})

	t.Run("bad credentials", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/api/v1/auth/login", "", services.LoginRequest{Email: "asha@example.com", Password: "nope-nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		user := decode[models.User](t, w)
		assert.Equal(t, "asha@example.com", user.Email)
		assert.NotContains(t, w.Body.String(), "password")

		w = srv.do(t, http.MethodGet, "/api/v1/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRouter_Catalog(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.login(t, "admin@homefix.in", "admin-pass")
	customer := srv.register(t, "Asha Rao", "asha@example.com")

	w := srv.do(t, http.MethodPost, "/api/v1/admin/seed", customer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = srv.do(t, http.MethodPost, "/api/v1/admin/seed", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 6, decode[ListResponse](t, w).Count)

	w = srv.do(t, http.MethodGet, "/api/v1/services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 6, decode[ListResponse](t, w).Count)

	w = srv.do(t, http.MethodGet, "/api/v1/services/svc-painting", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Painting Services", decode[models.Service](t, w).Title)

	w = srv.do(t, http.MethodGet, "/api/v1/services/svc-nothing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.do(t, http.MethodGet, "/api/v1/technicians?specialization=ac", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[ListResponse](t, w).Count)

	w = srv.do(t, http.MethodGet, "/api/v1/technicians/tech-ac-1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.do(t, http.MethodGet, "/api/v1/technicians/tech-ac-1/reviews", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[ListResponse](t, w).Count)

	w = srv.do(t, http.MethodGet, "/api/v1/technicians/tech-nobody/reviews", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_BookingLifecycle(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.login(t, "admin@homefix.in", "admin-pass")
	require.Equal(t, http.StatusOK, srv.do(t, http.MethodPost, "/api/v1/admin/seed", admin, nil).Code)

	owner := srv.register(t, "Asha Rao", "asha@example.com")
	stranger := srv.register(t, "Mallory", "mallory@example.com")

	// booking creation is public
	req := bookingRequest("asha@example.com", "svc-electrical")
	req["technician_id"] = "tech-electrical-1"
	w := srv.do(t, http.MethodPost, "/api/v1/bookings", "", req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	booking := decode[models.Booking](t, w)
	assert.Equal(t, int64(599), booking.Amount)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, models.PaymentStatusPending, booking.PaymentStatus)

	t.Run("invalid creations", func(t *testing.T) {
		bad := bookingRequest("", "svc-electrical")
		w := srv.do(t, http.MethodPost, "/api/v1/bookings", "", bad)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[services.ErrorResponse](t, w).Details, "Email")

		w = srv.do(t, http.MethodPost, "/api/v1/bookings", "", bookingRequest("asha@example.com", "svc-moving"))
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = srv.do(t, http.MethodPost, "/api/v1/bookings", "", `{"customer":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("access control", func(t *testing.T) {
		path := "/api/v1/bookings/" + booking.ID
		assert.Equal(t, http.StatusUnauthorized, srv.do(t, http.MethodGet, path, "", nil).Code)
		assert.Equal(t, http.StatusForbidden, srv.do(t, http.MethodGet, path, stranger, nil).Code)
		assert.Equal(t, http.StatusOK, srv.do(t, http.MethodGet, path, owner, nil).Code)
		assert.Equal(t, http.StatusOK, srv.do(t, http.MethodGet, path, admin, nil).Code)
		assert.Equal(t, http.StatusNotFound, srv.do(t, http.MethodGet, "/api/v1/bookings/missing", owner, nil).Code)
	})

	t.Run("listing", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/api/v1/bookings", owner, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, decode[ListResponse](t, w).Count)

		w = srv.do(t, http.MethodGet, "/api/v1/bookings", stranger, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, decode[ListResponse](t, w).Count)

		w = srv.do(t, http.MethodGet, "/api/v1/bookings?email=asha@example.com", stranger, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = srv.do(t, http.MethodGet, "/api/v1/bookings?email=asha@example.com", admin, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, decode[ListResponse](t, w).Count)

		w = srv.do(t, http.MethodGet, "/api/v1/admin/bookings", admin, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, decode[ListResponse](t, w).Count)
	})

	t.Run("payment", func(t *testing.T) {
		path := "/api/v1/bookings/" + booking.ID
		assert.Equal(t, http.StatusForbidden, srv.do(t, http.MethodPost, path+"/payment", stranger, nil).Code)

		w := srv.do(t, http.MethodPost, path+"/payment", owner, nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		session := decode[services.PaymentSession](t, w)
		assert.NotEmpty(t, session.QRCode)

		w = srv.do(t, http.MethodPost, path+"/verify-payment", owner, VerifyPaymentRequest{PaymentRef: session.PaymentRef})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		paid := decode[models.Booking](t, w)
		assert.Equal(t, models.BookingStatusConfirmed, paid.Status)
		assert.Equal(t, models.PaymentStatusPaid, paid.PaymentStatus)

		w = srv.do(t, http.MethodPost, path+"/verify-payment", owner, VerifyPaymentRequest{PaymentRef: session.PaymentRef})
		assert.Equal(t, http.StatusOK, w.Code)

		w = srv.do(t, http.MethodPost, path+"/verify-payment", owner, VerifyPaymentRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("admin status and stats", func(t *testing.T) {
		path := "/api/v1/admin/bookings/" + booking.ID + "/status"
		assert.Equal(t, http.StatusForbidden, srv.do(t, http.MethodPut, path, owner, StatusUpdateRequest{Status: "completed"}).Code)
		assert.Equal(t, http.StatusBadRequest, srv.do(t, http.MethodPut, path, admin, StatusUpdateRequest{Status: "archived"}).Code)
		assert.Equal(t, http.StatusNotFound, srv.do(t, http.MethodPut, "/api/v1/admin/bookings/missing/status", admin, StatusUpdateRequest{Status: "completed"}).Code)

		w := srv.do(t, http.MethodPut, path, admin, StatusUpdateRequest{Status: models.BookingStatusCompleted})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, models.BookingStatusCompleted, decode[models.Booking](t, w).Status)

		w = srv.do(t, http.MethodGet, "/api/v1/admin/stats", admin, nil)
		require.Equal(t, http.StatusOK, w.Code)
		stats := decode[models.Stats](t, w)
		assert.Equal(t, 1, stats.TotalBookings)
		assert.Equal(t, 1, stats.CompletedBookings)
		assert.Equal(t, 1, stats.PaidBookings)
		assert.Equal(t, int64(599), stats.TotalRevenue)

		assert.Equal(t, http.StatusForbidden, srv.do(t, http.MethodGet, "/api/v1/admin/stats", owner, nil).Code)
	})

	t.Run("reviews", func(t *testing.T) {
		path := "/api/v1/bookings/" + booking.ID + "/reviews"
		assert.Equal(t, http.StatusForbidden, srv.do(t, http.MethodPost, path, stranger, services.CreateReviewInput{Rating: 1}).Code)

		w := srv.do(t, http.MethodPost, path, owner, services.CreateReviewInput{Rating: 5, Comment: "Quick and tidy"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		assert.Equal(t, http.StatusConflict, srv.do(t, http.MethodPost, path, owner, services.CreateReviewInput{Rating: 4}).Code)

		w = srv.do(t, http.MethodGet, "/api/v1/technicians/tech-electrical-1", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		tech := decode[models.Technician](t, w)
		assert.Equal(t, 1, tech.ReviewCount)
		assert.InDelta(t, 5.0, tech.Rating, 0.001)
	})

	t.Run("cancel", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/api/v1/bookings", "", bookingRequest("asha@example.com", "svc-plumbing"))
		require.Equal(t, http.StatusCreated, w.Code)
		second := decode[models.Booking](t, w)

		path := "/api/v1/bookings/" + second.ID + "/cancel"
		assert.Equal(t, http.StatusForbidden, srv.do(t, http.MethodPost, path, stranger, nil).Code)

		w = srv.do(t, http.MethodPost, path, owner, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, models.BookingStatusCancelled, decode[models.Booking](t, w).Status)

		w = srv.do(t, http.MethodGet, "/api/v1/admin/stats", admin, nil)
		stats := decode[models.Stats](t, w)
		assert.Equal(t, 2, stats.TotalBookings)
		assert.Equal(t, 1, stats.CancelledBookings)
	})
}
