package handlers

import (
	"context"
	"net/http"
	"time"
)

// HealthResponse reports liveness and storage connectivity
type HealthResponse struct {
	Status    string    `json:"status" example:"OK"`
	Message   string    `json:"message" example:"Backend is running"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database" example:"Connected"`
}

type SystemHandler struct {
	ping func(ctx context.Context) error
}

// NewSystemHandler takes the store's ping. nil means an in-memory store.
func NewSystemHandler(ping func(ctx context.Context) error) *SystemHandler {
	return &SystemHandler{ping: ping}
}

// Root lists the main endpoints
// @Summary API banner
// @Tags system
// @Produce json
// @Success 200 {object} map[string]any
// @Router / [get]
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "HomeFix Smart Services API",
		"status":  "running",
		"endpoints": map[string]string{
			"health":   "/health",
			"metrics":  "/metrics",
			"docs":     "/swagger/index.html",
			"services": "/api/v1/services",
			"bookings": "/api/v1/bookings",
			"seed":     "/api/v1/admin/seed",
		},
	})
}

// Health reports whether the database answers
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "OK",
		Message:   "Backend is running",
		Timestamp: time.Now().UTC(),
		Database:  "In-memory",
	}
	status := http.StatusOK

	if h.ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			resp.Status = "DEGRADED"
			resp.Database = "Disconnected"
			status = http.StatusServiceUnavailable
		} else {
			resp.Database = "Connected"
		}
	}
	writeJSON(w, status, resp)
}
