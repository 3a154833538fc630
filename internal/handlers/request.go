package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/homefix/backend/internal/middleware"
	"github.com/homefix/backend/internal/models"
	"github.com/homefix/backend/internal/services"
)

const maxBodyBytes = 1_048_576 // 1 MB

// ListResponse wraps collection replies
// @Description Collection response
type ListResponse struct {
	Count int `json:"count" example:"1"`
	Data  any `json:"data"`
}

// MessageResponse is a bare acknowledgement
type MessageResponse struct {
	Message string `json:"message" example:"Logout successful"`
}

// decodeJSON reads exactly one JSON object into dst and reports the problem to the client on failure
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return false
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// canAccess reports whether the caller owns the booking or is an admin
func canAccess(r *http.Request, b *models.Booking) bool {
	if middleware.RoleFromContext(r.Context()) == models.RoleAdmin {
		return true
	}
	return strings.EqualFold(middleware.EmailFromContext(r.Context()), b.Customer.Email)
}
