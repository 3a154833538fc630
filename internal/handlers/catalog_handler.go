package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/homefix/backend/internal/services"
)

type CatalogHandler struct {
	catalog *services.CatalogService
	reviews *services.ReviewService
}

func NewCatalogHandler(catalog *services.CatalogService, reviews *services.ReviewService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, reviews: reviews}
}

// ListServices lists bookable services
// @Summary List services
// @Description All service categories, newest first
// @Tags catalog
// @Produce json
// @Success 200 {object} ListResponse{data=[]models.Service}
// @Failure 500 {object} services.ErrorResponse
// @Router /services [get]
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListServices(r.Context())
	if err != nil {
		services.WriteError(w, err)
		return
	}
	log.Printf("[CATALOG] Found %d services", len(list))
	writeJSON(w, http.StatusOK, ListResponse{Count: len(list), Data: list})
}

// GetService returns one service
// @Summary Get service
// @Tags catalog
// @Produce json
// @Param serviceId path string true "Service ID"
// @Success 200 {object} models.Service
// @Failure 404 {object} services.ErrorResponse
// @Router /services/{serviceId} [get]
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	service, err := h.catalog.GetService(r.Context(), chi.URLParam(r, "serviceId"))
	if err != nil {
		services.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, service)
}

// ListTechnicians lists technicians
// @Summary List technicians
// @Tags catalog
// @Produce json
// @Param specialization query string false "Category filter" Enums(plumbing, electrical, cleaning, painting, carpentry, ac)
// @Success 200 {object} ListResponse{data=[]models.Technician}
// @Router /technicians [get]
func (h *CatalogHandler) ListTechnicians(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListTechnicians(r.Context(), r.URL.Query().Get("specialization"))
	if err != nil {
		services.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse{Count: len(list), Data: list})
}

// GetTechnician returns a technician with their rating
// @Summary Get technician
// @Tags catalog
// @Produce json
// @Param technicianId path string true "Technician ID"
// @Success 200 {object} models.Technician
// @Failure 404 {object} services.ErrorResponse
// @Router /technicians/{technicianId} [get]
func (h *CatalogHandler) GetTechnician(w http.ResponseWriter, r *http.Request) {
	technician, err := h.catalog.GetTechnician(r.Context(), chi.URLParam(r, "technicianId"))
	if err != nil {
		services.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, technician)
}

// ListTechnicianReviews returns a technician's reviews
// @Summary Technician reviews
// @Tags catalog
// @Produce json
// @Param technicianId path string true "Technician ID"
// @Success 200 {object} ListResponse{data=[]models.Review}
// @Failure 404 {object} services.ErrorResponse
// @Router /technicians/{technicianId}/reviews [get]
func (h *CatalogHandler) ListTechnicianReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "technicianId")
	if _, err := h.catalog.GetTechnician(r.Context(), id); err != nil {
		services.WriteError(w, err)
		return
	}

	list, err := h.reviews.ListByTechnician(r.Context(), id)
	if err != nil {
		services.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse{Count: len(list), Data: list})
}
