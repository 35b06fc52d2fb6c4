package handler

import (
	"net/http"

	"github.com/yookve/api/internal/middleware"
	"github.com/yookve/api/internal/service"
)

// RecommendationHandler handles recommendation endpoints
type RecommendationHandler struct {
	recommendations *service.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommendations *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

// Get handles GET /api/recommendations. An optional job_id query
// parameter polls a previously started external search.
func (h *RecommendationHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	jobID := r.URL.Query().Get("job_id")

	result, err := h.recommendations.Get(r.Context(), userID, jobID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// Itinerary handles GET /api/saved-packages/itinerary?job_id=
func (h *RecommendationHandler) Itinerary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	jobID := r.URL.Query().Get("job_id")

	itinerary, err := h.recommendations.Itinerary(r.Context(), userID, jobID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteSuccess(w, http.StatusOK, itinerary)
}
