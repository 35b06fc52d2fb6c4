package handler

import (
	"net/http"

	"github.com/yookve/api/internal/middleware"
	"github.com/yookve/api/internal/model"
	"github.com/yookve/api/internal/service"
)

// PreferenceHandler handles travel-preference endpoints
type PreferenceHandler struct {
	preferences *service.PreferenceService
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(preferences *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

// PreferenceRequest represents a preference submission
type PreferenceRequest struct {
	Destination       string   `json:"destination,omitempty"`
	TravelType        string   `json:"travelType,omitempty"`
	Interests         []string `json:"interests,omitempty"`
	Budget            int      `json:"budget,omitempty"`
	DepartureDate     string   `json:"departureDate,omitempty"`
	ReturnDate        string   `json:"returnDate,omitempty"`
	NumAdults         int      `json:"numAdults,omitempty"`
	NumChildren       int      `json:"numChildren,omitempty"`
	NumInfants        int      `json:"numInfants,omitempty"`
	AccommodationType string   `json:"accommodationType,omitempty"`
}

// Save handles POST /api/preferences
func (h *PreferenceHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req PreferenceRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Corpo della richiesta non valido"))
		return
	}

	saved, err := h.preferences.Save(r.Context(), userID, &model.Preference{
		Destination:       req.Destination,
		TravelType:        req.TravelType,
		Interests:         req.Interests,
		Budget:            req.Budget,
		DepartureDate:     req.DepartureDate,
		ReturnDate:        req.ReturnDate,
		NumAdults:         req.NumAdults,
		NumChildren:       req.NumChildren,
		NumInfants:        req.NumInfants,
		AccommodationType: req.AccommodationType,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteSuccess(w, http.StatusCreated, saved)
}

// GetActive handles GET /api/preferences
func (h *PreferenceHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	pref, err := h.preferences.GetActive(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteSuccess(w, http.StatusOK, pref)
}

// List handles GET /api/preferences/all
func (h *PreferenceHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	prefs, err := h.preferences.List(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	if prefs == nil {
		prefs = []*model.Preference{}
	}

	WriteSuccess(w, http.StatusOK, prefs)
}
