package handler

import (
	"net/http"

	"github.com/yookve/api/internal/middleware"
	"github.com/yookve/api/internal/model"
	"github.com/yookve/api/internal/service"
)

// SavedPackageHandler handles the saved-package ("my packages") endpoints
type SavedPackageHandler struct {
	saved *service.SavedPackageService
}

// NewSavedPackageHandler creates a new saved-package handler
func NewSavedPackageHandler(saved *service.SavedPackageService) *SavedPackageHandler {
	return &SavedPackageHandler{saved: saved}
}

// SaveRequest represents a save-package request
type SaveRequest struct {
	PackageID string `json:"packageId"`
}

// Save handles POST /api/saved-packages
func (h *SavedPackageHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req SaveRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Corpo della richiesta non valido"))
		return
	}
	if req.PackageID == "" {
		WriteError(w, model.NewBadRequestError("packageId obbligatorio"))
		return
	}

	saved, err := h.saved.Save(r.Context(), userID, req.PackageID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteSuccess(w, http.StatusCreated, saved)
}

// List handles GET /api/saved-packages
func (h *SavedPackageHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	list, err := h.saved.List(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	if list == nil {
		list = []*model.SavedPackage{}
	}

	WriteSuccess(w, http.StatusOK, list)
}

// Delete handles DELETE /api/saved-packages/{id}
func (h *SavedPackageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := h.saved.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
