package handler

import (
	"net/http"
	"strconv"

	"github.com/yookve/api/internal/model"
	"github.com/yookve/api/internal/repository"
	"github.com/yookve/api/internal/service"
)

// PackageHandler handles the travel-package catalog endpoints. Catalog
// responses are bare entities and arrays, matching what the web client
// renders.
type PackageHandler struct {
	catalog *service.CatalogService
}

// NewPackageHandler creates a new package handler
func NewPackageHandler(catalog *service.CatalogService) *PackageHandler {
	return &PackageHandler{catalog: catalog}
}

// List handles GET /api/travel-packages
func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	packages, err := h.catalog.ListPackages(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	if packages == nil {
		packages = []*model.TravelPackage{}
	}
	WriteJSON(w, http.StatusOK, packages)
}

// Get handles GET /api/travel-packages/{id}
func (h *PackageHandler) Get(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.catalog.GetPackage(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, pkg)
}

// ByCategory handles GET /api/travel-packages/category/{category}
func (h *PackageHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	packages, err := h.catalog.GetByCategory(r.Context(), r.PathValue("category"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	if packages == nil {
		packages = []*model.TravelPackage{}
	}
	WriteJSON(w, http.StatusOK, packages)
}

// Search handles GET /api/travel-packages/search with query-string filters
func (h *PackageHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := repository.SearchFilters{
		Query:       query.Get("q"),
		Destination: query.Get("destination"),
		Category:    query.Get("category"),
	}
	if v := query.Get("minPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MinPrice = price
		}
	}
	if v := query.Get("maxPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MaxPrice = price
		}
	}
	if v := query.Get("duration"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			filters.Duration = days
		}
	}

	packages, err := h.catalog.Search(r.Context(), filters)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	if packages == nil {
		packages = []*model.TravelPackage{}
	}
	WriteJSON(w, http.StatusOK, packages)
}

// Create handles POST /api/travel-packages
func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var pkg model.TravelPackage
	if err := DecodeJSON(r, &pkg); err != nil {
		WriteError(w, model.NewBadRequestError("Corpo della richiesta non valido"))
		return
	}

	created, err := h.catalog.CreatePackage(r.Context(), &pkg)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}
