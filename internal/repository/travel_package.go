package repository

import (
	"context"
	"strings"

	"github.com/yookve/api/internal/database"
	"github.com/yookve/api/internal/model"
)

// TravelPackageRepository handles catalog data access
type TravelPackageRepository struct {
	*Repository[*model.TravelPackage]
}

// NewTravelPackageRepository creates a new travel-package repository
func NewTravelPackageRepository(store database.Store) *TravelPackageRepository {
	return &TravelPackageRepository{newRepository(store, TableTravelPackages, decodeTravelPackage)}
}

// SearchFilters narrows a catalog search. Zero values mean "no filter".
type SearchFilters struct {
	Query       string
	Destination string
	MinPrice    float64
	MaxPrice    float64
	Duration    int
	Category    string
}

// GetByCategory retrieves packages tagged with the given category. The
// match is on whole category values, not substrings.
func (r *TravelPackageRepository) GetByCategory(ctx context.Context, category string) ([]*model.TravelPackage, error) {
	return r.Search(ctx, "categories CONTAINS $category", map[string]interface{}{
		"category": category,
	}, "", 0)
}

// SearchPackages retrieves packages matching the given filters, combined
// with AND. Free-text and destination matches are case-insensitive.
func (r *TravelPackageRepository) SearchPackages(ctx context.Context, filters SearchFilters) ([]*model.TravelPackage, error) {
	var clauses []string
	vars := map[string]interface{}{}

	if filters.Query != "" {
		clauses = append(clauses,
			"(string::lowercase(title) CONTAINS $q OR string::lowercase(description) CONTAINS $q OR string::lowercase(destination) CONTAINS $q)")
		vars["q"] = strings.ToLower(filters.Query)
	}
	if filters.Destination != "" {
		clauses = append(clauses, "string::lowercase(destination) CONTAINS $destination")
		vars["destination"] = strings.ToLower(filters.Destination)
	}
	if filters.MinPrice > 0 {
		clauses = append(clauses, "price >= $min_price")
		vars["min_price"] = filters.MinPrice
	}
	if filters.MaxPrice > 0 {
		clauses = append(clauses, "price <= $max_price")
		vars["max_price"] = filters.MaxPrice
	}
	if filters.Duration > 0 {
		clauses = append(clauses, "durationDays = $duration")
		vars["duration"] = filters.Duration
	}
	if filters.Category != "" {
		clauses = append(clauses, "categories CONTAINS $category")
		vars["category"] = filters.Category
	}

	return r.Search(ctx, strings.Join(clauses, " AND "), vars, "", 0)
}

// GetMatchingInterests retrieves packages whose categories intersect the
// given interests. Relevance ordering happens in the service layer.
func (r *TravelPackageRepository) GetMatchingInterests(ctx context.Context, interests []string) ([]*model.TravelPackage, error) {
	return r.Search(ctx, "categories CONTAINSANY $interests", map[string]interface{}{
		"interests": interests,
	}, "", 0)
}

// GetFlaggedRecommended retrieves packages flagged as generally recommended
func (r *TravelPackageRepository) GetFlaggedRecommended(ctx context.Context, limit int) ([]*model.TravelPackage, error) {
	return r.Search(ctx, "isRecommended = true", nil, "", limit)
}

func decodeTravelPackage(doc database.Document) *model.TravelPackage {
	return &model.TravelPackage{
		ID:                recordKey(doc["id"]),
		Title:             getString(doc, "title"),
		Description:       getString(doc, "description"),
		Destination:       getString(doc, "destination"),
		ImageURL:          getString(doc, "imageUrl"),
		Rating:            getString(doc, "rating"),
		ReviewCount:       getInt(doc, "reviewCount"),
		AccommodationName: getString(doc, "accommodationName"),
		AccommodationType: getString(doc, "accommodationType"),
		TransportType:     getString(doc, "transportType"),
		DurationDays:      getInt(doc, "durationDays"),
		DurationNights:    getInt(doc, "durationNights"),
		Experiences:       getStringSlice(doc, "experiences"),
		Price:             getFloat(doc, "price"),
		IsRecommended:     getBool(doc, "isRecommended"),
		Categories:        getStringSlice(doc, "categories"),
	}
}
