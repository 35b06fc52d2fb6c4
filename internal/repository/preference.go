package repository

import (
	"context"

	"github.com/yookve/api/internal/database"
	"github.com/yookve/api/internal/model"
)

// PreferenceRepository handles travel-preference data access
type PreferenceRepository struct {
	*Repository[*model.Preference]
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(store database.Store) *PreferenceRepository {
	return &PreferenceRepository{newRepository(store, TablePreferences, decodePreference)}
}

// GetByUserID retrieves a user's preferences, most recent first. Element
// zero is the active preference used for recommendations.
func (r *PreferenceRepository) GetByUserID(ctx context.Context, userID string) ([]*model.Preference, error) {
	return r.Search(ctx, "userId = $user_id", map[string]interface{}{
		"user_id": userID,
	}, "createdAt DESC", 0)
}

func decodePreference(doc database.Document) *model.Preference {
	return &model.Preference{
		ID:                recordKey(doc["id"]),
		UserID:            getString(doc, "userId"),
		Destination:       getString(doc, "destination"),
		TravelType:        getString(doc, "travelType"),
		Interests:         getStringSlice(doc, "interests"),
		Budget:            getInt(doc, "budget"),
		DepartureDate:     getString(doc, "departureDate"),
		ReturnDate:        getString(doc, "returnDate"),
		NumAdults:         getInt(doc, "numAdults"),
		NumChildren:       getInt(doc, "numChildren"),
		NumInfants:        getInt(doc, "numInfants"),
		AccommodationType: getString(doc, "accommodationType"),
		CreatedAt:         getTime(doc, "createdAt"),
	}
}
