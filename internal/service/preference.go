package service

import (
	"context"
	"time"

	"github.com/yookve/api/internal/model"
)

// PreferenceRepository defines the interface for preference storage
type PreferenceRepository interface {
	Create(ctx context.Context, pref *model.Preference) (*model.Preference, error)
	GetByUserID(ctx context.Context, userID string) ([]*model.Preference, error)
}

// PreferenceService stores and retrieves travel preferences.
// Preferences are immutable: each submission creates a new document and
// the most recent one drives recommendations.
type PreferenceService struct {
	prefs PreferenceRepository
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(prefs PreferenceRepository) *PreferenceService {
	return &PreferenceService{prefs: prefs}
}

// Save stores a new preference for the user
func (s *PreferenceService) Save(ctx context.Context, userID string, pref *model.Preference) (*model.Preference, error) {
	pref.ID = ""
	pref.UserID = userID
	pref.CreatedAt = time.Now().UTC()
	if pref.NumAdults <= 0 {
		pref.NumAdults = 1
	}
	return s.prefs.Create(ctx, pref)
}

// GetActive returns the user's most recent preference
func (s *PreferenceService) GetActive(ctx context.Context, userID string) (*model.Preference, error) {
	prefs, err := s.prefs.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(prefs) == 0 {
		return nil, ErrNoPreferences
	}
	return prefs[0], nil
}

// List returns all of the user's preferences, most recent first
func (s *PreferenceService) List(ctx context.Context, userID string) ([]*model.Preference, error) {
	return s.prefs.GetByUserID(ctx, userID)
}
