package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/yookve/api/internal/model"
	"github.com/yookve/api/internal/travelapi"
)

const maxRecommendations = 3

// RecommendationPackages defines the catalog access recommendations need
type RecommendationPackages interface {
	GetMatchingInterests(ctx context.Context, interests []string) ([]*model.TravelPackage, error)
	GetFlaggedRecommended(ctx context.Context, limit int) ([]*model.TravelPackage, error)
}

// TravelClient is the external recommendation API surface
type TravelClient interface {
	Enabled() bool
	SubmitPreferences(ctx context.Context, pref *model.Preference) (*travelapi.SearchResponse, error)
	JobResult(ctx context.Context, jobID string) (*travelapi.JobResult, error)
	Itinerary(ctx context.Context, jobID string) (*travelapi.Itinerary, error)
}

// RecommendationResult is the recommendation response payload
type RecommendationResult struct {
	Success  bool                   `json:"success"`
	JobID    string                 `json:"job_id,omitempty"`
	Status   string                 `json:"status,omitempty"`
	Message  string                 `json:"message,omitempty"`
	Packages []*model.TravelPackage `json:"packages"`
}

// RecommendationService produces package recommendations for a user.
// The external travel API is preferred; any failure degrades to local
// catalog matching so the response stays well-formed.
type RecommendationService struct {
	prefs    PreferenceRepository
	packages RecommendationPackages
	travel   TravelClient
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(prefs PreferenceRepository, packages RecommendationPackages, travel TravelClient) *RecommendationService {
	return &RecommendationService{prefs: prefs, packages: packages, travel: travel}
}

// Get returns recommendations for the user. With a job id the external
// job is polled once; without one the active preference is submitted.
func (s *RecommendationService) Get(ctx context.Context, userID, jobID string) (*RecommendationResult, error) {
	pref, err := s.activePreference(ctx, userID)
	if err != nil {
		return nil, err
	}

	if jobID != "" {
		return s.pollJob(ctx, pref, jobID)
	}
	return s.submit(ctx, pref)
}

// Itinerary returns a day-by-day plan for a completed search job
func (s *RecommendationService) Itinerary(ctx context.Context, userID, jobID string) (*travelapi.Itinerary, error) {
	if _, err := s.activePreference(ctx, userID); err != nil {
		return nil, err
	}

	if s.travel == nil || !s.travel.Enabled() {
		return nil, ErrExternalUnavailable
	}

	itinerary, err := s.travel.Itinerary(ctx, jobID)
	if err != nil {
		if errors.Is(err, travelapi.ErrUnavailable) {
			return nil, ErrExternalUnavailable
		}
		return nil, err
	}
	return itinerary, nil
}

func (s *RecommendationService) activePreference(ctx context.Context, userID string) (*model.Preference, error) {
	prefs, err := s.prefs.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(prefs) == 0 {
		return nil, ErrNoPreferences
	}
	return prefs[0], nil
}

func (s *RecommendationService) pollJob(ctx context.Context, pref *model.Preference, jobID string) (*RecommendationResult, error) {
	if s.travel == nil || !s.travel.Enabled() {
		return s.localSelection(ctx, pref)
	}

	result, err := s.travel.JobResult(ctx, jobID)
	if err != nil {
		slog.Warn("external job poll failed, using local matching",
			slog.String("job_id", jobID),
			slog.Any("error", err),
		)
		return s.localSelection(ctx, pref)
	}

	switch result.Status {
	case travelapi.StatusCompleted:
		return &RecommendationResult{
			Success:  true,
			JobID:    jobID,
			Status:   result.Status,
			Packages: mapExternalPackages(result.Packages),
		}, nil
	case travelapi.StatusFailed:
		return s.localSelection(ctx, pref)
	default:
		message := result.Message
		if message == "" {
			message = "Elaborazione in corso, riprova più tardi"
		}
		return &RecommendationResult{
			Success:  true,
			JobID:    jobID,
			Status:   result.Status,
			Message:  message,
			Packages: []*model.TravelPackage{},
		}, nil
	}
}

func (s *RecommendationService) submit(ctx context.Context, pref *model.Preference) (*RecommendationResult, error) {
	if s.travel == nil || !s.travel.Enabled() {
		return s.localSelection(ctx, pref)
	}

	resp, err := s.travel.SubmitPreferences(ctx, pref)
	if err != nil {
		slog.Warn("external search submission failed, using local matching",
			slog.Any("error", err),
		)
		return s.localSelection(ctx, pref)
	}

	if len(resp.Packages) > 0 {
		return &RecommendationResult{
			Success:  true,
			JobID:    resp.JobID,
			Status:   travelapi.StatusCompleted,
			Packages: mapExternalPackages(resp.Packages),
		}, nil
	}

	if resp.JobID != "" {
		status := resp.Status
		if status == "" {
			status = travelapi.StatusPending
		}
		return &RecommendationResult{
			Success:  true,
			JobID:    resp.JobID,
			Status:   status,
			Message:  "Elaborazione in corso, riprova più tardi",
			Packages: []*model.TravelPackage{},
		}, nil
	}

	return s.localSelection(ctx, pref)
}

// localSelection matches catalog categories against the stored
// interests. No interests, or no intersection, falls back to packages
// flagged as generally recommended.
func (s *RecommendationService) localSelection(ctx context.Context, pref *model.Preference) (*RecommendationResult, error) {
	if len(pref.Interests) > 0 {
		matches, err := s.packages.GetMatchingInterests(ctx, pref.Interests)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			sort.SliceStable(matches, func(i, j int) bool {
				return matches[i].MatchScore(pref.Interests) > matches[j].MatchScore(pref.Interests)
			})
			if len(matches) > maxRecommendations {
				matches = matches[:maxRecommendations]
			}
			return &RecommendationResult{Success: true, Packages: matches}, nil
		}
	}

	flagged, err := s.packages.GetFlaggedRecommended(ctx, maxRecommendations)
	if err != nil {
		return nil, err
	}
	return &RecommendationResult{Success: true, Packages: flagged}, nil
}

// mapExternalPackages converts external package shapes into catalog
// entries for a uniform response.
func mapExternalPackages(external []travelapi.Package) []*model.TravelPackage {
	packages := make([]*model.TravelPackage, 0, len(external))
	for _, p := range external {
		packages = append(packages, &model.TravelPackage{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Destination:  p.Destination,
			ImageURL:     p.ImageURL,
			Rating:       p.Rating,
			Price:        p.Price,
			DurationDays: parseDurationDays(p.Duration),
		})
	}
	return packages
}

// parseDurationDays extracts the leading number from strings like
// "3 giorni"; unknown shapes yield zero.
func parseDurationDays(duration string) int {
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return 0
	}
	days, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return days
}
