package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yookve/api/internal/model"
	"github.com/yookve/api/internal/repository"
	"github.com/yookve/api/internal/travelapi"
	"github.com/yookve/api/pkg/jwt"
)

// Mock implementations shared across service tests

type mockUserRepo struct {
	users     map[string]*model.User
	nextID    int
	createErr error
	getErr    error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.nextID++
	stored := *user
	stored.ID = fmt.Sprintf("user-%d", m.nextID)
	m.users[stored.ID] = &stored
	return &stored, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	user, ok := m.users[id]
	return user, ok, nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	for _, user := range m.users {
		if user.Username == username {
			return user, true, nil
		}
	}
	return nil, false, nil
}

type mockTokenService struct {
	signErr     error
	validateErr error
	lastClaims  jwt.Claims
}

func (m *mockTokenService) Sign(claims jwt.Claims) (string, error) {
	if m.signErr != nil {
		return "", m.signErr
	}
	m.lastClaims = claims
	return "token-" + claims.Username, nil
}

func (m *mockTokenService) Validate(token string) (*jwt.Claims, error) {
	if m.validateErr != nil {
		return nil, m.validateErr
	}
	return &jwt.Claims{Username: strings.TrimPrefix(token, "token-")}, nil
}

func (m *mockTokenService) GetExpiration() time.Duration {
	return time.Hour
}

type mockPackageRepo struct {
	packages map[string]*model.TravelPackage
	nextID   int
	err      error
}

func newMockPackageRepo(packages ...*model.TravelPackage) *mockPackageRepo {
	m := &mockPackageRepo{packages: make(map[string]*model.TravelPackage)}
	for _, pkg := range packages {
		m.packages[pkg.ID] = pkg
	}
	return m
}

func (m *mockPackageRepo) GetAll(ctx context.Context, limit int) ([]*model.TravelPackage, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []*model.TravelPackage
	for _, pkg := range m.packages {
		result = append(result, pkg)
	}
	return result, nil
}

func (m *mockPackageRepo) GetByID(ctx context.Context, id string) (*model.TravelPackage, bool, error) {
	if m.err != nil {
		return nil, false, m.err
	}
	pkg, ok := m.packages[id]
	return pkg, ok, nil
}

func (m *mockPackageRepo) GetByCategory(ctx context.Context, category string) ([]*model.TravelPackage, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []*model.TravelPackage
	for _, pkg := range m.packages {
		for _, c := range pkg.Categories {
			if c == category {
				result = append(result, pkg)
				break
			}
		}
	}
	return result, nil
}

func (m *mockPackageRepo) SearchPackages(ctx context.Context, filters repository.SearchFilters) ([]*model.TravelPackage, error) {
	return m.GetAll(ctx, 0)
}

func (m *mockPackageRepo) GetMatchingInterests(ctx context.Context, interests []string) ([]*model.TravelPackage, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []*model.TravelPackage
	for _, pkg := range m.packages {
		if pkg.MatchScore(interests) > 0 {
			result = append(result, pkg)
		}
	}
	return result, nil
}

func (m *mockPackageRepo) GetFlaggedRecommended(ctx context.Context, limit int) ([]*model.TravelPackage, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []*model.TravelPackage
	for _, pkg := range m.packages {
		if pkg.IsRecommended {
			result = append(result, pkg)
			if limit > 0 && len(result) == limit {
				break
			}
		}
	}
	return result, nil
}

func (m *mockPackageRepo) Create(ctx context.Context, pkg *model.TravelPackage) (*model.TravelPackage, error) {
	if m.err != nil {
		return nil, m.err
	}
	stored := *pkg
	if stored.ID == "" {
		m.nextID++
		stored.ID = fmt.Sprintf("pkg-%d", m.nextID)
	}
	m.packages[stored.ID] = &stored
	return &stored, nil
}

type mockBookingRepo struct {
	bookings map[string]*model.Booking
	nextID   int
	err      error
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{bookings: make(map[string]*model.Booking)}
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.nextID++
	stored := *booking
	stored.ID = fmt.Sprintf("booking-%d", m.nextID)
	m.bookings[stored.ID] = &stored
	return &stored, nil
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, bool, error) {
	if m.err != nil {
		return nil, false, m.err
	}
	booking, ok := m.bookings[id]
	return booking, ok, nil
}

func (m *mockBookingRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []*model.Booking
	for _, booking := range m.bookings {
		if booking.UserID == userID {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, bool, error) {
	booking, ok := m.bookings[id]
	if !ok {
		return nil, false, nil
	}
	booking.Status = status
	return booking, true, nil
}

func (m *mockBookingRepo) UpdatePayment(ctx context.Context, id string, payment model.PaymentStatus, status model.BookingStatus) (*model.Booking, bool, error) {
	booking, ok := m.bookings[id]
	if !ok {
		return nil, false, nil
	}
	booking.PaymentStatus = payment
	booking.Status = status
	return booking, true, nil
}

type mockSavedRepo struct {
	saved  map[string]*model.SavedPackage
	nextID int
}

func newMockSavedRepo() *mockSavedRepo {
	return &mockSavedRepo{saved: make(map[string]*model.SavedPackage)}
}

func (m *mockSavedRepo) Create(ctx context.Context, saved *model.SavedPackage) (*model.SavedPackage, error) {
	m.nextID++
	stored := *saved
	stored.ID = fmt.Sprintf("saved-%d", m.nextID)
	m.saved[stored.ID] = &stored
	return &stored, nil
}

func (m *mockSavedRepo) GetByID(ctx context.Context, id string) (*model.SavedPackage, bool, error) {
	saved, ok := m.saved[id]
	return saved, ok, nil
}

func (m *mockSavedRepo) GetByUserID(ctx context.Context, userID string) ([]*model.SavedPackage, error) {
	var result []*model.SavedPackage
	for _, saved := range m.saved {
		if saved.UserID == userID {
			result = append(result, saved)
		}
	}
	return result, nil
}

func (m *mockSavedRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.saved[id]; !ok {
		return false, nil
	}
	delete(m.saved, id)
	return true, nil
}

type mockPreferenceRepo struct {
	prefs  []*model.Preference
	nextID int
	err    error
}

func (m *mockPreferenceRepo) Create(ctx context.Context, pref *model.Preference) (*model.Preference, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.nextID++
	stored := *pref
	stored.ID = fmt.Sprintf("pref-%d", m.nextID)
	// Most recent first, matching the repository ordering
	m.prefs = append([]*model.Preference{&stored}, m.prefs...)
	return &stored, nil
}

func (m *mockPreferenceRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Preference, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []*model.Preference
	for _, pref := range m.prefs {
		if pref.UserID == userID {
			result = append(result, pref)
		}
	}
	return result, nil
}

type mockTravelClient struct {
	enabled    bool
	submitResp *travelapi.SearchResponse
	submitErr  error
	jobResp    *travelapi.JobResult
	jobErr     error
	itinResp   *travelapi.Itinerary
	itinErr    error
}

func (m *mockTravelClient) Enabled() bool { return m.enabled }

func (m *mockTravelClient) SubmitPreferences(ctx context.Context, pref *model.Preference) (*travelapi.SearchResponse, error) {
	return m.submitResp, m.submitErr
}

func (m *mockTravelClient) JobResult(ctx context.Context, jobID string) (*travelapi.JobResult, error) {
	return m.jobResp, m.jobErr
}

func (m *mockTravelClient) Itinerary(ctx context.Context, jobID string) (*travelapi.Itinerary, error) {
	return m.itinResp, m.itinErr
}
