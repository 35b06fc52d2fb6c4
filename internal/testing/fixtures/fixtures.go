// Package fixtures provides test data factories for integration tests.
//
// Each factory method persists an entity through the real repository
// layer with sensible defaults, customizable via option functions.
//
// Usage:
//
//	f := fixtures.New(tdb.Store)
//	user := f.CreateUser(t)
//	pkg := f.CreatePackage(t)
//	booking := f.CreateBooking(t, user, pkg)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yookve/api/internal/database"
	"github.com/yookve/api/internal/model"
	"github.com/yookve/api/internal/repository"
)

// Factory creates test entities through the repository layer
type Factory struct {
	Users       *repository.UserRepository
	Packages    *repository.TravelPackageRepository
	Preferences *repository.PreferenceRepository
	Bookings    *repository.BookingRepository
	Saved       *repository.SavedPackageRepository
}

// New creates a fixture factory over the given store
func New(store database.Store) *Factory {
	return &Factory{
		Users:       repository.NewUserRepository(store),
		Packages:    repository.NewTravelPackageRepository(store),
		Preferences: repository.NewPreferenceRepository(store),
		Bookings:    repository.NewBookingRepository(store),
		Saved:       repository.NewSavedPackageRepository(store),
	}
}

// randomID generates a random hex suffix for unique fixture values
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func ctx(t *testing.T) context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// CreateUser creates a user with optional customizations
func (f *Factory) CreateUser(t *testing.T, opts ...func(*model.User)) *model.User {
	t.Helper()

	suffix := randomID()
	hash, err := bcrypt.GenerateFromPassword([]byte("testpass123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}

	user := &model.User{
		Username:  fmt.Sprintf("user_%s", suffix),
		Name:      "Test User",
		Email:     fmt.Sprintf("user_%s@test.local", suffix),
		Hash:      string(hash),
		CreatedAt: time.Now().UTC(),
	}
	for _, fn := range opts {
		fn(user)
	}

	created, err := f.Users.Create(ctx(t), user)
	if err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}
	return created
}

// CreatePackage creates a travel package with optional customizations
func (f *Factory) CreatePackage(t *testing.T, opts ...func(*model.TravelPackage)) *model.TravelPackage {
	t.Helper()

	pkg := &model.TravelPackage{
		Title:             fmt.Sprintf("Pacchetto %s", randomID()),
		Description:       "Un viaggio di prova",
		Destination:       "Roma, Italia",
		AccommodationName: "Hotel Test",
		AccommodationType: "Hotel 4 stelle",
		TransportType:     "Treno",
		DurationDays:      3,
		DurationNights:    2,
		Price:             650,
		Categories:        []string{"Storia e Arte"},
	}
	for _, fn := range opts {
		fn(pkg)
	}

	created, err := f.Packages.Create(ctx(t), pkg)
	if err != nil {
		t.Fatalf("fixtures: failed to create package: %v", err)
	}
	return created
}

// CreateBooking creates a booking for the given user and package
func (f *Factory) CreateBooking(t *testing.T, user *model.User, pkg *model.TravelPackage, opts ...func(*model.Booking)) *model.Booking {
	t.Helper()

	booking := &model.Booking{
		UserID:        user.ID,
		PackageID:     pkg.ID,
		TravelDate:    "2026-09-10",
		ReturnDate:    "2026-09-13",
		NumAdults:     2,
		TotalPrice:    pkg.Price * 2,
		Status:        model.BookingStatusPending,
		PaymentStatus: model.PaymentStatusUnpaid,
		BookingDate:   time.Now().UTC(),
	}
	for _, fn := range opts {
		fn(booking)
	}

	created, err := f.Bookings.Create(ctx(t), booking)
	if err != nil {
		t.Fatalf("fixtures: failed to create booking: %v", err)
	}
	return created
}

// CreatePreference creates a travel preference for the given user
func (f *Factory) CreatePreference(t *testing.T, user *model.User, opts ...func(*model.Preference)) *model.Preference {
	t.Helper()

	pref := &model.Preference{
		UserID:      user.ID,
		Destination: "Italia",
		TravelType:  "Culturale",
		Interests:   []string{"Storia e Arte"},
		Budget:      1500,
		NumAdults:   2,
		CreatedAt:   time.Now().UTC(),
	}
	for _, fn := range opts {
		fn(pref)
	}

	created, err := f.Preferences.Create(ctx(t), pref)
	if err != nil {
		t.Fatalf("fixtures: failed to create preference: %v", err)
	}
	return created
}

// CreateSavedPackage bookmarks the given package for the user
func (f *Factory) CreateSavedPackage(t *testing.T, user *model.User, pkg *model.TravelPackage, opts ...func(*model.SavedPackage)) *model.SavedPackage {
	t.Helper()

	saved := &model.SavedPackage{
		TravelPackage: *pkg,
		PackageID:     pkg.ID,
		UserID:        user.ID,
		SavedAt:       time.Now().UTC(),
	}
	saved.ID = ""
	for _, fn := range opts {
		fn(saved)
	}

	created, err := f.Saved.Create(ctx(t), saved)
	if err != nil {
		t.Fatalf("fixtures: failed to create saved package: %v", err)
	}
	return created
}
