package service

import (
	"context"
	"time"

	"github.com/yookve/api/internal/model"
)

// SavedPackageRepository defines the interface for saved-package storage
type SavedPackageRepository interface {
	Create(ctx context.Context, saved *model.SavedPackage) (*model.SavedPackage, error)
	GetByID(ctx context.Context, id string) (*model.SavedPackage, bool, error)
	GetByUserID(ctx context.Context, userID string) ([]*model.SavedPackage, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// SavedPackageService handles bookmarked packages. Display fields are
// denormalized at save time so the saved list renders without a second
// catalog lookup.
type SavedPackageService struct {
	saved    SavedPackageRepository
	packages PackageGetter
}

// NewSavedPackageService creates a new saved-package service
func NewSavedPackageService(saved SavedPackageRepository, packages PackageGetter) *SavedPackageService {
	return &SavedPackageService{saved: saved, packages: packages}
}

// Save bookmarks a catalog package for the user
func (s *SavedPackageService) Save(ctx context.Context, userID, packageID string) (*model.SavedPackage, error) {
	pkg, found, err := s.packages.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrPackageNotFound
	}

	saved := &model.SavedPackage{
		TravelPackage: *pkg,
		PackageID:     packageID,
		UserID:        userID,
		SavedAt:       time.Now().UTC(),
	}
	saved.TravelPackage.ID = ""

	return s.saved.Create(ctx, saved)
}

// List returns the user's saved packages, most recently saved first
func (s *SavedPackageService) List(ctx context.Context, userID string) ([]*model.SavedPackage, error) {
	return s.saved.GetByUserID(ctx, userID)
}

// Delete removes a saved package owned by the user
func (s *SavedPackageService) Delete(ctx context.Context, userID, id string) error {
	saved, found, err := s.saved.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrSavedPackageNotFound
	}
	if saved.UserID != userID {
		return ErrNotOwner
	}

	deleted, err := s.saved.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSavedPackageNotFound
	}
	return nil
}
