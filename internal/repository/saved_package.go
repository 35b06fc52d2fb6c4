package repository

import (
	"context"

	"github.com/yookve/api/internal/database"
	"github.com/yookve/api/internal/model"
)

// SavedPackageRepository handles saved-package data access
type SavedPackageRepository struct {
	*Repository[*model.SavedPackage]
}

// NewSavedPackageRepository creates a new saved-package repository
func NewSavedPackageRepository(store database.Store) *SavedPackageRepository {
	return &SavedPackageRepository{newRepository(store, TableSavedPackages, decodeSavedPackage)}
}

// GetByUserID retrieves a user's saved packages, most recently saved first
func (r *SavedPackageRepository) GetByUserID(ctx context.Context, userID string) ([]*model.SavedPackage, error) {
	return r.Search(ctx, "userId = $user_id", map[string]interface{}{
		"user_id": userID,
	}, "savedAt DESC", 0)
}

func decodeSavedPackage(doc database.Document) *model.SavedPackage {
	pkg := decodeTravelPackage(doc)
	return &model.SavedPackage{
		TravelPackage: *pkg,
		PackageID:     getString(doc, "packageId"),
		UserID:        getString(doc, "userId"),
		SavedAt:       getTime(doc, "savedAt"),
	}
}
