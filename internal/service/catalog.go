package service

import (
	"context"
	"strings"

	"github.com/yookve/api/internal/model"
	"github.com/yookve/api/internal/repository"
)

// PackageRepository defines the interface for catalog storage
type PackageRepository interface {
	GetAll(ctx context.Context, limit int) ([]*model.TravelPackage, error)
	GetByID(ctx context.Context, id string) (*model.TravelPackage, bool, error)
	GetByCategory(ctx context.Context, category string) ([]*model.TravelPackage, error)
	SearchPackages(ctx context.Context, filters repository.SearchFilters) ([]*model.TravelPackage, error)
	Create(ctx context.Context, pkg *model.TravelPackage) (*model.TravelPackage, error)
}

// CatalogService handles the travel-package catalog
type CatalogService struct {
	packages PackageRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(packages PackageRepository) *CatalogService {
	return &CatalogService{packages: packages}
}

// ListPackages returns the full catalog
func (s *CatalogService) ListPackages(ctx context.Context) ([]*model.TravelPackage, error) {
	return s.packages.GetAll(ctx, 0)
}

// GetPackage retrieves a single catalog entry
func (s *CatalogService) GetPackage(ctx context.Context, id string) (*model.TravelPackage, error) {
	pkg, found, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrPackageNotFound
	}
	return pkg, nil
}

// GetByCategory returns packages tagged with the given category
func (s *CatalogService) GetByCategory(ctx context.Context, category string) ([]*model.TravelPackage, error) {
	return s.packages.GetByCategory(ctx, category)
}

// Search returns packages matching the given filters
func (s *CatalogService) Search(ctx context.Context, filters repository.SearchFilters) ([]*model.TravelPackage, error) {
	return s.packages.SearchPackages(ctx, filters)
}

// CreatePackage adds a catalog entry
func (s *CatalogService) CreatePackage(ctx context.Context, pkg *model.TravelPackage) (*model.TravelPackage, error) {
	if strings.TrimSpace(pkg.Title) == "" || strings.TrimSpace(pkg.Destination) == "" {
		return nil, ErrPackageInvalid
	}
	return s.packages.Create(ctx, pkg)
}
