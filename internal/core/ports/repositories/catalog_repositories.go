package repositories

import (
	"context"

	"github.com/RAVEN850972/cam/internal/core/domain"
)

// CatalogReader defines read operations for catalog service data
type CatalogReader interface {
	// FindServiceByID retrieves a specific catalog service by its unique identifier.
	FindServiceByID(ctx context.Context, serviceID string) (*domain.CatalogService, error)

	// FindServicesByIDs retrieves multiple catalog services by their IDs.
	FindServicesByIDs(ctx context.Context, serviceIDs []string) (map[string]domain.CatalogService, error)

	// ListServices retrieves all catalog services, optionally filtered by category.
	ListServices(ctx context.Context, category *domain.ServiceCategory) ([]domain.CatalogService, error)
}

// CatalogWriter defines write operations for catalog service data
type CatalogWriter interface {
	// SaveService persists a new catalog service.
	SaveService(ctx context.Context, service domain.CatalogService) error

	// UpdateService updates an existing catalog service.
	UpdateService(ctx context.Context, service domain.CatalogService) error

	// DeleteService removes a catalog service. Callers must check for
	// referencing order lines first.
	DeleteService(ctx context.Context, serviceID string) error
}

// CatalogRepositoryFacade combines all catalog-related repository interfaces
type CatalogRepositoryFacade interface {
	CatalogReader
	CatalogWriter
}
