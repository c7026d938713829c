package services

import (
	"context"

	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/RAVEN850972/cam/internal/dto"
)

// CatalogReaderSvc defines read operations for catalog service data
type CatalogReaderSvc interface {
	// GetServiceByID retrieves a specific catalog service.
	GetServiceByID(ctx context.Context, serviceID string) (*domain.CatalogService, error)

	// ListServices retrieves catalog services, optionally filtered by category.
	ListServices(ctx context.Context, category *domain.ServiceCategory) ([]domain.CatalogService, error)
}

// CatalogWriterSvc defines write operations for catalog service data
type CatalogWriterSvc interface {
	// CreateService persists a new catalog service.
	CreateService(ctx context.Context, req dto.CreateServiceRequest) (*domain.CatalogService, error)

	// UpdateService updates an existing catalog service. Order lines keep
	// the selling price captured at sale time.
	UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest) (*domain.CatalogService, error)

	// DeleteService removes a catalog service. Fails with apperrors.ErrConflict
	// when order lines still reference it.
	DeleteService(ctx context.Context, serviceID string) error
}

// CatalogSvcFacade combines all catalog-related service interfaces
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}
