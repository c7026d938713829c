package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/RAVEN850972/cam/internal/apperrors"
	"github.com/RAVEN850972/cam/internal/core/domain"
	portsrepo "github.com/RAVEN850972/cam/internal/core/ports/repositories"
	"github.com/RAVEN850972/cam/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogSvc manages the sellable service catalog.
type CatalogSvc struct {
	BaseService
	catalogRepo portsrepo.CatalogRepositoryFacade
	orderRepo   portsrepo.OrderReader
	rules       domain.PricingRules
}

func NewCatalogService(catalogRepo portsrepo.CatalogRepositoryFacade, orderRepo portsrepo.OrderReader, rules domain.PricingRules) *CatalogSvc {
	return &CatalogSvc{catalogRepo: catalogRepo, orderRepo: orderRepo, rules: rules}
}

// CreateService persists a new catalog service. AC units require a power
// type so orders can pick the standard mount tier.
func (s *CatalogSvc) CreateService(ctx context.Context, req dto.CreateServiceRequest) (*domain.CatalogService, error) {
	if req.Category == domain.CategoryACUnit && req.PowerType == nil {
		return nil, apperrors.NewValidationError("ac_unit services require a power type")
	}
	if req.SellingPrice.IsNegative() {
		return nil, apperrors.NewValidationError("selling price cannot be negative")
	}
	if req.PurchasePrice != nil && req.PurchasePrice.IsNegative() {
		return nil, apperrors.NewValidationError("purchase price cannot be negative")
	}

	bonus := s.rules.InstallerSaleBonus
	if req.InstallerBonusFixed != nil {
		if req.InstallerBonusFixed.IsNegative() {
			return nil, apperrors.NewValidationError("installer bonus cannot be negative")
		}
		bonus = *req.InstallerBonusFixed
	}
	if req.IsManagerBonus {
		bonus = decimal.Zero
	}

	now := time.Now()
	service := domain.CatalogService{
		ServiceID:           uuid.NewString(),
		Name:                req.Name,
		Category:            req.Category,
		PowerType:           req.PowerType,
		PurchasePrice:       req.PurchasePrice,
		SellingPrice:        req.SellingPrice,
		IsManagerBonus:      req.IsManagerBonus,
		InstallerBonusFixed: bonus,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.catalogRepo.SaveService(ctx, service); err != nil {
		s.LogError(ctx, err, "Failed to save catalog service", slog.String("service_id", service.ServiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Catalog service created", slog.String("service_id", service.ServiceID), slog.String("category", string(service.Category)))
	return &service, nil
}

// GetServiceByID retrieves a specific catalog service.
func (s *CatalogSvc) GetServiceByID(ctx context.Context, serviceID string) (*domain.CatalogService, error) {
	service, err := s.catalogRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find catalog service", slog.String("service_id", serviceID))
		}
		return nil, err
	}
	return service, nil
}

// ListServices retrieves catalog services, optionally filtered by category.
func (s *CatalogSvc) ListServices(ctx context.Context, category *domain.ServiceCategory) ([]domain.CatalogService, error) {
	if category != nil && !category.Valid() {
		return nil, apperrors.NewValidationError("unknown service category")
	}
	services, err := s.catalogRepo.ListServices(ctx, category)
	if err != nil {
		s.LogError(ctx, err, "Failed to list catalog services")
		return nil, fmt.Errorf("failed to list catalog services: %w", err)
	}
	if services == nil {
		return []domain.CatalogService{}, nil
	}
	return services, nil
}

// UpdateService updates an existing catalog service. Existing order lines
// keep the selling price captured when they were sold.
func (s *CatalogSvc) UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest) (*domain.CatalogService, error) {
	service, err := s.catalogRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find catalog service for update", slog.String("service_id", serviceID))
		}
		return nil, err
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.PowerType != nil {
		service.PowerType = req.PowerType
	}
	if req.PurchasePrice != nil {
		if req.PurchasePrice.IsNegative() {
			return nil, apperrors.NewValidationError("purchase price cannot be negative")
		}
		service.PurchasePrice = req.PurchasePrice
	}
	if req.SellingPrice != nil {
		if req.SellingPrice.IsNegative() {
			return nil, apperrors.NewValidationError("selling price cannot be negative")
		}
		service.SellingPrice = *req.SellingPrice
	}
	if req.IsManagerBonus != nil {
		service.IsManagerBonus = *req.IsManagerBonus
	}
	if req.InstallerBonusFixed != nil {
		if req.InstallerBonusFixed.IsNegative() {
			return nil, apperrors.NewValidationError("installer bonus cannot be negative")
		}
		service.InstallerBonusFixed = *req.InstallerBonusFixed
	}
	service.LastUpdatedAt = time.Now()

	if err := s.catalogRepo.UpdateService(ctx, *service); err != nil {
		s.LogError(ctx, err, "Failed to update catalog service", slog.String("service_id", serviceID))
		return nil, err
	}
	return service, nil
}

// DeleteService removes a catalog service unless order lines reference it.
func (s *CatalogSvc) DeleteService(ctx context.Context, serviceID string) error {
	if _, err := s.catalogRepo.FindServiceByID(ctx, serviceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find catalog service for deletion", slog.String("service_id", serviceID))
		}
		return err
	}

	count, err := s.orderRepo.CountLinesByServiceID(ctx, serviceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count service references", slog.String("service_id", serviceID))
		return fmt.Errorf("failed to count service references: %w", err)
	}
	if count > 0 {
		return apperrors.NewAppError(409, "service is referenced by orders and cannot be deleted", apperrors.ErrConflict)
	}

	if err := s.catalogRepo.DeleteService(ctx, serviceID); err != nil {
		s.LogError(ctx, err, "Failed to delete catalog service", slog.String("service_id", serviceID))
		return err
	}

	s.LogInfo(ctx, "Catalog service deleted", slog.String("service_id", serviceID))
	return nil
}
