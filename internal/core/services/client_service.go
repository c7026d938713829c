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
)

// ClientService manages customer records.
type ClientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
	orderRepo  portsrepo.OrderReader
}

func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, orderRepo portsrepo.OrderReader) *ClientService {
	return &ClientService{clientRepo: clientRepo, orderRepo: orderRepo}
}

// CreateClient persists a new client. Phone numbers are unique.
func (s *ClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	existing, err := s.clientRepo.FindClientByPhone(ctx, req.Phone)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check phone uniqueness", slog.String("phone", req.Phone))
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewAppError(409, "a client with this phone already exists", apperrors.ErrDuplicate)
	}

	now := time.Now()
	client := domain.Client{
		ClientID: uuid.NewString(),
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Source:   req.Source,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("client_id", client.ClientID))
		return nil, err
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID), slog.String("source", string(client.Source)))
	return &client, nil
}

// GetClientByID retrieves a specific client.
func (s *ClientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

// ListClients retrieves a paginated list of clients.
func (s *ClientService) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

// GetSourceStats aggregates client counts per acquisition source.
func (s *ClientService) GetSourceStats(ctx context.Context) (map[domain.ClientSource]int, error) {
	stats, err := s.clientRepo.CountClientsBySource(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate client sources")
		return nil, fmt.Errorf("failed to aggregate client sources: %w", err)
	}
	return stats, nil
}

// UpdateClient updates an existing client's details.
func (s *ClientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client for update", slog.String("client_id", clientID))
		}
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil && *req.Phone != client.Phone {
		existing, err := s.clientRepo.FindClientByPhone(ctx, *req.Phone)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.NewAppError(409, "a client with this phone already exists", apperrors.ErrDuplicate)
		}
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Source != nil {
		if !req.Source.Valid() {
			return nil, apperrors.NewValidationError("unknown client source")
		}
		client.Source = *req.Source
	}
	client.LastUpdatedAt = time.Now()

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, err
	}
	return client, nil
}

// DeleteClient removes a client. Clients with orders cannot be deleted;
// order history must stay attributable.
func (s *ClientService) DeleteClient(ctx context.Context, clientID string) error {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client for deletion", slog.String("client_id", clientID))
		}
		return err
	}

	count, err := s.orderRepo.CountOrdersByClientID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count client orders", slog.String("client_id", clientID))
		return fmt.Errorf("failed to count client orders: %w", err)
	}
	if count > 0 {
		return apperrors.NewAppError(409, "client has orders and cannot be deleted", apperrors.ErrConflict)
	}

	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		s.LogError(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return err
	}

	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}
