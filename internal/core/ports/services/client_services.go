package services

import (
	"context"

	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/RAVEN850972/cam/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves a specific client by its unique identifier.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves a paginated list of clients.
	ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error)

	// GetSourceStats aggregates client counts per acquisition source.
	GetSourceStats(ctx context.Context) (map[domain.ClientSource]int, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// CreateClient persists a new client.
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)

	// UpdateClient updates an existing client's details.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)

	// DeleteClient removes a client. Fails with apperrors.ErrConflict when
	// the client still owns orders.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
