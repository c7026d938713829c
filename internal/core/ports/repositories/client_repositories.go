package repositories

import (
	"context"

	"github.com/RAVEN850972/cam/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a specific client by its unique identifier.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClientByPhone retrieves a client by phone number.
	FindClientByPhone(ctx context.Context, phone string) (*domain.Client, error)

	// ListClients retrieves a paginated list of clients.
	ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error)

	// CountClientsBySource aggregates client counts per acquisition source.
	CountClientsBySource(ctx context.Context) (map[domain.ClientSource]int, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client's details.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client. Callers must check for existing orders first.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
