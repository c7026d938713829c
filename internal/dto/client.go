package dto

import (
	"time"

	"github.com/RAVEN850972/cam/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a new client.
type CreateClientRequest struct {
	Name    string              `json:"name" binding:"required"`
	Phone   string              `json:"phone" binding:"required"`
	Address string              `json:"address"`
	Source  domain.ClientSource `json:"source" binding:"required,oneof=avito vk yandex flyers referral other"`
}

// UpdateClientRequest defines the data allowed for updating a client.
type UpdateClientRequest struct {
	Name    *string              `json:"name"`
	Phone   *string              `json:"phone"`
	Address *string              `json:"address"`
	Source  *domain.ClientSource `json:"source"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID  string              `json:"clientID"`
	Name      string              `json:"name"`
	Phone     string              `json:"phone"`
	Address   string              `json:"address"`
	Source    domain.ClientSource `json:"source"`
	CreatedAt time.Time           `json:"createdAt"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:  c.ClientID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		Source:    c.Source,
		CreatedAt: c.CreatedAt,
	}
}

// ToListClientResponse converts a slice of domain.Client to response DTOs
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = ToClientResponse(&c)
	}
	return res
}
