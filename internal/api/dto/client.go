package dto

import (
	"github.com/dealerbook/dealerbook/internal/domain/client"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/dealerbook/dealerbook/internal/validator"
)

// SaveClientRequest creates a client when ID is zero and updates it
// otherwise. Blank fields leave the stored value unchanged on update.
type SaveClientRequest struct {
	ID        int               `json:"id,omitempty" validate:"gte=0"`
	FirstName string            `json:"nombre" validate:"required,max=200"`
	LastName  string            `json:"apellido" validate:"omitempty,max=200"`
	DNI       string            `json:"dni" validate:"omitempty,max=20"`
	CUIT      string            `json:"cuit" validate:"omitempty,max=20"`
	Email     string            `json:"email" validate:"omitempty,email"`
	Phone     string            `json:"telefono" validate:"omitempty,max=50"`
	Address   string            `json:"direccion" validate:"omitempty,max=255"`
	Status    types.Status      `json:"estado"`
	Extra     map[string]string `json:"extra,omitempty"`
}

func (r *SaveClientRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *SaveClientRequest) ToClient() *client.Client {
	return &client.Client{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		DNI:       r.DNI,
		CUIT:      r.CUIT,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		Status:    r.Status,
		Extra:     r.Extra,
	}
}

type ClientResponse struct {
	*client.Client
}

// ListClientsResponse represents the response for listing clients
type ListClientsResponse = types.ListResponse[*ClientResponse]
