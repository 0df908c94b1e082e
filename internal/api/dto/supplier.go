package dto

import (
	"github.com/dealerbook/dealerbook/internal/domain/supplier"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/dealerbook/dealerbook/internal/validator"
)

type SaveSupplierRequest struct {
	ID      int               `json:"id,omitempty" validate:"gte=0"`
	Name    string            `json:"nombre" validate:"required,max=200"`
	CUIT    string            `json:"cuit" validate:"omitempty,max=20"`
	Email   string            `json:"email" validate:"omitempty,email"`
	Phone   string            `json:"telefono" validate:"omitempty,max=50"`
	Address string            `json:"direccion" validate:"omitempty,max=255"`
	Status  types.Status      `json:"estado"`
	Extra   map[string]string `json:"extra,omitempty"`
}

func (r *SaveSupplierRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *SaveSupplierRequest) ToSupplier() *supplier.Supplier {
	return &supplier.Supplier{
		ID:      r.ID,
		Name:    r.Name,
		CUIT:    r.CUIT,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		Status:  r.Status,
		Extra:   r.Extra,
	}
}

type SupplierResponse struct {
	*supplier.Supplier
}

type ListSuppliersResponse = types.ListResponse[*SupplierResponse]
