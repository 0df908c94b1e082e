package dto

import (
	"github.com/dealerbook/dealerbook/internal/domain/invoice"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/dealerbook/dealerbook/internal/validator"
	"github.com/shopspring/decimal"
)

// IssueInvoiceRequest describes a sale to invoice. ClientID and VehicleID
// are optional shortcuts: the referenced records fill in any blank client or
// vehicle field, including the price.
type IssueInvoiceRequest struct {
	ClientID         *int            `json:"cliente_id,omitempty" validate:"omitempty,gt=0"`
	VehicleID        *int            `json:"vehiculo_id,omitempty" validate:"omitempty,gt=0"`
	Client           string          `json:"cliente"`
	ClientTaxID      string          `json:"cuit_dni_cliente"`
	Vehicle          string          `json:"vehiculo"`
	Plate            string          `json:"patente"`
	Type             string          `json:"tipo" validate:"required"`
	PaymentCondition string          `json:"pago" validate:"required"`
	Price            decimal.Decimal `json:"precio"`

	// PointOfSale overrides the configured point of sale
	PointOfSale string `json:"punto_venta,omitempty" validate:"omitempty,numeric,max=4"`
}

func (r *IssueInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Price.IsNegative() {
		return validationError("price cannot be negative", "precio")
	}
	return nil
}

type InvoiceResponse struct {
	*invoice.Invoice
}

type ListInvoicesResponse = types.ListResponse[*InvoiceResponse]

type NextInvoiceNumberResponse struct {
	PointOfSale string `json:"punto_venta"`
	Number      string `json:"numero"`
}
