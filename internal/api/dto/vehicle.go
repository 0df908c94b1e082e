package dto

import (
	"github.com/dealerbook/dealerbook/internal/domain/vehicle"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/dealerbook/dealerbook/internal/validator"
)

type SaveVehicleRequest struct {
	ID            int               `json:"id,omitempty" validate:"gte=0"`
	ClientID      *int              `json:"cliente_id,omitempty" validate:"omitempty,gt=0"`
	Make          string            `json:"marca" validate:"required_without=Model"`
	Model         string            `json:"modelo"`
	Year          *int              `json:"anio,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	CertificateNo string            `json:"nro_certificado"`
	RegistryNo    string            `json:"nro_dnrpa"`
	FrameNo       string            `json:"nro_cuadro"`
	EngineNo      string            `json:"nro_motor"`
	Price         float64           `json:"precio" validate:"gte=0"`
	DeliveryNote  string            `json:"remito"`
	Invoice       string            `json:"factura"`
	Status        types.Status      `json:"estado"`
	Extra         map[string]string `json:"extra,omitempty"`
}

func (r *SaveVehicleRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *SaveVehicleRequest) ToVehicle() *vehicle.Vehicle {
	return &vehicle.Vehicle{
		ID:            r.ID,
		ClientID:      r.ClientID,
		Make:          r.Make,
		Model:         r.Model,
		Year:          r.Year,
		CertificateNo: r.CertificateNo,
		RegistryNo:    r.RegistryNo,
		FrameNo:       r.FrameNo,
		EngineNo:      r.EngineNo,
		Price:         r.Price,
		DeliveryNote:  r.DeliveryNote,
		Invoice:       r.Invoice,
		Status:        r.Status,
		Extra:         r.Extra,
	}
}

type VehicleResponse struct {
	*vehicle.Vehicle
}

type ListVehiclesResponse = types.ListResponse[*VehicleResponse]
