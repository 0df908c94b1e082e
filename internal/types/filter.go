package types

import (
	"strings"
)

// RecordFilter is implemented by every entity filter. Values returns the
// query value per column name; empty values are skipped by the filter engine.
type RecordFilter interface {
	Values() map[string]string
}

// MapFilter is a loosely typed filter keyed by column name, used by callers
// that build filters from form fields or query strings.
type MapFilter map[string]string

func (f MapFilter) Values() map[string]string {
	out := make(map[string]string, len(f))
	for k, v := range f {
		k = strings.TrimSpace(k)
		if k == "estado" {
			v = statusFilterValue(v)
		}
		out[k] = v
	}
	return out
}

// ClientFilter represents filters for client queries
type ClientFilter struct {
	Name    string `json:"nombre,omitempty" form:"nombre"`
	Surname string `json:"apellido,omitempty" form:"apellido"`
	DNI     string `json:"dni,omitempty" form:"dni"`
	CUIT    string `json:"cuit,omitempty" form:"cuit"`
	Email   string `json:"email,omitempty" form:"email"`
	Status  string `json:"estado,omitempty" form:"estado"`
}

func (f *ClientFilter) Values() map[string]string {
	if f == nil {
		return map[string]string{}
	}
	return map[string]string{
		"nombre":   f.Name,
		"apellido": f.Surname,
		"dni":      f.DNI,
		"cuit":     f.CUIT,
		"email":    f.Email,
		"estado":   statusFilterValue(f.Status),
	}
}

// VehicleFilter represents filters for vehicle queries
type VehicleFilter struct {
	Make         string `json:"marca,omitempty" form:"marca"`
	Model        string `json:"modelo,omitempty" form:"modelo"`
	Year         string `json:"anio,omitempty" form:"anio"`
	FrameNumber  string `json:"nro_cuadro,omitempty" form:"nro_cuadro"`
	EngineNumber string `json:"nro_motor,omitempty" form:"nro_motor"`
	ClientID     string `json:"cliente_id,omitempty" form:"cliente_id"`
	Status       string `json:"estado,omitempty" form:"estado"`
}

func (f *VehicleFilter) Values() map[string]string {
	if f == nil {
		return map[string]string{}
	}
	return map[string]string{
		"marca":      f.Make,
		"modelo":     f.Model,
		"anio":       f.Year,
		"nro_cuadro": f.FrameNumber,
		"nro_motor":  f.EngineNumber,
		"cliente_id": f.ClientID,
		"estado":     statusFilterValue(f.Status),
	}
}

// SupplierFilter represents filters for supplier queries
type SupplierFilter struct {
	Name   string `json:"nombre,omitempty" form:"nombre"`
	CUIT   string `json:"cuit,omitempty" form:"cuit"`
	Email  string `json:"email,omitempty" form:"email"`
	Status string `json:"estado,omitempty" form:"estado"`
}

func (f *SupplierFilter) Values() map[string]string {
	if f == nil {
		return map[string]string{}
	}
	return map[string]string{
		"nombre": f.Name,
		"cuit":   f.CUIT,
		"email":  f.Email,
		"estado": statusFilterValue(f.Status),
	}
}

// InvoiceFilter represents filters for invoice queries
type InvoiceFilter struct {
	Number  string `json:"numero,omitempty" form:"numero"`
	Client  string `json:"cliente,omitempty" form:"cliente"`
	Vehicle string `json:"vehiculo,omitempty" form:"vehiculo"`
	Type    string `json:"tipo,omitempty" form:"tipo"`
}

func (f *InvoiceFilter) Values() map[string]string {
	if f == nil {
		return map[string]string{}
	}
	return map[string]string{
		"numero":   f.Number,
		"cliente":  f.Client,
		"vehiculo": f.Vehicle,
		"tipo":     f.Type,
	}
}

// statusFilterValue maps the "any status" choice to an empty value
func statusFilterValue(v string) string {
	if strings.EqualFold(strings.TrimSpace(v), string(StatusAll)) {
		return ""
	}
	return v
}
