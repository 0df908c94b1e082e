package vehicle

import (
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/samber/lo"
)

// Column names of the vehicles sheet
const (
	ColumnID            = "id"
	ColumnClientID      = "cliente_id"
	ColumnMake          = "marca"
	ColumnModel         = "modelo"
	ColumnYear          = "anio"
	ColumnCertificateNo = "nro_certificado"
	ColumnRegistryNo    = "nro_dnrpa"
	ColumnFrameNo       = "nro_cuadro"
	ColumnEngineNo      = "nro_motor"
	ColumnPrice         = "precio"
	ColumnDeliveryNote  = "remito"
	ColumnInvoice       = "factura"
	ColumnStatus        = "estado"

	// ColumnLegacyID is the identifier column used by older files
	ColumnLegacyID = "vehiculo_id"
)

// Schema is the canonical layout of the vehicles record set. cliente_id is
// the owner reference here, not an alias of id.
var Schema = sheets.Schema{
	Sheet: "vehiculos",
	Columns: []string{
		ColumnID, ColumnClientID, ColumnMake, ColumnModel, ColumnYear,
		ColumnCertificateNo, ColumnRegistryNo, ColumnFrameNo, ColumnEngineNo,
		ColumnPrice, ColumnDeliveryNote, ColumnInvoice, ColumnStatus,
	},
	IDColumn:        ColumnID,
	LegacyIDColumns: []string{ColumnLegacyID},
	StatusColumn:    ColumnStatus,
	Statuses:        types.StatusStrings(types.VehicleStatuses),
	DefaultStatus:   string(types.StatusAvailable),
	Kinds: map[string]sheets.ColumnKind{
		ColumnID:       sheets.KindInt,
		ColumnClientID: sheets.KindInt,
		ColumnYear:     sheets.KindInt,
		ColumnPrice:    sheets.KindFloat,
	},
	Filters: []sheets.FilterField{
		{Column: ColumnMake, Mode: sheets.MatchContains},
		{Column: ColumnModel, Mode: sheets.MatchContains},
		{Column: ColumnYear, Mode: sheets.MatchInt},
		{Column: ColumnFrameNo, Mode: sheets.MatchContains},
		{Column: ColumnEngineNo, Mode: sheets.MatchContains},
		{Column: ColumnClientID, Mode: sheets.MatchInt},
		{Column: ColumnStatus, Mode: sheets.MatchEquals},
	},
}

// Vehicle represents a unit in the dealership stock
type Vehicle struct {
	ID int `json:"id"`

	// ClientID references the owning client; nil when unassigned. The
	// reference is not checked against the clients record set.
	ClientID *int `json:"cliente_id,omitempty"`

	Make  string `json:"marca"`
	Model string `json:"modelo"`

	// Year is nil when the cell is blank or not a number
	Year *int `json:"anio,omitempty"`

	CertificateNo string `json:"nro_certificado"`
	RegistryNo    string `json:"nro_dnrpa"`
	FrameNo       string `json:"nro_cuadro"`
	EngineNo      string `json:"nro_motor"`

	Price float64 `json:"precio"`

	// DeliveryNote and Invoice reference the documents the unit came with
	DeliveryNote string `json:"remito"`
	Invoice      string `json:"factura"`

	Status types.Status `json:"estado"`

	Extra map[string]string `json:"extra,omitempty"`
}

// FromRow converts a normalized row to a vehicle
func FromRow(row sheets.Row) *Vehicle {
	id, _ := sheets.ParseInt(row.Get(ColumnID))
	return &Vehicle{
		ID:            id,
		ClientID:      optionalInt(row.Get(ColumnClientID)),
		Make:          row.Get(ColumnMake),
		Model:         row.Get(ColumnModel),
		Year:          optionalInt(row.Get(ColumnYear)),
		CertificateNo: row.Get(ColumnCertificateNo),
		RegistryNo:    row.Get(ColumnRegistryNo),
		FrameNo:       row.Get(ColumnFrameNo),
		EngineNo:      row.Get(ColumnEngineNo),
		Price:         sheets.FloatOrZero(row.Get(ColumnPrice)),
		DeliveryNote:  row.Get(ColumnDeliveryNote),
		Invoice:       row.Get(ColumnInvoice),
		Status:        types.Status(row.Get(ColumnStatus)),
		Extra:         extraColumns(row),
	}
}

// FromRows converts a list of normalized rows to vehicles
func FromRows(rows []sheets.Row) []*Vehicle {
	return lo.Map(rows, func(r sheets.Row, _ int) *Vehicle { return FromRow(r) })
}

// ToRow converts the vehicle back to a row
func (v *Vehicle) ToRow() sheets.Row {
	row := sheets.Row{}
	for k, val := range v.Extra {
		row[k] = val
	}
	row[ColumnID] = ""
	if v.ID > 0 {
		row[ColumnID] = sheets.FormatInt(v.ID)
	}
	row[ColumnClientID] = formatOptionalInt(v.ClientID)
	row[ColumnMake] = v.Make
	row[ColumnModel] = v.Model
	row[ColumnYear] = formatOptionalInt(v.Year)
	row[ColumnCertificateNo] = v.CertificateNo
	row[ColumnRegistryNo] = v.RegistryNo
	row[ColumnFrameNo] = v.FrameNo
	row[ColumnEngineNo] = v.EngineNo
	row[ColumnPrice] = sheets.FormatFloat(v.Price)
	row[ColumnDeliveryNote] = v.DeliveryNote
	row[ColumnInvoice] = v.Invoice
	row[ColumnStatus] = string(v.Status)
	return row
}

// Description is the text used for the vehicle on an invoice
func (v *Vehicle) Description() string {
	desc := v.Make
	if v.Model != "" {
		desc += " " + v.Model
	}
	if v.Year != nil {
		desc += " " + sheets.FormatInt(*v.Year)
	}
	return desc
}

func (v *Vehicle) Validate() error {
	if v.Make == "" && v.Model == "" {
		return ierr.NewError("vehicle make or model is required").
			WithHint("Please provide the make or the model of the vehicle").
			Mark(ierr.ErrValidation)
	}
	if v.Price < 0 {
		return ierr.NewError("price cannot be negative").
			WithHint("Please provide a price of zero or more").
			WithReportableDetails(map[string]any{
				"price": v.Price,
			}).
			Mark(ierr.ErrValidation)
	}
	if v.Status != "" && !lo.Contains(types.VehicleStatuses, v.Status) {
		return ierr.NewError("invalid vehicle status").
			WithHintf("Status must be one of %v", types.VehicleStatuses).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func optionalInt(v string) *int {
	n, ok := sheets.ParseInt(v)
	if !ok {
		return nil
	}
	return &n
}

func formatOptionalInt(n *int) string {
	if n == nil {
		return ""
	}
	return sheets.FormatInt(*n)
}

func extraColumns(row sheets.Row) map[string]string {
	extra := lo.OmitBy(row, func(k string, _ string) bool {
		return Schema.IsCanonical(k)
	})
	if len(extra) == 0 {
		return nil
	}
	return extra
}
