package invoice

import (
	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Column names of the invoices sheet
const (
	ColumnNumber         = "numero"
	ColumnDate           = "fecha"
	ColumnClient         = "cliente"
	ColumnClientTaxID    = "cuit_dni_cliente"
	ColumnVehicle        = "vehiculo"
	ColumnPlate          = "patente"
	ColumnType           = "tipo"
	ColumnPayment        = "pago"
	ColumnSubtotal       = "subtotal"
	ColumnTax            = "iva"
	ColumnTotal          = "total"
	ColumnAuthCode       = "cae"
	ColumnAuthExpiration = "vto_cae"
)

// Schema is the canonical layout of the invoices record set. Invoices have
// no numeric identifier; they are keyed by their number and only appended.
var Schema = sheets.Schema{
	Sheet: "facturas",
	Columns: []string{
		ColumnNumber, ColumnDate, ColumnClient, ColumnClientTaxID, ColumnVehicle,
		ColumnPlate, ColumnType, ColumnPayment, ColumnSubtotal, ColumnTax,
		ColumnTotal, ColumnAuthCode, ColumnAuthExpiration,
	},
	Kinds: map[string]sheets.ColumnKind{
		ColumnSubtotal: sheets.KindFloat,
		ColumnTax:      sheets.KindFloat,
		ColumnTotal:    sheets.KindFloat,
	},
	Filters: []sheets.FilterField{
		{Column: ColumnNumber, Mode: sheets.MatchContains},
		{Column: ColumnClient, Mode: sheets.MatchContains},
		{Column: ColumnVehicle, Mode: sheets.MatchContains},
		{Column: ColumnType, Mode: sheets.MatchEquals},
	},
}

// Invoice is an issued sale document
type Invoice struct {
	// Number is formatted PPPP-NNNNNNNN
	Number string `json:"numero"`

	// Date is the issue date as stored, normally 2006-01-02
	Date string `json:"fecha"`

	// Client and Vehicle are descriptions copied at issue time
	Client      string `json:"cliente"`
	ClientTaxID string `json:"cuit_dni_cliente"`
	Vehicle     string `json:"vehiculo"`
	Plate       string `json:"patente"`

	// Type is the document type, e.g. "Factura B"
	Type string `json:"tipo"`

	// PaymentCondition is e.g. "Contado"
	PaymentCondition string `json:"pago"`

	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"iva"`
	Total    decimal.Decimal `json:"total"`

	// AuthCode and AuthExpiration hold the electronic authorization (CAE)
	AuthCode       string `json:"cae"`
	AuthExpiration string `json:"vto_cae"`

	Extra map[string]string `json:"extra,omitempty"`
}

// FromRow converts a normalized row to an invoice
func FromRow(row sheets.Row) *Invoice {
	inv := &Invoice{
		Number:           row.Get(ColumnNumber),
		Date:             row.Get(ColumnDate),
		Client:           row.Get(ColumnClient),
		ClientTaxID:      row.Get(ColumnClientTaxID),
		Vehicle:          row.Get(ColumnVehicle),
		Plate:            row.Get(ColumnPlate),
		Type:             row.Get(ColumnType),
		PaymentCondition: row.Get(ColumnPayment),
		Subtotal:         amount(row.Get(ColumnSubtotal)),
		Tax:              amount(row.Get(ColumnTax)),
		Total:            amount(row.Get(ColumnTotal)),
		AuthCode:         row.Get(ColumnAuthCode),
		AuthExpiration:   row.Get(ColumnAuthExpiration),
	}
	extra := lo.OmitBy(row, func(k string, _ string) bool {
		return Schema.IsCanonical(k)
	})
	if len(extra) > 0 {
		inv.Extra = extra
	}
	return inv
}

// FromRows converts a list of normalized rows to invoices
func FromRows(rows []sheets.Row) []*Invoice {
	return lo.Map(rows, func(r sheets.Row, _ int) *Invoice { return FromRow(r) })
}

// ToRow converts the invoice to a row for appending. Extra columns the
// ledger does not have yet are added to its header on append.
func (i *Invoice) ToRow() sheets.Row {
	row := sheets.Row{}
	for k, v := range i.Extra {
		row[k] = v
	}
	row[ColumnNumber] = i.Number
	row[ColumnDate] = i.Date
	row[ColumnClient] = i.Client
	row[ColumnClientTaxID] = i.ClientTaxID
	row[ColumnVehicle] = i.Vehicle
	row[ColumnPlate] = i.Plate
	row[ColumnType] = i.Type
	row[ColumnPayment] = i.PaymentCondition
	row[ColumnSubtotal] = i.Subtotal.String()
	row[ColumnTax] = i.Tax.String()
	row[ColumnTotal] = i.Total.String()
	row[ColumnAuthCode] = i.AuthCode
	row[ColumnAuthExpiration] = i.AuthExpiration
	return row
}

// amount reads a normalized float cell into a decimal
func amount(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.NewFromFloat(sheets.FloatOrZero(v))
	}
	return d
}
