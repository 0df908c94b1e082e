package client

import (
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/samber/lo"
)

// Column names of the clients sheet
const (
	ColumnID        = "id"
	ColumnAliasID   = "cliente_id"
	ColumnFirstName = "nombre"
	ColumnLastName  = "apellido"
	ColumnDNI       = "dni"
	ColumnCUIT      = "cuit"
	ColumnEmail     = "email"
	ColumnPhone     = "telefono"
	ColumnAddress   = "direccion"
	ColumnStatus    = "estado"
)

// Schema is the canonical layout of the clients record set
var Schema = sheets.Schema{
	Sheet: "clientes",
	Columns: []string{
		ColumnID, ColumnAliasID, ColumnFirstName, ColumnLastName, ColumnDNI,
		ColumnCUIT, ColumnEmail, ColumnPhone, ColumnAddress, ColumnStatus,
	},
	IDColumn:        ColumnID,
	AliasColumn:     ColumnAliasID,
	LegacyIDColumns: []string{ColumnAliasID},
	StatusColumn:    ColumnStatus,
	Statuses:        types.StatusStrings(types.PartyStatuses),
	DefaultStatus:   string(types.StatusActive),
	Kinds: map[string]sheets.ColumnKind{
		ColumnID:      sheets.KindInt,
		ColumnAliasID: sheets.KindInt,
	},
	Filters: []sheets.FilterField{
		{Column: ColumnFirstName, Mode: sheets.MatchContains},
		{Column: ColumnLastName, Mode: sheets.MatchContains},
		{Column: ColumnDNI, Mode: sheets.MatchContains},
		{Column: ColumnCUIT, Mode: sheets.MatchContains},
		{Column: ColumnEmail, Mode: sheets.MatchContains},
		{Column: ColumnStatus, Mode: sheets.MatchEquals},
	},
}

// Client represents a dealership client
type Client struct {
	// ID is the numeric identifier, zero for a client not saved yet
	ID int `json:"id"`

	// FirstName is the client's name or company name
	FirstName string `json:"nombre"`

	// LastName is optional for companies
	LastName string `json:"apellido"`

	// DNI is the national identity document number
	DNI string `json:"dni"`

	// CUIT is the tax identifier
	CUIT string `json:"cuit"`

	Email   string `json:"email"`
	Phone   string `json:"telefono"`
	Address string `json:"direccion"`

	// Status is one of types.PartyStatuses
	Status types.Status `json:"estado"`

	// Extra holds columns the application does not know about
	Extra map[string]string `json:"extra,omitempty"`
}

// FromRow converts a normalized row to a client
func FromRow(row sheets.Row) *Client {
	id, _ := sheets.ParseInt(row.Get(ColumnID))
	return &Client{
		ID:        id,
		FirstName: row.Get(ColumnFirstName),
		LastName:  row.Get(ColumnLastName),
		DNI:       row.Get(ColumnDNI),
		CUIT:      row.Get(ColumnCUIT),
		Email:     row.Get(ColumnEmail),
		Phone:     row.Get(ColumnPhone),
		Address:   row.Get(ColumnAddress),
		Status:    types.Status(row.Get(ColumnStatus)),
		Extra:     extraColumns(row),
	}
}

// FromRows converts a list of normalized rows to clients
func FromRows(rows []sheets.Row) []*Client {
	return lo.Map(rows, func(r sheets.Row, _ int) *Client { return FromRow(r) })
}

// ToRow converts the client back to a row. A zero ID is written blank so
// the upsert allocates a new identifier.
func (c *Client) ToRow() sheets.Row {
	row := sheets.Row{}
	for k, v := range c.Extra {
		row[k] = v
	}
	row[ColumnID] = ""
	if c.ID > 0 {
		row[ColumnID] = sheets.FormatInt(c.ID)
	}
	row[ColumnFirstName] = c.FirstName
	row[ColumnLastName] = c.LastName
	row[ColumnDNI] = c.DNI
	row[ColumnCUIT] = c.CUIT
	row[ColumnEmail] = c.Email
	row[ColumnPhone] = c.Phone
	row[ColumnAddress] = c.Address
	row[ColumnStatus] = string(c.Status)
	return row
}

// FullName joins name and surname for display
func (c *Client) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// TaxID returns the CUIT when present and the DNI otherwise
func (c *Client) TaxID() string {
	if c.CUIT != "" {
		return c.CUIT
	}
	return c.DNI
}

func (c *Client) Validate() error {
	if c.FirstName == "" {
		return ierr.NewError("client name is required").
			WithHint("Please provide the client's name").
			Mark(ierr.ErrValidation)
	}
	if c.Email != "" && !types.IsValidEmail(c.Email) {
		return ierr.NewError("invalid email").
			WithHint("Please provide a valid email address").
			WithReportableDetails(map[string]any{
				"email": c.Email,
			}).
			Mark(ierr.ErrValidation)
	}
	if c.Status != "" && !lo.Contains(types.PartyStatuses, c.Status) {
		return ierr.NewError("invalid client status").
			WithHintf("Status must be one of %v", types.PartyStatuses).
			Mark(ierr.ErrValidation)
	}
	return nil
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
