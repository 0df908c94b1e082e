package supplier

import (
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/samber/lo"
)

const (
	ColumnID      = "id"
	ColumnAliasID = "proveedor_id"
	ColumnName    = "nombre"
	ColumnCUIT    = "cuit"
	ColumnEmail   = "email"
	ColumnPhone   = "telefono"
	ColumnAddress = "direccion"
	ColumnStatus  = "estado"
)

// Schema is the canonical layout of the suppliers record set
var Schema = sheets.Schema{
	Sheet: "proveedores",
	Columns: []string{
		ColumnID, ColumnAliasID, ColumnName, ColumnCUIT,
		ColumnEmail, ColumnPhone, ColumnAddress, ColumnStatus,
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
		{Column: ColumnName, Mode: sheets.MatchContains},
		{Column: ColumnCUIT, Mode: sheets.MatchContains},
		{Column: ColumnEmail, Mode: sheets.MatchContains},
		{Column: ColumnStatus, Mode: sheets.MatchEquals},
	},
}

// Supplier is a vendor the dealership buys units or services from
type Supplier struct {
	ID      int               `json:"id"`
	Name    string            `json:"nombre"`
	CUIT    string            `json:"cuit"`
	Email   string            `json:"email"`
	Phone   string            `json:"telefono"`
	Address string            `json:"direccion"`
	Status  types.Status      `json:"estado"`
	Extra   map[string]string `json:"extra,omitempty"`
}

func FromRow(row sheets.Row) *Supplier {
	id, _ := sheets.ParseInt(row.Get(ColumnID))
	extra := lo.OmitBy(row, func(k string, _ string) bool {
		return Schema.IsCanonical(k)
	})
	s := &Supplier{
		ID:      id,
		Name:    row.Get(ColumnName),
		CUIT:    row.Get(ColumnCUIT),
		Email:   row.Get(ColumnEmail),
		Phone:   row.Get(ColumnPhone),
		Address: row.Get(ColumnAddress),
		Status:  types.Status(row.Get(ColumnStatus)),
	}
	if len(extra) > 0 {
		s.Extra = extra
	}
	return s
}

func FromRows(rows []sheets.Row) []*Supplier {
	return lo.Map(rows, func(r sheets.Row, _ int) *Supplier { return FromRow(r) })
}

func (s *Supplier) ToRow() sheets.Row {
	row := sheets.Row{}
	for k, v := range s.Extra {
		row[k] = v
	}
	row[ColumnID] = ""
	if s.ID > 0 {
		row[ColumnID] = sheets.FormatInt(s.ID)
	}
	row[ColumnName] = s.Name
	row[ColumnCUIT] = s.CUIT
	row[ColumnEmail] = s.Email
	row[ColumnPhone] = s.Phone
	row[ColumnAddress] = s.Address
	row[ColumnStatus] = string(s.Status)
	return row
}

func (s *Supplier) Validate() error {
	if s.Name == "" {
		return ierr.NewError("supplier name is required").
			WithHint("Please provide the supplier's name").
			Mark(ierr.ErrValidation)
	}
	if s.Email != "" && !types.IsValidEmail(s.Email) {
		return ierr.NewError("invalid email").
			WithHint("Please provide a valid email address").
			WithReportableDetails(map[string]any{
				"email": s.Email,
			}).
			Mark(ierr.ErrValidation)
	}
	if s.Status != "" && !lo.Contains(types.PartyStatuses, s.Status) {
		return ierr.NewError("invalid supplier status").
			WithHintf("Status must be one of %v", types.PartyStatuses).
			Mark(ierr.ErrValidation)
	}
	return nil
}
