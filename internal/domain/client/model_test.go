package client

import (
	"testing"

	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRowKeepsUnknownColumns(t *testing.T) {
	row := sheets.Normalize(&sheets.Table{
		Columns: []string{"cliente_id", "nombre", "apellido", "cuit", "notas"},
		Rows: []sheets.Row{
			{"cliente_id": "4", "nombre": "Ana", "apellido": "Pérez", "cuit": "27-1", "notas": "vip"},
		},
	}, Schema).Rows[0]

	c := FromRow(row)

	assert.Equal(t, 4, c.ID)
	assert.Equal(t, "Ana Pérez", c.FullName())
	assert.Equal(t, types.StatusActive, c.Status)
	assert.Equal(t, "27-1", c.TaxID())
	assert.Equal(t, map[string]string{"notas": "vip"}, c.Extra)

	back := c.ToRow()
	assert.Equal(t, "4", back[ColumnID])
	assert.Equal(t, "vip", back["notas"])
}

func TestToRowNewClientHasBlankID(t *testing.T) {
	c := &Client{FirstName: "Luis"}
	assert.Equal(t, "", c.ToRow()[ColumnID])
	assert.Equal(t, "", c.TaxID())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		client  Client
		wantErr bool
	}{
		{name: "valid", client: Client{FirstName: "Ana", Email: "ana@example.com"}},
		{name: "no email", client: Client{FirstName: "Ana"}},
		{name: "missing name", client: Client{Email: "ana@example.com"}, wantErr: true},
		{name: "bad email", client: Client{FirstName: "Ana", Email: "ana@"}, wantErr: true},
		{name: "bad status", client: Client{FirstName: "Ana", Status: types.StatusSold}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.client.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, ierr.IsValidation(err))
		})
	}
}
