package vehicle

import (
	"testing"

	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestFromRow(t *testing.T) {
	row := sheets.Normalize(&sheets.Table{
		Columns: []string{"vehiculo_id", "cliente_id", "marca", "modelo", "anio", "precio", "estado"},
		Rows: []sheets.Row{
			{"vehiculo_id": "2", "cliente_id": "", "marca": "Ford", "modelo": "Focus", "anio": "2018.0", "precio": "1.500.000", "estado": ""},
		},
	}, Schema).Rows[0]

	v := FromRow(row)

	assert.Equal(t, 2, v.ID)
	assert.Nil(t, v.ClientID)
	assert.Equal(t, lo.ToPtr(2018), v.Year)
	assert.Equal(t, 1500000.0, v.Price)
	assert.Equal(t, types.StatusAvailable, v.Status)
	assert.Equal(t, "Ford Focus 2018", v.Description())
	assert.Nil(t, v.Extra)
}

func TestToRow(t *testing.T) {
	v := &Vehicle{
		ClientID: lo.ToPtr(3),
		Make:     "Fiat",
		Price:    10.5,
		Status:   types.StatusReserved,
	}

	row := v.ToRow()

	assert.Equal(t, "", row[ColumnID])
	assert.Equal(t, "3", row[ColumnClientID])
	assert.Equal(t, "", row[ColumnYear])
	assert.Equal(t, "10.5", row[ColumnPrice])
	assert.Equal(t, "Reservado", row[ColumnStatus])
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Vehicle{Make: "Ford"}).Validate())
	assert.Error(t, (&Vehicle{}).Validate())
	assert.Error(t, (&Vehicle{Make: "Ford", Price: -1}).Validate())
	assert.Error(t, (&Vehicle{Make: "Ford", Status: types.StatusActive}).Validate())
}
