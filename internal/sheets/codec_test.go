package sheets

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func encodeToBytes(t *testing.T, tbl *Table, schema Schema) []byte {
	t.Helper()
	f, err := Encode(tbl, schema)
	require.NoError(t, err)
	defer f.Close()

	var buf bytes.Buffer
	_, err = f.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func rawWorkbook(t *testing.T, sheet string, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestCodec_RoundTrip(t *testing.T) {
	tbl := Normalize(&Table{
		Columns: []string{"id", "marca", "anio", "precio", "estado", "observaciones"},
		Rows: []Row{
			{"id": "1", "marca": "Ford", "anio": "2018", "precio": "1234.5", "estado": "Vendido", "observaciones": "00123"},
			{"id": "2", "marca": "Fiat", "anio": "", "precio": "0", "estado": "Disponible", "observaciones": ""},
		},
		LastID: 7,
	}, stockSchema)

	decoded, err := Decode(bytes.NewReader(encodeToBytes(t, tbl, stockSchema)), stockSchema)
	require.NoError(t, err)

	got := Normalize(decoded, stockSchema)
	assert.Equal(t, tbl, got)
	assert.Equal(t, 7, got.LastID)
}

func TestCodec_EmptyTableKeepsHeader(t *testing.T) {
	decoded, err := Decode(bytes.NewReader(encodeToBytes(t, NewTable(partySchema), partySchema)), partySchema)
	require.NoError(t, err)

	assert.Equal(t, partySchema.Columns, decoded.Columns)
	assert.Empty(t, decoded.Rows)
	assert.Zero(t, decoded.LastID)
}

func TestDecode_HeaderRepair(t *testing.T) {
	data := rawWorkbook(t, "Hoja1", [][]any{
		{"nombre", nil, " nombre "},
		{"Ana", "x", "y", "overflow"},
		{nil, nil, nil},
		{"Luis"},
	})

	got, err := Decode(bytes.NewReader(data), partySchema)
	require.NoError(t, err)

	assert.Equal(t, []string{"nombre", "col_2", "nombre_2", "col_4"}, got.Columns)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "overflow", got.Rows[0]["col_4"])
	assert.Equal(t, "Luis", got.Rows[1]["nombre"])
	assert.Equal(t, "", got.Rows[1]["col_2"])
}

func TestDecode_NumbersStoredAsFloats(t *testing.T) {
	data := rawWorkbook(t, "clientes", [][]any{
		{"cliente_id", "nombre"},
		{3.0, "Ana"},
	})

	raw, err := Decode(bytes.NewReader(data), partySchema)
	require.NoError(t, err)

	got := Normalize(raw, partySchema)
	assert.Equal(t, "3", got.Rows[0]["id"])
	assert.Equal(t, "3", got.Rows[0]["cliente_id"])
}

func TestDecode_PriceTextUsesThousandsDots(t *testing.T) {
	data := rawWorkbook(t, "vehiculos", [][]any{
		{"id", "marca", "precio", "modelo"},
		{1, "Ford", "15.000", "1.6"},
		{2, "Fiat", "$ 15.000", nil},
		{3, "VW", 1234.5, nil},
		{4, "Peugeot", "1.234,56", nil},
	})

	raw, err := Decode(bytes.NewReader(data), stockSchema)
	require.NoError(t, err)

	got := Normalize(raw, stockSchema)
	require.Len(t, got.Rows, 4)
	assert.Equal(t, "15000", got.Rows[0]["precio"])
	assert.Equal(t, "15000", got.Rows[1]["precio"])
	assert.Equal(t, "1234.5", got.Rows[2]["precio"])
	assert.Equal(t, "1234.56", got.Rows[3]["precio"])
	assert.Equal(t, "1.6", got.Rows[0]["modelo"])
}

func TestDecode_NotASpreadsheet(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("just text")), partySchema)
	assert.Error(t, err)
}
