package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsert_InsertIntoEmpty(t *testing.T) {
	got, id := Upsert(NewTable(partySchema), partySchema, Row{"nombre": "Ana", "estado": ""})

	assert.Equal(t, 1, id)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "1", got.Rows[0]["id"])
	assert.Equal(t, "1", got.Rows[0]["cliente_id"])
	assert.Equal(t, "Activo", got.Rows[0]["estado"])
	assert.Equal(t, "Ana", got.Rows[0]["nombre"])
	assert.Equal(t, 1, got.LastID)
}

func TestUpsert_NextIDUsesAliasAndHighWater(t *testing.T) {
	base := &Table{
		Columns: partySchema.Columns,
		Rows: []Row{
			{"id": "2", "cliente_id": "9", "nombre": "Ana"},
		},
	}
	_, id := Upsert(base, partySchema, Row{"nombre": "Luis"})
	assert.Equal(t, 10, id)

	base.LastID = 20
	_, id = Upsert(base, partySchema, Row{"nombre": "Luis"})
	assert.Equal(t, 21, id)
}

func TestUpsert_PartialUpdateKeepsOtherFields(t *testing.T) {
	base, id := Upsert(NewTable(partySchema), partySchema, Row{
		"nombre": "Ana",
		"email":  "ana@example.com",
		"estado": "Activo",
	})

	got, gotID := Upsert(base, partySchema, Row{
		"id":     "1",
		"email":  "",
		"estado": "Inactivo",
	})

	assert.Equal(t, id, gotID)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "Ana", got.Rows[0]["nombre"])
	assert.Equal(t, "ana@example.com", got.Rows[0]["email"])
	assert.Equal(t, "Inactivo", got.Rows[0]["estado"])

	// the original table is not modified
	assert.Equal(t, "Activo", base.Rows[0]["estado"])
}

func TestUpsert_MatchByAlias(t *testing.T) {
	base := Normalize(&Table{
		Columns: []string{"cliente_id", "nombre"},
		Rows:    []Row{{"cliente_id": "4", "nombre": "Ana"}},
	}, partySchema)

	got, id := Upsert(base, partySchema, Row{"cliente_id": "4", "nombre": "Ana María"})

	assert.Equal(t, 4, id)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "Ana María", got.Rows[0]["nombre"])
	assert.Equal(t, "4", got.Rows[0]["id"])
}

func TestUpsert_UnknownIDIsInsertedAsGiven(t *testing.T) {
	base, _ := Upsert(NewTable(partySchema), partySchema, Row{"nombre": "Ana"})

	got, id := Upsert(base, partySchema, Row{"id": "42", "nombre": "Luis"})

	assert.Equal(t, 42, id)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "42", got.Rows[1]["cliente_id"])
	assert.Equal(t, 43, NextID(got, partySchema))
}

func TestUpsert_InvalidIDTreatedAsInsert(t *testing.T) {
	base, _ := Upsert(NewTable(partySchema), partySchema, Row{"nombre": "Ana"})

	for _, raw := range []string{"0", "-3", "abc"} {
		got, id := Upsert(base, partySchema, Row{"id": raw, "nombre": "Luis"})
		assert.Equal(t, 2, id, "id %q", raw)
		assert.Len(t, got.Rows, 2)
	}
}

func TestUpsert_IgnoresUnknownColumnsAndTrims(t *testing.T) {
	got, _ := Upsert(NewTable(partySchema), partySchema, Row{"nombre": "  Ana ", "color": "rojo"})

	assert.Equal(t, "Ana", got.Rows[0]["nombre"])
	assert.NotContains(t, got.Columns, "color")
	assert.NotContains(t, got.Rows[0], "color")
}

func TestUpsert_IDsAreMonotonic(t *testing.T) {
	tbl := NewTable(stockSchema)
	prev := 0
	for i := 0; i < 5; i++ {
		var id int
		tbl, id = Upsert(tbl, stockSchema, Row{"marca": "Ford"})
		assert.Greater(t, id, prev)
		prev = id
	}

	tbl, ok := Remove(tbl, stockSchema, 5)
	require.True(t, ok)
	_, id := Upsert(tbl, stockSchema, Row{"marca": "Fiat"})
	assert.Equal(t, 6, id)
}

func TestUpsert_VehicleDefaultStatus(t *testing.T) {
	got, _ := Upsert(NewTable(stockSchema), stockSchema, Row{"marca": "Ford", "estado": "Unknown"})
	assert.Equal(t, "Disponible", got.Rows[0]["estado"])
}

func TestRemove(t *testing.T) {
	tbl := stockTable()

	got, ok := Remove(tbl, stockSchema, 2)
	require.True(t, ok)
	assert.Equal(t, []string{"1", "3", "4"}, ids(got))
	assert.Equal(t, 4, got.LastID)
	assert.Equal(t, 4, tbl.Len())

	_, ok = Remove(tbl, stockSchema, 99)
	assert.False(t, ok)
}

func TestUpsert_UpdatesAndRepairsEveryMatchingRow(t *testing.T) {
	base := &Table{
		Columns: partySchema.Columns,
		Rows: []Row{
			{"id": "3", "cliente_id": "3", "nombre": "Ana", "email": "a@example.com"},
			{"id": "7", "cliente_id": "3", "nombre": "Ana dup", "email": "b@example.com"},
			{"id": "8", "cliente_id": "8", "nombre": "Luis", "email": "luis@example.com"},
		},
	}

	got, id := Upsert(base, partySchema, Row{"id": "3", "email": "new@example.com"})
	assert.Equal(t, 3, id)
	require.Len(t, got.Rows, 3)
	for _, row := range got.Rows[:2] {
		assert.Equal(t, "new@example.com", row["email"])
		assert.Equal(t, "3", row["id"])
		assert.Equal(t, "3", row["cliente_id"])
	}
	assert.Equal(t, "Ana dup", got.Rows[1]["nombre"])
	assert.Equal(t, "luis@example.com", got.Rows[2]["email"])
	assert.Equal(t, "7", base.Rows[1]["id"])
}

func TestRemove_DropsEveryMatchingRow(t *testing.T) {
	base := &Table{
		Columns: partySchema.Columns,
		Rows: []Row{
			{"id": "3", "cliente_id": "3", "nombre": "Ana"},
			{"id": "7", "cliente_id": "3", "nombre": "Ana dup"},
			{"id": "8", "cliente_id": "8", "nombre": "Luis"},
		},
	}

	got, ok := Remove(base, partySchema, 3)
	require.True(t, ok)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "8", got.Rows[0]["id"])
	assert.Equal(t, 8, got.LastID)
	assert.Len(t, base.Rows, 3)
}

func TestFindAllByID(t *testing.T) {
	tbl := &Table{
		Columns: partySchema.Columns,
		Rows: []Row{
			{"id": "3", "cliente_id": "3"},
			{"id": "7", "cliente_id": "3"},
		},
	}
	assert.Equal(t, []int{0, 1}, FindAllByID(tbl, partySchema, 3))
	assert.Equal(t, []int{1}, FindAllByID(tbl, partySchema, 7))
	assert.Empty(t, FindAllByID(tbl, partySchema, 0))
}

func TestFindByID(t *testing.T) {
	tbl := stockTable()
	assert.Equal(t, 2, FindByID(tbl, stockSchema, 3))
	assert.Equal(t, -1, FindByID(tbl, stockSchema, 0))
	assert.Equal(t, -1, FindByID(tbl, stockSchema, 50))
}

func TestAppend(t *testing.T) {
	tbl := NewTable(ledgerSchema)
	tbl = Append(tbl, ledgerSchema, Row{"numero": "0001-00000001", "total": "121", "nope": "x"})
	tbl = Append(tbl, ledgerSchema, Row{"numero": "0001-00000002", "total": "1.210,50", "blank": " "})

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "121", tbl.Rows[0]["total"])
	assert.Equal(t, "1210.5", tbl.Rows[1]["total"])
	assert.Equal(t, 0, tbl.LastID)
}

func TestAppend_UnknownKeysBecomeColumns(t *testing.T) {
	tbl := Append(NewTable(ledgerSchema), ledgerSchema, Row{"numero": "0001-00000001"})
	tbl = Append(tbl, ledgerSchema, Row{"numero": "0001-00000002", "observaciones": "entrega en agencia", "vacio": ""})

	assert.Equal(t, append(append([]string(nil), ledgerSchema.Columns...), "observaciones"), tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "", tbl.Rows[0]["observaciones"])
	assert.Equal(t, "entrega en agencia", tbl.Rows[1]["observaciones"])
	assert.NotContains(t, tbl.Rows[1], "vacio")
}
