package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockTable() *Table {
	return Normalize(&Table{
		Columns: []string{"id", "marca", "modelo", "anio", "cliente_id", "estado"},
		Rows: []Row{
			{"id": "1", "marca": "Ford", "modelo": "Focus", "anio": "2018", "cliente_id": "", "estado": "Disponible"},
			{"id": "2", "marca": "Fiat", "modelo": "Cronos", "anio": "2021", "cliente_id": "3", "estado": "Vendido"},
			{"id": "3", "marca": "Ford", "modelo": "Ranger", "anio": "2021", "cliente_id": "", "estado": "Reservado"},
			{"id": "4", "marca": "Citroën", "modelo": "C4", "anio": "2018", "cliente_id": "3", "estado": "No disponible"},
		},
	}, stockSchema)
}

func ids(t *Table) []string {
	out := make([]string, 0, t.Len())
	for _, r := range t.Rows {
		out = append(out, r["id"])
	}
	return out
}

func TestFilterBy(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   []string
	}{
		{name: "no values", values: nil, want: []string{"1", "2", "3", "4"}},
		{name: "blank values", values: map[string]string{"marca": " ", "estado": ""}, want: []string{"1", "2", "3", "4"}},
		{name: "contains folded", values: map[string]string{"marca": "FO"}, want: []string{"1", "3"}},
		{name: "contains without accent", values: map[string]string{"marca": "citroen"}, want: []string{"4"}},
		{name: "int match", values: map[string]string{"anio": "2021"}, want: []string{"2", "3"}},
		{name: "int match on float text", values: map[string]string{"anio": "2021.0"}, want: []string{"2", "3"}},
		{name: "bad int ignored", values: map[string]string{"anio": "abc"}, want: []string{"1", "2", "3", "4"}},
		{name: "owner", values: map[string]string{"cliente_id": "3"}, want: []string{"2", "4"}},
		{name: "status equals", values: map[string]string{"estado": "no disponible"}, want: []string{"4"}},
		{name: "status is not a substring match", values: map[string]string{"estado": "disp"}, want: []string{}},
		{name: "combined", values: map[string]string{"marca": "ford", "anio": "2021"}, want: []string{"3"}},
		{name: "undeclared column ignored", values: map[string]string{"precio": "1"}, want: []string{"1", "2", "3", "4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBy(stockTable(), stockSchema, tt.values)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_ReturnsCopy(t *testing.T) {
	src := stockTable()
	got := Filter(src, nil)
	require.Equal(t, src, got)

	got.Rows[0]["marca"] = "changed"
	got.Columns[0] = "changed"
	assert.Equal(t, "Ford", src.Rows[0]["marca"])
	assert.Equal(t, "id", src.Columns[0])
}

func TestPredicates_Order(t *testing.T) {
	preds := Predicates(stockSchema.Filters, map[string]string{
		"estado": "Vendido",
		"marca":  "fiat",
		"anio":   "x",
	})
	// marca and estado produce predicates, the bad year does not
	assert.Len(t, preds, 2)
}
