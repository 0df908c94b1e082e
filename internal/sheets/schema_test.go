package sheets

// Test schemas mirror the shape of the real record sets without importing
// the domain packages.
var (
	partySchema = Schema{
		Sheet:           "clientes",
		Columns:         []string{"id", "cliente_id", "nombre", "apellido", "dni", "email", "estado"},
		IDColumn:        "id",
		AliasColumn:     "cliente_id",
		LegacyIDColumns: []string{"cliente_id"},
		StatusColumn:    "estado",
		Statuses:        []string{"Activo", "Inactivo"},
		DefaultStatus:   "Activo",
		Kinds: map[string]ColumnKind{
			"id":         KindInt,
			"cliente_id": KindInt,
		},
		Filters: []FilterField{
			{Column: "nombre", Mode: MatchContains},
			{Column: "apellido", Mode: MatchContains},
			{Column: "dni", Mode: MatchContains},
			{Column: "email", Mode: MatchContains},
			{Column: "estado", Mode: MatchEquals},
		},
	}

	stockSchema = Schema{
		Sheet:           "vehiculos",
		Columns:         []string{"id", "cliente_id", "marca", "modelo", "anio", "precio", "estado"},
		IDColumn:        "id",
		LegacyIDColumns: []string{"vehiculo_id"},
		StatusColumn:    "estado",
		Statuses:        []string{"Disponible", "Reservado", "Vendido", "No disponible"},
		DefaultStatus:   "Disponible",
		Kinds: map[string]ColumnKind{
			"id":         KindInt,
			"cliente_id": KindInt,
			"anio":       KindInt,
			"precio":     KindFloat,
		},
		Filters: []FilterField{
			{Column: "marca", Mode: MatchContains},
			{Column: "modelo", Mode: MatchContains},
			{Column: "anio", Mode: MatchInt},
			{Column: "cliente_id", Mode: MatchInt},
			{Column: "estado", Mode: MatchEquals},
		},
	}

	ledgerSchema = Schema{
		Sheet:   "facturas",
		Columns: []string{"numero", "fecha", "cliente", "tipo", "total"},
		Kinds: map[string]ColumnKind{
			"total": KindFloat,
		},
		Filters: []FilterField{
			{Column: "numero", Mode: MatchContains},
			{Column: "cliente", Mode: MatchContains},
			{Column: "tipo", Mode: MatchEquals},
		},
	}
)
