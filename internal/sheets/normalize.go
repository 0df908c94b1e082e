package sheets

import (
	"strings"

	"github.com/samber/lo"
)

// Normalize coerces a raw table into the schema's canonical form and
// returns a new table; raw is never modified.
//
// The output header lists the canonical columns first and then any other
// column in its original order. Every row carries every column. Legacy
// identifier columns are renamed, the alias column mirrors the identifier,
// status values belong to the enum and numeric columns hold plain numbers.
// Normalizing an already normalized table changes nothing.
func Normalize(raw *Table, schema Schema) *Table {
	if raw == nil {
		return NewTable(schema)
	}

	columns, rename := trimmedColumns(raw.Columns)
	columns, rename = renameLegacyID(columns, rename, schema)

	extras := lo.Filter(columns, func(c string, _ int) bool {
		return !schema.IsCanonical(c)
	})
	out := &Table{
		Columns: append(append([]string(nil), schema.Columns...), extras...),
		Rows:    make([]Row, 0, len(raw.Rows)),
		LastID:  raw.LastID,
	}

	for _, src := range raw.Rows {
		row := out.blankRow()
		for k, v := range src {
			name, ok := rename[k]
			if !ok {
				// cells outside the header have nowhere to live
				continue
			}
			if _, taken := row[name]; taken && row[name] != "" {
				continue
			}
			row[name] = v
		}
		normalizeRow(row, schema)
		out.Rows = append(out.Rows, row)
	}

	if schema.HasIdentity() {
		out.LastID = max(out.LastID, MaxID(out, schema))
	}
	return out
}

// NormalizeRow applies the per row rules of Normalize to a single row in
// place. The row must already carry the schema columns.
func NormalizeRow(row Row, schema Schema) {
	normalizeRow(row, schema)
}

func normalizeRow(row Row, schema Schema) {
	for column, kind := range schema.Kinds {
		if _, ok := row[column]; !ok {
			continue
		}
		switch kind {
		case KindInt:
			row[column] = normalizeIntCell(row[column])
		case KindFloat:
			row[column] = FormatFloat(FloatOrZero(row[column]))
		}
	}

	if schema.AliasColumn != "" && schema.IDColumn != "" {
		if IsBlank(row[schema.AliasColumn]) {
			row[schema.AliasColumn] = row[schema.IDColumn]
		}
	}

	if schema.StatusColumn != "" && len(schema.Statuses) > 0 {
		row[schema.StatusColumn], _ = schema.CanonicalStatus(row[schema.StatusColumn])
	}
}

// normalizeIntCell rewrites integral numbers in their plain form and leaves
// any other text alone so nothing typed by hand is lost.
func normalizeIntCell(v string) string {
	if IsBlank(v) {
		return ""
	}
	if n, ok := ParseInt(v); ok {
		return FormatInt(n)
	}
	return v
}

// trimmedColumns trims header names and keeps the first of any names that
// collide after trimming. rename maps every original name to its new name.
func trimmedColumns(raw []string) ([]string, map[string]string) {
	columns := make([]string, 0, len(raw))
	rename := make(map[string]string, len(raw))
	for _, c := range raw {
		name := strings.TrimSpace(c)
		if lo.Contains(columns, name) {
			continue
		}
		columns = append(columns, name)
		rename[c] = name
	}
	return columns, rename
}

// renameLegacyID renames the first legacy identifier column found to the
// identifier column when the identifier column itself is missing.
func renameLegacyID(columns []string, rename map[string]string, schema Schema) ([]string, map[string]string) {
	if schema.IDColumn == "" || lo.Contains(columns, schema.IDColumn) {
		return columns, rename
	}
	for _, legacy := range schema.LegacyIDColumns {
		idx := lo.IndexOf(columns, legacy)
		if idx < 0 {
			continue
		}
		columns[idx] = schema.IDColumn
		for k, v := range rename {
			if v == legacy {
				rename[k] = schema.IDColumn
			}
		}
		break
	}
	return columns, rename
}
