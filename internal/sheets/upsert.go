package sheets

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// RecordID returns the identifier of row, falling back to the alias column.
// Zero means the row has no usable identifier.
func RecordID(row Row, schema Schema) int {
	for _, column := range []string{schema.IDColumn, schema.AliasColumn} {
		if column == "" {
			continue
		}
		if n, ok := ParseInt(row.Get(column)); ok && n > 0 {
			return n
		}
	}
	return 0
}

// MaxID returns the largest identifier found in either the identifier or
// the alias column, or zero for an empty table.
func MaxID(t *Table, schema Schema) int {
	if t == nil {
		return 0
	}
	highest := 0
	for _, row := range t.Rows {
		for _, column := range []string{schema.IDColumn, schema.AliasColumn} {
			if column == "" {
				continue
			}
			if n, ok := ParseInt(row.Get(column)); ok && n > highest {
				highest = n
			}
		}
	}
	return highest
}

// NextID returns the identifier the next insert into t would receive
func NextID(t *Table, schema Schema) int {
	if t == nil {
		return 1
	}
	return max(MaxID(t, schema), t.LastID) + 1
}

// FindByID returns the index of the row whose identifier or alias equals id,
// or -1.
func FindByID(t *Table, schema Schema, id int) int {
	if t == nil || id <= 0 {
		return -1
	}
	for i, row := range t.Rows {
		if matchesID(row, schema, id) {
			return i
		}
	}
	return -1
}

// FindAllByID returns the indexes of every row whose identifier or alias
// equals id. A row whose alias drifted from its identifier can share an id
// with another row.
func FindAllByID(t *Table, schema Schema, id int) []int {
	if t == nil || id <= 0 {
		return nil
	}
	var found []int
	for i, row := range t.Rows {
		if matchesID(row, schema, id) {
			found = append(found, i)
		}
	}
	return found
}

// Upsert inserts or updates one record and returns the new table together
// with the identifier of the affected record. t is left untouched.
//
// A partial without a positive identifier is inserted under the next free
// identifier. A partial whose identifier matches existing rows updates every
// one of them: non blank values overwrite, blank values keep what was there,
// and identifier and alias are both reset to the resolved id.
// A partial carrying an identifier that matches nothing is inserted with
// that identifier. Keys that are not columns of t are ignored.
func Upsert(t *Table, schema Schema, partial Row) (*Table, int) {
	out := t.Clone()
	if out == nil {
		out = NewTable(schema)
	}

	id := RecordID(partial, schema)
	if matched := FindAllByID(out, schema, id); len(matched) > 0 {
		for _, idx := range matched {
			row := out.Rows[idx]
			for column, v := range partial {
				if !out.HasColumn(column) {
					continue
				}
				v = strings.TrimSpace(v)
				if v == "" {
					continue
				}
				row[column] = v
			}
			setIdentity(row, schema, id)
			NormalizeRow(row, schema)
		}
		return out, id
	}

	if id <= 0 {
		id = NextID(out, schema)
	}
	row := out.blankRow()
	for column, v := range partial {
		if out.HasColumn(column) {
			row[column] = strings.TrimSpace(v)
		}
	}
	setIdentity(row, schema, id)
	NormalizeRow(row, schema)
	out.Rows = append(out.Rows, row)
	out.LastID = max(out.LastID, id)
	return out, id
}

// Remove drops every row whose identifier or alias equals id. The second
// result is false when no row matched. LastID keeps the removed identifier so it is
// never allocated again.
func Remove(t *Table, schema Schema, id int) (*Table, bool) {
	out := t.Clone()
	if out == nil {
		return NewTable(schema), false
	}
	out.LastID = max(out.LastID, MaxID(out, schema))

	kept := lo.Reject(out.Rows, func(row Row, _ int) bool {
		return id > 0 && matchesID(row, schema, id)
	})
	if len(kept) == len(out.Rows) {
		return out, false
	}
	out.Rows = kept
	return out, true
}

func matchesID(row Row, schema Schema, id int) bool {
	for _, column := range []string{schema.IDColumn, schema.AliasColumn} {
		if column == "" {
			continue
		}
		if n, ok := ParseInt(row.Get(column)); ok && n == id {
			return true
		}
	}
	return false
}

func setIdentity(row Row, schema Schema, id int) {
	if schema.IDColumn != "" {
		row[schema.IDColumn] = FormatInt(id)
	}
	if schema.AliasColumn != "" {
		row[schema.AliasColumn] = FormatInt(id)
	}
}

// Append adds a record as is, for record sets without identifiers. Non
// blank keys that are not columns of t become new columns at the end of the
// header, in name order; earlier rows get an empty cell for them.
func Append(t *Table, schema Schema, record Row) *Table {
	out := t.Clone()
	if out == nil {
		out = NewTable(schema)
	}

	added := lo.Filter(lo.Keys(record), func(column string, _ int) bool {
		return column != "" && strings.TrimSpace(column) == column &&
			!out.HasColumn(column) && !IsBlank(record[column])
	})
	sort.Strings(added)
	for _, column := range added {
		out.Columns = append(out.Columns, column)
		for _, existing := range out.Rows {
			existing[column] = ""
		}
	}

	row := out.blankRow()
	for column, v := range record {
		if out.HasColumn(column) {
			row[column] = strings.TrimSpace(v)
		}
	}
	NormalizeRow(row, schema)
	out.Rows = append(out.Rows, row)
	return out
}
