package sheets

import (
	"strings"

	"github.com/samber/lo"
)

// Row maps a column name to the text of its cell. A missing key and an
// empty string both mean the cell is empty.
type Row map[string]string

// Get returns the cell for column, or "" when the row lacks it
func (r Row) Get(column string) string {
	if r == nil {
		return ""
	}
	return r[column]
}

// Clone returns an independent copy of the row
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is the in-memory form of one spreadsheet: an ordered header and
// one Row per data line. LastID remembers the highest identifier ever
// handed out so deleted identifiers are not allocated again.
type Table struct {
	Columns []string
	Rows    []Row
	LastID  int
}

// NewTable returns an empty table with the schema's canonical columns
func NewTable(schema Schema) *Table {
	return &Table{
		Columns: append([]string(nil), schema.Columns...),
		Rows:    []Row{},
	}
}

// Len returns the number of data rows
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// HasColumn reports whether the header contains column
func (t *Table) HasColumn(column string) bool {
	return t != nil && lo.Contains(t.Columns, column)
}

// Clone returns a deep copy; mutating it never affects t
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
		LastID:  t.LastID,
	}
	for i, row := range t.Rows {
		out.Rows[i] = row.Clone()
	}
	return out
}

// blankRow returns a row with every header column present and empty
func (t *Table) blankRow() Row {
	row := make(Row, len(t.Columns))
	for _, c := range t.Columns {
		row[c] = ""
	}
	return row
}

// uniqueHeader trims header names, names blank ones after their position
// and suffixes repeated names so every column stays addressable.
func uniqueHeader(raw []string) []string {
	out := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" {
			name = "col_" + FormatInt(i+1)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = name + "_" + FormatInt(n+1)
		} else {
			seen[name] = 1
		}
		out[i] = name
	}
	return out
}
