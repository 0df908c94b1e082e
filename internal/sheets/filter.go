package sheets

import (
	"strings"
)

// Predicate reports whether a row should be kept
type Predicate func(Row) bool

// Predicates builds one predicate per non blank value, in the order the
// fields are declared. Values for columns that are not declared are
// ignored, and so are MatchInt values that are not integers.
func Predicates(fields []FilterField, values map[string]string) []Predicate {
	preds := make([]Predicate, 0, len(fields))
	for _, field := range fields {
		raw, ok := values[field.Column]
		if !ok || IsBlank(raw) {
			continue
		}
		column := field.Column
		switch field.Mode {
		case MatchContains:
			needle := Fold(raw)
			preds = append(preds, func(r Row) bool {
				return strings.Contains(Fold(r.Get(column)), needle)
			})
		case MatchEquals:
			want := Fold(raw)
			preds = append(preds, func(r Row) bool {
				return Fold(r.Get(column)) == want
			})
		case MatchInt:
			want, ok := ParseInt(raw)
			if !ok {
				continue
			}
			preds = append(preds, func(r Row) bool {
				got, ok := ParseInt(r.Get(column))
				return ok && got == want
			})
		}
	}
	return preds
}

// Filter returns a copy of t holding the rows that satisfy every predicate,
// in their original order. With no predicates the copy holds every row.
func Filter(t *Table, preds []Predicate) *Table {
	if t == nil {
		return nil
	}
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, 0, len(t.Rows)),
		LastID:  t.LastID,
	}
	for _, row := range t.Rows {
		if matchesAll(row, preds) {
			out.Rows = append(out.Rows, row.Clone())
		}
	}
	return out
}

// FilterBy is Filter with predicates built from the schema's filter fields
func FilterBy(t *Table, schema Schema, values map[string]string) *Table {
	return Filter(t, Predicates(schema.Filters, values))
}

func matchesAll(row Row, preds []Predicate) bool {
	for _, p := range preds {
		if !p(row) {
			return false
		}
	}
	return true
}
