package sheets

import "github.com/samber/lo"

// ColumnKind tells the normalizer and the codec how to treat a column
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindInt
	KindFloat
)

// MatchMode selects how a filter value is compared against a cell
type MatchMode int

const (
	// MatchContains is a folded substring match, used for free text fields
	MatchContains MatchMode = iota
	// MatchEquals is a folded exact match, used for status fields
	MatchEquals
	// MatchInt parses both sides as integers
	MatchInt
)

// FilterField declares one filterable column. A schema lists them in the
// order predicates are applied.
type FilterField struct {
	Column string
	Mode   MatchMode
}

// Schema describes the canonical layout of one record set
type Schema struct {
	// Sheet is the worksheet name used when writing the file
	Sheet string
	// Columns is the canonical header, in order
	Columns []string
	// IDColumn holds the primary identifier; empty for sets without one
	IDColumn string
	// AliasColumn mirrors IDColumn for older readers; may be empty
	AliasColumn string
	// LegacyIDColumns are renamed to IDColumn when IDColumn is missing
	LegacyIDColumns []string
	// StatusColumn, Statuses and DefaultStatus describe the status enum
	StatusColumn  string
	Statuses      []string
	DefaultStatus string
	// Kinds maps non text columns to their kind
	Kinds map[string]ColumnKind
	// Filters lists the filterable columns in application order
	Filters []FilterField
}

// Kind returns the kind of column, KindText when undeclared
func (s Schema) Kind(column string) ColumnKind {
	if k, ok := s.Kinds[column]; ok {
		return k
	}
	return KindText
}

// HasIdentity reports whether records carry an integer identifier
func (s Schema) HasIdentity() bool {
	return s.IDColumn != ""
}

// IsCanonical reports whether column belongs to the canonical header
func (s Schema) IsCanonical(column string) bool {
	return lo.Contains(s.Columns, column)
}

// CanonicalStatus maps v onto the enum spelling, falling back to the default
// for blank or unknown values. The second result is false when v was not
// recognised.
func (s Schema) CanonicalStatus(v string) (string, bool) {
	if IsBlank(v) {
		return s.DefaultStatus, false
	}
	folded := Fold(v)
	for _, status := range s.Statuses {
		if Fold(status) == folded {
			return status, true
		}
	}
	return s.DefaultStatus, false
}
