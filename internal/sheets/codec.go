package sheets

import (
	"io"
	"strings"

	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

const (
	// MetaSheet is the hidden worksheet holding bookkeeping values
	MetaSheet = "_meta"

	metaLastID = "last_id"
)

// Decode reads the first visible data worksheet of an xlsx document. The
// first row is the header. Blank rows are skipped and cells past the header
// get a generated column name. Numeric cells keep their plain value; text
// cells in the schema's decimal columns are read with ParseLocaleFloat.
func Decode(r io.Reader, schema Schema) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("The file is not a readable spreadsheet").
			Mark(ierr.ErrValidation)
	}
	defer f.Close()

	sheet, ok := lo.Find(f.GetSheetList(), func(name string) bool {
		return name != MetaSheet
	})
	if !ok {
		return &Table{Rows: []Row{}}, nil
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("The worksheet could not be read").
			WithReportableDetails(map[string]any{"sheet": sheet}).
			Mark(ierr.ErrValidation)
	}

	t := &Table{Rows: []Row{}, LastID: readLastID(f)}
	if len(rows) == 0 {
		return t, nil
	}

	width := lo.Max(lo.Map(rows, func(r []string, _ int) int { return len(r) }))
	header := make([]string, width)
	copy(header, rows[0])
	t.Columns = uniqueHeader(header)

	decimals := lo.Map(t.Columns, func(c string, _ int) bool {
		return schema.Kind(strings.TrimSpace(c)) == KindFloat
	})
	for n, cells := range rows[1:] {
		if lo.EveryBy(cells, IsBlank) {
			continue
		}
		row := t.blankRow()
		for i, cell := range cells {
			if decimals[i] && !IsBlank(cell) && isTextCell(f, sheet, i+1, n+2) {
				if x, ok := ParseLocaleFloat(cell); ok {
					cell = FormatFloat(x)
				}
			}
			row[t.Columns[i]] = cell
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// isTextCell reports whether the cell at col, row holds a string rather
// than a number
func isTextCell(f *excelize.File, sheet string, col, row int) bool {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false
	}
	kind, err := f.GetCellType(sheet, name)
	if err != nil {
		return false
	}
	return kind == excelize.CellTypeSharedString || kind == excelize.CellTypeInlineString
}

// Encode builds an xlsx document from t. Numeric columns are written as
// numbers so the file stays usable in a spreadsheet application.
func Encode(t *Table, schema Schema) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := schema.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, encodeError(err, schema)
	}

	header := lo.Map(t.Columns, func(c string, _ int) any { return c })
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, encodeError(err, schema)
	}

	for i, row := range t.Rows {
		cells := make([]any, len(t.Columns))
		for j, column := range t.Columns {
			cells[j] = cellValue(row.Get(column), schema.Kind(column))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, encodeError(err, schema)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			f.Close()
			return nil, encodeError(err, schema)
		}
	}

	if t.LastID > 0 {
		if err := writeMeta(f, t.LastID); err != nil {
			f.Close()
			return nil, encodeError(err, schema)
		}
	}
	return f, nil
}

func cellValue(v string, kind ColumnKind) any {
	if v == "" {
		return nil
	}
	switch kind {
	case KindInt:
		if n, ok := ParseInt(v); ok {
			return n
		}
	case KindFloat:
		if x, ok := ParseFloat(v); ok {
			return x
		}
	}
	return v
}

func writeMeta(f *excelize.File, lastID int) error {
	if _, err := f.NewSheet(MetaSheet); err != nil {
		return err
	}
	rows := [][]any{
		{"key", "value"},
		{metaLastID, lastID},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(MetaSheet, cell, &r); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)
	return f.SetSheetVisible(MetaSheet, false)
}

func readLastID(f *excelize.File) int {
	if idx, err := f.GetSheetIndex(MetaSheet); err != nil || idx < 0 {
		return 0
	}
	rows, err := f.GetRows(MetaSheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return 0
	}
	for _, r := range rows {
		if len(r) < 2 || r[0] != metaLastID {
			continue
		}
		if n, ok := ParseInt(r[1]); ok && n > 0 {
			return n
		}
	}
	return 0
}

func encodeError(err error, schema Schema) error {
	return ierr.WithError(err).
		WithHint("Could not build the spreadsheet").
		WithReportableDetails(map[string]any{"sheet": schema.Sheet}).
		Mark(ierr.ErrStorage)
}
