package dto

import (
	"strings"

	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/dealerbook/dealerbook/internal/validator"
	"github.com/spf13/cast"
)

// UpsertRecordRequest carries a partial record keyed by column name. Values
// may be JSON strings, numbers or booleans; null means blank.
type UpsertRecordRequest struct {
	Record map[string]any `json:"record" validate:"required"`
}

func (r *UpsertRecordRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if len(r.Record) == 0 {
		return validationError("record cannot be empty", "record")
	}
	return nil
}

// ToRow renders every value the way it would be stored in a cell
func (r *UpsertRecordRequest) ToRow() (sheets.Row, error) {
	row := make(sheets.Row, len(r.Record))
	for column, value := range r.Record {
		column = strings.TrimSpace(column)
		if column == "" {
			continue
		}
		if f, ok := value.(float64); ok {
			row[column] = sheets.FormatFloat(f)
			continue
		}
		s, err := cast.ToStringE(value)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHintf("Column %s must hold a text or numeric value", column).
				WithReportableDetails(map[string]any{"column": column}).
				Mark(ierr.ErrValidation)
		}
		row[column] = s
	}
	return row, nil
}

type UpsertRecordResponse struct {
	Kind types.EntityKind `json:"kind"`
	ID   int              `json:"id"`
}

type RecordResponse struct {
	Kind   types.EntityKind `json:"kind"`
	Record sheets.Row       `json:"record"`
}

type ListRecordsResponse = types.ListResponse[sheets.Row]
