package dto

import (
	ierr "github.com/dealerbook/dealerbook/internal/errors"
)

func validationError(msg, field string) error {
	return ierr.NewError(msg).
		WithHint("Request validation failed").
		WithReportableDetails(map[string]any{
			field: msg,
		}).
		Mark(ierr.ErrValidation)
}
