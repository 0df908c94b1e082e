package service

import (
	"context"
	"strings"

	"github.com/dealerbook/dealerbook/internal/domain/invoice"
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/dealerbook/dealerbook/internal/types"
)

// canonicalStatus maps a user supplied status onto its stored spelling. A
// blank status is kept blank so the record set default applies.
func canonicalStatus(schema sheets.Schema, status types.Status) (types.Status, error) {
	if strings.TrimSpace(string(status)) == "" {
		return "", nil
	}
	canonical, ok := schema.CanonicalStatus(string(status))
	if !ok {
		return "", ierr.NewError("invalid status").
			WithHintf("Status must be one of %v", schema.Statuses).
			WithReportableDetails(map[string]any{
				"estado": status,
			}).
			Mark(ierr.ErrValidation)
	}
	return types.Status(canonical), nil
}

// nextInvoiceNumber scans the stored invoice numbers for pointOfSale,
// falling back to fallback when pointOfSale is blank.
func nextInvoiceNumber(ctx context.Context, repo invoice.Repository, pointOfSale, fallback string) (string, error) {
	if strings.TrimSpace(pointOfSale) == "" {
		pointOfSale = fallback
	}
	pos, err := invoice.ParsePointOfSale(pointOfSale)
	if err != nil {
		return "", err
	}

	numbers, err := repo.Numbers(ctx)
	if err != nil {
		return "", err
	}
	return invoice.NextNumber(numbers, pos), nil
}
