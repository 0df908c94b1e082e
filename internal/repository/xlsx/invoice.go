package xlsx

import (
	"context"
	"strings"

	"github.com/dealerbook/dealerbook/internal/domain/invoice"
	"github.com/dealerbook/dealerbook/internal/domain/record"
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/samber/lo"
)

type invoiceRepository struct {
	records record.Repository
	log     *logger.Logger
}

func NewInvoiceRepository(records record.Repository, log *logger.Logger) invoice.Repository {
	return &invoiceRepository{
		records: records,
		log:     log,
	}
}

func (r *invoiceRepository) List(ctx context.Context, filter types.RecordFilter) ([]*invoice.Invoice, error) {
	rows, err := r.records.List(ctx, filterValues(filter))
	if err != nil {
		return nil, err
	}
	return invoice.FromRows(rows), nil
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, number string) (*invoice.Invoice, error) {
	t, err := r.records.Table(ctx)
	if err != nil {
		return nil, err
	}

	number = strings.TrimSpace(number)
	for _, row := range t.Rows {
		if strings.TrimSpace(row.Get(invoice.ColumnNumber)) == number {
			return invoice.FromRow(row), nil
		}
	}
	return nil, ierr.NewErrorf("invoice %s not found", number).
		WithHint("No invoice has this number").
		WithReportableDetails(map[string]any{
			"number": number,
		}).
		Mark(ierr.ErrNotFound)
}

func (r *invoiceRepository) Numbers(ctx context.Context) ([]string, error) {
	t, err := r.records.Table(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(t.Rows, func(row sheets.Row, _ int) string {
		return row.Get(invoice.ColumnNumber)
	}), nil
}

func (r *invoiceRepository) Append(ctx context.Context, inv *invoice.Invoice) error {
	return r.records.Append(ctx, inv.ToRow())
}
