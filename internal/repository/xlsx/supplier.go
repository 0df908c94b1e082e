package xlsx

import (
	"context"

	"github.com/dealerbook/dealerbook/internal/domain/record"
	"github.com/dealerbook/dealerbook/internal/domain/supplier"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/dealerbook/dealerbook/internal/types"
)

type supplierRepository struct {
	records record.Repository
	log     *logger.Logger
}

func NewSupplierRepository(records record.Repository, log *logger.Logger) supplier.Repository {
	return &supplierRepository{
		records: records,
		log:     log,
	}
}

func (r *supplierRepository) List(ctx context.Context, filter types.RecordFilter) ([]*supplier.Supplier, error) {
	rows, err := r.records.List(ctx, filterValues(filter))
	if err != nil {
		return nil, err
	}
	return supplier.FromRows(rows), nil
}

func (r *supplierRepository) Get(ctx context.Context, id int) (*supplier.Supplier, error) {
	row, err := r.records.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return supplier.FromRow(row), nil
}

func (r *supplierRepository) Save(ctx context.Context, s *supplier.Supplier) (int, error) {
	return r.records.Upsert(ctx, s.ToRow())
}

func (r *supplierRepository) Delete(ctx context.Context, id int) error {
	return r.records.Delete(ctx, id)
}
