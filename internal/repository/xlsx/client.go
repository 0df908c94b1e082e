package xlsx

import (
	"context"

	"github.com/dealerbook/dealerbook/internal/domain/client"
	"github.com/dealerbook/dealerbook/internal/domain/record"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/dealerbook/dealerbook/internal/types"
)

type clientRepository struct {
	records record.Repository
	log     *logger.Logger
}

func NewClientRepository(records record.Repository, log *logger.Logger) client.Repository {
	return &clientRepository{
		records: records,
		log:     log,
	}
}

func (r *clientRepository) List(ctx context.Context, filter types.RecordFilter) ([]*client.Client, error) {
	rows, err := r.records.List(ctx, filterValues(filter))
	if err != nil {
		return nil, err
	}
	return client.FromRows(rows), nil
}

func (r *clientRepository) Get(ctx context.Context, id int) (*client.Client, error) {
	row, err := r.records.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return client.FromRow(row), nil
}

func (r *clientRepository) Save(ctx context.Context, c *client.Client) (int, error) {
	return r.records.Upsert(ctx, c.ToRow())
}

func (r *clientRepository) Delete(ctx context.Context, id int) error {
	return r.records.Delete(ctx, id)
}

func filterValues(filter types.RecordFilter) map[string]string {
	if filter == nil {
		return nil
	}
	return filter.Values()
}
