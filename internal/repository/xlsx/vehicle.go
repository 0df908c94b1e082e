package xlsx

import (
	"context"

	"github.com/dealerbook/dealerbook/internal/domain/record"
	"github.com/dealerbook/dealerbook/internal/domain/vehicle"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/dealerbook/dealerbook/internal/types"
)

type vehicleRepository struct {
	records record.Repository
	log     *logger.Logger
}

func NewVehicleRepository(records record.Repository, log *logger.Logger) vehicle.Repository {
	return &vehicleRepository{
		records: records,
		log:     log,
	}
}

func (r *vehicleRepository) List(ctx context.Context, filter types.RecordFilter) ([]*vehicle.Vehicle, error) {
	rows, err := r.records.List(ctx, filterValues(filter))
	if err != nil {
		return nil, err
	}
	return vehicle.FromRows(rows), nil
}

func (r *vehicleRepository) Get(ctx context.Context, id int) (*vehicle.Vehicle, error) {
	row, err := r.records.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return vehicle.FromRow(row), nil
}

func (r *vehicleRepository) Save(ctx context.Context, v *vehicle.Vehicle) (int, error) {
	return r.records.Upsert(ctx, v.ToRow())
}

func (r *vehicleRepository) Delete(ctx context.Context, id int) error {
	return r.records.Delete(ctx, id)
}
