package vehicle

import (
	"context"

	"github.com/dealerbook/dealerbook/internal/types"
)

// Repository defines the interface for vehicle data access
type Repository interface {
	List(ctx context.Context, filter types.RecordFilter) ([]*Vehicle, error)
	Get(ctx context.Context, id int) (*Vehicle, error)
	Save(ctx context.Context, v *Vehicle) (int, error)
	Delete(ctx context.Context, id int) error
}
