package supplier

import (
	"context"

	"github.com/dealerbook/dealerbook/internal/types"
)

// Repository defines the interface for supplier data access
type Repository interface {
	List(ctx context.Context, filter types.RecordFilter) ([]*Supplier, error)
	Get(ctx context.Context, id int) (*Supplier, error)
	Save(ctx context.Context, s *Supplier) (int, error)
	Delete(ctx context.Context, id int) error
}
