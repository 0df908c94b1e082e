package invoice

import (
	"context"

	"github.com/dealerbook/dealerbook/internal/types"
)

// Repository defines the interface for invoice persistence operations.
// Invoices are append only: there is no update nor delete.
type Repository interface {
	// List retrieves invoices matching the filter, in file order
	List(ctx context.Context, filter types.RecordFilter) ([]*Invoice, error)

	// GetByNumber retrieves an invoice by its PPPP-NNNNNNNN number
	GetByNumber(ctx context.Context, number string) (*Invoice, error)

	// Numbers returns every stored invoice number, parseable or not
	Numbers(ctx context.Context) ([]string, error)

	// Append stores a new invoice at the end of the record set
	Append(ctx context.Context, inv *Invoice) error
}
