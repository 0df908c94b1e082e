package record

import (
	"context"

	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/dealerbook/dealerbook/internal/types"
)

// Repository gives row level access to one record set. Every call loads the
// backing file and every mutation rewrites it as a whole.
type Repository interface {
	Kind() types.EntityKind
	Path() string
	Schema() sheets.Schema

	// Table returns the whole normalized record set
	Table(ctx context.Context) (*sheets.Table, error)

	// List returns the rows matching values, keyed by column name
	List(ctx context.Context, values map[string]string) ([]sheets.Row, error)

	// Get returns the row with the given identifier or an ErrNotFound error
	Get(ctx context.Context, id int) (sheets.Row, error)

	// Upsert inserts or updates a row and returns its identifier
	Upsert(ctx context.Context, partial sheets.Row) (int, error)

	// Append adds a row to a record set without identifiers
	Append(ctx context.Context, row sheets.Row) error

	// Delete removes the row with the given identifier
	Delete(ctx context.Context, id int) error

	// Provision creates the backing file when it does not exist yet
	Provision(ctx context.Context) (bool, error)
}

// Registry holds the record set repository of every entity kind
type Registry map[types.EntityKind]Repository

// Get returns the repository for kind
func (r Registry) Get(kind types.EntityKind) (Repository, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	repo, ok := r[kind]
	if !ok {
		return nil, ierr.NewError("record set not configured").
			WithHintf("No storage is configured for %s", kind).
			Mark(ierr.ErrSystem)
	}
	return repo, nil
}
