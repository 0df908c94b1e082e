package xlsx

import (
	"context"

	"github.com/dealerbook/dealerbook/internal/domain/record"
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/dealerbook/dealerbook/internal/types"
)

type recordSetRepository struct {
	kind   types.EntityKind
	path   string
	schema sheets.Schema
	store  *sheets.Store
	log    *logger.Logger
}

// NewRecordSetRepository returns a repository for the record set of kind
// stored at path.
func NewRecordSetRepository(
	kind types.EntityKind,
	path string,
	schema sheets.Schema,
	store *sheets.Store,
	log *logger.Logger,
) record.Repository {
	return &recordSetRepository{
		kind:   kind,
		path:   path,
		schema: schema,
		store:  store,
		log:    log.With("kind", string(kind)),
	}
}

func (r *recordSetRepository) Kind() types.EntityKind {
	return r.kind
}

func (r *recordSetRepository) Path() string {
	return r.path
}

func (r *recordSetRepository) Schema() sheets.Schema {
	return r.schema
}

func (r *recordSetRepository) Table(ctx context.Context) (*sheets.Table, error) {
	return r.store.Load(ctx, r.path, r.schema)
}

func (r *recordSetRepository) List(ctx context.Context, values map[string]string) ([]sheets.Row, error) {
	t, err := r.Table(ctx)
	if err != nil {
		return nil, err
	}

	r.log.Debugw("listing records", "filters", values, "total", t.Len())
	return sheets.FilterBy(t, r.schema, values).Rows, nil
}

func (r *recordSetRepository) Get(ctx context.Context, id int) (sheets.Row, error) {
	if err := r.requireIdentity("get"); err != nil {
		return nil, err
	}
	t, err := r.Table(ctx)
	if err != nil {
		return nil, err
	}

	idx := sheets.FindByID(t, r.schema, id)
	if idx < 0 {
		return nil, r.notFound(id)
	}
	return t.Rows[idx], nil
}

func (r *recordSetRepository) Upsert(ctx context.Context, partial sheets.Row) (int, error) {
	if err := r.requireIdentity("upsert"); err != nil {
		return 0, err
	}
	t, err := r.Table(ctx)
	if err != nil {
		return 0, err
	}

	updated, id := sheets.Upsert(t, r.schema, partial)
	if err := r.store.Save(ctx, r.path, updated, r.schema); err != nil {
		return 0, err
	}

	r.log.Infow("record saved", "id", id, "inserted", updated.Len() > t.Len())
	return id, nil
}

func (r *recordSetRepository) Append(ctx context.Context, row sheets.Row) error {
	if r.schema.HasIdentity() {
		return ierr.NewError("append is only supported for record sets without identifiers").
			WithHint("Use upsert to add this record").
			WithReportableDetails(map[string]any{"kind": r.kind}).
			Mark(ierr.ErrInvalidOperation)
	}
	t, err := r.Table(ctx)
	if err != nil {
		return err
	}

	updated := sheets.Append(t, r.schema, row)
	if err := r.store.Save(ctx, r.path, updated, r.schema); err != nil {
		return err
	}

	r.log.Infow("record appended", "total", updated.Len())
	return nil
}

func (r *recordSetRepository) Delete(ctx context.Context, id int) error {
	if err := r.requireIdentity("delete"); err != nil {
		return err
	}
	t, err := r.Table(ctx)
	if err != nil {
		return err
	}

	updated, ok := sheets.Remove(t, r.schema, id)
	if !ok {
		return r.notFound(id)
	}
	if err := r.store.Save(ctx, r.path, updated, r.schema); err != nil {
		return err
	}

	r.log.Infow("record deleted", "id", id)
	return nil
}

func (r *recordSetRepository) Provision(ctx context.Context) (bool, error) {
	return r.store.Provision(ctx, r.path, r.schema)
}

func (r *recordSetRepository) requireIdentity(op string) error {
	if r.schema.HasIdentity() {
		return nil
	}
	return ierr.NewErrorf("%s is not supported for %s", op, r.kind).
		WithHint("These records can only be appended").
		WithReportableDetails(map[string]any{
			"kind":      r.kind,
			"operation": op,
		}).
		Mark(ierr.ErrInvalidOperation)
}

func (r *recordSetRepository) notFound(id int) error {
	return ierr.NewErrorf("record %d not found", id).
		WithHintf("No %s record has this identifier", r.kind).
		WithReportableDetails(map[string]any{
			"kind": r.kind,
			"id":   id,
		}).
		Mark(ierr.ErrNotFound)
}
