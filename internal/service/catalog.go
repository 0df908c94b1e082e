package service

import (
	"context"

	"github.com/dealerbook/dealerbook/internal/domain/record"
	"github.com/dealerbook/dealerbook/internal/domain/vehicle"
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/interfaces"
	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/dealerbook/dealerbook/internal/types"
)

type CatalogService = interfaces.CatalogService

type catalogService struct {
	ServiceParams
}

// NewCatalogService returns the column keyed entry point used by screens
// that work on raw rows.
func NewCatalogService(params ServiceParams) CatalogService {
	return &catalogService{
		ServiceParams: params,
	}
}

func (s *catalogService) Load(ctx context.Context, kind types.EntityKind, filters map[string]string) ([]sheets.Row, error) {
	repo, err := s.Records.Get(kind)
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, types.MapFilter(filters).Values())
}

// GetByID returns the row with the given identifier. The boolean is false
// when no row matched.
func (s *catalogService) GetByID(ctx context.Context, kind types.EntityKind, id int) (sheets.Row, bool, error) {
	repo, err := s.mutableRecordSet(kind, "get by id")
	if err != nil {
		return nil, false, err
	}

	row, err := repo.Get(ctx, id)
	if ierr.IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row, true, nil
}

func (s *catalogService) Upsert(ctx context.Context, kind types.EntityKind, partial sheets.Row) (int, error) {
	repo, err := s.mutableRecordSet(kind, "upsert")
	if err != nil {
		return 0, err
	}
	if err := validatePartial(kind, partial); err != nil {
		return 0, err
	}
	return repo.Upsert(ctx, partial)
}

func (s *catalogService) Append(ctx context.Context, kind types.EntityKind, row sheets.Row) error {
	repo, err := s.Records.Get(kind)
	if err != nil {
		return err
	}
	return repo.Append(ctx, row)
}

// Delete removes the row with the given identifier and reports whether a
// row was removed.
func (s *catalogService) Delete(ctx context.Context, kind types.EntityKind, id int) (bool, error) {
	repo, err := s.mutableRecordSet(kind, "delete")
	if err != nil {
		return false, err
	}

	err = repo.Delete(ctx, id)
	if ierr.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *catalogService) NextInvoiceNumber(ctx context.Context, pointOfSale string) (string, error) {
	return nextInvoiceNumber(ctx, s.InvoiceRepo, pointOfSale, s.Config.Business.PointOfSale)
}

func (s *catalogService) mutableRecordSet(kind types.EntityKind, op string) (record.Repository, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if kind.IsAppendOnly() {
		return nil, ierr.NewErrorf("%s is not supported for %s", op, kind).
			WithHint("Invoices can only be issued, never changed or removed").
			WithReportableDetails(map[string]any{
				"kind":      kind,
				"operation": op,
			}).
			Mark(ierr.ErrInvalidOperation)
	}
	return s.Records.Get(kind)
}

// validatePartial applies the field checks of the typed services to the
// cells present in a raw partial record.
func validatePartial(kind types.EntityKind, partial sheets.Row) error {
	if email := partial.Get("email"); !sheets.IsBlank(email) && !types.IsValidEmail(email) {
		return ierr.NewError("invalid email").
			WithHint("Please provide a valid email address").
			WithReportableDetails(map[string]any{"email": email}).
			Mark(ierr.ErrValidation)
	}
	if kind == types.EntityKindVehicle {
		price := partial.Get(vehicle.ColumnPrice)
		if v, ok := sheets.ParseFloat(price); ok && v < 0 {
			return ierr.NewError("price cannot be negative").
				WithHint("Please provide a price of zero or more").
				WithReportableDetails(map[string]any{"precio": price}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}
