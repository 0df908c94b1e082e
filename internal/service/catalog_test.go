package service

import (
	"testing"

	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/dealerbook/dealerbook/internal/testutil"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CatalogService
}

func TestCatalogService(t *testing.T) {
	suite.Run(t, new(CatalogServiceSuite))
}

func (s *CatalogServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewCatalogService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *CatalogServiceSuite) TestUpsertAndGetByID() {
	ctx := s.GetContext()

	id, err := s.service.Upsert(ctx, types.EntityKindClient, sheets.Row{"nombre": " Ana ", "estado": "activo"})
	s.Require().NoError(err)
	s.Equal(1, id)

	row, found, err := s.service.GetByID(ctx, types.EntityKindClient, id)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal("Ana", row["nombre"])
	s.Equal("1", row["cliente_id"])
	s.Equal("Activo", row["estado"])

	_, found, err = s.service.GetByID(ctx, types.EntityKindClient, 42)
	s.NoError(err)
	s.False(found)
}

func (s *CatalogServiceSuite) TestUpsert_ExplicitUnknownIDIsInserted() {
	ctx := s.GetContext()

	id, err := s.service.Upsert(ctx, types.EntityKindSupplier, sheets.Row{"id": "10", "nombre": "Lubricentro"})
	s.Require().NoError(err)
	s.Equal(10, id)

	id, err = s.service.Upsert(ctx, types.EntityKindSupplier, sheets.Row{"nombre": "Gomería"})
	s.Require().NoError(err)
	s.Equal(11, id)
}

func (s *CatalogServiceSuite) TestUpsert_Validation() {
	ctx := s.GetContext()

	_, err := s.service.Upsert(ctx, types.EntityKindVehicle, sheets.Row{"marca": "Honda", "precio": "-5"})
	s.True(ierr.IsValidation(err))

	_, err = s.service.Upsert(ctx, types.EntityKindClient, sheets.Row{"nombre": "Ana", "email": "ana@"})
	s.True(ierr.IsValidation(err))

	_, err = s.service.Upsert(ctx, types.EntityKind("dealers"), sheets.Row{"nombre": "Ana"})
	s.True(ierr.IsValidation(err))
}

func (s *CatalogServiceSuite) TestInvoicesAreAppendOnly() {
	ctx := s.GetContext()

	s.Require().NoError(s.service.Append(ctx, types.EntityKindInvoice, sheets.Row{
		"numero":  "0001-00000001",
		"cliente": "Juan",
		"total":   "1.210,50",
	}))

	rows, err := s.service.Load(ctx, types.EntityKindInvoice, nil)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("1210.5", rows[0]["total"])

	_, err = s.service.Upsert(ctx, types.EntityKindInvoice, sheets.Row{"numero": "0001-00000002"})
	s.True(ierr.IsInvalidOperation(err))

	_, _, err = s.service.GetByID(ctx, types.EntityKindInvoice, 1)
	s.True(ierr.IsInvalidOperation(err))

	_, err = s.service.Delete(ctx, types.EntityKindInvoice, 1)
	s.True(ierr.IsInvalidOperation(err))

	next, err := s.service.NextInvoiceNumber(ctx, "")
	s.Require().NoError(err)
	s.Equal("0001-00000002", next)
}

func (s *CatalogServiceSuite) TestDelete() {
	ctx := s.GetContext()
	id, err := s.service.Upsert(ctx, types.EntityKindVehicle, sheets.Row{"marca": "Zanella"})
	s.Require().NoError(err)

	removed, err := s.service.Delete(ctx, types.EntityKindVehicle, id)
	s.Require().NoError(err)
	s.True(removed)

	removed, err = s.service.Delete(ctx, types.EntityKindVehicle, id)
	s.Require().NoError(err)
	s.False(removed)
}

func (s *CatalogServiceSuite) TestLoad_Filters() {
	ctx := s.GetContext()
	for _, row := range []sheets.Row{
		{"marca": "Honda", "estado": "Vendido"},
		{"marca": "Honda"},
		{"marca": "Motomel"},
	} {
		_, err := s.service.Upsert(ctx, types.EntityKindVehicle, row)
		s.Require().NoError(err)
	}

	rows, err := s.service.Load(ctx, types.EntityKindVehicle, map[string]string{"marca": "honda", "estado": "Todos"})
	s.Require().NoError(err)
	s.Len(rows, 2)

	rows, err = s.service.Load(ctx, types.EntityKindVehicle, map[string]string{"estado": "disponible"})
	s.Require().NoError(err)
	s.Len(rows, 2)
}
