package service

import (
	"testing"

	"github.com/dealerbook/dealerbook/internal/api/dto"
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/testutil"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/stretchr/testify/suite"
)

type VehicleServiceSuite struct {
	testutil.BaseServiceTestSuite
	service VehicleService
}

func TestVehicleService(t *testing.T) {
	suite.Run(t, new(VehicleServiceSuite))
}

func (s *VehicleServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewVehicleService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *VehicleServiceSuite) TestSaveVehicle_Create() {
	resp, err := s.service.SaveVehicle(s.GetContext(), dto.SaveVehicleRequest{
		Make:     "Honda",
		Model:    "Wave 110",
		Year:     intPtr(2023),
		ClientID: intPtr(7),
		Price:    1850000.5,
		Status:   "reservado",
	})
	s.Require().NoError(err)

	s.Equal(1, resp.ID)
	s.Equal("Honda", resp.Make)
	s.Require().NotNil(resp.Year)
	s.Equal(2023, *resp.Year)
	s.Require().NotNil(resp.ClientID)
	s.Equal(7, *resp.ClientID)
	s.InDelta(1850000.5, resp.Price, 1e-9)
	s.Equal(types.StatusReserved, resp.Status)
}

func (s *VehicleServiceSuite) TestSaveVehicle_Validation() {
	ctx := s.GetContext()

	_, err := s.service.SaveVehicle(ctx, dto.SaveVehicleRequest{Price: 10})
	s.True(ierr.IsValidation(err), "make or model is required")

	_, err = s.service.SaveVehicle(ctx, dto.SaveVehicleRequest{Make: "Zanella", Price: -1})
	s.True(ierr.IsValidation(err), "negative price")

	_, err = s.service.SaveVehicle(ctx, dto.SaveVehicleRequest{Make: "Zanella", Status: "Activo"})
	s.True(ierr.IsValidation(err), "party status on a vehicle")
}

func (s *VehicleServiceSuite) TestListVehicles_FilterByYearAndStatus() {
	ctx := s.GetContext()
	seed := []dto.SaveVehicleRequest{
		{Make: "Honda", Model: "Wave", Year: intPtr(2022)},
		{Make: "Honda", Model: "CB 190", Year: intPtr(2023), Status: "Vendido"},
		{Make: "Motomel", Model: "Blitz", Year: intPtr(2023)},
	}
	for _, req := range seed {
		_, err := s.service.SaveVehicle(ctx, req)
		s.Require().NoError(err)
	}

	resp, err := s.service.ListVehicles(ctx, &types.VehicleFilter{Year: "2023"}, types.PageRequest{})
	s.Require().NoError(err)
	s.Len(resp.Items, 2)

	resp, err = s.service.ListVehicles(ctx, &types.VehicleFilter{Year: "2023", Status: "Disponible"}, types.PageRequest{})
	s.Require().NoError(err)
	s.Require().Len(resp.Items, 1)
	s.Equal("Motomel", resp.Items[0].Make)

	resp, err = s.service.ListVehicles(ctx, &types.VehicleFilter{Year: "dos mil"}, types.PageRequest{})
	s.Require().NoError(err)
	s.Len(resp.Items, 3, "unreadable numeric filters are ignored")
}

func (s *VehicleServiceSuite) TestDeleteVehicle() {
	ctx := s.GetContext()
	created, err := s.service.SaveVehicle(ctx, dto.SaveVehicleRequest{Make: "Gilera"})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteVehicle(ctx, created.ID))
	s.True(ierr.IsNotFound(s.service.DeleteVehicle(ctx, created.ID)))
}
