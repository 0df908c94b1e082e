package service

import (
	"testing"

	"github.com/dealerbook/dealerbook/internal/api/dto"
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/testutil"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/stretchr/testify/suite"
)

type ClientServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ClientService
}

func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceSuite))
}

func (s *ClientServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewClientService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *ClientServiceSuite) TestSaveClient() {
	testCases := []struct {
		name        string
		request     dto.SaveClientRequest
		wantStatus  types.Status
		wantErrFunc func(error) bool
	}{
		{
			name: "default_status",
			request: dto.SaveClientRequest{
				FirstName: "Juan",
				LastName:  "Pérez",
				Email:     "juan@example.com",
			},
			wantStatus: types.StatusActive,
		},
		{
			name: "status_is_canonicalized",
			request: dto.SaveClientRequest{
				FirstName: "Ana",
				Status:    "  INACTIVO ",
			},
			wantStatus: types.StatusInactive,
		},
		{
			name: "unknown_status",
			request: dto.SaveClientRequest{
				FirstName: "Ana",
				Status:    "Borrado",
			},
			wantErrFunc: ierr.IsValidation,
		},
		{
			name: "invalid_email",
			request: dto.SaveClientRequest{
				FirstName: "Ana",
				Email:     "not-an-email",
			},
			wantErrFunc: ierr.IsValidation,
		},
		{
			name:        "missing_name",
			request:     dto.SaveClientRequest{LastName: "Gómez"},
			wantErrFunc: ierr.IsValidation,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.SaveClient(s.GetContext(), tc.request)
			if tc.wantErrFunc != nil {
				s.Error(err)
				s.True(tc.wantErrFunc(err), "unexpected error: %v", err)
				return
			}
			s.NoError(err)
			s.Positive(resp.ID)
			s.Equal(tc.wantStatus, resp.Status)
			s.Equal(tc.request.FirstName, resp.FirstName)
		})
	}
}

func (s *ClientServiceSuite) TestSaveClient_UpdateKeepsBlankFields() {
	ctx := s.GetContext()
	created, err := s.service.SaveClient(ctx, dto.SaveClientRequest{
		FirstName: "Juan",
		LastName:  "Pérez",
		Email:     "juan@example.com",
		DNI:       "30111222",
	})
	s.Require().NoError(err)

	updated, err := s.service.SaveClient(ctx, dto.SaveClientRequest{
		ID:        created.ID,
		FirstName: "Juan Carlos",
	})
	s.Require().NoError(err)

	s.Equal(created.ID, updated.ID)
	s.Equal("Juan Carlos", updated.FirstName)
	s.Equal("Pérez", updated.LastName)
	s.Equal("juan@example.com", updated.Email)
	s.Equal("30111222", updated.DNI)
	s.Equal(types.StatusActive, updated.Status)
}

func (s *ClientServiceSuite) TestListClients_FiltersAndPaginates() {
	ctx := s.GetContext()
	for _, name := range []string{"José", "Josefina", "María", "Joselo"} {
		_, err := s.service.SaveClient(ctx, dto.SaveClientRequest{FirstName: name})
		s.Require().NoError(err)
	}

	resp, err := s.service.ListClients(ctx, &types.ClientFilter{Name: "jose"}, types.PageRequest{Limit: 2})
	s.Require().NoError(err)
	s.Equal(3, resp.Pagination.Total)
	s.Require().Len(resp.Items, 2)
	s.Equal("José", resp.Items[0].FirstName)
	s.Equal("Josefina", resp.Items[1].FirstName)

	resp, err = s.service.ListClients(ctx, &types.ClientFilter{Status: string(types.StatusAll)}, types.PageRequest{Offset: 3})
	s.Require().NoError(err)
	s.Equal(4, resp.Pagination.Total)
	s.Require().Len(resp.Items, 1)
	s.Equal("Joselo", resp.Items[0].FirstName)
}

func (s *ClientServiceSuite) TestDeleteClient() {
	ctx := s.GetContext()
	first, err := s.service.SaveClient(ctx, dto.SaveClientRequest{FirstName: "Uno"})
	s.Require().NoError(err)
	second, err := s.service.SaveClient(ctx, dto.SaveClientRequest{FirstName: "Dos"})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteClient(ctx, second.ID))

	_, err = s.service.GetClient(ctx, second.ID)
	s.True(ierr.IsNotFound(err))

	err = s.service.DeleteClient(ctx, second.ID)
	s.True(ierr.IsNotFound(err))

	third, err := s.service.SaveClient(ctx, dto.SaveClientRequest{FirstName: "Tres"})
	s.Require().NoError(err)
	s.Greater(third.ID, second.ID, "deleted identifiers are not reused")
	s.Equal(first.ID+2, third.ID)
}
