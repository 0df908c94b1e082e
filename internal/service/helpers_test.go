package service

import (
	"github.com/dealerbook/dealerbook/internal/testutil"
)

// newTestParams wires the stores of the running suite into ServiceParams
func newTestParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return NewServiceParams(
		s.GetLogger(),
		s.GetConfig(),
		s.GetStore(),
		stores.Records,
		stores.ClientRepo,
		stores.VehicleRepo,
		stores.SupplierRepo,
		stores.InvoiceRepo,
		s.GetAuthorizer(),
		nil,
	)
}

func intPtr(n int) *int {
	return &n
}
