package testutil

import (
	"context"
	"time"

	"github.com/dealerbook/dealerbook/internal/cache"
	"github.com/dealerbook/dealerbook/internal/config"
	"github.com/dealerbook/dealerbook/internal/domain/client"
	"github.com/dealerbook/dealerbook/internal/domain/invoice"
	"github.com/dealerbook/dealerbook/internal/domain/record"
	"github.com/dealerbook/dealerbook/internal/domain/supplier"
	"github.com/dealerbook/dealerbook/internal/domain/vehicle"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/dealerbook/dealerbook/internal/repository"
	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/dealerbook/dealerbook/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing. They are backed by
// real spreadsheet files in a temporary directory.
type Stores struct {
	Records      record.Registry
	ClientRepo   client.Repository
	VehicleRepo  vehicle.Repository
	SupplierRepo supplier.Repository
	InvoiceRepo  invoice.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	stores     Stores
	store      *sheets.Store
	logger     *logger.Logger
	config     *config.Configuration
	paths      config.Paths
	now        time.Time
	authorizer invoice.Authorizer
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()
	s.logger = logger.NewNopLogger()
}

// SetupTest is called before each test. Every test gets a fresh data
// directory.
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.now = time.Date(2024, 3, 25, 12, 0, 0, 0, time.UTC)
	s.config = NewTestConfig(s.T().TempDir())
	s.paths = config.ResolvePaths(s.config)
	s.setupStores()
	s.authorizer = invoice.NewStubAuthorizerWithClock(
		s.config.Business.AuthorizationValidDays,
		func() time.Time { return s.now },
		42,
	)
}

func (s *BaseServiceTestSuite) setupStores() {
	writer := sheets.NewWriter(s.logger, sheets.WithRetry(1, time.Millisecond))
	s.store = sheets.NewStore(writer, cache.NewInMemoryCache(s.config), s.logger)

	records := repository.NewRegistry(s.paths, s.store, s.logger)
	s.stores = Stores{
		Records:      records,
		ClientRepo:   repository.NewClientRepository(records, s.logger),
		VehicleRepo:  repository.NewVehicleRepository(records, s.logger),
		SupplierRepo: repository.NewSupplierRepository(records, s.logger),
		InvoiceRepo:  repository.NewInvoiceRepository(records, s.logger),
	}
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetPaths returns the spreadsheet paths of the current test
func (s *BaseServiceTestSuite) GetPaths() config.Paths {
	return s.paths
}

// GetStores returns the repositories of the current test
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetStore returns the spreadsheet store of the current test
func (s *BaseServiceTestSuite) GetStore() *sheets.Store {
	return s.store
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the fixed clock value used by the authorizer
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

// GetAuthorizer returns a deterministic authorizer
func (s *BaseServiceTestSuite) GetAuthorizer() invoice.Authorizer {
	return s.authorizer
}
