package service

import (
	"github.com/dealerbook/dealerbook/internal/backup"
	"github.com/dealerbook/dealerbook/internal/config"
	"github.com/dealerbook/dealerbook/internal/domain/client"
	"github.com/dealerbook/dealerbook/internal/domain/invoice"
	"github.com/dealerbook/dealerbook/internal/domain/record"
	"github.com/dealerbook/dealerbook/internal/domain/supplier"
	"github.com/dealerbook/dealerbook/internal/domain/vehicle"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/dealerbook/dealerbook/internal/sheets"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Store  *sheets.Store

	// Repositories
	Records      record.Registry
	ClientRepo   client.Repository
	VehicleRepo  vehicle.Repository
	SupplierRepo supplier.Repository
	InvoiceRepo  invoice.Repository

	// Invoice authorization
	Authorizer invoice.Authorizer

	// Backup target, nil when backups are disabled
	BackupTarget backup.Target
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	store *sheets.Store,
	records record.Registry,
	clientRepo client.Repository,
	vehicleRepo vehicle.Repository,
	supplierRepo supplier.Repository,
	invoiceRepo invoice.Repository,
	authorizer invoice.Authorizer,
	backupTarget backup.Target,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		Store:        store,
		Records:      records,
		ClientRepo:   clientRepo,
		VehicleRepo:  vehicleRepo,
		SupplierRepo: supplierRepo,
		InvoiceRepo:  invoiceRepo,
		Authorizer:   authorizer,
		BackupTarget: backupTarget,
	}
}
