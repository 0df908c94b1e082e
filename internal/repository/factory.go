package repository

import (
	"github.com/dealerbook/dealerbook/internal/config"
	"github.com/dealerbook/dealerbook/internal/domain/client"
	"github.com/dealerbook/dealerbook/internal/domain/invoice"
	"github.com/dealerbook/dealerbook/internal/domain/record"
	"github.com/dealerbook/dealerbook/internal/domain/supplier"
	"github.com/dealerbook/dealerbook/internal/domain/vehicle"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/dealerbook/dealerbook/internal/repository/xlsx"
	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/dealerbook/dealerbook/internal/types"
)

// SchemaFor returns the canonical schema of kind
func SchemaFor(kind types.EntityKind) (sheets.Schema, error) {
	if err := kind.Validate(); err != nil {
		return sheets.Schema{}, err
	}
	switch kind {
	case types.EntityKindClient:
		return client.Schema, nil
	case types.EntityKindVehicle:
		return vehicle.Schema, nil
	case types.EntityKindSupplier:
		return supplier.Schema, nil
	default:
		return invoice.Schema, nil
	}
}

// NewRegistry builds the record set repository of every entity kind from the
// resolved file paths.
func NewRegistry(paths config.Paths, store *sheets.Store, logger *logger.Logger) record.Registry {
	registry := make(record.Registry, len(types.EntityKinds))
	for _, kind := range types.EntityKinds {
		schema, _ := SchemaFor(kind)
		registry[kind] = xlsx.NewRecordSetRepository(kind, paths.For(kind), schema, store, logger)
	}
	return registry
}

func NewClientRepository(registry record.Registry, logger *logger.Logger) client.Repository {
	return xlsx.NewClientRepository(registry[types.EntityKindClient], logger)
}

func NewVehicleRepository(registry record.Registry, logger *logger.Logger) vehicle.Repository {
	return xlsx.NewVehicleRepository(registry[types.EntityKindVehicle], logger)
}

func NewSupplierRepository(registry record.Registry, logger *logger.Logger) supplier.Repository {
	return xlsx.NewSupplierRepository(registry[types.EntityKindSupplier], logger)
}

func NewInvoiceRepository(registry record.Registry, logger *logger.Logger) invoice.Repository {
	return xlsx.NewInvoiceRepository(registry[types.EntityKindInvoice], logger)
}
