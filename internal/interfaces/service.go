package interfaces

import (
	"context"

	"github.com/dealerbook/dealerbook/internal/api/dto"
	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/dealerbook/dealerbook/internal/types"
)

// CatalogService gives untyped, column keyed access to every record set
type CatalogService interface {
	Load(ctx context.Context, kind types.EntityKind, filters map[string]string) ([]sheets.Row, error)
	GetByID(ctx context.Context, kind types.EntityKind, id int) (sheets.Row, bool, error)
	Upsert(ctx context.Context, kind types.EntityKind, partial sheets.Row) (int, error)
	Append(ctx context.Context, kind types.EntityKind, row sheets.Row) error
	Delete(ctx context.Context, kind types.EntityKind, id int) (bool, error)
	NextInvoiceNumber(ctx context.Context, pointOfSale string) (string, error)
}

// ClientService defines the interface for client operations
type ClientService interface {
	ListClients(ctx context.Context, filter *types.ClientFilter, page types.PageRequest) (*dto.ListClientsResponse, error)
	GetClient(ctx context.Context, id int) (*dto.ClientResponse, error)
	SaveClient(ctx context.Context, req dto.SaveClientRequest) (*dto.ClientResponse, error)
	DeleteClient(ctx context.Context, id int) error
}

// VehicleService defines the interface for vehicle operations
type VehicleService interface {
	ListVehicles(ctx context.Context, filter *types.VehicleFilter, page types.PageRequest) (*dto.ListVehiclesResponse, error)
	GetVehicle(ctx context.Context, id int) (*dto.VehicleResponse, error)
	SaveVehicle(ctx context.Context, req dto.SaveVehicleRequest) (*dto.VehicleResponse, error)
	DeleteVehicle(ctx context.Context, id int) error
}

// SupplierService defines the interface for supplier operations
type SupplierService interface {
	ListSuppliers(ctx context.Context, filter *types.SupplierFilter, page types.PageRequest) (*dto.ListSuppliersResponse, error)
	GetSupplier(ctx context.Context, id int) (*dto.SupplierResponse, error)
	SaveSupplier(ctx context.Context, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error)
	DeleteSupplier(ctx context.Context, id int) error
}

// InvoiceService defines the interface for invoice operations
type InvoiceService interface {
	ListInvoices(ctx context.Context, filter *types.InvoiceFilter, page types.PageRequest) (*dto.ListInvoicesResponse, error)
	GetInvoiceByNumber(ctx context.Context, number string) (*dto.InvoiceResponse, error)
	NextInvoiceNumber(ctx context.Context, pointOfSale string) (string, error)
	IssueInvoice(ctx context.Context, req dto.IssueInvoiceRequest) (*dto.InvoiceResponse, error)
}

// ProvisioningService creates missing record set files
type ProvisioningService interface {
	Provision(ctx context.Context) ([]types.EntityKind, error)
}

// BackupService copies the record set files to and from the backup target
type BackupService interface {
	Snapshot(ctx context.Context) (*dto.BackupResponse, error)
	Restore(ctx context.Context, id string) (*dto.RestoreBackupResponse, error)
}
