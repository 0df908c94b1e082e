package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dealerbook/dealerbook/internal/types"
)

const (
	ClientsFileName   = "clientes.xlsx"
	VehiclesFileName  = "vehiculos.xlsx"
	SuppliersFileName = "proveedores.xlsx"
	InvoicesFileName  = "facturas.xlsx"

	fallbackSubdir = "data/excel"
)

// Paths holds the on-disk location of every entity spreadsheet
type Paths struct {
	Dir       string
	Clients   string
	Vehicles  string
	Suppliers string
	Invoices  string
}

// ResolvePaths computes the spreadsheet locations from cfg. It performs no
// I/O and never fails: without a usable storage directory it falls back to
// data/excel next to the running executable.
func ResolvePaths(cfg *Configuration) Paths {
	var storage StorageConfig
	if cfg != nil {
		storage = cfg.Storage
	}

	dir := strings.TrimSpace(storage.Dir)
	if dir == "" {
		dir = FallbackDir()
	}

	return Paths{
		Dir:       dir,
		Clients:   fileOrDefault(storage.ClientsFile, dir, ClientsFileName),
		Vehicles:  fileOrDefault(storage.VehiclesFile, dir, VehiclesFileName),
		Suppliers: fileOrDefault(storage.SuppliersFile, dir, SuppliersFileName),
		Invoices:  fileOrDefault(storage.InvoicesFile, dir, InvoicesFileName),
	}
}

// FallbackDir is the storage directory used when configuration does not name one
func FallbackDir() string {
	exe, err := os.Executable()
	if err != nil || exe == "" {
		return filepath.FromSlash(fallbackSubdir)
	}
	return filepath.Join(filepath.Dir(exe), filepath.FromSlash(fallbackSubdir))
}

// For returns the spreadsheet path of an entity kind, or "" for an unknown kind
func (p Paths) For(kind types.EntityKind) string {
	switch kind {
	case types.EntityKindClient:
		return p.Clients
	case types.EntityKindVehicle:
		return p.Vehicles
	case types.EntityKindSupplier:
		return p.Suppliers
	case types.EntityKindInvoice:
		return p.Invoices
	}
	return ""
}

// All returns the path of every entity kind in provisioning order
func (p Paths) All() map[types.EntityKind]string {
	out := make(map[types.EntityKind]string, len(types.EntityKinds))
	for _, kind := range types.EntityKinds {
		out[kind] = p.For(kind)
	}
	return out
}

func fileOrDefault(file, dir, name string) string {
	file = strings.TrimSpace(file)
	if file == "" {
		return filepath.Join(dir, name)
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}
