package config

import (
	"path/filepath"
	"testing"

	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_LegacyEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APP_EXCEL_DIR", dir)
	t.Setenv("APP_PUNTO_VENTA", "7")
	t.Setenv("APP_ALICUOTA_IVA", "0.105")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Storage.Dir)
	assert.Equal(t, "0007", cfg.Business.PointOfSale)
	assert.InDelta(t, 0.105, cfg.Business.TaxRate, 1e-9)
	assert.Equal(t, DefaultDocumentTypes, cfg.Business.DocumentTypes)
	assert.Equal(t, DefaultPaymentConditions, cfg.Business.PaymentConditions)
}

func TestNewConfig_InvalidTaxRateFallsBack(t *testing.T) {
	t.Setenv("APP_ALICUOTA_IVA", "veintiuno")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.InDelta(t, DefaultTaxRate, cfg.Business.TaxRate, 1e-9)
}

func TestNewConfig_RejectsBadPointOfSale(t *testing.T) {
	t.Setenv("APP_PUNTO_VENTA", "12ab")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestGetDefaultConfig_IsValid(t *testing.T) {
	cfg := GetDefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, types.LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, DefaultPointOfSale, cfg.Business.PointOfSale)
}

func TestNormalizePointOfSale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "0001"},
		{" 12 ", "0012"},
		{"0003", "0003"},
		{"", DefaultPointOfSale},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePointOfSale(tt.in), tt.in)
	}
}

func TestResolvePaths(t *testing.T) {
	t.Run("configured directory", func(t *testing.T) {
		cfg := GetDefaultConfig()
		cfg.Storage.Dir = filepath.Join("var", "excel")
		cfg.Storage.InvoicesFile = "billing.xlsx"

		p := ResolvePaths(cfg)
		assert.Equal(t, filepath.Join("var", "excel"), p.Dir)
		assert.Equal(t, filepath.Join("var", "excel", ClientsFileName), p.Clients)
		assert.Equal(t, filepath.Join("var", "excel", VehiclesFileName), p.Vehicles)
		assert.Equal(t, filepath.Join("var", "excel", SuppliersFileName), p.Suppliers)
		assert.Equal(t, filepath.Join("var", "excel", "billing.xlsx"), p.Invoices)
	})

	t.Run("absolute per entity file", func(t *testing.T) {
		abs := filepath.Join(t.TempDir(), "clients.xlsx")
		cfg := GetDefaultConfig()
		cfg.Storage.Dir = t.TempDir()
		cfg.Storage.ClientsFile = abs

		assert.Equal(t, abs, ResolvePaths(cfg).Clients)
	})

	t.Run("nil configuration falls back", func(t *testing.T) {
		p := ResolvePaths(nil)
		assert.Equal(t, FallbackDir(), p.Dir)
		assert.Equal(t, filepath.Join(FallbackDir(), InvoicesFileName), p.Invoices)
	})

	t.Run("lookup by kind", func(t *testing.T) {
		p := ResolvePaths(nil)
		for kind, path := range p.All() {
			assert.Equal(t, path, p.For(kind))
			assert.NotEmpty(t, path)
		}
		assert.Empty(t, p.For(types.EntityKind("nope")))
	})
}
