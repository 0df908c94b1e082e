package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Storage  StorageConfig  `validate:"required"`
	Business BusinessConfig `validate:"required"`
	Logging  LoggingConfig  `validate:"required"`
	Server   ServerConfig
	Backup   BackupConfig
}

// StorageConfig locates the spreadsheet files. Per-entity files override
// the default file names inside Dir.
type StorageConfig struct {
	Dir           string        `mapstructure:"dir"`
	ClientsFile   string        `mapstructure:"clients_file"`
	VehiclesFile  string        `mapstructure:"vehicles_file"`
	SuppliersFile string        `mapstructure:"suppliers_file"`
	InvoicesFile  string        `mapstructure:"invoices_file"`
	CacheEnabled  bool          `mapstructure:"cache_enabled"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
}

// BusinessConfig holds the parameters used when issuing invoices
type BusinessConfig struct {
	PointOfSale            string   `mapstructure:"point_of_sale" validate:"required,len=4,numeric"`
	TaxRate                float64  `mapstructure:"-" validate:"gte=0,lte=1"`
	DocumentTypes          []string `mapstructure:"document_types" validate:"required,min=1"`
	PaymentConditions      []string `mapstructure:"payment_conditions" validate:"required,min=1"`
	AuthorizationValidDays int      `mapstructure:"authorization_valid_days" validate:"gte=1"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required"`
}

type ServerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address" validate:"required_if=Enabled true"`
}

type BackupConfig struct {
	Enabled  bool                 `mapstructure:"enabled"`
	Provider types.BackupProvider `mapstructure:"provider" validate:"omitempty,oneof=local s3"`
	Dir      string               `mapstructure:"dir"`
	Bucket   string               `mapstructure:"bucket"`
	Region   string               `mapstructure:"region"`
	Prefix   string               `mapstructure:"prefix"`
	// Endpoint overrides the S3 endpoint for S3 compatible servers
	Endpoint string               `mapstructure:"endpoint" validate:"omitempty,url"`
}

const (
	DefaultPointOfSale            = "0001"
	DefaultTaxRate                = 0.21
	DefaultAuthorizationValidDays = 10
)

var (
	DefaultDocumentTypes = []string{
		"Factura A",
		"Factura B",
		"Factura C",
		"Nota de Crédito A",
		"Nota de Crédito B",
		"Nota de Crédito C",
	}
	DefaultPaymentConditions = []string{
		"Contado",
		"Transferencia",
		"Financiado",
	}
)

func NewConfig() (*Configuration, error) {
	// A missing .env file is fine, the environment may already be set
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	// Variables kept from the desktop release
	_ = v.BindEnv("storage.dir", "APP_STORAGE_DIR", "APP_EXCEL_DIR")
	_ = v.BindEnv("business.point_of_sale", "APP_BUSINESS_POINT_OF_SALE", "APP_PUNTO_VENTA")
	_ = v.BindEnv("business.tax_rate", "APP_BUSINESS_TAX_RATE", "APP_ALICUOTA_IVA")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// The tax rate comes from a free text env var in older installs
	config.Business.TaxRate = parseTaxRate(v.GetString("business.tax_rate"))
	config.Business.PointOfSale = NormalizePointOfSale(config.Business.PointOfSale)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.cache_enabled", true)
	v.SetDefault("storage.cache_ttl", 5*time.Minute)
	v.SetDefault("business.point_of_sale", DefaultPointOfSale)
	v.SetDefault("business.tax_rate", DefaultTaxRate)
	v.SetDefault("business.document_types", DefaultDocumentTypes)
	v.SetDefault("business.payment_conditions", DefaultPaymentConditions)
	v.SetDefault("business.authorization_valid_days", DefaultAuthorizationValidDays)
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("server.address", "127.0.0.1:8080")
	v.SetDefault("backup.provider", string(types.BackupProviderLocal))
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns the configuration used when no config source is usable
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Storage: StorageConfig{
			CacheEnabled: true,
			CacheTTL:     5 * time.Minute,
		},
		Business: BusinessConfig{
			PointOfSale:            DefaultPointOfSale,
			TaxRate:                DefaultTaxRate,
			DocumentTypes:          append([]string(nil), DefaultDocumentTypes...),
			PaymentConditions:      append([]string(nil), DefaultPaymentConditions...),
			AuthorizationValidDays: DefaultAuthorizationValidDays,
		},
		Logging: LoggingConfig{Level: types.LogLevelInfo},
		Server:  ServerConfig{Address: "127.0.0.1:8080"},
		Backup:  BackupConfig{Provider: types.BackupProviderLocal},
	}
}

// NormalizePointOfSale left pads a point of sale code to 4 digits
func NormalizePointOfSale(pos string) string {
	pos = strings.TrimSpace(pos)
	if pos == "" {
		return DefaultPointOfSale
	}
	if len(pos) < 4 {
		pos = strings.Repeat("0", 4-len(pos)) + pos
	}
	return pos
}

func parseTaxRate(raw string) float64 {
	rate, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return DefaultTaxRate
	}
	return rate
}
