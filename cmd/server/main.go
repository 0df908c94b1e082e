package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dealerbook/dealerbook/internal/api"
	v1 "github.com/dealerbook/dealerbook/internal/api/v1"
	"github.com/dealerbook/dealerbook/internal/backup"
	"github.com/dealerbook/dealerbook/internal/cache"
	"github.com/dealerbook/dealerbook/internal/config"
	"github.com/dealerbook/dealerbook/internal/domain/invoice"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/dealerbook/dealerbook/internal/repository"
	"github.com/dealerbook/dealerbook/internal/service"
	"github.com/dealerbook/dealerbook/internal/sheets"
	"github.com/dealerbook/dealerbook/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func main() {
	// Initialize Fx application
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			provideConfig,
			config.ResolvePaths,

			// Logger
			logger.NewLogger,

			// Cache
			cache.Initialize,

			// Spreadsheet storage
			provideWriter,
			sheets.NewStore,

			// Repositories
			repository.NewRegistry,
			repository.NewClientRepository,
			repository.NewVehicleRepository,
			repository.NewSupplierRepository,
			repository.NewInvoiceRepository,

			// Invoice authorization
			provideAuthorizer,

			// Backups
			backup.NewTarget,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewCatalogService,
			service.NewClientService,
			service.NewVehicleService,
			service.NewSupplierService,
			service.NewInvoiceService,
			service.NewProvisioningService,
			service.NewBackupService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			provisionRecordSets,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

// provideConfig falls back to the defaults when the configuration cannot be
// loaded so the application still starts with its data next to the binary
func provideConfig() *config.Configuration {
	cfg, err := config.NewConfig()
	if err == nil {
		return cfg
	}

	if log, logErr := logger.NewLogger(nil); logErr == nil {
		log.Warnw("configuration unavailable, using defaults", "error", err)
	}
	return config.GetDefaultConfig()
}

func provideWriter(log *logger.Logger) *sheets.Writer {
	return sheets.NewWriter(log)
}

func provideAuthorizer(cfg *config.Configuration) invoice.Authorizer {
	return invoice.NewStubAuthorizer(cfg.Business.AuthorizationValidDays)
}

func provideHandlers(
	cfg *config.Configuration,
	logger *logger.Logger,
	catalogService service.CatalogService,
	clientService service.ClientService,
	vehicleService service.VehicleService,
	supplierService service.SupplierService,
	invoiceService service.InvoiceService,
	backupService service.BackupService,
) api.Handlers {
	return api.Handlers{
		Health:   v1.NewHealthHandler(logger),
		Record:   v1.NewRecordHandler(catalogService, logger),
		Client:   v1.NewClientHandler(clientService, logger),
		Vehicle:  v1.NewVehicleHandler(vehicleService, logger),
		Supplier: v1.NewSupplierHandler(supplierService, logger),
		Invoice:  v1.NewInvoiceHandler(invoiceService, cfg, logger),
		Backup:   v1.NewBackupHandler(backupService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger)
}

// provisionRecordSets creates the missing spreadsheet files before anything
// else touches them
func provisionRecordSets(
	lc fx.Lifecycle,
	provisioning service.ProvisioningService,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			created, err := provisioning.Provision(ctx)
			if err != nil {
				return err
			}
			log.Infow("record sets ready", "created", created)
			return nil
		},
	})
}

func startServer(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	if !cfg.Server.Enabled {
		log.Info("API server disabled, exiting after provisioning")
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return shutdowner.Shutdown()
			},
		})
		return
	}

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return srv.Shutdown(ctx)
		},
	})
}
