package api

import (
	v1 "github.com/dealerbook/dealerbook/internal/api/v1"
	"github.com/dealerbook/dealerbook/internal/config"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/dealerbook/dealerbook/internal/rest/middleware"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Record   *v1.RecordHandler
	Client   *v1.ClientHandler
	Vehicle  *v1.VehicleHandler
	Supplier *v1.SupplierHandler
	Invoice  *v1.InvoiceHandler
	Backup   *v1.BackupHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	if cfg.Logging.Level != types.LogLevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.RequestLogger(logger),
		middleware.ErrorHandler(logger),
	)

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	records := router.Group("/records/:kind")
	{
		records.GET("", handlers.Record.ListRecords)
		records.POST("", handlers.Record.UpsertRecord)
		records.POST("/rows", handlers.Record.AppendRecord)
		records.GET("/:id", handlers.Record.GetRecord)
		records.DELETE("/:id", handlers.Record.DeleteRecord)
	}

	clients := router.Group("/clients")
	{
		clients.POST("", handlers.Client.CreateClient)
		clients.GET("", handlers.Client.ListClients)
		clients.GET("/:id", handlers.Client.GetClient)
		clients.PUT("/:id", handlers.Client.UpdateClient)
		clients.DELETE("/:id", handlers.Client.DeleteClient)
	}

	vehicles := router.Group("/vehicles")
	{
		vehicles.POST("", handlers.Vehicle.CreateVehicle)
		vehicles.GET("", handlers.Vehicle.ListVehicles)
		vehicles.GET("/:id", handlers.Vehicle.GetVehicle)
		vehicles.PUT("/:id", handlers.Vehicle.UpdateVehicle)
		vehicles.DELETE("/:id", handlers.Vehicle.DeleteVehicle)
	}

	suppliers := router.Group("/suppliers")
	{
		suppliers.POST("", handlers.Supplier.CreateSupplier)
		suppliers.GET("", handlers.Supplier.ListSuppliers)
		suppliers.GET("/:id", handlers.Supplier.GetSupplier)
		suppliers.PUT("/:id", handlers.Supplier.UpdateSupplier)
		suppliers.DELETE("/:id", handlers.Supplier.DeleteSupplier)
	}

	invoices := router.Group("/invoices")
	{
		invoices.POST("", handlers.Invoice.IssueInvoice)
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/next-number", handlers.Invoice.NextInvoiceNumber)
		invoices.GET("/:number", handlers.Invoice.GetInvoice)
	}

	backups := router.Group("/backups")
	{
		backups.POST("", handlers.Backup.CreateBackup)
		backups.POST("/:id/restore", handlers.Backup.RestoreBackup)
	}
}
