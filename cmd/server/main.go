package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/frotadocs/frotadocs-backend/config"
	"github.com/frotadocs/frotadocs-backend/internal/app/controller"
	"github.com/frotadocs/frotadocs-backend/internal/app/repository"
	"github.com/frotadocs/frotadocs-backend/internal/app/service"
	"github.com/frotadocs/frotadocs-backend/internal/db"
	"github.com/frotadocs/frotadocs-backend/internal/router"
	"github.com/frotadocs/frotadocs-backend/internal/scheduler"
	"github.com/frotadocs/frotadocs-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting FROTADOCS Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db.GetDB())
	driverRepo := repository.NewDriverRepository(db.GetDB())
	vehicleRepo := repository.NewVehicleRepository(db.GetDB())
	documentRepo := repository.NewDocumentRepository(db.GetDB())
	alertConfigRepo := repository.NewAlertConfigRepository(db.GetDB())

	// Initialize services
	companyService := service.NewCompanyService(companyRepo)
	driverService := service.NewDriverService(driverRepo, companyRepo)
	vehicleService := service.NewVehicleService(vehicleRepo, companyRepo)
	ingestService := service.NewIngestService(db.GetDB())
	alertService := service.NewAlertService(documentRepo, alertConfigRepo)
	configService := service.NewConfigService(documentRepo, alertConfigRepo)

	// Initialize controllers
	companyController := controller.NewCompanyController(companyService)
	driverController := controller.NewDriverController(driverService)
	vehicleController := controller.NewVehicleController(vehicleService)
	uploadController := controller.NewUploadController(ingestService, cfg.Alert.MaxUploadBytes)
	alertController := controller.NewAlertController(alertService)
	configController := controller.NewConfigController(configService)

	// Start the daily expiry sweep
	expiryScheduler := scheduler.NewExpiryScheduler(alertService, cfg.Alert.SweepSpec)
	if err := expiryScheduler.Start(); err != nil {
		logger.Fatal("Failed to start expiry scheduler", err)
	}
	defer expiryScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		companyController,
		driverController,
		vehicleController,
		uploadController,
		alertController,
		configController,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
