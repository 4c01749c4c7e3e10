package main

import (
	"context"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"texmart/internal/config"
	"texmart/internal/handlers"
	"texmart/internal/logger"
	"texmart/internal/metrics"
	"texmart/internal/repositories"
	"texmart/internal/services"
	"texmart/pkg/database"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(&logger.Config{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: "texmart",
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	metrics.Init(cfg.Metrics.Prefix)

	pool, err := database.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// Create repositories
	supplierRepo := repositories.NewSupplierRepository(pool)
	materialRepo := repositories.NewMaterialRepository(pool)

	// Create services
	supplierSvc := services.NewSupplierService(supplierRepo)
	materialSvc := services.NewMaterialService(materialRepo, supplierRepo)

	// Create handlers
	supplierHandlers := handlers.NewSupplierHandlers(supplierSvc)
	materialHandlers := handlers.NewMaterialHandlers(materialSvc)
	healthHandlers := handlers.NewHealthHandlers(pool)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())
	e.Use(logger.Middleware())
	e.Use(metrics.Middleware())

	// Health and metrics endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API routes. No authentication by design: access gating is expected
	// to happen in front of this service when deployed.
	api := e.Group("/api")

	// Material routes
	api.GET("/materials", materialHandlers.ListMaterials)
	api.GET("/materials/:id", materialHandlers.GetMaterial)
	api.POST("/materials", materialHandlers.CreateMaterial)
	api.PUT("/materials/:id", materialHandlers.UpdateMaterial)
	api.DELETE("/materials/:id", materialHandlers.DeleteMaterial)

	// Supplier routes
	api.GET("/suppliers", supplierHandlers.ListSuppliers)
	api.GET("/suppliers/:id", supplierHandlers.GetSupplier)
	api.POST("/suppliers", supplierHandlers.CreateSupplier)
	api.PUT("/suppliers/:id", supplierHandlers.UpdateSupplier)
	api.DELETE("/suppliers/:id", supplierHandlers.DeleteSupplier)

	zap.L().Info("Server starting",
		zap.String("version", version),
		zap.String("port", cfg.Server.Port),
	)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", cfg.Server.Port)))
}
