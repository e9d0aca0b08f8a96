package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"supplysight/internal/caching"
	"supplysight/internal/config"
	"supplysight/internal/handlers"
	"supplysight/internal/history"
	"supplysight/internal/jobs"
	"supplysight/internal/jobs/background"
	"supplysight/internal/repositories"
	"supplysight/internal/services"
	"supplysight/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// Create repositories
	productRepo := repositories.NewProductRepository(pool)
	warehouseRepo := repositories.NewWarehouseRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)
	forecastRepo := repositories.NewForecastRepository(pool)
	alertRepo := repositories.NewAlertRepository(pool)
	demandHistoryRepo := repositories.NewDemandHistoryRepository(pool)

	// Pick the demand history source. Synthetic keeps the forecaster usable
	// before real sales data has been recorded.
	var historySource history.Source
	if cfg.UseSynthetic {
		historySource = history.NewSyntheticSource(cfg.HistorySeed)
	} else {
		historySource = history.NewRepositorySource(demandHistoryRepo)
	}

	// Create services
	productSvc := services.NewProductService(productRepo, forecastRepo, cacheSvc)
	warehouseSvc := services.NewWarehouseService(warehouseRepo)
	inventorySvc := services.NewInventoryService(inventoryRepo, productRepo)
	forecastSvc := services.NewForecastService(productRepo, forecastRepo, historySource, cacheSvc)
	scenarioSvc := services.NewScenarioService()
	reorderSvc := services.NewReorderService(productRepo, inventoryRepo, forecastRepo, historySource)
	alertSvc := services.NewAlertService(alertRepo)
	alertJob := jobs.NewPredictiveAlertService(inventoryRepo, productRepo, alertRepo)

	// Create handlers
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)
	productHandlers := handlers.NewProductHandlers(productSvc)
	warehouseHandlers := handlers.NewWarehouseHandlers(warehouseSvc)
	inventoryHandlers := handlers.NewInventoryHandlers(inventorySvc)
	forecastHandlers := handlers.NewForecastHandlers(forecastSvc)
	scenarioHandlers := handlers.NewScenarioHandlers(scenarioSvc)
	reorderHandlers := handlers.NewReorderHandlers(reorderSvc)
	alertHandlers := handlers.NewAlertHandlers(alertSvc, alertJob)

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Pre(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// API routes
	v1 := e.Group("/v1")

	// Product routes
	v1.GET("/products", productHandlers.ListProducts)
	v1.GET("/products/search", productHandlers.SearchProducts)
	v1.POST("/products", productHandlers.CreateProduct)
	v1.GET("/products/:id", productHandlers.GetProduct)
	v1.PUT("/products/:id", productHandlers.UpdateProduct)
	v1.DELETE("/products/:id", productHandlers.DeleteProduct)

	// Warehouse routes
	v1.GET("/warehouses", warehouseHandlers.ListWarehouses)
	v1.POST("/warehouses", warehouseHandlers.CreateWarehouse)
	v1.GET("/warehouses/:id", warehouseHandlers.GetWarehouse)
	v1.PUT("/warehouses/:id", warehouseHandlers.UpdateWarehouse)
	v1.DELETE("/warehouses/:id", warehouseHandlers.DeleteWarehouse)

	// Inventory routes
	v1.GET("/inventory", inventoryHandlers.ListInventory)
	v1.POST("/inventory", inventoryHandlers.CreateInventory)
	v1.GET("/inventory/low-stock", inventoryHandlers.LowStock)
	v1.POST("/inventory/search", inventoryHandlers.SearchInventory)
	v1.POST("/inventory/adjust", inventoryHandlers.AdjustStock)
	v1.GET("/inventory/:id", inventoryHandlers.GetInventory)
	v1.PUT("/inventory/:id", inventoryHandlers.UpdateInventory)
	v1.DELETE("/inventory/:id", inventoryHandlers.DeleteInventory)

	// Forecast routes
	v1.POST("/forecasts/generate", forecastHandlers.GenerateForecasts)
	v1.GET("/forecasts", forecastHandlers.ListForecasts)
	v1.GET("/forecasts/latest", forecastHandlers.LatestForecasts)

	// Scenario routes
	v1.POST("/scenarios/simulate", scenarioHandlers.SimulateScenario)

	// Reorder routes
	v1.GET("/reorder-suggestions", reorderHandlers.ListSuggestions)

	// Alert routes
	v1.GET("/alerts", alertHandlers.ListAlerts)
	v1.POST("/alerts/generate", alertHandlers.GenerateAlerts)
	v1.POST("/alerts/:id/resolve", alertHandlers.ResolveAlert)

	// Start background jobs
	scheduler := background.NewJobScheduler(forecastSvc, alertJob)
	if err := scheduler.Start(); err != nil {
		log.Printf("Failed to start job scheduler: %v", err)
	}
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Printf("Failed to stop job scheduler: %v", err)
		}
	}()

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
