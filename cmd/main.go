package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/anto251070/tdd-bdd-final-project/internal/handler"
	mid "github.com/anto251070/tdd-bdd-final-project/internal/middleware"
	"github.com/anto251070/tdd-bdd-final-project/internal/model"
	"github.com/anto251070/tdd-bdd-final-project/pkg/config"
	"github.com/anto251070/tdd-bdd-final-project/pkg/database"
	"github.com/anto251070/tdd-bdd-final-project/pkg/jwtutil"
	"github.com/anto251070/tdd-bdd-final-project/pkg/logger"
	"github.com/anto251070/tdd-bdd-final-project/prometheus"
)

func main() {
	// Load configuration (reads .env when present)
	appConfig, err := config.Load("product-service")
	if err != nil {
		// Can't use the structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       appConfig.Log.Level,
		Environment: appConfig.Server.Env,
		ServiceName: appConfig.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting product-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database and run migrations
	if _, err := database.InitDB(&appConfig.DB); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.MigrateModels(&model.Product{}); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database connection established")

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Service endpoints
	e.GET("/", handler.Index)
	e.GET("/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Product API routes - Bearer auth only when enabled
	products := e.Group("/products")
	if appConfig.JWT.Enabled {
		jwt := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
			SigningKey:      appConfig.JWT.SigningKey,
			ExpirationHours: appConfig.JWT.ExpirationHours,
		})
		products.Use(mid.AuthMiddleware(jwt))
		log.Info("Bearer authentication enabled for product routes")
	}
	products.GET("", handler.ListProducts)
	products.GET("/:id", handler.GetProduct)
	products.POST("", handler.CreateProduct)
	products.PUT("/:id", handler.UpdateProduct)
	products.DELETE("/:id", handler.DeleteProduct)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
