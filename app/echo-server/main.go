package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crewFit/app/echo-server/router"
	"crewFit/business/forecast"
	"crewFit/business/recommend"
	"crewFit/internal/middleware"
	"crewFit/internal/mlmodel"
	mongoRepo "crewFit/internal/repository/mongodb"
	redisRepo "crewFit/internal/repository/redis"
	"crewFit/internal/rest"
	"crewFit/pkg/config"
	"crewFit/pkg/database"
	redisdb "crewFit/pkg/database/redis"
	"crewFit/pkg/logger"
	"crewFit/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting CrewFit Analysis API", "version", cfg.App.Version)

	metrics.Init()

	mongoClient, err := database.InitMongo(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", "error", err)
	}

	logger.Info("MongoDB connected successfully")

	// Redis is optional; without it reads fall through to MongoDB
	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, running without result cache", "error", err)
		redisClient = nil
	}

	scalers, err := forecast.LoadScalers(cfg.Model.ScalerPath)
	if err != nil {
		logger.Fatal("Failed to load model scalers", "error", err)
	}

	predictor, err := mlmodel.NewOnnxPredictor(mlmodel.Config{
		OrtLibrary: cfg.Model.OrtLibrary,
		ModelPath:  cfg.Model.ModelPath,
	})
	if err != nil {
		logger.Fatal("Failed to load forecast model", "error", err)
	}

	// Init repo
	recommendationRepo := mongoRepo.NewRecommendationRepository(mongoClient, cfg.Mongo.Database)
	predictionRepo := mongoRepo.NewPredictionRepository(mongoClient, cfg.Mongo.Database)

	var resultCache recommend.ResultCache
	if redisClient != nil {
		resultCache = redisRepo.NewResultCache(redisClient, 0)
	}

	// Init service
	recommendService := recommend.NewService(recommendationRepo, resultCache, nil, recommend.DefaultConfig())
	forecastService := forecast.NewService(predictor, predictionRepo, scalers)

	// Init handler
	recommendHandler := rest.NewRecommendHandler(recommendService)
	forecastHandler := rest.NewForecastHandler(forecastService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.TraceMiddleware())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"name":    cfg.App.Name,
			"version": cfg.App.Version,
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetRecommendationRoutes(api, recommendHandler, authRequired)
	router.SetForecastRoutes(api, forecastHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := predictor.Close(); err != nil {
		logger.Error("Model session close error", "error", err)
	}

	if err := database.CloseMongo(ctx, mongoClient); err != nil {
		logger.Error("MongoDB disconnect error", "error", err)
	}

	if redisClient != nil {
		if err := redisdb.CloseRedisClient(redisClient); err != nil {
			logger.Error("Redis close error", "error", err)
		}
	}

	logger.Info("Server stopped")
}
