package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vitalsign/lifebattery/internal/core"
	"github.com/vitalsign/lifebattery/internal/engine"
	"github.com/vitalsign/lifebattery/internal/metrics"
	"github.com/vitalsign/lifebattery/internal/storage"
	"github.com/vitalsign/lifebattery/pkg/logger"
)

func main() {
	configPath := os.Getenv("LIFEBATTERY_CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/lifebattery.yaml"
	}

	config, err := core.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Config load failed: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(config.App.LogLevel); err != nil {
		fmt.Printf("Logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	calibration, err := loadCalibration(config.Engine.CalibrationPath)
	if err != nil {
		logger.Fatal("Calibration load failed", zap.Error(err))
	}

	eng, err := engine.NewEngine(calibration)
	if err != nil {
		logger.Fatal("Engine init failed", zap.Error(err))
	}
	logger.Info("Engine ready",
		zap.String("calibration_version", eng.Calibration().Version),
		zap.Int("metric_kinds", len(eng.Calibration().Metrics)),
	)

	db, err := storage.NewPostgresClient(config.GetDatabaseURL(), logger.Log)
	if err != nil {
		logger.Fatal("Database connection failed", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.EnsureSchema(ctx); err != nil {
		logger.Fatal("Schema bootstrap failed", zap.Error(err))
	}

	if config.App.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), ginLogger())

	router.GET("/health", healthHandler(db, config))
	router.GET("/ready", readyHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/status", statusHandler(config, eng))

		v1.POST("/impact", aggregateHandler(eng))
		v1.POST("/projection", projectionHandler(eng, db))
		v1.POST("/projection/optimal", optimalProjectionHandler(eng, db))
		v1.POST("/projection/improved", improvedProjectionHandler(eng, db))
		v1.POST("/recommendations", recommendationHandler(eng))
		v1.GET("/projections/:subject", recentProjectionsHandler(db))
	}

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", config.Server.Port),
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logger.Info("HTTP server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	srv.Shutdown(shutdownCtx)
	db.Close()
}

func loadCalibration(path string) (*engine.Calibration, error) {
	if path == "" {
		return engine.DefaultCalibration(), nil
	}
	return engine.LoadCalibration(path)
}

func ginLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		elapsed := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, route, c.Writer.Status(), elapsed)

		logger.Info("HTTP Request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", elapsed),
			zap.String("ip", c.ClientIP()),
		)
	}
}

func healthHandler(db *storage.PostgresClient, config *core.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := db.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   config.App.Version,
		})
	}
}

func readyHandler(db *storage.PostgresClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := db.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not_ready",
				"reason": "database unavailable",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

func statusHandler(config *core.Config, eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":             config.App.Name,
			"version":             config.App.Version,
			"calibration_version": eng.Calibration().Version,
			"timestamp":           time.Now().Format(time.RFC3339),
		})
	}
}
