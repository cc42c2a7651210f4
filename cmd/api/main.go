// ABOUTME: Main entry point for the Timetable API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timetable-app-api/api"
	"timetable-app-api/api/handlers"
	"timetable-app-api/core/calendar"
	"timetable-app-api/core/interfaces"
	"timetable-app-api/core/timetable"
	"timetable-app-api/infrastructure/cache/memory"
	"timetable-app-api/infrastructure/cache/redis"
	"timetable-app-api/infrastructure/cache/sqlite"
	"timetable-app-api/infrastructure/health"
	logrusadapter "timetable-app-api/infrastructure/logger/logrus"
	xlsxreader "timetable-app-api/infrastructure/spreadsheet/excelize"
	"timetable-app-api/pkg/config"
)

const version = "1.0.0"

func main() {
	portFlag := flag.String("port", "", "HTTP server port, overrides the PORT environment variable")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The port flag takes precedence over the environment
	if *portFlag != "" {
		cfg.Server.Port = *portFlag
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logrusadapter.NewLogger()
	logger.Info("Starting Timetable API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"drafts_dir": cfg.Drafts.Dir,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		if cfg.Cache.Redis.Password == "" {
			logger.Warn("REDIS_PASSWORD is empty, connecting without authentication", map[string]interface{}{
				"address": cfg.Cache.Redis.Address(),
			})
		}
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			log.Fatalf("Failed to create Redis cache: %v", err)
		}
		defer redisCache.Close()

		// Hold the server until Redis answers PING, so requests never land
		// on a cache that is still starting
		prober := health.NewProber(
			redisCache.Ping,
			time.Duration(cfg.Health.Interval)*time.Second,
			time.Duration(cfg.Health.Timeout)*time.Second,
			cfg.Health.Retries,
		)
		logger.Info("Waiting for Redis to become healthy", map[string]interface{}{
			"address": cfg.Cache.Redis.Address(),
		})
		if err := prober.WaitHealthy(context.Background()); err != nil {
			log.Fatalf("Redis never became healthy: %v", err)
		}
		cache = redisCache
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address(),
		})
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			log.Fatalf("Failed to create SQLite cache: %v", err)
		}
		defer sqliteCache.Close()
		cache = sqliteCache
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:  cache,
		Logger: logger,
	}

	// Create services
	reader := xlsxreader.NewReader()
	ttl := time.Duration(cfg.Cache.TTL) * time.Second
	timetableService := timetable.NewService(deps, reader, cfg.Drafts.Dir, ttl)
	calendarService := calendar.NewService(deps)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:    logger,
		RateLimit: 100, // 100 requests per minute
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	timetableHandler := handlers.NewTimetableHandler(timetableService, calendarService)
	timetableHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler(cache, version)
	healthHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
