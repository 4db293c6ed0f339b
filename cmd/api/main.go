package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/admitboard/admitboard-api/internal/config"
	"github.com/admitboard/admitboard-api/internal/database"
	"github.com/admitboard/admitboard-api/internal/handler"
	"github.com/admitboard/admitboard-api/internal/middleware"
	"github.com/admitboard/admitboard-api/internal/router"
	"github.com/admitboard/admitboard-api/internal/service"
	"github.com/admitboard/admitboard-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := connectDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer closeDatabase(db, logger)

	dataStore, err := store.New(db, logger)
	if err != nil {
		log.Fatalf("failed to construct store: %v", err)
	}

	if err := dataStore.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	var limiterStorage fiber.Storage
	if cfg.RedisURL != "" {
		redisClient, err := database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		storage := middleware.NewRedisStorage(redisClient)
		defer storage.Close()
		limiterStorage = storage
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	tableService := service.NewTableService(dataStore, validate, logger)
	reportService := service.NewReportService(dataStore, logger)
	adminService := service.NewAdminService(dataStore, cfg.ResetToken, logger)

	tableHandler := handler.NewTableHandler(tableService, logger)
	reportHandler := handler.NewReportHandler(reportService, logger)
	adminHandler := handler.NewAdminHandler(adminService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		TableHandler:    tableHandler,
		ReportHandler:   reportHandler,
		AdminHandler:    adminHandler,
		MutationLimiter: middleware.RateLimit("mutations", cfg.MutationRateLimit, cfg.MutationRateWindow, limiterStorage),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func connectDatabase(cfg config.Config) (*gorm.DB, error) {
	if cfg.DatabaseDriver == config.DriverSQLite {
		return database.ConnectSQLite(cfg.DatabaseURL)
	}
	return database.ConnectPostgres(cfg.DatabaseURL)
}

func closeDatabase(db *gorm.DB, logger zerolog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to access database pool on shutdown")
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn().Err(err).Msg("failed to close database connection")
	}
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
