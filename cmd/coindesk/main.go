package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dh467/coindesk/internal/core/services"
	"github.com/dh467/coindesk/internal/handlers"
	"github.com/dh467/coindesk/internal/middleware"
	"github.com/dh467/coindesk/internal/platform/config"
	"github.com/dh467/coindesk/internal/repositories/database/pgsql"
	"github.com/dh467/coindesk/internal/repositories/feed/coingecko"
	"github.com/dh467/coindesk/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Coindesk API
// @version 1.0
// @description Currency mapping CRUD and CoinGecko market feed aggregation.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		os.Exit(1)
	}

	// Display time zone for feed timestamps
	displayLocation, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		logger.Error("Failed to load display time zone", slog.String("timezone", cfg.DisplayTimezone), slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire repositories and services
	feedClient := coingecko.NewClient(cfg.CoinGeckoBaseURL, cfg.FeedQuoteCurrency, cfg.FeedTimeout)
	repos := pgsql.NewRepositoryProvider(dbPool, feedClient)
	serviceContainer := services.NewServiceContainer(&repos, displayLocation)

	// One-time bootstrap: seed well-known currencies when the table is empty
	if err := serviceContainer.CurrencyMapping.SeedDefaultCurrencies(context.Background()); err != nil {
		logger.Error("Failed to seed default currencies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware: logging, panic recovery with a fixed non-leaking
	// body, CORS and inbound rate limiting
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Panic recovered", slog.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"status":  http.StatusInternalServerError,
			"message": "Unexpected error occurred. Please try again later.",
		})
	}))
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted("300-M")
	if err != nil {
		logger.Error("Failed to parse rate limit", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memorystore.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations from the migrations
// directory against the configured database.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	// Open a temporary standard sql.DB connection for migrations, using the
	// pgx stdlib driver to stay compatible with the main pool
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
