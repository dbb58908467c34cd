package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portsrepo "github.com/moneytrack/money_tracker_app/internal/core/ports/repositories"
	"github.com/moneytrack/money_tracker_app/internal/core/services"
	"github.com/moneytrack/money_tracker_app/internal/handlers"
	"github.com/moneytrack/money_tracker_app/internal/middleware"
	memstore "github.com/moneytrack/money_tracker_app/internal/repositories/database/memory"
	"github.com/moneytrack/money_tracker_app/internal/repositories/database/pgsql"
	"github.com/moneytrack/money_tracker_app/pkg/config"
	"github.com/moneytrack/money_tracker_app/pkg/database"
)

// repositories bundles the storage ports the services depend on.
type repositories struct {
	accounts     portsrepo.AccountRepository
	transactions portsrepo.TransactionRepository
	reporting    portsrepo.ReportingRepository
}

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, cleanup, err := setupStorage(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	rate := limiter.Rate{Period: cfg.RateLimitPeriod, Limit: cfg.RateLimitCount}
	ipLimiter := limiter.New(limitermem.NewStore(), rate)
	r.Use(middleware.RateLimit(ipLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	accountService := services.NewAccountService(repos.accounts)
	ledgerService := services.NewLedgerService(repos.accounts, repos.transactions, cfg.Timezone)
	summaryService := services.NewSummaryService(repos.accounts)
	reportingService := services.NewReportingService(repos.reporting, cfg.Timezone)

	handlers.RegisterHandlers(r, cfg, accountService, ledgerService, summaryService, reportingService)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageBackend))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupStorage builds the repository set for the configured backend and
// returns a cleanup function for deferred shutdown.
func setupStorage(cfg *config.Config, logger *slog.Logger) (*repositories, func(), error) {
	if cfg.StorageBackend == config.StorageMemory {
		store := memstore.NewStore(cfg.Timezone)
		store.SeedDefaults()
		logger.Info("Using in-memory storage backend")
		return &repositories{
			accounts:     store,
			transactions: store,
			reporting:    store,
		}, func() {}, nil
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		dbPool.Close()
		return nil, nil, err
	}

	return &repositories{
		accounts:     pgsql.NewPgxAccountRepository(dbPool),
		transactions: pgsql.NewPgxTransactionRepository(dbPool),
		reporting:    pgsql.NewPgxReportingRepository(dbPool),
	}, func() { database.ClosePgxPool(dbPool) }, nil
}

// runMigrations applies all pending "up" migrations.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	// Open a standard sql.DB connection for migrations using the
	// pgx/v5/stdlib driver to stay compatible with the main pool.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
