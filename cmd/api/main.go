// Package main is the entry point for the Budget Planner API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/budget-planner/backend/config"
	"github.com/budget-planner/backend/internal/application/usecase/calendar"
	"github.com/budget-planner/backend/internal/application/usecase/classification"
	"github.com/budget-planner/backend/internal/application/usecase/profile"
	"github.com/budget-planner/backend/internal/application/usecase/redistribution"
	"github.com/budget-planner/backend/internal/application/usecase/transaction"
	"github.com/budget-planner/backend/internal/domain/threshold"
	"github.com/budget-planner/backend/internal/infra/db"
	"github.com/budget-planner/backend/internal/infra/server/router"
	"github.com/budget-planner/backend/internal/integration/cache"
	"github.com/budget-planner/backend/internal/integration/entrypoint/controller"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-planner/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Budget Planner API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Load the income threshold table. A malformed table is a configuration
	// error that must abort startup.
	thresholdTable, err := threshold.Load()
	if err != nil {
		slog.Error("Failed to load income threshold table", "error", err)
		os.Exit(1)
	}

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.Migrate(); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	// Initialize redis. The redistribution lock lives there, so redis is as
	// mandatory as the database.
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		slog.Error("Redis connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()

	redisHealthChecker := func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return redisClient.Ping(ctx).Err() == nil
	}

	cacheAdapter := cache.NewCalendarCache(redisClient, cfg.Budget.CalendarCacheTTL)
	lockAdapter := cache.NewMonthLock(redisClient, cfg.Budget.RedistributionLockTTL)

	// Create repositories
	profileRepo := persistence.NewProfileRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	planRepo := persistence.NewPlanRepository(database.DB())
	redistributionRepo := persistence.NewRedistributionRepository(database.DB())

	// Create use cases
	classifyUseCase := classification.NewClassifyIncomeUseCase(
		profileRepo,
		thresholdTable,
		cfg.Budget.DefaultCountry,
	)
	buildCalendarUseCase := calendar.NewBuildMonthCalendarUseCase(
		profileRepo,
		transactionRepo,
		planRepo,
		cacheAdapter,
		thresholdTable,
	)
	redistributeUseCase := redistribution.NewRedistributeMonthUseCase(
		buildCalendarUseCase,
		planRepo,
		redistributionRepo,
		lockAdapter,
		cacheAdapter,
	)
	historyUseCase := redistribution.NewListHistoryUseCase(redistributionRepo)
	getProfileUseCase := profile.NewGetProfileUseCase(profileRepo)
	upsertProfileUseCase := profile.NewUpsertProfileUseCase(profileRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, cacheAdapter)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, cacheAdapter)

	// Create controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck, redisHealthChecker)
	classificationController := controller.NewClassificationController(classifyUseCase)
	calendarController := controller.NewCalendarController(
		buildCalendarUseCase,
		redistributeUseCase,
		historyUseCase,
	)
	profileController := controller.NewProfileController(getProfileUseCase, upsertProfileUseCase)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		deleteTransactionUseCase,
	)
	redistributeRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		healthController,
		classificationController,
		calendarController,
		profileController,
		transactionController,
		redistributeRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
