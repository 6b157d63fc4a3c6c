// Package main is the entry point for the forecast API server.
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
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/forecast/config"
	"github.com/finance-tracker/forecast/internal/application/usecase/expense"
	"github.com/finance-tracker/forecast/internal/application/usecase/forecast"
	"github.com/finance-tracker/forecast/internal/application/usecase/subscription"
	"github.com/finance-tracker/forecast/internal/infra/db"
	"github.com/finance-tracker/forecast/internal/infra/server/router"
	"github.com/finance-tracker/forecast/internal/integration/cache"
	"github.com/finance-tracker/forecast/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/forecast/internal/integration/persistence"
	"github.com/finance-tracker/forecast/internal/integration/persistence/model"
	"github.com/finance-tracker/forecast/internal/integration/scheduler"
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

	slog.Info("Starting forecast API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

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
	if err := database.AutoMigrate(
		&model.ExpenseModel{},
		&model.SubscriptionModel{},
		&model.ForecastRuleModel{},
		&model.MonthlyForecastModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis client. The forecast cache degrades to a no-op on
	// backend failures, so a dead Redis does not stop the service.
	redisClient := newRedisClient(&cfg.Redis)
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()

	// Create repositories
	expenseRepo := persistence.NewExpenseRepository(database.DB())
	subscriptionRepo := persistence.NewSubscriptionRepository(database.DB())
	ruleRepo := persistence.NewForecastRuleRepository(database.DB())
	forecastRepo := persistence.NewMonthlyForecastRepository(database.DB())
	forecastCache := cache.NewRedisForecastCache(redisClient)

	// Create use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createSubscriptionUseCase := subscription.NewCreateSubscriptionUseCase(subscriptionRepo)
	listSubscriptionsUseCase := subscription.NewListSubscriptionsUseCase(subscriptionRepo)
	generateForecastsUseCase := forecast.NewGenerateForecastsUseCase(
		expenseRepo,
		subscriptionRepo,
		ruleRepo,
		forecastRepo,
		forecastCache,
		cfg.Forecast.CacheTTL,
	)
	listForecastsUseCase := forecast.NewListForecastsUseCase(forecastRepo)
	generateSuggestionsUseCase := forecast.NewGenerateSuggestionsUseCase(expenseRepo, ruleRepo)
	listSuggestionsUseCase := forecast.NewListSuggestionsUseCase(ruleRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		database.HealthCheck,
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)
	expenseController := controller.NewExpenseController(createExpenseUseCase, listExpensesUseCase)
	subscriptionController := controller.NewSubscriptionController(createSubscriptionUseCase, listSubscriptionsUseCase)
	forecastController := controller.NewForecastController(
		generateForecastsUseCase,
		listForecastsUseCase,
		generateSuggestionsUseCase,
		listSuggestionsUseCase,
	)

	// Start the nightly forecast sweep
	var forecastScheduler *scheduler.ForecastScheduler
	if cfg.Forecast.SchedulerEnabled {
		forecastScheduler = scheduler.NewForecastScheduler(
			expenseRepo,
			generateForecastsUseCase,
			cfg.Forecast.SchedulerSpec,
			cfg.Forecast.MonthsBack,
			cfg.Forecast.MonthsForward,
		)
		if err := forecastScheduler.Start(); err != nil {
			slog.Error("Failed to start forecast scheduler", "error", err)
			os.Exit(1)
		}
	}

	// Setup router
	r := router.NewRouter(healthController, expenseController, subscriptionController, forecastController)
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

	if forecastScheduler != nil {
		forecastScheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newRedisClient builds a Redis client from configuration. A malformed URL
// falls back to default options so the cache simply reports misses.
func newRedisClient(cfg *config.RedisConfig) *redis.Client {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("Invalid redis URL, using defaults", "error", err)
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}
	return redis.NewClient(opts)
}
