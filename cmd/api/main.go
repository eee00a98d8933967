package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	paymentUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/payment"
	registrationUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/registration"
	tournamentUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/tournament"
	userUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/user"

	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/api/handler"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/api/routes"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/database"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/database/migration"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/logger"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/payment"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/repository"
	timeProvider "github.com/menix-gg/arena-backend/internal/infrastructure/adapter/time"
	"github.com/menix-gg/arena-backend/internal/infrastructure/config"
	"github.com/menix-gg/arena-backend/internal/infrastructure/scheduler"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer appLogger.Flush()

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewManager(dbManager.DB(), appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	tournamentRepo := repository.NewTournamentRepository(dbManager.DB(), tp, appLogger)
	registrationRepo := repository.NewRegistrationRepository(dbManager.DB(), appLogger)

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Initialize use cases
	users := userUseCase.NewUserUseCase(userRepo, tp, appLogger)
	tournaments := tournamentUseCase.NewTournamentUseCase(tournamentRepo, tp, appLogger)
	registrations := registrationUseCase.NewService(uow, registrationRepo, tp, appLogger)

	gateway := payment.NewRazorpayGateway(
		cfg.Razorpay.KeyID,
		cfg.Razorpay.KeySecret,
		cfg.Razorpay.BaseURL,
		appLogger,
	)
	payments := paymentUseCase.NewService(gateway, users, cfg.Razorpay.KeySecret, appLogger)

	// Seed sample tournaments into an empty store
	if err := migration.SeedTournaments(context.Background(), tournamentRepo, tournaments, appLogger); err != nil {
		appLogger.Error("Failed to seed tournaments", map[string]any{
			"error": err.Error(),
		})
	}

	// Start the tournament status sweeper
	var sweeper *scheduler.StatusSweeper
	if cfg.Scheduler.Enabled {
		sweeper, err = scheduler.NewStatusSweeper(tournaments, cfg.Scheduler.SweepInterval, appLogger)
		if err != nil {
			appLogger.Error("Failed to create status sweeper", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		if err := sweeper.Start(); err != nil {
			appLogger.Error("Failed to start status sweeper", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}

	// Initialize API handlers
	healthHandler := handler.NewHealthHandler(cfg.Environment, tp)
	userHandler := handler.NewUserHandler(users, appLogger)
	tournamentHandler := handler.NewTournamentHandler(tournaments, appLogger)
	registrationHandler := handler.NewRegistrationHandler(registrations, appLogger)
	paymentHandler := handler.NewPaymentHandler(payments, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.CORS.AllowedOrigins)
	routes.SetupRoutes(router, healthHandler, userHandler, tournamentHandler, registrationHandler, paymentHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"host":        cfg.Server.Host,
			"port":        cfg.Server.Port,
			"environment": cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if sweeper != nil {
		if err := sweeper.Stop(); err != nil {
			appLogger.Error("Failed to stop status sweeper", map[string]any{
				"error": err.Error(),
			})
		}
	}

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
