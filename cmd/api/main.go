package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mayankmishra1802/imagify/internal/domain/entity"
	imageUseCase "github.com/mayankmishra1802/imagify/internal/domain/usecase/image"
	"github.com/mayankmishra1802/imagify/internal/domain/usecase/settlement"
	userUseCase "github.com/mayankmishra1802/imagify/internal/domain/usecase/user"

	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/api/handler"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/api/routes"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/database"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/database/migration"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/gateway/clipdrop"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/gateway/razorpay"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/logger"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/repository"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/token"
	timeProvider "github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/time"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/config"

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

	// The plan catalog is compiled in; refuse to start with a broken one
	catalog := entity.DefaultPlanCatalog()
	if err := catalog.Validate(); err != nil {
		log.Fatalf("Plan catalog validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbConn, err := database.NewConnection(database.NewConfig(cfg), appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbConn.Close() }()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(dbConn.DB, appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories and unit of work
	userRepo := repository.NewUserRepository(dbConn.DB, tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(dbConn.DB, appLogger)
	uow := database.NewUnitOfWork(dbConn.DB, appLogger, tp)

	// External gateway clients
	paymentGateway := razorpay.NewClient(razorpay.Options{
		KeyID:     cfg.Payment.KeyID,
		KeySecret: cfg.Payment.KeySecret,
		BaseURL:   cfg.Payment.BaseURL,
		Timeout:   cfg.Payment.Timeout,
	})
	imageGenerator := clipdrop.NewClient(clipdrop.Options{
		APIKey:  cfg.Image.APIKey,
		BaseURL: cfg.Image.BaseURL,
		Timeout: cfg.Image.Timeout,
	})

	// Token issuer
	tokenIssuer := token.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)

	// Initialize use cases
	userUseCaseImpl := userUseCase.NewUserUseCase(
		userRepo,
		tokenIssuer,
		tp,
		appLogger,
		cfg.Credits.SignupBonus,
	)
	settlementService := settlement.NewService(
		uow,
		transactionRepo,
		paymentGateway,
		settlement.NewSignatureVerifier(cfg.Payment.KeySecret),
		catalog,
		tp,
		appLogger,
		cfg.Payment.Timeout,
		cfg.Payment.Currency,
	)
	imageUseCaseImpl := imageUseCase.NewUseCase(
		userRepo,
		imageGenerator,
		tp,
		appLogger,
		cfg.Image.Timeout,
	)

	// Initialize API handlers
	userHandler := handler.NewUserHandler(userUseCaseImpl, appLogger)
	paymentHandler := handler.NewPaymentHandler(settlementService, appLogger)
	imageHandler := handler.NewImageHandler(imageUseCaseImpl, appLogger)
	healthHandler := handler.NewHealthHandler(dbConn, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, userHandler, paymentHandler, imageHandler, healthHandler, tokenIssuer, appLogger)

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
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
