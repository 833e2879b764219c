package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/notification"
	adminUseCase "github.com/amirhossein-jamali/loyalty-service/internal/domain/usecase/admin"
	authUseCase "github.com/amirhossein-jamali/loyalty-service/internal/domain/usecase/auth"
	catalogUseCase "github.com/amirhossein-jamali/loyalty-service/internal/domain/usecase/catalog"
	pointsUseCase "github.com/amirhossein-jamali/loyalty-service/internal/domain/usecase/points"
	profileUseCase "github.com/amirhossein-jamali/loyalty-service/internal/domain/usecase/profile"
	verificationUseCase "github.com/amirhossein-jamali/loyalty-service/internal/domain/usecase/verification"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/codegen"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/mailer"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	for _, warning := range cfg.SecurityWarnings() {
		appLogger.Warn("Insecure production configuration", map[string]any{
			"warning": warning,
		})
	}

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database and migrate the schema
	dbManager := database.NewManager(database.CreateConfigFromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Session store
	redisClient, err := identity.NewRedisClient(ctx, identity.RedisOptions{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: cfg.Redis.DialTimeout,
	})
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	appMetrics := metrics.New()
	dbManager.ObserveQueries(appMetrics)
	if sqlDB, err := dbManager.SQLDB(); err == nil {
		if err := appMetrics.RegisterDB(sqlDB, cfg.Database.Database); err != nil {
			appLogger.Warn("Database pool metrics not registered", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Repositories
	db := dbManager.DB()
	profileRepo := repository.NewProfileRepository(db, tp, appLogger)
	ledgerRepo := repository.NewLedgerRepository(db, appLogger)
	rewardRepo := repository.NewRewardRepository(db, appLogger)
	rewardCodeRepo := repository.NewRewardCodeRepository(db, appLogger)
	otpRepo := repository.NewOTPRepository(db, appLogger)
	credentialRepo := repository.NewCredentialRepository(db, appLogger)

	// Identity gateway
	tokens, err := identity.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)
	if err != nil {
		return err
	}
	sessions := identity.NewSessionStore(redisClient)
	gateway, err := identity.NewGateway(credentialRepo, tokens, sessions, tp, appLogger, identity.Options{
		BcryptCost:               cfg.Auth.BcryptCost,
		RequireEmailVerification: cfg.Auth.RequireEmailVerification,
	})
	if err != nil {
		return err
	}

	mail, err := newMailer(cfg, appLogger)
	if err != nil {
		return err
	}

	// Use cases
	codes := codegen.NewGenerator()
	readRetrier := dbManager.CreateRetrier(database.RetryConfig{
		MaxRetries:    cfg.Points.ReadRetryAttempts,
		RetryInterval: cfg.Points.ReadRetryInterval,
		MaxInterval:   cfg.Points.ReadRetryMaxInterval,
		JitterFactor:  database.DefaultRetryConfig().JitterFactor,
	})

	pointsService := pointsUseCase.NewService(dbManager.CreateUnitOfWork(), codes, tp, appLogger, appMetrics, readRetrier).
		WithMaxCodeAttempts(cfg.Points.MaxCodeAttempts)
	verificationService := verificationUseCase.NewService(otpRepo, codes, mail, gateway, tp, appLogger, verificationUseCase.Config{
		TTL:         coreport.Duration(cfg.OTP.TTL),
		MaxAttempts: cfg.OTP.MaxAttempts,
		Digits:      cfg.OTP.Digits,
	})
	authService := authUseCase.NewService(gateway, profileRepo, verificationService, tp, appLogger)
	profileService := profileUseCase.NewService(profileRepo, ledgerRepo, tp, appLogger, readRetrier)
	catalogService := catalogUseCase.NewService(rewardRepo, pointsService, appLogger, readRetrier)
	adminService := adminUseCase.NewService(
		adminUseCase.NewGate(profileRepo, appLogger),
		profileRepo,
		rewardCodeRepo,
		rewardRepo,
		pointsService,
		tp,
		appLogger,
		appMetrics,
		readRetrier,
	)

	// Seed data
	if cfg.Admin.Enabled() {
		if err := authService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
			return fmt.Errorf("bootstrap admin account: %w", err)
		}
	}
	if cfg.Environment == config.Development {
		if err := migration.CreateDefaultRewards(ctx, rewardRepo, tp, appLogger); err != nil {
			appLogger.Error("Failed to create default rewards", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// HTTP
	cookies := handler.NewCookieHelper(handler.CookieConfig{
		Name:   cfg.Auth.CookieName,
		Domain: cfg.Auth.CookieDomain,
		Secure: cfg.Auth.CookieSecure,
	})

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins, appMetrics.Middleware())
	routes.SetupRoutes(router, routes.Handlers{
		Auth:        handler.NewAuthHandler(authService, verificationService, cookies, appLogger),
		User:        handler.NewUserHandler(profileService, appLogger),
		Transaction: handler.NewTransactionHandler(pointsService, appLogger),
		Reward:      handler.NewRewardHandler(catalogService, appLogger),
		Admin:       handler.NewAdminHandler(adminService, appLogger),
		Health: handler.NewHealthHandler(map[string]handler.Pinger{
			"database": dbManager,
			"sessions": sessions,
		}, cfg.Database.QueryTimeout, appLogger),
		Metrics: appMetrics.Handler(),
	}, middleware.Auth(authService, cookies.Name(), appLogger))

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for an interrupt signal or a listener failure
	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// newMailer picks the email sender. The log mailer never delivers anything.
func newMailer(cfg *config.Config, appLogger coreport.Logger) (notification.Mailer, error) {
	if cfg.Mail.Provider == config.MailProviderResend {
		return mailer.NewResendMailer(cfg.Mail.ResendAPIKey, cfg.Mail.From, appLogger)
	}
	if cfg.IsProduction() {
		appLogger.Warn("Log mailer active in production; verification codes are not delivered", nil)
	}
	return mailer.NewLogMailer(appLogger), nil
}
