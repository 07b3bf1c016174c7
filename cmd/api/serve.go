package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/showroom-crm/internal/api/http"
	"github.com/spec-kit/showroom-crm/internal/api/http/handlers"
	"github.com/spec-kit/showroom-crm/internal/auth"
	"github.com/spec-kit/showroom-crm/internal/config"
	"github.com/spec-kit/showroom-crm/internal/events"
	"github.com/spec-kit/showroom-crm/internal/observability"
	"github.com/spec-kit/showroom-crm/internal/persistence"
	"github.com/spec-kit/showroom-crm/internal/repository"
	"github.com/spec-kit/showroom-crm/internal/service"
	"github.com/spec-kit/showroom-crm/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return serve(cfg)
	},
}

func serve(cfg *config.Config) error {
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		return err
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			return err
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	store := repository.NewMemoryStore()
	if pg.Enabled() {
		store = repository.NewPostgresStore(pg.PoolHandle())
	}
	if cfg.Data.SeedSample {
		hash, err := auth.HashPassword(cfg.Data.SamplePassword, cfg.Auth.BcryptCost)
		if err != nil {
			return fmt.Errorf("hash sample password: %w", err)
		}
		seeded, err := repository.Seed(ctx, store, hash)
		if err != nil {
			return fmt.Errorf("seed sample data: %w", err)
		}
		if seeded {
			logger.Info("sample data seeded")
		}
	}

	sessions := repository.NewMemorySessionRepository()
	if redis.Enabled() {
		sessions = repository.NewRedisSessionRepository(redis.Client, cfg.Redis.KeyPrefix)
	}

	metrics := observability.NewMetrics(cfg.App.Name)
	dispatcher := events.NewInMemoryDispatcher()
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		AccountRepo:  store.Accounts,
		SessionRepo:  sessions,
		TokenManager: tokens,
		Logger:       logger,
	})
	customerService := service.NewCustomerService(store.Customers, metrics)
	interactionService := service.NewInteractionService(service.InteractionDependencies{
		InteractionRepo: store.Interactions,
		CustomerRepo:    store.Customers,
		EscalationRepo:  store.Escalations,
		Dispatcher:      dispatcher,
		Metrics:         metrics,
		Logger:          logger,
	})
	escalationService := service.NewEscalationService(store.Escalations, dispatcher, metrics, logger)
	userService := service.NewUserService(service.UserDependencies{
		AccountRepo:    store.Accounts,
		Dispatcher:     dispatcher,
		Metrics:        metrics,
		Logger:         logger,
		BcryptCost:     cfg.Auth.BcryptCost,
		DefaultCountry: cfg.Data.DefaultCountryCode,
	})
	analyticsService := service.NewAnalyticsService(store.Customers, store.Interactions, metrics)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	followUps := worker.NewFollowUpWorker(store.Interactions, dispatcher, logger)
	stopWorker, err := worker.StartNotificationWorker(notificationService, followUps, cfg.Notification.FollowUpCron, logger)
	if err != nil {
		return err
	}
	defer stopWorker()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Dependency{
			"postgres": pg,
			"redis":    redis,
		}),
		Auth:           handlers.NewAuthHandler(authService),
		Customers:      handlers.NewCustomersHandler(customerService),
		Interactions:   handlers.NewInteractionsHandler(interactionService),
		Escalations:    handlers.NewEscalationsHandler(escalationService),
		Users:          handlers.NewUsersHandler(userService),
		Analytics:      handlers.NewAnalyticsHandler(analyticsService),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, sessions),
		Metrics:        metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	return app.ShutdownWithTimeout(shutdownTimeout)
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
