package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/fieldops/installation-service/internal/api/http"
	"github.com/fieldops/installation-service/internal/api/http/handlers"
	"github.com/fieldops/installation-service/internal/auth"
	"github.com/fieldops/installation-service/internal/config"
	"github.com/fieldops/installation-service/internal/events"
	"github.com/fieldops/installation-service/internal/observability"
	"github.com/fieldops/installation-service/internal/persistence"
	"github.com/fieldops/installation-service/internal/repository"
	"github.com/fieldops/installation-service/internal/service"
	"github.com/fieldops/installation-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	statusRepo := repository.NewStatusRepository(pool)
	installationRepo := repository.NewInstallationRepository(pool)

	sessions := auth.NewRedisSessionStore(redis.Client)
	dispatcher := events.NewInMemoryDispatcher()

	userService := service.NewUserService(cfg.Auth, userRepo, sessions)
	statusService := service.NewStatusService(statusRepo, dispatcher)
	installationService := service.NewInstallationService(installationRepo, statusRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(userService.TokenManager(), userRepo, sessions)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(userService),
		Statuses:       handlers.NewStatusesHandler(statusService),
		Installations:  handlers.NewInstallationsHandler(installationService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
