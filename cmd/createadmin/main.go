package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/fieldops/installation-service/internal/auth"
	"github.com/fieldops/installation-service/internal/config"
	"github.com/fieldops/installation-service/internal/observability"
	"github.com/fieldops/installation-service/internal/persistence"
	"github.com/fieldops/installation-service/internal/repository"
	"github.com/fieldops/installation-service/internal/service"
)

// createadmin provisions a superuser account with staff and superuser
// capability flags set.
func main() {
	email := flag.String("email", "", "email address for the new superuser")
	password := flag.String("password", "", "password for the new superuser")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	userRepo := repository.NewUserRepository(pg.PoolHandle())
	sessions := auth.NewRedisSessionStore(redis.Client)
	userService := service.NewUserService(cfg.Auth, userRepo, sessions)

	user, err := userService.CreateSuperuser(ctx, *email, *password)
	if err != nil {
		logger.Fatal("failed to create superuser", zap.Error(err))
	}

	logger.Info("superuser created",
		zap.String("id", user.ID),
		zap.String("email", user.Email),
	)
}
