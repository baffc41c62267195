package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fieldops/installation-service/internal/api/http/handlers"
	"github.com/fieldops/installation-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Statuses       *handlers.StatusesHandler
	Installations  *handlers.InstallationsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Everything under /installations requires
// an authenticated session.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/users/register", cfg.Users.Register)
	authGroup.Post("/users/login", cfg.Users.Login)
	authGroup.Post("/users/logout", cfg.AuthMiddleware.Handle, cfg.Users.Logout)

	protected := app.Group("/installations", cfg.AuthMiddleware.Handle)

	statuses := protected.Group("/status")
	statuses.Get("/", cfg.Statuses.List)
	statuses.Post("/", cfg.Statuses.Create)
	statuses.Get("/:id", cfg.Statuses.Get)
	statuses.Put("/:id", cfg.Statuses.Update)
	statuses.Patch("/:id", cfg.Statuses.Patch)
	statuses.Delete("/:id", cfg.Statuses.Delete)

	installations := protected.Group("/installations")
	installations.Get("/", cfg.Installations.List)
	installations.Post("/", cfg.Installations.Create)
	installations.Get("/:id", cfg.Installations.Get)
	installations.Put("/:id", cfg.Installations.Update)
	installations.Patch("/:id", cfg.Installations.Patch)
	installations.Delete("/:id", cfg.Installations.Delete)
}
