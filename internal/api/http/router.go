package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ppe-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/ppe-dashboard/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
	Views  *handlers.ViewsHandler
	Guard  *Guard
}

// RegisterRoutes wires HTTP routes. The sign-in endpoints stay outside the
// guard; everything under /api and the default view are gated.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Sign-in view; always reachable. Echoes the location to return to.
	app.Get(signInPath, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"view": "login",
			"from": c.Query("from", defaultPath),
		})
	})

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/session", cfg.Auth.Session)

	// Default view: the dashboard, open to any signed-in operator.
	app.Get(defaultPath, cfg.Guard.Protect(), cfg.Views.Dashboard)

	api := app.Group("/api", cfg.Guard.Protect())
	api.Get("/dashboard", cfg.Views.Dashboard)
	api.Get("/reports", cfg.Views.Reports)
	api.Get("/workers", cfg.Views.Workers)
	api.Get("/workers/:employeeID", cfg.Views.Worker)
	api.Get("/alerts", cfg.Views.Alerts)
	api.Post("/alerts/:id/ack", cfg.Views.AcknowledgeAlert)
	api.Get("/profile", cfg.Views.Profile)
	api.Get("/activity", cfg.Views.Activity)

	admin := api.Group("", cfg.Guard.Protect(domain.RoleAdmin))
	admin.Get("/settings", cfg.Views.Settings)
}
