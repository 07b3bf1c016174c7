package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/showroom-crm/internal/api/http/handlers"
	"github.com/spec-kit/showroom-crm/internal/auth"
	"github.com/spec-kit/showroom-crm/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Customers      *handlers.CustomersHandler
	Interactions   *handlers.InteractionsHandler
	Escalations    *handlers.EscalationsHandler
	Users          *handlers.UsersHandler
	Analytics      *handlers.AnalyticsHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Every protected route resolves the
// caller's permissions first and gates itself on them, never on the role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}
	app.Get("/policy", cfg.Auth.Policy)

	app.Post("/auth/login", cfg.Auth.Login)

	authn := cfg.AuthMiddleware.Handle
	app.Post("/auth/logout", authn, cfg.Auth.Logout)
	app.Get("/me", authn, cfg.Auth.Me)
	app.Get("/overview", authn, auth.RequireView(auth.ViewOverview), cfg.Analytics.Overview)

	customers := app.Group("/customers", authn)
	customers.Get("", cfg.Customers.List)
	customers.Get("/:id", cfg.Customers.Get)

	interactions := app.Group("/interactions", authn, auth.RequireView(auth.ViewInteractions))
	interactions.Get("", cfg.Interactions.List)
	interactions.Get("/timeline", auth.RequireView(auth.ViewInteractionTimeline), cfg.Interactions.Timeline)
	interactions.Post("", cfg.Interactions.Create)
	interactions.Post("/:id/escalate", cfg.Interactions.Escalate)

	escalations := app.Group("/escalations", authn, auth.RequireView(auth.ViewAllEscalations))
	escalations.Get("", cfg.Escalations.List)
	escalations.Patch("/:id/status", cfg.Escalations.UpdateStatus)

	users := app.Group("/users", authn, auth.RequireView(auth.ViewUserManagement))
	users.Get("", cfg.Users.List)
	users.Post("", cfg.Users.Create)
	users.Patch("/:id/status", cfg.Users.UpdateStatus)

	analytics := app.Group("/analytics", authn)
	analytics.Get("/performance", auth.RequireView(auth.ViewPerformance), cfg.Analytics.Performance)
	analytics.Get("/team", auth.RequireView(auth.ViewTeamPerformance), cfg.Analytics.Team)
	analytics.Get("/showrooms", auth.RequireView(auth.ViewShowroomAnalytics), cfg.Analytics.Showrooms)
}
