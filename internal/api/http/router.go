package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/http/handlers"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Auth            *handlers.AuthHandler
	BusinessAuth    *handlers.BusinessAuthHandler
	Jobs            *handlers.JobsHandler
	BusinessJobs    *handlers.BusinessJobsHandler
	Applications    *handlers.ApplicationsHandler
	Profile         *handlers.ProfileHandler
	BusinessProfile *handlers.BusinessProfileHandler
	Gate            *auth.Gate
}

// RegisterRoutes wires HTTP routes. Two parallel endpoint families share the
// same session contract; protected groups differ only in the required role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/refresh", cfg.Auth.Refresh)
	authGroup.Post("/logout", cfg.Auth.Logout)

	businessAuth := app.Group("/business/auth")
	businessAuth.Post("/register", cfg.BusinessAuth.Register)
	businessAuth.Post("/login", cfg.BusinessAuth.Login)
	businessAuth.Get("/refresh", cfg.BusinessAuth.Refresh)
	businessAuth.Post("/logout", cfg.BusinessAuth.Logout)

	app.Get("/jobs", cfg.Jobs.List)
	app.Get("/jobs/:jobId", cfg.Jobs.Get)

	userOnly := app.Group("", cfg.Gate.Authenticate, auth.RequireRole(domain.RoleUser))
	userOnly.Get("/profile", cfg.Profile.Get)
	userOnly.Put("/profile", cfg.Profile.Update)
	userOnly.Post("/applications/:jobId", cfg.Applications.Apply)
	userOnly.Get("/applications", cfg.Applications.List)

	businessOnly := app.Group("/business", cfg.Gate.Authenticate, auth.RequireRole(domain.RoleBusiness))
	businessOnly.Get("/profile", cfg.BusinessProfile.Get)
	businessOnly.Put("/profile", cfg.BusinessProfile.Update)
	businessOnly.Get("/jobs", cfg.BusinessJobs.List)
	businessOnly.Post("/jobs", cfg.BusinessJobs.Create)
	businessOnly.Put("/jobs/:jobId", cfg.BusinessJobs.Update)
	businessOnly.Delete("/jobs/:jobId", cfg.BusinessJobs.Delete)
	businessOnly.Get("/jobs/:jobId/applications", cfg.BusinessJobs.ListApplications)
	businessOnly.Put("/applications/:applicationId", cfg.BusinessJobs.ReviewApplication)
}
