package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Intake          *handlers.IntakeHandler
	Status          *handlers.StatusHandler
	Knowledge       *handlers.KnowledgeHandler
	Tickets         *handlers.TicketsHandler
	Audit           *handlers.AuditHandler
	Notices         *handlers.NoticesHandler
	Settings        *handlers.SettingsHandler
	Events          *handlers.EventsHandler
	Documents       *handlers.DocumentsHandler
	Stats           *handlers.StatsHandler
	Users           *handlers.UsersHandler
	AuthMiddleware  *auth.AuthMiddleware
	PortalRateLimit fiber.Handler
	MaintenanceGate fiber.Handler
}

// RegisterRoutes wires HTTP routes. Portal routes are public and pass
// through the maintenance gate and rate limiter; everything under
// /api/admin requires a bearer token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	portal := api.Group("")
	if cfg.MaintenanceGate != nil {
		portal = portal.Group("", cfg.MaintenanceGate)
	}
	if cfg.PortalRateLimit != nil {
		portal = portal.Group("", cfg.PortalRateLimit)
	}
	portal.Post("/tickets", cfg.Intake.SubmitTicket)
	portal.Post("/tickets/status", cfg.Status.ResolveStatus)

	api.Post("/auth/login", cfg.Users.Login)

	editors := auth.RequireRole(domain.RoleAdmin, domain.RoleAgent)
	adminOnly := auth.RequireRole(domain.RoleAdmin)

	// Knowledge reads are public; writes share the path but need a token.
	api.Get("/knowledge", cfg.Knowledge.ListArticles)
	api.Get("/knowledge/:id", cfg.Knowledge.GetArticle)
	api.Post("/knowledge", cfg.AuthMiddleware.Handle, editors, cfg.Knowledge.CreateArticle)
	api.Put("/knowledge/:id", cfg.AuthMiddleware.Handle, editors, cfg.Knowledge.UpdateArticle)
	api.Delete("/knowledge/:id", cfg.AuthMiddleware.Handle, editors, cfg.Knowledge.DeleteArticle)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle)

	admin.Get("/tickets", cfg.Tickets.ListTickets)
	admin.Get("/tickets/by-reference/:reference", cfg.Tickets.GetTicketByReference)
	admin.Get("/tickets/:id", cfg.Tickets.GetTicket)
	admin.Post("/tickets", editors, cfg.Tickets.CreateTicket)
	admin.Patch("/tickets/:id/status", editors, cfg.Tickets.UpdateTicketStatus)
	admin.Patch("/tickets/:id/assignee", editors, cfg.Tickets.AssignTicket)
	admin.Delete("/tickets/:id", adminOnly, cfg.Tickets.DeleteTicket)

	admin.Get("/audit", adminOnly, cfg.Audit.ListEntries)

	admin.Get("/notices", cfg.Notices.ListNotices)
	admin.Get("/notices/visible", cfg.Notices.ListVisibleNotices)
	admin.Post("/notices", adminOnly, cfg.Notices.CreateNotice)
	admin.Put("/notices/:id", adminOnly, cfg.Notices.UpdateNotice)
	admin.Delete("/notices/:id", adminOnly, cfg.Notices.DeleteNotice)

	admin.Get("/settings/maintenance", cfg.Settings.GetMaintenance)
	admin.Put("/settings/maintenance", adminOnly, cfg.Settings.SetMaintenance)
	admin.Post("/settings/maintenance/expire", adminOnly, cfg.Settings.ExpireMaintenance)

	admin.Get("/events", cfg.Events.ListEvents)
	admin.Get("/events/:id", cfg.Events.GetEvent)
	admin.Post("/events", editors, cfg.Events.CreateEvent)
	admin.Put("/events/:id", editors, cfg.Events.UpdateEvent)
	admin.Delete("/events/:id", editors, cfg.Events.DeleteEvent)

	admin.Get("/documents", cfg.Documents.ListDocuments)
	admin.Get("/documents/:id", cfg.Documents.GetDocument)
	admin.Post("/documents", editors, cfg.Documents.RegisterDocument)
	admin.Delete("/documents/:id", adminOnly, cfg.Documents.DeleteDocument)

	admin.Get("/stats/dashboard", cfg.Stats.Dashboard)

	admin.Get("/users", adminOnly, cfg.Users.ListUsers)
	admin.Post("/users", adminOnly, cfg.Users.CreateUser)
	admin.Put("/users/:id", adminOnly, cfg.Users.UpdateUser)
}
