package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/service"
)

// StatsHandler serves the analytics dashboard.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{service: statsService}
}

// Dashboard GET /api/admin/stats/dashboard?window_days=.
func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.service.Dashboard(c.UserContext(), c.QueryInt("window_days", 30))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DashboardStatsResponse{
		TicketsByStatus:   stats.TicketsByStatus,
		TicketsByPriority: stats.TicketsByPriority,
		TicketsCreated:    stats.TicketsCreated,
		WindowDays:        stats.WindowDays,
		PublishedArticles: stats.PublishedArticles,
		DraftArticles:     stats.DraftArticles,
	}})
}
