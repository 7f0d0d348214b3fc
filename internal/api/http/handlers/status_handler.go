package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// StatusHandler answers public ticket tracker queries.
type StatusHandler struct {
	service *service.StatusService
}

// NewStatusHandler constructs handler.
func NewStatusHandler(statusService *service.StatusService) *StatusHandler {
	return &StatusHandler{service: statusService}
}

// ResolveStatus POST /api/tickets/status.
func (h *StatusHandler) ResolveStatus(c *fiber.Ctx) error {
	var req dto.StatusQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	outcome, err := h.service.Resolve(c.UserContext(), req.Query)
	if err != nil {
		return err
	}

	resp := dto.StatusQueryResponse{Found: outcome.Found, Message: outcome.Message}
	if outcome.Ticket != nil {
		resp.Ticket = &dto.TicketStatusView{
			Reference:   outcome.Ticket.Reference,
			Status:      outcome.Ticket.Status,
			Priority:    outcome.Ticket.Priority,
			Assignee:    outcome.Ticket.Assignee,
			CreatedAt:   outcome.Ticket.CreatedAt,
			UpdatedAt:   outcome.Ticket.UpdatedAt,
			Attachments: outcome.Ticket.Attachments,
		}
	}
	return c.JSON(fiber.Map{"data": resp})
}
