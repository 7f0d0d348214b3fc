package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// IntakeHandler receives public portal ticket submissions.
type IntakeHandler struct {
	service *service.IntakeService
}

// NewIntakeHandler constructs handler.
func NewIntakeHandler(intakeService *service.IntakeService) *IntakeHandler {
	return &IntakeHandler{service: intakeService}
}

// SubmitTicket POST /api/tickets.
func (h *IntakeHandler) SubmitTicket(c *fiber.Ctx) error {
	var req dto.SubmitTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	attachments := make([]service.IntakeAttachment, 0, len(req.Attachments))
	for i, att := range req.Attachments {
		content, err := base64.StdEncoding.DecodeString(att.Content)
		if err != nil {
			return apperrors.NewValidationError("attachment content must be base64 encoded", map[string]any{
				"attachments": i,
			})
		}
		attachments = append(attachments, service.IntakeAttachment{
			Name:     att.Name,
			MimeType: att.Type,
			Content:  content,
		})
	}

	input := service.IntakeInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Category:    req.Category,
		Description: req.Description,
		Attachments: attachments,
		UserAgent:   c.Get("User-Agent"),
		IPAddress:   c.IP(),
	}
	result, err := h.service.Submit(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.SubmitTicketResponse{
		TicketReference: result.Reference,
		SubmittedAt:     result.SubmittedAt,
	}})
}
