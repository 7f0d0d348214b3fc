package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/service"
)

// AuditHandler exposes the audit trail for compliance review.
type AuditHandler struct {
	recorder *service.AuditRecorder
}

// NewAuditHandler constructs handler.
func NewAuditHandler(recorder *service.AuditRecorder) *AuditHandler {
	return &AuditHandler{recorder: recorder}
}

// ListEntries GET /api/admin/audit.
func (h *AuditHandler) ListEntries(c *fiber.Ctx) error {
	filter := repository.AuditFilter{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	if actor := c.Query("actor"); actor != "" {
		filter.Actor = &actor
	}
	if action := c.Query("action"); action != "" {
		filter.Action = &action
	}
	if from, err := time.Parse(time.RFC3339, c.Query("from")); err == nil {
		filter.From = &from
	}
	if to, err := time.Parse(time.RFC3339, c.Query("to")); err == nil {
		filter.To = &to
	}

	entries, err := h.recorder.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.AuditEntryResponse{
			ID:        entry.ID,
			Action:    entry.Action,
			Actor:     entry.Actor,
			Metadata:  entry.Metadata,
			CreatedAt: entry.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}
