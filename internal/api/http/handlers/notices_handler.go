package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// NoticesHandler manages admin banner notices.
type NoticesHandler struct {
	service *service.NoticeService
}

// NewNoticesHandler constructs handler.
func NewNoticesHandler(noticeService *service.NoticeService) *NoticesHandler {
	return &NoticesHandler{service: noticeService}
}

// ListNotices GET /api/admin/notices.
func (h *NoticesHandler) ListNotices(c *fiber.Ctx) error {
	notices, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": noticeResponses(notices)})
}

// ListVisibleNotices GET /api/admin/notices/visible.
// Returns the banners the signed-in role should currently see.
func (h *NoticesHandler) ListVisibleNotices(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	notices, err := h.service.ListVisible(c.UserContext(), principal.Role)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": noticeResponses(notices)})
}

// CreateNotice POST /api/admin/notices.
func (h *NoticesHandler) CreateNotice(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.NoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	notice, err := h.service.Create(c.UserContext(), principal.User.Email, noticeInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": noticeResponse(notice)})
}

// UpdateNotice PUT /api/admin/notices/:id.
func (h *NoticesHandler) UpdateNotice(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.NoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	notice, err := h.service.Update(c.UserContext(), principal.User.Email, c.Params("id"), noticeInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": noticeResponse(notice)})
}

// DeleteNotice DELETE /api/admin/notices/:id.
func (h *NoticesHandler) DeleteNotice(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.service.Delete(c.UserContext(), principal.User.Email, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func noticeInput(req dto.NoticeRequest) service.NoticeInput {
	return service.NoticeInput{
		Title:       req.Title,
		Message:     req.Message,
		Severity:    req.Severity,
		Active:      req.Active,
		TargetRoles: req.TargetRoles,
		Priority:    req.Priority,
		ExpiresAt:   req.ExpiresAt,
	}
}

func noticeResponse(notice *domain.AdminNotice) dto.NoticeResponse {
	return dto.NoticeResponse{
		ID:          notice.ID,
		Title:       notice.Title,
		Message:     notice.Message,
		Severity:    notice.Severity,
		Active:      notice.Active,
		TargetRoles: notice.TargetRoles,
		Priority:    notice.Priority,
		ExpiresAt:   notice.ExpiresAt,
		CreatedAt:   notice.CreatedAt,
		UpdatedAt:   notice.UpdatedAt,
	}
}

func noticeResponses(notices []domain.AdminNotice) []dto.NoticeResponse {
	items := make([]dto.NoticeResponse, 0, len(notices))
	for i := range notices {
		items = append(items, noticeResponse(&notices[i]))
	}
	return items
}
