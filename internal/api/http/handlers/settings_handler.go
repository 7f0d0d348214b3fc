package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// SettingsHandler manages the maintenance-mode configuration.
type SettingsHandler struct {
	service *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: settingsService}
}

// GetMaintenance GET /api/admin/settings/maintenance.
func (h *SettingsHandler) GetMaintenance(c *fiber.Ctx) error {
	view, err := h.service.GetMaintenance(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": maintenanceResponse(view)})
}

// SetMaintenance PUT /api/admin/settings/maintenance.
func (h *SettingsHandler) SetMaintenance(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.MaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	view, err := h.service.SetMaintenance(c.UserContext(), principal.User.Email, service.MaintenanceInput{
		Enabled: req.Enabled,
		Message: req.Message,
		EndsAt:  req.EndsAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": maintenanceResponse(view)})
}

// ExpireMaintenance POST /api/admin/settings/maintenance/expire.
// Applies the scheduled end to storage; a no-op while the window is
// still open.
func (h *SettingsHandler) ExpireMaintenance(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	view, err := h.service.ExpireMaintenance(c.UserContext(), principal.User.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": maintenanceResponse(view)})
}

func maintenanceResponse(view *service.MaintenanceView) dto.MaintenanceResponse {
	return dto.MaintenanceResponse{
		Enabled:   view.Setting.Enabled,
		Effective: view.Effective,
		Message:   view.Setting.Message,
		EndsAt:    view.Setting.EndsAt,
		UpdatedBy: view.Setting.UpdatedBy,
		UpdatedAt: view.Setting.UpdatedAt,
	}
}
