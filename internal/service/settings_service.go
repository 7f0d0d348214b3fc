package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// MaintenanceInput describes a maintenance-mode change.
type MaintenanceInput struct {
	Enabled bool
	Message string
	EndsAt  *time.Time
}

// SettingsService manages the admin configuration surface. Reading the
// maintenance setting is a pure query: an elapsed end time shows up as
// EffectiveEnabled=false but the stored flag only changes through
// ExpireMaintenance, an explicit transition.
type SettingsService struct {
	settings   repository.SettingsRepository
	dispatcher events.Dispatcher
}

// NewSettingsService constructs the service.
func NewSettingsService(settings repository.SettingsRepository, dispatcher events.Dispatcher) *SettingsService {
	return &SettingsService{settings: settings, dispatcher: dispatcher}
}

// MaintenanceView pairs the stored row with its effective state.
type MaintenanceView struct {
	Setting   domain.MaintenanceSetting
	Effective bool
}

// GetMaintenance returns the stored setting and its effective state.
func (s *SettingsService) GetMaintenance(ctx context.Context) (*MaintenanceView, error) {
	setting, err := s.settings.GetMaintenance(ctx)
	if err != nil {
		return nil, err
	}
	return &MaintenanceView{
		Setting:   *setting,
		Effective: setting.EffectiveEnabled(time.Now()),
	}, nil
}

// SetMaintenance stores a new maintenance state.
func (s *SettingsService) SetMaintenance(ctx context.Context, actor string, input MaintenanceInput) (*MaintenanceView, error) {
	if input.Enabled && strings.TrimSpace(input.Message) == "" {
		return nil, apperrors.NewValidationError("a user-facing message is required when enabling maintenance mode", map[string]any{
			"message": "required",
		})
	}
	if input.EndsAt != nil && !input.EndsAt.After(time.Now()) {
		return nil, apperrors.NewValidationError("scheduled end must be in the future", map[string]any{
			"ends_at": "must be in the future",
		})
	}

	setting := &domain.MaintenanceSetting{
		Enabled:   input.Enabled,
		Message:   strings.TrimSpace(input.Message),
		EndsAt:    input.EndsAt,
		UpdatedBy: actor,
	}
	if err := s.settings.SaveMaintenance(ctx, setting); err != nil {
		return nil, err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionSettingsChange, actor, map[string]any{
		"setting": "maintenance_mode",
		"enabled": setting.Enabled,
	})
	return &MaintenanceView{Setting: *setting, Effective: setting.EffectiveEnabled(time.Now())}, nil
}

// ExpireMaintenance clears the stored flag when the scheduled end has
// passed. It is a no-op while the window is still open.
func (s *SettingsService) ExpireMaintenance(ctx context.Context, actor string) (*MaintenanceView, error) {
	setting, err := s.settings.GetMaintenance(ctx)
	if err != nil {
		return nil, err
	}
	if !setting.Expired(time.Now()) {
		return &MaintenanceView{Setting: *setting, Effective: setting.EffectiveEnabled(time.Now())}, nil
	}

	setting.Enabled = false
	setting.UpdatedBy = actor
	if err := s.settings.SaveMaintenance(ctx, setting); err != nil {
		return nil, err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionSettingsChange, actor, map[string]any{
		"setting": "maintenance_mode",
		"enabled": false,
		"reason":  "scheduled_end_elapsed",
	})
	return &MaintenanceView{Setting: *setting, Effective: false}, nil
}
