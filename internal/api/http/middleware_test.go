package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/observability"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

type errorEnvelope struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newTestApp() *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), time.Second)
	return app
}

func decodeError(t *testing.T, resp *stdhttp.Response) errorEnvelope {
	t.Helper()
	var envelope errorEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func TestErrorMiddleware_DomainErrorEnvelope(t *testing.T) {
	app := newTestApp()
	app.Get("/boom", func(_ *fiber.Ctx) error {
		return apperrors.NewValidationError("bad input", map[string]any{"field": "required"})
	})

	resp, err := app.Test(httptest.NewRequest(stdhttp.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)

	envelope := decodeError(t, resp)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
	assert.Equal(t, "bad input", envelope.Error.Message)
	assert.Equal(t, "required", envelope.Error.Details["field"])
}

func TestErrorMiddleware_PanicBecomesInternalError(t *testing.T) {
	app := newTestApp()
	app.Get("/panic", func(_ *fiber.Ctx) error {
		panic("unexpected")
	})

	resp, err := app.Test(httptest.NewRequest(stdhttp.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp).Error.Code)
}

type gateSettingsRepo struct {
	setting domain.MaintenanceSetting
}

func (f *gateSettingsRepo) GetMaintenance(_ context.Context) (*domain.MaintenanceSetting, error) {
	copied := f.setting
	return &copied, nil
}

func (f *gateSettingsRepo) SaveMaintenance(_ context.Context, setting *domain.MaintenanceSetting) error {
	f.setting = *setting
	return nil
}

func TestMaintenanceGate(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	tests := []struct {
		name       string
		setting    domain.MaintenanceSetting
		wantStatus int
	}{
		{
			name:       "maintenance off lets traffic through",
			setting:    domain.MaintenanceSetting{Enabled: false},
			wantStatus: stdhttp.StatusOK,
		},
		{
			name:       "maintenance on blocks with 503",
			setting:    domain.MaintenanceSetting{Enabled: true, Message: "back soon"},
			wantStatus: stdhttp.StatusServiceUnavailable,
		},
		{
			name:       "elapsed window lets traffic through",
			setting:    domain.MaintenanceSetting{Enabled: true, Message: "back soon", EndsAt: &past},
			wantStatus: stdhttp.StatusOK,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			settings := service.NewSettingsService(&gateSettingsRepo{setting: tc.setting}, events.NewInMemoryDispatcher())

			app := newTestApp()
			app.Post("/api/tickets", MaintenanceGate(settings, zap.NewNop()), func(c *fiber.Ctx) error {
				return c.JSON(fiber.Map{"data": "ok"})
			})

			resp, err := app.Test(httptest.NewRequest(stdhttp.MethodPost, "/api/tickets", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			if tc.wantStatus == stdhttp.StatusServiceUnavailable {
				envelope := decodeError(t, resp)
				assert.Equal(t, "SERVICE_UNAVAILABLE", envelope.Error.Code)
				assert.Equal(t, "back soon", envelope.Error.Message)
			}
		})
	}
}
