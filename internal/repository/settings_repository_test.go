package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func newSettingsMock(t *testing.T) (pgxmock.PgxPoolIface, SettingsRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewSettingsRepository(mock)
}

func TestSettingsRepository_GetMaintenanceDefaultsWhenUnset(t *testing.T) {
	mock, repo := newSettingsMock(t)

	mock.ExpectQuery(`SELECT value, updated_by, updated_at FROM app_settings`).
		WithArgs("maintenance_mode").
		WillReturnError(pgx.ErrNoRows)

	setting, err := repo.GetMaintenance(context.Background())
	require.NoError(t, err)
	assert.False(t, setting.Enabled)
	assert.Empty(t, setting.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_GetMaintenanceDecodesValue(t *testing.T) {
	mock, repo := newSettingsMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT value, updated_by, updated_at FROM app_settings`).
		WithArgs("maintenance_mode").
		WillReturnRows(pgxmock.NewRows([]string{"value", "updated_by", "updated_at"}).
			AddRow([]byte(`{"enabled":true,"message":"back soon"}`), "admin@example.com", now))

	setting, err := repo.GetMaintenance(context.Background())
	require.NoError(t, err)
	assert.True(t, setting.Enabled)
	assert.Equal(t, "back soon", setting.Message)
	assert.Equal(t, "admin@example.com", setting.UpdatedBy)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_SaveMaintenanceUpserts(t *testing.T) {
	mock, repo := newSettingsMock(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO app_settings`).
		WithArgs("maintenance_mode", pgxmock.AnyArg(), "admin@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(now))

	setting := &domain.MaintenanceSetting{
		Enabled:   true,
		Message:   "back soon",
		UpdatedBy: "admin@example.com",
	}
	require.NoError(t, repo.SaveMaintenance(context.Background(), setting))
	assert.Equal(t, now, setting.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}
