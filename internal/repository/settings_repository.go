package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/persistence"
)

const maintenanceKey = "maintenance_mode"

// SettingsRepository stores admin configuration as key/value rows.
type SettingsRepository interface {
	GetMaintenance(ctx context.Context) (*domain.MaintenanceSetting, error)
	SaveMaintenance(ctx context.Context, setting *domain.MaintenanceSetting) error
}

type settingsRepository struct {
	db persistence.Querier
}

// NewSettingsRepository instantiates repository.
func NewSettingsRepository(db persistence.Querier) SettingsRepository {
	return &settingsRepository{db: db}
}

type maintenanceValue struct {
	Enabled bool       `json:"enabled"`
	Message string     `json:"message"`
	EndsAt  *time.Time `json:"ends_at,omitempty"`
}

// GetMaintenance returns the stored maintenance row, or a disabled
// default when the row has never been written.
func (r *settingsRepository) GetMaintenance(ctx context.Context) (*domain.MaintenanceSetting, error) {
	const query = `SELECT value, updated_by, updated_at FROM app_settings WHERE key=$1`
	var raw []byte
	var setting domain.MaintenanceSetting
	err := r.db.QueryRow(ctx, query, maintenanceKey).Scan(&raw, &setting.UpdatedBy, &setting.UpdatedAt)
	if err == pgx.ErrNoRows {
		return &domain.MaintenanceSetting{}, nil
	}
	if err != nil {
		return nil, err
	}

	var value maintenanceValue
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	setting.Enabled = value.Enabled
	setting.Message = value.Message
	setting.EndsAt = value.EndsAt
	return &setting, nil
}

// SaveMaintenance upserts the maintenance row.
func (r *settingsRepository) SaveMaintenance(ctx context.Context, setting *domain.MaintenanceSetting) error {
	raw, err := json.Marshal(maintenanceValue{
		Enabled: setting.Enabled,
		Message: setting.Message,
		EndsAt:  setting.EndsAt,
	})
	if err != nil {
		return err
	}

	const query = `
        INSERT INTO app_settings (key, value, updated_by)
        VALUES ($1,$2,$3)
        ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_by=EXCLUDED.updated_by, updated_at=NOW()
        RETURNING updated_at`
	return r.db.QueryRow(ctx, query, maintenanceKey, raw, setting.UpdatedBy).Scan(&setting.UpdatedAt)
}
