package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

type fakeSettingsRepo struct {
	setting   domain.MaintenanceSetting
	saveCalls int
}

func (f *fakeSettingsRepo) GetMaintenance(_ context.Context) (*domain.MaintenanceSetting, error) {
	copied := f.setting
	return &copied, nil
}

func (f *fakeSettingsRepo) SaveMaintenance(_ context.Context, setting *domain.MaintenanceSetting) error {
	f.saveCalls++
	setting.UpdatedAt = time.Now()
	f.setting = *setting
	return nil
}

func TestSetMaintenance_RequiresMessageWhenEnabling(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, events.NewInMemoryDispatcher())

	_, err := svc.SetMaintenance(context.Background(), "admin@example.com", MaintenanceInput{
		Enabled: true,
		Message: "   ",
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestSetMaintenance_RejectsPastEnd(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, events.NewInMemoryDispatcher())

	past := time.Now().Add(-time.Hour)
	_, err := svc.SetMaintenance(context.Background(), "admin@example.com", MaintenanceInput{
		Enabled: true,
		Message: "back soon",
		EndsAt:  &past,
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestGetMaintenance_ElapsedEndReadsAsDisabledWithoutWriting(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	repo := &fakeSettingsRepo{setting: domain.MaintenanceSetting{
		Enabled: true,
		Message: "upgrading",
		EndsAt:  &past,
	}}
	svc := NewSettingsService(repo, events.NewInMemoryDispatcher())

	view, err := svc.GetMaintenance(context.Background())
	require.NoError(t, err)
	assert.True(t, view.Setting.Enabled, "the stored flag stays set")
	assert.False(t, view.Effective, "but the effective state is off")
	assert.Zero(t, repo.saveCalls, "reading must not write")
}

func TestExpireMaintenance_NoOpWhileWindowOpen(t *testing.T) {
	future := time.Now().Add(time.Hour)
	repo := &fakeSettingsRepo{setting: domain.MaintenanceSetting{
		Enabled: true,
		Message: "upgrading",
		EndsAt:  &future,
	}}
	svc := NewSettingsService(repo, events.NewInMemoryDispatcher())

	view, err := svc.ExpireMaintenance(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.True(t, view.Setting.Enabled)
	assert.True(t, view.Effective)
	assert.Zero(t, repo.saveCalls)
}

func TestExpireMaintenance_ClearsElapsedFlag(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	repo := &fakeSettingsRepo{setting: domain.MaintenanceSetting{
		Enabled: true,
		Message: "upgrading",
		EndsAt:  &past,
	}}
	svc := NewSettingsService(repo, events.NewInMemoryDispatcher())

	view, err := svc.ExpireMaintenance(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.False(t, view.Setting.Enabled)
	assert.False(t, view.Effective)
	assert.Equal(t, 1, repo.saveCalls)
	assert.Equal(t, "admin@example.com", repo.setting.UpdatedBy)
}
