package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMaintenanceEffectiveEnabled(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	disabled := MaintenanceSetting{Enabled: false}
	assert.False(t, disabled.EffectiveEnabled(now))
	assert.False(t, disabled.Expired(now))

	openEnded := MaintenanceSetting{Enabled: true}
	assert.True(t, openEnded.EffectiveEnabled(now))
	assert.False(t, openEnded.Expired(now))

	scheduled := MaintenanceSetting{Enabled: true, EndsAt: &future}
	assert.True(t, scheduled.EffectiveEnabled(now))
	assert.False(t, scheduled.Expired(now))

	elapsed := MaintenanceSetting{Enabled: true, EndsAt: &past}
	assert.False(t, elapsed.EffectiveEnabled(now))
	assert.True(t, elapsed.Expired(now))
}
