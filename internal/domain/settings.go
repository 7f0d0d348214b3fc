package domain

import "time"

// MaintenanceSetting is the single maintenance-mode configuration row.
type MaintenanceSetting struct {
	Enabled   bool
	Message   string
	EndsAt    *time.Time
	UpdatedBy string
	UpdatedAt time.Time
}

// EffectiveEnabled reports maintenance state accounting for a scheduled
// end time. Reading never mutates the stored flag; expiry is applied
// to storage only through an explicit transition.
func (m *MaintenanceSetting) EffectiveEnabled(now time.Time) bool {
	if !m.Enabled {
		return false
	}
	if m.EndsAt != nil && !m.EndsAt.After(now) {
		return false
	}
	return true
}

// Expired reports whether the stored flag is set but the scheduled end
// has already passed.
func (m *MaintenanceSetting) Expired(now time.Time) bool {
	return m.Enabled && m.EndsAt != nil && !m.EndsAt.After(now)
}
