package domain

import "time"

// NoticeSeverity grades admin banner notices.
type NoticeSeverity string

const (
	NoticeSeverityInfo     NoticeSeverity = "INFO"
	NoticeSeverityWarning  NoticeSeverity = "WARNING"
	NoticeSeverityCritical NoticeSeverity = "CRITICAL"
)

// AdminNotice is a banner message targeted at signed-in roles.
type AdminNotice struct {
	ID          string
	Title       string
	Message     string
	Severity    NoticeSeverity
	Active      bool
	TargetRoles []Role
	Priority    int
	ExpiresAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VisibleTo reports whether the notice should be shown to the role at
// the given instant. An empty target list means visible to everyone.
func (n *AdminNotice) VisibleTo(role Role, now time.Time) bool {
	if !n.Active {
		return false
	}
	if n.ExpiresAt != nil && !n.ExpiresAt.After(now) {
		return false
	}
	if len(n.TargetRoles) == 0 {
		return true
	}
	for _, target := range n.TargetRoles {
		if target == role {
			return true
		}
	}
	return false
}
