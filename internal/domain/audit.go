package domain

import "time"

// AuditLogEntry is an immutable record of an admin action. Entries are
// append-only and never edited after the initial write.
type AuditLogEntry struct {
	ID        string
	Action    string
	Actor     string
	Metadata  map[string]any
	CreatedAt time.Time
}
