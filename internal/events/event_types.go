package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAdminAction EventType = "admin_action"
)

// Admin action names carried by EventAdminAction events. Every mutating
// dashboard operation publishes one of these.
const (
	ActionLogin          = "auth.login"
	ActionTicketCreate   = "ticket.create"
	ActionTicketUpdate   = "ticket.update"
	ActionTicketAssign   = "ticket.assign"
	ActionTicketDelete   = "ticket.delete"
	ActionArticleCreate  = "article.create"
	ActionArticleUpdate  = "article.update"
	ActionArticleDelete  = "article.delete"
	ActionNoticeCreate   = "notice.create"
	ActionNoticeUpdate   = "notice.update"
	ActionNoticeDelete   = "notice.delete"
	ActionEventCreate    = "event.create"
	ActionEventUpdate    = "event.update"
	ActionEventDelete    = "event.delete"
	ActionDocumentCreate = "document.create"
	ActionDocumentDelete = "document.delete"
	ActionSettingsChange = "settings.change"
	ActionUserCreate     = "user.create"
	ActionUserUpdate     = "user.update"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Action    string         `json:"action"`
	Actor     string         `json:"actor"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}
