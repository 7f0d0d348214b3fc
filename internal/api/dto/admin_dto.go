package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// NoticeRequest is the create/update payload for admin notices.
type NoticeRequest struct {
	Title       string                `json:"title"`
	Message     string                `json:"message"`
	Severity    domain.NoticeSeverity `json:"severity"`
	Active      bool                  `json:"active"`
	TargetRoles []domain.Role         `json:"target_roles"`
	Priority    int                   `json:"priority"`
	ExpiresAt   *time.Time            `json:"expires_at"`
}

// NoticeResponse is the notice view.
type NoticeResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Message     string                `json:"message"`
	Severity    domain.NoticeSeverity `json:"severity"`
	Active      bool                  `json:"active"`
	TargetRoles []domain.Role         `json:"target_roles"`
	Priority    int                   `json:"priority"`
	ExpiresAt   *time.Time            `json:"expires_at"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// MaintenanceRequest changes maintenance mode.
type MaintenanceRequest struct {
	Enabled bool       `json:"enabled"`
	Message string     `json:"message"`
	EndsAt  *time.Time `json:"ends_at"`
}

// MaintenanceResponse reports stored and effective maintenance state.
type MaintenanceResponse struct {
	Enabled   bool       `json:"enabled"`
	Effective bool       `json:"effective"`
	Message   string     `json:"message"`
	EndsAt    *time.Time `json:"ends_at"`
	UpdatedBy string     `json:"updated_by"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// EventRequest is the create/update payload for calendar events.
type EventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	AllDay      bool      `json:"all_day"`
}

// EventResponse is the calendar event view.
type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	AllDay      bool      `json:"all_day"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DocumentRequest registers an upload.
type DocumentRequest struct {
	FileName  string `json:"file_name"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
}

// DocumentResponse is the document metadata view.
type DocumentResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	MimeType   string    `json:"mime_type"`
	SizeBytes  int64     `json:"size_bytes"`
	StorageKey string    `json:"storage_key"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuditEntryResponse is one audit log row.
type AuditEntryResponse struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Actor     string         `json:"actor"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// DashboardStatsResponse aggregates analytics counters.
type DashboardStatsResponse struct {
	TicketsByStatus   map[domain.TicketStatus]int64   `json:"tickets_by_status"`
	TicketsByPriority map[domain.TicketPriority]int64 `json:"tickets_by_priority"`
	TicketsCreated    int64                           `json:"tickets_created"`
	WindowDays        int                             `json:"window_days"`
	PublishedArticles int                             `json:"published_articles"`
	DraftArticles     int                             `json:"draft_articles"`
}
