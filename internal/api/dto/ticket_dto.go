package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// CreateTicketRequest registers a ticket in the admin registry.
type CreateTicketRequest struct {
	SubmitterName  string                `json:"submitter_name"`
	SubmitterEmail string                `json:"submitter_email"`
	Category       string                `json:"category"`
	Description    string                `json:"description"`
	Priority       domain.TicketPriority `json:"priority"`
	AssigneeID     *string               `json:"assignee_id"`
	DueAt          *time.Time            `json:"due_at"`
}

// UpdateTicketStatusRequest moves a ticket to a new status.
type UpdateTicketStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// AssignTicketRequest sets or clears the assignee.
type AssignTicketRequest struct {
	AssigneeID *string `json:"assignee_id"`
}

// TicketResponse is the registry ticket view.
type TicketResponse struct {
	ID             string                `json:"id"`
	Reference      string                `json:"reference"`
	SubmitterName  string                `json:"submitter_name"`
	SubmitterEmail string                `json:"submitter_email"`
	Category       string                `json:"category"`
	Description    string                `json:"description"`
	Status         domain.TicketStatus   `json:"status"`
	Priority       domain.TicketPriority `json:"priority"`
	AssigneeID     *string               `json:"assignee_id"`
	DueAt          *time.Time            `json:"due_at"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
	DeletedAt      *time.Time            `json:"deleted_at,omitempty"`
}
