package dto

import "time"

// SubmitTicketRequest is the public portal submission payload.
// Attachment content arrives base64-encoded.
type SubmitTicketRequest struct {
	FullName    string              `json:"fullName"`
	Email       string              `json:"email"`
	Category    string              `json:"category"`
	Description string              `json:"description"`
	Attachments []AttachmentRequest `json:"attachments"`
}

// AttachmentRequest is one uploaded file in a submission.
type AttachmentRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// SubmitTicketResponse returns the generated reference.
type SubmitTicketResponse struct {
	TicketReference string    `json:"ticketReference"`
	SubmittedAt     time.Time `json:"submittedAt"`
}

// StatusQueryRequest carries the free-text tracker query.
type StatusQueryRequest struct {
	Query string `json:"query"`
}

// StatusQueryResponse is the normalized tracker result.
type StatusQueryResponse struct {
	Found   bool              `json:"found"`
	Ticket  *TicketStatusView `json:"ticket,omitempty"`
	Message string            `json:"message,omitempty"`
}

// TicketStatusView mirrors the fields surfaced to the portal.
type TicketStatusView struct {
	Reference   string     `json:"ticketReference"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Assignee    string     `json:"assignee,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	Attachments []string   `json:"attachmentLinks,omitempty"`
}
