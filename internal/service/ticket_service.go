package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// TicketCreateInput describes a registry entry created from the admin
// dashboard (walk-ups, phone calls, records mirrored from the workflow
// system).
type TicketCreateInput struct {
	SubmitterName  string
	SubmitterEmail string
	Category       string
	Description    string
	Priority       domain.TicketPriority
	AssigneeID     *string
	DueAt          *time.Time
}

// TicketService coordinates the admin-side ticket registry. The public
// intake path never touches this; registry rows exist only for
// dashboard management and analytics.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, dispatcher: dispatcher}
}

// Create registers a ticket with a fresh reference.
func (s *TicketService) Create(ctx context.Context, actor string, input TicketCreateInput) (*domain.Ticket, error) {
	details := map[string]any{}
	if strings.TrimSpace(input.SubmitterName) == "" {
		details["submitter_name"] = "required"
	}
	if strings.TrimSpace(input.SubmitterEmail) == "" {
		details["submitter_email"] = "required"
	}
	if strings.TrimSpace(input.Category) == "" {
		details["category"] = "required"
	}
	if strings.TrimSpace(input.Description) == "" {
		details["description"] = "required"
	}
	if input.Priority != "" && !domain.ValidPriority(input.Priority) {
		details["priority"] = "unknown priority"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("ticket is missing required fields", details)
	}

	ticket := &domain.Ticket{
		Reference:      GenerateTicketReference(),
		SubmitterName:  strings.TrimSpace(input.SubmitterName),
		SubmitterEmail: strings.TrimSpace(input.SubmitterEmail),
		Category:       strings.TrimSpace(input.Category),
		Description:    strings.TrimSpace(input.Description),
		Status:         domain.TicketStatusOpen,
		Priority:       input.Priority,
		AssigneeID:     input.AssigneeID,
		DueAt:          input.DueAt,
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionTicketCreate, actor, map[string]any{
		"ticket_id": ticket.ID,
		"reference": ticket.Reference,
		"priority":  ticket.Priority,
	})
	return ticket, nil
}

// List returns registry tickets matching the filter.
func (s *TicketService) List(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	return s.tickets.ListWithFilter(ctx, filter)
}

// Get returns a single registry ticket.
func (s *TicketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

// GetByReference looks a ticket up by its public TKT reference, the
// identifier submitters quote when they call in.
func (s *TicketService) GetByReference(ctx context.Context, reference string) (*domain.Ticket, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, apperrors.NewValidationError("reference is required", nil)
	}
	return s.tickets.GetByReference(ctx, reference)
}

// UpdateStatus moves a ticket along the open -> in_progress -> resolved
// -> closed ladder; resolved tickets may be reopened.
func (s *TicketService) UpdateStatus(ctx context.Context, actor, id string, newStatus domain.TicketStatus) (*domain.Ticket, error) {
	if !domain.ValidStatus(newStatus) {
		return nil, apperrors.NewValidationError("unknown ticket status", map[string]any{"status": string(newStatus)})
	}
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket.Deleted() {
		return nil, apperrors.NewNotFound("ticket", nil)
	}
	if !domain.ValidTransition(ticket.Status, newStatus) {
		return nil, apperrors.NewConflict("invalid status transition", map[string]any{
			"from": string(ticket.Status),
			"to":   string(newStatus),
		})
	}

	oldStatus := ticket.Status
	ticket.Status = newStatus
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionTicketUpdate, actor, map[string]any{
		"ticket_id":  ticket.ID,
		"reference":  ticket.Reference,
		"old_status": oldStatus,
		"new_status": newStatus,
	})
	return ticket, nil
}

// Assign sets or clears the assignee.
func (s *TicketService) Assign(ctx context.Context, actor, id string, assigneeID *string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket.Deleted() {
		return nil, apperrors.NewNotFound("ticket", nil)
	}

	ticket.AssigneeID = assigneeID
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionTicketAssign, actor, map[string]any{
		"ticket_id": ticket.ID,
		"reference": ticket.Reference,
		"assignee":  assigneeID,
	})
	return ticket, nil
}

// SoftDelete marks the ticket deleted. Registry rows are never removed
// from storage.
func (s *TicketService) SoftDelete(ctx context.Context, actor, id string) error {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ticket.Deleted() {
		return apperrors.NewNotFound("ticket", nil)
	}

	if err := s.tickets.SoftDelete(ctx, id, time.Now().UTC()); err != nil {
		return err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionTicketDelete, actor, map[string]any{
		"ticket_id": ticket.ID,
		"reference": ticket.Reference,
	})
	return nil
}
