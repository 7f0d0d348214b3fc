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

// EventInput describes create/update payloads for calendar events.
type EventInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
	AllDay      bool
}

// EventService coordinates the admin calendar.
type EventService struct {
	calendar   repository.EventRepository
	dispatcher events.Dispatcher
}

// NewEventService constructs the service.
func NewEventService(calendar repository.EventRepository, dispatcher events.Dispatcher) *EventService {
	return &EventService{calendar: calendar, dispatcher: dispatcher}
}

// ListRange returns events overlapping the window.
func (s *EventService) ListRange(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error) {
	if !to.After(from) {
		return nil, apperrors.NewValidationError("range end must be after range start", nil)
	}
	return s.calendar.ListRange(ctx, from, to)
}

// Get returns a single event.
func (s *EventService) Get(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	return s.calendar.GetByID(ctx, id)
}

// Create schedules a new event.
func (s *EventService) Create(ctx context.Context, actor string, input EventInput) (*domain.CalendarEvent, error) {
	if details := validateEventInput(input); len(details) > 0 {
		return nil, apperrors.NewValidationError("event is missing required fields", details)
	}

	event := &domain.CalendarEvent{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Location:    strings.TrimSpace(input.Location),
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		AllDay:      input.AllDay,
		CreatedBy:   actor,
	}
	if err := s.calendar.Create(ctx, event); err != nil {
		return nil, err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionEventCreate, actor, map[string]any{
		"event_id": event.ID,
		"title":    event.Title,
	})
	return event, nil
}

// Update rewrites an existing event.
func (s *EventService) Update(ctx context.Context, actor, id string, input EventInput) (*domain.CalendarEvent, error) {
	if details := validateEventInput(input); len(details) > 0 {
		return nil, apperrors.NewValidationError("event is missing required fields", details)
	}

	event, err := s.calendar.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Title = strings.TrimSpace(input.Title)
	event.Description = input.Description
	event.Location = strings.TrimSpace(input.Location)
	event.StartsAt = input.StartsAt
	event.EndsAt = input.EndsAt
	event.AllDay = input.AllDay

	if err := s.calendar.Update(ctx, event); err != nil {
		return nil, err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionEventUpdate, actor, map[string]any{
		"event_id": event.ID,
	})
	return event, nil
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, actor, id string) error {
	if err := s.calendar.Delete(ctx, id); err != nil {
		return err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionEventDelete, actor, map[string]any{
		"event_id": id,
	})
	return nil
}

func validateEventInput(input EventInput) map[string]any {
	details := map[string]any{}
	if strings.TrimSpace(input.Title) == "" {
		details["title"] = "required"
	}
	if input.StartsAt.IsZero() || input.EndsAt.IsZero() {
		details["starts_at"] = "start and end are required"
	} else if !input.EndsAt.After(input.StartsAt) {
		details["ends_at"] = "must be after starts_at"
	}
	return details
}
