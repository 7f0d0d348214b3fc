package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

type fakeTicketRepo struct {
	tickets map[string]*domain.Ticket
	nextID  int
}

func (f *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	if f.tickets == nil {
		f.tickets = map[string]*domain.Ticket{}
	}
	f.nextID++
	ticket.ID = fmt.Sprintf("tkt-%d", f.nextID)
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt
	copied := *ticket
	f.tickets[ticket.ID] = &copied
	return nil
}

func (f *fakeTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	if _, ok := f.tickets[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *ticket
	f.tickets[ticket.ID] = &copied
	return nil
}

func (f *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	ticket, ok := f.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *ticket
	return &copied, nil
}

func (f *fakeTicketRepo) GetByReference(_ context.Context, reference string) (*domain.Ticket, error) {
	for _, ticket := range f.tickets {
		if ticket.Reference == reference {
			copied := *ticket
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeTicketRepo) ListWithFilter(_ context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	var out []domain.Ticket
	for _, ticket := range f.tickets {
		if !filter.IncludeDeleted && ticket.Deleted() {
			continue
		}
		out = append(out, *ticket)
	}
	return out, nil
}

func (f *fakeTicketRepo) SoftDelete(_ context.Context, id string, deletedAt time.Time) error {
	ticket, ok := f.tickets[id]
	if !ok || ticket.Deleted() {
		return pgx.ErrNoRows
	}
	ticket.DeletedAt = &deletedAt
	return nil
}

func (f *fakeTicketRepo) CountByStatus(_ context.Context) ([]repository.StatusCount, error) {
	counts := map[domain.TicketStatus]int64{}
	for _, ticket := range f.tickets {
		if !ticket.Deleted() {
			counts[ticket.Status]++
		}
	}
	var out []repository.StatusCount
	for status, count := range counts {
		out = append(out, repository.StatusCount{Status: status, Count: count})
	}
	return out, nil
}

func (f *fakeTicketRepo) CountByPriority(_ context.Context) ([]repository.PriorityCount, error) {
	counts := map[domain.TicketPriority]int64{}
	for _, ticket := range f.tickets {
		if !ticket.Deleted() {
			counts[ticket.Priority]++
		}
	}
	var out []repository.PriorityCount
	for priority, count := range counts {
		out = append(out, repository.PriorityCount{Priority: priority, Count: count})
	}
	return out, nil
}

func (f *fakeTicketRepo) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var count int64
	for _, ticket := range f.tickets {
		if !ticket.Deleted() && !ticket.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func newRegistryTicket(t *testing.T, svc *TicketService) *domain.Ticket {
	t.Helper()
	ticket, err := svc.Create(context.Background(), "admin@example.com", TicketCreateInput{
		SubmitterName:  "Dana",
		SubmitterEmail: "dana@example.com",
		Category:       "software",
		Description:    "cannot open spreadsheets",
	})
	require.NoError(t, err)
	return ticket
}

func TestTicketCreate_DefaultsAndReference(t *testing.T) {
	svc := NewTicketService(&fakeTicketRepo{}, events.NewInMemoryDispatcher())

	ticket := newRegistryTicket(t, svc)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, domain.TicketPriorityMedium, ticket.Priority)
	assert.Contains(t, ticket.Reference, "TKT-")
}

func TestTicketUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name     string
		path     []domain.TicketStatus
		wantCode string
	}{
		{name: "open to in_progress", path: []domain.TicketStatus{domain.TicketStatusInProgress}},
		{name: "full ladder", path: []domain.TicketStatus{domain.TicketStatusInProgress, domain.TicketStatusResolved, domain.TicketStatusClosed}},
		{name: "reopen from resolved", path: []domain.TicketStatus{domain.TicketStatusResolved, domain.TicketStatusInProgress}},
		{name: "closed is terminal", path: []domain.TicketStatus{domain.TicketStatusClosed, domain.TicketStatusInProgress}, wantCode: "CONFLICT"},
		{name: "no self transition", path: []domain.TicketStatus{domain.TicketStatusOpen}, wantCode: "CONFLICT"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewTicketService(&fakeTicketRepo{}, events.NewInMemoryDispatcher())
			ticket := newRegistryTicket(t, svc)

			var err error
			for _, next := range tc.path {
				_, err = svc.UpdateStatus(context.Background(), "admin@example.com", ticket.ID, next)
				if err != nil {
					break
				}
			}
			if tc.wantCode == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tc.wantCode, apperrors.ToDomainError(err).Code)
			}
		})
	}
}

func TestTicketUpdateStatus_UnknownStatus(t *testing.T) {
	svc := NewTicketService(&fakeTicketRepo{}, events.NewInMemoryDispatcher())
	ticket := newRegistryTicket(t, svc)

	_, err := svc.UpdateStatus(context.Background(), "admin@example.com", ticket.ID, "ARCHIVED")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestTicketSoftDelete_HidesTicket(t *testing.T) {
	repo := &fakeTicketRepo{}
	svc := NewTicketService(repo, events.NewInMemoryDispatcher())
	ticket := newRegistryTicket(t, svc)

	require.NoError(t, svc.SoftDelete(context.Background(), "admin@example.com", ticket.ID))

	// The row survives in storage but every service path reports it gone.
	_, err := svc.UpdateStatus(context.Background(), "admin@example.com", ticket.ID, domain.TicketStatusClosed)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	err = svc.SoftDelete(context.Background(), "admin@example.com", ticket.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	visible, err := svc.List(context.Background(), repository.TicketFilter{})
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := svc.List(context.Background(), repository.TicketFilter{IncludeDeleted: true})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTicketGetByReference(t *testing.T) {
	svc := NewTicketService(&fakeTicketRepo{}, events.NewInMemoryDispatcher())
	ticket := newRegistryTicket(t, svc)

	found, err := svc.GetByReference(context.Background(), " "+ticket.Reference+" ")
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, found.ID)

	_, err = svc.GetByReference(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, err = svc.GetByReference(context.Background(), "TKT-missing-0000")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
