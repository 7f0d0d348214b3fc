package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
)

func TestDashboard_CountsTicketsAndArticles(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	ticketRepo := &fakeTicketRepo{}
	articleRepo := &fakeArticleRepo{}
	tickets := NewTicketService(ticketRepo, dispatcher)
	articles := NewArticleService(articleRepo, dispatcher)

	first := newRegistryTicket(t, tickets)
	newRegistryTicket(t, tickets)
	_, err := tickets.UpdateStatus(context.Background(), "admin@example.com", first.ID, domain.TicketStatusResolved)
	require.NoError(t, err)

	now := time.Now()
	_, err = articles.Create(context.Background(), "admin@example.com", ArticleInput{
		Title: "a", Content: "c", Category: "misc", PublishedAt: &now,
	})
	require.NoError(t, err)
	_, err = articles.Create(context.Background(), "admin@example.com", ArticleInput{
		Title: "b", Content: "c", Category: "misc",
	})
	require.NoError(t, err)

	svc := NewStatsService(ticketRepo, articleRepo)
	stats, err := svc.Dashboard(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 30, stats.WindowDays, "non-positive windows fall back to the default")
	assert.Equal(t, int64(2), stats.TicketsCreated)
	assert.Equal(t, int64(1), stats.TicketsByStatus[domain.TicketStatusOpen])
	assert.Equal(t, int64(1), stats.TicketsByStatus[domain.TicketStatusResolved])
	assert.Equal(t, int64(2), stats.TicketsByPriority[domain.TicketPriorityMedium])
	assert.Equal(t, 1, stats.PublishedArticles)
	assert.Equal(t, 1, stats.DraftArticles)
}
