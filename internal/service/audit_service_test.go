package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

type fakeAuditRepo struct {
	entries []domain.AuditLogEntry
	err     error
}

func (f *fakeAuditRepo) Create(_ context.Context, entry *domain.AuditLogEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditRepo) List(_ context.Context, _ repository.AuditFilter) ([]domain.AuditLogEntry, error) {
	return f.entries, f.err
}

func TestAuditRecorder_RecordsDispatchedActions(t *testing.T) {
	repo := &fakeAuditRepo{}
	recorder := NewAuditRecorder(repo, zap.NewNop())
	dispatcher := events.NewInMemoryDispatcher()
	recorder.RegisterHandlers(dispatcher)

	PublishAdminAction(context.Background(), dispatcher, events.ActionArticleCreate, "admin@example.com", map[string]any{
		"article_id": "a1",
	})

	require.Len(t, repo.entries, 1)
	assert.Equal(t, events.ActionArticleCreate, repo.entries[0].Action)
	assert.Equal(t, "admin@example.com", repo.entries[0].Actor)
	assert.Equal(t, "a1", repo.entries[0].Metadata["article_id"])
}

func TestAuditRecorder_WriteFailureDoesNotPropagate(t *testing.T) {
	repo := &fakeAuditRepo{err: errors.New("disk full")}
	recorder := NewAuditRecorder(repo, zap.NewNop())
	dispatcher := events.NewInMemoryDispatcher()
	recorder.RegisterHandlers(dispatcher)

	// The publishing side must never observe the audit failure.
	assert.NotPanics(t, func() {
		PublishAdminAction(context.Background(), dispatcher, events.ActionTicketDelete, "admin@example.com", nil)
	})
	assert.NotPanics(t, func() {
		recorder.Record(context.Background(), events.ActionLogin, "admin@example.com", nil)
	})
}

func TestAuditedActionSucceedsWhenAuditStoreIsDown(t *testing.T) {
	auditRepo := &fakeAuditRepo{err: errors.New("audit store unreachable")}
	recorder := NewAuditRecorder(auditRepo, zap.NewNop())
	dispatcher := events.NewInMemoryDispatcher()
	recorder.RegisterHandlers(dispatcher)

	articles := &fakeArticleRepo{}
	svc := NewArticleService(articles, dispatcher)

	article, err := svc.Create(context.Background(), "admin@example.com", ArticleInput{
		Title:    "VPN setup",
		Content:  "Install the client and sign in.",
		Category: "networking",
	})
	require.NoError(t, err, "a failed audit write must not fail the admin action")
	assert.NotNil(t, article)
}
