package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

// AuditRecorder appends audit entries for admin actions. Writes are
// fire-and-forget: a failed audit insert is logged and swallowed so the
// audited action's own outcome is never affected.
type AuditRecorder struct {
	repo   repository.AuditRepository
	logger *zap.Logger
}

// NewAuditRecorder constructs the recorder.
func NewAuditRecorder(repo repository.AuditRepository, logger *zap.Logger) *AuditRecorder {
	return &AuditRecorder{repo: repo, logger: logger}
}

// RegisterHandlers subscribes the recorder to admin-action events so
// every mutating service feeds the audit trail without a direct
// dependency on it.
func (s *AuditRecorder) RegisterHandlers(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventAdminAction, s.handleAdminAction)
}

func (s *AuditRecorder) handleAdminAction(ctx context.Context, event events.Event) error {
	s.Record(ctx, event.Action, event.Actor, event.Metadata)
	return nil
}

// Record appends one entry. Errors never propagate.
func (s *AuditRecorder) Record(ctx context.Context, action, actor string, metadata map[string]any) {
	if s == nil || s.repo == nil {
		return
	}
	entry := &domain.AuditLogEntry{
		Action:   action,
		Actor:    actor,
		Metadata: metadata,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("audit write failed",
			zap.String("action", action),
			zap.String("actor", actor),
			zap.Error(err))
	}
}

// List returns entries for compliance review, newest first.
func (s *AuditRecorder) List(ctx context.Context, filter repository.AuditFilter) ([]domain.AuditLogEntry, error) {
	return s.repo.List(ctx, filter)
}

// PublishAdminAction is the shared helper mutating services use to emit
// an audit event.
func PublishAdminAction(ctx context.Context, dispatcher events.Dispatcher, action, actor string, metadata map[string]any) {
	if dispatcher == nil {
		return
	}
	_ = dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAdminAction,
		Action:    action,
		Actor:     actor,
		Timestamp: time.Now(),
		Metadata:  metadata,
	})
}
