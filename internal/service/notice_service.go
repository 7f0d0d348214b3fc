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

// NoticeInput describes create/update payloads for admin notices.
type NoticeInput struct {
	Title       string
	Message     string
	Severity    domain.NoticeSeverity
	Active      bool
	TargetRoles []domain.Role
	Priority    int
	ExpiresAt   *time.Time
}

// NoticeService coordinates admin banner notices.
type NoticeService struct {
	notices    repository.NoticeRepository
	dispatcher events.Dispatcher
}

// NewNoticeService constructs the service.
func NewNoticeService(notices repository.NoticeRepository, dispatcher events.Dispatcher) *NoticeService {
	return &NoticeService{notices: notices, dispatcher: dispatcher}
}

// ListAll returns every notice for admin management.
func (s *NoticeService) ListAll(ctx context.Context) ([]domain.AdminNotice, error) {
	return s.notices.List(ctx)
}

// ListVisible returns notices the given role should currently see,
// filtered by active flag, expiry and role targeting.
func (s *NoticeService) ListVisible(ctx context.Context, role domain.Role) ([]domain.AdminNotice, error) {
	all, err := s.notices.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	visible := make([]domain.AdminNotice, 0, len(all))
	for _, notice := range all {
		if notice.VisibleTo(role, now) {
			visible = append(visible, notice)
		}
	}
	return visible, nil
}

// Create stores a new notice.
func (s *NoticeService) Create(ctx context.Context, actor string, input NoticeInput) (*domain.AdminNotice, error) {
	if details := validateNoticeInput(input); len(details) > 0 {
		return nil, apperrors.NewValidationError("notice is missing required fields", details)
	}

	notice := &domain.AdminNotice{
		Title:       strings.TrimSpace(input.Title),
		Message:     strings.TrimSpace(input.Message),
		Severity:    input.Severity,
		Active:      input.Active,
		TargetRoles: input.TargetRoles,
		Priority:    input.Priority,
		ExpiresAt:   input.ExpiresAt,
	}
	if notice.Severity == "" {
		notice.Severity = domain.NoticeSeverityInfo
	}
	if err := s.notices.Create(ctx, notice); err != nil {
		return nil, err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionNoticeCreate, actor, map[string]any{
		"notice_id": notice.ID,
		"title":     notice.Title,
	})
	return notice, nil
}

// Update rewrites an existing notice.
func (s *NoticeService) Update(ctx context.Context, actor, id string, input NoticeInput) (*domain.AdminNotice, error) {
	if details := validateNoticeInput(input); len(details) > 0 {
		return nil, apperrors.NewValidationError("notice is missing required fields", details)
	}

	notice, err := s.notices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	notice.Title = strings.TrimSpace(input.Title)
	notice.Message = strings.TrimSpace(input.Message)
	notice.Severity = input.Severity
	notice.Active = input.Active
	notice.TargetRoles = input.TargetRoles
	notice.Priority = input.Priority
	notice.ExpiresAt = input.ExpiresAt

	if err := s.notices.Update(ctx, notice); err != nil {
		return nil, err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionNoticeUpdate, actor, map[string]any{
		"notice_id": notice.ID,
	})
	return notice, nil
}

// Delete removes a notice.
func (s *NoticeService) Delete(ctx context.Context, actor, id string) error {
	if err := s.notices.Delete(ctx, id); err != nil {
		return err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionNoticeDelete, actor, map[string]any{
		"notice_id": id,
	})
	return nil
}

func validateNoticeInput(input NoticeInput) map[string]any {
	details := map[string]any{}
	if strings.TrimSpace(input.Title) == "" {
		details["title"] = "required"
	}
	if strings.TrimSpace(input.Message) == "" {
		details["message"] = "required"
	}
	for _, role := range input.TargetRoles {
		if !domain.ValidRole(role) {
			details["target_roles"] = "unknown role"
			break
		}
	}
	return details
}
