package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/webhook"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// StatusOutcome is the normalized tracker result for the portal.
type StatusOutcome struct {
	Found   bool
	Ticket  *webhook.TicketStatusView
	Message string
}

const statusUnavailableMessage = "No ticket was found for that query, or the tracking service is temporarily unavailable."

// StatusLookup abstracts the outbound status webhook for testing.
type StatusLookup interface {
	Configured() bool
	Lookup(ctx context.Context, query string) (*webhook.StatusResult, error)
}

// StatusService resolves a free-text query (email or reference) via the
// status webhook. Whether the text is an email or a reference is the
// remote service's call; no interpretation happens here and nothing is
// cached between lookups.
type StatusService struct {
	lookup StatusLookup
	logger *zap.Logger
}

// NewStatusService constructs the service.
func NewStatusService(lookup StatusLookup, logger *zap.Logger) *StatusService {
	return &StatusService{lookup: lookup, logger: logger}
}

// Resolve forwards the query and maps the response. Upstream failures
// and "no such ticket" intentionally collapse into one user-facing
// outcome; the real cause is logged for operators.
func (s *StatusService) Resolve(ctx context.Context, query string) (*StatusOutcome, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("enter an email address or ticket reference", map[string]any{
			"query": "must not be empty",
		})
	}

	if !s.lookup.Configured() {
		return nil, apperrors.NewServiceUnavailable("ticket tracking is not configured")
	}

	result, err := s.lookup.Lookup(ctx, query)
	if err != nil {
		if errors.Is(err, webhook.ErrNotConfigured) {
			return nil, apperrors.NewServiceUnavailable("ticket tracking is not configured")
		}
		s.logger.Warn("status lookup failed", zap.Error(err))
		return &StatusOutcome{Found: false, Message: statusUnavailableMessage}, nil
	}

	if !result.Found {
		return &StatusOutcome{Found: false, Message: statusUnavailableMessage}, nil
	}
	return &StatusOutcome{Found: true, Ticket: &result.Ticket}, nil
}
