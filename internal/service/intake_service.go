package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math/rand"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/webhook"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

const (
	minDescriptionLen = 10
	maxDescriptionLen = 5000
	maxNameLen        = 100
	maxEmailLen       = 255
	maxCategoryLen    = 50
)

// IntakeAttachment carries raw attachment bytes from the portal form.
type IntakeAttachment struct {
	Name     string
	MimeType string
	Content  []byte
}

// IntakeInput is a normalized ticket submission.
type IntakeInput struct {
	FullName    string
	Email       string
	Category    string
	Description string
	Attachments []IntakeAttachment
	UserAgent   string
	IPAddress   string
}

// IntakeResult reports the generated reference back to the submitter.
type IntakeResult struct {
	Reference   string
	SubmittedAt time.Time
}

// IntakeSender abstracts the outbound intake webhook for testing.
type IntakeSender interface {
	Configured() bool
	Submit(ctx context.Context, payload webhook.IntakePayload) error
}

// IntakeService validates submissions and forwards them to the
// workflow-automation webhook. Nothing is persisted locally on this
// path; a failed webhook call means the user must resubmit.
type IntakeService struct {
	sender  IntakeSender
	uploads config.UploadConfig
	logger  *zap.Logger
}

// NewIntakeService constructs the service.
func NewIntakeService(sender IntakeSender, uploads config.UploadConfig, logger *zap.Logger) *IntakeService {
	return &IntakeService{sender: sender, uploads: uploads, logger: logger}
}

// Submit runs the intake pipeline: configuration check, validation,
// reference generation, webhook delivery.
func (s *IntakeService) Submit(ctx context.Context, input IntakeInput) (*IntakeResult, error) {
	// Config check comes before any validation work so a misconfigured
	// deployment fails closed immediately.
	if !s.sender.Configured() {
		return nil, apperrors.NewServiceUnavailable("ticket intake is not configured")
	}

	if details := s.validate(input); len(details) > 0 {
		return nil, apperrors.NewValidationError("ticket submission failed validation", details)
	}

	reference := GenerateTicketReference()
	now := time.Now().UTC()

	attachments := make([]webhook.IntakeAttachment, 0, len(input.Attachments))
	for _, att := range input.Attachments {
		attachments = append(attachments, webhook.IntakeAttachment{
			Name:    att.Name,
			Size:    int64(len(att.Content)),
			Type:    att.MimeType,
			Content: base64.StdEncoding.EncodeToString(att.Content),
		})
	}

	payload := webhook.IntakePayload{
		TicketReference: reference,
		FullName:        strings.TrimSpace(input.FullName),
		Email:           strings.TrimSpace(input.Email),
		Category:        strings.TrimSpace(input.Category),
		Description:     strings.TrimSpace(input.Description),
		SubmissionDate:  now,
		Status:          "Open",
		Attachments:     attachments,
		UserAgent:       input.UserAgent,
		IPAddress:       input.IPAddress,
	}

	if err := s.sender.Submit(ctx, payload); err != nil {
		switch {
		case errors.Is(err, webhook.ErrNotConfigured):
			return nil, apperrors.NewServiceUnavailable("ticket intake is not configured")
		case errors.Is(err, webhook.ErrTimeout):
			return nil, apperrors.NewUpstreamTimeout("ticket submission timed out, please try again")
		default:
			return nil, apperrors.NewUpstreamFailure("ticket submission failed, please try again")
		}
	}

	s.logger.Info("ticket submitted", zap.String("reference", reference))
	return &IntakeResult{Reference: reference, SubmittedAt: now}, nil
}

func (s *IntakeService) validate(input IntakeInput) map[string]any {
	details := map[string]any{}

	name := strings.TrimSpace(input.FullName)
	if len(name) < 1 || len(name) > maxNameLen {
		details["fullName"] = fmt.Sprintf("must be 1-%d characters", maxNameLen)
	}

	email := strings.TrimSpace(input.Email)
	if email == "" || len(email) > maxEmailLen {
		details["email"] = fmt.Sprintf("must be a valid address of at most %d characters", maxEmailLen)
	} else if _, err := mail.ParseAddress(email); err != nil {
		details["email"] = "must be a valid email address"
	}

	category := strings.TrimSpace(input.Category)
	if category == "" || len(category) > maxCategoryLen {
		details["category"] = fmt.Sprintf("must be 1-%d characters", maxCategoryLen)
	}

	description := strings.TrimSpace(input.Description)
	if len(description) < minDescriptionLen || len(description) > maxDescriptionLen {
		details["description"] = fmt.Sprintf("must be %d-%d characters", minDescriptionLen, maxDescriptionLen)
	}

	for i, att := range input.Attachments {
		field := fmt.Sprintf("attachments[%d]", i)
		if int64(len(att.Content)) > s.uploads.MaxAttachmentBytes {
			details[field] = fmt.Sprintf("exceeds maximum size of %d bytes", s.uploads.MaxAttachmentBytes)
			continue
		}
		if !s.mimeAllowed(att.MimeType) {
			details[field] = fmt.Sprintf("file type %q is not allowed", att.MimeType)
		}
	}

	return details
}

func (s *IntakeService) mimeAllowed(mimeType string) bool {
	for _, allowed := range s.uploads.AllowedMimeTypes {
		if strings.EqualFold(allowed, mimeType) {
			return true
		}
	}
	return false
}

const referenceSuffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateTicketReference produces a human-readable reference of the
// form TKT-<base36 ms timestamp>-<4 random chars>. The random suffix
// keeps same-millisecond submissions distinct; it is not a security
// token.
func GenerateTicketReference() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = referenceSuffixAlphabet[rand.Intn(len(referenceSuffixAlphabet))]
	}
	return "TKT-" + timestamp + "-" + string(suffix)
}
