package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// DocumentInput describes an upload registration. The blob itself is
// stored externally; this service records metadata and mints the
// storage key the uploader should write to.
type DocumentInput struct {
	FileName  string
	MimeType  string
	SizeBytes int64
}

// DocumentService coordinates the document library.
type DocumentService struct {
	documents  repository.DocumentRepository
	uploads    config.UploadConfig
	dispatcher events.Dispatcher
}

// NewDocumentService constructs the service.
func NewDocumentService(documents repository.DocumentRepository, uploads config.UploadConfig, dispatcher events.Dispatcher) *DocumentService {
	return &DocumentService{documents: documents, uploads: uploads, dispatcher: dispatcher}
}

// List returns document metadata, newest first.
func (s *DocumentService) List(ctx context.Context, limit, offset int) ([]domain.Document, error) {
	return s.documents.List(ctx, limit, offset)
}

// Get returns one document's metadata.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.documents.GetByID(ctx, id)
}

// Register validates and stores upload metadata. Uploads follow the
// same size and MIME constraints as intake attachments.
func (s *DocumentService) Register(ctx context.Context, actor string, input DocumentInput) (*domain.Document, error) {
	details := map[string]any{}
	if strings.TrimSpace(input.FileName) == "" {
		details["file_name"] = "required"
	}
	if input.SizeBytes <= 0 || input.SizeBytes > s.uploads.MaxAttachmentBytes {
		details["size_bytes"] = fmt.Sprintf("must be 1-%d bytes", s.uploads.MaxAttachmentBytes)
	}
	if !mimeInList(s.uploads.AllowedMimeTypes, input.MimeType) {
		details["mime_type"] = fmt.Sprintf("file type %q is not allowed", input.MimeType)
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("document upload rejected", details)
	}

	doc := &domain.Document{
		FileName:   strings.TrimSpace(input.FileName),
		MimeType:   input.MimeType,
		SizeBytes:  input.SizeBytes,
		StorageKey: "documents/" + uuid.NewString(),
		UploadedBy: actor,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionDocumentCreate, actor, map[string]any{
		"document_id": doc.ID,
		"file_name":   doc.FileName,
	})
	return doc, nil
}

// Delete removes document metadata.
func (s *DocumentService) Delete(ctx context.Context, actor, id string) error {
	if err := s.documents.Delete(ctx, id); err != nil {
		return err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionDocumentDelete, actor, map[string]any{
		"document_id": id,
	})
	return nil
}

func mimeInList(allowed []string, mimeType string) bool {
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, mimeType) {
			return true
		}
	}
	return false
}
