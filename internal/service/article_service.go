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

// ArticleInput describes create/update payloads for knowledge articles.
// PublishedAt is set explicitly by the caller; a nil value keeps the
// article in draft.
type ArticleInput struct {
	Title       string
	Content     string
	Category    string
	Tags        []string
	PublishedAt *time.Time
}

// ArticleService coordinates knowledge-base workflows.
type ArticleService struct {
	articles   repository.ArticleRepository
	dispatcher events.Dispatcher
}

// NewArticleService constructs the service.
func NewArticleService(articles repository.ArticleRepository, dispatcher events.Dispatcher) *ArticleService {
	return &ArticleService{articles: articles, dispatcher: dispatcher}
}

// List returns articles, optionally restricted to published ones.
func (s *ArticleService) List(ctx context.Context, publishedOnly bool) ([]domain.KnowledgeArticle, error) {
	return s.articles.List(ctx, publishedOnly)
}

// Get returns a single article.
func (s *ArticleService) Get(ctx context.Context, id string) (*domain.KnowledgeArticle, error) {
	return s.articles.GetByID(ctx, id)
}

// Create stores a new article authored by actor.
func (s *ArticleService) Create(ctx context.Context, actor string, input ArticleInput) (*domain.KnowledgeArticle, error) {
	if details := validateArticleInput(input); len(details) > 0 {
		return nil, apperrors.NewValidationError("title, content and category are required", details)
	}

	article := &domain.KnowledgeArticle{
		Title:       strings.TrimSpace(input.Title),
		Content:     input.Content,
		Category:    strings.TrimSpace(input.Category),
		Tags:        normalizeTags(input.Tags),
		Author:      actor,
		PublishedAt: input.PublishedAt,
	}
	if err := s.articles.Create(ctx, article); err != nil {
		return nil, err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionArticleCreate, actor, map[string]any{
		"article_id": article.ID,
		"title":      article.Title,
		"published":  article.Published(),
	})
	return article, nil
}

// Update rewrites an existing article.
func (s *ArticleService) Update(ctx context.Context, actor, id string, input ArticleInput) (*domain.KnowledgeArticle, error) {
	if details := validateArticleInput(input); len(details) > 0 {
		return nil, apperrors.NewValidationError("title, content and category are required", details)
	}

	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	article.Title = strings.TrimSpace(input.Title)
	article.Content = input.Content
	article.Category = strings.TrimSpace(input.Category)
	article.Tags = normalizeTags(input.Tags)
	article.PublishedAt = input.PublishedAt

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionArticleUpdate, actor, map[string]any{
		"article_id": article.ID,
		"published":  article.Published(),
	})
	return article, nil
}

// Delete hard-deletes an article. Unlike tickets there is no recovery
// path for articles.
func (s *ArticleService) Delete(ctx context.Context, actor, id string) error {
	if err := s.articles.Delete(ctx, id); err != nil {
		return err
	}
	PublishAdminAction(ctx, s.dispatcher, events.ActionArticleDelete, actor, map[string]any{
		"article_id": id,
	})
	return nil
}

func validateArticleInput(input ArticleInput) map[string]any {
	details := map[string]any{}
	if strings.TrimSpace(input.Title) == "" {
		details["title"] = "required"
	}
	if strings.TrimSpace(input.Content) == "" {
		details["content"] = "required"
	}
	if strings.TrimSpace(input.Category) == "" {
		details["category"] = "required"
	}
	return details
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
