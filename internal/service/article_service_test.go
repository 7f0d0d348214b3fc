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
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

type fakeArticleRepo struct {
	articles map[string]*domain.KnowledgeArticle
	nextID   int
}

func (f *fakeArticleRepo) Create(_ context.Context, article *domain.KnowledgeArticle) error {
	if f.articles == nil {
		f.articles = map[string]*domain.KnowledgeArticle{}
	}
	f.nextID++
	article.ID = fmt.Sprintf("art-%d", f.nextID)
	article.CreatedAt = time.Now()
	article.UpdatedAt = article.CreatedAt
	copied := *article
	f.articles[article.ID] = &copied
	return nil
}

func (f *fakeArticleRepo) Update(_ context.Context, article *domain.KnowledgeArticle) error {
	if _, ok := f.articles[article.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *article
	f.articles[article.ID] = &copied
	return nil
}

func (f *fakeArticleRepo) GetByID(_ context.Context, id string) (*domain.KnowledgeArticle, error) {
	article, ok := f.articles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *article
	return &copied, nil
}

func (f *fakeArticleRepo) List(_ context.Context, publishedOnly bool) ([]domain.KnowledgeArticle, error) {
	var out []domain.KnowledgeArticle
	for _, article := range f.articles {
		if publishedOnly && !article.Published() {
			continue
		}
		out = append(out, *article)
	}
	return out, nil
}

func (f *fakeArticleRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.articles[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.articles, id)
	return nil
}

func TestArticleCreate_RequiresTitleContentCategory(t *testing.T) {
	svc := NewArticleService(&fakeArticleRepo{}, events.NewInMemoryDispatcher())

	_, err := svc.Create(context.Background(), "admin@example.com", ArticleInput{Title: "  "})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "title")
	assert.Contains(t, domainErr.Details, "content")
	assert.Contains(t, domainErr.Details, "category")
}

func TestArticleCreate_DraftAndPublished(t *testing.T) {
	repo := &fakeArticleRepo{}
	svc := NewArticleService(repo, events.NewInMemoryDispatcher())

	draft, err := svc.Create(context.Background(), "admin@example.com", ArticleInput{
		Title:    "Printer jams",
		Content:  "Open the tray and remove the stuck page.",
		Category: "hardware",
		Tags:     []string{" printers ", "", "office"},
	})
	require.NoError(t, err)
	assert.False(t, draft.Published())
	assert.Equal(t, []string{"printers", "office"}, draft.Tags)
	assert.Equal(t, "admin@example.com", draft.Author)

	now := time.Now()
	published, err := svc.Create(context.Background(), "admin@example.com", ArticleInput{
		Title:       "VPN setup",
		Content:     "Install the client and sign in.",
		Category:    "networking",
		PublishedAt: &now,
	})
	require.NoError(t, err)
	assert.True(t, published.Published())

	publishedOnly, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, publishedOnly, 1)

	all, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestArticleUpdate_UnknownIDIsNotFound(t *testing.T) {
	svc := NewArticleService(&fakeArticleRepo{}, events.NewInMemoryDispatcher())

	_, err := svc.Update(context.Background(), "admin@example.com", "missing", ArticleInput{
		Title:    "t",
		Content:  "c",
		Category: "misc",
	})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
