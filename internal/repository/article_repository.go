package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/persistence"
)

// ArticleRepository encapsulates knowledge-base persistence. Articles
// are the one record kind with a hard delete.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.KnowledgeArticle) error
	Update(ctx context.Context, article *domain.KnowledgeArticle) error
	GetByID(ctx context.Context, id string) (*domain.KnowledgeArticle, error)
	List(ctx context.Context, publishedOnly bool) ([]domain.KnowledgeArticle, error)
	Delete(ctx context.Context, id string) error
}

type articleRepository struct {
	db persistence.Querier
}

// NewArticleRepository instantiates repository.
func NewArticleRepository(db persistence.Querier) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *domain.KnowledgeArticle) error {
	const query = `
        INSERT INTO knowledge_articles (title, content, category, tags, author, published_at)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		article.Title,
		article.Content,
		article.Category,
		article.Tags,
		article.Author,
		article.PublishedAt,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
}

func (r *articleRepository) Update(ctx context.Context, article *domain.KnowledgeArticle) error {
	const query = `
        UPDATE knowledge_articles SET title=$1, content=$2, category=$3, tags=$4, published_at=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.db.Exec(ctx, query,
		article.Title,
		article.Content,
		article.Category,
		article.Tags,
		article.PublishedAt,
		article.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *articleRepository) GetByID(ctx context.Context, id string) (*domain.KnowledgeArticle, error) {
	const query = `
        SELECT id, title, content, category, tags, author, published_at, created_at, updated_at
        FROM knowledge_articles WHERE id=$1`
	var article domain.KnowledgeArticle
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.Category,
		&article.Tags,
		&article.Author,
		&article.PublishedAt,
		&article.CreatedAt,
		&article.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) List(ctx context.Context, publishedOnly bool) ([]domain.KnowledgeArticle, error) {
	query := `
        SELECT id, title, content, category, tags, author, published_at, created_at, updated_at
        FROM knowledge_articles`
	if publishedOnly {
		query += ` WHERE published_at IS NOT NULL`
	}
	query += ` ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.KnowledgeArticle
	for rows.Next() {
		var article domain.KnowledgeArticle
		if err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Content,
			&article.Category,
			&article.Tags,
			&article.Author,
			&article.PublishedAt,
			&article.CreatedAt,
			&article.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, article)
	}
	return result, rows.Err()
}

func (r *articleRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM knowledge_articles WHERE id=$1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
