package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// KnowledgeHandler serves the knowledge base. Reads are public; writes
// go through the admin group.
type KnowledgeHandler struct {
	service *service.ArticleService
}

// NewKnowledgeHandler constructs handler.
func NewKnowledgeHandler(articleService *service.ArticleService) *KnowledgeHandler {
	return &KnowledgeHandler{service: articleService}
}

// ListArticles GET /api/knowledge.
func (h *KnowledgeHandler) ListArticles(c *fiber.Ctx) error {
	publishedOnly := c.QueryBool("published", false)
	articles, err := h.service.List(c.UserContext(), publishedOnly)
	if err != nil {
		return err
	}
	items := make([]dto.ArticleResponse, 0, len(articles))
	for i := range articles {
		items = append(items, articleResponse(&articles[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetArticle GET /api/knowledge/:id.
func (h *KnowledgeHandler) GetArticle(c *fiber.Ctx) error {
	article, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": articleResponse(article)})
}

// CreateArticle POST /api/knowledge.
func (h *KnowledgeHandler) CreateArticle(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	article, err := h.service.Create(c.UserContext(), principal.User.Email, articleInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": articleResponse(article)})
}

// UpdateArticle PUT /api/knowledge/:id.
func (h *KnowledgeHandler) UpdateArticle(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	article, err := h.service.Update(c.UserContext(), principal.User.Email, c.Params("id"), articleInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": articleResponse(article)})
}

// DeleteArticle DELETE /api/knowledge/:id.
func (h *KnowledgeHandler) DeleteArticle(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.service.Delete(c.UserContext(), principal.User.Email, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func articleInput(req dto.ArticleRequest) service.ArticleInput {
	return service.ArticleInput{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		Tags:        req.Tags,
		PublishedAt: req.PublishedAt,
	}
}

func articleResponse(article *domain.KnowledgeArticle) dto.ArticleResponse {
	return dto.ArticleResponse{
		ID:          article.ID,
		Title:       article.Title,
		Content:     article.Content,
		Category:    article.Category,
		Tags:        article.Tags,
		Author:      article.Author,
		Published:   article.Published(),
		PublishedAt: article.PublishedAt,
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
	}
}
