package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services  *service.Services
	validator *validation.Validator
	log       zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, v *validation.Validator, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services:  services,
		validator: v,
		log:       log.With().Str("handler", "article").Logger(),
	}
}

// ListArticles handles GET /api/articles?topic=&sort_by=&order=&p=&limit=
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	params, err := h.validator.ParseArticleListQuery(c.Request.URL.Query())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	result, err := h.services.Article.ListArticles(c.Request.Context(), params)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetArticle handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := validation.ParseID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	article, err := h.services.Article.GetArticle(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// CreateArticle handles POST /api/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var in models.NewArticle
	if err := bindJSON(c, &in); err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := h.validator.Check(&in); err != nil {
		respondError(c, h.log, err)
		return
	}

	article, err := h.services.Article.CreateArticle(c.Request.Context(), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// UpdateVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) UpdateVotes(c *gin.Context) {
	id, err := validation.ParseID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var in models.VoteUpdate
	if err := bindJSON(c, &in); err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := h.validator.Check(&in); err != nil {
		respondError(c, h.log, err)
		return
	}

	article, err := h.services.Article.UpdateArticleVotes(c.Request.Context(), id, *in.IncVotes)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// DeleteArticle handles DELETE /api/articles/:article_id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := validation.ParseID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.services.Article.DeleteArticle(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
