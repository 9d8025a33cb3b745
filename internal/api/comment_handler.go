package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services  *service.Services
	validator *validation.Validator
	log       zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, v *validation.Validator, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services:  services,
		validator: v,
		log:       log.With().Str("handler", "comment").Logger(),
	}
}

// ListComments handles GET /api/articles/:article_id/comments?p=&limit=
func (h *CommentHandler) ListComments(c *gin.Context) {
	articleID, err := validation.ParseID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	params, err := h.validator.ParseCommentListQuery(articleID, c.Request.URL.Query())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	comments, err := h.services.Comment.ListComments(c.Request.Context(), params)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment handles POST /api/articles/:article_id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	articleID, err := validation.ParseID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var in models.NewComment
	if err := bindJSON(c, &in); err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := h.validator.Check(&in); err != nil {
		respondError(c, h.log, err)
		return
	}

	comment, err := h.services.Comment.CreateComment(c.Request.Context(), articleID, &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// UpdateVotes handles PATCH /api/comments/:comment_id
func (h *CommentHandler) UpdateVotes(c *gin.Context) {
	id, err := validation.ParseID(c.Param("comment_id"))
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

	comment, err := h.services.Comment.UpdateCommentVotes(c.Request.Context(), id, *in.IncVotes)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := validation.ParseID(c.Param("comment_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.services.Comment.DeleteComment(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
