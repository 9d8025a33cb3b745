package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// TopicHandler handles topic endpoints
type TopicHandler struct {
	services  *service.Services
	validator *validation.Validator
	log       zerolog.Logger
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(services *service.Services, v *validation.Validator, log zerolog.Logger) *TopicHandler {
	return &TopicHandler{
		services:  services,
		validator: v,
		log:       log.With().Str("handler", "topic").Logger(),
	}
}

// ListTopics handles GET /api/topics
func (h *TopicHandler) ListTopics(c *gin.Context) {
	topics, err := h.services.Topic.ListTopics(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// CreateTopic handles POST /api/topics
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var in models.NewTopic
	if err := bindJSON(c, &in); err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := h.validator.Check(&in); err != nil {
		respondError(c, h.log, err)
		return
	}

	topic, err := h.services.Topic.CreateTopic(c.Request.Context(), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"topic": topic})
}
