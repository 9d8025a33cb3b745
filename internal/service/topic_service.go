package service

import (
	"context"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

type topicService struct {
	topics repository.TopicRepository
	log    zerolog.Logger
}

func newTopicService(topics repository.TopicRepository, log zerolog.Logger) *topicService {
	return &topicService{
		topics: topics,
		log:    log.With().Str("service", "topic").Logger(),
	}
}

func (s *topicService) ListTopics(ctx context.Context) ([]*models.Topic, error) {
	topics, err := s.topics.List(ctx)
	if err != nil {
		return nil, wrap(err, "listing topics")
	}
	return topics, nil
}

// CreateTopic inserts a topic; a taken slug is a conflict
func (s *topicService) CreateTopic(ctx context.Context, in *models.NewTopic) (*models.Topic, error) {
	topic, err := s.topics.Create(ctx, in)
	if repository.IsUniqueViolation(err) {
		return nil, apperr.Conflict(apperr.ResourceTopic, err)
	}
	if err != nil {
		return nil, wrap(err, "creating topic")
	}
	s.log.Info().Str("slug", topic.Slug).Msg("Topic created")
	return topic, nil
}
