package service

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

// ArticleService defines the interface for article operations
type ArticleService interface {
	ListArticles(ctx context.Context, params models.ArticleListParams) (*models.ArticleList, error)
	GetArticle(ctx context.Context, id int) (*models.Article, error)
	CreateArticle(ctx context.Context, in *models.NewArticle) (*models.Article, error)
	UpdateArticleVotes(ctx context.Context, id, delta int) (*models.Article, error)
	DeleteArticle(ctx context.Context, id int) error
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListComments(ctx context.Context, params models.CommentListParams) ([]*models.Comment, error)
	CreateComment(ctx context.Context, articleID int, in *models.NewComment) (*models.Comment, error)
	UpdateCommentVotes(ctx context.Context, id, delta int) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int) error
}

// TopicService defines the interface for topic operations
type TopicService interface {
	ListTopics(ctx context.Context) ([]*models.Topic, error)
	CreateTopic(ctx context.Context, in *models.NewTopic) (*models.Topic, error)
}

// UserService defines the interface for user operations
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
}

// Services holds all service interfaces
type Services struct {
	Article ArticleService
	Comment CommentService
	Topic   TopicService
	User    UserService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Article: newArticleService(repos.Article, repos.Existence, log),
		Comment: newCommentService(repos.Comment, repos.Existence, log),
		Topic:   newTopicService(repos.Topic, log),
		User:    newUserService(repos.User, log),
	}
}
