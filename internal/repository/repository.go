package repository

import (
	"context"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// ArticleRepository defines the interface for article data operations.
// Lookups return (nil, nil) when no row matches.
type ArticleRepository interface {
	List(ctx context.Context, params models.ArticleListParams) ([]*models.Article, error)
	Count(ctx context.Context, params models.ArticleListParams) (int, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	Create(ctx context.Context, article *models.NewArticle) (*models.Article, error)
	IncrementVotes(ctx context.Context, id, delta int) (*models.Article, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, params models.CommentListParams) ([]*models.Comment, error)
	Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error)
	IncrementVotes(ctx context.Context, id, delta int) (*models.Comment, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]*models.Topic, error)
	Create(ctx context.Context, topic *models.NewTopic) (*models.Topic, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article   ArticleRepository
	Comment   CommentRepository
	Topic     TopicRepository
	User      UserRepository
	Existence ExistenceChecker
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article:   NewArticleRepo(db),
		Comment:   NewCommentRepo(db),
		Topic:     NewTopicRepo(db),
		User:      NewUserRepo(db),
		Existence: NewExistenceChecker(db),
	}
}
