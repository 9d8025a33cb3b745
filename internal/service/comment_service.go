package service

import (
	"context"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments  repository.CommentRepository
	existence repository.ExistenceChecker
	log       zerolog.Logger
}

func newCommentService(comments repository.CommentRepository, existence repository.ExistenceChecker, log zerolog.Logger) *commentService {
	return &commentService{
		comments:  comments,
		existence: existence,
		log:       log.With().Str("service", "comment").Logger(),
	}
}

// ListComments returns one page of an article's comments, newest first
func (s *commentService) ListComments(ctx context.Context, params models.CommentListParams) ([]*models.Comment, error) {
	comments, err := s.comments.ListByArticle(ctx, params)
	if err != nil {
		return nil, wrap(err, "listing comments")
	}
	if len(comments) > 0 {
		return comments, nil
	}

	exists, err := s.existence.Exists(ctx, repository.TableArticles, "article_id", params.ArticleID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !exists {
		return nil, apperr.NotFound(apperr.ResourceArticle)
	}
	if params.Page > 1 {
		return nil, apperr.NotFound(apperr.ResourcePage)
	}
	return []*models.Comment{}, nil
}

// CreateComment adds a comment. A foreign key violation is reported as the
// missing article, or failing that the missing username.
func (s *commentService) CreateComment(ctx context.Context, articleID int, in *models.NewComment) (*models.Comment, error) {
	comment, err := s.comments.Create(ctx, articleID, in)
	if err == nil {
		return comment, nil
	}
	if !repository.IsForeignKeyViolation(err) {
		return nil, wrap(err, "creating comment")
	}

	return nil, attributeViolation(ctx, s.existence, err,
		reference{repository.TableArticles, "article_id", articleID, apperr.ResourceArticle},
		reference{repository.TableUsers, "username", in.Username, apperr.ResourceUsername},
	)
}

// UpdateCommentVotes adds delta to the comment's votes
func (s *commentService) UpdateCommentVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	comment, err := s.comments.IncrementVotes(ctx, id, delta)
	if err != nil {
		return nil, wrap(err, "updating comment votes")
	}
	if comment == nil {
		return nil, apperr.NotFound(apperr.ResourceComment)
	}
	return comment, nil
}

// DeleteComment removes a comment
func (s *commentService) DeleteComment(ctx context.Context, id int) error {
	deleted, err := s.comments.Delete(ctx, id)
	if err != nil {
		return wrap(err, "deleting comment")
	}
	if !deleted {
		return apperr.NotFound(apperr.ResourceComment)
	}
	return nil
}
