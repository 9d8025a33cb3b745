package service

import (
	"context"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles  repository.ArticleRepository
	existence repository.ExistenceChecker
	log       zerolog.Logger
}

func newArticleService(articles repository.ArticleRepository, existence repository.ExistenceChecker, log zerolog.Logger) *articleService {
	return &articleService{
		articles:  articles,
		existence: existence,
		log:       log.With().Str("service", "article").Logger(),
	}
}

// ListArticles returns one page of articles and the unpaginated total.
// An empty page is explained as an unknown topic or an out-of-range page.
func (s *articleService) ListArticles(ctx context.Context, params models.ArticleListParams) (*models.ArticleList, error) {
	params, err := repository.NormalizeArticleListParams(params)
	if err != nil {
		return nil, err
	}

	var (
		articles []*models.Article
		total    int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = s.articles.List(gctx, params)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.articles.Count(gctx, params)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, wrap(err, "listing articles")
	}

	if len(articles) == 0 {
		if err := s.explainEmptyList(ctx, params); err != nil {
			return nil, err
		}
		articles = []*models.Article{}
	}

	return &models.ArticleList{Articles: articles, TotalCount: total}, nil
}

// explainEmptyList checks the topic before the page
func (s *articleService) explainEmptyList(ctx context.Context, params models.ArticleListParams) error {
	if params.HasTopic() {
		exists, err := s.existence.Exists(ctx, repository.TableTopics, "slug", params.Topic)
		if err != nil {
			return apperr.Internal(err)
		}
		if !exists {
			s.log.Debug().Str("topic", params.Topic).Msg("Listing requested for unknown topic")
			return apperr.NotFound(apperr.ResourceTopic)
		}
		return nil
	}
	if params.HasPage() {
		return apperr.NotFound(apperr.ResourcePage)
	}
	return nil
}

// GetArticle returns a single article with its body and comment count
func (s *articleService) GetArticle(ctx context.Context, id int) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, wrap(err, "getting article")
	}
	if article == nil {
		return nil, apperr.NotFound(apperr.ResourceArticle)
	}
	return article, nil
}

// CreateArticle inserts an article. A foreign key violation is reported as
// the missing topic, or failing that the missing author.
func (s *articleService) CreateArticle(ctx context.Context, in *models.NewArticle) (*models.Article, error) {
	article, err := s.articles.Create(ctx, in)
	if err == nil {
		s.log.Info().Int("article_id", article.ID).Str("topic", article.Topic).Msg("Article created")
		return article, nil
	}
	if !repository.IsForeignKeyViolation(err) {
		return nil, wrap(err, "creating article")
	}

	return nil, attributeViolation(ctx, s.existence, err,
		reference{repository.TableTopics, "slug", in.Topic, apperr.ResourceTopic},
		reference{repository.TableUsers, "username", in.Author, apperr.ResourceUsername},
	)
}

// UpdateArticleVotes adds delta to the article's votes
func (s *articleService) UpdateArticleVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	article, err := s.articles.IncrementVotes(ctx, id, delta)
	if err != nil {
		return nil, wrap(err, "updating article votes")
	}
	if article == nil {
		return nil, apperr.NotFound(apperr.ResourceArticle)
	}
	return article, nil
}

// DeleteArticle removes an article together with its comments
func (s *articleService) DeleteArticle(ctx context.Context, id int) error {
	deleted, err := s.articles.Delete(ctx, id)
	if err != nil {
		return wrap(err, "deleting article")
	}
	if !deleted {
		return apperr.NotFound(apperr.ResourceArticle)
	}
	s.log.Info().Int("article_id", id).Msg("Article deleted")
	return nil
}
