package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

const articleColumns = "article_id, title, topic, author, body, created_at, votes, article_img_url"

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// List runs the filtered, sorted and optionally paginated listing
func (r *articleRepo) List(ctx context.Context, params models.ArticleListParams) ([]*models.Article, error) {
	query, args, err := BuildArticleListQuery(params)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer rows.Close()

	articles := make([]*models.Article, 0)
	for rows.Next() {
		var a models.Article
		err := rows.Scan(
			&a.ID, &a.Title, &a.Topic, &a.Author, &a.CreatedAt,
			&a.Votes, &a.ArticleImgURL, &a.CommentCount,
		)
		if err != nil {
			return nil, err
		}
		articles = append(articles, &a)
	}

	return articles, rows.Err()
}

// Count returns the number of articles matching the topic filter
func (r *articleRepo) Count(ctx context.Context, params models.ArticleListParams) (int, error) {
	query, args := BuildTotalCountQuery(params)

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// GetByID retrieves an article with its comment count
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	query := `
		SELECT articles.article_id, articles.title, articles.topic, articles.author, articles.body,
			articles.created_at, articles.votes, articles.article_img_url,
			COUNT(comments.comment_id)::INT AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id
	`

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, MapError(err)
	}
	return article, nil
}

// Create inserts a new article. An empty image URL leaves the column default in place.
func (r *articleRepo) Create(ctx context.Context, in *models.NewArticle) (*models.Article, error) {
	query := `
		INSERT INTO articles (title, topic, author, body)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + articleColumns
	args := []interface{}{in.Title, in.Topic, in.Author, in.Body}

	if in.ArticleImgURL != "" {
		query = `
		INSERT INTO articles (title, topic, author, body, article_img_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + articleColumns
		args = append(args, in.ArticleImgURL)
	}

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	var a models.Article
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&a.ID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL,
	)
	if err != nil {
		return nil, MapError(err)
	}
	a.CommentCount = 0

	return &a, nil
}

// IncrementVotes adds delta to the stored vote count in a single statement
func (r *articleRepo) IncrementVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	query := `
		WITH updated AS (
			UPDATE articles SET votes = votes + $1
			WHERE article_id = $2
			RETURNING ` + articleColumns + `
		)
		SELECT updated.article_id, updated.title, updated.topic, updated.author, updated.body,
			updated.created_at, updated.votes, updated.article_img_url,
			(SELECT COUNT(*)::INT FROM comments WHERE comments.article_id = updated.article_id) AS comment_count
		FROM updated
	`

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, delta, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, MapError(err)
	}
	return article, nil
}

// Delete removes an article and its comments in one transaction.
// It reports false when no article matched.
func (r *articleRepo) Delete(ctx context.Context, id int) (bool, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	var deleted bool
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM comments WHERE article_id = $1", id); err != nil {
			return MapError(err)
		}

		result, err := tx.ExecContext(ctx, "DELETE FROM articles WHERE article_id = $1", id)
		if err != nil {
			return MapError(err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		deleted = rows > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func scanArticle(row *sql.Row) (*models.Article, error) {
	var a models.Article
	err := row.Scan(
		&a.ID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
