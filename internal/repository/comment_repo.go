package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

const commentColumns = "comment_id, body, article_id, author, votes, created_at"

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// ListByArticle returns one page of an article's comments, newest first
func (r *commentRepo) ListByArticle(ctx context.Context, params models.CommentListParams) ([]*models.Comment, error) {
	query, args := BuildCommentListQuery(params)

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(&c.ID, &c.Body, &c.ArticleID, &c.Author, &c.Votes, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}

	return comments, rows.Err()
}

// Create inserts a new comment on an article
func (r *commentRepo) Create(ctx context.Context, articleID int, in *models.NewComment) (*models.Comment, error) {
	query := `
		INSERT INTO comments (body, author, article_id)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, in.Body, in.Username, articleID))
	if err != nil {
		return nil, MapError(err)
	}
	return comment, nil
}

// IncrementVotes adds delta to the stored vote count in a single statement
func (r *commentRepo) IncrementVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	query := `
		UPDATE comments SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING ` + commentColumns

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, delta, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, MapError(err)
	}
	return comment, nil
}

// Delete removes a comment, reporting false when none matched
func (r *commentRepo) Delete(ctx context.Context, id int) (bool, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return false, MapError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func scanComment(row *sql.Row) (*models.Comment, error) {
	var c models.Comment
	if err := row.Scan(&c.ID, &c.Body, &c.ArticleID, &c.Author, &c.Votes, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
