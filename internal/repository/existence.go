package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/news-api/internal/database"
)

// Tables and key columns the existence checker accepts
const (
	TableTopics   = "topics"
	TableUsers    = "users"
	TableArticles = "articles"
	TableComments = "comments"
)

var existenceColumns = map[string]string{
	TableTopics:   "slug",
	TableUsers:    "username",
	TableArticles: "article_id",
	TableComments: "comment_id",
}

// ExistenceChecker reports whether a row with column = value exists in table.
// A missing row is (false, nil), never an error.
type ExistenceChecker interface {
	Exists(ctx context.Context, table, column string, value interface{}) (bool, error)
}

type existenceChecker struct {
	db *database.DB
}

// NewExistenceChecker creates an ExistenceChecker backed by db
func NewExistenceChecker(db *database.DB) ExistenceChecker {
	return &existenceChecker{db: db}
}

// BuildExistsQuery returns the EXISTS statement for an allow-listed table and column
func BuildExistsQuery(table, column string) (string, error) {
	if allowed, ok := existenceColumns[table]; !ok || allowed != column {
		return "", fmt.Errorf("existence check not supported for %s.%s", table, column)
	}
	return fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)",
		pq.QuoteIdentifier(table), pq.QuoteIdentifier(column)), nil
}

func (c *existenceChecker) Exists(ctx context.Context, table, column string, value interface{}) (bool, error) {
	query, err := BuildExistsQuery(table, column)
	if err != nil {
		return false, err
	}

	ctx, cancel := c.db.WithTimeout(ctx)
	defer cancel()

	var exists bool
	if err := c.db.QueryRowContext(ctx, query, value).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking %s.%s: %w", table, column, MapError(err))
	}
	return exists, nil
}
