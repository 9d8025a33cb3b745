package repository

import (
	"fmt"
	"math"
	"strings"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
)

// articleSortColumns maps every accepted sort_by key to the column expression
// placed in ORDER BY. Keys outside this table never reach SQL.
var articleSortColumns = map[string]string{
	"article_id":      "articles.article_id",
	"title":           "articles.title",
	"topic":           "articles.topic",
	"author":          "articles.author",
	"created_at":      "articles.created_at",
	"votes":           "articles.votes",
	"article_img_url": "articles.article_img_url",
	"comment_count":   "comment_count",
}

var sortDirections = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

const articleListSelect = "SELECT articles.article_id, articles.title, articles.topic, articles.author, " +
	"articles.created_at, articles.votes, articles.article_img_url, " +
	"COUNT(comments.comment_id)::INT AS comment_count " +
	"FROM articles LEFT JOIN comments ON comments.article_id = articles.article_id"

const commentListSelect = "SELECT comment_id, body, article_id, author, votes, created_at FROM comments"

// IsSortableColumn reports whether key is an accepted sort_by value
func IsSortableColumn(key string) bool {
	_, ok := articleSortColumns[key]
	return ok
}

// NormalizeArticleListParams applies defaults and validates sort_by, order,
// page and limit. Order is accepted in any case and returned lower-cased.
func NormalizeArticleListParams(params models.ArticleListParams) (models.ArticleListParams, error) {
	if params.SortBy == "" {
		params.SortBy = models.DefaultSortBy
	}
	if !IsSortableColumn(params.SortBy) {
		return params, apperr.MalformedInput("invalid sort_by %q", params.SortBy)
	}

	params.Order = strings.ToLower(params.Order)
	if params.Order == "" {
		params.Order = models.DefaultOrder
	}
	if _, ok := sortDirections[params.Order]; !ok {
		return params, apperr.MalformedInput("invalid order %q", params.Order)
	}

	if params.Page < 0 {
		return params, apperr.MalformedInput("page must be a positive integer")
	}
	if params.Limit < 0 {
		return params, apperr.MalformedInput("limit must be a positive integer")
	}
	if params.Limit == 0 {
		params.Limit = models.DefaultLimit
	}
	return params, nil
}

// BuildArticleListQuery builds the article listing statement and its bound
// arguments. Sort column and direction are looked up in fixed tables; every
// other value is passed as a placeholder. LIMIT/OFFSET are only applied when
// a page is supplied.
func BuildArticleListQuery(params models.ArticleListParams) (string, []interface{}, error) {
	p, err := NormalizeArticleListParams(params)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	var args []interface{}

	b.WriteString(articleListSelect)
	if p.HasTopic() {
		args = append(args, p.Topic)
		fmt.Fprintf(&b, " WHERE articles.topic = $%d", len(args))
	}
	b.WriteString(" GROUP BY articles.article_id")

	column := articleSortColumns[p.SortBy]
	direction := sortDirections[p.Order]
	fmt.Fprintf(&b, " ORDER BY %s %s", column, direction)
	if p.SortBy != "article_id" {
		// stable ordering across pages when the sort key has ties
		fmt.Fprintf(&b, ", articles.article_id %s", direction)
	}

	if p.HasPage() {
		args = append(args, p.Limit, Offset(p.Page, p.Limit))
		fmt.Fprintf(&b, " LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	return b.String(), args, nil
}

// BuildTotalCountQuery counts the articles matching the topic filter alone.
// Sort and pagination are ignored.
func BuildTotalCountQuery(params models.ArticleListParams) (string, []interface{}) {
	if params.HasTopic() {
		return "SELECT COUNT(*)::INT FROM articles WHERE topic = $1", []interface{}{params.Topic}
	}
	return "SELECT COUNT(*)::INT FROM articles", nil
}

// BuildCommentListQuery builds the newest-first comment page for an article
func BuildCommentListQuery(params models.CommentListParams) (string, []interface{}) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = models.DefaultLimit
	}

	query := commentListSelect +
		" WHERE article_id = $1 ORDER BY created_at DESC, comment_id DESC LIMIT $2 OFFSET $3"
	return query, []interface{}{params.ArticleID, limit, Offset(page, limit)}
}

// Offset converts a 1-based page into a row offset. It saturates at
// math.MaxInt so an oversized page lands past the last row.
func Offset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}
