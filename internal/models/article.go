package models

import (
	"time"
)

// Article represents an article row. CommentCount is derived by aggregation
// and never stored. Body is empty in listings.
type Article struct {
	ID            int       `json:"article_id" db:"article_id"`
	Title         string    `json:"title" db:"title"`
	Topic         string    `json:"topic" db:"topic"`
	Author        string    `json:"author" db:"author"`
	Body          string    `json:"body,omitempty" db:"body"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  int       `json:"comment_count" db:"comment_count"`
}

// NewArticle is the body of POST /api/articles
type NewArticle struct {
	Author        string `json:"author" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Body          string `json:"body" validate:"required"`
	Topic         string `json:"topic" validate:"required"`
	ArticleImgURL string `json:"article_img_url" validate:"omitempty,url"`
}

// VoteUpdate is the body of PATCH /api/articles/:id and /api/comments/:id.
// A pointer distinguishes a missing field from a zero increment.
type VoteUpdate struct {
	IncVotes *int `json:"inc_votes" validate:"required,min=-2147483648,max=2147483647"`
}

// ArticleList is the response of GET /api/articles
type ArticleList struct {
	Articles   []*Article `json:"articles"`
	TotalCount int        `json:"total_count"`
}
