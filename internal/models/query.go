package models

// Defaults applied to list queries when the client omits a parameter
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
	DefaultLimit  = 10
)

// ArticleListParams holds the optional filter, sort and pagination inputs of
// GET /api/articles. Zero values mean "not supplied".
type ArticleListParams struct {
	Topic  string
	SortBy string
	Order  string
	Page   int
	Limit  int
}

// HasTopic reports whether a topic filter was supplied
func (p ArticleListParams) HasTopic() bool {
	return p.Topic != ""
}

// HasPage reports whether a page number was supplied
func (p ArticleListParams) HasPage() bool {
	return p.Page > 0
}

// CommentListParams holds pagination for GET /api/articles/:id/comments
type CommentListParams struct {
	ArticleID int
	Page      int
	Limit     int
}
