package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// MockArticleRepository is a mock implementation of ArticleRepository.
// It is safe for the concurrent List and Count calls made by the service.
type MockArticleRepository struct {
	mu                 sync.Mutex
	Articles           map[int]*models.Article
	NextID             int
	ListFunc           func(ctx context.Context, params models.ArticleListParams) ([]*models.Article, error)
	CountFunc          func(ctx context.Context, params models.ArticleListParams) (int, error)
	CreateFunc         func(ctx context.Context, in *models.NewArticle) (*models.Article, error)
	IncrementVotesFunc func(ctx context.Context, id, delta int) (*models.Article, error)
	DeleteFunc         func(ctx context.Context, id int) (bool, error)
	ListCalls          int
	CountCalls         int
}

var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[int]*models.Article),
		NextID:   1,
	}
}

// Add stores an article as if it had been seeded
func (m *MockArticleRepository) Add(article *models.Article) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Articles[article.ID] = article
	if article.ID >= m.NextID {
		m.NextID = article.ID + 1
	}
}

// filtered returns matching articles by ascending id. Callers hold mu.
func (m *MockArticleRepository) filtered(topic string) []*models.Article {
	out := make([]*models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		if topic == "" || a.Topic == topic {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MockArticleRepository) List(ctx context.Context, params models.ArticleListParams) ([]*models.Article, error) {
	m.mu.Lock()
	m.ListCalls++
	fn := m.ListFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, params)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	matches := m.filtered(params.Topic)
	if params.HasPage() {
		start := (params.Page - 1) * params.Limit
		if start >= len(matches) {
			return []*models.Article{}, nil
		}
		end := start + params.Limit
		if end > len(matches) {
			end = len(matches)
		}
		matches = matches[start:end]
	}

	out := make([]*models.Article, 0, len(matches))
	for _, a := range matches {
		listed := *a
		listed.Body = ""
		out = append(out, &listed)
	}
	return out, nil
}

func (m *MockArticleRepository) Count(ctx context.Context, params models.ArticleListParams) (int, error) {
	m.mu.Lock()
	m.CountCalls++
	fn := m.CountFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, params)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.filtered(params.Topic)), nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	found := *a
	return &found, nil
}

func (m *MockArticleRepository) Create(ctx context.Context, in *models.NewArticle) (*models.Article, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	a := &models.Article{
		ID:            m.NextID,
		Title:         in.Title,
		Topic:         in.Topic,
		Author:        in.Author,
		Body:          in.Body,
		CreatedAt:     time.Now().UTC(),
		ArticleImgURL: in.ArticleImgURL,
	}
	m.NextID++
	m.Articles[a.ID] = a
	created := *a
	return &created, nil
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	if m.IncrementVotesFunc != nil {
		return m.IncrementVotesFunc(ctx, id, delta)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	a.Votes += delta
	updated := *a
	return &updated, nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id int) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Articles[id]; !ok {
		return false, nil
	}
	delete(m.Articles, id)
	return true, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	mu                 sync.Mutex
	Comments           map[int]*models.Comment
	NextID             int
	ListFunc           func(ctx context.Context, params models.CommentListParams) ([]*models.Comment, error)
	CreateFunc         func(ctx context.Context, articleID int, in *models.NewComment) (*models.Comment, error)
	IncrementVotesFunc func(ctx context.Context, id, delta int) (*models.Comment, error)
}

var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[int]*models.Comment),
		NextID:   1,
	}
}

// Add stores a comment as if it had been seeded
func (m *MockCommentRepository) Add(comment *models.Comment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Comments[comment.ID] = comment
	if comment.ID >= m.NextID {
		m.NextID = comment.ID + 1
	}
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, params models.CommentListParams) ([]*models.Comment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, params)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	matches := make([]*models.Comment, 0)
	for _, c := range m.Comments {
		if c.ArticleID == params.ArticleID {
			matches = append(matches, c)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].ID > matches[j].ID
		}
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	start := (params.Page - 1) * params.Limit
	if start < 0 || start >= len(matches) {
		return []*models.Comment{}, nil
	}
	end := start + params.Limit
	if end > len(matches) {
		end = len(matches)
	}
	return matches[start:end], nil
}

func (m *MockCommentRepository) Create(ctx context.Context, articleID int, in *models.NewComment) (*models.Comment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, articleID, in)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	c := &models.Comment{
		ID:        m.NextID,
		Body:      in.Body,
		ArticleID: articleID,
		Author:    in.Username,
		CreatedAt: time.Now().UTC(),
	}
	m.NextID++
	m.Comments[c.ID] = c
	created := *c
	return &created, nil
}

func (m *MockCommentRepository) IncrementVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	if m.IncrementVotesFunc != nil {
		return m.IncrementVotesFunc(ctx, id, delta)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	c.Votes += delta
	updated := *c
	return &updated, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Comments[id]; !ok {
		return false, nil
	}
	delete(m.Comments, id)
	return true, nil
}

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Topics      []*models.Topic
	ListError   error
	CreateError error
}

var _ repository.TopicRepository = (*MockTopicRepository)(nil)

func NewMockTopicRepository() *MockTopicRepository {
	return &MockTopicRepository{Topics: make([]*models.Topic, 0)}
}

func (m *MockTopicRepository) List(ctx context.Context) ([]*models.Topic, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Topics, nil
}

func (m *MockTopicRepository) Create(ctx context.Context, in *models.NewTopic) (*models.Topic, error) {
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	t := &models.Topic{Slug: in.Slug, Description: in.Description}
	m.Topics = append(m.Topics, t)
	return t, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users     map[string]*models.User
	ListError error
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*models.User)}
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	users := make([]*models.User, 0, len(m.Users))
	for _, u := range m.Users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.Users[username], nil
}

// MockExistenceChecker answers existence checks from an in-memory set of
// table/value pairs
type MockExistenceChecker struct {
	mu    sync.Mutex
	rows  map[string]bool
	Err   error
	Calls []string
}

var _ repository.ExistenceChecker = (*MockExistenceChecker)(nil)

func NewMockExistenceChecker() *MockExistenceChecker {
	return &MockExistenceChecker{rows: make(map[string]bool)}
}

// Add marks value as present in table
func (m *MockExistenceChecker) Add(table string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[existenceKey(table, value)] = true
}

func (m *MockExistenceChecker) Exists(ctx context.Context, table, column string, value interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, table+"."+column)
	if m.Err != nil {
		return false, m.Err
	}
	return m.rows[existenceKey(table, value)], nil
}

func existenceKey(table string, value interface{}) string {
	return fmt.Sprintf("%s/%v", table, value)
}
