package mocks

import (
	"context"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
)

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	ListArticlesFunc       func(ctx context.Context, params models.ArticleListParams) (*models.ArticleList, error)
	GetArticleFunc         func(ctx context.Context, id int) (*models.Article, error)
	CreateArticleFunc      func(ctx context.Context, in *models.NewArticle) (*models.Article, error)
	UpdateArticleVotesFunc func(ctx context.Context, id, delta int) (*models.Article, error)
	DeleteArticleFunc      func(ctx context.Context, id int) error
	LastListParams         models.ArticleListParams
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{}
}

func (m *MockArticleService) ListArticles(ctx context.Context, params models.ArticleListParams) (*models.ArticleList, error) {
	m.LastListParams = params
	if m.ListArticlesFunc != nil {
		return m.ListArticlesFunc(ctx, params)
	}
	return &models.ArticleList{Articles: []*models.Article{}}, nil
}

func (m *MockArticleService) GetArticle(ctx context.Context, id int) (*models.Article, error) {
	if m.GetArticleFunc != nil {
		return m.GetArticleFunc(ctx, id)
	}
	return &models.Article{ID: id}, nil
}

func (m *MockArticleService) CreateArticle(ctx context.Context, in *models.NewArticle) (*models.Article, error) {
	if m.CreateArticleFunc != nil {
		return m.CreateArticleFunc(ctx, in)
	}
	return &models.Article{
		ID:            1,
		Title:         in.Title,
		Topic:         in.Topic,
		Author:        in.Author,
		Body:          in.Body,
		ArticleImgURL: in.ArticleImgURL,
	}, nil
}

func (m *MockArticleService) UpdateArticleVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	if m.UpdateArticleVotesFunc != nil {
		return m.UpdateArticleVotesFunc(ctx, id, delta)
	}
	return &models.Article{ID: id, Votes: delta}, nil
}

func (m *MockArticleService) DeleteArticle(ctx context.Context, id int) error {
	if m.DeleteArticleFunc != nil {
		return m.DeleteArticleFunc(ctx, id)
	}
	return nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	ListCommentsFunc       func(ctx context.Context, params models.CommentListParams) ([]*models.Comment, error)
	CreateCommentFunc      func(ctx context.Context, articleID int, in *models.NewComment) (*models.Comment, error)
	UpdateCommentVotesFunc func(ctx context.Context, id, delta int) (*models.Comment, error)
	DeleteCommentFunc      func(ctx context.Context, id int) error
	LastListParams         models.CommentListParams
}

var _ service.CommentService = (*MockCommentService)(nil)

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{}
}

func (m *MockCommentService) ListComments(ctx context.Context, params models.CommentListParams) ([]*models.Comment, error) {
	m.LastListParams = params
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(ctx, params)
	}
	return []*models.Comment{}, nil
}

func (m *MockCommentService) CreateComment(ctx context.Context, articleID int, in *models.NewComment) (*models.Comment, error) {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, articleID, in)
	}
	return &models.Comment{ID: 1, ArticleID: articleID, Author: in.Username, Body: in.Body}, nil
}

func (m *MockCommentService) UpdateCommentVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	if m.UpdateCommentVotesFunc != nil {
		return m.UpdateCommentVotesFunc(ctx, id, delta)
	}
	return &models.Comment{ID: id, Votes: delta}, nil
}

func (m *MockCommentService) DeleteComment(ctx context.Context, id int) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, id)
	}
	return nil
}

// MockTopicService is a mock implementation of TopicService
type MockTopicService struct {
	Topics          []*models.Topic
	CreateTopicFunc func(ctx context.Context, in *models.NewTopic) (*models.Topic, error)
}

var _ service.TopicService = (*MockTopicService)(nil)

func NewMockTopicService() *MockTopicService {
	return &MockTopicService{Topics: make([]*models.Topic, 0)}
}

func (m *MockTopicService) ListTopics(ctx context.Context) ([]*models.Topic, error) {
	return m.Topics, nil
}

func (m *MockTopicService) CreateTopic(ctx context.Context, in *models.NewTopic) (*models.Topic, error) {
	if m.CreateTopicFunc != nil {
		return m.CreateTopicFunc(ctx, in)
	}
	t := &models.Topic{Slug: in.Slug, Description: in.Description}
	m.Topics = append(m.Topics, t)
	return t, nil
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	Users       []*models.User
	GetUserFunc func(ctx context.Context, username string) (*models.User, error)
}

var _ service.UserService = (*MockUserService)(nil)

func NewMockUserService() *MockUserService {
	return &MockUserService{Users: make([]*models.User, 0)}
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return m.Users, nil
}

func (m *MockUserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, username)
	}
	for _, u := range m.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperr.NotFound(apperr.ResourceUsername)
}
