package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/lib/pq"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

var listColumns = []string{
	"article_id", "title", "topic", "author", "created_at", "votes", "article_img_url", "comment_count",
}

var articleColumns = []string{
	"article_id", "title", "topic", "author", "body", "created_at", "votes", "article_img_url", "comment_count",
}

func TestArticleRepo_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewArticleRepo(db)

	created := time.Date(2020, 8, 3, 13, 14, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE articles.topic = $1 GROUP BY articles.article_id ORDER BY articles.votes ASC")).
		WithArgs("cats").
		WillReturnRows(sqlmock.NewRows(listColumns).
			AddRow(5, "UNCOVERED: catspiracy to bring down democracy", "cats", "rogersop", created, 0, "https://img", 2))

	got, err := repo.List(context.Background(), models.ArticleListParams{Topic: "cats", SortBy: "votes", Order: "asc"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []*models.Article{{
		ID:            5,
		Title:         "UNCOVERED: catspiracy to bring down democracy",
		Topic:         "cats",
		Author:        "rogersop",
		CreatedAt:     created,
		ArticleImgURL: "https://img",
		CommentCount:  2,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestArticleRepo_List_InvalidSortNeverQueries(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewArticleRepo(db)

	if _, err := repo.List(context.Background(), models.ArticleListParams{SortBy: "invalid_col"}); err == nil {
		t.Fatal("Expected error for invalid sort column")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestArticleRepo_Count(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewArticleRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)::INT FROM articles WHERE topic = $1")).
		WithArgs("mitch").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.Count(context.Background(), models.ArticleListParams{Topic: "mitch", Page: 2})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 12 {
		t.Errorf("count = %d, want 12", count)
	}
}

func TestArticleRepo_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewArticleRepo(db)

	created := time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)
	mock.ExpectQuery("WHERE articles.article_id = \\$1").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(articleColumns).
			AddRow(1, "Living in the shadow of a great man", "mitch", "butter_bridge",
				"I find this existence challenging", created, 100, "https://img", 11))

	got, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	want := &models.Article{
		ID:            1,
		Title:         "Living in the shadow of a great man",
		Topic:         "mitch",
		Author:        "butter_bridge",
		Body:          "I find this existence challenging",
		CreatedAt:     created,
		Votes:         100,
		ArticleImgURL: "https://img",
		CommentCount:  11,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetByID mismatch (-want +got):\n%s", diff)
	}
}

func TestArticleRepo_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewArticleRepo(db)

	mock.ExpectQuery("WHERE articles.article_id = \\$1").
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows(articleColumns))

	got, err := repo.GetByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("Expected no error for missing article, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil article, got %+v", got)
	}
}

func TestArticleRepo_Create(t *testing.T) {
	created := time.Now().UTC()
	insertColumns := articleColumns[:8]

	t.Run("without image uses column default", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewArticleRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles (title, topic, author, body)")).
			WithArgs("t", "cats", "rogersop", "b").
			WillReturnRows(sqlmock.NewRows(insertColumns).
				AddRow(14, "t", "cats", "rogersop", "b", created, 0, "https://default"))

		got, err := repo.Create(context.Background(), &models.NewArticle{
			Author: "rogersop", Title: "t", Body: "b", Topic: "cats",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if got.ID != 14 || got.ArticleImgURL != "https://default" || got.CommentCount != 0 {
			t.Errorf("unexpected article %+v", got)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("with image", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewArticleRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles (title, topic, author, body, article_img_url)")).
			WithArgs("t", "cats", "rogersop", "b", "https://mine").
			WillReturnRows(sqlmock.NewRows(insertColumns).
				AddRow(15, "t", "cats", "rogersop", "b", created, 0, "https://mine"))

		got, err := repo.Create(context.Background(), &models.NewArticle{
			Author: "rogersop", Title: "t", Body: "b", Topic: "cats", ArticleImgURL: "https://mine",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if got.ArticleImgURL != "https://mine" {
			t.Errorf("ArticleImgURL = %q", got.ArticleImgURL)
		}
	})

	t.Run("foreign key violation is passed through", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewArticleRepo(db)

		mock.ExpectQuery("INSERT INTO articles").
			WillReturnError(&pq.Error{Code: "23503"})

		_, err := repo.Create(context.Background(), &models.NewArticle{
			Author: "nobody", Title: "t", Body: "b", Topic: "cats",
		})
		if !repository.IsForeignKeyViolation(err) {
			t.Errorf("Expected foreign key violation, got %v", err)
		}
	})
}

func TestArticleRepo_IncrementVotes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewArticleRepo(db)

	created := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE articles SET votes = votes + $1")).
		WithArgs(-100, 1).
		WillReturnRows(sqlmock.NewRows(articleColumns).
			AddRow(1, "t", "mitch", "butter_bridge", "b", created, 0, "https://img", 11))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE articles SET votes = votes + $1")).
		WithArgs(1, 999).
		WillReturnRows(sqlmock.NewRows(articleColumns))

	got, err := repo.IncrementVotes(context.Background(), 1, -100)
	if err != nil {
		t.Fatalf("IncrementVotes failed: %v", err)
	}
	if got.Votes != 0 || got.CommentCount != 11 {
		t.Errorf("unexpected article %+v", got)
	}

	got, err = repo.IncrementVotes(context.Background(), 999, 1)
	if err != nil || got != nil {
		t.Errorf("IncrementVotes(999) = %+v, %v; want nil, nil", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestArticleRepo_Delete(t *testing.T) {
	tests := []struct {
		name        string
		articleRows int64
		want        bool
	}{
		{"existing article", 1, true},
		{"missing article", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := repository.NewArticleRepo(db)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM comments WHERE article_id = $1")).
				WithArgs(3).
				WillReturnResult(sqlmock.NewResult(0, 2))
			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM articles WHERE article_id = $1")).
				WithArgs(3).
				WillReturnResult(sqlmock.NewResult(0, tt.articleRows))
			mock.ExpectCommit()

			deleted, err := repo.Delete(context.Background(), 3)
			if err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if deleted != tt.want {
				t.Errorf("deleted = %v, want %v", deleted, tt.want)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestArticleRepo_Delete_RollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewArticleRepo(db)

	boom := errors.New("disk full")
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM comments").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM articles").WillReturnError(boom)
	mock.ExpectRollback()

	if _, err := repo.Delete(context.Background(), 3); !errors.Is(err, boom) {
		t.Errorf("Expected storage error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
