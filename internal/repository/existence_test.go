package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/news-api/internal/repository"
)

func TestBuildExistsQuery(t *testing.T) {
	query, err := repository.BuildExistsQuery(repository.TableTopics, "slug")
	if err != nil {
		t.Fatalf("BuildExistsQuery failed: %v", err)
	}
	want := `SELECT EXISTS(SELECT 1 FROM "topics" WHERE "slug" = $1)`
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}

	rejected := [][2]string{
		{"topics", "description"},
		{"pg_user", "usename"},
		{"users; DROP TABLE users", "username"},
	}
	for _, pair := range rejected {
		if _, err := repository.BuildExistsQuery(pair[0], pair[1]); err == nil {
			t.Errorf("Expected %s.%s to be rejected", pair[0], pair[1])
		}
	}
}

func TestExistenceChecker_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	checker := repository.NewExistenceChecker(db)
	query := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM "topics" WHERE "slug" = $1)`)

	mock.ExpectQuery(query).WithArgs("cats").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(query).WithArgs("dogs").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := checker.Exists(context.Background(), repository.TableTopics, "slug", "cats")
	if err != nil || !exists {
		t.Errorf("Exists(cats) = %v, %v; want true, nil", exists, err)
	}

	// Absence is a plain false, not an error
	exists, err = checker.Exists(context.Background(), repository.TableTopics, "slug", "dogs")
	if err != nil || exists {
		t.Errorf("Exists(dogs) = %v, %v; want false, nil", exists, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestExistenceChecker_StorageError(t *testing.T) {
	db, mock := newMockDB(t)
	checker := repository.NewExistenceChecker(db)

	boom := errors.New("connection reset")
	mock.ExpectQuery("SELECT EXISTS").WillReturnError(boom)

	_, err := checker.Exists(context.Background(), repository.TableArticles, "article_id", 1)
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped storage error, got %v", err)
	}
}

func TestExistenceChecker_DisallowedPairNeverQueries(t *testing.T) {
	db, mock := newMockDB(t)
	checker := repository.NewExistenceChecker(db)

	if _, err := checker.Exists(context.Background(), "articles", "body", "x"); err == nil {
		t.Error("Expected error for disallowed column")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
