package validation

import (
	"net/url"
	"testing"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/config"
	"github.com/news-api/internal/models"
)

func newTestValidator() *Validator {
	return NewValidator(config.PaginationConfig{DefaultLimit: 10, MaxLimit: 50})
}

func intPtr(n int) *int { return &n }

func TestValidateStruct(t *testing.T) {
	validator := newTestValidator()

	tests := []struct {
		name       string
		input      interface{}
		wantErrors int
		wantFields []string
	}{
		{
			name: "valid article without image",
			input: &models.NewArticle{
				Author: "butter_bridge", Title: "t", Body: "b", Topic: "cats",
			},
			wantErrors: 0,
		},
		{
			name: "valid article with image",
			input: &models.NewArticle{
				Author: "butter_bridge", Title: "t", Body: "b", Topic: "cats",
				ArticleImgURL: "https://images.pexels.com/photos/1.jpeg",
			},
			wantErrors: 0,
		},
		{
			name:       "article missing every required field",
			input:      &models.NewArticle{},
			wantErrors: 4,
			wantFields: []string{"author", "title", "body", "topic"},
		},
		{
			name: "article with invalid image url",
			input: &models.NewArticle{
				Author: "butter_bridge", Title: "t", Body: "b", Topic: "cats", ArticleImgURL: "not a url",
			},
			wantErrors: 1,
			wantFields: []string{"article_img_url"},
		},
		{
			name:       "comment missing body",
			input:      &models.NewComment{Username: "lurker"},
			wantErrors: 1,
			wantFields: []string{"body"},
		},
		{
			name:       "vote update missing inc_votes",
			input:      &models.VoteUpdate{},
			wantErrors: 1,
			wantFields: []string{"inc_votes"},
		},
		{
			name:       "zero inc_votes is present",
			input:      &models.VoteUpdate{IncVotes: intPtr(0)},
			wantErrors: 0,
		},
		{
			name:       "inc_votes above INT range",
			input:      &models.VoteUpdate{IncVotes: intPtr(3000000000)},
			wantErrors: 1,
			wantFields: []string{"inc_votes"},
		},
		{
			name:       "inc_votes below INT range",
			input:      &models.VoteUpdate{IncVotes: intPtr(-3000000000)},
			wantErrors: 1,
			wantFields: []string{"inc_votes"},
		},
		{
			name:       "inc_votes at INT bounds",
			input:      &models.VoteUpdate{IncVotes: intPtr(-2147483648)},
			wantErrors: 0,
		},
		{
			name:       "topic missing description",
			input:      &models.NewTopic{Slug: "dogs"},
			wantErrors: 1,
			wantFields: []string{"description"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validator.ValidateStruct(tt.input)
			if len(errs) != tt.wantErrors {
				t.Errorf("ValidateStruct() got %d errors, want %d: %+v", len(errs), tt.wantErrors, errs)
			}
			for i, field := range tt.wantFields {
				if i < len(errs) && errs[i].Field != field {
					t.Errorf("error %d field = %q, want %q", i, errs[i].Field, field)
				}
			}
		})
	}
}

func TestCheck(t *testing.T) {
	validator := newTestValidator()

	if err := validator.Check(&models.NewComment{Username: "lurker", Body: "hi"}); err != nil {
		t.Errorf("Expected valid comment, got %v", err)
	}

	err := validator.Check(&models.NewComment{})
	if !apperr.IsMalformedInput(err) {
		t.Fatalf("Expected MalformedInput, got %v", err)
	}
	if got := apperr.From(err).Message(); got != "bad request" {
		t.Errorf("message = %q, want bad request", got)
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"9999", 9999, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"banana", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
		{"2147483647", 2147483647, false},
		{"3000000000", 0, true},
		{"92233720368547758070", 0, true},
		{"+5", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseID(tt.raw)
		if tt.wantErr {
			if !apperr.IsMalformedInput(err) {
				t.Errorf("ParseID(%q): expected MalformedInput, got %v", tt.raw, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseID(%q) = %d, %v; want %d", tt.raw, got, err, tt.want)
		}
	}
}

func TestParseArticleListQuery(t *testing.T) {
	validator := newTestValidator()

	tests := []struct {
		name    string
		query   string
		want    models.ArticleListParams
		wantErr bool
	}{
		{
			name:  "empty query uses default limit and no page",
			query: "",
			want:  models.ArticleListParams{Limit: 10},
		},
		{
			name:  "all parameters pass through",
			query: "topic=cats&sort_by=votes&order=ASC&p=2&limit=5",
			want:  models.ArticleListParams{Topic: "cats", SortBy: "votes", Order: "ASC", Page: 2, Limit: 5},
		},
		{
			name:  "limit above maximum is capped",
			query: "p=1&limit=500",
			want:  models.ArticleListParams{Page: 1, Limit: 50},
		},
		{name: "non-integer page", query: "p=two", wantErr: true},
		{name: "zero page", query: "p=0", wantErr: true},
		{name: "negative limit", query: "limit=-1", wantErr: true},
		{name: "empty page value", query: "p=", wantErr: true},
		{
			name:  "largest page is accepted",
			query: "p=2147483647&limit=100",
			want:  models.ArticleListParams{Page: 2147483647, Limit: 50},
		},
		{name: "page beyond INT range", query: "p=92233720368547759", wantErr: true},
		{name: "page with plus sign", query: "p=+2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatal(err)
			}

			got, err := validator.ParseArticleListQuery(q)
			if tt.wantErr {
				if !apperr.IsMalformedInput(err) {
					t.Errorf("Expected MalformedInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseCommentListQuery(t *testing.T) {
	validator := newTestValidator()

	got, err := validator.ParseCommentListQuery(3, url.Values{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := models.CommentListParams{ArticleID: 3, Page: 1, Limit: 10}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	got, err = validator.ParseCommentListQuery(3, url.Values{"p": {"2"}, "limit": {"4"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Page != 2 || got.Limit != 4 {
		t.Errorf("got %+v", got)
	}

	if _, err := validator.ParseCommentListQuery(3, url.Values{"limit": {"x"}}); !apperr.IsMalformedInput(err) {
		t.Errorf("Expected MalformedInput, got %v", err)
	}
}
