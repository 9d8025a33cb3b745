package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/config"
	"github.com/news-api/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Validator checks request bodies and parses list query strings
type Validator struct {
	validate   *validator.Validate
	pagination config.PaginationConfig
}

// NewValidator creates a new validator instance
func NewValidator(pagination config.PaginationConfig) *Validator {
	validate := validator.New()
	// report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate:   validate,
		pagination: pagination,
	}
}

// ValidateStruct runs the struct's validate tags and returns one entry per failure
func (v *Validator) ValidateStruct(s interface{}) []ValidationError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Message: err.Error()}}
	}

	errs := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		ve := ValidationError{Field: fe.Field(), Message: message(fe)}
		if fe.Tag() != "required" {
			ve.Value = fe.Value()
		}
		errs = append(errs, ve)
	}
	return errs
}

// Check validates s and folds any failures into a single MalformedInput error
func (v *Validator) Check(s interface{}) error {
	errs := v.ValidateStruct(s)
	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return apperr.MalformedInput("%s", strings.Join(msgs, "; "))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// ParseID parses a path identifier. Anything but a positive integer is malformed.
func ParseID(raw string) (int, error) {
	id, err := parseInt32(raw)
	if err != nil || id < 1 {
		return 0, apperr.MalformedInput("invalid id %q", raw)
	}
	return id, nil
}

// ParseArticleListQuery reads topic, sort_by, order, p and limit. Sort and
// order are validated later against the column allow-list. The limit falls
// back to the configured default and is capped at the configured maximum.
func (v *Validator) ParseArticleListQuery(q url.Values) (models.ArticleListParams, error) {
	params := models.ArticleListParams{
		Topic:  q.Get("topic"),
		SortBy: q.Get("sort_by"),
		Order:  q.Get("order"),
	}

	page, limit, err := v.parsePage(q)
	if err != nil {
		return params, err
	}
	params.Page = page
	params.Limit = limit
	return params, nil
}

// ParseCommentListQuery reads p and limit for an article's comments. The
// first page is returned when p is absent.
func (v *Validator) ParseCommentListQuery(articleID int, q url.Values) (models.CommentListParams, error) {
	page, limit, err := v.parsePage(q)
	if err != nil {
		return models.CommentListParams{}, err
	}
	if page == 0 {
		page = 1
	}
	return models.CommentListParams{ArticleID: articleID, Page: page, Limit: limit}, nil
}

// parsePage returns page 0 when p is absent
func (v *Validator) parsePage(q url.Values) (int, int, error) {
	var page int
	if raw, ok := lookup(q, "p"); ok {
		n, err := positiveInt("p", raw)
		if err != nil {
			return 0, 0, err
		}
		page = n
	}

	limit := v.pagination.DefaultLimit
	if raw, ok := lookup(q, "limit"); ok {
		n, err := positiveInt("limit", raw)
		if err != nil {
			return 0, 0, err
		}
		limit = n
	}
	if v.pagination.MaxLimit > 0 && limit > v.pagination.MaxLimit {
		limit = v.pagination.MaxLimit
	}
	if limit < 1 {
		limit = models.DefaultLimit
	}

	return page, limit, nil
}

func lookup(q url.Values, key string) (string, bool) {
	if _, ok := q[key]; !ok {
		return "", false
	}
	return q.Get(key), true
}

func positiveInt(name, raw string) (int, error) {
	n, err := parseInt32(raw)
	if err != nil || n < 1 {
		return 0, apperr.MalformedInput("%s must be a positive integer, got %q", name, raw)
	}
	return n, nil
}

// parseInt32 accepts plain decimal digits with an optional minus sign, within
// the range of the INT columns ids and votes are stored in
func parseInt32(raw string) (int, error) {
	if strings.HasPrefix(raw, "+") {
		return 0, fmt.Errorf("unexpected sign in %q", raw)
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
