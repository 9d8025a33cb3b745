// Package apperr defines the error taxonomy shared by services and handlers.
// Every failure that reaches a client is one of these kinds; anything else is
// treated as an unclassified storage error.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the HTTP boundary
type Kind int

const (
	KindInternal Kind = iota
	KindMalformedInput
	KindNotFound
	KindConflict
)

// Resource names used in NotFound and Conflict messages
const (
	ResourceArticle  = "article"
	ResourceComment  = "comment"
	ResourceTopic    = "topic"
	ResourcePage     = "page"
	ResourceUsername = "username"
)

// Error is a classified application error
type Error struct {
	Kind     Kind
	Resource string
	Err      error
}

func (e *Error) Error() string {
	msg := e.Message()
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error kind
func (e *Error) Status() int {
	switch e.Kind {
	case KindMalformedInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message. It never includes the wrapped error.
func (e *Error) Message() string {
	switch e.Kind {
	case KindMalformedInput:
		return "bad request"
	case KindNotFound:
		return e.Resource + " not found"
	case KindConflict:
		return e.Resource + " already exists"
	default:
		return "internal server error"
	}
}

// MalformedInput reports invalid client input
func MalformedInput(format string, args ...interface{}) *Error {
	return &Error{Kind: KindMalformedInput, Err: fmt.Errorf(format, args...)}
}

// NotFound reports a missing resource
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Resource: resource}
}

// Conflict reports a uniqueness violation on resource
func Conflict(resource string, err error) *Error {
	return &Error{Kind: KindConflict, Resource: resource, Err: err}
}

// Internal wraps an unclassified error
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// From extracts an *Error from err, classifying anything else as internal
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// IsNotFound reports whether err is a NotFound for the given resource.
// An empty resource matches any NotFound.
func IsNotFound(err error, resource string) bool {
	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Kind != KindNotFound {
		return false
	}
	return resource == "" || appErr.Resource == resource
}

// IsMalformedInput reports whether err is a MalformedInput error
func IsMalformedInput(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == KindMalformedInput
}
