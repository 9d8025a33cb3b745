package repository

import (
	"errors"

	"github.com/lib/pq"
	"github.com/news-api/internal/apperr"
)

// PostgreSQL error codes
const (
	foreignKeyViolationCode       = "23503"
	uniqueViolationCode           = "23505"
	notNullViolationCode          = "23502"
	invalidTextRepresentationCode = "22P02"
	numericOutOfRangeCode         = "22003"
)

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
// The driver does not say which reference failed.
func IsForeignKeyViolation(err error) bool {
	return pqCode(err) == foreignKeyViolationCode
}

// IsUniqueViolation reports whether err is a unique constraint violation
func IsUniqueViolation(err error) bool {
	return pqCode(err) == uniqueViolationCode
}

// MapError turns storage errors caused by client input into MalformedInput,
// including integers outside the INT column range.
// Constraint violations and everything else are returned unchanged for the
// service to classify.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch pqCode(err) {
	case invalidTextRepresentationCode, notNullViolationCode, numericOutOfRangeCode:
		return apperr.MalformedInput("rejected by storage: %w", err)
	}
	return err
}
