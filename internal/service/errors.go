package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/repository"
)

// wrap keeps classified errors as they are and marks everything else internal
func wrap(err error, op string) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Internal(fmt.Errorf("%s: %w", op, err))
}

// reference is one row a foreign key on the failed insert points at
type reference struct {
	table    string
	column   string
	value    interface{}
	resource string
}

// attributeViolation finds the first missing reference behind a foreign key
// violation. Checks run in order, so the caller decides precedence.
func attributeViolation(ctx context.Context, existence repository.ExistenceChecker, cause error, refs ...reference) error {
	for _, ref := range refs {
		exists, err := existence.Exists(ctx, ref.table, ref.column, ref.value)
		if err != nil {
			return apperr.Internal(fmt.Errorf("checking %s: %w", ref.resource, err))
		}
		if !exists {
			return apperr.NotFound(ref.resource)
		}
	}
	// the referenced rows changed between the insert and the checks
	return apperr.Internal(fmt.Errorf("unattributed foreign key violation: %w", cause))
}
