package repository

import (
	"errors"

	"github.com/lib/pq"

	appErrors "github.com/unclebandit/sparkles-site/internal/errors"
)

const uniqueViolation = "23505"

func notFound(entity, key string) error {
	return appErrors.NewNotFound(entity, key)
}

// isUniqueViolation reports whether err is a postgres duplicate key error.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
