package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes surfaced when TranslateError is not enabled on the dialector.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, sqlStateUniqueViolation) || strings.Contains(strings.ToLower(err.Error()), "duplicate key")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasSQLState(err, sqlStateForeignKeyViolation)
}

// isConstraintOn reports a unique violation of the named index.
func isConstraintOn(err error, index string) bool {
	return isUniqueConstraintViolation(err) && strings.Contains(err.Error(), index)
}

func hasSQLState(err error, code string) bool {
	return err != nil && strings.Contains(err.Error(), "SQLSTATE "+code)
}
