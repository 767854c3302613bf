package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL error codes surfaced by the pgx driver. The shared connection
// helper opens gorm without error translation, so constraint violations
// arrive as raw *pgconn.PgError values rather than gorm sentinels.
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
	pgCodeNotNullViolation    = "23502"
)

func pgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}

	return nil
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if pgErr := pgError(err); pgErr != nil {
		return pgErr.Code == pgCodeUniqueViolation
	}

	return false
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	if pgErr := pgError(err); pgErr != nil {
		return pgErr.Code == pgCodeForeignKeyViolation
	}

	return false
}

func isNotNullConstraintViolation(err error) bool {
	if pgErr := pgError(err); pgErr != nil {
		return pgErr.Code == pgCodeNotNullViolation
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null")
}

// isConstraintOnColumn narrows a constraint violation to a specific index or
// column so callers can map it to the right domain error. The driver reports
// the constraint name directly; the message fallback covers translated errors.
func isConstraintOnColumn(err error, name string) bool {
	if pgErr := pgError(err); pgErr != nil && pgErr.ConstraintName != "" {
		return strings.EqualFold(pgErr.ConstraintName, name)
	}

	return strings.Contains(strings.ToLower(err.Error()), strings.ToLower(name))
}
