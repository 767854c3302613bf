package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation_RawDriverError(t *testing.T) {
	// Without gorm error translation the repositories see the raw driver
	// error, so classification must work on *pgconn.PgError directly.
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "uniq_admin_users_pickup_location",
	}

	assert.True(t, isUniqueConstraintViolation(pgErr))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(pgErr, "failed to update user")))
}

func TestIsUniqueConstraintViolation_TranslatedError(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert failed")))
}

func TestIsUniqueConstraintViolation_UnrelatedErrors(t *testing.T) {
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueConstraintViolation(gorm.ErrRecordNotFound))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("timeout")))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "email" violates not-null constraint`)))
	assert.False(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23505"}))
}

func TestIsConstraintOnColumn_NarrowsByConstraintName(t *testing.T) {
	locationIndex := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "uniq_admin_users_pickup_location",
	}
	emailIndex := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "admin_users_email_key",
	}

	assert.True(t, isConstraintOnColumn(locationIndex, "uniq_admin_users_pickup_location"))
	assert.False(t, isConstraintOnColumn(emailIndex, "uniq_admin_users_pickup_location"))

	wrapped := errors.Wrap(locationIndex, "failed to update user")
	assert.True(t, isConstraintOnColumn(wrapped, "uniq_admin_users_pickup_location"))
}

func TestIsConstraintOnColumn_MessageFallback(t *testing.T) {
	// Translated errors keep the driver message but lose the structured name.
	err := errors.New(`duplicate key value violates unique constraint "uniq_admin_users_pickup_location"`)

	assert.True(t, isConstraintOnColumn(err, "uniq_admin_users_pickup_location"))
	assert.False(t, isConstraintOnColumn(err, "admin_users_email_key"))
}
