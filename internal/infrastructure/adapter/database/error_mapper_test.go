package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
)

func TestErrorMapper_MapEntityNotFoundError(t *testing.T) {
	m := NewErrorMapper()

	testCases := []struct {
		entity EntityType
		want   error
	}{
		{EntityTypeProfile, errs.ErrProfileNotFound},
		{EntityTypeTransaction, errs.ErrTransactionNotFound},
		{EntityTypeRewardCode, errs.ErrRewardCodeNotFound},
		{EntityTypeReward, errs.ErrRewardNotFound},
		{EntityTypeCredential, errs.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(string(tc.entity), func(t *testing.T) {
			assert.ErrorIs(t, m.MapEntityNotFoundError(gorm.ErrRecordNotFound, tc.entity), tc.want)
		})
	}
}

func TestErrorMapper_MapError(t *testing.T) {
	m := NewErrorMapper()

	testCases := []struct {
		name string
		err  error
		want error
	}{
		{"lock timeout", &pgconn.PgError{Code: "55P03"}, errs.ErrProfileLocked},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, errs.ErrTransientStore},
		{"check violation", &pgconn.PgError{Code: "23514", ConstraintName: "chk_profiles_points_non_negative"}, errs.ErrConstraintViolation},
		{"unique violation", &pgconn.PgError{Code: "23505"}, errs.ErrConstraintViolation},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), errs.ErrTransientStore},
		{"network unreachable", errors.New("dial tcp: lookup db: no such host"), errs.ErrDatabaseConnection},
		{"syntax error", &pgconn.PgError{Code: "42601"}, errs.ErrInternalServer},
		{"unknown", errors.New("something odd"), errs.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, m.MapError(tc.err, "test"), tc.want)
		})
	}

	t.Run("should pass context errors through", func(t *testing.T) {
		assert.Equal(t, context.Canceled, m.MapError(context.Canceled, "test"))
	})

	t.Run("should return nil for nil", func(t *testing.T) {
		assert.NoError(t, m.MapError(nil, "test"))
	})
}

func TestErrorMapper_UnclassifiedErrorsAreNotRetried(t *testing.T) {
	err := NewErrorMapper().MapError(&pgconn.PgError{Code: "42703", Message: "column does not exist"}, "list")

	assert.False(t, errs.IsTransientError(err))
	assert.Equal(t, errs.CodeInternalServer, errs.ErrorCode(err))
}

func TestErrorMapper_MapDuplicateError(t *testing.T) {
	m := NewErrorMapper()

	err := m.MapDuplicateError(&pgconn.PgError{Code: "23505"}, EntityTypeCredential, errs.ErrDuplicateEmail)

	assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
}
