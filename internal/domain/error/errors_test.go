package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientPoints", ErrInsufficientPoints, CodeInsufficientPoints},
		{"InsufficientPointsTyped", NewInsufficientPointsError("u1", 100, 10), CodeInsufficientPoints},
		{"InvalidAmount", ErrInvalidAmount, CodeInvalidAmount},
		{"Unauthorized", ErrUnauthorized, CodeUnauthorized},
		{"Unauthenticated", ErrUnauthenticated, CodeUnauthenticated},
		{"ProfileNotFound", ErrProfileNotFound, CodeProfileNotFound},
		{"TransactionNotFound", ErrTransactionNotFound, CodeTransactionNotFound},
		{"AlreadyFulfilled", NewAlreadyFulfilledError("tx1", "ABCD"), CodeAlreadyFulfilled},
		{"Collision", ErrDuplicateCodeCollision, CodeDuplicateCodeCollision},
		{"Transient", ErrTransientStore, CodeTransientStore},
		{"OTPExpired", ErrOTPExpired, CodeOTPExpired},
		{"InvalidEmail", ErrInvalidEmail, CodeInvalidEmail},
		{"InvalidPassword", ErrInvalidPassword, CodeInvalidPassword},
		{"IdempotencyKeyReused", ErrDuplicateIdempotencyKey, CodeIdempotencyKeyReused},
		{"IdempotencyKeyReusedInRedemption", NewRedemptionError("u1", 100, "idempotency", ErrDuplicateIdempotencyKey), CodeIdempotencyKeyReused},
		{"UnknownError", errors.New("unknown error"), CodeInternalServer},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), CodeInvalidUserID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(ErrInsufficientPoints))
	assert.True(t, IsClientError(ErrUnauthorized))
	assert.False(t, IsClientError(ErrTransientStore))
	assert.False(t, IsClientError(errors.New("boom")))
}

func TestInsufficientPointsError(t *testing.T) {
	err := NewInsufficientPointsError("user-1", 50, 0)

	assert.Equal(t, "insufficient points for user user-1: required 50, available 0", err.Error())
	assert.True(t, errors.Is(err, ErrInsufficientPoints))
	assert.True(t, IsInsufficientPointsError(fmt.Errorf("redeem: %w", err)))

	var typed *InsufficientPointsError
	assert.True(t, errors.As(err, &typed))
	fields := typed.LogFields()
	assert.Equal(t, int64(50), fields["requested"])
	assert.Equal(t, CodeInsufficientPoints, fields["error_code"])
}

func TestRedemptionError(t *testing.T) {
	err := NewRedemptionError("user-1", 100, "insert_code", ErrDuplicateCodeCollision)

	assert.Contains(t, err.Error(), "failed at insert_code")
	assert.True(t, IsCollisionError(err))

	var typed *RedemptionError
	assert.True(t, errors.As(err, &typed))
	assert.Equal(t, "insert_code", typed.LogFields()["stage"])
	assert.Equal(t, CodeDuplicateCodeCollision, typed.LogFields()["error_code"])
}

func TestPointsError(t *testing.T) {
	err := NewPointsError("user-2", "earn", 200, ErrProfileNotFound)

	assert.Equal(t, "earn of 200 points failed for user user-2: profile not found", err.Error())
	assert.True(t, IsProfileNotFoundError(err))
	assert.True(t, IsNotFoundError(err))
}

func TestAlreadyFulfilledError(t *testing.T) {
	err := NewAlreadyFulfilledError("tx-9", "K7Q2")

	assert.True(t, errors.Is(err, ErrAlreadyFulfilled))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "K7Q2", err.(*AlreadyFulfilledError).LogFields()["code"])
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrRewardNotFound))
	assert.True(t, IsNotFoundError(ErrRewardCodeNotFound))
	assert.False(t, IsNotFoundError(ErrUnauthorized))
}

func TestIsTransientError(t *testing.T) {
	assert.True(t, IsTransientError(fmt.Errorf("query: %w", ErrTransientStore)))
	assert.True(t, IsTransientError(ErrProfileLocked))
	assert.False(t, IsTransientError(ErrInsufficientPoints))
}
