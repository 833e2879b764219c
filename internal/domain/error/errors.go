package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest       = 4000
	CodeInsufficientPoints   = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidUserID        = 4003
	CodeInvalidDescription   = 4004
	CodeInvalidEmail         = 4005
	CodeInvalidPassword      = 4006
	CodeInvalidCredentials   = 4010
	CodeUnauthenticated      = 4011
	CodeEmailNotVerified     = 4012
	CodeOTPInvalid           = 4013
	CodeOTPExpired           = 4014
	CodeUnauthorized         = 4030
	CodeProfileNotFound      = 4040
	CodeRewardNotFound       = 4041
	CodeTransactionNotFound  = 4042
	CodeRewardCodeNotFound   = 4043
	CodeNotFound             = 4044
	CodeDuplicateEmail       = 4090
	CodeAlreadyFulfilled     = 4091
	CodeDuplicateReward      = 4092
	CodeIdempotencyKeyReused = 4093
	CodeConstraintViolation  = 4220
	CodeProfileLocked        = 4230

	// 5xxx - Server errors
	CodeInternalServer         = 5000
	CodeDuplicateCodeCollision = 5001
	CodeTransientStore         = 5030
)

// Base error types
var (
	// ErrUnauthenticated is returned when a call carries no valid session
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrUnauthorized is returned when the caller lacks the admin flag
	ErrUnauthorized = errors.New("not authorized")

	// ErrInvalidCredentials is returned when email/password do not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailNotVerified is returned on sign-in when verification is required
	ErrEmailNotVerified = errors.New("email address not verified")

	// ErrInsufficientPoints is returned when the balance cannot cover a redemption
	ErrInsufficientPoints = errors.New("insufficient points")

	// ErrInvalidAmount is returned when a points amount is not a positive integer
	ErrInvalidAmount = errors.New("amount must be a positive number of points")

	// ErrAmountOverflow is returned when a credit would overflow the balance
	ErrAmountOverflow = errors.New("amount is too large")

	// ErrInvalidUserID is returned when the user ID is empty
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrInvalidDescription is returned when a ledger description is blank
	ErrInvalidDescription = errors.New("description cannot be empty")

	// ErrInvalidEmail is returned for a malformed email address
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidRewardName is returned when a catalog reward has no name
	ErrInvalidRewardName = errors.New("reward name cannot be empty")

	// ErrInvalidPassword is returned when a password is too short
	ErrInvalidPassword = errors.New("password does not meet requirements")

	// ErrProfileNotFound is returned when no profile exists for the user
	ErrProfileNotFound = errors.New("profile not found")

	// ErrRewardNotFound is returned when the catalog entry doesn't exist
	ErrRewardNotFound = errors.New("reward not found")

	// ErrTransactionNotFound is returned when the ledger entry doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrRewardCodeNotFound is returned when no reward code belongs to a transaction
	ErrRewardCodeNotFound = errors.New("reward code not found")

	// ErrAlreadyFulfilled is returned when a reward code was already marked fulfilled
	ErrAlreadyFulfilled = errors.New("reward already fulfilled")

	// ErrDuplicateCodeCollision is returned when a generated code already exists
	ErrDuplicateCodeCollision = errors.New("reward code collision")

	// ErrDuplicateEmail is returned when an account with the email already exists
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateReward is returned when a catalog reward with the same slug exists
	ErrDuplicateReward = errors.New("reward already exists")

	// ErrDuplicateIdempotencyKey is returned when a key was already used by the user
	ErrDuplicateIdempotencyKey = errors.New("idempotency key already used")

	// ErrOTPInvalid is returned when a verification code does not match
	ErrOTPInvalid = errors.New("invalid verification code")

	// ErrOTPExpired is returned when a verification code is past its expiry
	ErrOTPExpired = errors.New("verification code expired")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrTransientStore is returned for retryable datastore failures
	ErrTransientStore = errors.New("transient store error")

	// ErrProfileLocked is returned when a profile row lock could not be acquired
	ErrProfileLocked = errors.New("profile is locked by another operation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientPoints):
		return CodeInsufficientPoints
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrAmountOverflow):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidDescription), errors.Is(err, ErrInvalidRewardName):
		return CodeInvalidDescription
	case errors.Is(err, ErrInvalidEmail):
		return CodeInvalidEmail
	case errors.Is(err, ErrInvalidPassword):
		return CodeInvalidPassword
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrEmailNotVerified):
		return CodeEmailNotVerified
	case errors.Is(err, ErrOTPInvalid):
		return CodeOTPInvalid
	case errors.Is(err, ErrOTPExpired):
		return CodeOTPExpired
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrProfileNotFound):
		return CodeProfileNotFound
	case errors.Is(err, ErrRewardNotFound):
		return CodeRewardNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrRewardCodeNotFound):
		return CodeRewardCodeNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrAlreadyFulfilled):
		return CodeAlreadyFulfilled
	case errors.Is(err, ErrDuplicateReward):
		return CodeDuplicateReward
	case errors.Is(err, ErrDuplicateIdempotencyKey):
		return CodeIdempotencyKeyReused
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrProfileLocked):
		return CodeProfileLocked
	case errors.Is(err, ErrDuplicateCodeCollision):
		return CodeDuplicateCodeCollision
	case errors.Is(err, ErrTransientStore), errors.Is(err, ErrDatabaseConnection):
		return CodeTransientStore
	default:
		return CodeInternalServer
	}
}

// IsClientError reports whether the error maps to a 4xxx code
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000
}

// PointsError represents an error related to a balance operation
type PointsError struct {
	UserID    string
	Operation string
	Amount    int64
	Err       error
}

// Error implements the error interface for PointsError
func (e *PointsError) Error() string {
	return fmt.Sprintf("%s of %d points failed for user %s: %v",
		e.Operation, e.Amount, e.UserID, e.Err)
}

// Unwrap returns the underlying error
func (e *PointsError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PointsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "points_error",
		"user_id":    e.UserID,
		"operation":  e.Operation,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewPointsError wraps err with the operation context
func NewPointsError(userID, operation string, amount int64, err error) error {
	return &PointsError{
		UserID:    userID,
		Operation: operation,
		Amount:    amount,
		Err:       err,
	}
}

// InsufficientPointsError provides detailed error information for a rejected redemption
type InsufficientPointsError struct {
	UserID    string
	Requested int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points for user %s: required %d, available %d",
		e.UserID, e.Requested, e.Available)
}

// Is checks if the target error is an ErrInsufficientPoints
func (e *InsufficientPointsError) Is(target error) bool {
	return target == ErrInsufficientPoints
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientPointsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_points",
		"user_id":    e.UserID,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientPoints,
	}
}

// NewInsufficientPointsError creates a new detailed insufficient points error
func NewInsufficientPointsError(userID string, requested, available int64) error {
	return &InsufficientPointsError{
		UserID:    userID,
		Requested: requested,
		Available: available,
	}
}

// RedemptionError carries the stage at which a redemption was aborted.
// Everything written before the failing stage has been rolled back.
type RedemptionError struct {
	UserID string
	Amount int64
	Stage  string
	Err    error
}

// Error implements the error interface
func (e *RedemptionError) Error() string {
	return fmt.Sprintf("redemption of %d points for user %s failed at %s: %v",
		e.Amount, e.UserID, e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *RedemptionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RedemptionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "redemption_error",
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"stage":      e.Stage,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewRedemptionError creates a redemption error for the given stage
func NewRedemptionError(userID string, amount int64, stage string, err error) error {
	return &RedemptionError{
		UserID: userID,
		Amount: amount,
		Stage:  stage,
		Err:    err,
	}
}

// AlreadyFulfilledError reports the reward code that was already fulfilled
type AlreadyFulfilledError struct {
	TransactionID string
	Code          string
}

// Error implements the error interface
func (e *AlreadyFulfilledError) Error() string {
	return fmt.Sprintf("reward code %s for transaction %s is already fulfilled", e.Code, e.TransactionID)
}

// Is checks if the target error is an ErrAlreadyFulfilled
func (e *AlreadyFulfilledError) Is(target error) bool {
	return target == ErrAlreadyFulfilled
}

// LogFields returns a map of fields for structured logging
func (e *AlreadyFulfilledError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "already_fulfilled",
		"transaction_id": e.TransactionID,
		"code":           e.Code,
		"error_code":     CodeAlreadyFulfilled,
	}
}

// NewAlreadyFulfilledError creates a new already fulfilled error
func NewAlreadyFulfilledError(transactionID, code string) error {
	return &AlreadyFulfilledError{TransactionID: transactionID, Code: code}
}

// IsInsufficientPointsError checks if the error is related to insufficient points
func IsInsufficientPointsError(err error) bool {
	return errors.Is(err, ErrInsufficientPoints)
}

// IsUnauthorizedError checks if the error is an admin gate rejection
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsProfileNotFoundError checks if the error is a profile not found error
func IsProfileNotFoundError(err error) bool {
	return errors.Is(err, ErrProfileNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrProfileNotFound) ||
		errors.Is(err, ErrRewardNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrRewardCodeNotFound)
}

// IsCollisionError checks if the error is a reward code collision
func IsCollisionError(err error) bool {
	return errors.Is(err, ErrDuplicateCodeCollision)
}

// IsTransientError checks if the error may succeed on retry
func IsTransientError(err error) bool {
	return errors.Is(err, ErrTransientStore) ||
		errors.Is(err, ErrDatabaseConnection) ||
		errors.Is(err, ErrProfileLocked)
}
