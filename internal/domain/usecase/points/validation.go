package points

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
)

// MaxIdempotencyKeyLength is the longest accepted idempotency key
const MaxIdempotencyKeyLength = 128

// Validator checks points requests before any store access
type Validator struct{}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRedeem validates a redemption request and returns the normalized description
func (v *Validator) ValidateRedeem(req usecase.RedeemRequest) (string, error) {
	return v.validate(req.UserID, req.Amount, req.Description, req.IdempotencyKey)
}

// ValidateAddPoints validates a credit request and returns the normalized description
func (v *Validator) ValidateAddPoints(req usecase.AddPointsRequest) (string, error) {
	return v.validate(req.UserID, req.Amount, req.Description, req.IdempotencyKey)
}

func (v *Validator) validate(userID string, amount int64, description, key string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", errs.ErrInvalidUserID
	}

	if err := entity.ValidateAmount(amount); err != nil {
		return "", err
	}

	desc, err := entity.NormalizeDescription(description)
	if err != nil {
		return "", err
	}

	if err := v.validateIdempotencyKey(key); err != nil {
		return "", err
	}

	return desc, nil
}

// validateIdempotencyKey allows an empty key
func (v *Validator) validateIdempotencyKey(key string) error {
	if len(key) > MaxIdempotencyKeyLength {
		return fmt.Errorf("%w: idempotency key longer than %d characters", errs.ErrInvalidRequest, MaxIdempotencyKeyLength)
	}
	return nil
}
