package entity

import (
	"math"
	"net/mail"
	"strings"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
)

const (
	// MaxPointsAmount caps a single earn or redeem operation
	MaxPointsAmount int64 = 1_000_000_000

	// MaxDescriptionLength is the longest description stored on a ledger entry
	MaxDescriptionLength = 255
)

// ValidateAmount checks that a points amount is positive and within limits
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if amount > MaxPointsAmount {
		return errs.ErrAmountOverflow
	}
	return nil
}

// AddPoints adds two non-negative balances, failing on int64 overflow
func AddPoints(balance, amount int64) (int64, error) {
	if amount > 0 && balance > math.MaxInt64-amount {
		return 0, errs.ErrAmountOverflow
	}
	return balance + amount, nil
}

// NormalizeDescription trims the description, rejects blank values and
// cuts it to MaxDescriptionLength characters
func NormalizeDescription(description string) (string, error) {
	d := strings.TrimSpace(description)
	if d == "" {
		return "", errs.ErrInvalidDescription
	}
	if r := []rune(d); len(r) > MaxDescriptionLength {
		d = string(r[:MaxDescriptionLength])
	}
	return d, nil
}

// NormalizeEmail lowercases and validates an email address
func NormalizeEmail(email string) (string, error) {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return "", errs.ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(e)
	if err != nil || addr.Address != e {
		return "", errs.ErrInvalidEmail
	}
	return e, nil
}
