package entity

import (
	"time"

	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
)

// OTP is a hashed one-time verification code bound to an email
type OTP struct {
	ID        string
	Email     string
	CodeHash  string
	Attempts  int
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewOTP creates a code record expiring after ttl
func NewOTP(email, codeHash string, ttl coreport.Duration, timeProvider coreport.TimeProvider) *OTP {
	now := timeProvider.Now()
	return &OTP{
		ID:        uuid.NewString(),
		Email:     email,
		CodeHash:  codeHash,
		ExpiresAt: now.Add(ttl.Std()),
		CreatedAt: now,
	}
}

// IsValidAt reports whether the code may still be used at t (t < expires_at)
func (o *OTP) IsValidAt(t time.Time) bool {
	return t.Before(o.ExpiresAt)
}
