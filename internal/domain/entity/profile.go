package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
)

// Profile is the per-user record holding the points balance
type Profile struct {
	ID        string    // Identity principal id
	Email     string    // Unique, lowercased
	Name      string    // Display name
	points    int64     // Never negative (private)
	IsAdmin   bool      // Grants access to admin operations
	CreatedAt time.Time // When the profile was created
	UpdatedAt time.Time // When the balance or flags last changed
}

// NewProfile creates a profile with a zero balance
func NewProfile(id, email, name string, timeProvider coreport.TimeProvider) (*Profile, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidUserID
	}

	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultDisplayName(normalized)
	}

	now := timeProvider.Now()
	return &Profile{
		ID:        id,
		Email:     normalized,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreProfile rebuilds a profile from persisted state
func RestoreProfile(id, email, name string, points int64, isAdmin bool, createdAt, updatedAt time.Time) *Profile {
	return &Profile{
		ID:        id,
		Email:     email,
		Name:      name,
		points:    points,
		IsAdmin:   isAdmin,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// DefaultDisplayName derives a name from the local part of an email
func DefaultDisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// Points returns the current balance
func (p *Profile) Points() int64 {
	return p.points
}

// CanRedeem reports whether the balance covers amount
func (p *Profile) CanRedeem(amount int64) bool {
	return amount > 0 && p.points >= amount
}

// SetPoints overwrites the balance (for repositories applying a guarded update)
func (p *Profile) SetPoints(points int64, timeProvider coreport.TimeProvider) {
	p.points = points
	p.UpdatedAt = timeProvider.Now()
}
