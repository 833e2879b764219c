package model

import (
	"time"
)

// Credential is the identity provider's account record
type Credential struct {
	ID              string     `gorm:"primaryKey;type:varchar(64)"`
	Email           string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash    string     `gorm:"type:varchar(255);not null"`
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for Credential
func (Credential) TableName() string {
	return "credentials"
}
