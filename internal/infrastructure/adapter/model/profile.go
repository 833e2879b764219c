package model

import (
	"time"
)

// Profile represents the database model for user profiles
type Profile struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Points    int64     `gorm:"not null;default:0;check:chk_profiles_points_non_negative,points >= 0"`
	IsAdmin   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
