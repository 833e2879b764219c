package model

import (
	"time"
)

// RewardCode represents the database model for issued reward codes
type RewardCode struct {
	ID            string     `gorm:"primaryKey;type:varchar(36)"`
	TransactionID string     `gorm:"type:varchar(36);not null;uniqueIndex"`
	UserID        string     `gorm:"type:varchar(64);not null;index"`
	RewardID      *string    `gorm:"type:varchar(36);index"`
	Code          string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	CreatedAt     time.Time  `gorm:"not null;index"`
	FulfilledAt   *time.Time `gorm:"index"`

	// Define relationships
	Transaction PointTransaction `gorm:"foreignKey:TransactionID;references:ID"`
	Profile     Profile          `gorm:"foreignKey:UserID;references:ID"`
	Reward      *Reward          `gorm:"foreignKey:RewardID;references:ID"`
}

// TableName specifies the table name for RewardCode
func (RewardCode) TableName() string {
	return "reward_codes"
}
