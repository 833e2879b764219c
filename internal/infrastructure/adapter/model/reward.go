package model

import (
	"time"
)

// Reward represents the database model for catalog rewards
type Reward struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Slug       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PointsCost int64     `gorm:"not null;index;check:chk_rewards_points_cost_positive,points_cost > 0"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for Reward
func (Reward) TableName() string {
	return "rewards"
}
