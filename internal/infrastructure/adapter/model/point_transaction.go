package model

import (
	"time"
)

// PointTransaction represents the database model for ledger entries.
// Rows are append-only.
type PointTransaction struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	UserID         string    `gorm:"type:varchar(64);not null;index:idx_point_transactions_user_created,priority:1;uniqueIndex:idx_point_transactions_user_key,priority:1"`
	Type           string    `gorm:"type:varchar(16);not null;check:chk_point_transactions_type,type IN ('earn','redeem')"`
	Amount         int64     `gorm:"not null;check:chk_point_transactions_amount_non_zero,amount <> 0"`
	Description    string    `gorm:"type:varchar(255);not null"`
	IdempotencyKey *string   `gorm:"type:varchar(128);uniqueIndex:idx_point_transactions_user_key,priority:2"`
	CreatedAt      time.Time `gorm:"not null;index:idx_point_transactions_user_created,priority:2,sort:desc"`

	// Define relationships
	Profile Profile `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for PointTransaction
func (PointTransaction) TableName() string {
	return "point_transactions"
}
