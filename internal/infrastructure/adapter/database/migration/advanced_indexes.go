package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes gorm tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

var advancedIndexes = []indexStatement{
	{
		// admin fulfilment queue
		name: "idx_reward_codes_pending",
		sql: `CREATE INDEX IF NOT EXISTS idx_reward_codes_pending
			ON reward_codes (created_at DESC)
			WHERE fulfilled_at IS NULL`,
	},
	{
		name: "idx_point_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_point_transactions_created_at_brin
			ON point_transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_point_transactions_redeem",
		sql: `CREATE INDEX IF NOT EXISTS idx_point_transactions_redeem
			ON point_transactions (user_id, created_at DESC)
			WHERE type = 'redeem'`,
	},
	{
		name: "idx_otps_email_created",
		sql: `CREATE INDEX IF NOT EXISTS idx_otps_email_created
			ON otps (email, created_at DESC)`,
	},
}

// CreateAdvancedIndexes creates partial and BRIN indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies storage settings. Failures are logged, not returned.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// profiles is updated in place on every credit and debit; free space keeps those updates HOT
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE profiles SET (fillfactor = 80)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for profiles table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec(`
		ALTER TABLE point_transactions ALTER COLUMN user_id SET STATISTICS 1000
	`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_id", map[string]any{
			"error": err.Error(),
		})
	}
}
