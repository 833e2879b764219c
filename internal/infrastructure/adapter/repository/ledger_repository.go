package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/model"
)

// LedgerRepository implements persistence.LedgerRepository using GORM.
// It only inserts and reads; ledger rows are never updated.
type LedgerRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a ledger entry to a database model
func (r *LedgerRepository) entityToModel(tx *entity.PointTransaction) model.PointTransaction {
	m := model.PointTransaction{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
	}
	if tx.IdempotencyKey != "" {
		key := tx.IdempotencyKey
		m.IdempotencyKey = &key
	}
	return m
}

func pointTransactionToEntity(m *model.PointTransaction) *entity.PointTransaction {
	tx := &entity.PointTransaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        entity.TransactionType(m.Type),
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
	if m.IdempotencyKey != nil {
		tx.IdempotencyKey = *m.IdempotencyKey
	}
	return tx
}

// Create appends a ledger entry
func (r *LedgerRepository) Create(ctx context.Context, tx *entity.PointTransaction) error {
	m := r.entityToModel(tx)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		mapped := r.errorClassifier.MapError(err, errs.ErrTransactionNotFound, errs.ErrDuplicateIdempotencyKey)
		r.logger.Error("Failed to append ledger entry", map[string]any{
			"transaction_id": tx.ID,
			"user_id":        tx.UserID,
			"type":           tx.Type,
			"error":          err.Error(),
		})
		return mapped
	}

	r.logger.Debug("Ledger entry appended", map[string]any{
		"transaction_id": tx.ID,
		"user_id":        tx.UserID,
		"type":           tx.Type,
		"amount":         tx.Amount,
	})
	return nil
}

// GetByID retrieves a ledger entry
func (r *LedgerRepository) GetByID(ctx context.Context, id string) (*entity.PointTransaction, error) {
	var m model.PointTransaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrTransactionNotFound, nil)
	}
	return pointTransactionToEntity(&m), nil
}

// GetByIdempotencyKey finds the entry a user created with key
func (r *LedgerRepository) GetByIdempotencyKey(ctx context.Context, userID, key string) (*entity.PointTransaction, error) {
	var m model.PointTransaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND idempotency_key = ?", userID, key).
		Take(&m).Error
	if err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrTransactionNotFound, nil)
	}
	return pointTransactionToEntity(&m), nil
}

// ListRecent returns up to limit entries for a user, newest first
func (r *LedgerRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*entity.PointTransaction, error) {
	var models []model.PointTransaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		r.logger.Error("Failed to list ledger entries", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, r.errorClassifier.MapError(err, errs.ErrTransactionNotFound, nil)
	}

	entries := make([]*entity.PointTransaction, 0, len(models))
	for i := range models {
		entries = append(entries, pointTransactionToEntity(&models[i]))
	}
	return entries, nil
}

// SumByUser returns the signed sum and count of a user's ledger entries
func (r *LedgerRepository) SumByUser(ctx context.Context, userID string) (int64, int64, error) {
	var row struct {
		Total int64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&model.PointTransaction{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, r.errorClassifier.MapError(err, errs.ErrTransactionNotFound, nil)
	}
	return row.Total, row.Count, nil
}
