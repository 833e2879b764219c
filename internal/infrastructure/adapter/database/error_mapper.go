package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/repository"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	EntityTypeProfile     EntityType = "profile"
	EntityTypeTransaction EntityType = "transaction"
	EntityTypeRewardCode  EntityType = "reward_code"
	EntityTypeReward      EntityType = "reward"
	EntityTypeCredential  EntityType = "credential"
)

// ErrorMapper maps database errors outside a repository to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	mapped := m.classifier.MapError(err, errs.ErrNotFound, nil)
	return fmt.Errorf("%s: %w", operation, mapped)
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeProfile:
			return errs.ErrProfileNotFound
		case EntityTypeTransaction:
			return errs.ErrTransactionNotFound
		case EntityTypeRewardCode:
			return errs.ErrRewardCodeNotFound
		case EntityTypeReward:
			return errs.ErrRewardNotFound
		default:
			return errs.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}

// MapDuplicateError maps unique violations to the given domain error and
// everything else through MapError
func (m *ErrorMapper) MapDuplicateError(err error, entityType EntityType, duplicate error) error {
	if err == nil {
		return nil
	}
	if m.classifier.IsDuplicateKeyError(err) {
		return duplicate
	}
	return m.MapEntityNotFoundError(err, entityType)
}
