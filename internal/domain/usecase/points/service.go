package points

import (
	"context"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
)

// DefaultMaxCodeAttempts bounds how many codes are generated per redemption before giving up
const DefaultMaxCodeAttempts = 5

// Service is the single path through which balances change.
// Every mutation runs inside one unit of work holding the profile row lock.
type Service struct {
	uow             persistence.UnitOfWork
	codes           coreport.CodeGenerator
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	metrics         coreport.Metrics
	retrier         coreport.Retrier
	validator       *Validator
	idempotency     *IdempotencyHandler
	maxCodeAttempts int
}

var _ usecase.PointsUseCase = (*Service)(nil)

// NewService creates a new points service
func NewService(
	uow persistence.UnitOfWork,
	codes coreport.CodeGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	retrier coreport.Retrier,
) *Service {
	return &Service{
		uow:             uow,
		codes:           codes,
		timeProvider:    timeProvider,
		logger:          logger,
		metrics:         metrics,
		retrier:         retrier,
		validator:       NewValidator(),
		idempotency:     NewIdempotencyHandler(uow),
		maxCodeAttempts: DefaultMaxCodeAttempts,
	}
}

// WithMaxCodeAttempts overrides the collision retry budget
func (s *Service) WithMaxCodeAttempts(n int) *Service {
	if n > 0 {
		s.maxCodeAttempts = n
	}
	return s
}

// rollback ends a unit of work that did not commit
func (s *Service) rollback(txCtx context.Context, userID string) {
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Error("Failed to rollback points transaction", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
