package points

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
)

// CheckLedger reads the balance and ledger sum in one transaction so both see the same snapshot
func (s *Service) CheckLedger(ctx context.Context, userID string) (*entity.LedgerCheck, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}

	var check *entity.LedgerCheck
	err := s.retrier.Do(ctx, func(ctx context.Context) error {
		c, err := s.checkLedgerOnce(ctx, userID)
		if err != nil {
			return err
		}
		check = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !check.Consistent() {
		s.logger.Error("Ledger does not match balance", map[string]any{
			"user_id":    userID,
			"balance":    check.Balance,
			"ledger_sum": check.LedgerSum,
			"entries":    check.EntryCount,
		})
	}

	return check, nil
}

func (s *Service) checkLedgerOnce(ctx context.Context, userID string) (*entity.LedgerCheck, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Read-only; always rolled back
	defer s.rollback(txCtx, userID)

	profile, err := s.uow.GetProfileRepository(txCtx).GetByIDForUpdate(txCtx, userID)
	if err != nil {
		return nil, err
	}

	sum, count, err := s.uow.GetLedgerRepository(txCtx).SumByUser(txCtx, userID)
	if err != nil {
		return nil, err
	}

	return &entity.LedgerCheck{
		UserID:     userID,
		Balance:    profile.Points(),
		LedgerSum:  sum,
		EntryCount: count,
	}, nil
}
