package points

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	"github.com/amirhossein-jamali/loyalty-service/mocks/port/core"
	"github.com/amirhossein-jamali/loyalty-service/mocks/port/persistence"
)

var fixedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type txKey struct{}

// fixture wires a Service to expecter mocks. The transactional context is
// distinguishable from the caller's so tests can assert repositories run inside it.
type fixture struct {
	ctx      context.Context
	txCtx    context.Context
	uow      *persistence.MockUnitOfWork
	profiles *persistence.MockProfileRepository
	ledger   *persistence.MockLedgerRepository
	codes    *persistence.MockRewardCodeRepository
	gen      *core.MockCodeGenerator
	time     *core.MockTimeProvider
	metrics  *core.MockMetrics
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		ctx:      context.Background(),
		uow:      persistence.NewMockUnitOfWork(t),
		profiles: persistence.NewMockProfileRepository(t),
		ledger:   persistence.NewMockLedgerRepository(t),
		codes:    persistence.NewMockRewardCodeRepository(t),
		gen:      core.NewMockCodeGenerator(t),
		time:     core.NewMockTimeProvider(t),
		metrics:  core.NewMockMetrics(t),
	}
	f.txCtx = context.WithValue(f.ctx, txKey{}, "tx")

	f.time.EXPECT().Now().Return(fixedTime).Maybe()
	f.metrics.EXPECT().Redemption(mock.Anything, mock.Anything).Maybe()
	f.metrics.EXPECT().PointsEarned(mock.Anything).Maybe()

	f.uow.EXPECT().GetProfileRepository(f.txCtx).Return(f.profiles).Maybe()
	f.uow.EXPECT().GetLedgerRepository(f.txCtx).Return(f.ledger).Maybe()
	f.uow.EXPECT().GetRewardCodeRepository(f.txCtx).Return(f.codes).Maybe()

	f.service = NewService(f.uow, f.gen, f.time, quietLogger(t), f.metrics, passthroughRetrier(t))
	return f
}

func (f *fixture) expectBegin() {
	f.uow.EXPECT().Begin(f.ctx).Return(f.txCtx, nil).Once()
}

func (f *fixture) expectCommit() {
	f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()
}

func (f *fixture) expectRollback() {
	f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()
}

func profileWith(id string, points int64) *entity.Profile {
	return entity.RestoreProfile(id, id+"@example.com", id, points, false, fixedTime, fixedTime)
}

func quietLogger(t *testing.T) *core.MockLogger {
	l := core.NewMockLogger(t)
	l.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return l
}

func passthroughRetrier(t *testing.T) *core.MockRetrier {
	r := core.NewMockRetrier(t)
	r.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, op func(context.Context) error) error {
			return op(ctx)
		}).Maybe()
	return r
}
