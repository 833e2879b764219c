package points

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/persistence"
)

// memStore is an in-memory datastore with row locks and buffered writes.
// Uncommitted writes are invisible to other transactions, matching READ COMMITTED.
type memStore struct {
	mu       sync.Mutex
	profiles map[string]*entity.Profile
	ledger   []*entity.PointTransaction
	codes    map[string]*entity.RewardCode
	rowLocks map[string]*sync.Mutex

	failCodeInsert atomic.Bool
}

func newMemStore() *memStore {
	return &memStore{
		profiles: make(map[string]*entity.Profile),
		codes:    make(map[string]*entity.RewardCode),
		rowLocks: make(map[string]*sync.Mutex),
	}
}

func (s *memStore) seed(id string, points int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[id] = profileWith(id, points)
	s.rowLocks[id] = &sync.Mutex{}
	if points > 0 {
		s.ledger = append(s.ledger, &entity.PointTransaction{
			ID: fmt.Sprintf("seed-%s", id), UserID: id, Type: entity.TypeEarn, Amount: points, CreatedAt: fixedTime,
		})
	}
}

func (s *memStore) seedAdmin(id string) {
	s.seed(id, 0)
	s.mu.Lock()
	s.profiles[id].IsAdmin = true
	s.mu.Unlock()
}

// committed returns repositories reading committed state outside any transaction
func (s *memStore) committed() (*memProfiles, *memLedger) {
	tx := &memTx{store: s, points: map[string]int64{}}
	return &memProfiles{tx: tx}, &memLedger{tx: tx}
}

func (s *memStore) balance(id string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profiles[id].Points()
}

func (s *memStore) ledgerFor(id string) []*entity.PointTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.PointTransaction
	for _, e := range s.ledger {
		if e.UserID == id {
			out = append(out, e)
		}
	}
	return out
}

func (s *memStore) codeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.codes)
}

type memTx struct {
	store  *memStore
	locked []*sync.Mutex
	points map[string]int64
	ledger []*entity.PointTransaction
	codes  []*entity.RewardCode
}

type memTxKey struct{}

func txFrom(ctx context.Context) *memTx {
	tx, _ := ctx.Value(memTxKey{}).(*memTx)
	return tx
}

func (t *memTx) balance(id string) (int64, bool) {
	if p, ok := t.points[id]; ok {
		return p, true
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	p, ok := t.store.profiles[id]
	if !ok {
		return 0, false
	}
	return p.Points(), true
}

func (t *memTx) release() {
	for i := len(t.locked) - 1; i >= 0; i-- {
		t.locked[i].Unlock()
	}
	t.locked = nil
}

// memUnitOfWork implements persistence.UnitOfWork over memStore
type memUnitOfWork struct {
	store *memStore
}

func (u *memUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	return context.WithValue(ctx, memTxKey{}, &memTx{store: u.store, points: map[string]int64{}}), nil
}

func (u *memUnitOfWork) Commit(ctx context.Context) error {
	tx := txFrom(ctx)
	if tx == nil {
		return errors.New("no transaction")
	}
	s := u.store
	s.mu.Lock()
	for id, p := range tx.points {
		s.profiles[id].SetPoints(p, fixedClock{})
	}
	s.ledger = append(s.ledger, tx.ledger...)
	for _, c := range tx.codes {
		s.codes[c.Code] = c
	}
	s.mu.Unlock()
	tx.release()
	return nil
}

func (u *memUnitOfWork) Rollback(ctx context.Context) error {
	if tx := txFrom(ctx); tx != nil {
		tx.release()
	}
	return nil
}

func (u *memUnitOfWork) GetProfileRepository(ctx context.Context) persistence.ProfileRepository {
	return &memProfiles{tx: txFrom(ctx)}
}

func (u *memUnitOfWork) GetLedgerRepository(ctx context.Context) persistence.LedgerRepository {
	return &memLedger{tx: txFrom(ctx)}
}

func (u *memUnitOfWork) GetRewardCodeRepository(ctx context.Context) persistence.RewardCodeRepository {
	return &memCodes{tx: txFrom(ctx)}
}

type memProfiles struct{ tx *memTx }

func (r *memProfiles) GetByID(_ context.Context, id string) (*entity.Profile, error) {
	p, ok := r.tx.balance(id)
	if !ok {
		return nil, errs.ErrProfileNotFound
	}
	r.tx.store.mu.Lock()
	stored := r.tx.store.profiles[id]
	r.tx.store.mu.Unlock()
	return entity.RestoreProfile(id, stored.Email, stored.Name, p, stored.IsAdmin, stored.CreatedAt, stored.UpdatedAt), nil
}

func (r *memProfiles) GetByIDForUpdate(ctx context.Context, id string) (*entity.Profile, error) {
	r.tx.store.mu.Lock()
	lock, ok := r.tx.store.rowLocks[id]
	r.tx.store.mu.Unlock()
	if !ok {
		return nil, errs.ErrProfileNotFound
	}
	lock.Lock()
	r.tx.locked = append(r.tx.locked, lock)
	return r.GetByID(ctx, id)
}

func (r *memProfiles) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	r.tx.store.mu.Lock()
	var id string
	for _, p := range r.tx.store.profiles {
		if p.Email == email {
			id = p.ID
		}
	}
	r.tx.store.mu.Unlock()
	if id == "" {
		return nil, errs.ErrProfileNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *memProfiles) Create(context.Context, *entity.Profile) error { return nil }

func (r *memProfiles) Credit(_ context.Context, id string, amount int64) (int64, error) {
	cur, ok := r.tx.balance(id)
	if !ok {
		return 0, errs.ErrProfileNotFound
	}
	r.tx.points[id] = cur + amount
	return cur + amount, nil
}

func (r *memProfiles) Debit(_ context.Context, id string, amount int64) (int64, error) {
	cur, ok := r.tx.balance(id)
	if !ok {
		return 0, errs.ErrProfileNotFound
	}
	if cur < amount {
		return 0, errs.ErrInsufficientPoints
	}
	r.tx.points[id] = cur - amount
	return cur - amount, nil
}

func (r *memProfiles) SetAdmin(context.Context, string, bool) error { return nil }

func (r *memProfiles) List(context.Context) ([]*entity.Profile, error) { return nil, nil }

type memLedger struct{ tx *memTx }

func (r *memLedger) all() []*entity.PointTransaction {
	r.tx.store.mu.Lock()
	out := append([]*entity.PointTransaction{}, r.tx.store.ledger...)
	r.tx.store.mu.Unlock()
	return append(out, r.tx.ledger...)
}

func (r *memLedger) Create(_ context.Context, e *entity.PointTransaction) error {
	r.tx.ledger = append(r.tx.ledger, e)
	return nil
}

func (r *memLedger) GetByID(_ context.Context, id string) (*entity.PointTransaction, error) {
	for _, e := range r.all() {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, errs.ErrTransactionNotFound
}

func (r *memLedger) GetByIdempotencyKey(_ context.Context, userID, key string) (*entity.PointTransaction, error) {
	for _, e := range r.all() {
		if e.UserID == userID && e.IdempotencyKey == key {
			return e, nil
		}
	}
	return nil, errs.ErrTransactionNotFound
}

// ListRecent orders newest first; entries sharing a timestamp come back
// latest-written first
func (r *memLedger) ListRecent(_ context.Context, userID string, limit int) ([]*entity.PointTransaction, error) {
	var out []*entity.PointTransaction
	all := r.all()
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].UserID == userID {
			out = append(out, all[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memLedger) SumByUser(_ context.Context, userID string) (int64, int64, error) {
	var sum, count int64
	for _, e := range r.all() {
		if e.UserID == userID {
			sum += e.Amount
			count++
		}
	}
	return sum, count, nil
}

type memCodes struct{ tx *memTx }

func (r *memCodes) Insert(_ context.Context, c *entity.RewardCode) error {
	if r.tx.store.failCodeInsert.Load() {
		return fmt.Errorf("%w: reward_codes unavailable", errs.ErrDatabaseConnection)
	}
	r.tx.store.mu.Lock()
	_, exists := r.tx.store.codes[c.Code]
	r.tx.store.mu.Unlock()
	for _, pending := range r.tx.codes {
		if pending.Code == c.Code {
			exists = true
		}
	}
	if exists {
		return errs.ErrDuplicateCodeCollision
	}
	r.tx.codes = append(r.tx.codes, c)
	return nil
}

func (r *memCodes) GetByTransactionID(_ context.Context, transactionID string) (*entity.RewardCode, error) {
	r.tx.store.mu.Lock()
	defer r.tx.store.mu.Unlock()
	for _, c := range r.tx.store.codes {
		if c.TransactionID == transactionID {
			return c, nil
		}
	}
	for _, c := range r.tx.codes {
		if c.TransactionID == transactionID {
			return c, nil
		}
	}
	return nil, errs.ErrRewardCodeNotFound
}

func (r *memCodes) MarkFulfilled(context.Context, string, time.Time) (bool, error) { return false, nil }

func (r *memCodes) ListRedemptions(context.Context) ([]*entity.Redemption, error) { return nil, nil }

// sequenceCodes hands out distinct codes
type sequenceCodes struct{ n atomic.Int64 }

func (g *sequenceCodes) RewardCode() (string, error) {
	return fmt.Sprintf("CODE-%06d", g.n.Add(1)), nil
}

func (g *sequenceCodes) NumericCode(digits int) (string, error) {
	return fmt.Sprintf("%0*d", digits, g.n.Add(1)), nil
}

// fixedClock is a TimeProvider pinned to fixedTime
type fixedClock struct{}

func (fixedClock) Now() time.Time { return fixedTime }

func (fixedClock) Since(t time.Time) core.Duration { return core.Duration(fixedTime.Sub(t)) }

func (fixedClock) Until(t time.Time) core.Duration { return core.Duration(t.Sub(fixedTime)) }

func (fixedClock) Sleep(core.Duration) {}

func (fixedClock) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
