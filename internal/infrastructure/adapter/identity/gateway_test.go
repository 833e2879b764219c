package identity

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/model"
	"github.com/amirhossein-jamali/loyalty-service/mocks/port/core"
)

const (
	testSecret = "this-is-a-test-secret-with-32-bytes!"
	testTTL    = 15 * time.Minute
)

var fixedNow = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

// memCredentials is an in-memory credentialStore
type memCredentials struct {
	mu   sync.Mutex
	rows map[string]*model.Credential
}

func newMemCredentials() *memCredentials {
	return &memCredentials{rows: make(map[string]*model.Credential)}
}

func (m *memCredentials) Create(_ context.Context, c *model.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.Email == c.Email {
			return errs.ErrDuplicateEmail
		}
	}
	copied := *c
	m.rows[c.ID] = &copied
	return nil
}

func (m *memCredentials) GetByEmail(_ context.Context, email string) (*model.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.Email == email {
			copied := *row
			return &copied, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *memCredentials) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

func (m *memCredentials) MarkVerified(_ context.Context, email string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.Email == email {
			if row.EmailVerifiedAt == nil {
				row.EmailVerifiedAt = &at
			}
			return nil
		}
	}
	return errs.ErrNotFound
}

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

type gatewayFixture struct {
	gateway     *Gateway
	credentials *memCredentials
	redis       *miniredis.Miniredis
	clock       *core.MockTimeProvider
}

func newGatewayFixture(t *testing.T, options Options) *gatewayFixture {
	t.Helper()

	clock := core.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedNow).Maybe()

	logger := core.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	client, mr := setupTestRedis(t)
	tokens, err := NewTokenService(testSecret, "loyalty-test", testTTL, clock)
	require.NoError(t, err)

	if options.BcryptCost == 0 {
		options.BcryptCost = bcrypt.MinCost
	}
	credentials := newMemCredentials()
	gateway, err := NewGateway(credentials, tokens, NewSessionStore(client), clock, logger, options)
	require.NoError(t, err)

	return &gatewayFixture{gateway: gateway, credentials: credentials, redis: mr, clock: clock}
}

func TestGateway_RegisterAndAuthenticate(t *testing.T) {
	f := newGatewayFixture(t, Options{})
	ctx := context.Background()

	principal, err := f.gateway.Register(ctx, "  Mario.Rossi@Example.com ", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, principal.UserID)
	assert.Equal(t, "mario.rossi@example.com", principal.Email)

	session, err := f.gateway.Authenticate(ctx, "mario.rossi@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, principal.UserID, session.Principal.UserID)
	assert.NotEmpty(t, session.Principal.SessionID)
	assert.Equal(t, int64(testTTL.Seconds()), session.ExpiresIn)
	assert.True(t, f.redis.Exists("session:"+principal.UserID+":"+session.Principal.SessionID))

	resolved, err := f.gateway.Resolve(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Principal, resolved)
}

func TestGateway_Register(t *testing.T) {
	t.Run("should reject a duplicate email", func(t *testing.T) {
		f := newGatewayFixture(t, Options{})
		_, err := f.gateway.Register(context.Background(), "a@example.com", "password-1")
		require.NoError(t, err)

		_, err = f.gateway.Register(context.Background(), "A@example.com", "password-2")

		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})

	t.Run("should reject a password bcrypt cannot hash", func(t *testing.T) {
		f := newGatewayFixture(t, Options{})

		_, err := f.gateway.Register(context.Background(), "a@example.com", strings.Repeat("x", 73))

		assert.ErrorIs(t, err, errs.ErrInvalidPassword)
	})

	t.Run("should reject a malformed email", func(t *testing.T) {
		f := newGatewayFixture(t, Options{})

		_, err := f.gateway.Register(context.Background(), "not-an-email", "password-1")

		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
	})
}

func TestGateway_Authenticate(t *testing.T) {
	t.Run("should return the same error for unknown email and wrong password", func(t *testing.T) {
		f := newGatewayFixture(t, Options{})
		_, err := f.gateway.Register(context.Background(), "a@example.com", "password-1")
		require.NoError(t, err)

		_, wrongPassword := f.gateway.Authenticate(context.Background(), "a@example.com", "password-2")
		_, unknownEmail := f.gateway.Authenticate(context.Background(), "b@example.com", "password-1")

		assert.ErrorIs(t, wrongPassword, errs.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, errs.ErrInvalidCredentials)
	})

	t.Run("should refuse unverified accounts when verification is required", func(t *testing.T) {
		f := newGatewayFixture(t, Options{RequireEmailVerification: true})
		_, err := f.gateway.Register(context.Background(), "a@example.com", "password-1")
		require.NoError(t, err)

		_, err = f.gateway.Authenticate(context.Background(), "a@example.com", "password-1")
		assert.ErrorIs(t, err, errs.ErrEmailNotVerified)

		require.NoError(t, f.gateway.MarkEmailVerified(context.Background(), "a@example.com"))
		_, err = f.gateway.Authenticate(context.Background(), "a@example.com", "password-1")
		assert.NoError(t, err)
	})
}

func TestGateway_Resolve(t *testing.T) {
	signIn := func(t *testing.T, f *gatewayFixture) (string, string) {
		principal, err := f.gateway.Register(context.Background(), "a@example.com", "password-1")
		require.NoError(t, err)
		session, err := f.gateway.Authenticate(context.Background(), "a@example.com", "password-1")
		require.NoError(t, err)
		return principal.UserID, session.Token
	}

	t.Run("should reject a revoked session", func(t *testing.T) {
		f := newGatewayFixture(t, Options{})
		_, token := signIn(t, f)
		principal, err := f.gateway.Resolve(context.Background(), token)
		require.NoError(t, err)

		require.NoError(t, f.gateway.Revoke(context.Background(), principal))

		_, err = f.gateway.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should reject a session whose redis entry expired", func(t *testing.T) {
		f := newGatewayFixture(t, Options{})
		_, token := signIn(t, f)

		f.redis.FastForward(testTTL + time.Second)

		_, err := f.gateway.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should reject a tampered token", func(t *testing.T) {
		f := newGatewayFixture(t, Options{})
		_, token := signIn(t, f)

		_, err := f.gateway.Resolve(context.Background(), token+"tampered")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should drop every session when the account is deleted", func(t *testing.T) {
		f := newGatewayFixture(t, Options{})
		userID, token := signIn(t, f)

		require.NoError(t, f.gateway.Delete(context.Background(), userID))

		_, err := f.gateway.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
		_, err = f.gateway.Authenticate(context.Background(), "a@example.com", "password-1")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}
