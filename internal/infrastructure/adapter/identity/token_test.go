package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	"github.com/amirhossein-jamali/loyalty-service/mocks/port/core"
)

func TestNewTokenService_ShortSecret(t *testing.T) {
	_, err := NewTokenService("short", "iss", time.Minute, core.NewMockTimeProvider(t))

	assert.ErrorIs(t, err, ErrWeakSecret)
}

func TestTokenService_IssueAndParse(t *testing.T) {
	clock := core.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedNow).Maybe()
	svc, err := NewTokenService(testSecret, "loyalty-test", testTTL, clock)
	require.NoError(t, err)

	token, err := svc.Issue("user-1", "a@example.com", "session-1")
	require.NoError(t, err)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "session-1", claims.ID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, fixedNow.Add(testTTL).Unix(), claims.ExpiresAt.Unix())
}

func TestTokenService_Parse(t *testing.T) {
	newService := func(t *testing.T, now time.Time, issuer string) *TokenService {
		clock := core.NewMockTimeProvider(t)
		clock.EXPECT().Now().Return(now).Maybe()
		svc, err := NewTokenService(testSecret, issuer, testTTL, clock)
		require.NoError(t, err)
		return svc
	}

	t.Run("should reject an expired token", func(t *testing.T) {
		token, err := newService(t, fixedNow, "loyalty-test").Issue("u", "a@example.com", "s")
		require.NoError(t, err)

		_, err = newService(t, fixedNow.Add(testTTL+time.Minute), "loyalty-test").Parse(token)

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should reject a token from another issuer", func(t *testing.T) {
		token, err := newService(t, fixedNow, "someone-else").Issue("u", "a@example.com", "s")
		require.NoError(t, err)

		_, err = newService(t, fixedNow, "loyalty-test").Parse(token)

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should reject the none algorithm", func(t *testing.T) {
		claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject: "u", ID: "s", Issuer: "loyalty-test", ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = newService(t, fixedNow, "loyalty-test").Parse(token)

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should reject a token without a session id", func(t *testing.T) {
		svc := newService(t, fixedNow, "loyalty-test")
		claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject: "u", Issuer: "loyalty-test", ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = svc.Parse(token)

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}
