package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
)

const principalKey = "principal"

// Authenticator resolves a session token; satisfied by usecase.AuthUseCase
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (entity.Principal, error)
}

// Auth requires a valid session. The token comes from the Authorization
// bearer header, falling back to the session cookie.
func Auth(authenticator Authenticator, cookieName string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(cookieName)
		}
		if token == "" {
			AbortWithError(c, logger, domainerr.ErrUnauthenticated)
			return
		}

		principal, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, logger, err)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// Principal returns the caller attached by Auth
func Principal(c *gin.Context) (entity.Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return entity.Principal{}, false
	}
	principal, ok := value.(entity.Principal)
	return principal, ok && !principal.IsZero()
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
