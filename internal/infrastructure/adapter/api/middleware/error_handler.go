package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/i18n"
)

// ErrorHandler middleware recovers from panics and returns a generic error response
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": RequestID(c),
					"user_agent": c.Request.UserAgent(),
				})

				code := domainerr.ErrorCode(domainerr.ErrInternalServer)
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Fail(code, i18n.ErrorMessage(Language(c), code)))
			}
		}()

		c.Next()
	}
}

// StatusCode maps a domain error onto an HTTP status
func StatusCode(err error) int {
	code := domainerr.ErrorCode(err)
	switch code {
	case domainerr.CodeInvalidCredentials, domainerr.CodeUnauthenticated:
		return http.StatusUnauthorized
	case domainerr.CodeUnauthorized, domainerr.CodeEmailNotVerified:
		return http.StatusForbidden
	case domainerr.CodeProfileNotFound, domainerr.CodeRewardNotFound, domainerr.CodeTransactionNotFound,
		domainerr.CodeRewardCodeNotFound, domainerr.CodeNotFound:
		return http.StatusNotFound
	case domainerr.CodeDuplicateEmail, domainerr.CodeAlreadyFulfilled, domainerr.CodeDuplicateReward,
		domainerr.CodeIdempotencyKeyReused, domainerr.CodeProfileLocked:
		return http.StatusConflict
	case domainerr.CodeInsufficientPoints, domainerr.CodeConstraintViolation:
		return http.StatusUnprocessableEntity
	case domainerr.CodeDuplicateCodeCollision, domainerr.CodeTransientStore:
		return http.StatusServiceUnavailable
	}
	if code >= 4000 && code < 5000 {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

type logFielder interface {
	LogFields() map[string]any
}

// AbortWithError logs err and writes the localized envelope for it.
// Internal error text never reaches the client.
func AbortWithError(c *gin.Context, logger coreport.Logger, err error) {
	status := StatusCode(err)
	code := domainerr.ErrorCode(err)

	fields := map[string]any{
		"error":      err.Error(),
		"error_code": code,
		"status":     status,
		"path":       c.FullPath(),
		"request_id": RequestID(c),
	}
	var typed logFielder
	if errors.As(err, &typed) {
		for k, v := range typed.LogFields() {
			fields[k] = v
		}
	}
	if principal, ok := Principal(c); ok {
		fields["user_id"] = principal.UserID
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Debug("Request rejected", fields)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.Fail(code, i18n.ErrorMessage(Language(c), code)))
}

// AbortWithBindingError answers a malformed request body
func AbortWithBindingError(c *gin.Context, logger coreport.Logger, err error) {
	logger.Debug("Invalid request body", map[string]any{
		"error":      err.Error(),
		"path":       c.FullPath(),
		"request_id": RequestID(c),
	})
	_ = c.Error(err)
	code := domainerr.CodeInvalidRequest
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.Fail(code, i18n.ErrorMessage(Language(c), code)))
}
