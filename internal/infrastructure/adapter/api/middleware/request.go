package middleware

import (
	"context"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/text/language"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/i18n"
)

// RequestIDHeader carries the request ID in and out
const RequestIDHeader = "X-Request-ID"

const (
	requestIDKey = "request_id"
	languageKey  = "language"
)

var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestContext assigns a request ID and resolves the caller's language.
// A well-formed incoming X-Request-ID is kept.
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !validRequestID.MatchString(id) {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Set(languageKey, i18n.Match(c.GetHeader("Accept-Language")))
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), coreport.RequestIDKey, id))

		c.Next()
	}
}

// RequestID returns the ID assigned by RequestContext
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Language returns the caller's language, English when unresolved
func Language(c *gin.Context) language.Tag {
	if tag, ok := c.Get(languageKey); ok {
		if lang, ok := tag.(language.Tag); ok {
			return lang
		}
	}
	return language.English
}
