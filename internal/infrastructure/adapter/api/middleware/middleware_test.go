package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/logger"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		err  error
		want int
	}{
		{errs.ErrUnauthenticated, http.StatusUnauthorized},
		{errs.ErrInvalidCredentials, http.StatusUnauthorized},
		{errs.ErrUnauthorized, http.StatusForbidden},
		{errs.ErrEmailNotVerified, http.StatusForbidden},
		{errs.NewInsufficientPointsError("u", 10, 0), http.StatusUnprocessableEntity},
		{fmt.Errorf("wrapped: %w", errs.ErrRewardNotFound), http.StatusNotFound},
		{errs.NewAlreadyFulfilledError("tx", "c"), http.StatusConflict},
		{errs.ErrDuplicateEmail, http.StatusConflict},
		{errs.NewRedemptionError("u", 100, "idempotency", errs.ErrDuplicateIdempotencyKey), http.StatusConflict},
		{errs.ErrInvalidPassword, http.StatusBadRequest},
		{errs.ErrInvalidAmount, http.StatusBadRequest},
		{errs.ErrOTPInvalid, http.StatusBadRequest},
		{errs.ErrTransientStore, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCode(tc.err))
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc "))
	assert.Empty(t, bearerToken("Basic abc"))
	assert.Empty(t, bearerToken("abc"))
	assert.Empty(t, bearerToken(""))
}

func TestRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var (
		seenID   string
		seenCtx  any
		seenLang language.Tag
	)
	router := gin.New()
	router.Use(RequestContext())
	router.GET("/", func(c *gin.Context) {
		seenID = RequestID(c)
		seenCtx = c.Request.Context().Value(coreport.RequestIDKey)
		seenLang = Language(c)
	})

	t.Run("should keep a well-formed incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		req.Header.Set("Accept-Language", "it")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", seenID)
		assert.Equal(t, "abc-123", seenCtx)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, language.Italian, seenLang)
	})

	t.Run("should replace a hostile incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "evil\nheader")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.NotEqual(t, "evil\nheader", seenID)
		assert.Len(t, seenID, 36)
		assert.Equal(t, language.English, seenLang)
	})
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestContext(), ErrorHandler(logger.NewNopLogger()))
	router.GET("/panic", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Something went wrong. Please try again later.","code":5000}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS([]string{"https://app.example.com"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
