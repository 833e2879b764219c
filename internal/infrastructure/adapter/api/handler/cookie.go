package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name   string
	Domain string
	Path   string
	Secure bool
}

// CookieHelper manages the session cookie
type CookieHelper struct {
	config CookieConfig
}

// NewCookieHelper creates a new cookie helper with the given configuration
func NewCookieHelper(config CookieConfig) *CookieHelper {
	if config.Path == "" {
		config.Path = "/"
	}
	return &CookieHelper{config: config}
}

// Name returns the cookie name
func (h *CookieHelper) Name() string {
	return h.config.Name
}

// SetSession stores the session token
func (h *CookieHelper) SetSession(c *gin.Context, token string, expiry time.Duration) {
	h.setCookie(c, token, int(expiry.Seconds()))
}

// ClearSession removes the session cookie
func (h *CookieHelper) ClearSession(c *gin.Context) {
	h.setCookie(c, "", -1)
}

func (h *CookieHelper) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.config.Name,
		value,
		maxAge,
		h.config.Path,
		h.config.Domain,
		h.config.Secure,
		true, // httpOnly
	)
}
