package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/i18n"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/middleware"
)

// AuthHandler handles sign-up, sign-in, sign-out and email verification
type AuthHandler struct {
	auth         usecase.AuthUseCase
	verification usecase.VerificationUseCase
	cookies      *CookieHelper
	logger       coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	auth usecase.AuthUseCase,
	verification usecase.VerificationUseCase,
	cookies *CookieHelper,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		verification: verification,
		cookies:      cookies,
		logger:       logger,
	}
}

// SignUp handles POST /api/v1/auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(c, h.logger, err)
		return
	}

	profile, err := h.auth.SignUp(c.Request.Context(), usecase.SignUpRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	respond(c, http.StatusCreated, i18n.SignedUp, dto.NewProfileResponse(profile))
}

// SignIn handles POST /api/v1/auth/signin. The token is returned in the body
// and as an HttpOnly cookie.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(c, h.logger, err)
		return
	}

	session, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	h.cookies.SetSession(c, session.Token, secondsToDuration(session.ExpiresIn))
	respondOK(c, i18n.SignedIn, dto.SignInResponse{
		Token:     session.Token,
		ExpiresIn: session.ExpiresIn,
		UserID:    session.Principal.UserID,
	})
}

// SignOut handles POST /api/v1/auth/signout
func (h *AuthHandler) SignOut(c *gin.Context) {
	principal, ok := callerOrAbort(c, h.logger)
	if !ok {
		return
	}

	if err := h.auth.SignOut(c.Request.Context(), principal); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	h.cookies.ClearSession(c)
	respondOK(c, i18n.SignedOut, nil)
}

// SendOTP handles POST /api/v1/auth/otp/send
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(c, h.logger, err)
		return
	}

	if err := h.verification.SendVerificationEmail(c.Request.Context(), req.Email); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	respondOK(c, i18n.OTPSent, nil)
}

// VerifyOTP handles POST /api/v1/auth/otp/verify
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(c, h.logger, err)
		return
	}

	if err := h.verification.VerifyOTP(c.Request.Context(), req.Email, req.Code); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	respondOK(c, i18n.OTPVerified, nil)
}
