package handler

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/i18n"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/middleware"
)

// UserHandler serves the caller's own profile
type UserHandler struct {
	profileUseCase usecase.ProfileUseCase
	logger         coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	profileUseCase usecase.ProfileUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

// GetProfile handles GET /api/v1/me/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	principal, ok := callerOrAbort(c, h.logger)
	if !ok {
		return
	}

	view, err := h.profileUseCase.GetUserProfile(c.Request.Context(), principal)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	respondOK(c, i18n.ProfileLoaded, dto.NewProfileViewResponse(view))
}
