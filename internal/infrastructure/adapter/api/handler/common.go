package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/i18n"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/middleware"
)

// callerOrAbort returns the authenticated caller, aborting with 401 when none is attached
func callerOrAbort(c *gin.Context, logger coreport.Logger) (entity.Principal, bool) {
	principal, ok := middleware.Principal(c)
	if !ok {
		middleware.AbortWithError(c, logger, domainerr.ErrUnauthenticated)
		return entity.Principal{}, false
	}
	return principal, true
}

func respond(c *gin.Context, status int, key i18n.Key, data any) {
	c.JSON(status, dto.OK(i18n.Message(middleware.Language(c), key), data))
}

func respondOK(c *gin.Context, key i18n.Key, data any) {
	respond(c, http.StatusOK, key, data)
}
