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

// AdminHandler exposes the admin operations. Authorization happens in the use case.
type AdminHandler struct {
	admin  usecase.AdminUseCase
	logger coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(admin usecase.AdminUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, logger: logger}
}

// ListUsers handles GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	caller, ok := callerOrAbort(c, h.logger)
	if !ok {
		return
	}

	profiles, err := h.admin.ListUsers(c.Request.Context(), caller)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	users := make([]dto.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		users = append(users, dto.NewProfileResponse(p))
	}
	respondOK(c, i18n.UsersListed, users)
}

// AddPoints handles POST /api/v1/admin/points
func (h *AdminHandler) AddPoints(c *gin.Context) {
	caller, ok := callerOrAbort(c, h.logger)
	if !ok {
		return
	}

	var req dto.AddPointsByEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(c, h.logger, err)
		return
	}

	result, err := h.admin.AddPointsByEmail(c.Request.Context(), caller, req.Email, req.Amount, req.Description)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	respondOK(c, i18n.PointsAdded, dto.NewEarnResponse(result))
}

// ListRedemptions handles GET /api/v1/admin/redemptions
func (h *AdminHandler) ListRedemptions(c *gin.Context) {
	caller, ok := callerOrAbort(c, h.logger)
	if !ok {
		return
	}

	redemptions, err := h.admin.ListRedemptions(c.Request.Context(), caller)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	out := make([]dto.RedemptionResponse, 0, len(redemptions))
	for _, r := range redemptions {
		out = append(out, dto.NewRedemptionResponse(r))
	}
	respondOK(c, i18n.RedemptionsListed, out)
}

// Fulfill handles POST /api/v1/admin/redemptions/:transactionId/fulfill
func (h *AdminHandler) Fulfill(c *gin.Context) {
	caller, ok := callerOrAbort(c, h.logger)
	if !ok {
		return
	}

	code, err := h.admin.FulfillReward(c.Request.Context(), caller, c.Param("transactionId"))
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	respondOK(c, i18n.RewardFulfilled, dto.FulfillResponse{
		TransactionID: code.TransactionID,
		Code:          code.Code,
		FulfilledAt:   code.FulfilledAt,
	})
}

// CreateReward handles POST /api/v1/admin/rewards
func (h *AdminHandler) CreateReward(c *gin.Context) {
	caller, ok := callerOrAbort(c, h.logger)
	if !ok {
		return
	}

	var req dto.CreateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(c, h.logger, err)
		return
	}

	reward, err := h.admin.CreateReward(c.Request.Context(), caller, req.Name, req.PointsCost)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	respond(c, http.StatusCreated, i18n.RewardCreated, dto.NewRewardResponse(reward))
}

// CheckLedger handles GET /api/v1/admin/users/:userId/ledger
func (h *AdminHandler) CheckLedger(c *gin.Context) {
	caller, ok := callerOrAbort(c, h.logger)
	if !ok {
		return
	}

	check, err := h.admin.CheckLedger(c.Request.Context(), caller, c.Param("userId"))
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	respondOK(c, i18n.LedgerChecked, dto.NewLedgerCheckResponse(check))
}
