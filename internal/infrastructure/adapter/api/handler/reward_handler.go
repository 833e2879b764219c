package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/i18n"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/middleware"
)

// RewardHandler serves the reward catalog
type RewardHandler struct {
	catalog usecase.CatalogUseCase
	logger  coreport.Logger
}

// NewRewardHandler creates a new reward handler instance
func NewRewardHandler(catalog usecase.CatalogUseCase, logger coreport.Logger) *RewardHandler {
	return &RewardHandler{catalog: catalog, logger: logger}
}

// List handles GET /api/v1/rewards
func (h *RewardHandler) List(c *gin.Context) {
	rewards, err := h.catalog.ListRewards(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	out := make([]dto.RewardResponse, 0, len(rewards))
	for _, r := range rewards {
		out = append(out, dto.NewRewardResponse(r))
	}
	respondOK(c, i18n.RewardsListed, out)
}

// Redeem handles POST /api/v1/rewards/:rewardId/redeem. The body is optional.
func (h *RewardHandler) Redeem(c *gin.Context) {
	principal, ok := callerOrAbort(c, h.logger)
	if !ok {
		return
	}

	var req dto.RedeemRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		middleware.AbortWithBindingError(c, h.logger, err)
		return
	}

	result, reward, err := h.catalog.RedeemReward(c.Request.Context(), principal, c.Param("rewardId"), idempotencyKey(c, req.IdempotencyKey))
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	resp := dto.NewRedeemResponse(result)
	resp.RewardID = reward.ID
	resp.RewardName = reward.Name
	respondOK(c, i18n.RewardRedeemed, resp)
}
