package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/i18n"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/middleware"
)

// IdempotencyKeyHeader may carry the idempotency key instead of the body
const IdempotencyKeyHeader = "Idempotency-Key"

// TransactionHandler handles self-service point movements
type TransactionHandler struct {
	pointsUseCase usecase.PointsUseCase
	logger        coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	pointsUseCase usecase.PointsUseCase,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		pointsUseCase: pointsUseCase,
		logger:        logger,
	}
}

// Earn handles POST /api/v1/me/points/earn (simulated purchase)
func (h *TransactionHandler) Earn(c *gin.Context) {
	principal, ok := callerOrAbort(c, h.logger)
	if !ok {
		return
	}

	var req dto.PointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(c, h.logger, err)
		return
	}

	result, err := h.pointsUseCase.AddPoints(c.Request.Context(), usecase.AddPointsRequest{
		UserID:         principal.UserID,
		Amount:         req.Amount,
		Description:    req.Description,
		IdempotencyKey: idempotencyKey(c, req.IdempotencyKey),
	})
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	respondOK(c, i18n.PointsAdded, dto.NewEarnResponse(result))
}

// Redeem handles POST /api/v1/me/points/redeem
func (h *TransactionHandler) Redeem(c *gin.Context) {
	principal, ok := callerOrAbort(c, h.logger)
	if !ok {
		return
	}

	var req dto.PointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(c, h.logger, err)
		return
	}

	result, err := h.pointsUseCase.Redeem(c.Request.Context(), usecase.RedeemRequest{
		UserID:         principal.UserID,
		Amount:         req.Amount,
		Description:    req.Description,
		IdempotencyKey: idempotencyKey(c, req.IdempotencyKey),
	})
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	respondOK(c, i18n.PointsRedeemed, dto.NewRedeemResponse(result))
}

// idempotencyKey prefers the body field over the header
func idempotencyKey(c *gin.Context, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	return c.GetHeader(IdempotencyKeyHeader)
}

func secondsToDuration(seconds int64) time.Duration {
	return time.Duration(seconds) * time.Second
}
