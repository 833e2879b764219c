package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/middleware"
)

// Handlers bundles every HTTP handler the router serves
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Transaction *handler.TransactionHandler
	Reward      *handler.RewardHandler
	Admin       *handler.AdminHandler
	Health      *handler.HealthHandler
	Metrics     http.Handler
}

// SetupRoutes configures all the routes for the API.
// Admin routes only require a session here; the admin check runs per call in the use case.
func SetupRoutes(router *gin.Engine, h Handlers, requireAuth gin.HandlerFunc) {
	router.GET("/health", h.Health.Check)
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}

	v1 := router.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/signup", h.Auth.SignUp)
		authRoutes.POST("/signin", h.Auth.SignIn)
		authRoutes.POST("/signout", requireAuth, h.Auth.SignOut)
		authRoutes.POST("/otp/send", h.Auth.SendOTP)
		authRoutes.POST("/otp/verify", h.Auth.VerifyOTP)
	}

	meRoutes := v1.Group("/me", requireAuth)
	{
		meRoutes.GET("/profile", h.User.GetProfile)
		meRoutes.POST("/points/earn", h.Transaction.Earn)
		meRoutes.POST("/points/redeem", h.Transaction.Redeem)
	}

	rewardRoutes := v1.Group("/rewards")
	{
		rewardRoutes.GET("", h.Reward.List)
		rewardRoutes.POST("/:rewardId/redeem", requireAuth, h.Reward.Redeem)
	}

	adminRoutes := v1.Group("/admin", requireAuth)
	{
		adminRoutes.GET("/users", h.Admin.ListUsers)
		adminRoutes.GET("/users/:userId/ledger", h.Admin.CheckLedger)
		adminRoutes.POST("/points", h.Admin.AddPoints)
		adminRoutes.GET("/redemptions", h.Admin.ListRedemptions)
		adminRoutes.POST("/redemptions/:transactionId/fulfill", h.Admin.Fulfill)
		adminRoutes.POST("/rewards", h.Admin.CreateReward)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string, extra ...gin.HandlerFunc) {
	// Request context first so every later middleware sees the request ID and language
	router.Use(middleware.RequestContext())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(extra...)
}
