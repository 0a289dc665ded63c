package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/infrastructure/ratelimit"
	"github.com/estately/estately/internal/interfaces/http/handlers"
	"github.com/estately/estately/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
	// AuthLimits throttles credential endpoints per client IP.
	AuthLimits ratelimit.Limits
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	limit := cfg.RateLimiter.Limit("auth", cfg.AuthLimits)

	auth := api.Group("/auth")
	{
		auth.POST("/register", limit, cfg.AuthHandler.Register)
		auth.POST("/login", limit, cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.AuthHandler.RefreshToken)
		auth.POST("/verify-email", cfg.AuthHandler.VerifyEmail)
		auth.POST("/forgot-password", limit, cfg.AuthHandler.ForgotPassword)
		auth.POST("/reset-password", limit, cfg.AuthHandler.ResetPassword)

		auth.POST("/resend-verification", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.ResendVerification)
		auth.PUT("/change-password", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.ChangePassword)
	}
}
