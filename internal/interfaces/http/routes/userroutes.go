package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/interfaces/http/handlers"
	"github.com/estately/estately/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for the caller's own account and store.
type UserRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	StoreHandler   *handlers.StoreHandler
	BillingHandler *handlers.BillingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures account routes. They need a login but not an
// active store, so an owner can reach billing while the store is inactive.
func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	me := api.Group("")
	me.Use(cfg.AuthMiddleware.RequireAuth())
	{
		me.GET("/users/me", cfg.AuthHandler.GetCurrentUser)

		me.GET("/stores/me", cfg.StoreHandler.GetMyStore)
		me.PUT("/stores/me", cfg.StoreHandler.UpdateMyStore)

		me.GET("/subscription", cfg.BillingHandler.MySubscription)
		me.POST("/billings/checkout", cfg.BillingHandler.Checkout)
		me.POST("/billings/portal", cfg.BillingHandler.Portal)
		me.POST("/billings/change-plan", cfg.BillingHandler.ChangePlan)
	}
}
