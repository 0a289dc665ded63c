package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/interfaces/http/handlers"
	adminHandlers "github.com/estately/estately/internal/interfaces/http/handlers/admin"
	"github.com/estately/estately/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for platform administration routes.
type AdminRouteConfig struct {
	UserHandler          *adminHandlers.UserHandler
	StoreHandler         *adminHandlers.StoreHandler
	BillingHandler       *handlers.BillingHandler
	ContactHandler       *handlers.ContactHandler
	LocationHandler      *handlers.LocationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures admin routes, authorized by the policy store.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	admin := api.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.PermissionMiddleware.Enforce())
	{
		admin.GET("/users", cfg.UserHandler.List)
		admin.PATCH("/users/:id/block", cfg.UserHandler.SetBlocked)

		admin.GET("/stores", cfg.StoreHandler.List)
		admin.PATCH("/stores/:id", cfg.StoreHandler.Update)
		admin.POST("/stores/:id/dns-check", cfg.StoreHandler.CheckDNS)

		admin.GET("/products", cfg.BillingHandler.AdminListProducts)
		admin.POST("/products", cfg.BillingHandler.CreateProduct)
		admin.PATCH("/products/:id", cfg.BillingHandler.SetProductActive)

		admin.GET("/contact_requests", cfg.ContactHandler.ListAdminRequests)
		admin.PATCH("/contact_requests/:id/status", cfg.ContactHandler.UpdateAdminRequestStatus)

		admin.POST("/locations/import", cfg.LocationHandler.Import)
	}
}
