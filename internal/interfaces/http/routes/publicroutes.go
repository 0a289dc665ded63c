package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/infrastructure/ratelimit"
	"github.com/estately/estately/internal/interfaces/http/handlers"
	"github.com/estately/estately/internal/interfaces/http/middleware"
)

// PublicRouteConfig holds dependencies for unauthenticated routes.
type PublicRouteConfig struct {
	StoreHandler     *handlers.StoreHandler
	ItemHandler      *handlers.ItemHandler
	ContactHandler   *handlers.ContactHandler
	BillingHandler   *handlers.BillingHandler
	LocationHandler  *handlers.LocationHandler
	TenantMiddleware *middleware.TenantMiddleware
	RateLimiter      *middleware.RateLimiter
	// ContactLimits throttles inquiry submission per client IP.
	ContactLimits ratelimit.Limits
}

// SetupPublicRoutes configures storefront and catalogue routes.
func SetupPublicRoutes(api *gin.RouterGroup, cfg *PublicRouteConfig) {
	contactLimit := cfg.RateLimiter.Limit("contact", cfg.ContactLimits)

	api.GET("/public/store", cfg.StoreHandler.GetPublicStore)

	public := api.Group("/public")
	public.Use(cfg.TenantMiddleware.FromHostname())
	{
		public.GET("/items", cfg.ItemHandler.PublicList)
		public.GET("/items/:id", cfg.ItemHandler.PublicGet)
		public.POST("/contact_requests", contactLimit, cfg.ContactHandler.Create)
	}

	api.POST("/admin_contact_requests", contactLimit, cfg.ContactHandler.CreateAdminRequest)

	api.GET("/products", cfg.BillingHandler.ListProducts)

	locations := api.Group("/locations")
	{
		locations.GET("/states", cfg.LocationHandler.States)
		locations.GET("/states/:id/counties", cfg.LocationHandler.Counties)
		locations.GET("/counties/:id/cities", cfg.LocationHandler.Cities)
		// Static segment first so it is not taken for an id.
		locations.GET("/cities/search", cfg.LocationHandler.SearchCities)
		locations.GET("/cities/:id", cfg.LocationHandler.City)
	}
}
