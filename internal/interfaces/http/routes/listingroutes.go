package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/interfaces/http/handlers"
	"github.com/estately/estately/internal/interfaces/http/middleware"
)

// ListingRouteConfig holds dependencies for a store owner's back office.
type ListingRouteConfig struct {
	ItemHandler      *handlers.ItemHandler
	ResourceHandler  *handlers.ResourceHandler
	ContactHandler   *handlers.ContactHandler
	FileHandler      *handlers.FileHandler
	AuthMiddleware   *middleware.AuthMiddleware
	TenantMiddleware *middleware.TenantMiddleware
}

// SetupListingRoutes configures tenant-scoped routes. Every route resolves
// the caller's store and requires it to be active.
func SetupListingRoutes(api *gin.RouterGroup, cfg *ListingRouteConfig) {
	owner := api.Group("")
	owner.Use(cfg.AuthMiddleware.RequireAuth(), cfg.TenantMiddleware.FromUser())

	items := owner.Group("/items")
	{
		items.GET("", cfg.ItemHandler.List)
		items.POST("", cfg.ItemHandler.Create)
		items.GET("/:id", cfg.ItemHandler.Get)
		items.PUT("/:id", cfg.ItemHandler.Update)
		items.DELETE("/:id", cfg.ItemHandler.Delete)
	}

	res := cfg.ResourceHandler
	res.Rates.Mount(owner.Group("/rates"))
	res.Fees.Mount(owner.Group("/fees"))
	res.FloorPlans.Mount(owner.Group("/floor_plans"))
	res.PlanMarkers.Mount(owner.Group("/plan_markers"))
	res.BookedDates.Mount(owner.Group("/booked_dates"))
	res.Links.Mount(owner.Group("/links"))
	res.Amenities.Mount(owner.Group("/amenities"))
	res.Members.Mount(owner.Group("/members"))

	metadatas := owner.Group("/metadatas")
	{
		metadatas.GET("", res.Metadata.List)
		metadatas.PUT("", res.UpsertMetadata)
		metadatas.GET("/:id", res.Metadata.Get)
		metadatas.DELETE("/:id", res.Metadata.Delete)
	}

	contacts := owner.Group("/contact_requests")
	{
		contacts.GET("", cfg.ContactHandler.List)
		contacts.GET("/:id", cfg.ContactHandler.Get)
		contacts.PATCH("/:id/status", cfg.ContactHandler.UpdateStatus)
		contacts.DELETE("/:id", cfg.ContactHandler.Delete)
	}

	files := owner.Group("/files")
	{
		files.GET("", cfg.FileHandler.List)
		files.POST("", cfg.FileHandler.Upload)
		files.DELETE("/:id", cfg.FileHandler.Delete)
	}
}
