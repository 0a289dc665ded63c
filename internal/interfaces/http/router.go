package http

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/estately/estately/docs"
	"github.com/estately/estately/internal/infrastructure/config"
	"github.com/estately/estately/internal/infrastructure/ratelimit"
	"github.com/estately/estately/internal/interfaces/http/middleware"
	"github.com/estately/estately/internal/interfaces/http/routes"
	"github.com/estately/estately/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(ctx, db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// NewRouterWithExternals creates a router around the given integrations.
func NewRouterWithExternals(db *gorm.DB, cfg *config.Config, ext *Externals, log logger.Interface) (*Router, error) {
	c, err := NewContainerWithExternals(db, cfg, ext, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	h := r.hdlrs

	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.RequestLogger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(r.metrics.Middleware())

	r.engine.GET("/health", h.healthHandler.HealthCheck)
	r.engine.GET("/metrics", r.metrics.Handler())
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	// Registered before the limiter so processor retries are never throttled.
	api.POST("/billings/webhook", h.billingHandler.Webhook)
	api.Use(r.rateLimiter.Limit("api", ratelimit.Limits{PerMinute: r.cfg.RateLimit.RequestsPerMinute}))

	authLimits := ratelimit.Limits{PerHour: r.cfg.RateLimit.AuthRequestsPerHour}

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    h.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
		AuthLimits:     authLimits,
	})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		AuthHandler:    h.authHandler,
		StoreHandler:   h.storeHandler,
		BillingHandler: h.billingHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupPublicRoutes(api, &routes.PublicRouteConfig{
		StoreHandler:     h.storeHandler,
		ItemHandler:      h.itemHandler,
		ContactHandler:   h.contactHandler,
		BillingHandler:   h.billingHandler,
		LocationHandler:  h.locationHandler,
		TenantMiddleware: r.tenantMiddleware,
		RateLimiter:      r.rateLimiter,
		ContactLimits:    authLimits,
	})
	routes.SetupListingRoutes(api, &routes.ListingRouteConfig{
		ItemHandler:      h.itemHandler,
		ResourceHandler:  h.resourceHandler,
		ContactHandler:   h.contactHandler,
		FileHandler:      h.fileHandler,
		AuthMiddleware:   r.authMiddleware,
		TenantMiddleware: r.tenantMiddleware,
	})
	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		UserHandler:          h.adminUserHandler,
		StoreHandler:         h.adminStoreHandler,
		BillingHandler:       h.billingHandler,
		ContactHandler:       h.contactHandler,
		LocationHandler:      h.locationHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
