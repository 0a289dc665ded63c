package http

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/estately/estately/internal/infrastructure/config"
	"github.com/estately/estately/internal/infrastructure/pubsub"
	"github.com/estately/estately/internal/infrastructure/scheduler"
	"github.com/estately/estately/internal/interfaces/http/middleware"
	"github.com/estately/estately/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases,
// handlers and background services, and tears them down in Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	ext    *Externals

	repos *repositories
	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	tenantMiddleware     *middleware.TenantMiddleware
	rateLimiter          *middleware.RateLimiter
	metrics              *middleware.Metrics

	schedulerManager *scheduler.SchedulerManager
	productBus       *pubsub.RedisProductEventBus
	stopBackground   context.CancelFunc
}

// NewContainer wires the application against the integrations configured in
// cfg.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	ext, err := NewExternals(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return NewContainerWithExternals(db, cfg, ext, log)
}

// NewContainerWithExternals wires the application around the given
// integrations.
func NewContainerWithExternals(db *gorm.DB, cfg *config.Config, ext *Externals, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		ext:    ext,
	}

	// Section 1: repositories and shared services
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: use cases, then the handlers and middlewares built on them
	c.initUseCases()
	c.initHandlers()
	c.initMiddlewares()

	// Section 3: background jobs
	if err := c.initScheduler(); err != nil {
		return nil, err
	}

	return c, nil
}

// StartBackground starts the scheduler, if enabled, and listens for product
// changes made by other instances.
func (c *Container) StartBackground() {
	if c.schedulerManager != nil {
		c.schedulerManager.Start()
	}
	if c.productBus == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.stopBackground = cancel
	go func() {
		err := c.productBus.Subscribe(ctx, func(_ context.Context, e pubsub.ProductChangeEvent) {
			c.repos.productCache.Purge()
			c.log.Debugw("product cache purged by peer", "product_id", e.ProductID)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			c.log.Warnw("product change subscriber stopped", "error", err)
		}
	}()
}

// Shutdown stops background work and closes connections the container owns.
// The database is closed by its owner.
func (c *Container) Shutdown() error {
	var errs []error
	if c.stopBackground != nil {
		c.stopBackground()
	}
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.ext.Redis != nil {
		if err := c.ext.Redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
