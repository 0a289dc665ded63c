package http

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	billingUsecases "github.com/estately/estately/internal/application/billing/usecases"
	mediaUsecases "github.com/estately/estately/internal/application/media/usecases"
	storeUsecases "github.com/estately/estately/internal/application/store/usecases"
	"github.com/estately/estately/internal/infrastructure/auth"
	"github.com/estately/estately/internal/infrastructure/config"
	"github.com/estately/estately/internal/infrastructure/dns"
	"github.com/estately/estately/internal/infrastructure/email"
	"github.com/estately/estately/internal/infrastructure/payment"
	"github.com/estately/estately/internal/infrastructure/permission"
	"github.com/estately/estately/internal/infrastructure/pubsub"
	"github.com/estately/estately/internal/infrastructure/ratelimit"
	"github.com/estately/estately/internal/infrastructure/scheduler"
	"github.com/estately/estately/internal/infrastructure/storage"
	"github.com/estately/estately/internal/interfaces/http/middleware"
	shareddb "github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/logger"
	"github.com/estately/estately/internal/shared/services/markdown"
)

// passwordResetLimits caps reset emails per address.
var passwordResetLimits = ratelimit.Limits{PerHour: 3, PerDay: 10}

// Externals are the third-party integrations. Tests swap them for fakes.
type Externals struct {
	Storage mediaUsecases.ObjectStorage
	Gateway billingUsecases.PaymentGateway
	DNS     storeUsecases.DNSRecords
	Mailer  Mailer
	Redis   *redis.Client
}

// NewExternals connects the production integrations described by cfg.
func NewExternals(ctx context.Context, cfg *config.Config, log logger.Interface) (*Externals, error) {
	objectStorage, err := storage.NewS3Storage(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}

	var records storeUsecases.DNSRecords
	if cfg.DNS.Enabled {
		records, err = dns.NewRoute53Provisioner(ctx, cfg.DNS, cfg.Service.PublicIP, log)
		if err != nil {
			return nil, fmt.Errorf("failed to init dns provisioner: %w", err)
		}
	} else {
		records = dns.NewNoopProvisioner(log)
	}

	mailer, err := email.NewSMTPEmailService(email.SMTPConfig{
		Host:         cfg.Email.SMTPHost,
		Port:         cfg.Email.SMTPPort,
		Username:     cfg.Email.SMTPUser,
		Password:     cfg.Email.SMTPPassword,
		FromAddress:  cfg.Email.FromAddress,
		FromName:     cfg.Email.FromName,
		FrontendURL:  cfg.Server.FrontendURL,
		ServiceName:  cfg.Service.Name,
		AdminAddress: cfg.Email.AdminAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init email service: %w", err)
	}

	return &Externals{
		Storage: objectStorage,
		Gateway: payment.NewStripeGateway(cfg.Stripe, log),
		DNS:     records,
		Mailer:  mailer,
		Redis:   initRedis(ctx, cfg, log),
	}, nil
}

// initRedis creates the Redis client. An unreachable server is logged, not
// fatal: rate limits then fail open.
func initRedis(ctx context.Context, cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unreachable, rate limiting will fail open", "addr", cfg.Redis.GetAddr(), "error", err)
		return redisClient
	}
	log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())
	return redisClient
}

// services holds infrastructure services shared by use cases and middleware.
type services struct {
	txManager     shareddb.Transactor
	hasher        *auth.BcryptPasswordHasher
	jwtSvc        *auth.JWTService
	jwtService    *jwtServiceAdapter
	markdown      markdown.Service
	limiter       ratelimit.RateLimiter
	resetThrottle *throttleAdapter
	notifier      *notifierAdapter
	enforcer      *permission.Enforcer
}

func (c *Container) initInfrastructure() error {
	cfg, log := c.cfg, c.log

	c.repos = newRepositories(c.db, log)
	if c.ext.Redis != nil {
		c.productBus = pubsub.NewRedisProductEventBus(c.ext.Redis, log)
		c.repos.productCache.SetPublisher(c.productBus)
	}

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	limiter := ratelimit.NewRedisRateLimiter(c.ext.Redis)

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to init permission enforcer: %w", err)
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}

	c.svcs = &services{
		txManager:     shareddb.NewTransactionManager(c.db),
		hasher:        auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		jwtSvc:        jwtSvc,
		jwtService:    &jwtServiceAdapter{jwtSvc},
		markdown:      markdown.NewService(),
		limiter:       limiter,
		resetThrottle: &throttleAdapter{limiter: limiter, limits: passwordResetLimits},
		notifier:      &notifierAdapter{mailer: c.ext.Mailer},
		enforcer:      enforcer,
	}
	return nil
}

func (c *Container) initMiddlewares() {
	cfg, log := c.cfg, c.log

	c.authMiddleware = middleware.NewAuthMiddleware(c.svcs.jwtSvc, c.repos.userRepo, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.svcs.enforcer, log)
	c.tenantMiddleware = middleware.NewTenantMiddleware(c.ucs.resolver, log)
	c.rateLimiter = middleware.NewRateLimiter(c.svcs.limiter, cfg.RateLimit.Enabled, log)
	c.metrics = middleware.NewMetrics("estately")
}

// initScheduler registers the periodic store status reconciliation.
func (c *Container) initScheduler() error {
	if !c.cfg.Scheduler.Enabled {
		return nil
	}
	mgr, err := scheduler.NewSchedulerManager(c.log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := mgr.RegisterStoreSyncJob(c.cfg.Scheduler.StoreSyncInterval(), c.ucs.syncStatusesUC); err != nil {
		return fmt.Errorf("failed to register store sync job: %w", err)
	}
	c.schedulerManager = mgr
	return nil
}
