package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/estately/estately/internal/shared/logger"
)

type HealthHandler struct {
	db     *gorm.DB
	redis  *redis.Client
	logger logger.Interface
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client, logger logger.Interface) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient, logger: logger}
}

// HealthCheck handles GET /health. Redis is reported but does not fail the
// check, since rate limiting degrades to allow-all without it.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	body := gin.H{"status": "healthy", "service": "estately", "database": "up"}

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.Errorw("health check: database unreachable", "error", err)
		status = http.StatusServiceUnavailable
		body["status"], body["database"] = "unhealthy", "down"
	}

	if h.redis != nil {
		body["redis"] = "up"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			h.logger.Warnw("health check: redis unreachable", "error", err)
			body["redis"] = "down"
		}
	}

	c.JSON(status, body)
}
