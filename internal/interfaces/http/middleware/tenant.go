package middleware

import (
	"github.com/gin-gonic/gin"

	storeUsecases "github.com/estately/estately/internal/application/store/usecases"
	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/shared/constants"
	"github.com/estately/estately/internal/shared/logger"
	"github.com/estately/estately/internal/shared/utils"
)

// TenantMiddleware resolves the store a request operates on and places it
// in the gin context.
type TenantMiddleware struct {
	resolver *storeUsecases.Resolver
	logger   logger.Interface
}

func NewTenantMiddleware(resolver *storeUsecases.Resolver, logger logger.Interface) *TenantMiddleware {
	return &TenantMiddleware{resolver: resolver, logger: logger}
}

// FromHostname reads ?hostname= and falls back to the X-Store-Hostname
// header.
func (m *TenantMiddleware) FromHostname() gin.HandlerFunc {
	return func(c *gin.Context) {
		hostname := c.Query(constants.QueryHostname)
		if hostname == "" {
			hostname = c.GetHeader(constants.HeaderStoreHostname)
		}
		m.resolve(c, storeUsecases.ResolveInput{Hostname: hostname})
	}
}

// FromUser resolves the caller's own store. It must run after RequireAuth.
func (m *TenantMiddleware) FromUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.resolve(c, storeUsecases.ResolveInput{
			UserID:           c.GetUint(constants.ContextKeyUserID),
			RequireOwnership: true,
		})
	}
}

func (m *TenantMiddleware) resolve(c *gin.Context, in storeUsecases.ResolveInput) {
	s, err := m.resolver.Resolve(c.Request.Context(), in)
	if err != nil {
		m.logger.Debugw("tenant resolution failed", "hostname", in.Hostname, "user_id", in.UserID, "error", err)
		utils.ErrorResponseWithError(c, err)
		c.Abort()
		return
	}
	c.Set(constants.ContextKeyStore, s)
	c.Next()
}

// CurrentStore returns the store placed by the tenant middleware.
func CurrentStore(c *gin.Context) *store.Store {
	v, ok := c.Get(constants.ContextKeyStore)
	if !ok {
		return nil
	}
	s, _ := v.(*store.Store)
	return s
}
