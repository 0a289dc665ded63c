package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/interfaces/http/middleware"
	"github.com/estately/estately/internal/shared/constants"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/utils"
)

// bindJSON binds and validates the request body, writing a 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return false
	}
	return true
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint(constants.ContextKeyUserID)
}

// tenantStore returns the store resolved by the tenant middleware. A route
// without that middleware is a wiring bug and answers 500.
func tenantStore(c *gin.Context) (*store.Store, bool) {
	s := middleware.CurrentStore(c)
	if s == nil {
		utils.ErrorResponseWithError(c, errors.NewInternalError("store not resolved"))
		return nil, false
	}
	return s, true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := utils.ParseIDParam(c, "id", name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, false
	}
	return id, true
}
