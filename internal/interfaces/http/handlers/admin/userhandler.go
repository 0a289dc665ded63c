// Package admin provides HTTP handlers for platform administration.
package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/application/user/dto"
	"github.com/estately/estately/internal/application/user/usecases"
	"github.com/estately/estately/internal/shared/constants"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
	"github.com/estately/estately/internal/shared/utils"
)

// UserHandler handles admin user operations
type UserHandler struct {
	listUC  *usecases.ListUsersUseCase
	blockUC *usecases.SetUserBlockedUseCase
	logger  logger.Interface
}

func NewUserHandler(listUC *usecases.ListUsersUseCase, blockUC *usecases.SetUserBlockedUseCase, logger logger.Interface) *UserHandler {
	return &UserHandler{listUC: listUC, blockUC: blockUC, logger: logger}
}

type SetBlockedRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

// @Summary		List users
// @Tags			admin
// @Produce		json
// @Security		Bearer
// @Param			search		query		string	false	"Email or name"
// @Param			blocked		query		bool	false	"Blocked filter"
// @Param			page		query		int		false	"Page"
// @Param			page_size	query		int		false	"Page size"
// @Success		200			{object}	utils.APIResponse{data=utils.ListResponse{items=[]dto.AdminUserDTO}}
// @Router			/admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	q := usecases.ListUsersQuery{Search: c.Query("search")}
	if raw := c.Query("blocked"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid blocked filter"))
			return
		}
		q.Blocked = &b
	}
	p := utils.ParsePagination(c)
	q.Page, q.PageSize = p.Page, p.PageSize

	res, err := h.listUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, dto.ToAdminUserDTOs(res.Users), res.Total, p.Page, p.PageSize)
}

// @Summary		Block or unblock a user
// @Tags			admin
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id		path		int					true	"User ID"
// @Param			request	body		SetBlockedRequest	true	"Blocked flag"
// @Success		200		{object}	utils.APIResponse{data=dto.UserDTO}
// @Failure		400		{object}	utils.APIResponse
// @Router			/admin/users/{id}/block [patch]
func (h *UserHandler) SetBlocked(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req SetBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}
	u, err := h.blockUC.Execute(c.Request.Context(), usecases.SetUserBlockedCommand{
		ActorID: c.GetUint(constants.ContextKeyUserID),
		UserID:  id,
		Blocked: *req.Blocked,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.logger.Infow("user block state changed", "user_id", id, "blocked", *req.Blocked)
	utils.SuccessResponse(c, http.StatusOK, "user updated", dto.ToUserDTO(u))
}
