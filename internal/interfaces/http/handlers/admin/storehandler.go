package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/application/store/dto"
	"github.com/estately/estately/internal/application/store/usecases"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/utils"
)

// StoreHandler handles admin store operations
type StoreHandler struct {
	listUC     *usecases.ListStoresUseCase
	updateUC   *usecases.AdminUpdateStoreUseCase
	checkDNSUC *usecases.CheckStoreDNSUseCase
}

func NewStoreHandler(
	listUC *usecases.ListStoresUseCase,
	updateUC *usecases.AdminUpdateStoreUseCase,
	checkDNSUC *usecases.CheckStoreDNSUseCase,
) *StoreHandler {
	return &StoreHandler{listUC: listUC, updateUC: updateUC, checkDNSUC: checkDNSUC}
}

type UpdateStoreRequest struct {
	Protected *bool   `json:"protected"`
	Status    *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// @Summary		List stores
// @Tags			admin
// @Produce		json
// @Security		Bearer
// @Param			search	query		string	false	"Name or hostname"
// @Param			status	query		string	false	"active or inactive"
// @Success		200		{object}	utils.APIResponse{data=utils.ListResponse{items=[]dto.StoreDTO}}
// @Router			/admin/stores [get]
func (h *StoreHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	res, err := h.listUC.Execute(c.Request.Context(), usecases.ListStoresQuery{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, dto.ToStoreDTOs(res.Stores), res.Total, p.Page, p.PageSize)
}

// @Summary		Update a store's protection or status
// @Description	A protected store keeps its status through subscription changes
// @Tags			admin
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id		path		int					true	"Store ID"
// @Param			request	body		UpdateStoreRequest	true	"Fields to change"
// @Success		200		{object}	utils.APIResponse{data=dto.StoreDTO}
// @Router			/admin/stores/{id} [patch]
func (h *StoreHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "store")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}
	s, err := h.updateUC.Execute(c.Request.Context(), usecases.AdminUpdateStoreCommand{
		StoreID:   id,
		Protected: req.Protected,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "store updated", dto.ToStoreDTO(s))
}

// @Summary		Check a store's DNS record
// @Tags			admin
// @Produce		json
// @Security		Bearer
// @Param			id		path		int		true	"Store ID"
// @Param			repair	query		bool	false	"Recreate a missing record"
// @Success		200		{object}	utils.APIResponse{data=dto.DNSCheckDTO}
// @Router			/admin/stores/{id}/dns-check [post]
func (h *StoreHandler) CheckDNS(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "store")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	repair, _ := strconv.ParseBool(c.Query("repair"))
	res, err := h.checkDNSUC.Execute(c.Request.Context(), id, repair)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.DNSCheckDTO{Hostname: res.Hostname, Exists: res.Exists, Repaired: res.Repaired})
}
