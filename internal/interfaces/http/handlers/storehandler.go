package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/application/store/dto"
	"github.com/estately/estately/internal/application/store/usecases"
	"github.com/estately/estately/internal/shared/constants"
	"github.com/estately/estately/internal/shared/utils"
)

type StoreHandler struct {
	getMyStoreUC     *usecases.GetMyStoreUseCase
	updateMyStoreUC  *usecases.UpdateMyStoreUseCase
	getPublicStoreUC *usecases.GetPublicStoreUseCase
}

func NewStoreHandler(
	getMyStoreUC *usecases.GetMyStoreUseCase,
	updateMyStoreUC *usecases.UpdateMyStoreUseCase,
	getPublicStoreUC *usecases.GetPublicStoreUseCase,
) *StoreHandler {
	return &StoreHandler{
		getMyStoreUC:     getMyStoreUC,
		updateMyStoreUC:  updateMyStoreUC,
		getPublicStoreUC: getPublicStoreUC,
	}
}

type UpdateStoreRequest struct {
	Name         string `json:"name" binding:"max=120"`
	Description  string `json:"description" binding:"max=2000"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone" binding:"max=40"`
	Address      string `json:"address" binding:"max=255"`
	LogoFileID   *uint  `json:"logo_file_id"`
	CoverFileID  *uint  `json:"cover_file_id"`
	PrimaryColor string `json:"primary_color" binding:"omitempty,hexcolor"`
}

// @Summary		My store
// @Description	The caller's store, returned whatever its status
// @Tags			stores
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	utils.APIResponse{data=dto.StoreDTO}
// @Failure		404	{object}	utils.APIResponse
// @Router			/stores/me [get]
func (h *StoreHandler) GetMyStore(c *gin.Context) {
	s, err := h.getMyStoreUC.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToStoreDTO(s))
}

// @Summary		Update my store branding
// @Tags			stores
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			request	body		UpdateStoreRequest	true	"Branding"
// @Success		200		{object}	utils.APIResponse{data=dto.StoreDTO}
// @Failure		400		{object}	utils.APIResponse
// @Failure		403		{object}	utils.APIResponse
// @Router			/stores/me [put]
func (h *StoreHandler) UpdateMyStore(c *gin.Context) {
	var req UpdateStoreRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.updateMyStoreUC.Execute(c.Request.Context(), usecases.UpdateMyStoreCommand{
		UserID:       currentUserID(c),
		Name:         req.Name,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		LogoFileID:   req.LogoFileID,
		CoverFileID:  req.CoverFileID,
		PrimaryColor: req.PrimaryColor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "store updated", dto.ToStoreDTO(s))
}

// @Summary		Public store profile
// @Tags			public
// @Produce		json
// @Param			hostname	query		string	false	"Store hostname, or the X-Store-Hostname header"
// @Success		200			{object}	utils.APIResponse{data=dto.PublicStoreDTO}
// @Failure		404			{object}	utils.APIResponse
// @Failure		409			{object}	utils.APIResponse
// @Router			/public/store [get]
func (h *StoreHandler) GetPublicStore(c *gin.Context) {
	hostname := c.Query(constants.QueryHostname)
	if hostname == "" {
		hostname = c.GetHeader(constants.HeaderStoreHostname)
	}
	s, err := h.getPublicStoreUC.Execute(c.Request.Context(), hostname)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToPublicStoreDTO(s))
}
