package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/application/contact/dto"
	"github.com/estately/estately/internal/application/contact/usecases"
	"github.com/estately/estately/internal/domain/contact"
	"github.com/estately/estately/internal/shared/utils"
)

type ContactHandler struct {
	createUC   *usecases.CreateContactRequestUseCase
	requestsUC *usecases.ContactRequestsUseCase
	adminUC    *usecases.AdminContactRequestsUseCase
}

func NewContactHandler(
	createUC *usecases.CreateContactRequestUseCase,
	requestsUC *usecases.ContactRequestsUseCase,
	adminUC *usecases.AdminContactRequestsUseCase,
) *ContactHandler {
	return &ContactHandler{createUC: createUC, requestsUC: requestsUC, adminUC: adminUC}
}

type ContactRequestBody struct {
	ItemID  *uint  `json:"item_id"`
	Name    string `json:"name" binding:"required,max=120"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"max=40"`
	Message string `json:"message" binding:"required,max=5000"`
}

type AdminContactRequestBody struct {
	Name    string `json:"name" binding:"required,max=120"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"max=40"`
	Company string `json:"company" binding:"max=120"`
	Message string `json:"message" binding:"required,max=5000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// @Summary		Send an inquiry to a store
// @Tags			public
// @Accept			json
// @Produce		json
// @Param			hostname	query		string				false	"Store hostname, or the X-Store-Hostname header"
// @Param			request		body		ContactRequestBody	true	"Inquiry"
// @Success		201			{object}	utils.APIResponse{data=dto.ContactRequestDTO}
// @Failure		404			{object}	utils.APIResponse
// @Router			/public/contact_requests [post]
func (h *ContactHandler) Create(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	var req ContactRequestBody
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.createUC.Execute(c.Request.Context(), usecases.CreateContactRequestCommand{
		Store:   s,
		ItemID:  req.ItemID,
		Inquiry: contact.Inquiry{Name: req.Name, Email: req.Email, Phone: req.Phone, Message: req.Message},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, dto.ToContactRequestDTO(r), "request sent")
}

// @Summary		List inquiries of my store
// @Tags			contact_requests
// @Produce		json
// @Security		Bearer
// @Param			status	query		string	false	"created, pending, processed or rejected"
// @Success		200		{object}	utils.APIResponse{data=utils.ListResponse{items=[]dto.ContactRequestDTO}}
// @Router			/contact_requests [get]
func (h *ContactHandler) List(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	p := utils.ParsePagination(c)
	out, total, err := h.requestsUC.List(c.Request.Context(), usecases.ListContactRequestsQuery{
		StoreID:  s.ID(),
		Status:   c.Query("status"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	dtos := make([]*dto.ContactRequestDTO, 0, len(out))
	for _, r := range out {
		dtos = append(dtos, dto.ToContactRequestDTO(r))
	}
	utils.ListSuccessResponse(c, dtos, total, p.Page, p.PageSize)
}

// @Summary		Get an inquiry
// @Tags			contact_requests
// @Produce		json
// @Security		Bearer
// @Param			id	path		int	true	"Request ID"
// @Success		200	{object}	utils.APIResponse{data=dto.ContactRequestDTO}
// @Router			/contact_requests/{id} [get]
func (h *ContactHandler) Get(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "contact request")
	if !ok {
		return
	}
	r, err := h.requestsUC.Get(c.Request.Context(), s.ID(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToContactRequestDTO(r))
}

// @Summary		Change an inquiry's status
// @Tags			contact_requests
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id		path		int					true	"Request ID"
// @Param			request	body		UpdateStatusRequest	true	"Status"
// @Success		200		{object}	utils.APIResponse{data=dto.ContactRequestDTO}
// @Router			/contact_requests/{id}/status [patch]
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "contact request")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.requestsUC.UpdateStatus(c.Request.Context(), s.ID(), id, req.Status)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "status updated", dto.ToContactRequestDTO(r))
}

// @Summary		Delete an inquiry
// @Tags			contact_requests
// @Security		Bearer
// @Param			id	path	int	true	"Request ID"
// @Success		204
// @Router			/contact_requests/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "contact request")
	if !ok {
		return
	}
	if err := h.requestsUC.Delete(c.Request.Context(), s.ID(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// @Summary		Contact the platform
// @Tags			public
// @Accept			json
// @Produce		json
// @Param			request	body		AdminContactRequestBody	true	"Inquiry"
// @Success		201		{object}	utils.APIResponse{data=dto.AdminContactRequestDTO}
// @Router			/admin_contact_requests [post]
func (h *ContactHandler) CreateAdminRequest(c *gin.Context) {
	var req AdminContactRequestBody
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.adminUC.Create(c.Request.Context(),
		contact.Inquiry{Name: req.Name, Email: req.Email, Phone: req.Phone, Message: req.Message},
		req.Company,
	)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, dto.ToAdminContactRequestDTO(r), "request sent")
}

// @Summary		List platform inquiries
// @Tags			admin
// @Produce		json
// @Security		Bearer
// @Param			status	query		string	false	"Status filter"
// @Success		200		{object}	utils.APIResponse{data=utils.ListResponse{items=[]dto.AdminContactRequestDTO}}
// @Router			/admin/contact_requests [get]
func (h *ContactHandler) ListAdminRequests(c *gin.Context) {
	p := utils.ParsePagination(c)
	out, total, err := h.adminUC.List(c.Request.Context(), c.Query("status"), p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	dtos := make([]*dto.AdminContactRequestDTO, 0, len(out))
	for _, r := range out {
		dtos = append(dtos, dto.ToAdminContactRequestDTO(r))
	}
	utils.ListSuccessResponse(c, dtos, total, p.Page, p.PageSize)
}

// @Summary		Change a platform inquiry's status
// @Tags			admin
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id		path		int					true	"Request ID"
// @Param			request	body		UpdateStatusRequest	true	"Status"
// @Success		200		{object}	utils.APIResponse{data=dto.AdminContactRequestDTO}
// @Router			/admin/contact_requests/{id}/status [patch]
func (h *ContactHandler) UpdateAdminRequestStatus(c *gin.Context) {
	id, ok := idParam(c, "contact request")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.adminUC.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "status updated", dto.ToAdminContactRequestDTO(r))
}
