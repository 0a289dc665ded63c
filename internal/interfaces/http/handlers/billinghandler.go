package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/application/billing/dto"
	"github.com/estately/estately/internal/application/billing/usecases"
	"github.com/estately/estately/internal/shared/constants"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
	"github.com/estately/estately/internal/shared/utils"
)

const maxWebhookBytes = 65536

type BillingHandler struct {
	webhookUC    *usecases.HandleWebhookUseCase
	checkoutUC   *usecases.CreateCheckoutSessionUseCase
	portalUC     *usecases.CreatePortalSessionUseCase
	changePlanUC *usecases.ChangePlanUseCase
	listUC       *usecases.ListProductsUseCase
	createUC     *usecases.CreateProductUseCase
	setActiveUC  *usecases.SetProductActiveUseCase
	mySubUC      *usecases.GetMySubscriptionUseCase
	logger       logger.Interface
}

func NewBillingHandler(
	webhookUC *usecases.HandleWebhookUseCase,
	checkoutUC *usecases.CreateCheckoutSessionUseCase,
	portalUC *usecases.CreatePortalSessionUseCase,
	changePlanUC *usecases.ChangePlanUseCase,
	listUC *usecases.ListProductsUseCase,
	createUC *usecases.CreateProductUseCase,
	setActiveUC *usecases.SetProductActiveUseCase,
	mySubUC *usecases.GetMySubscriptionUseCase,
	logger logger.Interface,
) *BillingHandler {
	return &BillingHandler{
		webhookUC:    webhookUC,
		checkoutUC:   checkoutUC,
		portalUC:     portalUC,
		changePlanUC: changePlanUC,
		listUC:       listUC,
		createUC:     createUC,
		setActiveUC:  setActiveUC,
		mySubUC:      mySubUC,
		logger:       logger,
	}
}

type ProductSelectionRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

type CreateProductRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Tier     string `json:"tier" binding:"required,oneof=starter plus pro"`
	Amount   int64  `json:"amount" binding:"required,min=1"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
	Interval string `json:"interval" binding:"required,oneof=month year"`
}

type SetProductActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// @Summary		Payment processor webhook
// @Description	Verifies the Stripe-Signature header and reconciles the subscription
// @Tags			billings
// @Accept			json
// @Produce		json
// @Param			Stripe-Signature	header		string	true	"Webhook signature"
// @Success		200					{object}	utils.APIResponse
// @Failure		400					{object}	utils.APIResponse
// @Failure		401					{object}	utils.APIResponse
// @Router			/billings/webhook [post]
func (h *BillingHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBytes))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("unreadable webhook body"))
		return
	}
	if err := h.webhookUC.Execute(c.Request.Context(), payload, c.GetHeader(constants.HeaderStripeSig)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "received", nil)
}

// @Summary		Start a checkout session
// @Tags			billings
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			request	body		ProductSelectionRequest	true	"Product"
// @Success		200		{object}	utils.APIResponse{data=dto.SessionURLDTO}
// @Failure		409		{object}	utils.APIResponse
// @Router			/billings/checkout [post]
func (h *BillingHandler) Checkout(c *gin.Context) {
	var req ProductSelectionRequest
	if !bindJSON(c, &req) {
		return
	}
	url, err := h.checkoutUC.Execute(c.Request.Context(), usecases.CreateCheckoutSessionCommand{
		UserID:    currentUserID(c),
		ProductID: req.ProductID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.SessionURLDTO{URL: url})
}

// @Summary		Open the billing portal
// @Tags			billings
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	utils.APIResponse{data=dto.SessionURLDTO}
// @Failure		404	{object}	utils.APIResponse
// @Router			/billings/portal [post]
func (h *BillingHandler) Portal(c *gin.Context) {
	url, err := h.portalUC.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.SessionURLDTO{URL: url})
}

// @Summary		Switch plan
// @Tags			billings
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			request	body		ProductSelectionRequest	true	"Target product"
// @Success		200		{object}	utils.APIResponse{data=dto.SubscriptionDTO}
// @Router			/billings/change-plan [post]
func (h *BillingHandler) ChangePlan(c *gin.Context) {
	var req ProductSelectionRequest
	if !bindJSON(c, &req) {
		return
	}
	sub, err := h.changePlanUC.Execute(c.Request.Context(), usecases.ChangePlanCommand{
		UserID:    currentUserID(c),
		ProductID: req.ProductID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "plan changed", dto.ToSubscriptionDTO(sub))
}

// @Summary		List purchasable products
// @Tags			billings
// @Produce		json
// @Success		200	{object}	utils.APIResponse{data=[]dto.ProductDTO}
// @Router			/products [get]
func (h *BillingHandler) ListProducts(c *gin.Context) {
	h.listProducts(c, true)
}

// @Summary		My subscription
// @Tags			billings
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	utils.APIResponse{data=dto.MySubscriptionDTO}
// @Router			/subscription [get]
func (h *BillingHandler) MySubscription(c *gin.Context) {
	res, err := h.mySubUC.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToMySubscriptionDTO(res.Current, res.History))
}

// @Summary		List all products
// @Tags			admin
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	utils.APIResponse{data=[]dto.ProductDTO}
// @Router			/admin/products [get]
func (h *BillingHandler) AdminListProducts(c *gin.Context) {
	h.listProducts(c, false)
}

func (h *BillingHandler) listProducts(c *gin.Context, activeOnly bool) {
	products, err := h.listUC.Execute(c.Request.Context(), activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToProductDTOs(products))
}

// @Summary		Create a product
// @Tags			admin
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			request	body		CreateProductRequest	true	"Product"
// @Success		201		{object}	utils.APIResponse{data=dto.ProductDTO}
// @Router			/admin/products [post]
func (h *BillingHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.createUC.Execute(c.Request.Context(), usecases.CreateProductCommand{
		Name:     req.Name,
		Tier:     req.Tier,
		Amount:   req.Amount,
		Currency: req.Currency,
		Interval: req.Interval,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.logger.Infow("product created", "product_id", p.ID(), "tier", req.Tier)
	utils.CreatedResponse(c, dto.ToProductDTO(p), "product created")
}

// @Summary		Activate or retire a product
// @Tags			admin
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id		path		int						true	"Product ID"
// @Param			request	body		SetProductActiveRequest	true	"Active flag"
// @Success		200		{object}	utils.APIResponse{data=dto.ProductDTO}
// @Router			/admin/products/{id} [patch]
func (h *BillingHandler) SetProductActive(c *gin.Context) {
	id, ok := idParam(c, "product")
	if !ok {
		return
	}
	var req SetProductActiveRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.setActiveUC.Execute(c.Request.Context(), id, *req.Active)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "product updated", dto.ToProductDTO(p))
}
