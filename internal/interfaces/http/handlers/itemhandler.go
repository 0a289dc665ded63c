package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/application/listing/dto"
	"github.com/estately/estately/internal/application/listing/usecases"
	"github.com/estately/estately/internal/domain/listing"
	"github.com/estately/estately/internal/shared/utils"
)

type ItemHandler struct {
	itemsUC  *usecases.ItemsUseCase
	publicUC *usecases.PublicListingUseCase
}

func NewItemHandler(itemsUC *usecases.ItemsUseCase, publicUC *usecases.PublicListingUseCase) *ItemHandler {
	return &ItemHandler{itemsUC: itemsUC, publicUC: publicUC}
}

type ItemRequest struct {
	MemberID     *uint    `json:"member_id"`
	Title        string   `json:"title" binding:"required,max=200"`
	Description  string   `json:"description"`
	Stage        string   `json:"stage" binding:"omitempty,oneof=draft active archive"`
	PropertyType string   `json:"property_type" binding:"max=60"`
	ListingType  string   `json:"listing_type" binding:"omitempty,oneof=sale rent"`
	Address      string   `json:"address" binding:"max=255"`
	CityID       *uint    `json:"city_id"`
	Latitude     *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,longitude"`
	Bedrooms     int      `json:"bedrooms" binding:"min=0"`
	Bathrooms    int      `json:"bathrooms" binding:"min=0"`
	Area         float64  `json:"area" binding:"min=0"`
	AmenityIDs   []uint   `json:"amenity_ids"`
	FileIDs      []uint   `json:"file_ids"`
}

func (r *ItemRequest) command(storeID uint) usecases.ItemCommand {
	return usecases.ItemCommand{
		StoreID: storeID,
		Details: listing.ItemDetails{
			MemberID:     r.MemberID,
			Title:        r.Title,
			Description:  r.Description,
			Stage:        listing.Stage(r.Stage),
			PropertyType: r.PropertyType,
			ListingType:  listing.ListingType(r.ListingType),
			Address:      r.Address,
			CityID:       r.CityID,
			Latitude:     r.Latitude,
			Longitude:    r.Longitude,
			Bedrooms:     r.Bedrooms,
			Bathrooms:    r.Bathrooms,
			Area:         r.Area,
		},
		AmenityIDs: r.AmenityIDs,
		FileIDs:    r.FileIDs,
	}
}

// @Summary		List items of my store
// @Tags			items
// @Produce		json
// @Security		Bearer
// @Param			page		query		int		false	"Page"
// @Param			page_size	query		int		false	"Page size"
// @Param			search		query		string	false	"Title or address search"
// @Param			stage		query		string	false	"draft, active or archive"
// @Success		200			{object}	utils.APIResponse{data=utils.ListResponse{items=[]dto.ItemDTO}}
// @Router			/items [get]
func (h *ItemHandler) List(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	p := utils.ParsePagination(c)
	items, total, err := h.itemsUC.List(c.Request.Context(), usecases.ListItemsQuery{
		StoreID:  s.ID(),
		Search:   c.Query("search"),
		Stage:    c.Query("stage"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, dto.ToItemDTOs(items), total, p.Page, p.PageSize)
}

// @Summary		Get an item of my store
// @Tags			items
// @Produce		json
// @Security		Bearer
// @Param			id	path		int	true	"Item ID"
// @Success		200	{object}	utils.APIResponse{data=dto.ItemDTO}
// @Failure		403	{object}	utils.APIResponse
// @Failure		404	{object}	utils.APIResponse
// @Router			/items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "item")
	if !ok {
		return
	}
	item, err := h.itemsUC.Get(c.Request.Context(), s.ID(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToItemDTO(item))
}

// @Summary		Create an item
// @Tags			items
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			request	body		ItemRequest	true	"Item"
// @Success		201		{object}	utils.APIResponse{data=dto.ItemDTO}
// @Failure		400		{object}	utils.APIResponse
// @Failure		403		{object}	utils.APIResponse
// @Router			/items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	var req ItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.itemsUC.Create(c.Request.Context(), req.command(s.ID()))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, dto.ToItemDTO(item), "item created")
}

// @Summary		Replace an item
// @Tags			items
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id		path		int			true	"Item ID"
// @Param			request	body		ItemRequest	true	"Item"
// @Success		200		{object}	utils.APIResponse{data=dto.ItemDTO}
// @Router			/items/{id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "item")
	if !ok {
		return
	}
	var req ItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.itemsUC.Update(c.Request.Context(), id, req.command(s.ID()))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "item updated", dto.ToItemDTO(item))
}

// @Summary		Delete an item with its sub-resources
// @Tags			items
// @Security		Bearer
// @Param			id	path	int	true	"Item ID"
// @Success		204
// @Router			/items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "item")
	if !ok {
		return
	}
	if err := h.itemsUC.Delete(c.Request.Context(), s.ID(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// @Summary		Public listings of a store
// @Tags			public
// @Produce		json
// @Param			hostname	query		string	false	"Store hostname, or the X-Store-Hostname header"
// @Param			search		query		string	false	"Search"
// @Success		200			{object}	utils.APIResponse{data=utils.ListResponse{items=[]dto.ItemDTO}}
// @Router			/public/items [get]
func (h *ItemHandler) PublicList(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	p := utils.ParsePagination(c)
	items, total, err := h.publicUC.List(c.Request.Context(), s.ID(), c.Query("search"), p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, dto.ToItemDTOs(items), total, p.Page, p.PageSize)
}

// @Summary		Public item detail
// @Tags			public
// @Produce		json
// @Param			id			path		int		true	"Item ID"
// @Param			hostname	query		string	false	"Store hostname"
// @Success		200			{object}	utils.APIResponse{data=dto.ItemDetailDTO}
// @Failure		404			{object}	utils.APIResponse
// @Router			/public/items/{id} [get]
func (h *ItemHandler) PublicGet(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "item")
	if !ok {
		return
	}
	d, err := h.publicUC.Get(c.Request.Context(), s.ID(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToItemDetailDTO(d.Item, d.Rates, d.Fees, d.FloorPlans, d.PlanMarkers, d.BookedDates, d.Links))
}
