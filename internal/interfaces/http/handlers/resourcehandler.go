package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/application/listing/dto"
	"github.com/estately/estately/internal/application/listing/usecases"
	"github.com/estately/estately/internal/domain/listing"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/utils"
)

type resourceService[T any] interface {
	List(ctx context.Context, storeID, parentID uint) ([]*T, error)
	Get(ctx context.Context, storeID, id uint) (*T, error)
	Create(ctx context.Context, storeID, parentID uint, e *T) (*T, error)
	Update(ctx context.Context, storeID, id uint, e *T) (*T, error)
	Delete(ctx context.Context, storeID, id uint) error
}

// ResourceEndpoints serves CRUD for one kind of listing sub-resource. R is
// the request body and D the response shape.
type ResourceEndpoints[T any, R any, D any] struct {
	svc  resourceService[T]
	name string
	// parentKey names the query/body field holding the parent id. Empty
	// for store-level resources, whose parent is the store itself.
	parentKey string
	decode    func(*R) (*T, uint, error)
	toDTO     func(*T) *D
}

// Mount registers list/get/create/update/delete on g.
func (e *ResourceEndpoints[T, R, D]) Mount(g *gin.RouterGroup) {
	g.GET("", e.List)
	g.GET("/:id", e.Get)
	g.POST("", e.Create)
	g.PUT("/:id", e.Update)
	g.DELETE("/:id", e.Delete)
}

func (e *ResourceEndpoints[T, R, D]) parentFromQuery(c *gin.Context, storeID uint) (uint, bool) {
	if e.parentKey == "" {
		return storeID, true
	}
	id, err := utils.ParseOptionalUintQuery(c, e.parentKey)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, false
	}
	if id == nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(e.parentKey+" is required"))
		return 0, false
	}
	return *id, true
}

func (e *ResourceEndpoints[T, R, D]) List(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	parentID, ok := e.parentFromQuery(c, s.ID())
	if !ok {
		return
	}
	out, err := e.svc.List(c.Request.Context(), s.ID(), parentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	dtos := make([]*D, 0, len(out))
	for _, v := range out {
		dtos = append(dtos, e.toDTO(v))
	}
	utils.SuccessResponse(c, http.StatusOK, "", dtos)
}

func (e *ResourceEndpoints[T, R, D]) Get(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	id, ok := idParam(c, e.name)
	if !ok {
		return
	}
	v, err := e.svc.Get(c.Request.Context(), s.ID(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", e.toDTO(v))
}

func (e *ResourceEndpoints[T, R, D]) bind(c *gin.Context) (*T, uint, bool) {
	var req R
	if !bindJSON(c, &req) {
		return nil, 0, false
	}
	v, parentID, err := e.decode(&req)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return nil, 0, false
	}
	return v, parentID, true
}

func (e *ResourceEndpoints[T, R, D]) Create(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	v, parentID, ok := e.bind(c)
	if !ok {
		return
	}
	if e.parentKey == "" {
		parentID = s.ID()
	} else if parentID == 0 {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(e.parentKey+" is required"))
		return
	}
	created, err := e.svc.Create(c.Request.Context(), s.ID(), parentID, v)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, e.toDTO(created), e.name+" created")
}

// Update keeps the stored parent; a parent id in the body is ignored.
func (e *ResourceEndpoints[T, R, D]) Update(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	id, ok := idParam(c, e.name)
	if !ok {
		return
	}
	v, _, ok := e.bind(c)
	if !ok {
		return
	}
	updated, err := e.svc.Update(c.Request.Context(), s.ID(), id, v)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, e.name+" updated", e.toDTO(updated))
}

func (e *ResourceEndpoints[T, R, D]) Delete(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	id, ok := idParam(c, e.name)
	if !ok {
		return
	}
	if err := e.svc.Delete(c.Request.Context(), s.ID(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

type RateRequest struct {
	ItemID   uint   `json:"item_id"`
	Name     string `json:"name" binding:"required"`
	Amount   int64  `json:"amount" binding:"min=0"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
	Period   string `json:"period" binding:"required"`
}

type FeeRequest struct {
	ItemID   uint   `json:"item_id"`
	Name     string `json:"name" binding:"required"`
	Amount   int64  `json:"amount" binding:"min=0"`
	Kind     string `json:"kind" binding:"required"`
	Required bool   `json:"required"`
}

type FloorPlanRequest struct {
	ItemID      uint    `json:"item_id"`
	Name        string  `json:"name" binding:"required"`
	ImageFileID *uint   `json:"image_file_id"`
	Bedrooms    int     `json:"bedrooms" binding:"min=0"`
	Bathrooms   int     `json:"bathrooms" binding:"min=0"`
	Area        float64 `json:"area" binding:"min=0"`
	Position    int     `json:"position"`
}

type PlanMarkerRequest struct {
	FloorPlanID uint    `json:"floor_plan_id"`
	Label       string  `json:"label" binding:"required"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	FileID      *uint   `json:"file_id"`
}

// BookedDateRequest takes dates as YYYY-MM-DD.
type BookedDateRequest struct {
	ItemID    uint   `json:"item_id"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Note      string `json:"note" binding:"max=255"`
}

type LinkRequest struct {
	ItemID uint   `json:"item_id"`
	Title  string `json:"title" binding:"required"`
	URL    string `json:"url" binding:"required,url"`
	Kind   string `json:"kind"`
}

type AmenityRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

type MemberRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Title       string `json:"title"`
	PhotoFileID *uint  `json:"photo_file_id"`
}

type MetadataRequest struct {
	Key   string          `json:"key" binding:"required"`
	Value json.RawMessage `json:"value" swaggertype:"object"`
}

// ResourceHandler groups the endpoints of every listing sub-resource.
type ResourceHandler struct {
	Rates       *ResourceEndpoints[listing.Rate, RateRequest, dto.RateDTO]
	Fees        *ResourceEndpoints[listing.Fee, FeeRequest, dto.FeeDTO]
	FloorPlans  *ResourceEndpoints[listing.FloorPlan, FloorPlanRequest, dto.FloorPlanDTO]
	PlanMarkers *ResourceEndpoints[listing.PlanMarker, PlanMarkerRequest, dto.PlanMarkerDTO]
	BookedDates *ResourceEndpoints[listing.BookedDate, BookedDateRequest, dto.BookedDateDTO]
	Links       *ResourceEndpoints[listing.Link, LinkRequest, dto.LinkDTO]
	Amenities   *ResourceEndpoints[listing.Amenity, AmenityRequest, dto.AmenityDTO]
	Members     *ResourceEndpoints[listing.Member, MemberRequest, dto.MemberDTO]
	Metadata    *ResourceEndpoints[listing.Metadata, MetadataRequest, dto.MetadataDTO]

	catalog *usecases.Catalog
}

func NewResourceHandler(catalog *usecases.Catalog) *ResourceHandler {
	return &ResourceHandler{
		Rates: &ResourceEndpoints[listing.Rate, RateRequest, dto.RateDTO]{
			svc: catalog.Rates, name: "rate", parentKey: "item_id", toDTO: dto.ToRateDTO,
			decode: func(r *RateRequest) (*listing.Rate, uint, error) {
				return &listing.Rate{Name: r.Name, Amount: r.Amount, Currency: r.Currency, Period: listing.RatePeriod(r.Period)}, r.ItemID, nil
			},
		},
		Fees: &ResourceEndpoints[listing.Fee, FeeRequest, dto.FeeDTO]{
			svc: catalog.Fees, name: "fee", parentKey: "item_id", toDTO: dto.ToFeeDTO,
			decode: func(r *FeeRequest) (*listing.Fee, uint, error) {
				return &listing.Fee{Name: r.Name, Amount: r.Amount, Kind: listing.FeeKind(r.Kind), Required: r.Required}, r.ItemID, nil
			},
		},
		FloorPlans: &ResourceEndpoints[listing.FloorPlan, FloorPlanRequest, dto.FloorPlanDTO]{
			svc: catalog.FloorPlans, name: "floor plan", parentKey: "item_id", toDTO: dto.ToFloorPlanDTO,
			decode: func(r *FloorPlanRequest) (*listing.FloorPlan, uint, error) {
				return &listing.FloorPlan{
					Name:        r.Name,
					ImageFileID: r.ImageFileID,
					Bedrooms:    r.Bedrooms,
					Bathrooms:   r.Bathrooms,
					Area:        r.Area,
					Position:    r.Position,
				}, r.ItemID, nil
			},
		},
		PlanMarkers: &ResourceEndpoints[listing.PlanMarker, PlanMarkerRequest, dto.PlanMarkerDTO]{
			svc: catalog.PlanMarkers, name: "plan marker", parentKey: "floor_plan_id", toDTO: dto.ToPlanMarkerDTO,
			decode: func(r *PlanMarkerRequest) (*listing.PlanMarker, uint, error) {
				return &listing.PlanMarker{Label: r.Label, X: r.X, Y: r.Y, FileID: r.FileID}, r.FloorPlanID, nil
			},
		},
		BookedDates: &ResourceEndpoints[listing.BookedDate, BookedDateRequest, dto.BookedDateDTO]{
			svc: catalog.BookedDates, name: "booked date", parentKey: "item_id", toDTO: dto.ToBookedDateDTO,
			decode: func(r *BookedDateRequest) (*listing.BookedDate, uint, error) {
				start, err := time.Parse(time.DateOnly, r.StartDate)
				if err != nil {
					return nil, 0, errors.NewBadRequestError("start_date must be YYYY-MM-DD")
				}
				end, err := time.Parse(time.DateOnly, r.EndDate)
				if err != nil {
					return nil, 0, errors.NewBadRequestError("end_date must be YYYY-MM-DD")
				}
				return &listing.BookedDate{StartDate: start, EndDate: end, Note: r.Note}, r.ItemID, nil
			},
		},
		Links: &ResourceEndpoints[listing.Link, LinkRequest, dto.LinkDTO]{
			svc: catalog.Links, name: "link", parentKey: "item_id", toDTO: dto.ToLinkDTO,
			decode: func(r *LinkRequest) (*listing.Link, uint, error) {
				return &listing.Link{Title: r.Title, URL: r.URL, Kind: r.Kind}, r.ItemID, nil
			},
		},
		Amenities: &ResourceEndpoints[listing.Amenity, AmenityRequest, dto.AmenityDTO]{
			svc: catalog.Amenities, name: "amenity", toDTO: dto.ToAmenityDTO,
			decode: func(r *AmenityRequest) (*listing.Amenity, uint, error) {
				return &listing.Amenity{Name: r.Name, Icon: r.Icon}, 0, nil
			},
		},
		Members: &ResourceEndpoints[listing.Member, MemberRequest, dto.MemberDTO]{
			svc: catalog.Members, name: "member", toDTO: dto.ToMemberDTO,
			decode: func(r *MemberRequest) (*listing.Member, uint, error) {
				return &listing.Member{Name: r.Name, Email: r.Email, Phone: r.Phone, Title: r.Title, PhotoFileID: r.PhotoFileID}, 0, nil
			},
		},
		Metadata: &ResourceEndpoints[listing.Metadata, MetadataRequest, dto.MetadataDTO]{
			svc: catalog.Metadata, name: "metadata", toDTO: dto.ToMetadataDTO,
			decode: func(r *MetadataRequest) (*listing.Metadata, uint, error) {
				return &listing.Metadata{Key: r.Key, Value: r.Value}, 0, nil
			},
		},
		catalog: catalog,
	}
}

// @Summary		Set a metadata value
// @Description	Creates the key or overwrites its value
// @Tags			metadatas
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			request	body		MetadataRequest	true	"Key and JSON value"
// @Success		200		{object}	utils.APIResponse{data=dto.MetadataDTO}
// @Failure		400		{object}	utils.APIResponse
// @Router			/metadatas [put]
func (h *ResourceHandler) UpsertMetadata(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	var req MetadataRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.catalog.UpsertMetadata(c.Request.Context(), s.ID(), &listing.Metadata{Key: req.Key, Value: req.Value})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "metadata saved", dto.ToMetadataDTO(m))
}
