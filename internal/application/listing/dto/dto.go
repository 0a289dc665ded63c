package dto

import (
	"encoding/json"
	"time"

	"github.com/estately/estately/internal/domain/listing"
	"github.com/estately/estately/internal/shared/mapper"
)

type ItemDTO struct {
	ID              uint      `json:"id"`
	StoreID         uint      `json:"store_id"`
	MemberID        *uint     `json:"member_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html"`
	Stage           string    `json:"stage"`
	PropertyType    string    `json:"property_type"`
	ListingType     string    `json:"listing_type"`
	Address         string    `json:"address"`
	CityID          *uint     `json:"city_id"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	Bedrooms        int       `json:"bedrooms"`
	Bathrooms       int       `json:"bathrooms"`
	Area            float64   `json:"area"`
	AmenityIDs      []uint    `json:"amenity_ids"`
	FileIDs         []uint    `json:"file_ids"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToItemDTO(i *listing.Item) *ItemDTO {
	d := i.Details()
	return &ItemDTO{
		ID:              i.ID(),
		StoreID:         i.StoreID(),
		MemberID:        d.MemberID,
		Title:           d.Title,
		Description:     d.Description,
		DescriptionHTML: i.DescriptionHTML(),
		Stage:           string(d.Stage),
		PropertyType:    d.PropertyType,
		ListingType:     string(d.ListingType),
		Address:         d.Address,
		CityID:          d.CityID,
		Latitude:        d.Latitude,
		Longitude:       d.Longitude,
		Bedrooms:        d.Bedrooms,
		Bathrooms:       d.Bathrooms,
		Area:            d.Area,
		AmenityIDs:      i.AmenityIDs(),
		FileIDs:         i.FileIDs(),
		CreatedAt:       i.CreatedAt(),
		UpdatedAt:       i.UpdatedAt(),
	}
}

func ToItemDTOs(items []*listing.Item) []*ItemDTO {
	return mapper.MapSlice(items, ToItemDTO)
}

type RateDTO struct {
	ID       uint   `json:"id"`
	ItemID   uint   `json:"item_id"`
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Period   string `json:"period"`
}

func ToRateDTO(r *listing.Rate) *RateDTO {
	return &RateDTO{ID: r.ID, ItemID: r.ItemID, Name: r.Name, Amount: r.Amount, Currency: r.Currency, Period: string(r.Period)}
}

type FeeDTO struct {
	ID       uint   `json:"id"`
	ItemID   uint   `json:"item_id"`
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	Kind     string `json:"kind"`
	Required bool   `json:"required"`
}

func ToFeeDTO(f *listing.Fee) *FeeDTO {
	return &FeeDTO{ID: f.ID, ItemID: f.ItemID, Name: f.Name, Amount: f.Amount, Kind: string(f.Kind), Required: f.Required}
}

type FloorPlanDTO struct {
	ID          uint             `json:"id"`
	ItemID      uint             `json:"item_id"`
	Name        string           `json:"name"`
	ImageFileID *uint            `json:"image_file_id"`
	Bedrooms    int              `json:"bedrooms"`
	Bathrooms   int              `json:"bathrooms"`
	Area        float64          `json:"area"`
	Position    int              `json:"position"`
	Markers     []*PlanMarkerDTO `json:"markers,omitempty"`
}

func ToFloorPlanDTO(f *listing.FloorPlan) *FloorPlanDTO {
	return &FloorPlanDTO{
		ID:          f.ID,
		ItemID:      f.ItemID,
		Name:        f.Name,
		ImageFileID: f.ImageFileID,
		Bedrooms:    f.Bedrooms,
		Bathrooms:   f.Bathrooms,
		Area:        f.Area,
		Position:    f.Position,
	}
}

type PlanMarkerDTO struct {
	ID          uint    `json:"id"`
	FloorPlanID uint    `json:"floor_plan_id"`
	Label       string  `json:"label"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	FileID      *uint   `json:"file_id"`
}

func ToPlanMarkerDTO(m *listing.PlanMarker) *PlanMarkerDTO {
	return &PlanMarkerDTO{ID: m.ID, FloorPlanID: m.FloorPlanID, Label: m.Label, X: m.X, Y: m.Y, FileID: m.FileID}
}

type BookedDateDTO struct {
	ID        uint   `json:"id"`
	ItemID    uint   `json:"item_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Note      string `json:"note"`
}

func ToBookedDateDTO(b *listing.BookedDate) *BookedDateDTO {
	return &BookedDateDTO{
		ID:        b.ID,
		ItemID:    b.ItemID,
		StartDate: b.StartDate.Format(time.DateOnly),
		EndDate:   b.EndDate.Format(time.DateOnly),
		Note:      b.Note,
	}
}

type LinkDTO struct {
	ID     uint   `json:"id"`
	ItemID uint   `json:"item_id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Kind   string `json:"kind"`
}

func ToLinkDTO(l *listing.Link) *LinkDTO {
	return &LinkDTO{ID: l.ID, ItemID: l.ItemID, Title: l.Title, URL: l.URL, Kind: l.Kind}
}

type AmenityDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func ToAmenityDTO(a *listing.Amenity) *AmenityDTO {
	return &AmenityDTO{ID: a.ID, Name: a.Name, Icon: a.Icon}
}

type MemberDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Title       string `json:"title"`
	PhotoFileID *uint  `json:"photo_file_id"`
}

func ToMemberDTO(m *listing.Member) *MemberDTO {
	return &MemberDTO{ID: m.ID, Name: m.Name, Email: m.Email, Phone: m.Phone, Title: m.Title, PhotoFileID: m.PhotoFileID}
}

type MetadataDTO struct {
	ID    uint            `json:"id"`
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

func ToMetadataDTO(m *listing.Metadata) *MetadataDTO {
	return &MetadataDTO{ID: m.ID, Key: m.Key, Value: m.Value}
}

// ItemDetailDTO is the public view of one item.
type ItemDetailDTO struct {
	*ItemDTO
	Rates       []*RateDTO       `json:"rates"`
	Fees        []*FeeDTO        `json:"fees"`
	FloorPlans  []*FloorPlanDTO  `json:"floor_plans"`
	BookedDates []*BookedDateDTO `json:"booked_dates"`
	Links       []*LinkDTO       `json:"links"`
}

func ToItemDetailDTO(
	item *listing.Item,
	rates []*listing.Rate,
	fees []*listing.Fee,
	floorPlans []*listing.FloorPlan,
	markers map[uint][]*listing.PlanMarker,
	booked []*listing.BookedDate,
	links []*listing.Link,
) *ItemDetailDTO {
	plans := mapper.MapSlice(floorPlans, ToFloorPlanDTO)
	for _, fp := range plans {
		fp.Markers = mapper.MapSlice(markers[fp.ID], ToPlanMarkerDTO)
	}
	return &ItemDetailDTO{
		ItemDTO:     ToItemDTO(item),
		Rates:       mapper.MapSlice(rates, ToRateDTO),
		Fees:        mapper.MapSlice(fees, ToFeeDTO),
		FloorPlans:  plans,
		BookedDates: mapper.MapSlice(booked, ToBookedDateDTO),
		Links:       mapper.MapSlice(links, ToLinkDTO),
	}
}
