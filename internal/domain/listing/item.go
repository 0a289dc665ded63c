package listing

import (
	"fmt"
	"strings"
	"time"

	"github.com/estately/estately/internal/shared/biztime"
)

type Stage string

const (
	StageDraft   Stage = "draft"
	StageActive  Stage = "active"
	StageArchive Stage = "archive"
)

func (s Stage) IsValid() bool {
	return s == StageDraft || s == StageActive || s == StageArchive
}

type ListingType string

const (
	ListingSale ListingType = "sale"
	ListingRent ListingType = "rent"
)

func (t ListingType) IsValid() bool {
	return t == ListingSale || t == ListingRent
}

// ItemDetails holds the editable attributes of an item.
type ItemDetails struct {
	MemberID     *uint
	Title        string
	Description  string
	Stage        Stage
	PropertyType string
	ListingType  ListingType
	Address      string
	CityID       *uint
	Latitude     *float64
	Longitude    *float64
	Bedrooms     int
	Bathrooms    int
	Area         float64
}

func (d *ItemDetails) normalize() error {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" || len(d.Title) > 200 {
		return fmt.Errorf("title must be 1-200 characters")
	}
	if d.Stage == "" {
		d.Stage = StageDraft
	}
	if !d.Stage.IsValid() {
		return fmt.Errorf("invalid stage: %s", d.Stage)
	}
	if d.ListingType == "" {
		d.ListingType = ListingSale
	}
	if !d.ListingType.IsValid() {
		return fmt.Errorf("invalid listing type: %s", d.ListingType)
	}
	if d.Bedrooms < 0 || d.Bathrooms < 0 || d.Area < 0 {
		return fmt.Errorf("bedrooms, bathrooms and area cannot be negative")
	}
	if d.Latitude != nil && (*d.Latitude < -90 || *d.Latitude > 90) {
		return fmt.Errorf("latitude out of range")
	}
	if d.Longitude != nil && (*d.Longitude < -180 || *d.Longitude > 180) {
		return fmt.Errorf("longitude out of range")
	}
	return nil
}

// Item is a property listing published by a store.
type Item struct {
	id              uint
	storeID         uint
	details         ItemDetails
	descriptionHTML string
	amenityIDs      []uint
	fileIDs         []uint
	deleted         bool
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

func NewItem(storeID uint, details ItemDetails) (*Item, error) {
	if storeID == 0 {
		return nil, fmt.Errorf("store is required")
	}
	if err := details.normalize(); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	return &Item{
		storeID:   storeID,
		details:   details,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructItem(
	id, storeID uint,
	details ItemDetails,
	descriptionHTML string,
	amenityIDs, fileIDs []uint,
	deleted bool,
	version int,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:              id,
		storeID:         storeID,
		details:         details,
		descriptionHTML: descriptionHTML,
		amenityIDs:      amenityIDs,
		fileIDs:         fileIDs,
		deleted:         deleted,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (i *Item) ID() uint                { return i.id }
func (i *Item) StoreID() uint           { return i.storeID }
func (i *Item) Details() ItemDetails    { return i.details }
func (i *Item) Stage() Stage            { return i.details.Stage }
func (i *Item) DescriptionHTML() string { return i.descriptionHTML }
func (i *Item) IsDeleted() bool         { return i.deleted }
func (i *Item) Version() int            { return i.version }
func (i *Item) CreatedAt() time.Time    { return i.createdAt }
func (i *Item) UpdatedAt() time.Time    { return i.updatedAt }

func (i *Item) AmenityIDs() []uint {
	return append([]uint(nil), i.amenityIDs...)
}

// FileIDs returns the media files in display order.
func (i *Item) FileIDs() []uint {
	return append([]uint(nil), i.fileIDs...)
}

func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("item ID cannot be zero")
	}
	i.id = id
	return nil
}

// BelongsTo reports whether the item is a visible listing of the store.
func (i *Item) BelongsTo(storeID uint) bool {
	return i.storeID == storeID
}

// IsPublic is true for visible items in the active stage.
func (i *Item) IsPublic() bool {
	return !i.deleted && i.details.Stage == StageActive
}

func (i *Item) touch() {
	i.updatedAt = biztime.NowUTC()
	i.version++
}

func (i *Item) Update(details ItemDetails) error {
	if err := details.normalize(); err != nil {
		return err
	}
	i.details = details
	i.touch()
	return nil
}

// SetDescriptionHTML stores the sanitised rendering of the markdown
// description.
func (i *Item) SetDescriptionHTML(html string) {
	i.descriptionHTML = html
}

func (i *Item) SetAmenities(ids []uint) {
	i.amenityIDs = dedupe(ids)
	i.touch()
}

func (i *Item) SetFiles(ids []uint) {
	i.fileIDs = dedupe(ids)
	i.touch()
}

// AddFile appends a file to the end of the media list.
func (i *Item) AddFile(id uint) {
	for _, existing := range i.fileIDs {
		if existing == id {
			return
		}
	}
	i.fileIDs = append(i.fileIDs, id)
	i.touch()
}

func (i *Item) MarkDeleted() {
	if i.deleted {
		return
	}
	i.deleted = true
	i.touch()
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
