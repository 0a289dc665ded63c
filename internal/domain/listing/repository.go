package listing

import "context"

type ItemFilter struct {
	StoreID  uint
	Search   string
	Stage    *Stage
	Page     int
	PageSize int
}

type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	// GetByID returns soft-deleted items too; callers decide visibility.
	GetByID(ctx context.Context, id uint) (*Item, error)
	List(ctx context.Context, filter ItemFilter) ([]*Item, int64, error)
	// SoftDelete flags the item, its sub-resources and its media files.
	SoftDelete(ctx context.Context, id uint) error
}

// ChildRepository is the storage contract shared by sub-resources. Lists
// only return visible rows.
type ChildRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id uint) (*T, error)
	ListByParent(ctx context.Context, parentID uint) ([]*T, error)
}

type RateRepository interface {
	ChildRepository[Rate]
}

type FeeRepository interface {
	ChildRepository[Fee]
}

type FloorPlanRepository interface {
	ChildRepository[FloorPlan]
}

type PlanMarkerRepository interface {
	ChildRepository[PlanMarker]
}

type BookedDateRepository interface {
	ChildRepository[BookedDate]
}

type LinkRepository interface {
	ChildRepository[Link]
}

type AmenityRepository interface {
	ChildRepository[Amenity]
	GetByIDs(ctx context.Context, ids []uint) ([]*Amenity, error)
	ExistsByName(ctx context.Context, storeID uint, name string, excludeID uint) (bool, error)
}

type MemberRepository interface {
	ChildRepository[Member]
}

type MetadataRepository interface {
	ChildRepository[Metadata]
	GetByKey(ctx context.Context, storeID uint, key string) (*Metadata, error)
}
