package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/listing"
	"github.com/estately/estately/internal/domain/media"
	"github.com/estately/estately/internal/domain/store"
)

// Guard loads referenced parents and checks they belong to the caller's
// store. A missing or soft-deleted parent is NotFound, a parent of another
// store is Forbidden.
type Guard struct {
	items      listing.ItemRepository
	floorPlans listing.FloorPlanRepository
	members    listing.MemberRepository
	amenities  listing.AmenityRepository
	files      media.Repository
}

func NewGuard(
	items listing.ItemRepository,
	floorPlans listing.FloorPlanRepository,
	members listing.MemberRepository,
	amenities listing.AmenityRepository,
	files media.Repository,
) *Guard {
	return &Guard{
		items:      items,
		floorPlans: floorPlans,
		members:    members,
		amenities:  amenities,
		files:      files,
	}
}

func (g *Guard) Item(ctx context.Context, storeID, itemID uint) (*listing.Item, error) {
	item, err := g.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil || item.IsDeleted() {
		return nil, listing.ErrItemNotFound
	}
	if !item.BelongsTo(storeID) {
		return nil, store.ErrForeignResource
	}
	return item, nil
}

// FloorPlan checks ownership through the floor plan's item.
func (g *Guard) FloorPlan(ctx context.Context, storeID, floorPlanID uint) (*listing.FloorPlan, error) {
	fp, err := g.floorPlans.GetByID(ctx, floorPlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get floor plan: %w", err)
	}
	if fp == nil || fp.IsDeleted {
		return nil, listing.ErrFloorPlanNotFound
	}
	if _, err := g.Item(ctx, storeID, fp.ItemID); err != nil {
		return nil, err
	}
	return fp, nil
}

func (g *Guard) Member(ctx context.Context, storeID uint, memberID *uint) error {
	if memberID == nil {
		return nil
	}
	m, err := g.members.GetByID(ctx, *memberID)
	if err != nil {
		return fmt.Errorf("failed to get member: %w", err)
	}
	if m == nil || m.IsDeleted {
		return listing.ErrMemberNotFound
	}
	if m.StoreID != storeID {
		return store.ErrForeignResource
	}
	return nil
}

func (g *Guard) Amenities(ctx context.Context, storeID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := g.amenities.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to get amenities: %w", err)
	}
	return listing.CheckAmenityOwnership(storeID, ids, found)
}

func (g *Guard) Files(ctx context.Context, storeID uint, ids ...uint) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := g.files.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to get files: %w", err)
	}
	byID := make(map[uint]*media.File, len(found))
	for _, f := range found {
		byID[f.ID()] = f
	}
	for _, id := range ids {
		f, ok := byID[id]
		if !ok || f.IsDeleted() {
			return media.ErrFileNotFound
		}
		if f.StoreID() != storeID {
			return store.ErrForeignResource
		}
	}
	return nil
}

// OptionalFile is Files for a nullable reference.
func (g *Guard) OptionalFile(ctx context.Context, storeID uint, id *uint) error {
	if id == nil {
		return nil
	}
	return g.Files(ctx, storeID, *id)
}
