package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/listing"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/utils"
)

// ItemDetail is an item with its visible sub-collections.
type ItemDetail struct {
	Item        *listing.Item
	Rates       []*listing.Rate
	Fees        []*listing.Fee
	FloorPlans  []*listing.FloorPlan
	PlanMarkers map[uint][]*listing.PlanMarker
	BookedDates []*listing.BookedDate
	Links       []*listing.Link
}

// PublicListingUseCase serves the storefront view of a resolved store.
type PublicListingUseCase struct {
	repos Repositories
	guard *Guard
}

func NewPublicListingUseCase(repos Repositories, guard *Guard) *PublicListingUseCase {
	return &PublicListingUseCase{repos: repos, guard: guard}
}

func (uc *PublicListingUseCase) List(ctx context.Context, storeID uint, search string, page, pageSize int) ([]*listing.Item, int64, error) {
	stage := listing.StageActive
	p := utils.ValidatePagination(page, pageSize)
	items, total, err := uc.repos.Items.List(ctx, listing.ItemFilter{
		StoreID:  storeID,
		Search:   search,
		Stage:    &stage,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list items: %w", err)
	}
	return items, total, nil
}

// Get hides items that are not active as if they did not exist.
func (uc *PublicListingUseCase) Get(ctx context.Context, storeID, itemID uint) (*ItemDetail, error) {
	item, err := uc.guard.Item(ctx, storeID, itemID)
	if errors.IsForbiddenError(err) {
		return nil, listing.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	if !item.IsPublic() {
		return nil, listing.ErrItemNotFound
	}
	return uc.detail(ctx, item)
}

func (uc *PublicListingUseCase) detail(ctx context.Context, item *listing.Item) (*ItemDetail, error) {
	d := &ItemDetail{Item: item, PlanMarkers: map[uint][]*listing.PlanMarker{}}
	var err error
	if d.Rates, err = uc.repos.Rates.ListByParent(ctx, item.ID()); err != nil {
		return nil, err
	}
	if d.Fees, err = uc.repos.Fees.ListByParent(ctx, item.ID()); err != nil {
		return nil, err
	}
	if d.FloorPlans, err = uc.repos.FloorPlans.ListByParent(ctx, item.ID()); err != nil {
		return nil, err
	}
	for _, fp := range d.FloorPlans {
		markers, err := uc.repos.PlanMarkers.ListByParent(ctx, fp.ID)
		if err != nil {
			return nil, err
		}
		d.PlanMarkers[fp.ID] = markers
	}
	if d.BookedDates, err = uc.repos.BookedDates.ListByParent(ctx, item.ID()); err != nil {
		return nil, err
	}
	if d.Links, err = uc.repos.Links.ListByParent(ctx, item.ID()); err != nil {
		return nil, err
	}
	return d, nil
}
