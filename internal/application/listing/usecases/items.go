package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/listing"
	"github.com/estately/estately/internal/domain/location"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
	"github.com/estately/estately/internal/shared/services/markdown"
	"github.com/estately/estately/internal/shared/utils"
)

// ItemCommand is the writable state of an item. StoreID always comes from
// the resolved tenant, never from the request body.
type ItemCommand struct {
	StoreID    uint
	Details    listing.ItemDetails
	AmenityIDs []uint
	FileIDs    []uint
}

type ItemsUseCase struct {
	items     listing.ItemRepository
	locations location.Repository
	guard     *Guard
	markdown  markdown.Service
	txManager db.Transactor
	logger    logger.Interface
}

func NewItemsUseCase(
	items listing.ItemRepository,
	locations location.Repository,
	guard *Guard,
	md markdown.Service,
	txManager db.Transactor,
	logger logger.Interface,
) *ItemsUseCase {
	return &ItemsUseCase{
		items:     items,
		locations: locations,
		guard:     guard,
		markdown:  md,
		txManager: txManager,
		logger:    logger,
	}
}

type ListItemsQuery struct {
	StoreID  uint
	Search   string
	Stage    string
	Page     int
	PageSize int
}

func (uc *ItemsUseCase) List(ctx context.Context, q ListItemsQuery) ([]*listing.Item, int64, error) {
	filter := listing.ItemFilter{StoreID: q.StoreID, Search: q.Search}
	if q.Stage != "" {
		stage := listing.Stage(q.Stage)
		if !stage.IsValid() {
			return nil, 0, errors.NewBadRequestError("invalid stage", q.Stage)
		}
		filter.Stage = &stage
	}
	p := utils.ValidatePagination(q.Page, q.PageSize)
	filter.Page, filter.PageSize = p.Page, p.PageSize

	items, total, err := uc.items.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list items: %w", err)
	}
	return items, total, nil
}

func (uc *ItemsUseCase) Get(ctx context.Context, storeID, itemID uint) (*listing.Item, error) {
	return uc.guard.Item(ctx, storeID, itemID)
}

func (uc *ItemsUseCase) checkRefs(ctx context.Context, cmd ItemCommand) error {
	if err := uc.guard.Member(ctx, cmd.StoreID, cmd.Details.MemberID); err != nil {
		return err
	}
	if err := uc.guard.Amenities(ctx, cmd.StoreID, cmd.AmenityIDs); err != nil {
		return err
	}
	if err := uc.guard.Files(ctx, cmd.StoreID, cmd.FileIDs...); err != nil {
		return err
	}
	if cmd.Details.CityID != nil {
		city, err := uc.locations.GetCityByID(ctx, *cmd.Details.CityID)
		if err != nil {
			return fmt.Errorf("failed to get city: %w", err)
		}
		if city == nil {
			return location.ErrCityNotFound
		}
	}
	return nil
}

func (uc *ItemsUseCase) render(item *listing.Item) error {
	html, err := uc.markdown.ToHTMLSanitized(item.Details().Description)
	if err != nil {
		return errors.NewBadRequestError("invalid description", err.Error())
	}
	item.SetDescriptionHTML(html)
	return nil
}

func (uc *ItemsUseCase) Create(ctx context.Context, cmd ItemCommand) (*listing.Item, error) {
	var created *listing.Item
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.checkRefs(txCtx, cmd); err != nil {
			return err
		}
		item, err := listing.NewItem(cmd.StoreID, cmd.Details)
		if err != nil {
			return errors.NewBadRequestError(err.Error())
		}
		if err := uc.render(item); err != nil {
			return err
		}
		item.SetAmenities(cmd.AmenityIDs)
		item.SetFiles(cmd.FileIDs)
		if err := uc.items.Create(txCtx, item); err != nil {
			return fmt.Errorf("failed to create item: %w", err)
		}
		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *ItemsUseCase) Update(ctx context.Context, itemID uint, cmd ItemCommand) (*listing.Item, error) {
	var updated *listing.Item
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		item, err := uc.guard.Item(txCtx, cmd.StoreID, itemID)
		if err != nil {
			return err
		}
		if err := uc.checkRefs(txCtx, cmd); err != nil {
			return err
		}
		if err := item.Update(cmd.Details); err != nil {
			return errors.NewBadRequestError(err.Error())
		}
		if err := uc.render(item); err != nil {
			return err
		}
		item.SetAmenities(cmd.AmenityIDs)
		item.SetFiles(cmd.FileIDs)
		if err := uc.items.Update(txCtx, item); err != nil {
			return fmt.Errorf("failed to update item: %w", err)
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Infow("item updated", "item_id", itemID, "store_id", cmd.StoreID)
	return updated, nil
}

// Delete soft-deletes the item together with its sub-resources and media.
func (uc *ItemsUseCase) Delete(ctx context.Context, storeID, itemID uint) error {
	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.guard.Item(txCtx, storeID, itemID); err != nil {
			return err
		}
		return uc.items.SoftDelete(txCtx, itemID)
	})
}
