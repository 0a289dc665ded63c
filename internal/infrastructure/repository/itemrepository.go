package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/estately/estately/internal/domain/listing"
	"github.com/estately/estately/internal/infrastructure/persistence/mappers"
	"github.com/estately/estately/internal/infrastructure/persistence/models"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/logger"
)

type ItemRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewItemRepository(db *gorm.DB, logger logger.Interface) listing.ItemRepository {
	return &ItemRepositoryImpl{db: db, logger: logger}
}

func (r *ItemRepositoryImpl) Create(ctx context.Context, item *listing.Item) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := mappers.ItemToModel(item)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create item", "store_id", model.StoreID, "error", err)
		return fmt.Errorf("failed to create item: %w", err)
	}
	if err := item.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set item ID: %w", err)
	}
	if err := r.replaceAssociations(tx, item); err != nil {
		return err
	}
	r.logger.Infow("item created", "id", model.ID, "store_id", model.StoreID)
	return nil
}

func (r *ItemRepositoryImpl) Update(ctx context.Context, item *listing.Item) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Save(mappers.ItemToModel(item)).Error; err != nil {
		r.logger.Errorw("failed to update item", "id", item.ID(), "error", err)
		return fmt.Errorf("failed to update item: %w", err)
	}
	return r.replaceAssociations(tx, item)
}

func (r *ItemRepositoryImpl) replaceAssociations(tx *gorm.DB, item *listing.Item) error {
	if err := tx.Where("item_id = ?", item.ID()).Delete(&models.ItemAmenityModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear item amenities: %w", err)
	}
	if ids := item.AmenityIDs(); len(ids) > 0 {
		rows := make([]models.ItemAmenityModel, 0, len(ids))
		for _, id := range ids {
			rows = append(rows, models.ItemAmenityModel{ItemID: item.ID(), AmenityID: id})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to save item amenities: %w", err)
		}
	}

	if err := tx.Where("item_id = ?", item.ID()).Delete(&models.ItemFileModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear item files: %w", err)
	}
	if ids := item.FileIDs(); len(ids) > 0 {
		rows := make([]models.ItemFileModel, 0, len(ids))
		for pos, id := range ids {
			rows = append(rows, models.ItemFileModel{ItemID: item.ID(), FileID: id, Position: pos})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to save item files: %w", err)
		}
	}
	return nil
}

func (r *ItemRepositoryImpl) GetByID(ctx context.Context, id uint) (*listing.Item, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var model models.ItemModel
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get item", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	items, err := r.hydrate(tx, []*models.ItemModel{&model})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

func (r *ItemRepositoryImpl) List(ctx context.Context, filter listing.ItemFilter) ([]*listing.Item, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ItemModel{}).Scopes(db.ForStore(filter.StoreID), db.NotDeleted())

	if filter.Stage != nil {
		query = query.Where("stage = ?", string(*filter.Stage))
	}
	if filter.Search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count items", "store_id", filter.StoreID, "error", err)
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}

	var rows []*models.ItemModel
	if err := query.Scopes(db.Paginate(filter.Page, filter.PageSize)).Order("id DESC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list items", "store_id", filter.StoreID, "error", err)
		return nil, 0, fmt.Errorf("failed to list items: %w", err)
	}

	items, err := r.hydrate(tx, rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// hydrate loads the join tables for a page of items in two queries.
func (r *ItemRepositoryImpl) hydrate(tx *gorm.DB, rows []*models.ItemModel) ([]*listing.Item, error) {
	if len(rows) == 0 {
		return []*listing.Item{}, nil
	}
	ids := make([]uint, 0, len(rows))
	for _, m := range rows {
		ids = append(ids, m.ID)
	}

	var amenityRows []models.ItemAmenityModel
	if err := tx.Where("item_id IN ?", ids).Order("amenity_id ASC").Find(&amenityRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load item amenities: %w", err)
	}
	var fileRows []models.ItemFileModel
	if err := tx.Where("item_id IN ?", ids).Order("position ASC").Find(&fileRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load item files: %w", err)
	}

	amenities := make(map[uint][]uint)
	for _, a := range amenityRows {
		amenities[a.ItemID] = append(amenities[a.ItemID], a.AmenityID)
	}
	files := make(map[uint][]uint)
	for _, f := range fileRows {
		files[f.ItemID] = append(files[f.ItemID], f.FileID)
	}

	items := make([]*listing.Item, 0, len(rows))
	for _, m := range rows {
		items = append(items, mappers.ItemToEntity(m, amenities[m.ID], files[m.ID]))
	}
	return items, nil
}

// SoftDelete flags the item and everything hanging off it. Storage objects
// of the cascaded files are left in place.
func (r *ItemRepositoryImpl) SoftDelete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	flag := map[string]interface{}{"is_deleted": true}

	if err := tx.Model(&models.ItemModel{}).Where("id = ?", id).Updates(flag).Error; err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	floorPlans := tx.Model(&models.FloorPlanModel{}).Select("id").Where("item_id = ?", id)
	if err := tx.Model(&models.PlanMarkerModel{}).Where("floor_plan_id IN (?)", floorPlans).Updates(flag).Error; err != nil {
		return fmt.Errorf("failed to delete plan markers: %w", err)
	}

	for _, m := range []interface{}{
		&models.RateModel{},
		&models.FeeModel{},
		&models.FloorPlanModel{},
		&models.BookedDateModel{},
		&models.LinkModel{},
	} {
		if err := tx.Model(m).Where("item_id = ?", id).Updates(flag).Error; err != nil {
			return fmt.Errorf("failed to cascade item delete: %w", err)
		}
	}

	files := tx.Model(&models.ItemFileModel{}).Select("file_id").Where("item_id = ?", id)
	if err := tx.Model(&models.FileModel{}).Where("id IN (?)", files).Updates(flag).Error; err != nil {
		return fmt.Errorf("failed to delete item files: %w", err)
	}

	r.logger.Infow("item soft-deleted", "id", id)
	return nil
}
