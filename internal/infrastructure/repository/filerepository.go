package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/estately/estately/internal/domain/media"
	"github.com/estately/estately/internal/infrastructure/persistence/mappers"
	"github.com/estately/estately/internal/infrastructure/persistence/models"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/logger"
)

type FileRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewFileRepository(db *gorm.DB, logger logger.Interface) media.Repository {
	return &FileRepositoryImpl{db: db, logger: logger}
}

func (r *FileRepositoryImpl) Create(ctx context.Context, f *media.File) error {
	model := mappers.FileToModel(f)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create file", "key", model.Key, "error", err)
		return fmt.Errorf("failed to create file: %w", err)
	}
	return f.SetID(model.ID)
}

func (r *FileRepositoryImpl) GetByID(ctx context.Context, id uint) (*media.File, error) {
	var model models.FileModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	return mappers.FileToEntity(&model), nil
}

func (r *FileRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*media.File, error) {
	if len(ids) == 0 {
		return []*media.File{}, nil
	}
	var rows []*models.FileModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get files: %w", err)
	}
	out := make([]*media.File, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.FileToEntity(m))
	}
	return out, nil
}

func (r *FileRepositoryImpl) List(ctx context.Context, storeID uint, kind *media.Kind, page, pageSize int) ([]*media.File, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.FileModel{}).Scopes(db.ForStore(storeID), db.NotDeleted())
	if kind != nil {
		query = query.Where("kind = ?", string(*kind))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count files: %w", err)
	}
	var rows []*models.FileModel
	if err := query.Scopes(db.Paginate(page, pageSize)).Order("id DESC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list files", "store_id", storeID, "error", err)
		return nil, 0, fmt.Errorf("failed to list files: %w", err)
	}

	out := make([]*media.File, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.FileToEntity(m))
	}
	return out, total, nil
}

// fileReferences lists the nullable columns that may point at a file.
var fileReferences = []struct {
	model  any
	column string
}{
	{&models.StoreModel{}, "logo_file_id"},
	{&models.StoreModel{}, "cover_file_id"},
	{&models.MemberModel{}, "photo_file_id"},
	{&models.FloorPlanModel{}, "image_file_id"},
	{&models.PlanMarkerModel{}, "file_id"},
}

func (r *FileRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("file_id = ?", id).Delete(&models.ItemFileModel{}).Error; err != nil {
		return fmt.Errorf("failed to detach file: %w", err)
	}
	for _, ref := range fileReferences {
		if err := tx.Model(ref.model).Where(ref.column+" = ?", id).Update(ref.column, nil).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", ref.column, err)
		}
	}
	if err := tx.Delete(&models.FileModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete file", "id", id, "error", err)
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (r *FileRepositoryImpl) AttachToItem(ctx context.Context, itemID, fileID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var next struct{ Max *int }
	if err := tx.Model(&models.ItemFileModel{}).Select("MAX(position) AS max").Where("item_id = ?", itemID).Scan(&next).Error; err != nil {
		return fmt.Errorf("failed to read item file positions: %w", err)
	}
	pos := 0
	if next.Max != nil {
		pos = *next.Max + 1
	}

	row := models.ItemFileModel{ItemID: itemID, FileID: fileID, Position: pos}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to attach file to item: %w", err)
	}
	return nil
}
