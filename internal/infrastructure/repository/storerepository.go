package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/infrastructure/persistence/mappers"
	"github.com/estately/estately/internal/infrastructure/persistence/models"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/logger"
)

type StoreRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.StoreMapper
	logger logger.Interface
}

func NewStoreRepository(db *gorm.DB, logger logger.Interface) store.Repository {
	return &StoreRepositoryImpl{
		db:     db,
		mapper: mappers.NewStoreMapper(),
		logger: logger,
	}
}

func (r *StoreRepositoryImpl) Create(ctx context.Context, s *store.Store) error {
	model := r.mapper.ToModel(s)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create store", "hostname", model.Hostname, "error", err)
		return fmt.Errorf("failed to create store: %w", err)
	}
	if err := s.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set store ID: %w", err)
	}
	r.logger.Infow("store created", "id", model.ID, "hostname", model.Hostname, "owner_id", model.OwnerID)
	return nil
}

func (r *StoreRepositoryImpl) Update(ctx context.Context, s *store.Store) error {
	model := r.mapper.ToModel(s)
	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update store", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update store: %w", err)
	}
	return nil
}

func (r *StoreRepositoryImpl) first(ctx context.Context, query string, args ...interface{}) (*store.Store, error) {
	var model models.StoreModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to query store", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *StoreRepositoryImpl) GetByID(ctx context.Context, id uint) (*store.Store, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByHostname matches the hostname exactly after lowercasing.
func (r *StoreRepositoryImpl) GetByHostname(ctx context.Context, hostname string) (*store.Store, error) {
	return r.first(ctx, "hostname = ?", strings.ToLower(hostname))
}

func (r *StoreRepositoryImpl) GetByOwnerID(ctx context.Context, ownerID uint) (*store.Store, error) {
	return r.first(ctx, "owner_id = ?", ownerID)
}

func (r *StoreRepositoryImpl) List(ctx context.Context, filter store.ListFilter) ([]*store.Store, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.StoreModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(hostname) LIKE ? OR LOWER(name) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count stores", "error", err)
		return nil, 0, fmt.Errorf("failed to count stores: %w", err)
	}

	var rows []*models.StoreModel
	if err := query.Scopes(db.Paginate(filter.Page, filter.PageSize)).Order("id DESC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list stores", "error", err)
		return nil, 0, fmt.Errorf("failed to list stores: %w", err)
	}
	return r.mapper.ToEntities(rows), total, nil
}

func (r *StoreRepositoryImpl) ListIDs(ctx context.Context, afterID uint, limit int) ([]uint, error) {
	var ids []uint
	err := db.GetTxFromContext(ctx, r.db).Model(&models.StoreModel{}).
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list store ids: %w", err)
	}
	return ids, nil
}
