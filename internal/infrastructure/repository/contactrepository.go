package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/estately/estately/internal/domain/contact"
	"github.com/estately/estately/internal/infrastructure/persistence/mappers"
	"github.com/estately/estately/internal/infrastructure/persistence/models"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/logger"
)

type ContactRequestRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewContactRequestRepository(db *gorm.DB, logger logger.Interface) contact.Repository {
	return &ContactRequestRepositoryImpl{db: db, logger: logger}
}

func (r *ContactRequestRepositoryImpl) Create(ctx context.Context, req *contact.Request) error {
	model := mappers.ContactRequestToModel(req)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create contact request", "store_id", model.StoreID, "error", err)
		return fmt.Errorf("failed to create contact request: %w", err)
	}
	return req.SetID(model.ID)
}

func (r *ContactRequestRepositoryImpl) Update(ctx context.Context, req *contact.Request) error {
	if err := db.GetTxFromContext(ctx, r.db).Save(mappers.ContactRequestToModel(req)).Error; err != nil {
		r.logger.Errorw("failed to update contact request", "id", req.ID(), "error", err)
		return fmt.Errorf("failed to update contact request: %w", err)
	}
	return nil
}

func (r *ContactRequestRepositoryImpl) GetByID(ctx context.Context, id uint) (*contact.Request, error) {
	var model models.ContactRequestModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contact request: %w", err)
	}
	return mappers.ContactRequestToEntity(&model), nil
}

func (r *ContactRequestRepositoryImpl) List(ctx context.Context, filter contact.ListFilter) ([]*contact.Request, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ContactRequestModel{}).
		Scopes(db.ForStore(filter.StoreID), db.NotDeleted())
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contact requests: %w", err)
	}
	var rows []*models.ContactRequestModel
	if err := query.Scopes(db.Paginate(filter.Page, filter.PageSize)).Order("id DESC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list contact requests", "store_id", filter.StoreID, "error", err)
		return nil, 0, fmt.Errorf("failed to list contact requests: %w", err)
	}

	out := make([]*contact.Request, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.ContactRequestToEntity(m))
	}
	return out, total, nil
}

type AdminContactRequestRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAdminContactRequestRepository(db *gorm.DB, logger logger.Interface) contact.AdminRepository {
	return &AdminContactRequestRepositoryImpl{db: db, logger: logger}
}

func (r *AdminContactRequestRepositoryImpl) Create(ctx context.Context, req *contact.AdminRequest) error {
	model := mappers.AdminContactRequestToModel(req)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create admin contact request", "error", err)
		return fmt.Errorf("failed to create admin contact request: %w", err)
	}
	return req.SetID(model.ID)
}

func (r *AdminContactRequestRepositoryImpl) Update(ctx context.Context, req *contact.AdminRequest) error {
	if err := db.GetTxFromContext(ctx, r.db).Save(mappers.AdminContactRequestToModel(req)).Error; err != nil {
		return fmt.Errorf("failed to update admin contact request: %w", err)
	}
	return nil
}

func (r *AdminContactRequestRepositoryImpl) GetByID(ctx context.Context, id uint) (*contact.AdminRequest, error) {
	var model models.AdminContactRequestModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin contact request: %w", err)
	}
	return mappers.AdminContactRequestToEntity(&model), nil
}

func (r *AdminContactRequestRepositoryImpl) List(ctx context.Context, status *contact.Status, page, pageSize int) ([]*contact.AdminRequest, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AdminContactRequestModel{})
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count admin contact requests: %w", err)
	}
	var rows []*models.AdminContactRequestModel
	if err := query.Scopes(db.Paginate(page, pageSize)).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list admin contact requests: %w", err)
	}

	out := make([]*contact.AdminRequest, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.AdminContactRequestToEntity(m))
	}
	return out, total, nil
}
