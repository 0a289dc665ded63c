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

func NewRateRepository(db *gorm.DB, logger logger.Interface) listing.RateRepository {
	return &childRepository[listing.Rate, models.RateModel]{
		db: db, logger: logger, name: "rate", parentColumn: "item_id", order: "id ASC",
		toEntity: mappers.RateToEntity,
		toModel:  mappers.RateToModel,
		modelID:  func(m *models.RateModel) uint { return m.ID },
		setID:    func(e *listing.Rate, id uint) { e.ID = id },
	}
}

func NewFeeRepository(db *gorm.DB, logger logger.Interface) listing.FeeRepository {
	return &childRepository[listing.Fee, models.FeeModel]{
		db: db, logger: logger, name: "fee", parentColumn: "item_id", order: "id ASC",
		toEntity: mappers.FeeToEntity,
		toModel:  mappers.FeeToModel,
		modelID:  func(m *models.FeeModel) uint { return m.ID },
		setID:    func(e *listing.Fee, id uint) { e.ID = id },
	}
}

func NewFloorPlanRepository(db *gorm.DB, logger logger.Interface) listing.FloorPlanRepository {
	return &childRepository[listing.FloorPlan, models.FloorPlanModel]{
		db: db, logger: logger, name: "floor plan", parentColumn: "item_id", order: "position ASC, id ASC",
		toEntity: mappers.FloorPlanToEntity,
		toModel:  mappers.FloorPlanToModel,
		modelID:  func(m *models.FloorPlanModel) uint { return m.ID },
		setID:    func(e *listing.FloorPlan, id uint) { e.ID = id },
	}
}

func NewPlanMarkerRepository(db *gorm.DB, logger logger.Interface) listing.PlanMarkerRepository {
	return &childRepository[listing.PlanMarker, models.PlanMarkerModel]{
		db: db, logger: logger, name: "plan marker", parentColumn: "floor_plan_id", order: "id ASC",
		toEntity: mappers.PlanMarkerToEntity,
		toModel:  mappers.PlanMarkerToModel,
		modelID:  func(m *models.PlanMarkerModel) uint { return m.ID },
		setID:    func(e *listing.PlanMarker, id uint) { e.ID = id },
	}
}

func NewBookedDateRepository(db *gorm.DB, logger logger.Interface) listing.BookedDateRepository {
	return &childRepository[listing.BookedDate, models.BookedDateModel]{
		db: db, logger: logger, name: "booked date", parentColumn: "item_id", order: "start_date ASC, id ASC",
		toEntity: mappers.BookedDateToEntity,
		toModel:  mappers.BookedDateToModel,
		modelID:  func(m *models.BookedDateModel) uint { return m.ID },
		setID:    func(e *listing.BookedDate, id uint) { e.ID = id },
	}
}

func NewLinkRepository(db *gorm.DB, logger logger.Interface) listing.LinkRepository {
	return &childRepository[listing.Link, models.LinkModel]{
		db: db, logger: logger, name: "link", parentColumn: "item_id", order: "id ASC",
		toEntity: mappers.LinkToEntity,
		toModel:  mappers.LinkToModel,
		modelID:  func(m *models.LinkModel) uint { return m.ID },
		setID:    func(e *listing.Link, id uint) { e.ID = id },
	}
}

func NewMemberRepository(db *gorm.DB, logger logger.Interface) listing.MemberRepository {
	return &childRepository[listing.Member, models.MemberModel]{
		db: db, logger: logger, name: "member", parentColumn: "store_id", order: "name ASC, id ASC",
		toEntity: mappers.MemberToEntity,
		toModel:  mappers.MemberToModel,
		modelID:  func(m *models.MemberModel) uint { return m.ID },
		setID:    func(e *listing.Member, id uint) { e.ID = id },
	}
}

type AmenityRepositoryImpl struct {
	*childRepository[listing.Amenity, models.AmenityModel]
}

func NewAmenityRepository(db *gorm.DB, logger logger.Interface) listing.AmenityRepository {
	return &AmenityRepositoryImpl{&childRepository[listing.Amenity, models.AmenityModel]{
		db: db, logger: logger, name: "amenity", parentColumn: "store_id", order: "name ASC, id ASC",
		toEntity: mappers.AmenityToEntity,
		toModel:  mappers.AmenityToModel,
		modelID:  func(m *models.AmenityModel) uint { return m.ID },
		setID:    func(e *listing.Amenity, id uint) { e.ID = id },
	}}
}

func (r *AmenityRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*listing.Amenity, error) {
	if len(ids) == 0 {
		return []*listing.Amenity{}, nil
	}
	var rows []*models.AmenityModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get amenities: %w", err)
	}
	out := make([]*listing.Amenity, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.AmenityToEntity(m))
	}
	return out, nil
}

func (r *AmenityRepositoryImpl) ExistsByName(ctx context.Context, storeID uint, name string, excludeID uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.AmenityModel{}).
		Scopes(db.ForStore(storeID), db.NotDeleted()).
		Where("LOWER(name) = ? AND id <> ?", strings.ToLower(strings.TrimSpace(name)), excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check amenity name: %w", err)
	}
	return count > 0, nil
}

type MetadataRepositoryImpl struct {
	*childRepository[listing.Metadata, models.MetadataModel]
}

func NewMetadataRepository(db *gorm.DB, logger logger.Interface) listing.MetadataRepository {
	return &MetadataRepositoryImpl{&childRepository[listing.Metadata, models.MetadataModel]{
		db: db, logger: logger, name: "metadata", parentColumn: "store_id", order: "meta_key ASC",
		toEntity: mappers.MetadataToEntity,
		toModel:  mappers.MetadataToModel,
		modelID:  func(m *models.MetadataModel) uint { return m.ID },
		setID:    func(e *listing.Metadata, id uint) { e.ID = id },
	}}
}

// GetByKey includes soft-deleted rows so an upsert can revive them.
func (r *MetadataRepositoryImpl) GetByKey(ctx context.Context, storeID uint, key string) (*listing.Metadata, error) {
	var model models.MetadataModel
	err := db.GetTxFromContext(ctx, r.db).Scopes(db.ForStore(storeID)).Where("meta_key = ?", key).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get metadata: %w", err)
	}
	return mappers.MetadataToEntity(&model), nil
}
