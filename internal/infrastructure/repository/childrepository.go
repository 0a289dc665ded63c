package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/logger"
)

// childRepository implements listing.ChildRepository for sub-resources that
// hang off a single parent column. E is the domain entity, M the model.
type childRepository[E any, M any] struct {
	db           *gorm.DB
	logger       logger.Interface
	name         string
	parentColumn string
	order        string
	toEntity     func(*M) *E
	toModel      func(*E) *M
	modelID      func(*M) uint
	setID        func(*E, uint)
}

func (r *childRepository[E, M]) Create(ctx context.Context, entity *E) error {
	model := r.toModel(entity)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create "+r.name, "error", err)
		return fmt.Errorf("failed to create %s: %w", r.name, err)
	}
	r.setID(entity, r.modelID(model))
	return nil
}

func (r *childRepository[E, M]) Update(ctx context.Context, entity *E) error {
	if err := db.GetTxFromContext(ctx, r.db).Save(r.toModel(entity)).Error; err != nil {
		r.logger.Errorw("failed to update "+r.name, "error", err)
		return fmt.Errorf("failed to update %s: %w", r.name, err)
	}
	return nil
}

func (r *childRepository[E, M]) GetByID(ctx context.Context, id uint) (*E, error) {
	var model M
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", r.name, err)
	}
	return r.toEntity(&model), nil
}

func (r *childRepository[E, M]) ListByParent(ctx context.Context, parentID uint) ([]*E, error) {
	var rows []*M
	err := db.GetTxFromContext(ctx, r.db).
		Where(r.parentColumn+" = ?", parentID).
		Scopes(db.NotDeleted()).
		Order(r.order).
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list "+r.name, "parent_id", parentID, "error", err)
		return nil, fmt.Errorf("failed to list %s: %w", r.name, err)
	}
	out := make([]*E, 0, len(rows))
	for _, m := range rows {
		out = append(out, r.toEntity(m))
	}
	return out, nil
}
