package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/listing"
	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

// entity is the method set every sub-resource pointer type provides.
type entity[T any] interface {
	*T
	Base() *listing.Record
	Validate() error
}

// resourceRules describes how one kind of sub-resource hangs off its parent
// and which references it must re-check on every write.
type resourceRules[T any] struct {
	name      string
	notFound  error
	parentID  func(*T) uint
	setParent func(*T, uint)
	// checkParent verifies the parent belongs to the store.
	checkParent func(ctx context.Context, storeID, parentID uint) error
	// checkRefs verifies references other than the parent.
	checkRefs func(ctx context.Context, storeID uint, e *T) error
	// checkSiblings runs against the visible siblings before a write.
	checkSiblings func(ctx context.Context, e *T, siblings []*T) error
	// duplicate is returned when the write hits a unique index.
	duplicate error
}

// ResourceUseCase serves list/get/create/update/delete for one kind of
// tenant-scoped sub-resource.
type ResourceUseCase[T any, P entity[T]] struct {
	repo      listing.ChildRepository[T]
	rules     resourceRules[T]
	txManager db.Transactor
	logger    logger.Interface
}

func (uc *ResourceUseCase[T, P]) load(ctx context.Context, storeID, id uint) (*T, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", uc.rules.name, err)
	}
	if e == nil || P(e).Base().IsDeleted {
		return nil, uc.rules.notFound
	}
	if err := uc.rules.checkParent(ctx, storeID, uc.rules.parentID(e)); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *ResourceUseCase[T, P]) List(ctx context.Context, storeID, parentID uint) ([]*T, error) {
	if err := uc.rules.checkParent(ctx, storeID, parentID); err != nil {
		return nil, err
	}
	out, err := uc.repo.ListByParent(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", uc.rules.name, err)
	}
	return out, nil
}

func (uc *ResourceUseCase[T, P]) Get(ctx context.Context, storeID, id uint) (*T, error) {
	return uc.load(ctx, storeID, id)
}

func (uc *ResourceUseCase[T, P]) check(ctx context.Context, storeID uint, e *T) error {
	if err := P(e).Validate(); err != nil {
		return errors.NewBadRequestError(err.Error())
	}
	if err := uc.rules.checkParent(ctx, storeID, uc.rules.parentID(e)); err != nil {
		return err
	}
	if uc.rules.checkRefs != nil {
		if err := uc.rules.checkRefs(ctx, storeID, e); err != nil {
			return err
		}
	}
	if uc.rules.checkSiblings != nil {
		siblings, err := uc.repo.ListByParent(ctx, uc.rules.parentID(e))
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", uc.rules.name, err)
		}
		if err := uc.rules.checkSiblings(ctx, e, siblings); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ResourceUseCase[T, P]) mapWriteError(err error) error {
	if uc.rules.duplicate != nil && errors.IsDuplicateError(err) {
		return uc.rules.duplicate
	}
	return fmt.Errorf("failed to save %s: %w", uc.rules.name, err)
}

// Create inserts e under parentID.
func (uc *ResourceUseCase[T, P]) Create(ctx context.Context, storeID, parentID uint, e *T) (*T, error) {
	uc.rules.setParent(e, parentID)
	base := P(e).Base()
	base.ID, base.IsDeleted = 0, false

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.check(txCtx, storeID, e); err != nil {
			return err
		}
		if err := uc.repo.Create(txCtx, e); err != nil {
			return uc.mapWriteError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Infow(uc.rules.name+" created", "id", base.ID, "store_id", storeID)
	return e, nil
}

// Update replaces the stored fields with e, keeping the parent and the
// bookkeeping columns of the existing row.
func (uc *ResourceUseCase[T, P]) Update(ctx context.Context, storeID, id uint, e *T) (*T, error) {
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.load(txCtx, storeID, id)
		if err != nil {
			return err
		}
		uc.rules.setParent(e, uc.rules.parentID(existing))
		*P(e).Base() = *P(existing).Base()

		if err := uc.check(txCtx, storeID, e); err != nil {
			return err
		}
		if err := uc.repo.Update(txCtx, e); err != nil {
			return uc.mapWriteError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Delete hides the row from every visible collection.
func (uc *ResourceUseCase[T, P]) Delete(ctx context.Context, storeID, id uint) error {
	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		e, err := uc.load(txCtx, storeID, id)
		if err != nil {
			return err
		}
		P(e).Base().IsDeleted = true
		if err := uc.repo.Update(txCtx, e); err != nil {
			return fmt.Errorf("failed to delete %s: %w", uc.rules.name, err)
		}
		uc.logger.Infow(uc.rules.name+" deleted", "id", id, "store_id", storeID)
		return nil
	})
}

// ownStore is the parent check of store-level resources.
func ownStore(_ context.Context, storeID, parentID uint) error {
	if storeID != parentID {
		return store.ErrForeignResource
	}
	return nil
}
