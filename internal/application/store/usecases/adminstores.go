package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
	"github.com/estately/estately/internal/shared/utils"
)

type ListStoresQuery struct {
	Search   string
	Status   string
	Page     int
	PageSize int
}

type ListStoresResult struct {
	Stores []*store.Store
	Total  int64
}

type ListStoresUseCase struct {
	storeRepo store.Repository
	logger    logger.Interface
}

func NewListStoresUseCase(storeRepo store.Repository, logger logger.Interface) *ListStoresUseCase {
	return &ListStoresUseCase{storeRepo: storeRepo, logger: logger}
}

func (uc *ListStoresUseCase) Execute(ctx context.Context, q ListStoresQuery) (*ListStoresResult, error) {
	filter := store.ListFilter{Search: q.Search}
	if q.Status != "" {
		status := store.Status(q.Status)
		if !status.IsValid() {
			return nil, errors.NewBadRequestError("invalid store status", q.Status)
		}
		filter.Status = &status
	}
	p := utils.ValidatePagination(q.Page, q.PageSize)
	filter.Page, filter.PageSize = p.Page, p.PageSize

	stores, total, err := uc.storeRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list stores", "error", err)
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	return &ListStoresResult{Stores: stores, Total: total}, nil
}

// AdminUpdateStoreCommand changes only the fields that are set.
type AdminUpdateStoreCommand struct {
	StoreID   uint
	Protected *bool
	Status    *string
}

type AdminUpdateStoreUseCase struct {
	storeRepo store.Repository
	logger    logger.Interface
}

func NewAdminUpdateStoreUseCase(storeRepo store.Repository, logger logger.Interface) *AdminUpdateStoreUseCase {
	return &AdminUpdateStoreUseCase{storeRepo: storeRepo, logger: logger}
}

func (uc *AdminUpdateStoreUseCase) Execute(ctx context.Context, cmd AdminUpdateStoreCommand) (*store.Store, error) {
	s, err := uc.storeRepo.GetByID(ctx, cmd.StoreID)
	if err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	if s == nil {
		return nil, store.ErrStoreNotFound
	}

	if cmd.Protected != nil {
		s.SetProtected(*cmd.Protected)
	}
	if cmd.Status != nil {
		if _, err := s.SetStatus(store.Status(*cmd.Status)); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}
	if err := uc.storeRepo.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to update store: %w", err)
	}

	uc.logger.Infow("store updated by admin",
		"store_id", s.ID(),
		"protected", s.IsProtected(),
		"status", s.Status(),
	)
	return s, nil
}
