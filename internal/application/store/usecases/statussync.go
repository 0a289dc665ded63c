package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/domain/subscription"
	"github.com/estately/estately/internal/shared/biztime"
	"github.com/estately/estately/internal/shared/logger"
)

const syncBatchSize = 100

// StatusSyncer derives a store's status from its owner's current
// subscription.
type StatusSyncer struct {
	storeRepo store.Repository
	subRepo   subscription.Repository
	logger    logger.Interface
}

func NewStatusSyncer(storeRepo store.Repository, subRepo subscription.Repository, logger logger.Interface) *StatusSyncer {
	return &StatusSyncer{storeRepo: storeRepo, subRepo: subRepo, logger: logger}
}

// SyncForUser recomputes the status of the store owned by userID. A user
// without a store is not an error.
func (s *StatusSyncer) SyncForUser(ctx context.Context, userID uint) error {
	st, err := s.storeRepo.GetByOwnerID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get store: %w", err)
	}
	if st == nil {
		return nil
	}
	_, err = s.sync(ctx, st)
	return err
}

func (s *StatusSyncer) sync(ctx context.Context, st *store.Store) (bool, error) {
	sub, err := s.subRepo.GetCurrentByUserID(ctx, st.OwnerID())
	if err != nil {
		return false, fmt.Errorf("failed to get subscription: %w", err)
	}

	status := store.StatusInactive
	if sub != nil && sub.GrantsAccess(biztime.NowUTC()) {
		status = store.StatusActive
	}

	changed, err := st.SetStatus(status)
	if err != nil || !changed {
		return false, err
	}
	if err := s.storeRepo.Update(ctx, st); err != nil {
		return false, fmt.Errorf("failed to update store status: %w", err)
	}
	s.logger.Infow("store status changed", "store_id", st.ID(), "status", status)
	return true, nil
}

// SyncStoreStatusesUseCase walks every store and recomputes its status. It
// backs the periodic scheduler job.
type SyncStoreStatusesUseCase struct {
	storeRepo store.Repository
	syncer    *StatusSyncer
	logger    logger.Interface
}

func NewSyncStoreStatusesUseCase(storeRepo store.Repository, syncer *StatusSyncer, logger logger.Interface) *SyncStoreStatusesUseCase {
	return &SyncStoreStatusesUseCase{storeRepo: storeRepo, syncer: syncer, logger: logger}
}

// Execute returns how many stores changed status. A failing store is logged
// and skipped.
func (uc *SyncStoreStatusesUseCase) Execute(ctx context.Context) (int, error) {
	var afterID uint
	changed := 0
	for {
		ids, err := uc.storeRepo.ListIDs(ctx, afterID, syncBatchSize)
		if err != nil {
			return changed, fmt.Errorf("failed to list stores: %w", err)
		}
		if len(ids) == 0 {
			break
		}

		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return changed, err
			}
			st, err := uc.storeRepo.GetByID(ctx, id)
			if err != nil {
				uc.logger.Warnw("failed to load store for status sync", "store_id", id, "error", err)
				continue
			}
			if st == nil {
				continue
			}
			ok, err := uc.syncer.sync(ctx, st)
			if err != nil {
				uc.logger.Warnw("store status sync failed", "store_id", id, "error", err)
				continue
			}
			if ok {
				changed++
			}
		}
		afterID = ids[len(ids)-1]
	}

	uc.logger.Debugw("store status sync finished", "changed", changed)
	return changed, nil
}
