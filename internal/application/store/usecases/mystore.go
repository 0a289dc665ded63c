package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/media"
	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

type GetMyStoreUseCase struct {
	storeRepo store.Repository
	logger    logger.Interface
}

func NewGetMyStoreUseCase(storeRepo store.Repository, logger logger.Interface) *GetMyStoreUseCase {
	return &GetMyStoreUseCase{storeRepo: storeRepo, logger: logger}
}

func (uc *GetMyStoreUseCase) Execute(ctx context.Context, userID uint) (*store.Store, error) {
	s, err := uc.storeRepo.GetByOwnerID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	if s == nil {
		return nil, store.ErrStoreNotFound
	}
	return s, nil
}

// UpdateMyStoreCommand carries the branding fields. The hostname is not
// editable here.
type UpdateMyStoreCommand struct {
	UserID       uint
	Name         string
	Description  string
	ContactEmail string
	ContactPhone string
	Address      string
	LogoFileID   *uint
	CoverFileID  *uint
	PrimaryColor string
}

type UpdateMyStoreUseCase struct {
	storeRepo store.Repository
	fileRepo  media.Repository
	txManager db.Transactor
	logger    logger.Interface
}

func NewUpdateMyStoreUseCase(
	storeRepo store.Repository,
	fileRepo media.Repository,
	txManager db.Transactor,
	logger logger.Interface,
) *UpdateMyStoreUseCase {
	return &UpdateMyStoreUseCase{
		storeRepo: storeRepo,
		fileRepo:  fileRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *UpdateMyStoreUseCase) Execute(ctx context.Context, cmd UpdateMyStoreCommand) (*store.Store, error) {
	var updated *store.Store
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		s, err := uc.storeRepo.GetByOwnerID(txCtx, cmd.UserID)
		if err != nil {
			return fmt.Errorf("failed to get store: %w", err)
		}
		if s == nil {
			return store.ErrStoreNotFound
		}

		for _, fileID := range []*uint{cmd.LogoFileID, cmd.CoverFileID} {
			if fileID == nil {
				continue
			}
			if err := uc.checkFile(txCtx, s.ID(), *fileID); err != nil {
				return err
			}
		}

		if err := s.UpdateBranding(store.Branding{
			Name:         cmd.Name,
			Description:  cmd.Description,
			ContactEmail: cmd.ContactEmail,
			ContactPhone: cmd.ContactPhone,
			Address:      cmd.Address,
			LogoFileID:   cmd.LogoFileID,
			CoverFileID:  cmd.CoverFileID,
			PrimaryColor: cmd.PrimaryColor,
		}); err != nil {
			return errors.NewBadRequestError(err.Error())
		}
		if err := uc.storeRepo.Update(txCtx, s); err != nil {
			return fmt.Errorf("failed to update store: %w", err)
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("store branding updated", "store_id", updated.ID())
	return updated, nil
}

func (uc *UpdateMyStoreUseCase) checkFile(ctx context.Context, storeID, fileID uint) error {
	f, err := uc.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return fmt.Errorf("failed to get file: %w", err)
	}
	if f == nil || f.IsDeleted() {
		return media.ErrFileNotFound
	}
	if f.StoreID() != storeID {
		return store.ErrForeignResource
	}
	return nil
}

// GetPublicStoreUseCase serves storefront metadata through the tenant gate.
type GetPublicStoreUseCase struct {
	resolver *Resolver
}

func NewGetPublicStoreUseCase(resolver *Resolver) *GetPublicStoreUseCase {
	return &GetPublicStoreUseCase{resolver: resolver}
}

func (uc *GetPublicStoreUseCase) Execute(ctx context.Context, hostname string) (*store.Store, error) {
	return uc.resolver.Resolve(ctx, ResolveInput{Hostname: hostname})
}
