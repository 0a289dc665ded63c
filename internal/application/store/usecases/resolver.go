package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/domain/user"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

// ResolveInput selects the store a request operates on. In public mode the
// store comes from Hostname; with RequireOwnership it is the store owned by
// UserID.
type ResolveInput struct {
	Hostname         string
	UserID           uint
	RequireOwnership bool
}

type Resolver struct {
	storeRepo store.Repository
	userRepo  user.Repository
	validate  *validator.Validate
	logger    logger.Interface
}

func NewResolver(storeRepo store.Repository, userRepo user.Repository, logger logger.Interface) *Resolver {
	return &Resolver{
		storeRepo: storeRepo,
		userRepo:  userRepo,
		validate:  validator.New(),
		logger:    logger,
	}
}

func (r *Resolver) Resolve(ctx context.Context, in ResolveInput) (*store.Store, error) {
	var (
		s   *store.Store
		err error
	)
	if in.RequireOwnership {
		if in.UserID == 0 {
			return nil, errors.NewUnauthorizedError("authentication required")
		}
		s, err = r.storeRepo.GetByOwnerID(ctx, in.UserID)
	} else {
		hostname := strings.ToLower(strings.TrimSpace(in.Hostname))
		if hostname == "" {
			return nil, errors.NewBadRequestError("hostname is required")
		}
		if verr := r.validate.Var(hostname, "fqdn"); verr != nil {
			return nil, errors.NewBadRequestError("invalid hostname", hostname)
		}
		s, err = r.storeRepo.GetByHostname(ctx, hostname)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	if s == nil {
		return nil, store.ErrStoreNotFound
	}

	owner, err := r.userRepo.GetByID(ctx, s.OwnerID())
	if err != nil {
		return nil, fmt.Errorf("failed to get store owner: %w", err)
	}
	if owner == nil {
		r.logger.Errorw("store without owner", "store_id", s.ID(), "owner_id", s.OwnerID())
		return nil, store.ErrStoreNotFound
	}

	if err := s.CheckAccess(store.Owner{
		ID:      owner.ID(),
		Blocked: owner.IsBlocked(),
		Admin:   owner.IsAdmin(),
	}); err != nil {
		return nil, err
	}
	return s, nil
}
