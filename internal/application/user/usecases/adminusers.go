package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/user"
	"github.com/estately/estately/internal/shared/logger"
	"github.com/estately/estately/internal/shared/utils"
)

type ListUsersQuery struct {
	Search   string
	Blocked  *bool
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users []*user.User
	Total int64
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, q ListUsersQuery) (*ListUsersResult, error) {
	p := utils.ValidatePagination(q.Page, q.PageSize)
	users, total, err := uc.userRepo.List(ctx, user.ListFilter{
		Search:   q.Search,
		Blocked:  q.Blocked,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return &ListUsersResult{Users: users, Total: total}, nil
}

type SetUserBlockedCommand struct {
	ActorID uint
	UserID  uint
	Blocked bool
}

type SetUserBlockedUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewSetUserBlockedUseCase(userRepo user.Repository, logger logger.Interface) *SetUserBlockedUseCase {
	return &SetUserBlockedUseCase{userRepo: userRepo, logger: logger}
}

func (uc *SetUserBlockedUseCase) Execute(ctx context.Context, cmd SetUserBlockedCommand) (*user.User, error) {
	if cmd.Blocked && cmd.ActorID == cmd.UserID {
		return nil, user.ErrCannotBlockSelf
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}

	u.SetBlocked(cmd.Blocked)
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user block state changed", "actor_id", cmd.ActorID, "user_id", u.ID(), "blocked", cmd.Blocked)
	return u, nil
}
