package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/user"
	"github.com/estately/estately/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, userID uint) (*user.User, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

// ExecuteByUUID resolves the subject of an access token.
func (uc *GetUserUseCase) ExecuteByUUID(ctx context.Context, userUUID string) (*user.User, error) {
	u, err := uc.userRepo.GetByUUID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}
