package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/user"
	vo "github.com/estately/estately/internal/domain/user/valueobjects"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

type VerifyEmailUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewVerifyEmailUseCase(userRepo user.Repository, logger logger.Interface) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{userRepo: userRepo, logger: logger}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, user.ErrInvalidToken
	}

	u, err := uc.userRepo.GetByVerificationTokenHash(ctx, vo.HashToken(token))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, user.ErrInvalidToken
	}

	if err := u.VerifyEmail(token); err != nil {
		return nil, err
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to save verified user", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("email verified", "user_id", u.ID())
	return u, nil
}

// ResendVerificationUseCase issues a fresh verification token to an
// unverified account.
type ResendVerificationUseCase struct {
	userRepo     user.Repository
	emailService EmailService
	logger       logger.Interface
}

func NewResendVerificationUseCase(userRepo user.Repository, emailService EmailService, logger logger.Interface) *ResendVerificationUseCase {
	return &ResendVerificationUseCase{userRepo: userRepo, emailService: emailService, logger: logger}
}

func (uc *ResendVerificationUseCase) Execute(ctx context.Context, userID uint) error {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return user.ErrUserNotFound
	}
	if u.IsEmailVerified() {
		return user.ErrAlreadyVerified
	}

	token, err := u.GenerateEmailVerificationToken()
	if err != nil {
		return fmt.Errorf("failed to generate verification token: %w", err)
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if err := uc.emailService.SendVerificationEmail(u.Email(), token.Value()); err != nil {
		uc.logger.Errorw("failed to send verification email", "user_id", u.ID(), "error", err)
		return errors.NewConflictError("failed to send verification email")
	}
	return nil
}
