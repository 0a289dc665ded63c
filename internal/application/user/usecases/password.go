package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/estately/estately/internal/domain/user"
	vo "github.com/estately/estately/internal/domain/user/valueobjects"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID      uint
	OldPassword string
	NewPassword string
}

type ChangePasswordUseCase struct {
	userRepo     user.Repository
	hasher       user.PasswordHasher
	emailService EmailService
	logger       logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	emailService EmailService,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		emailService: emailService,
		logger:       logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return user.ErrUserNotFound
	}

	if err := u.VerifyPassword(cmd.OldPassword, uc.hasher); err != nil {
		return errors.NewBadRequestError("current password is incorrect")
	}
	password, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return errors.NewBadRequestError(err.Error())
	}
	if err := u.SetPassword(password, uc.hasher); err != nil {
		return err
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update password", "user_id", u.ID(), "error", err)
		return fmt.Errorf("failed to update user: %w", err)
	}

	if err := uc.emailService.SendPasswordChangedEmail(u.Email()); err != nil {
		uc.logger.Errorw("failed to send password changed email", "user_id", u.ID(), "error", err)
	}
	uc.logger.Infow("password changed", "user_id", u.ID())
	return nil
}

// RequestPasswordResetUseCase never reports whether the address exists.
type RequestPasswordResetUseCase struct {
	userRepo     user.Repository
	throttle     Throttle
	emailService EmailService
	logger       logger.Interface
}

func NewRequestPasswordResetUseCase(
	userRepo user.Repository,
	throttle Throttle,
	emailService EmailService,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		userRepo:     userRepo,
		throttle:     throttle,
		emailService: emailService,
		logger:       logger,
	}
}

func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errors.NewBadRequestError("email is required")
	}

	allowed, err := uc.throttle.Allow(ctx, "password-reset:"+email)
	if err != nil {
		// fail open
		uc.logger.Warnw("password reset throttle unavailable", "error", err)
	} else if !allowed {
		uc.logger.Warnw("password reset throttled", "email", email)
		return nil
	}

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil || u.IsBlocked() {
		return nil
	}

	token, err := u.GeneratePasswordResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if err := uc.emailService.SendPasswordResetEmail(u.Email(), token.Value()); err != nil {
		uc.logger.Errorw("failed to send password reset email", "user_id", u.ID(), "error", err)
	}
	return nil
}

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
}

type ResetPasswordUseCase struct {
	userRepo     user.Repository
	hasher       user.PasswordHasher
	emailService EmailService
	logger       logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	emailService EmailService,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		emailService: emailService,
		logger:       logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	if cmd.Token == "" {
		return user.ErrInvalidToken
	}
	password, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return errors.NewBadRequestError(err.Error())
	}

	u, err := uc.userRepo.GetByResetTokenHash(ctx, vo.HashToken(cmd.Token))
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return user.ErrInvalidToken
	}

	if err := u.ResetPassword(cmd.Token, password, uc.hasher); err != nil {
		return err
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if err := uc.emailService.SendPasswordChangedEmail(u.Email()); err != nil {
		uc.logger.Errorw("failed to send password changed email", "user_id", u.ID(), "error", err)
	}
	uc.logger.Infow("password reset", "user_id", u.ID())
	return nil
}
