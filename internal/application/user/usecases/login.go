package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/estately/estately/internal/domain/user"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User   *user.User
	Tokens *TokenPair
}

type LoginWithPasswordUseCase struct {
	userRepo   user.Repository
	hasher     user.PasswordHasher
	jwtService JWTService
	logger     logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(cmd.Email)))
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	// unknown email and wrong password are indistinguishable
	if existingUser == nil {
		return nil, user.ErrInvalidCredentials
	}
	if err := existingUser.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		return nil, err
	}
	if existingUser.IsBlocked() {
		uc.logger.Warnw("blocked user attempted login", "user_id", existingUser.ID())
		return nil, user.ErrUserBlocked
	}

	tokens, err := uc.jwtService.Generate(existingUser.UUID(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", existingUser.ID(), "error", err)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID())
	return &LoginResult{User: existingUser, Tokens: tokens}, nil
}

type RefreshTokenUseCase struct {
	userRepo   user.Repository
	jwtService JWTService
	logger     logger.Interface
}

func NewRefreshTokenUseCase(userRepo user.Repository, jwtService JWTService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{userRepo: userRepo, jwtService: jwtService, logger: logger}
}

// Execute re-reads the user so blocks and role changes apply to the new
// pair.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userUUID, err := uc.jwtService.Refresh(refreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	u, err := uc.userRepo.GetByUUID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	if u.IsBlocked() {
		return nil, user.ErrUserBlocked
	}

	tokens, err := uc.jwtService.Generate(u.UUID(), u.Role())
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return tokens, nil
}
