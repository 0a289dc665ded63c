package handlers

import (
	"context"

	"github.com/estately/estately/internal/application/user/usecases"
	"github.com/estately/estately/internal/domain/user"
)

// Use case interfaces for AuthHandler - enables unit testing with mocks.

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterWithPasswordCommand) (*usecases.RegisterWithPasswordResult, error)
}

type verifyEmailUseCase interface {
	Execute(ctx context.Context, token string) (*user.User, error)
}

type resendVerificationUseCase interface {
	Execute(ctx context.Context, userID uint) error
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginWithPasswordCommand) (*usecases.LoginResult, error)
}

type refreshTokenUseCase interface {
	Execute(ctx context.Context, refreshToken string) (*usecases.TokenPair, error)
}

type requestPasswordResetUseCase interface {
	Execute(ctx context.Context, email string) error
}

type resetPasswordUseCase interface {
	Execute(ctx context.Context, cmd usecases.ResetPasswordCommand) error
}

type changePasswordUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangePasswordCommand) error
}

type getUserUseCase interface {
	Execute(ctx context.Context, userID uint) (*user.User, error)
}
