package user

import (
	"github.com/estately/estately/internal/shared/errors"
)

var (
	ErrUserNotFound       = errors.NewNotFoundError("user not found")
	ErrEmailTaken         = errors.NewConflictError("email is already registered")
	ErrInvalidCredentials = errors.NewUnauthorizedError("invalid email or password")
	ErrUserBlocked        = errors.NewForbiddenError("account is blocked")
	ErrInvalidToken       = errors.NewBadRequestError("invalid or expired token")
	ErrAlreadyVerified    = errors.NewBadRequestError("email is already verified")
	ErrCannotBlockSelf    = errors.NewBadRequestError("admins cannot block themselves")
)
