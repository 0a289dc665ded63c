package store

import "github.com/estately/estately/internal/shared/errors"

var (
	ErrStoreNotFound     = errors.NewNotFoundError("store not found")
	ErrInvalidHostname   = errors.NewBadRequestError("invalid hostname")
	ErrOwnerBlocked      = errors.NewForbiddenError("store owner is blocked")
	ErrStoreInactive     = errors.NewConflictError("store subscription is inactive")
	ErrHostnameTaken     = errors.NewConflictError("hostname is already in use")
	ErrStoreAlreadyOwned = errors.NewConflictError("user already owns a store")
	ErrForeignResource   = errors.NewForbiddenError("resource belongs to another store")
)
