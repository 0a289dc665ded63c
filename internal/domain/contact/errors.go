package contact

import "github.com/estately/estately/internal/shared/errors"

var (
	ErrContactRequestNotFound = errors.NewNotFoundError("contact request not found")
	ErrCannotReturnToCreated  = errors.NewBadRequestError("status cannot be changed back to created")
	ErrInvalidStatus          = errors.NewBadRequestError("invalid contact request status")
	ErrAdminNotifyFailed      = errors.NewConflictError("failed to deliver contact request")
)
