package subscription

import "github.com/estately/estately/internal/shared/errors"

var (
	ErrSubscriptionNotFound = errors.NewNotFoundError("subscription not found")
	ErrProductNotFound      = errors.NewNotFoundError("product not found")
	ErrProductInactive      = errors.NewBadRequestError("product is not available")
	ErrNoCustomer           = errors.NewConflictError("no billing customer exists for this user")
	ErrNoSubscriptionItem   = errors.NewConflictError("no active processor subscription to change")
	ErrInvalidSignature     = errors.NewBadRequestError("invalid webhook signature")
	ErrProcessorFailure     = errors.NewConflictError("payment processor request failed")
)
